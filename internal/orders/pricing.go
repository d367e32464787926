package orders

import "github.com/shopspring/decimal"

type PricedLine struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// PriceCart prices each requested line against the quoted unit prices and
// sums the order total, rounded to 2 decimal places. A product id without
// a quote (unknown or inactive at quote time) rejects the whole cart.
// Quotes must come from the same transaction that persists the order so
// the snapshot is atomic.
func PriceCart(lines []LineInput, quotes map[int64]decimal.Decimal) ([]PricedLine, decimal.Decimal, error) {
	priced := make([]PricedLine, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		price, ok := quotes[l.ProductID]
		if !ok {
			return nil, decimal.Zero, invalidf("product with id %d not found or inactive", l.ProductID)
		}
		// the schema allows price 0; an order line never does (subtotal > 0)
		if !price.IsPositive() {
			return nil, decimal.Zero, invalidf("product with id %d has an invalid price", l.ProductID)
		}
		if l.Quantity < 1 {
			return nil, decimal.Zero, invalidf("quantity must be at least 1")
		}
		subtotal := price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		priced = append(priced, PricedLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	return priced, total.Round(2), nil
}
