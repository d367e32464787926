package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmoralesb/panaderia-api/internal/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repo struct{ DB *pgxpool.Pool }

// CreateOrder runs the whole checkout write in one transaction:
// price lookups, order header, line items. Any failure rolls back
// everything; no partial order ever persists.
func (r *Repo) CreateOrder(ctx context.Context, in CreateOrderInput) (Confirmation, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Confirmation{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	quotes, err := quoteActive(ctx, tx, in.Products)
	if err != nil {
		return Confirmation{}, err
	}
	priced, total, err := PriceCart(in.Products, quotes)
	if err != nil {
		return Confirmation{}, err
	}

	var conf Confirmation
	err = tx.QueryRow(ctx, `
		INSERT INTO orders(customer_name, customer_email, total_amount, status)
		VALUES ($1, NULLIF($2, ''), $3, 'pending')
		RETURNING id, total_amount, status`,
		in.CustomerName, in.CustomerEmail, total,
	).Scan(&conf.OrderID, &conf.TotalAmount, &conf.Status)
	if err != nil {
		return Confirmation{}, fmt.Errorf("insert order: %w", err)
	}

	for _, l := range priced {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_products(order_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5)`,
			conf.OrderID, l.ProductID, l.Quantity, l.UnitPrice, l.Subtotal)
		if err != nil {
			return Confirmation{}, fmt.Errorf("insert order line: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Confirmation{}, fmt.Errorf("commit order: %w", err)
	}
	return conf, nil
}

// quoteActive snapshots unit prices for the requested products inside tx.
// Inactive products are left out on purpose; PriceCart rejects them.
func quoteActive(ctx context.Context, tx pgx.Tx, lines []LineInput) (map[int64]decimal.Decimal, error) {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	rows, err := tx.Query(ctx,
		`SELECT id, price FROM products WHERE id = ANY($1) AND active`, ids)
	if err != nil {
		return nil, fmt.Errorf("quote products: %w", err)
	}
	defer rows.Close()

	quotes := map[int64]decimal.Decimal{}
	for rows.Next() {
		var id int64
		var price decimal.Decimal
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		quotes[id] = price
	}
	return quotes, rows.Err()
}

// GetOrder loads an order with its lines and each line's product expanded.
// Header and lines come from one read-only transaction so the result is a
// single snapshot.
func (r *Repo) GetOrder(ctx context.Context, id int64) (Order, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return Order{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var o Order
	err = tx.QueryRow(ctx, `
		SELECT id, customer_name, COALESCE(customer_email, ''), total_amount,
		       status, order_date, created_at, updated_at
		FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.TotalAmount,
		&o.Status, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	rows, err := tx.Query(ctx, `
		SELECT op.id, op.order_id, op.product_id, op.quantity, op.unit_price, op.subtotal,
		       p.id, p.name, p.price, p.description, p.active, p.created_at, p.updated_at
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1
		ORDER BY op.id`, id)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var l OrderLine
		var p catalog.Product
		err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal,
			&p.ID, &p.Name, &p.Price, &p.Description, &p.Active, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return Order{}, err
		}
		l.Product = p
		o.Lines = append(o.Lines, l)
	}
	return o, rows.Err()
}
