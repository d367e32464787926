package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	name        VARCHAR(200) NOT NULL,
	price       NUMERIC(10,2) NOT NULL CHECK (price >= 0),
	description TEXT NOT NULL DEFAULT '',
	active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id             BIGSERIAL PRIMARY KEY,
	customer_name  VARCHAR(100) NOT NULL,
	customer_email VARCHAR(150),
	total_amount   NUMERIC(10,2) NOT NULL CHECK (total_amount > 0),
	status         VARCHAR(20) NOT NULL DEFAULT 'pending'
	               CHECK (status IN ('pending','confirmed','completed','cancelled')),
	order_date     TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS order_products (
	id         BIGSERIAL PRIMARY KEY,
	order_id   BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id BIGINT NOT NULL REFERENCES products(id),
	quantity   INTEGER NOT NULL CHECK (quantity >= 1),
	unit_price NUMERIC(10,2) NOT NULL CHECK (unit_price > 0),
	subtotal   NUMERIC(10,2) NOT NULL CHECK (subtotal > 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_order_products_order_id ON order_products(order_id);
`

// seed rows mirror the bakery's launch catalog.
var seedProducts = []struct {
	name, price, description string
}{
	{"Baguette Tradicional", "1200.00", "Pan francés crujiente, perfecto para acompañar comidas"},
	{"Croissant de Mantequilla", "1500.00", "Hojaldre dorado y mantecoso, ideal para el desayuno"},
	{"Pan Integral", "1800.00", "Pan nutritivo con granos integrales y semillas"},
	{"Torta de Chocolate", "8500.00", "Deliciosa torta de chocolate con cobertura de ganache"},
}

// Init creates the tables if they do not exist and seeds the catalog
// when the products table is empty.
func Init(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, p := range seedProducts {
		_, err := db.Exec(ctx,
			`INSERT INTO products(name, price, description, active) VALUES ($1, $2, $3, TRUE)`,
			p.name, p.price, p.description)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.name, err)
		}
	}
	zap.L().Info("seeded initial catalog", zap.Int("products", len(seedProducts)))
	return nil
}
