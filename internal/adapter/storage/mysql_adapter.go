package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/minhvu/storefront-cart/internal/core/domain"
)

// MySQLAdapter backs the catalog service with products and stock tables.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// GetProduct returns the product metadata, or (nil, nil) when the id is unknown.
func (m *MySQLAdapter) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var p domain.Product
	err := m.db.QueryRowContext(ctx, `
		SELECT id, title, price, image
		FROM products WHERE id = ?`, productID,
	).Scan(&p.ID, &p.Title, &p.Price, &p.Image)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}

	return &p, nil
}

// GetStock returns the available stock, or (nil, nil) when the id is unknown.
func (m *MySQLAdapter) GetStock(ctx context.Context, productID int64) (*domain.StockSnapshot, error) {
	var s domain.StockSnapshot
	err := m.db.QueryRowContext(ctx, `
		SELECT product_id, amount
		FROM stock WHERE product_id = ?`, productID,
	).Scan(&s.ProductID, &s.Available)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query stock: %w", err)
	}

	return &s, nil
}

// UpsertProduct writes product metadata and its stock level in one transaction.
func (m *MySQLAdapter) UpsertProduct(ctx context.Context, p domain.Product, amount int) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (id, title, price, image)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE title = VALUES(title), price = VALUES(price), image = VALUES(image)`,
		p.ID, p.Title, p.Price, p.Image,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO stock (product_id, amount)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE amount = VALUES(amount)`,
		p.ID, amount,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}

	return tx.Commit()
}
