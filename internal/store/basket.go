// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"webshop/internal/models"
)

// BasketStore handles shopping baskets and their items in the database.
type BasketStore struct {
	db *sqlx.DB
}

// NewBasketStore creates a new BasketStore.
func NewBasketStore(db *sqlx.DB) *BasketStore {
	return &BasketStore{db: db}
}

const (
	basketColumns    = `id, created_at, updated_at`
	basketProductFK  = "basket_items_product_id_fkey"
	basketProductKey = "basket_items_basket_product_key"
)

// Create inserts a basket with its seed items in one transaction. Items are
// stored with the price and amount given. Repeated product ids collapse into
// one item whose amount is the sum; the first price is kept.
func (s *BasketStore) Create(ctx context.Context, items []models.BasketItemInput) (*models.Basket, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var b models.Basket
	if err := tx.GetContext(ctx, &b,
		`INSERT INTO shopping_baskets DEFAULT VALUES RETURNING `+basketColumns); err != nil {
		return nil, fmt.Errorf("create basket: %w", err)
	}

	for _, it := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO basket_items (basket_id, product_id, price, amount)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT ON CONSTRAINT `+basketProductKey+` DO UPDATE
			SET amount = basket_items.amount + EXCLUDED.amount, updated_at = NOW()
		`, b.ID, it.ProductID, it.PriceOrDefault(), it.AmountOrDefault())
		if isForeignKeyViolation(err, basketProductFK) {
			return nil, fmt.Errorf("create basket item %s: %w", it.ProductID, ErrUnknownProduct)
		}
		if err != nil {
			return nil, fmt.Errorf("create basket item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create basket: %w", err)
	}
	return &b, nil
}

// basketLineRow is one row of the basket read join. Every column past the
// basket's own is nullable: an empty basket yields a single row with no
// item, and a deleted product leaves the product columns empty.
type basketLineRow struct {
	BasketID        uuid.UUID  `db:"basket_id"`
	BasketCreatedAt time.Time  `db:"basket_created_at"`
	BasketUpdatedAt time.Time  `db:"basket_updated_at"`
	ItemID          *uuid.UUID `db:"item_id"`
	ItemProductID   *uuid.UUID `db:"item_product_id"`
	ItemPrice       *int       `db:"item_price"`
	ItemAmount      *int       `db:"item_amount"`
	ItemCreatedAt   *time.Time `db:"item_created_at"`
	ItemUpdatedAt   *time.Time `db:"item_updated_at"`

	ProductID          *uuid.UUID `db:"product_id"`
	ProductName        *string    `db:"product_name"`
	ProductDescription *string    `db:"product_description"`
	ProductBrand       *string    `db:"product_brand"`
	ProductCode        *string    `db:"product_code"`
	ProductStock       *int       `db:"product_stock"`
	ProductImageURL    *string    `db:"product_image_url"`
	ProductCategoryID  *uuid.UUID `db:"product_category_id"`
	ProductPrice       *int       `db:"product_price"`
	ProductCreatedAt   *time.Time `db:"product_created_at"`
	ProductUpdatedAt   *time.Time `db:"product_updated_at"`

	CategoryName *string `db:"category_name"`
}

// line converts a joined row to a basket line. ok is false for the
// placeholder row of an empty basket.
func (r basketLineRow) line() (l models.BasketLine, ok bool) {
	if r.ItemID == nil {
		return l, false
	}
	l.Item = models.BasketItem{
		ID:        *r.ItemID,
		BasketID:  r.BasketID,
		ProductID: r.ItemProductID,
		Price:     deref(r.ItemPrice),
		Amount:    deref(r.ItemAmount),
		CreatedAt: deref(r.ItemCreatedAt),
		UpdatedAt: deref(r.ItemUpdatedAt),
	}
	if r.ProductID == nil {
		return l, true
	}
	l.Product = &models.Product{
		ID:          *r.ProductID,
		Name:        deref(r.ProductName),
		Description: r.ProductDescription,
		Brand:       r.ProductBrand,
		Code:        r.ProductCode,
		Stock:       deref(r.ProductStock),
		ImageURL:    r.ProductImageURL,
		CategoryID:  r.ProductCategoryID,
		Price:       deref(r.ProductPrice),
		CreatedAt:   deref(r.ProductCreatedAt),
		UpdatedAt:   deref(r.ProductUpdatedAt),
	}
	if r.ProductCategoryID != nil && r.CategoryName != nil {
		l.Category = &models.CategorySummary{ID: *r.ProductCategoryID, Name: *r.CategoryName}
	}
	return l, true
}

// Find loads a basket with every item, each item's product and the
// product's category in a single query. Lines are in insertion order.
func (s *BasketStore) Find(ctx context.Context, id uuid.UUID) (*models.Basket, []models.BasketLine, error) {
	var rows []basketLineRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT b.id AS basket_id, b.created_at AS basket_created_at, b.updated_at AS basket_updated_at,
		       i.id AS item_id, i.product_id AS item_product_id, i.price AS item_price,
		       i.amount AS item_amount, i.created_at AS item_created_at, i.updated_at AS item_updated_at,
		       p.id AS product_id, p.name AS product_name, p.description AS product_description,
		       p.brand AS product_brand, p.code AS product_code, p.stock AS product_stock,
		       p.image_url AS product_image_url, p.category_id AS product_category_id,
		       p.price AS product_price, p.created_at AS product_created_at,
		       p.updated_at AS product_updated_at,
		       c.name AS category_name
		FROM shopping_baskets b
		LEFT JOIN basket_items i ON i.basket_id = b.id
		LEFT JOIN products p ON p.id = i.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE b.id = $1
		ORDER BY i.created_at, i.id
	`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("find basket: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrNotFound
	}

	b := &models.Basket{
		ID:        rows[0].BasketID,
		CreatedAt: rows[0].BasketCreatedAt,
		UpdatedAt: rows[0].BasketUpdatedAt,
	}
	lines := make([]models.BasketLine, 0, len(rows))
	for _, r := range rows {
		if l, ok := r.line(); ok {
			lines = append(lines, l)
		}
	}
	return b, lines, nil
}

// AddItem adds one unit of a product to a basket inside a transaction that
// holds the basket row lock. A new item snapshots the product's current
// price; an existing item only has its amount incremented. inserted reports
// which of the two happened.
func (s *BasketStore) AddItem(ctx context.Context, basketID, productID uuid.UUID) (inserted bool, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked uuid.UUID
	err = tx.GetContext(ctx, &locked, `SELECT id FROM shopping_baskets WHERE id = $1 FOR UPDATE`, basketID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("lock basket: %w", err)
	}

	// xmax is zero only for a freshly inserted tuple.
	err = tx.GetContext(ctx, &inserted, `
		INSERT INTO basket_items (basket_id, product_id, price, amount)
		SELECT $1::uuid, p.id, p.price, 1 FROM products p WHERE p.id = $2
		ON CONFLICT ON CONSTRAINT `+basketProductKey+` DO UPDATE
		SET amount = basket_items.amount + 1, updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`, basketID, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrUnknownProduct
	}
	if err != nil {
		return false, fmt.Errorf("upsert basket item: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE shopping_baskets SET updated_at = NOW() WHERE id = $1`, basketID); err != nil {
		return false, fmt.Errorf("touch basket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit add basket item: %w", err)
	}
	return inserted, nil
}

// RemoveItem deletes a basket item by id and touches its basket. Removing
// an unknown id is not an error.
func (s *BasketStore) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `
		WITH removed AS (
			DELETE FROM basket_items WHERE id = $1 RETURNING basket_id
		)
		UPDATE shopping_baskets SET updated_at = NOW()
		WHERE id IN (SELECT basket_id FROM removed)
	`, itemID)
	if err != nil {
		return fmt.Errorf("remove basket item: %w", err)
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
