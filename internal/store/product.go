// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"webshop/internal/models"
)

// ProductStore handles product CRUD operations in the database.
type ProductStore struct {
	db *sqlx.DB
}

// NewProductStore creates a new ProductStore.
func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, description, brand, code, stock, image_url, category_id, price, created_at, updated_at`

const productCategoryFK = "products_category_id_fkey"

// productOverlayQuery selects products with their category name and the
// oldest translation of name and description for the language in $1.
const productOverlayQuery = `
	SELECT p.id, p.name, p.description, p.brand, p.code, p.stock, p.image_url,
	       p.category_id, p.price, p.created_at, p.updated_at,
	       COALESCE(tn.value, '') AS name_text,
	       COALESCE(td.value, '') AS description_text,
	       c.name AS category_name
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN LATERAL (
		SELECT value FROM translations
		WHERE code = p.name AND language = $1
		ORDER BY created_at, id LIMIT 1
	) tn ON TRUE
	LEFT JOIN LATERAL (
		SELECT value FROM translations
		WHERE code = p.description AND language = $1
		ORDER BY created_at, id LIMIT 1
	) td ON TRUE
`

// overlaidProduct is a product row joined with its translated text.
type overlaidProduct struct {
	models.Product
	NameText        string  `db:"name_text"`
	DescriptionText string  `db:"description_text"`
	CategoryName    *string `db:"category_name"`
}

func (o overlaidProduct) view() models.ProductView {
	var summary *models.CategorySummary
	if o.CategoryID != nil && o.CategoryName != nil {
		summary = &models.CategorySummary{ID: *o.CategoryID, Name: *o.CategoryName}
	}
	return o.Product.View(models.ProductText{
		Name:        o.NameText,
		Description: o.DescriptionText,
	}, summary)
}

// Create inserts a product row and returns it as stored.
func (s *ProductStore) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	err := s.db.GetContext(ctx, &out, `
		INSERT INTO products (name, description, brand, code, stock, image_url, category_id, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+productColumns,
		p.Name, p.Description, p.Brand, p.Code, p.Stock, p.ImageURL, p.CategoryID, p.Price,
	)
	if isForeignKeyViolation(err, productCategoryFK) {
		return nil, ErrUnknownCategory
	}
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &out, nil
}

// Find returns the overlaid view of a product for the given language, or
// ErrNotFound. Name, description and category come from a single query.
func (s *ProductStore) Find(ctx context.Context, id uuid.UUID, language string) (*models.ProductView, error) {
	var row overlaidProduct
	err := s.db.GetContext(ctx, &row, productOverlayQuery+` WHERE p.id = $2`, language, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	v := row.view()
	return &v, nil
}

// List returns all products overlaid for the given language, in creation
// order.
func (s *ProductStore) List(ctx context.Context, language string) ([]models.ProductView, error) {
	var rows []overlaidProduct
	if err := s.db.SelectContext(ctx, &rows, productOverlayQuery+` ORDER BY p.created_at, p.id`, language); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	views := make([]models.ProductView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	return views, nil
}

// Update merges patch into the stored row under a row lock and writes it
// back. The patch is applied to the raw row so codes are never replaced by
// their translations.
func (s *ProductStore) Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	current, err := findRawProduct(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}

	p := patch.Apply(*current)

	var out models.Product
	err = tx.GetContext(ctx, &out, `
		UPDATE products SET
			name = $1, description = $2, brand = $3, code = $4, stock = $5,
			image_url = $6, category_id = $7, price = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING `+productColumns,
		p.Name, p.Description, p.Brand, p.Code, p.Stock, p.ImageURL, p.CategoryID, p.Price, id,
	)
	if isForeignKeyViolation(err, productCategoryFK) {
		return nil, ErrUnknownCategory
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update product: %w", err)
	}
	return &out, nil
}

// Delete removes a product. Basket items keep their snapshot and lose the
// product reference. Deleting an unknown id is not an error.
func (s *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func findRawProduct(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID, lock bool) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var p models.Product
	err := sqlx.GetContext(ctx, q, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return &p, nil
}
