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

// CategoryStore manages categories and their child links in the database.
type CategoryStore struct {
	db *sqlx.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, created_at, updated_at`

// childLink is a child category row tagged with the parent it hangs under.
type childLink struct {
	ParentID uuid.UUID `db:"parent_id"`
	models.Category
}

// Create inserts a category and links the given children in one
// transaction. Child ids that do not exist are skipped.
func (s *CategoryStore) Create(ctx context.Context, in models.CategoryInput) (*models.CategoryView, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id uuid.UUID
	if err := tx.GetContext(ctx, &id, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, in.Name); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	if err := linkChildren(ctx, tx, id, in.ChildrenIDs); err != nil {
		return nil, err
	}

	view, err := findCategory(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create category: %w", err)
	}
	return view, nil
}

// FindByID returns a category with its direct children, or ErrNotFound.
func (s *CategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.CategoryView, error) {
	return findCategory(ctx, s.db, id)
}

// List returns every category with its direct children. It issues two
// queries regardless of the number of categories.
func (s *CategoryStore) List(ctx context.Context) ([]models.CategoryView, error) {
	var cats []models.Category
	if err := s.db.SelectContext(ctx, &cats,
		`SELECT `+categoryColumns+` FROM categories ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	var links []childLink
	if err := s.db.SelectContext(ctx, &links, `
		SELECT cc.parent_id, c.id, c.name, c.created_at, c.updated_at
		FROM category_children cc
		JOIN categories c ON c.id = cc.child_id
		ORDER BY c.created_at, c.id
	`); err != nil {
		return nil, fmt.Errorf("list category children: %w", err)
	}

	children := make(map[uuid.UUID][]models.Category, len(cats))
	for _, l := range links {
		children[l.ParentID] = append(children[l.ParentID], l.Category)
	}

	views := make([]models.CategoryView, 0, len(cats))
	for _, c := range cats {
		kids := children[c.ID]
		if kids == nil {
			kids = []models.Category{}
		}
		views = append(views, models.CategoryView{Category: c, Children: kids})
	}
	return views, nil
}

// Update applies a partial update under a row lock. A patch that carries
// children replaces the whole child set; otherwise links are untouched.
func (s *CategoryStore) Update(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.CategoryView, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked uuid.UUID
	err = tx.GetContext(ctx, &locked, `SELECT id FROM categories WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock category: %w", err)
	}

	if patch.Name.Present() {
		if _, err := tx.ExecContext(ctx,
			`UPDATE categories SET name = $1, updated_at = NOW() WHERE id = $2`,
			*patch.Name.Value, id,
		); err != nil {
			return nil, fmt.Errorf("update category: %w", err)
		}
	}

	if patch.ReplacesChildren() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM category_children WHERE parent_id = $1`, id); err != nil {
			return nil, fmt.Errorf("clear category children: %w", err)
		}
		if err := linkChildren(ctx, tx, id, *patch.ChildrenIDs.Value); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE categories SET updated_at = NOW() WHERE id = $1`, id); err != nil {
			return nil, fmt.Errorf("touch category: %w", err)
		}
	}

	view, err := findCategory(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update category: %w", err)
	}
	return view, nil
}

// Delete removes a category. Deleting an unknown id is not an error.
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// findCategory loads a category and its direct children through q, which
// may be the pool or an open transaction.
func findCategory(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (*models.CategoryView, error) {
	var c models.Category
	err := sqlx.GetContext(ctx, q, &c, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}

	children := []models.Category{}
	if err := sqlx.SelectContext(ctx, q, &children, `
		SELECT c.id, c.name, c.created_at, c.updated_at
		FROM category_children cc
		JOIN categories c ON c.id = cc.child_id
		WHERE cc.parent_id = $1
		ORDER BY c.created_at, c.id
	`, id); err != nil {
		return nil, fmt.Errorf("find category children: %w", err)
	}

	return &models.CategoryView{Category: c, Children: children}, nil
}

// linkChildren links the existing categories among childIDs under parentID.
func linkChildren(ctx context.Context, tx *sqlx.Tx, parentID uuid.UUID, childIDs []uuid.UUID) error {
	if len(childIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		INSERT INTO category_children (parent_id, child_id)
		SELECT ?::uuid, id FROM categories WHERE id IN (?)
		ON CONFLICT DO NOTHING
	`, parentID, childIDs)
	if err != nil {
		return fmt.Errorf("build link children query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("link category children: %w", err)
	}
	return nil
}
