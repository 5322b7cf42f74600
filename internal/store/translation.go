// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"webshop/internal/models"
)

// TranslationStore handles translation entries in the database.
type TranslationStore struct {
	db *sqlx.DB
}

// NewTranslationStore creates a new TranslationStore.
func NewTranslationStore(db *sqlx.DB) *TranslationStore {
	return &TranslationStore{db: db}
}

const translationColumns = `id, code, value, language, created_at, updated_at`

// Create inserts a translation entry. Duplicate (code, language) pairs are
// accepted; reads always pick the oldest.
func (s *TranslationStore) Create(ctx context.Context, in models.TranslationInput) (*models.Translation, error) {
	var t models.Translation
	err := s.db.GetContext(ctx, &t, `
		INSERT INTO translations (code, value, language)
		VALUES ($1, $2, $3)
		RETURNING `+translationColumns,
		in.Code, in.Value, in.Language,
	)
	if err != nil {
		return nil, fmt.Errorf("create translation: %w", err)
	}
	return &t, nil
}

// List returns all translation entries in creation order.
func (s *TranslationStore) List(ctx context.Context) ([]models.Translation, error) {
	items := []models.Translation{}
	err := s.db.SelectContext(ctx, &items,
		`SELECT `+translationColumns+` FROM translations ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	return items, nil
}

// Resolve returns the value of the oldest entry for (code, language). The
// boolean is false when no entry exists.
func (s *TranslationStore) Resolve(ctx context.Context, code, language string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `
		SELECT value FROM translations
		WHERE code = $1 AND language = $2
		ORDER BY created_at, id
		LIMIT 1
	`, code, language)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("resolve translation %q: %w", code, err)
	}
	return value, true, nil
}

// ResolveMany resolves a batch of codes in one query. Codes without an
// entry are absent from the result.
func (s *TranslationStore) ResolveMany(ctx context.Context, codes []string, language string) (map[string]string, error) {
	out := make(map[string]string, len(codes))
	if len(codes) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT ON (code) code, value FROM translations
		WHERE language = ? AND code IN (?)
		ORDER BY code, created_at, id
	`, language, codes)
	if err != nil {
		return nil, fmt.Errorf("build resolve translations query: %w", err)
	}

	rows, err := s.db.QueryxContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("resolve translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code, value string
		if err := rows.Scan(&code, &value); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		out[code] = value
	}
	return out, rows.Err()
}
