package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"webshop/internal/logger"
)

// seedTranslations are the nl_BE display strings for the demo products.
var seedTranslations = []struct{ code, value string }{
	{"product.coffee.name", "Koffiebonen"},
	{"product.coffee.description", "Versgebrande arabica bonen, 1 kg"},
	{"product.mug.name", "Mok"},
}

// Seed populates the database with demo catalog data for development.
// It is a no-op when any product already exists. The mug deliberately has
// no translated description so the raw code fallback is visible.
func Seed(ctx context.Context, db *sqlx.DB, language string) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return fmt.Errorf("seed check products: %w", err)
	}

	if count > 0 {
		logger.Logger().Info().Msg("database already seeded, skipping")
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, t := range seedTranslations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO translations (code, value, language) VALUES ($1, $2, $3)`,
			t.code, t.value, language,
		); err != nil {
			return fmt.Errorf("seed insert translation %s: %w", t.code, err)
		}
	}

	var categoryID string
	if err := tx.GetContext(ctx, &categoryID,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, "Keuken",
	); err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (name, description, brand, code, stock, category_id, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7), ($8, $9, $10, $11, $12, $6, $13)
	`,
		"product.coffee.name", "product.coffee.description", "Roastery", "COF-1KG", 40, categoryID, 1899,
		"product.mug.name", "product.mug.description", "Potters", "MUG-01", 120, 650,
	)
	if err != nil {
		return fmt.Errorf("seed insert products: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	logger.Logger().Info().
		Int("translations", len(seedTranslations)).
		Str("language", language).
		Msg("database seeded with demo catalog")
	return nil
}
