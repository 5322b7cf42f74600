// store_test.go provides shared helpers for the store integration tests.
// Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"webshop/internal/models"
	"webshop/internal/testutil"
)

const testLanguage = "nl_BE"

// testDB returns a migrated, empty database.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	return testutil.DB(t)
}

func ptr[T any](v T) *T { return &v }

// mustTranslation inserts a translation entry for the test language.
func mustTranslation(t *testing.T, db *sqlx.DB, code, value string) models.Translation {
	t.Helper()
	tr, err := NewTranslationStore(db).Create(context.Background(), models.TranslationInput{
		Code: code, Value: value, Language: testLanguage,
	})
	require.NoError(t, err)
	return *tr
}

// mustProduct inserts a product row.
func mustProduct(t *testing.T, db *sqlx.DB, p models.Product) models.Product {
	t.Helper()
	out, err := NewProductStore(db).Create(context.Background(), p)
	require.NoError(t, err)
	return *out
}

// mustCategory inserts a category with the given children.
func mustCategory(t *testing.T, db *sqlx.DB, name string, children ...uuid.UUID) models.CategoryView {
	t.Helper()
	c, err := NewCategoryStore(db).Create(context.Background(), models.CategoryInput{
		Name: name, ChildrenIDs: children,
	})
	require.NoError(t, err)
	return *c
}
