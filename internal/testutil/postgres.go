// Package testutil provides a shared PostgreSQL database for integration
// tests. It uses TEST_DATABASE_URL when set and otherwise starts one
// PostgreSQL testcontainer per test binary. Tests are skipped when neither
// is available.
package testutil

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"webshop/internal/database"
)

const postgresImage = "postgres:16-alpine"

var (
	containerOnce sync.Once
	containerDSN  string
	containerErr  error
)

// DSN returns a connection string for the test database, starting the
// shared container on first use.
func DSN(t *testing.T) string {
	t.Helper()

	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		return dsn
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		ctr, err := postgres.Run(ctx, postgresImage,
			postgres.WithDatabase("webshop"),
			postgres.WithUsername("webshop"),
			postgres.WithPassword("webshop"),
			postgres.BasicWaitStrategies(),
		)
		if err != nil {
			containerErr = err
			return
		}
		// The container is reaped by testcontainers when the process exits.
		containerDSN, containerErr = ctr.ConnectionString(ctx, "sslmode=disable")
	})

	if containerErr != nil {
		t.Skipf("skipping integration test: postgres container: %v", containerErr)
	}
	return containerDSN
}

// DB connects to the test database, applies migrations and empties every
// table. The connection is closed when the test finishes.
func DB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Connect(DSN(t))
	if err != nil {
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	Reset(t, db)
	return db
}

// Reset truncates all application tables.
func Reset(t *testing.T, db *sqlx.DB) {
	t.Helper()
	_, err := db.Exec(`TRUNCATE basket_items, shopping_baskets, products,
		category_children, categories, translations RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
}
