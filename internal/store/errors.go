// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownProduct is returned when a basket item references a product
	// that does not exist.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrUnknownCategory is returned when a product references a category
	// that does not exist.
	ErrUnknownCategory = errors.New("unknown category")
)

// pgForeignKeyViolation is the SQLSTATE for foreign_key_violation.
const pgForeignKeyViolation = "23503"

// isForeignKeyViolation reports whether err is a Postgres FK violation on
// the named constraint. An empty constraint matches any FK violation.
func isForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
