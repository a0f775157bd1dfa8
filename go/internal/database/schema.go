// Package database owns the relational schema of the service.
package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL applied by EnsureSchema
func Schema() string {
	return schemaSQL
}

// Execer is the subset of *sql.DB needed to apply the schema
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// EnsureSchema creates any missing tables and indexes. It is idempotent and
// safe to run on every startup.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Msg("database schema ensured")
	return nil
}
