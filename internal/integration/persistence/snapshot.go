// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// readSnapshot runs fn inside a read-only transaction so that every query fn
// issues observes the same committed state. Isolation options are only passed
// to PostgreSQL; SQLite transactions are already serializable.
func readSnapshot(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var opts []*sql.TxOptions
	if db.Dialector.Name() == "postgres" {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	}
	return db.WithContext(ctx).Transaction(fn, opts...)
}
