// Package database opens the relational store and applies SQL migrations.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // cgo-free SQLite driver

	"github.com/soranjiro/AxI-itinerary/internal/config"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know bindvars for.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Connect opens the configured database and verifies the connection.
func Connect(cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate applies every migrations/*.sql file in lexical order, each in its
// own transaction. A failed migration is rolled back and skipped.
func Migrate(db *sqlx.DB, dir string, logger *zap.Logger) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			logger.Warn("migration failed", zap.String("file", file), zap.Error(err))
			continue
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", file, err)
		}
		logger.Info("migration applied", zap.String("file", file))
	}
	return nil
}
