package database

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tannu371/getting-to-know-kanji/models"
)

// Connect opens (creating on first run) the SQLite order ledger under dataDir
// and ensures the orders table exists. AutoMigrate is idempotent, so calling
// this on every process start is safe.
//
// The returned handle is meant to be injected into repositories rather than
// held as a package global, so tests can run against a throwaway database.
func Connect(dataDir string, logger *zap.Logger) (*gorm.DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}

	dbPath := filepath.Join(dataDir, "orders.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %s: %w", dbPath, err)
	}

	if err := db.AutoMigrate(&models.Order{}); err != nil {
		return nil, fmt.Errorf("migrate orders table: %w", err)
	}

	logger.Info("Connected to SQLite ledger", zap.String("path", dbPath))
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
