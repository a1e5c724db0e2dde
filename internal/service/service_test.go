package service

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"bardabar-be-svc/internal/config"
	"bardabar-be-svc/internal/database"
	"bardabar-be-svc/pkg/logger"
)

// newTestDB opens a throwaway sqlite database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewDatabase(&config.DatabaseConfig{
		Driver: "sqlite",
		DBName: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db.DB
}

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}
