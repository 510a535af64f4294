package testutil

import (
	"testing"

	"gorm.io/gorm"

	"diary/internal/repository"
)

// NewDB opens a throwaway SQLite database for a single test, migrated and
// cleaned up automatically.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(t.TempDir() + "/diary_test.db")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
