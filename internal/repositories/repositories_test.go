package repositories_test

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openCollection opens a throwaway sqlite collection file the same way the
// datastore does, including error translation for unique-index violations.
func openCollection(t *testing.T, name string, model interface{}) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test collection %s: %v", name, err)
	}
	if err := db.AutoMigrate(model); err != nil {
		t.Fatalf("failed to migrate test collection %s: %v", name, err)
	}
	return db
}
