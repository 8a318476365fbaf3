package datastore

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gudang/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Client holds the three embedded collections, one sqlite file per entity
// type under the application data directory. Each collection is exclusively
// owned by this process for the lifetime of the client.
type Client struct {
	Products   *gorm.DB
	Categories *gorm.DB
	Suppliers  *gorm.DB
}

// Config holds datastore settings.
type Config struct {
	Dir string // application data directory; created if missing
}

// NewClient opens the collection files and migrates their schemas. Unique and
// lookup indexes are created here from the model tags, so later writes fail
// fast on duplicate names instead of corrupting a collection.
func NewClient(cfg Config) (*Client, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.Dir, err)
	}

	products, err := open(filepath.Join(cfg.Dir, "products.db"), &models.Product{})
	if err != nil {
		return nil, err
	}
	categories, err := open(filepath.Join(cfg.Dir, "categories.db"), &models.Category{})
	if err != nil {
		closeDB(products)
		return nil, err
	}
	suppliers, err := open(filepath.Join(cfg.Dir, "suppliers.db"), &models.Supplier{})
	if err != nil {
		closeDB(products)
		closeDB(categories)
		return nil, err
	}

	log.Printf("Datastore opened under %s", cfg.Dir)

	return &Client{
		Products:   products,
		Categories: categories,
		Suppliers:  suppliers,
	}, nil
}

// open connects one collection file and migrates its schema.
// TranslateError lets callers detect unique-index violations via
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func open(path string, model interface{}) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open collection %s: %w", path, err)
	}
	if err := db.AutoMigrate(model); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to migrate collection %s: %w", path, err)
	}
	return db, nil
}

// Close closes all collection files.
func (c *Client) Close() error {
	var errs []error
	for _, db := range []*gorm.DB{c.Products, c.Categories, c.Suppliers} {
		if db == nil {
			continue
		}
		if err := closeDB(db); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during datastore close: %v", errs)
	}
	return nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close collection: %w", err)
	}
	return nil
}
