package repositories

import (
	"errors"
	"fmt"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository backed
// by the products collection file.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves products matching the filter, most recently updated first.
func (r *GORMProductRepository) GetAll(filter *ProductFilter) ([]models.Product, error) {
	tx := r.db.Model(&models.Product{})

	if filter != nil {
		if filter.Search != "" {
			like := likePattern(filter.Search)
			tx = tx.Where(
				`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(barcode) LIKE ? ESCAPE '\'`,
				like, like, like,
			)
		}
		if filter.Category != "" {
			tx = tx.Where("category = ?", filter.Category)
		}
		if filter.MinStock != nil {
			tx = tx.Where("stock >= ?", *filter.MinStock)
		}
		if filter.MaxStock != nil {
			tx = tx.Where("stock <= ?", *filter.MaxStock)
		}
		if filter.MinPrice != nil {
			tx = tx.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			tx = tx.Where("price <= ?", *filter.MaxPrice)
		}
	}

	var products []models.Product
	if err := tx.Order("updated_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create persists a new product, generating its ID and stamping both
// timestamps to the same instant.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update merges the non-nil fields onto the stored product, re-stamps
// UpdatedAt and saves the whole record in one statement.
func (r *GORMProductRepository) Update(id string, update models.ProductUpdate) (*models.Product, error) {
	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	if update.MinStock != nil {
		product.MinStock = *update.MinStock
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Barcode != nil {
		product.Barcode = *update.Barcode
	}
	if update.Supplier != nil {
		product.Supplier = *update.Supplier
	}
	product.UpdatedAt = time.Now()

	if err := r.db.Save(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return product, nil
}

// Delete removes a product by its ID and reports whether a record existed.
func (r *GORMProductRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetLowStock retrieves products that are out of stock or at/below their
// minimum stock level, lowest stock first.
func (r *GORMProductRepository) GetLowStock() ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("stock = 0 OR (stock > 0 AND stock <= min_stock)").
		Order("stock ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock products: %w", err)
	}
	return products, nil
}
