package repositories

import (
	"errors"
	"fmt"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves categories matching the filter, sorted by name.
func (r *GORMCategoryRepository) GetAll(filter *CategoryFilter) ([]models.Category, error) {
	tx := r.db.Model(&models.Category{})

	if filter != nil && filter.Search != "" {
		like := likePattern(filter.Search)
		tx = tx.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, like, like)
	}

	var categories []models.Category
	if err := tx.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// GetByName retrieves a category by its exact unique name.
func (r *GORMCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by name %s: %w", name, err)
	}
	return &category, nil
}

// Create persists a new category. A name already in use fails with
// ErrDuplicateRecord and writes nothing.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update merges the non-nil fields onto the stored category and re-stamps
// UpdatedAt. Renaming onto another category's name fails with
// ErrDuplicateRecord, leaving both records unchanged.
func (r *GORMCategoryRepository) Update(id string, update models.CategoryUpdate) (*models.Category, error) {
	category, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Description != nil {
		category.Description = *update.Description
	}
	category.UpdatedAt = time.Now()

	if err := r.db.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return category, nil
}

// Delete removes a category by its ID and reports whether a record existed.
// Products referencing the category's name are left untouched.
func (r *GORMCategoryRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete category %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
