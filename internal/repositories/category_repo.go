package repositories

import (
	"gudang/internal/models"
)

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	Search string // case-insensitive substring over name, description
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll(filter *CategoryFilter) ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	Update(id string, update models.CategoryUpdate) (*models.Category, error)
	Delete(id string) (bool, error)
}
