package repositories

import (
	"gudang/internal/models"
)

// ProductFilter narrows a product listing. All predicates are optional and
// ANDed together; a nil bound leaves that side unbounded.
type ProductFilter struct {
	Search   string // case-insensitive substring over name, description, barcode
	Category string // exact match
	MinStock *int
	MaxStock *int
	MinPrice *float64
	MaxPrice *float64
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(filter *ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, update models.ProductUpdate) (*models.Product, error)
	Delete(id string) (bool, error)
	GetLowStock() ([]models.Product, error)
}
