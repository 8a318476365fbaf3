package repositories

import (
	"gudang/internal/models"
)

// SupplierFilter narrows a supplier listing.
type SupplierFilter struct {
	Search string // case-insensitive substring over name, contactPerson, email
}

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	GetAll(filter *SupplierFilter) ([]models.Supplier, error)
	GetByID(id string) (*models.Supplier, error)
	GetByName(name string) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(id string, update models.SupplierUpdate) (*models.Supplier, error)
	Delete(id string) (bool, error)
}
