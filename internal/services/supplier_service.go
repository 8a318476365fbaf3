package services

import (
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// SupplierService handles business logic related to suppliers.
type SupplierService struct {
	repo repositories.SupplierRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(repo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{
		repo: repo,
	}
}

// GetAllSuppliers retrieves suppliers matching the optional filter.
func (s *SupplierService) GetAllSuppliers(filter *repositories.SupplierFilter) ([]models.Supplier, error) {
	return s.repo.GetAll(filter)
}

// GetSupplierByID retrieves a single supplier by its ID.
func (s *SupplierService) GetSupplierByID(id string) (*models.Supplier, error) {
	return s.repo.GetByID(id)
}

// GetSupplierByName retrieves a supplier by its exact name.
func (s *SupplierService) GetSupplierByName(name string) (*models.Supplier, error) {
	return s.repo.GetByName(name)
}

// CreateSupplier creates a new supplier.
func (s *SupplierService) CreateSupplier(supplier *models.Supplier) error {
	return s.repo.Create(supplier)
}

// UpdateSupplier applies a partial update to an existing supplier.
func (s *SupplierService) UpdateSupplier(id string, update models.SupplierUpdate) (*models.Supplier, error) {
	return s.repo.Update(id, update)
}

// DeleteSupplier deletes a supplier by its ID, reporting whether it existed.
func (s *SupplierService) DeleteSupplier(id string) (bool, error) {
	return s.repo.Delete(id)
}
