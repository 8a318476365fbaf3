package repositories

import (
	"errors"
	"fmt"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{
		db: db,
	}
}

// GetAll retrieves suppliers matching the filter, sorted by name.
func (r *GORMSupplierRepository) GetAll(filter *SupplierFilter) ([]models.Supplier, error) {
	tx := r.db.Model(&models.Supplier{})

	if filter != nil && filter.Search != "" {
		like := likePattern(filter.Search)
		tx = tx.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(contact_person) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			like, like, like,
		)
	}

	var suppliers []models.Supplier
	if err := tx.Order("name ASC").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all suppliers: %w", err)
	}
	return suppliers, nil
}

// GetByID retrieves a single supplier by its ID.
func (r *GORMSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get supplier by ID %s: %w", id, err)
	}
	return &supplier, nil
}

// GetByName retrieves a supplier by its exact unique name.
func (r *GORMSupplierRepository) GetByName(name string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get supplier by name %s: %w", name, err)
	}
	return &supplier, nil
}

// Create persists a new supplier. A name already in use fails with
// ErrDuplicateRecord and writes nothing.
func (r *GORMSupplierRepository) Create(supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	now := time.Now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	if err := r.db.Create(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update merges the non-nil fields onto the stored supplier and re-stamps
// UpdatedAt. Renaming onto another supplier's name fails with
// ErrDuplicateRecord, leaving both records unchanged.
func (r *GORMSupplierRepository) Update(id string, update models.SupplierUpdate) (*models.Supplier, error) {
	supplier, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		supplier.Name = *update.Name
	}
	if update.ContactPerson != nil {
		supplier.ContactPerson = *update.ContactPerson
	}
	if update.Email != nil {
		supplier.Email = *update.Email
	}
	if update.Phone != nil {
		supplier.Phone = *update.Phone
	}
	if update.Address != nil {
		supplier.Address = *update.Address
	}
	supplier.UpdatedAt = time.Now()

	if err := r.db.Save(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("failed to update supplier %s: %w", id, err)
	}
	return supplier, nil
}

// Delete removes a supplier by its ID and reports whether a record existed.
func (r *GORMSupplierRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete supplier %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
