package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the filter and sort semantics of the GORM store so tests can run
// without touching disk.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns products matching the filter, most recently updated first.
func (r *MockProductRepository) GetAll(filter *ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesProductFilter(p, filter) {
			productList = append(productList, p)
		}
	}
	sort.Slice(productList, func(i, j int) bool {
		return productList[i].UpdatedAt.After(productList[j].UpdatedAt)
	})
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Create adds a new product, generating its ID and timestamps.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, ok := r.products[product.ID]; ok {
		return ErrDuplicateRecord
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

// Update merges the non-nil fields onto an existing product.
func (r *MockProductRepository) Update(id string, update models.ProductUpdate) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
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

	r.products[id] = product
	return &product, nil
}

// Delete removes a product by its ID and reports whether it existed.
func (r *MockProductRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

// GetLowStock returns products that are out of stock or at/below their
// minimum stock level, lowest stock first.
func (r *MockProductRepository) GetLowStock() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0)
	for _, p := range r.products {
		if p.Stock == 0 || (p.Stock > 0 && p.Stock <= p.MinStock) {
			productList = append(productList, p)
		}
	}
	sort.Slice(productList, func(i, j int) bool {
		return productList[i].Stock < productList[j].Stock
	})
	return productList, nil
}

func matchesProductFilter(p models.Product, filter *ProductFilter) bool {
	if filter == nil {
		return true
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!strings.Contains(strings.ToLower(p.Barcode), needle) {
			return false
		}
	}
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.MinStock != nil && p.Stock < *filter.MinStock {
		return false
	}
	if filter.MaxStock != nil && p.Stock > *filter.MaxStock {
		return false
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	return true
}
