package services

import (
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves products matching the optional filter.
func (s *ProductService) GetAllProducts(filter *repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.GetAll(filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. The repository assigns the ID and
// timestamps.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct applies a partial update to an existing product.
func (s *ProductService) UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error) {
	return s.repo.Update(id, update)
}

// DeleteProduct deletes a product by its ID, reporting whether it existed.
func (s *ProductService) DeleteProduct(id string) (bool, error) {
	return s.repo.Delete(id)
}

// GetLowStockProducts retrieves products that need restocking.
func (s *ProductService) GetLowStockProducts() ([]models.Product, error) {
	return s.repo.GetLowStock()
}
