package services

import (
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// CategoryService handles business logic related to categories.
//
// Deleting a category deliberately leaves products that carry its name alone;
// the category label on a product is plain text, not a foreign key.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves categories matching the optional filter.
func (s *CategoryService) GetAllCategories(filter *repositories.CategoryFilter) ([]models.Category, error) {
	return s.repo.GetAll(filter)
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// GetCategoryByName retrieves a category by its exact name.
func (s *CategoryService) GetCategoryByName(name string) (*models.Category, error) {
	return s.repo.GetByName(name)
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}

// UpdateCategory applies a partial update to an existing category.
func (s *CategoryService) UpdateCategory(id string, update models.CategoryUpdate) (*models.Category, error) {
	return s.repo.Update(id, update)
}

// DeleteCategory deletes a category by its ID, reporting whether it existed.
func (s *CategoryService) DeleteCategory(id string) (bool, error) {
	return s.repo.Delete(id)
}
