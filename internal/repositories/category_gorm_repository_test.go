package repositories_test

import (
	"testing"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func setupCategoryRepo(t *testing.T) *repositories.GORMCategoryRepository {
	t.Helper()
	db := openCollection(t, "categories.db", &models.Category{})
	return repositories.NewGORMCategoryRepository(db)
}

func TestCategoryRepository_CreateAndGetByName(t *testing.T) {
	repo := setupCategoryRepo(t)

	category := &models.Category{Name: "Electronics", Description: "Powered devices"}
	err := repo.Create(category)
	assert.NoError(t, err)
	assert.NotEmpty(t, category.ID)

	fetched, err := repo.GetByName("Electronics")
	assert.NoError(t, err)
	assert.Equal(t, category.ID, fetched.ID)
	assert.Equal(t, "Electronics", fetched.Name)
	assert.Equal(t, "Powered devices", fetched.Description)

	// Name matching is exact, not case-insensitive.
	_, err = repo.GetByName("electronics")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCategoryRepository_DuplicateNameRejected(t *testing.T) {
	repo := setupCategoryRepo(t)

	assert.NoError(t, repo.Create(&models.Category{Name: "Office"}))

	err := repo.Create(&models.Category{Name: "Office", Description: "Second attempt"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateRecord)

	categories, err := repo.GetAll(nil)
	assert.NoError(t, err)
	assert.Len(t, categories, 1, "failed create must not leave a partial write")
}

func TestCategoryRepository_UpdateRenameCollision(t *testing.T) {
	repo := setupCategoryRepo(t)

	office := &models.Category{Name: "Office"}
	kitchen := &models.Category{Name: "Kitchen"}
	assert.NoError(t, repo.Create(office))
	assert.NoError(t, repo.Create(kitchen))

	collidingName := "Office"
	updated, err := repo.Update(kitchen.ID, models.CategoryUpdate{Name: &collidingName})
	assert.ErrorIs(t, err, repositories.ErrDuplicateRecord)
	assert.Nil(t, updated)

	// Both records are unchanged after the failed rename.
	fetched, err := repo.GetByID(kitchen.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Kitchen", fetched.Name)
	fetched, err = repo.GetByID(office.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Office", fetched.Name)
}

func TestCategoryRepository_ListSortedByName(t *testing.T) {
	repo := setupCategoryRepo(t)

	for _, name := range []string{"Tools", "Appliances", "Office"} {
		assert.NoError(t, repo.Create(&models.Category{Name: name}))
	}

	categories, err := repo.GetAll(nil)
	assert.NoError(t, err)
	assert.Len(t, categories, 3)
	assert.Equal(t, "Appliances", categories[0].Name)
	assert.Equal(t, "Office", categories[1].Name)
	assert.Equal(t, "Tools", categories[2].Name)
}

func TestCategoryRepository_Search(t *testing.T) {
	repo := setupCategoryRepo(t)

	assert.NoError(t, repo.Create(&models.Category{Name: "Garden", Description: "Outdoor equipment"}))
	assert.NoError(t, repo.Create(&models.Category{Name: "Office", Description: "Desks and chairs"}))

	categories, err := repo.GetAll(&repositories.CategoryFilter{Search: "OUTDOOR"})
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, "Garden", categories[0].Name)
}

func TestCategoryRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	repo := setupCategoryRepo(t)

	assert.NoError(t, repo.Create(&models.Category{Name: "Spare_Parts"}))
	assert.NoError(t, repo.Create(&models.Category{Name: "SpareXParts"}))

	categories, err := repo.GetAll(&repositories.CategoryFilter{Search: "e_p"})
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, "Spare_Parts", categories[0].Name)
}

func TestCategoryRepository_Delete(t *testing.T) {
	repo := setupCategoryRepo(t)

	category := &models.Category{Name: "Seasonal"}
	assert.NoError(t, repo.Create(category))

	removed, err := repo.Delete(category.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(category.ID)
	assert.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.GetByID(category.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
