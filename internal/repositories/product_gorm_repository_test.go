package repositories_test

import (
	"testing"
	"time"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func setupProductRepo(t *testing.T) *repositories.GORMProductRepository {
	t.Helper()
	db := openCollection(t, "products.db", &models.Product{})
	return repositories.NewGORMProductRepository(db)
}

func newTestProduct(name string, price float64, stock, minStock int) *models.Product {
	return &models.Product{
		Name:        name,
		Description: "Test product " + name,
		Price:       price,
		Stock:       stock,
		MinStock:    minStock,
		Category:    "General",
	}
}

func TestProductRepository_CreateAndGetByID(t *testing.T) {
	repo := setupProductRepo(t)

	product := newTestProduct("Desk Lamp", 35.50, 12, 3)
	product.Barcode = "4006381333931"
	product.Supplier = "Acme Trading"

	err := repo.Create(product)
	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)

	fetched, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ID, fetched.ID)
	assert.Equal(t, "Desk Lamp", fetched.Name)
	assert.Equal(t, 35.50, fetched.Price)
	assert.Equal(t, "4006381333931", fetched.Barcode)
	assert.Equal(t, "Acme Trading", fetched.Supplier)
}

func TestProductRepository_GetByIDNotFound(t *testing.T) {
	repo := setupProductRepo(t)

	product, err := repo.GetByID("does-not-exist")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
}

func TestProductRepository_EmptyUpdateOnlyRestampsUpdatedAt(t *testing.T) {
	repo := setupProductRepo(t)

	product := newTestProduct("Table", 120.00, 4, 1)
	assert.NoError(t, repo.Create(product))

	time.Sleep(10 * time.Millisecond)

	updated, err := repo.Update(product.ID, models.ProductUpdate{})
	assert.NoError(t, err)
	assert.Equal(t, product.Name, updated.Name)
	assert.Equal(t, product.Description, updated.Description)
	assert.Equal(t, product.Price, updated.Price)
	assert.Equal(t, product.Stock, updated.Stock)
	assert.Equal(t, product.MinStock, updated.MinStock)
	assert.Equal(t, product.Category, updated.Category)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt),
		"UpdatedAt must be strictly later than CreatedAt after an update")
}

func TestProductRepository_PartialUpdateMergesFields(t *testing.T) {
	repo := setupProductRepo(t)

	product := newTestProduct("Chair", 45.00, 8, 2)
	assert.NoError(t, repo.Create(product))

	newPrice := 49.90
	newStock := 6
	updated, err := repo.Update(product.ID, models.ProductUpdate{
		Price: &newPrice,
		Stock: &newStock,
	})
	assert.NoError(t, err)
	assert.Equal(t, 49.90, updated.Price)
	assert.Equal(t, 6, updated.Stock)
	assert.Equal(t, "Chair", updated.Name, "untouched fields keep their values")

	// Zero values must be settable, not skipped.
	zeroStock := 0
	updated, err = repo.Update(product.ID, models.ProductUpdate{Stock: &zeroStock})
	assert.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)
}

func TestProductRepository_UpdateNotFound(t *testing.T) {
	repo := setupProductRepo(t)

	newName := "Ghost"
	updated, err := repo.Update("does-not-exist", models.ProductUpdate{Name: &newName})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, updated)
}

func TestProductRepository_Delete(t *testing.T) {
	repo := setupProductRepo(t)

	product := newTestProduct("Shelf", 80.00, 3, 1)
	assert.NoError(t, repo.Create(product))

	// Deleting a missing id reports false and changes nothing.
	removed, err := repo.Delete("does-not-exist")
	assert.NoError(t, err)
	assert.False(t, removed)

	all, err := repo.GetAll(nil)
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	// Deleting the existing record reports true, and the id is gone.
	removed, err = repo.Delete(product.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	_, err = repo.GetByID(product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductRepository_SearchIsCaseInsensitive(t *testing.T) {
	repo := setupProductRepo(t)

	for _, name := range []string{"Desk Lamp", "Table", "Lamp Shade"} {
		assert.NoError(t, repo.Create(newTestProduct(name, 10.0, 5, 1)))
	}

	products, err := repo.GetAll(&repositories.ProductFilter{Search: "lamp"})
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	names := []string{products[0].Name, products[1].Name}
	assert.Contains(t, names, "Desk Lamp")
	assert.Contains(t, names, "Lamp Shade")
}

func TestProductRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	repo := setupProductRepo(t)

	assert.NoError(t, repo.Create(newTestProduct("ABC_DEF", 5.0, 5, 1)))
	assert.NoError(t, repo.Create(newTestProduct("ABCXDEF", 5.0, 5, 1)))
	assert.NoError(t, repo.Create(newTestProduct("100% Cotton", 5.0, 5, 1)))
	assert.NoError(t, repo.Create(newTestProduct("100 Cotton", 5.0, 5, 1)))

	// _ is a plain character, not a single-character wildcard.
	products, err := repo.GetAll(&repositories.ProductFilter{Search: "c_d"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "ABC_DEF", products[0].Name)

	// % is a plain character, not a run wildcard.
	products, err = repo.GetAll(&repositories.ProductFilter{Search: "0% c"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "100% Cotton", products[0].Name)
}

func TestProductRepository_SearchMatchesBarcode(t *testing.T) {
	repo := setupProductRepo(t)

	tagged := newTestProduct("Widget", 5.0, 5, 1)
	tagged.Barcode = "ABC-123"
	assert.NoError(t, repo.Create(tagged))
	assert.NoError(t, repo.Create(newTestProduct("Gadget", 5.0, 5, 1)))

	products, err := repo.GetAll(&repositories.ProductFilter{Search: "abc-12"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestProductRepository_PriceRangeIsInclusive(t *testing.T) {
	repo := setupProductRepo(t)

	for _, price := range []float64{9.99, 10.00, 15.00, 20.00, 20.01} {
		assert.NoError(t, repo.Create(newTestProduct("P", price, 5, 1)))
	}

	minPrice, maxPrice := 10.0, 20.0
	products, err := repo.GetAll(&repositories.ProductFilter{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, 10.0)
		assert.LessOrEqual(t, p.Price, 20.0)
	}
}

func TestProductRepository_StockRangeAndCategoryFilter(t *testing.T) {
	repo := setupProductRepo(t)

	electronics := newTestProduct("Router", 60.0, 2, 1)
	electronics.Category = "Electronics"
	assert.NoError(t, repo.Create(electronics))

	furniture := newTestProduct("Stool", 25.0, 9, 2)
	furniture.Category = "Furniture"
	assert.NoError(t, repo.Create(furniture))

	minStock := 5
	products, err := repo.GetAll(&repositories.ProductFilter{MinStock: &minStock})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Stool", products[0].Name)

	products, err = repo.GetAll(&repositories.ProductFilter{Category: "Electronics"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Router", products[0].Name)

	products, err = repo.GetAll(&repositories.ProductFilter{Category: "Toys"})
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_ListSortedByUpdatedAtDesc(t *testing.T) {
	repo := setupProductRepo(t)

	first := newTestProduct("First", 1.0, 1, 0)
	assert.NoError(t, repo.Create(first))
	time.Sleep(10 * time.Millisecond)
	second := newTestProduct("Second", 2.0, 1, 0)
	assert.NoError(t, repo.Create(second))
	time.Sleep(10 * time.Millisecond)

	// Touching the oldest record moves it to the front.
	newName := "First Touched"
	_, err := repo.Update(first.ID, models.ProductUpdate{Name: &newName})
	assert.NoError(t, err)

	products, err := repo.GetAll(nil)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "First Touched", products[0].Name)
	assert.Equal(t, "Second", products[1].Name)
}

func TestProductRepository_GetLowStock(t *testing.T) {
	repo := setupProductRepo(t)

	assert.NoError(t, repo.Create(newTestProduct("Out", 1.0, 0, 5)))
	assert.NoError(t, repo.Create(newTestProduct("Low", 1.0, 3, 5)))
	assert.NoError(t, repo.Create(newTestProduct("Fine", 1.0, 10, 5)))
	assert.NoError(t, repo.Create(newTestProduct("OutZeroMin", 1.0, 0, 0)))

	products, err := repo.GetLowStock()
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	// Lowest stock first; the two zero-stock records precede the low one.
	assert.Equal(t, 0, products[0].Stock)
	assert.Equal(t, 0, products[1].Stock)
	assert.Equal(t, 3, products[2].Stock)
}
