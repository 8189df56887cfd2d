package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
)

// ==================== CATEGORY SERVICE TESTS ====================

func TestCategoryService_CreateStampsOwner(t *testing.T) {
	db := setupTestDB(t)
	user := &models.User{Email: "a@x.com", FullName: "Alice", PasswordHash: "h"}
	require.NoError(t, db.Create(user).Error)

	svc := NewCategoryService(repository.NewCategoryRepository(db), testLogger())

	category, err := svc.Create(user.ID, "Tools", nil)
	require.NoError(t, err)

	assert.Equal(t, user.ID, category.UserID)
	assert.False(t, category.IsDeleted)
	assert.False(t, category.CreatedAt.IsZero())
}

func TestCategoryService_DeleteTwice(t *testing.T) {
	db := setupTestDB(t)
	user := &models.User{Email: "a@x.com", FullName: "Alice", PasswordHash: "h"}
	require.NoError(t, db.Create(user).Error)

	svc := NewCategoryService(repository.NewCategoryRepository(db), testLogger())

	category, err := svc.Create(user.ID, "Tools", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID, category.ID))
	assert.ErrorIs(t, svc.Delete(user.ID, category.ID), repository.ErrCategoryNotFound)
}

// ==================== PRODUCT SERVICE TESTS ====================

func TestProductService_Create(t *testing.T) {
	db := setupTestDB(t)
	user := &models.User{Email: "a@x.com", FullName: "Alice", PasswordHash: "h"}
	require.NoError(t, db.Create(user).Error)
	other := &models.User{Email: "b@x.com", FullName: "Bob", PasswordHash: "h"}
	require.NoError(t, db.Create(other).Error)

	categoryRepo := repository.NewCategoryRepository(db)
	categorySvc := NewCategoryService(categoryRepo, testLogger())
	svc := NewProductService(repository.NewProductRepository(db), categoryRepo, testLogger())

	category, err := categorySvc.Create(user.ID, "Tools", nil)
	require.NoError(t, err)

	t.Run("stamps owner and lifecycle fields", func(t *testing.T) {
		product, err := svc.Create(user.ID, ProductInput{
			Name: "Hammer", Price: 12.5, IsActive: true, CategoryID: category.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, product.UserID)
		assert.False(t, product.IsDeleted)
		require.NotNil(t, product.Category)
		assert.Equal(t, "Tools", product.Category.Name)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := svc.Create(user.ID, ProductInput{
			Name: "Hammer", Price: 12.5, IsActive: true, CategoryID: 9999,
		})
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})

	t.Run("rejects deleted category", func(t *testing.T) {
		doomed, err := categorySvc.Create(user.ID, "Doomed", nil)
		require.NoError(t, err)
		require.NoError(t, categorySvc.Delete(user.ID, doomed.ID))

		_, err = svc.Create(user.ID, ProductInput{
			Name: "Hammer", Price: 12.5, IsActive: true, CategoryID: doomed.ID,
		})
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})

	t.Run("accepts another owner's live category", func(t *testing.T) {
		foreign, err := categorySvc.Create(other.ID, "Bob's", nil)
		require.NoError(t, err)

		product, err := svc.Create(user.ID, ProductInput{
			Name: "Borrowed", Price: 1, IsActive: true, CategoryID: foreign.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, product.UserID)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := svc.Create(user.ID, ProductInput{Name: "", Price: -1})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "name")
		assert.Contains(t, verr.Fields, "price")
		assert.Contains(t, verr.Fields, "category_id")
	})
}

func TestProductService_ListNeverLeaksForeignOrDeletedRows(t *testing.T) {
	db := setupTestDB(t)
	alice := &models.User{Email: "a@x.com", FullName: "Alice", PasswordHash: "h"}
	require.NoError(t, db.Create(alice).Error)
	bob := &models.User{Email: "b@x.com", FullName: "Bob", PasswordHash: "h"}
	require.NoError(t, db.Create(bob).Error)

	categoryRepo := repository.NewCategoryRepository(db)
	svc := NewProductService(repository.NewProductRepository(db), categoryRepo, testLogger())
	categorySvc := NewCategoryService(categoryRepo, testLogger())

	category, err := categorySvc.Create(alice.ID, "Tools", nil)
	require.NoError(t, err)

	kept, err := svc.Create(alice.ID, ProductInput{Name: "Kept", Price: 1, IsActive: true, CategoryID: category.ID})
	require.NoError(t, err)
	gone, err := svc.Create(alice.ID, ProductInput{Name: "Gone", Price: 1, IsActive: true, CategoryID: category.ID})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(alice.ID, gone.ID))
	_, err = svc.Create(bob.ID, ProductInput{Name: "Bob's", Price: 1, IsActive: true, CategoryID: category.ID})
	require.NoError(t, err)

	products, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, kept.ID, products[0].ID)

	// Bob cannot see or fetch Alice's product either
	_, err = svc.Get(bob.ID, kept.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

// ==================== DASHBOARD SERVICE TESTS ====================

func TestDashboardService_Summary(t *testing.T) {
	db := setupTestDB(t)
	alice := &models.User{Email: "a@x.com", FullName: "Alice", PasswordHash: "h"}
	require.NoError(t, db.Create(alice).Error)
	bob := &models.User{Email: "b@x.com", FullName: "Bob", PasswordHash: "h"}
	require.NoError(t, db.Create(bob).Error)

	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	categorySvc := NewCategoryService(categoryRepo, testLogger())
	productSvc := NewProductService(productRepo, categoryRepo, testLogger())
	svc := NewDashboardService(productRepo, categoryRepo, testLogger())

	category, err := categorySvc.Create(alice.ID, "Tools", nil)
	require.NoError(t, err)

	_, err = productSvc.Create(alice.ID, ProductInput{Name: "A", Price: 10, IsActive: true, CategoryID: category.ID})
	require.NoError(t, err)
	_, err = productSvc.Create(alice.ID, ProductInput{Name: "B", Price: 20, IsActive: false, CategoryID: category.ID})
	require.NoError(t, err)
	_, err = productSvc.Create(bob.ID, ProductInput{Name: "C", Price: 30, IsActive: true, CategoryID: category.ID})
	require.NoError(t, err)

	t.Run("regular user sees only their own products", func(t *testing.T) {
		summary, err := svc.Summary(alice.ID, false)
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.TotalProducts)
		assert.Equal(t, int64(1), summary.ActiveProducts)
		assert.Equal(t, 50, summary.ActivePercentage)
		assert.Equal(t, float64(30), summary.InventoryValue)
		assert.Equal(t, float64(15), summary.AveragePrice)
		assert.Len(t, summary.RecentProducts, 2)
	})

	t.Run("admin sees every owner", func(t *testing.T) {
		summary, err := svc.Summary(alice.ID, true)
		require.NoError(t, err)
		assert.Equal(t, int64(3), summary.TotalProducts)
		assert.Equal(t, float64(60), summary.InventoryValue)
		assert.Len(t, summary.RecentProducts, 3)
	})
}
