package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
)

// ==================== CATEGORY REPOSITORY TESTS ====================

func TestCategoryRepository_OwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	mine := &models.ProductCategory{Name: "Tools", UserID: owner.ID}
	require.NoError(t, repo.Create(mine))
	theirs := &models.ProductCategory{Name: "Toys", UserID: other.ID}
	require.NoError(t, repo.Create(theirs))

	t.Run("list only returns own rows", func(t *testing.T) {
		categories, err := repo.ListByOwner(owner.ID)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Tools", categories[0].Name)
		assert.Equal(t, owner.ID, categories[0].UserID)
	})

	t.Run("get by id misses foreign rows", func(t *testing.T) {
		_, err := repo.FindByIDAndOwner(theirs.ID, owner.ID)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("get by id finds own row", func(t *testing.T) {
		found, err := repo.FindByIDAndOwner(mine.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, mine.ID, found.ID)
	})
}

func TestCategoryRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	owner := createTestUser(t, db, "owner@example.com")

	category := &models.ProductCategory{Name: "Tools", UserID: owner.ID}
	require.NoError(t, repo.Create(category))

	require.NoError(t, repo.SoftDelete(category.ID, owner.ID))

	t.Run("row stays in storage", func(t *testing.T) {
		var raw models.ProductCategory
		require.NoError(t, db.Where("id = ?", category.ID).First(&raw).Error)
		assert.True(t, raw.IsDeleted)
	})

	t.Run("deleted rows are invisible", func(t *testing.T) {
		categories, err := repo.ListByOwner(owner.ID)
		require.NoError(t, err)
		assert.Empty(t, categories)

		_, err = repo.FindByIDAndOwner(category.ID, owner.ID)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		err := repo.SoftDelete(category.ID, owner.ID)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestCategoryRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	category := &models.ProductCategory{Name: "Tools", UserID: owner.ID}
	require.NoError(t, repo.Create(category))

	t.Run("owner can update", func(t *testing.T) {
		desc := "hand tools"
		err := repo.Update(&models.ProductCategory{
			ID:          category.ID,
			Name:        "Hand Tools",
			Description: &desc,
			UserID:      owner.ID,
		})
		require.NoError(t, err)

		updated, err := repo.FindByIDAndOwner(category.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hand Tools", updated.Name)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "hand tools", *updated.Description)
	})

	t.Run("foreign owner gets not found", func(t *testing.T) {
		err := repo.Update(&models.ProductCategory{
			ID:     category.ID,
			Name:   "Hijacked",
			UserID: other.ID,
		})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("updating a deleted row reports not found", func(t *testing.T) {
		require.NoError(t, repo.SoftDelete(category.ID, owner.ID))
		err := repo.Update(&models.ProductCategory{
			ID:     category.ID,
			Name:   "Too Late",
			UserID: owner.ID,
		})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestCategoryRepository_FindActiveByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	owner := createTestUser(t, db, "owner@example.com")

	category := &models.ProductCategory{Name: "Tools", UserID: owner.ID}
	require.NoError(t, repo.Create(category))

	found, err := repo.FindActiveByID(category.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)

	require.NoError(t, repo.SoftDelete(category.ID, owner.ID))
	_, err = repo.FindActiveByID(category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
