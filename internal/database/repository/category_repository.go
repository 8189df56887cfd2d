package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
)

// CategoryRepository defines owner-scoped access to product categories. Every
// read and write takes the caller's owner id and filters on is_deleted
// explicitly; there is no implicit global scoping.
type CategoryRepository interface {
	ListByOwner(ownerID string) ([]models.ProductCategory, error)
	FindByIDAndOwner(id uint, ownerID string) (*models.ProductCategory, error)
	// FindActiveByID looks a category up without an owner filter. It backs
	// product category references, which accept any live category.
	FindActiveByID(id uint) (*models.ProductCategory, error)
	Create(category *models.ProductCategory) error
	Update(category *models.ProductCategory) error
	SoftDelete(id uint, ownerID string) error
	CountActive() (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListByOwner(ownerID string) ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	err := r.db.
		Where("user_id = ? AND is_deleted = ?", ownerID, false).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByIDAndOwner(id uint, ownerID string) (*models.ProductCategory, error) {
	var category models.ProductCategory
	err := r.db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, ownerID, false).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Absent, soft-deleted and foreign-owned rows are indistinguishable
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindActiveByID(id uint) (*models.ProductCategory, error) {
	var category models.ProductCategory
	err := r.db.
		Where("id = ? AND is_deleted = ?", id, false).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(category *models.ProductCategory) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) Update(category *models.ProductCategory) error {
	res := r.db.Model(&models.ProductCategory{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", category.ID, category.UserID, false).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Re-check once: a vanished row is not-found, anything else is a
		// write conflict that the caller must surface.
		var count int64
		if err := r.db.Model(&models.ProductCategory{}).
			Where("id = ? AND user_id = ? AND is_deleted = ?", category.ID, category.UserID, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCategoryNotFound
		}
		return ErrConflict
	}
	return nil
}

func (r *categoryRepository) SoftDelete(id uint, ownerID string) error {
	res := r.db.Model(&models.ProductCategory{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, ownerID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Already-deleted rows are filtered out, so a repeat delete lands here
		return ErrCategoryNotFound
	}
	return nil
}

func (r *categoryRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductCategory{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}

// Repository errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrConflict         = errors.New("concurrent update conflict")
)
