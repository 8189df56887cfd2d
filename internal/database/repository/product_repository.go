package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
)

// ProductStats carries the aggregate values the dashboard renders.
type ProductStats struct {
	Total          int64
	Active         int64
	InventoryValue float64
}

// ProductRepository defines owner-scoped access to products. The aggregate
// methods accept an empty ownerID to span all owners (admin dashboard reads).
type ProductRepository interface {
	ListByOwner(ownerID string) ([]models.Product, error)
	FindByIDAndOwner(id uint, ownerID string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	SoftDelete(id uint, ownerID string) error
	Stats(ownerID string) (*ProductStats, error)
	Recent(ownerID string, limit int) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) ListByOwner(ownerID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Category").
		Where("user_id = ? AND is_deleted = ?", ownerID, false).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByIDAndOwner(id uint, ownerID string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, ownerID, false).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Absent, soft-deleted and foreign-owned rows are indistinguishable
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", product.ID, product.UserID, false).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"image_url":   product.ImageURL,
			"is_active":   product.IsActive,
			"category_id": product.CategoryID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Product{}).
			Where("id = ? AND user_id = ? AND is_deleted = ?", product.ID, product.UserID, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProductNotFound
		}
		return ErrConflict
	}
	return nil
}

func (r *productRepository) SoftDelete(id uint, ownerID string) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, ownerID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Already-deleted rows are filtered out, so a repeat delete lands here
		return ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Stats(ownerID string) (*ProductStats, error) {
	stats := &ProductStats{}

	base := r.db.Model(&models.Product{}).Where("is_deleted = ?", false)
	if ownerID != "" {
		base = base.Where("user_id = ?", ownerID)
	}

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}

	var value *float64
	if err := base.Session(&gorm.Session{}).Select("SUM(price)").Scan(&value).Error; err != nil {
		return nil, err
	}
	if value != nil {
		stats.InventoryValue = *value
	}

	return stats, nil
}

func (r *productRepository) Recent(ownerID string, limit int) ([]models.Product, error) {
	var products []models.Product
	q := r.db.Preload("Category").Where("is_deleted = ?", false)
	if ownerID != "" {
		q = q.Where("user_id = ?", ownerID)
	}
	err := q.Order("created_at DESC").Limit(limit).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Repository errors
var (
	ErrProductNotFound = errors.New("product not found")
)
