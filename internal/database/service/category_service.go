package service

import (
	"log/slog"
	"time"

	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
)

// CategoryService defines owner-scoped category operations. Every method takes
// the resolved caller id and never exposes rows belonging to other owners.
type CategoryService interface {
	List(callerID string) ([]models.ProductCategory, error)
	Get(callerID string, id uint) (*models.ProductCategory, error)
	Create(callerID, name string, description *string) (*models.ProductCategory, error)
	Update(callerID string, id uint, name string, description *string) (*models.ProductCategory, error)
	Delete(callerID string, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *categoryService) List(callerID string) ([]models.ProductCategory, error) {
	return s.categoryRepo.ListByOwner(callerID)
}

func (s *categoryService) Get(callerID string, id uint) (*models.ProductCategory, error) {
	return s.categoryRepo.FindByIDAndOwner(id, callerID)
}

func (s *categoryService) Create(callerID, name string, description *string) (*models.ProductCategory, error) {
	// Ownership and lifecycle fields are always stamped server-side
	category := &models.ProductCategory{
		Name:        name,
		Description: description,
		UserID:      callerID,
		IsDeleted:   false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.categoryRepo.Create(category); err != nil {
		s.logger.Error("❌ [CategoryService] Failed to create category", "owner", callerID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [CategoryService] Category created", "category_id", category.ID, "owner", callerID)
	return category, nil
}

func (s *categoryService) Update(callerID string, id uint, name string, description *string) (*models.ProductCategory, error) {
	category := &models.ProductCategory{
		ID:          id,
		Name:        name,
		Description: description,
		UserID:      callerID,
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return s.categoryRepo.FindByIDAndOwner(id, callerID)
}

func (s *categoryService) Delete(callerID string, id uint) error {
	if err := s.categoryRepo.SoftDelete(id, callerID); err != nil {
		return err
	}

	s.logger.Info("🗑️ [CategoryService] Category soft-deleted", "category_id", id, "owner", callerID)
	return nil
}
