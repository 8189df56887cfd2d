package service

import (
	"log/slog"
	"time"

	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
)

// ProductInput carries the client-controlled product fields. Owner and
// lifecycle fields are deliberately absent; the service stamps them.
type ProductInput struct {
	Name        string
	Description *string
	Price       float64
	ImageURL    *string
	IsActive    bool
	CategoryID  uint
}

// ProductService defines owner-scoped product operations.
type ProductService interface {
	List(callerID string) ([]models.Product, error)
	Get(callerID string, id uint) (*models.Product, error)
	Create(callerID string, input ProductInput) (*models.Product, error)
	Update(callerID string, id uint, input ProductInput) (*models.Product, error)
	Delete(callerID string, id uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *productService) List(callerID string) ([]models.Product, error) {
	return s.productRepo.ListByOwner(callerID)
}

func (s *productService) Get(callerID string, id uint) (*models.Product, error) {
	return s.productRepo.FindByIDAndOwner(id, callerID)
}

func (s *productService) Create(callerID string, input ProductInput) (*models.Product, error) {
	if verr := validateProductInput(input); verr != nil {
		return nil, verr
	}

	// The referenced category must be live; it is not required to belong to
	// the caller.
	if _, err := s.categoryRepo.FindActiveByID(input.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
		CategoryID:  input.CategoryID,
		UserID:      callerID,
		IsDeleted:   false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.Create(product); err != nil {
		s.logger.Error("❌ [ProductService] Failed to create product", "owner", callerID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ProductService] Product created", "product_id", product.ID, "owner", callerID)
	return s.productRepo.FindByIDAndOwner(product.ID, callerID)
}

func (s *productService) Update(callerID string, id uint, input ProductInput) (*models.Product, error) {
	if verr := validateProductInput(input); verr != nil {
		return nil, verr
	}

	if _, err := s.categoryRepo.FindActiveByID(input.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
		CategoryID:  input.CategoryID,
		UserID:      callerID,
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	return s.productRepo.FindByIDAndOwner(id, callerID)
}

func (s *productService) Delete(callerID string, id uint) error {
	if err := s.productRepo.SoftDelete(id, callerID); err != nil {
		return err
	}

	s.logger.Info("🗑️ [ProductService] Product soft-deleted", "product_id", id, "owner", callerID)
	return nil
}

func validateProductInput(input ProductInput) *ValidationError {
	fields := map[string]string{}
	if input.Name == "" {
		fields["name"] = "is required"
	} else if len(input.Name) > 100 {
		fields["name"] = "must be at most 100 characters"
	}
	if input.Price < 0 {
		fields["price"] = "must not be negative"
	}
	if input.CategoryID == 0 {
		fields["category_id"] = "is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
