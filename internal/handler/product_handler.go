package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
	"github.com/dimasfirmansyah/product-catalog/internal/database/service"
	"github.com/dimasfirmansyah/product-catalog/internal/middleware"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

type ProductRequest struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

func (r *ProductRequest) toInput() service.ProductInput {
	// New products default to active
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		IsActive:    isActive,
		CategoryID:  r.CategoryID,
	}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	products, err := h.service.List(callerID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.service.Get(callerID, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [ProductHandler] Invalid create request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Name (max 100 chars), price >= 0 and category_id required."})
		return
	}

	product, err := h.service.Create(callerID, req.toInput())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [ProductHandler] Invalid update request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Name (max 100 chars), price >= 0 and category_id required."})
		return
	}

	// Mismatched ids are rejected before any lookup happens
	if req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL id and body id do not match"})
		return
	}

	product, err := h.service.Update(callerID, id, req.toInput())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(callerID, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) handleServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields})
	case errors.Is(err, repository.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, repository.ErrCategoryNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced category does not exist"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Product was modified concurrently"})
	default:
		h.logger.Error("❌ [ProductHandler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
