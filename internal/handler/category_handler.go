package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
	"github.com/dimasfirmansyah/product-catalog/internal/database/service"
	"github.com/dimasfirmansyah/product-catalog/internal/middleware"
)

// CategoryHandler handles HTTP requests for product categories
type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

type CategoryRequest struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
}

// List handles GET /product-categories
func (h *CategoryHandler) List(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	categories, err := h.service.List(callerID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Get handles GET /product-categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.service.Get(callerID, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Create handles POST /product-categories
func (h *CategoryHandler) Create(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [CategoryHandler] Invalid create request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Name (max 100 chars) required."})
		return
	}

	category, err := h.service.Create(callerID, req.Name, req.Description)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// Update handles PUT /product-categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [CategoryHandler] Invalid update request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Name (max 100 chars) required."})
		return
	}

	// Mismatched ids are rejected before any lookup happens
	if req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL id and body id do not match"})
		return
	}

	category, err := h.service.Update(callerID, id, req.Name, req.Description)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /product-categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
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

func (h *CategoryHandler) handleServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields})
	case errors.Is(err, repository.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Category was modified concurrently"})
	default:
		h.logger.Error("❌ [CategoryHandler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseID reads the numeric :id path parameter, responding 400 on garbage.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
