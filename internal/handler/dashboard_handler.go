package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimasfirmansyah/product-catalog/internal/database/service"
	"github.com/dimasfirmansyah/product-catalog/internal/middleware"
)

// DashboardHandler serves the aggregate catalog view
type DashboardHandler struct {
	service service.DashboardService
	logger  *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// Summary handles GET /dashboard. Admins see aggregates across all owners.
func (h *DashboardHandler) Summary(c *gin.Context) {
	claims, ok := middleware.CallerClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.service.Summary(claims.UserID, claims.IsAdmin())
	if err != nil {
		h.logger.Error("❌ [DashboardHandler] Failed to compute summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
