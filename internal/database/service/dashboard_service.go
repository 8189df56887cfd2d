package service

import (
	"log/slog"
	"math"

	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
)

// DashboardSummary is the read-only aggregate view over the catalog.
type DashboardSummary struct {
	TotalProducts       int64            `json:"total_products"`
	TotalCategories     int64            `json:"total_categories"`
	ActiveProducts      int64            `json:"active_products"`
	ActivePercentage    int              `json:"active_percentage"`
	InventoryValue      float64          `json:"inventory_value"`
	AveragePrice        float64          `json:"average_price"`
	ProductsPerCategory float64          `json:"products_per_category"`
	RecentProducts      []models.Product `json:"recent_products"`
}

// DashboardService computes catalog aggregates. Admin callers see every
// owner's rows; everyone else only their own.
type DashboardService interface {
	Summary(callerID string, isAdmin bool) (*DashboardSummary, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *dashboardService) Summary(callerID string, isAdmin bool) (*DashboardSummary, error) {
	owner := callerID
	if isAdmin {
		owner = ""
	}

	stats, err := s.productRepo.Stats(owner)
	if err != nil {
		return nil, err
	}

	totalCategories, err := s.categoryRepo.CountActive()
	if err != nil {
		return nil, err
	}

	recent, err := s.productRepo.Recent(owner, 5)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TotalProducts:   stats.Total,
		TotalCategories: totalCategories,
		ActiveProducts:  stats.Active,
		InventoryValue:  stats.InventoryValue,
		RecentProducts:  recent,
	}

	if stats.Total > 0 {
		summary.ActivePercentage = int(math.Round(float64(stats.Active) / float64(stats.Total) * 100))
		summary.AveragePrice = stats.InventoryValue / float64(stats.Total)
	}
	if totalCategories > 0 {
		summary.ProductsPerCategory = math.Round(float64(stats.Total)/float64(totalCategories)*10) / 10
	}

	return summary, nil
}
