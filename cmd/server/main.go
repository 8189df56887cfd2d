package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dimasfirmansyah/product-catalog/internal/api"
	"github.com/dimasfirmansyah/product-catalog/internal/config"
	"github.com/dimasfirmansyah/product-catalog/internal/database"
	"github.com/dimasfirmansyah/product-catalog/internal/database/repository"
	"github.com/dimasfirmansyah/product-catalog/internal/database/service"
	"github.com/dimasfirmansyah/product-catalog/internal/handler"
	"github.com/dimasfirmansyah/product-catalog/internal/logger"
	"github.com/dimasfirmansyah/product-catalog/internal/mailer"
	"github.com/dimasfirmansyah/product-catalog/internal/middleware"
	"github.com/dimasfirmansyah/product-catalog/internal/storage"
)

func main() {
	// 1. Config
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Catalog] Starting API server...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	if err := database.Seed(db, cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to seed database", "error", err)
		os.Exit(1)
	}

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)

	// 5. Initialize Collaborators
	mailSender := mailer.NewSMTPSender(cfg, appLogger)
	pictureStore := storage.NewPictureStore(cfg, appLogger)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, mailSender, cfg, appLogger)
	userService := service.NewUserService(userRepo, mailSender, cfg, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	productService := service.NewProductService(productRepo, categoryRepo, appLogger)
	dashboardService := service.NewDashboardService(productRepo, categoryRepo, appLogger)

	// 7. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	categoryHandler := handler.NewCategoryHandler(categoryService, appLogger)
	productHandler := handler.NewProductHandler(productService, appLogger)
	profileHandler := handler.NewProfileHandler(userService, pictureStore, appLogger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	r := api.SetupRouter(authHandler, categoryHandler, productHandler, profileHandler, dashboardHandler, authMiddleware, cfg)

	// 8. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.HTTPPort)
	appLogger.Info("🌍 [Catalog] HTTP Server running...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
