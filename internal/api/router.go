package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dimasfirmansyah/product-catalog/internal/config"
	"github.com/dimasfirmansyah/product-catalog/internal/handler"
	"github.com/dimasfirmansyah/product-catalog/internal/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	profileHandler *handler.ProfileHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Uploaded profile pictures are served as plain static files
	r.Static("/uploads", cfg.UploadDir)

	// Public routes
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (Public)
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.GET("/confirm-email", authHandler.ConfirmEmail)
		authGroup.POST("/login", authHandler.Login)
	}

	// Protected API routes
	api := r.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/product-categories", categoryHandler.List)
		api.GET("/product-categories/:id", categoryHandler.Get)
		api.POST("/product-categories", categoryHandler.Create)
		api.PUT("/product-categories/:id", categoryHandler.Update)
		api.DELETE("/product-categories/:id", categoryHandler.Delete)

		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.POST("/products", productHandler.Create)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)
		api.POST("/profile/change-password", profileHandler.ChangePassword)

		api.GET("/dashboard", dashboardHandler.Summary)
	}

	return r
}
