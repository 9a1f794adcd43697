package routes

import (
	"net/http"

	"github.com/sbaumgartner/MBGolfers2/internal/api/handlers"
	"github.com/sbaumgartner/MBGolfers2/internal/api/middleware"
	"github.com/sbaumgartner/MBGolfers2/internal/auth"
	"github.com/sbaumgartner/MBGolfers2/internal/config"
	"github.com/sbaumgartner/MBGolfers2/internal/repository"
	"github.com/sbaumgartner/MBGolfers2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	playgroupRepo := repository.NewPlaygroupRepository(db)
	teeTimeRepo := repository.NewTeeTimeRepository(db)

	// Initialize services
	playgroupService := service.NewPlaygroupService(playgroupRepo, validator, cfg.AdminGroup)
	teeTimeService := service.NewTeeTimeService(teeTimeRepo, playgroupRepo, playgroupService, validator, cfg.AdminGroup)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		logrus.Warnf("Failed to load auth config, falling back to application config: %v", err)
		authConfig = &auth.AuthConfig{
			JWTSecret:       cfg.JWTSecret,
			Issuer:          "mbgolfers-backend",
			TokenTTLMinutes: 60,
		}
	}

	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	playgroupHandler := handlers.NewPlaygroupHandler(playgroupService)
	teeTimeHandler := handlers.NewTeeTimeHandler(teeTimeService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Development token endpoint; the real deployment fronts the API with a
	// gateway authorizer instead
	if !cfg.IsProduction() {
		router.POST("/api/auth/token", authHandler.Token)
	}

	// API v1 routes - all endpoints require an authenticated identity
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Playgroup routes
		playgroups := v1.Group("/playgroups")
		{
			playgroups.GET("", playgroupHandler.ListPlaygroups)
			playgroups.POST("", playgroupHandler.CreatePlaygroup)
		}

		// Tee time routes
		teetimes := v1.Group("/teetimes")
		{
			teetimes.GET("", teeTimeHandler.ListTeeTimes)
			teetimes.POST("", teeTimeHandler.CreateTeeTime)
		}
	}

	return router
}
