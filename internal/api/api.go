// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/invensight/backend-go/internal/api/handlers"
	"github.com/invensight/backend-go/internal/api/middleware"
	"github.com/invensight/backend-go/internal/repository/memory"
	"github.com/invensight/backend-go/internal/service"
)

type Services struct {
	Store            *memory.Store
	AnalyticsService *service.AnalyticsService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Store != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.Store)

			itemGroup := apiGroup.Group("/items")
			{
				itemGroup.GET("", inventoryHandler.ListItems)
				itemGroup.POST("", inventoryHandler.CreateItem)
				itemGroup.GET("/:id", inventoryHandler.GetItem)
				itemGroup.PUT("/:id", inventoryHandler.UpdateItem)
				itemGroup.DELETE("/:id", inventoryHandler.DeleteItem)
			}

			movementGroup := apiGroup.Group("/movements")
			{
				movementGroup.GET("", inventoryHandler.ListMovements)
				movementGroup.POST("", inventoryHandler.CreateMovement)
				movementGroup.DELETE("/:id", inventoryHandler.DeleteMovement)
			}

			transactionGroup := apiGroup.Group("/transactions")
			{
				transactionGroup.GET("", inventoryHandler.ListTransactions)
				transactionGroup.POST("", inventoryHandler.CreateTransaction)
				transactionGroup.DELETE("/:id", inventoryHandler.DeleteTransaction)
			}
		}

		if services.AnalyticsService != nil {
			analyticsHandler := handlers.NewAnalyticsHandler(services.AnalyticsService)
			analyticsGroup := apiGroup.Group("/analytics")
			{
				analyticsGroup.GET("/predictions", analyticsHandler.GetPredictions)
				analyticsGroup.GET("/optimization", analyticsHandler.GetOptimization)
				analyticsGroup.GET("/abc", analyticsHandler.GetABCAnalysis)
				analyticsGroup.GET("/alerts", analyticsHandler.GetAlerts)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
