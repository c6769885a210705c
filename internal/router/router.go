// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/buildflip/pc-inventory-backend/internal/handlers"
	"github.com/buildflip/pc-inventory-backend/internal/middleware"
	"github.com/buildflip/pc-inventory-backend/internal/services"
)

func Initialize(db *gorm.DB) *gin.Engine {
	// Initialize services
	inventoryService := services.NewInventoryService(db)
	buyerService := services.NewBuyerService(db)
	pcService := services.NewPCService(db)
	reportService := services.NewReportService(db)

	// Initialize handlers
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	buyerHandler := handlers.NewBuyerHandler(buyerService)
	pcHandler := handlers.NewPCHandler(pcService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pc-inventory-backend",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		pcs := api.Group("/pcs")
		{
			pcs.GET("", pcHandler.ListPCs)
			pcs.POST("", pcHandler.CreatePC)
			pcs.GET("/:id", pcHandler.GetPC)
			pcs.PUT("/:id", pcHandler.UpdatePC)
			pcs.DELETE("/:id", pcHandler.DeletePC)
			pcs.POST("/:id/sell", pcHandler.SellPC)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.ListParts)
			inventory.POST("", inventoryHandler.CreatePart)
			inventory.GET("/low-stock", inventoryHandler.LowStock)
			inventory.PUT("/:id", inventoryHandler.UpdatePart)
			inventory.DELETE("/:id", inventoryHandler.DeletePart)
		}

		buyers := api.Group("/buyers")
		{
			buyers.GET("", buyerHandler.ListBuyers)
			buyers.POST("", buyerHandler.CreateBuyer)
			buyers.GET("/:id/purchases", buyerHandler.BuyerPurchases)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/monthly", reportHandler.MonthlySummary)
			reports.GET("/profit-analysis", reportHandler.ProfitAnalysis)
		}
	}

	return r
}
