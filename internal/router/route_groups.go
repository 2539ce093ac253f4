package router

import (
	"vendor_hub_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes sets up the public catalog routes.
func SetupCatalogRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	apiGroup.GET("/stores", catalogHandler.GetStores)
	apiGroup.GET("/vendor-types", catalogHandler.GetVendorTypes)

	productRoutes := apiGroup.Group("/products")
	{
		productRoutes.GET("", catalogHandler.GetProducts)
		productRoutes.GET("/:id", catalogHandler.GetProductByID)
	}
}

// SetupVendorOrderRoutes sets up the vendor checkout and order history routes.
func SetupVendorOrderRoutes(apiGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := apiGroup.Group("/vendor/orders")
	{
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.POST("/:id/reorder", orderHandler.Reorder)
	}
}

// SetupStockRoutes sets up the stock management routes.
func SetupStockRoutes(authenticatedGroup *gin.RouterGroup, stockHandler *handlers.StockHandler) {
	stockRoutes := authenticatedGroup.Group("/stock")
	{
		stockRoutes.GET("", stockHandler.GetStock)
		stockRoutes.GET("/:id", stockHandler.GetStockItem)
		stockRoutes.PUT("/:id", stockHandler.UpdateStock)
	}
}

// SetupInventoryMovementRoutes sets up the inventory movement routes.
func SetupInventoryMovementRoutes(authenticatedGroup *gin.RouterGroup, stockHandler *handlers.StockHandler) {
	authenticatedGroup.GET("/inventory-movements", stockHandler.GetInventoryMovements)
}

// SetupEmployeeOrderRoutes sets up the fulfillment queue routes.
func SetupEmployeeOrderRoutes(authenticatedGroup *gin.RouterGroup, employeeOrderHandler *handlers.EmployeeOrderHandler) {
	orderRoutes := authenticatedGroup.Group("/employee/orders")
	{
		orderRoutes.POST("", employeeOrderHandler.BookOrder)
		orderRoutes.GET("", employeeOrderHandler.GetOrders)
		orderRoutes.GET("/:id", employeeOrderHandler.GetOrderByID)
		orderRoutes.PATCH("/:id/complete", employeeOrderHandler.CompleteOrder)
	}
}

// SetupReportRoutes sets up the report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	{
		reportRoutes.GET("/summary", reportHandler.GetDashboardSummary)
	}
}
