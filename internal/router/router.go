package router

import (
	"vendor_hub_backend/internal/fixtures"
	"vendor_hub_backend/internal/handlers"
	"vendor_hub_backend/internal/ledger"
	"vendor_hub_backend/internal/middleware"
	"vendor_hub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Options carries the per-deployment knobs the routes need.
type Options struct {
	LowStockThreshold int
}

// Setup initializes the routing for the application. All services share the
// one ledger, so vendor checkouts show up in the employee queue immediately.
func Setup(engine *gin.Engine, l *ledger.Ledger, seed *fixtures.Seed, opts Options) {
	// Initialize Services
	authService := services.NewAuthService()
	catalogService := services.NewCatalogService(l, seed)
	vendorOrderService := services.NewVendorOrderService(l, seed)
	employeeOrderService := services.NewEmployeeOrderService(l)
	stockService := services.NewStockService(l)
	reportService := services.NewReportService(l, opts.LowStockThreshold)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(vendorOrderService)
	employeeOrderHandler := handlers.NewEmployeeOrderHandler(employeeOrderService)
	stockHandler := handlers.NewStockHandler(stockService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	// Vendor side needs no account.
	SetupCatalogRoutes(apiV1, catalogHandler)
	SetupVendorOrderRoutes(apiV1, orderHandler)
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware(), middleware.RoleAuthMiddleware(services.RoleEmployee))
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupStockRoutes(authenticated, stockHandler)
		SetupInventoryMovementRoutes(authenticated, stockHandler)
		SetupEmployeeOrderRoutes(authenticated, employeeOrderHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}

func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/login", authHandler.LoginUser)
}

func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.LogoutUser)
	group.GET("/me", authHandler.GetCurrentUser)
}
