package handlers

import (
	"errors"
	"net/http"

	"vendor_hub_backend/internal/models"
	"vendor_hub_backend/internal/services"
	"vendor_hub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only catalog, stores and vendor types.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// GetProducts lists the catalog. ?in_stock=true limits it to available products.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var filters models.ProductFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid in_stock filter.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.catalogService.GetProducts(filters))
}

// GetProductByID returns a single catalog entry.
func (h *CatalogHandler) GetProductByID(c *gin.Context) {
	product, err := h.catalogService.GetProductByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", err.Error()))
		} else {
			utils.LogError(err, "GetProductByID: Error from catalogService.GetProductByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch product.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetStores lists pickup stores with their opening state.
func (h *CatalogHandler) GetStores(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.GetStores())
}

// GetVendorTypes lists the vendor categories.
func (h *CatalogHandler) GetVendorTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.GetVendorTypes())
}
