package handlers

import (
	"errors"
	"net/http"

	"vendor_hub_backend/internal/services"
	"vendor_hub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StockHandler holds the stock service.
type StockHandler struct {
	stockService services.StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(ss services.StockService) *StockHandler {
	return &StockHandler{stockService: ss}
}

// GetStock lists all stock items with their counts.
func (h *StockHandler) GetStock(c *gin.Context) {
	c.JSON(http.StatusOK, h.stockService.GetStock())
}

// GetStockItem returns a single stock item.
func (h *StockHandler) GetStockItem(c *gin.Context) {
	item, err := h.stockService.GetStockItem(c.Param("id"))
	if err != nil {
		respondStockError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateStock sets the count of a stock item. Negative counts are stored as zero.
func (h *StockHandler) UpdateStock(c *gin.Context) {
	var req services.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.stockService.UpdateStock(c.Param("id"), req)
	if err != nil {
		respondStockError(c, err)
		return
	}
	utils.LogDebug("Stock updated", map[string]interface{}{"item_id": item.ID, "count": item.Count, "username": c.GetString("username")})
	c.JSON(http.StatusOK, item)
}

func respondStockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrStockItemNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
	case errors.Is(err, services.ErrValidation):
		utils.RespondValidationFailed(c, err.Error())
	default:
		utils.LogError(err, "Stock request failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process stock request.", "Internal error"))
	}
}
