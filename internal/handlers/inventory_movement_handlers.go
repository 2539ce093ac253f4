package handlers

import (
	"net/http"

	"vendor_hub_backend/internal/models"
	"vendor_hub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetInventoryMovements returns the stock movement journal, newest first.
// Optional filters: ?item_id= and ?movement_type=adjustment|fulfillment.
func (h *StockHandler) GetInventoryMovements(c *gin.Context) {
	var filters models.MovementFilters
	if itemID := c.Query("item_id"); itemID != "" {
		filters.ItemID = &itemID
	}
	if movementType := c.Query("movement_type"); movementType != "" {
		mt := models.MovementType(movementType)
		if mt != models.MovementTypeAdjustment && mt != models.MovementTypeFulfillment {
			utils.RespondValidationFailed(c, "movement_type must be adjustment or fulfillment")
			return
		}
		filters.MovementType = &mt
	}

	movements := h.stockService.GetMovements(filters)
	c.JSON(http.StatusOK, gin.H{
		"data":  movements,
		"total": len(movements),
	})
}
