package handlers

import (
	"errors"
	"net/http"

	"vendor_hub_backend/internal/models"
	"vendor_hub_backend/internal/services"
	"vendor_hub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EmployeeOrderHandler holds the employee order service.
type EmployeeOrderHandler struct {
	orderService services.EmployeeOrderService
}

// NewEmployeeOrderHandler creates a new EmployeeOrderHandler.
func NewEmployeeOrderHandler(os services.EmployeeOrderService) *EmployeeOrderHandler {
	return &EmployeeOrderHandler{orderService: os}
}

// BookOrder handles an order booked directly by staff.
func (h *EmployeeOrderHandler) BookOrder(c *gin.Context) {
	var req services.BookOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "BookOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.orderService.BookOrder(req)
	if err != nil {
		utils.LogError(err, "BookOrder: Error from orderService.BookOrder")
		respondEmployeeOrderError(c, err, "Failed to book order.")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders returns the fulfillment queue, newest first. ?status= filters it.
func (h *EmployeeOrderHandler) GetOrders(c *gin.Context) {
	var filters models.EmployeeOrderFilters
	if status := c.Query("status"); status != "" {
		s := models.OrderStatus(status)
		filters.Status = &s
	}

	orders, err := h.orderService.GetOrders(filters)
	if err != nil {
		respondEmployeeOrderError(c, err, "Failed to fetch orders.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  orders,
		"total": len(orders),
	})
}

// GetOrderByID returns one employee order.
func (h *EmployeeOrderHandler) GetOrderByID(c *gin.Context) {
	order, err := h.orderService.GetOrderByID(c.Param("id"))
	if err != nil {
		respondEmployeeOrderError(c, err, "Failed to fetch order.")
		return
	}
	c.JSON(http.StatusOK, order)
}

// CompleteOrder fulfils a pending order and deducts its items from stock.
func (h *EmployeeOrderHandler) CompleteOrder(c *gin.Context) {
	order, err := h.orderService.CompleteOrder(c.Param("id"))
	if err != nil {
		respondEmployeeOrderError(c, err, "Failed to complete order.")
		return
	}
	c.JSON(http.StatusOK, order)
}

func respondEmployeeOrderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
	case errors.Is(err, services.ErrStockItemNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
	case errors.Is(err, services.ErrOrderCompleted):
		utils.LogWarn(err, "Completion requested for an order that is no longer pending")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Order is already completed.", err.Error()))
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidOrderStatus):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request.", err.Error()))
	default:
		utils.LogError(err, fallback)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallback, "Internal error"))
	}
}
