package handlers

import (
	"errors"
	"net/http"

	"vendor_hub_backend/internal/models"
	"vendor_hub_backend/internal/services"
	"vendor_hub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the vendor order service.
type OrderHandler struct {
	orderService services.VendorOrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.VendorOrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// CreateOrder handles vendor checkout: the cart is priced, recorded and queued for fulfillment.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.PlaceVendorOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	createdOrder, err := h.orderService.PlaceOrder(req)
	if err != nil {
		utils.LogError(err, "CreateOrder: Error from orderService.PlaceOrder")
		respondVendorOrderError(c, err, "Failed to create order.")
		return
	}
	c.JSON(http.StatusCreated, createdOrder)
}

// GetOrders returns the vendor order history, newest first.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var filters models.VendorOrderFilters
	if storeID := c.Query("store_id"); storeID != "" {
		filters.StoreID = &storeID
	}
	if status := c.Query("status"); status != "" {
		s := models.OrderStatus(status)
		filters.Status = &s
	}

	orders, err := h.orderService.GetOrders(filters)
	if err != nil {
		respondVendorOrderError(c, err, "Failed to fetch orders.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  orders,
		"total": len(orders),
	})
}

// GetOrderByID returns one vendor order.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	order, err := h.orderService.GetOrderByID(c.Param("id"))
	if err != nil {
		respondVendorOrderError(c, err, "Failed to fetch order.")
		return
	}
	c.JSON(http.StatusOK, order)
}

// Reorder returns the store and cart of a past order so a new one can be placed.
func (h *OrderHandler) Reorder(c *gin.Context) {
	resp, err := h.orderService.Reorder(c.Param("id"))
	if err != nil {
		utils.LogError(err, "Reorder: Error from orderService.Reorder")
		respondVendorOrderError(c, err, "Failed to reorder.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func respondVendorOrderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrStoreNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
	case errors.Is(err, services.ErrVendorOrderNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
	case errors.Is(err, services.ErrStoreUnavailable):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "The store for this order is currently closed or unavailable. Please start a new order.", err.Error()))
	case errors.Is(err, services.ErrEmptyCart):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Cart is empty.", err.Error()))
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidOrderStatus):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallback, "Internal error"))
	}
}
