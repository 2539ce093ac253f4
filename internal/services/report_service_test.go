package services

import (
	"testing"

	"vendor_hub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSummary(t *testing.T) {
	l, seed := newTestLedger(t)
	vendor := NewVendorOrderService(l, seed).(*vendorOrderService)
	vendor.newID = sequence("A111", "A222")
	employees := NewEmployeeOrderService(l)

	_, err := vendor.PlaceOrder(PlaceVendorOrderRequest{StoreID: "s1", PickupTime: "noon", Items: []models.CartLine{{ProductID: "p1", Quantity: 2}}})
	require.NoError(t, err)
	_, err = vendor.PlaceOrder(PlaceVendorOrderRequest{StoreID: "s1", PickupTime: "noon", Items: []models.CartLine{{ProductID: "p5", Quantity: 25}}})
	require.NoError(t, err)
	_, err = employees.CompleteOrder("A222")
	require.NoError(t, err)
	l.UpdateStock("p6", 0)

	summary := NewReportService(l, 10).GetSummary()

	assert.Equal(t, models.OrderStreamSummary{Pending: 1, Completed: 1}, summary.VendorOrders)
	assert.Equal(t, models.OrderStreamSummary{Pending: 1, Completed: 1}, summary.EmployeeOrders)
	assert.Equal(t, 200.0, summary.CompletedRevenue)
	assert.Equal(t, []string{"p6"}, summary.OutOfStockItemIDs)
	assert.Equal(t, []string{"p5"}, summary.LowStockItemIDs)
	assert.Equal(t, 100+100+80+50+5+0+60+90, summary.TotalStockUnits)
	assert.Equal(t, 10, summary.LowStockThreshold)
}
