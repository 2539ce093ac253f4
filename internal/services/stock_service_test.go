package services

import (
	"testing"

	"vendor_hub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestUpdateStockService(t *testing.T) {
	l, _ := newTestLedger(t)
	svc := NewStockService(l)

	item, err := svc.UpdateStock("p3", UpdateStockRequest{Count: intPtr(-5)})
	require.NoError(t, err)
	assert.Equal(t, 0, item.Count)

	item, err = svc.UpdateStock("p3", UpdateStockRequest{Count: intPtr(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, item.Count)

	_, err = svc.UpdateStock("p404", UpdateStockRequest{Count: intPtr(1)})
	assert.ErrorIs(t, err, ErrStockItemNotFound)

	_, err = svc.UpdateStock("p3", UpdateStockRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetStock(t *testing.T) {
	l, _ := newTestLedger(t)
	svc := NewStockService(l)

	assert.Len(t, svc.GetStock(), 8)

	item, err := svc.GetStockItem("p7")
	require.NoError(t, err)
	assert.Equal(t, "Maida Flour", item.Name)

	_, err = svc.GetStockItem("zz")
	assert.ErrorIs(t, err, ErrStockItemNotFound)
}

func TestGetMovementsFilters(t *testing.T) {
	l, _ := newTestLedger(t)
	svc := NewStockService(l)
	employees := NewEmployeeOrderService(l)

	_, err := svc.UpdateStock("p1", UpdateStockRequest{Count: intPtr(150)})
	require.NoError(t, err)
	_, err = svc.UpdateStock("p2", UpdateStockRequest{Count: intPtr(90)})
	require.NoError(t, err)
	order, err := employees.BookOrder(BookOrderRequest{BookingTime: "now", Items: []BookOrderItemRequest{{ItemID: "p1", Quantity: 20}}})
	require.NoError(t, err)
	_, err = employees.CompleteOrder(order.ID)
	require.NoError(t, err)

	assert.Len(t, svc.GetMovements(models.MovementFilters{}), 3)

	p1 := "p1"
	byItem := svc.GetMovements(models.MovementFilters{ItemID: &p1})
	require.Len(t, byItem, 2)
	assert.Equal(t, -20, byItem[0].QuantityChanged)
	assert.Equal(t, 130, byItem[0].CountAfter)

	fulfillment := models.MovementTypeFulfillment
	byType := svc.GetMovements(models.MovementFilters{MovementType: &fulfillment})
	require.Len(t, byType, 1)
	require.NotNil(t, byType[0].OrderID)
	assert.Equal(t, order.ID, *byType[0].OrderID)
}
