package ledger

import (
	"fmt"
	"sync"
	"testing"

	"vendor_hub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vendorOrder(id string, lines ...models.CartLine) models.VendorOrder {
	return models.VendorOrder{
		ID:         id,
		Items:      lines,
		Total:      300,
		PickupTime: "10:00 AM - 11:00 AM",
		Store:      models.Store{ID: "s1", Name: "Central Market", IsOpen: true},
		Date:       "14 March 2025",
	}
}

func TestAddVendorOrderDerivesEmployeeOrder(t *testing.T) {
	l, _ := newTestLedger(t)

	derived, err := l.AddVendorOrder(vendorOrder("A123",
		models.CartLine{ProductID: "p1", Quantity: 10},
		models.CartLine{ProductID: "p3", Quantity: 4},
	))
	require.NoError(t, err)

	assert.Equal(t, "A123", derived.ID)
	assert.Equal(t, "10:00 AM - 11:00 AM", derived.BookingTime)
	assert.Equal(t, models.OrderStatusPending, derived.Status)
	assert.Equal(t, []models.OrderItem{
		{ItemID: "p1", Name: "Tomato", Quantity: 10},
		{ItemID: "p3", Name: "Potato", Quantity: 4},
	}, derived.Items)

	employeeOrders := l.EmployeeOrders()
	require.Len(t, employeeOrders, 1)
	assert.Equal(t, derived, employeeOrders[0])

	vo, ok := l.VendorOrder("A123")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusPending, vo.Status)
}

func TestAddVendorOrderDoesNotTouchStock(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.AddVendorOrder(vendorOrder("A200", models.CartLine{ProductID: "p1", Quantity: 10}))
	require.NoError(t, err)

	assert.Equal(t, 100, stockCount(t, l, "p1"))
	assert.Empty(t, l.Movements())
}

func TestAddVendorOrderUnknownProduct(t *testing.T) {
	l, _ := newTestLedger(t)

	derived, err := l.AddVendorOrder(vendorOrder("A300", models.CartLine{ProductID: "p404", Quantity: 7}))

	require.NoError(t, err)
	require.Len(t, derived.Items, 1)
	assert.Equal(t, UnknownItemName, derived.Items[0].Name)
	assert.Equal(t, 7, derived.Items[0].Quantity)
	assert.Equal(t, "p404", derived.Items[0].ItemID)
}

func TestAddVendorOrderPrependsNewestFirst(t *testing.T) {
	l, _ := newTestLedger(t)

	for _, id := range []string{"A101", "A102", "A103"} {
		_, err := l.AddVendorOrder(vendorOrder(id, models.CartLine{ProductID: "p1", Quantity: 1}))
		require.NoError(t, err)
	}
	require.NoError(t, l.AddEmployeeOrder(models.EmployeeOrder{
		ID:    "ORDABC123",
		Items: []models.OrderItem{{ItemID: "p2", Name: "Onion", Quantity: 1}},
	}))

	var vendorIDs, employeeIDs []string
	for _, o := range l.VendorOrders() {
		vendorIDs = append(vendorIDs, o.ID)
	}
	for _, o := range l.EmployeeOrders() {
		employeeIDs = append(employeeIDs, o.ID)
	}
	assert.Equal(t, []string{"A103", "A102", "A101"}, vendorIDs)
	assert.Equal(t, []string{"ORDABC123", "A103", "A102", "A101"}, employeeIDs)
}

func TestAddVendorOrderForcesPendingStatus(t *testing.T) {
	l, _ := newTestLedger(t)
	order := vendorOrder("A400", models.CartLine{ProductID: "p1", Quantity: 1})
	order.Status = models.OrderStatusCompleted

	_, err := l.AddVendorOrder(order)
	require.NoError(t, err)

	vo, _ := l.VendorOrder("A400")
	assert.Equal(t, models.OrderStatusPending, vo.Status)
}

func TestAddVendorOrderRejections(t *testing.T) {
	tests := []struct {
		name    string
		order   models.VendorOrder
		wantErr error
	}{
		{name: "empty id", order: vendorOrder("", models.CartLine{ProductID: "p1", Quantity: 1}), wantErr: ErrInvalidOrder},
		{name: "zero quantity", order: vendorOrder("A501", models.CartLine{ProductID: "p1", Quantity: 0}), wantErr: ErrInvalidOrder},
		{name: "duplicate vendor id", order: vendorOrder("A500", models.CartLine{ProductID: "p1", Quantity: 1}), wantErr: ErrDuplicateOrderID},
		{name: "id used by employee order", order: vendorOrder("ORD000001", models.CartLine{ProductID: "p1", Quantity: 1}), wantErr: ErrDuplicateOrderID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLedger(t)
			_, err := l.AddVendorOrder(vendorOrder("A500", models.CartLine{ProductID: "p1", Quantity: 1}))
			require.NoError(t, err)
			require.NoError(t, l.AddEmployeeOrder(models.EmployeeOrder{ID: "ORD000001"}))
			before := l.Snapshot()

			_, err = l.AddVendorOrder(tt.order)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, l.Snapshot())
		})
	}
}

func TestAddEmployeeOrderHasNoVendorCounterpart(t *testing.T) {
	l, _ := newTestLedger(t)

	err := l.AddEmployeeOrder(models.EmployeeOrder{
		ID:          "ORDX1Y2Z3",
		Items:       []models.OrderItem{{ItemID: "p3", Name: "Potato", Quantity: 5}},
		BookingTime: "5:00 PM",
		Status:      models.OrderStatusCompleted,
	})
	require.NoError(t, err)

	assert.Empty(t, l.VendorOrders())
	eo, ok := l.EmployeeOrder("ORDX1Y2Z3")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusPending, eo.Status)
	assert.Equal(t, 80, stockCount(t, l, "p3"))
}

func TestAddEmployeeOrderRejections(t *testing.T) {
	l, _ := newTestLedger(t)
	require.NoError(t, l.AddEmployeeOrder(models.EmployeeOrder{ID: "ORD1"}))

	assert.ErrorIs(t, l.AddEmployeeOrder(models.EmployeeOrder{}), ErrInvalidOrder)
	assert.ErrorIs(t, l.AddEmployeeOrder(models.EmployeeOrder{ID: "ORD1"}), ErrDuplicateOrderID)
	assert.ErrorIs(t, l.AddEmployeeOrder(models.EmployeeOrder{
		ID:    "ORD2",
		Items: []models.OrderItem{{ItemID: "p1", Quantity: -3}},
	}), ErrInvalidOrder)
	assert.Len(t, l.EmployeeOrders(), 1)
}

func TestCompleteVendorOrderScenario(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.AddVendorOrder(vendorOrder("A777", models.CartLine{ProductID: "p1", Quantity: 10}))
	require.NoError(t, err)
	assert.Equal(t, 100, stockCount(t, l, "p1"))

	completed, err := l.CompleteOrder("A777")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusCompleted, completed.Status)
	assert.Equal(t, 90, stockCount(t, l, "p1"))
	vo, _ := l.VendorOrder("A777")
	eo, _ := l.EmployeeOrder("A777")
	assert.Equal(t, models.OrderStatusCompleted, vo.Status)
	assert.Equal(t, models.OrderStatusCompleted, eo.Status)

	movements := l.Movements()
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementTypeFulfillment, movements[0].MovementType)
	assert.Equal(t, -10, movements[0].QuantityChanged)
	require.NotNil(t, movements[0].OrderID)
	assert.Equal(t, "A777", *movements[0].OrderID)
}

func TestCompleteOrderTwiceDoesNotDoubleDecrement(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.AddVendorOrder(vendorOrder("A778", models.CartLine{ProductID: "p1", Quantity: 10}))
	require.NoError(t, err)

	_, err = l.CompleteOrder("A778")
	require.NoError(t, err)
	order, err := l.CompleteOrder("A778")

	assert.ErrorIs(t, err, ErrOrderAlreadyCompleted)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.Equal(t, 90, stockCount(t, l, "p1"))
	assert.Len(t, l.Movements(), 1)
}

func TestCompleteOrderUnknownID(t *testing.T) {
	l, logs := newTestLedger(t)
	_, err := l.AddVendorOrder(vendorOrder("A779", models.CartLine{ProductID: "p1", Quantity: 10}))
	require.NoError(t, err)
	before := l.Snapshot()

	assert.NotPanics(t, func() {
		_, err = l.CompleteOrder("A000")
	})

	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, before, l.Snapshot())
	assert.Contains(t, logs.String(), "Order to complete not found")
	assert.Contains(t, logs.String(), `"order_id":"A000"`)
}

func TestCompleteOrderClampsOverdraft(t *testing.T) {
	l, _ := newTestLedger(t)
	require.NoError(t, l.AddEmployeeOrder(models.EmployeeOrder{
		ID: "ORDBIG",
		Items: []models.OrderItem{
			{ItemID: "p3", Name: "Potato", Quantity: 500},
			{ItemID: "p1", Name: "Tomato", Quantity: 1},
			{ItemID: "gone", Name: "Gone", Quantity: 3},
		},
	}))

	_, err := l.CompleteOrder("ORDBIG")
	require.NoError(t, err)

	assert.Equal(t, 0, stockCount(t, l, "p3"))
	assert.Equal(t, 99, stockCount(t, l, "p1"))
	p3, _ := l.Product("p3")
	assert.False(t, p3.InStock)
	assertAvailabilityConsistent(t, l)

	movements := l.Movements()
	require.Len(t, movements, 2)
	assert.Equal(t, -80, movements[1].QuantityChanged, "applied delta is the clamped amount")
}

func TestCompleteDirectOrderLeavesVendorOrdersAlone(t *testing.T) {
	l, _ := newTestLedger(t)
	_, err := l.AddVendorOrder(vendorOrder("A800", models.CartLine{ProductID: "p1", Quantity: 1}))
	require.NoError(t, err)
	require.NoError(t, l.AddEmployeeOrder(models.EmployeeOrder{
		ID:    "ORD800",
		Items: []models.OrderItem{{ItemID: "p1", Name: "Tomato", Quantity: 5}},
	}))

	_, err = l.CompleteOrder("ORD800")
	require.NoError(t, err)

	vo, _ := l.VendorOrder("A800")
	assert.Equal(t, models.OrderStatusPending, vo.Status)
	assert.Equal(t, 95, stockCount(t, l, "p1"))
}

func TestConcurrentVendorOrdersKeepPairing(t *testing.T) {
	l, _ := newTestLedger(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("A%03d", i)
			_, err := l.AddVendorOrder(vendorOrder(id, models.CartLine{ProductID: "p1", Quantity: 1}))
			assert.NoError(t, err)
			_, err = l.CompleteOrder(id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	snap := l.Snapshot()
	require.Len(t, snap.VendorOrders, 50)
	require.Len(t, snap.EmployeeOrders, 50)
	for _, vo := range snap.VendorOrders {
		eo, ok := l.EmployeeOrder(vo.ID)
		require.True(t, ok)
		assert.Equal(t, models.OrderStatusCompleted, vo.Status)
		assert.Equal(t, models.OrderStatusCompleted, eo.Status)
	}
	assert.Equal(t, 50, stockCount(t, l, "p1"))
}
