package ledger

import (
	"fmt"

	"vendor_hub_backend/internal/models"
)

// AddVendorOrder records order at the front of the vendor order list and, in the
// same step, derives its employee order: one line per cart line, named from the
// catalog (UnknownItemName when the product is missing), booked for the order's
// pickup time. Both orders start pending. The derived order is returned.
func (l *Ledger) AddVendorOrder(order models.VendorOrder) (models.EmployeeOrder, error) {
	if order.ID == "" {
		return models.EmployeeOrder{}, fmt.Errorf("%w: vendor order id is empty", ErrInvalidOrder)
	}
	for _, line := range order.Items {
		if line.Quantity <= 0 {
			return models.EmployeeOrder{}, fmt.Errorf("%w: quantity for product %s must be positive", ErrInvalidOrder, line.ProductID)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hasOrderIDLocked(order.ID) {
		return models.EmployeeOrder{}, fmt.Errorf("%w: %s", ErrDuplicateOrderID, order.ID)
	}

	order.Items = cloneCartLines(order.Items)
	order.Status = models.OrderStatusPending

	derived := models.EmployeeOrder{
		ID:          order.ID,
		Items:       make([]models.OrderItem, 0, len(order.Items)),
		BookingTime: order.PickupTime,
		Status:      models.OrderStatusPending,
	}
	for _, line := range order.Items {
		name := UnknownItemName
		if p, ok := l.productLocked(line.ProductID); ok {
			name = p.Name
		}
		derived.Items = append(derived.Items, models.OrderItem{
			ItemID:   line.ProductID,
			Name:     name,
			Quantity: line.Quantity,
		})
	}

	l.vendorOrders = append([]models.VendorOrder{order}, l.vendorOrders...)
	l.employeeOrders = append([]models.EmployeeOrder{derived}, l.employeeOrders...)

	l.logger.Debug().Str("order_id", order.ID).Int("lines", len(order.Items)).Msg("Vendor order recorded")
	return cloneEmployeeOrder(derived), nil
}

// AddEmployeeOrder records a directly booked order at the front of the employee
// order list. No vendor counterpart is created.
func (l *Ledger) AddEmployeeOrder(order models.EmployeeOrder) error {
	if order.ID == "" {
		return fmt.Errorf("%w: employee order id is empty", ErrInvalidOrder)
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity for item %s must be positive", ErrInvalidOrder, item.ItemID)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hasOrderIDLocked(order.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateOrderID, order.ID)
	}

	order = cloneEmployeeOrder(order)
	order.Status = models.OrderStatusPending
	l.employeeOrders = append([]models.EmployeeOrder{order}, l.employeeOrders...)

	l.logger.Debug().Str("order_id", order.ID).Int("lines", len(order.Items)).Msg("Employee order recorded")
	return nil
}

// CompleteOrder fulfils a pending employee order: stock is decremented by every
// line (clamped at zero), the order and its vendor counterpart, if any, are marked
// completed, and availability is reconciled. A missing id is logged and returned
// as ErrOrderNotFound; an order that is already completed is left untouched.
func (l *Ledger) CompleteOrder(orderID string) (models.EmployeeOrder, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.employeeOrderIndexLocked(orderID)
	if idx < 0 {
		l.logger.Warn().Str("order_id", orderID).Msg("Order to complete not found")
		return models.EmployeeOrder{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	order := &l.employeeOrders[idx]
	if order.Status == models.OrderStatusCompleted {
		return cloneEmployeeOrder(*order), fmt.Errorf("%w: %s", ErrOrderAlreadyCompleted, orderID)
	}

	for _, item := range order.Items {
		l.decrementLocked(item.ItemID, item.Quantity, orderID)
	}

	order.Status = models.OrderStatusCompleted
	for i := range l.vendorOrders {
		if l.vendorOrders[i].ID == orderID {
			l.vendorOrders[i].Status = models.OrderStatusCompleted
			break
		}
	}

	l.syncProductStockLocked()

	l.logger.Info().Str("order_id", orderID).Int("lines", len(order.Items)).Msg("Order completed")
	return cloneEmployeeOrder(*order), nil
}

func (l *Ledger) hasOrderIDLocked(orderID string) bool {
	if l.employeeOrderIndexLocked(orderID) >= 0 {
		return true
	}
	for i := range l.vendorOrders {
		if l.vendorOrders[i].ID == orderID {
			return true
		}
	}
	return false
}

func (l *Ledger) employeeOrderIndexLocked(orderID string) int {
	for i := range l.employeeOrders {
		if l.employeeOrders[i].ID == orderID {
			return i
		}
	}
	return -1
}

func (l *Ledger) productLocked(productID string) (models.Product, bool) {
	for _, p := range l.products {
		if p.ID == productID {
			return p, true
		}
	}
	return models.Product{}, false
}
