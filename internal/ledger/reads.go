package ledger

import "vendor_hub_backend/internal/models"

// Snapshot is a consistent copy of every collection taken under one read lock.
type Snapshot struct {
	Products       []models.Product
	Stock          []models.StockItem
	VendorOrders   []models.VendorOrder
	EmployeeOrders []models.EmployeeOrder
}

// Snapshot copies all collections at a single point in time.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Snapshot{
		Products:       l.productsLocked(),
		Stock:          l.stockLocked(),
		VendorOrders:   l.vendorOrdersLocked(),
		EmployeeOrders: l.employeeOrdersLocked(),
	}
}

// Products returns a copy of the catalog in seed order.
func (l *Ledger) Products() []models.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.productsLocked()
}

// Product returns the catalog entry with the given id.
func (l *Ledger) Product(productID string) (models.Product, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.productLocked(productID)
}

// Stock returns a copy of all stock items in seed order.
func (l *Ledger) Stock() []models.StockItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stockLocked()
}

// StockItem returns the stock item with the given id.
func (l *Ledger) StockItem(itemID string) (models.StockItem, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.stockIndex[itemID]
	if !ok {
		return models.StockItem{}, false
	}
	return l.stock[i], true
}

// VendorOrders returns a copy of the vendor orders, newest first.
func (l *Ledger) VendorOrders() []models.VendorOrder {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.vendorOrdersLocked()
}

// VendorOrder returns the vendor order with the given id.
func (l *Ledger) VendorOrder(orderID string) (models.VendorOrder, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.vendorOrders {
		if o.ID == orderID {
			return cloneVendorOrder(o), true
		}
	}
	return models.VendorOrder{}, false
}

// EmployeeOrders returns a copy of the employee orders, newest first.
func (l *Ledger) EmployeeOrders() []models.EmployeeOrder {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.employeeOrdersLocked()
}

// EmployeeOrder returns the employee order with the given id.
func (l *Ledger) EmployeeOrder(orderID string) (models.EmployeeOrder, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx := l.employeeOrderIndexLocked(orderID)
	if idx < 0 {
		return models.EmployeeOrder{}, false
	}
	return cloneEmployeeOrder(l.employeeOrders[idx]), true
}

// HasOrderID reports whether either order list already uses orderID.
func (l *Ledger) HasOrderID(orderID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hasOrderIDLocked(orderID)
}

// Movements returns the stock movement journal, newest first.
func (l *Ledger) Movements() []models.StockMovement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.StockMovement, 0, len(l.movements))
	for i := len(l.movements) - 1; i >= 0; i-- {
		m := l.movements[i]
		if m.OrderID != nil {
			id := *m.OrderID
			m.OrderID = &id
		}
		out = append(out, m)
	}
	return out
}

func (l *Ledger) productsLocked() []models.Product {
	out := make([]models.Product, len(l.products))
	copy(out, l.products)
	return out
}

func (l *Ledger) stockLocked() []models.StockItem {
	out := make([]models.StockItem, len(l.stock))
	copy(out, l.stock)
	return out
}

func (l *Ledger) vendorOrdersLocked() []models.VendorOrder {
	out := make([]models.VendorOrder, 0, len(l.vendorOrders))
	for _, o := range l.vendorOrders {
		out = append(out, cloneVendorOrder(o))
	}
	return out
}

func (l *Ledger) employeeOrdersLocked() []models.EmployeeOrder {
	out := make([]models.EmployeeOrder, 0, len(l.employeeOrders))
	for _, o := range l.employeeOrders {
		out = append(out, cloneEmployeeOrder(o))
	}
	return out
}

func cloneCartLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

func cloneVendorOrder(o models.VendorOrder) models.VendorOrder {
	o.Items = cloneCartLines(o.Items)
	return o
}

func cloneEmployeeOrder(o models.EmployeeOrder) models.EmployeeOrder {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
