package ledger

import "vendor_hub_backend/internal/models"

// UpdateStock sets the count of itemID to max(0, newCount) and reconciles catalog
// availability. Unknown ids are ignored; the return value reports whether the id
// was known.
func (l *Ledger) UpdateStock(itemID string, newCount int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.stockIndex[itemID]
	if !ok {
		l.logger.Debug().Str("item_id", itemID).Msg("Stock update for unknown item ignored")
		return false
	}

	before := l.stock[i].Count
	l.stock[i].Count = max(0, newCount)
	l.recordMovementLocked(itemID, models.MovementTypeAdjustment, l.stock[i].Count-before, l.stock[i].Count, "")

	l.syncProductStockLocked()
	return true
}

// SyncProductStock recomputes every product's InStock flag from its stock count.
// Products without a stock entry keep their flag. Calling it again is a no-op.
func (l *Ledger) SyncProductStock() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.syncProductStockLocked()
}

func (l *Ledger) syncProductStockLocked() {
	for i := range l.products {
		if j, ok := l.stockIndex[l.products[i].ID]; ok {
			l.products[i].InStock = l.stock[j].Count > 0
		}
	}
}

// decrementLocked removes quantity from itemID, clamping at zero, and returns
// the applied delta. Overdraft is not rejected: there are no backorders.
func (l *Ledger) decrementLocked(itemID string, quantity int, orderID string) int {
	i, ok := l.stockIndex[itemID]
	if !ok {
		return 0
	}
	before := l.stock[i].Count
	l.stock[i].Count = max(0, before-quantity)
	delta := l.stock[i].Count - before
	l.recordMovementLocked(itemID, models.MovementTypeFulfillment, delta, l.stock[i].Count, orderID)
	return delta
}

func (l *Ledger) recordMovementLocked(itemID string, movementType models.MovementType, delta, countAfter int, orderID string) {
	if delta == 0 {
		return
	}
	l.lastMovementID++
	movement := models.StockMovement{
		ID:              l.lastMovementID,
		ItemID:          itemID,
		MovementType:    movementType,
		QuantityChanged: delta,
		CountAfter:      countAfter,
		CreatedAt:       l.now(),
	}
	if orderID != "" {
		movement.OrderID = &orderID
	}
	l.movements = append(l.movements, movement)
}
