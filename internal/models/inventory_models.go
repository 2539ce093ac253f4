package models

import "time"

// MovementType classifies a stock change.
type MovementType string

const (
	MovementTypeAdjustment  MovementType = "adjustment"  // count set directly by staff
	MovementTypeFulfillment MovementType = "fulfillment" // order completion
)

// StockMovement records one effective change to a stock count.
// QuantityChanged is the applied delta after clamping, never zero.
type StockMovement struct {
	ID              int64        `json:"id"`
	ItemID          string       `json:"item_id"`
	MovementType    MovementType `json:"movement_type"`
	QuantityChanged int          `json:"quantity_changed"`
	CountAfter      int          `json:"count_after"`
	OrderID         *string      `json:"order_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// MovementFilters narrows the movement journal.
type MovementFilters struct {
	ItemID       *string       `form:"item_id"`
	MovementType *MovementType `form:"movement_type"`
}
