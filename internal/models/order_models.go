package models

import "time"

// OrderStatus is the lifecycle state of an order. It only moves pending -> completed.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusPending || s == OrderStatusCompleted
}

// CartLine is one product line of an in-progress or placed vendor order.
type CartLine struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// VendorOrder is an order placed through the vendor flow.
type VendorOrder struct {
	ID         string      `json:"id"`
	Items      []CartLine  `json:"items"`
	Total      float64     `json:"total"`
	PickupTime string      `json:"pickup_time"`
	Store      Store       `json:"store"`
	Date       string      `json:"date"` // e.g. "2 January 2006"
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderItem is one line of an employee order.
type OrderItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// EmployeeOrder is the fulfillment-side view of an order, either booked directly
// by staff or derived from a VendorOrder with the same ID.
type EmployeeOrder struct {
	ID          string      `json:"id"`
	Items       []OrderItem `json:"items"`
	BookingTime string      `json:"booking_time"`
	Status      OrderStatus `json:"status"`
}

// VendorOrderFilters defines the available filters for vendor order history.
type VendorOrderFilters struct {
	StoreID *string      `form:"store_id"`
	Status  *OrderStatus `form:"status"`
}

// EmployeeOrderFilters defines the available filters for the fulfillment queue.
type EmployeeOrderFilters struct {
	Status *OrderStatus `form:"status"`
}
