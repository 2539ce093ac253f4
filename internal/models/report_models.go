package models

// OrderStreamSummary counts one order stream by status.
type OrderStreamSummary struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// DashboardSummary holds key metrics for the employee home screen.
type DashboardSummary struct {
	VendorOrders      OrderStreamSummary `json:"vendor_orders"`
	EmployeeOrders    OrderStreamSummary `json:"employee_orders"`
	TotalStockUnits   int                `json:"total_stock_units"`
	OutOfStockItemIDs []string           `json:"out_of_stock_item_ids"`
	LowStockItemIDs   []string           `json:"low_stock_item_ids"`
	LowStockThreshold int                `json:"low_stock_threshold"`
	CompletedRevenue  float64            `json:"completed_revenue"`
}
