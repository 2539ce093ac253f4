package models

// Product is a catalog entry offered to vendors.
// InStock is derived from the matching StockItem and is never authoritative.
type Product struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Price   float64 `json:"price" yaml:"price"`
	Unit    string  `json:"unit" yaml:"unit"`
	Image   string  `json:"image" yaml:"image"`
	InStock bool    `json:"in_stock" yaml:"in_stock"`
}

// StockItem holds the quantity on hand for an item. Its ID space is shared with Product.
type StockItem struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Store is a pickup location a vendor can order from.
type Store struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Area   string `json:"area" yaml:"area"`
	Hours  string `json:"hours" yaml:"hours"`
	IsOpen bool   `json:"is_open" yaml:"is_open"`
}

// VendorType groups vendors by what they sell (e.g. street food, juice stall).
type VendorType struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon,omitempty" yaml:"icon"`
}

// ProductFilters narrows catalog listings.
type ProductFilters struct {
	InStockOnly bool `form:"in_stock"`
}
