package services

import (
	"vendor_hub_backend/internal/ledger"
	"vendor_hub_backend/internal/models"
)

// --- ReportService Interface ---
type ReportService interface {
	GetSummary() models.DashboardSummary
}

type reportService struct {
	ledger            *ledger.Ledger
	lowStockThreshold int
}

// NewReportService creates a new instance of ReportService. Items with a count
// above zero and at or below lowStockThreshold are reported as low stock.
func NewReportService(l *ledger.Ledger, lowStockThreshold int) ReportService {
	return &reportService{ledger: l, lowStockThreshold: lowStockThreshold}
}

func (s *reportService) GetSummary() models.DashboardSummary {
	snap := s.ledger.Snapshot()
	summary := models.DashboardSummary{
		OutOfStockItemIDs: []string{},
		LowStockItemIDs:   []string{},
		LowStockThreshold: s.lowStockThreshold,
	}

	for _, o := range snap.VendorOrders {
		if o.Status == models.OrderStatusCompleted {
			summary.VendorOrders.Completed++
			summary.CompletedRevenue += o.Total
		} else {
			summary.VendorOrders.Pending++
		}
	}
	for _, o := range snap.EmployeeOrders {
		if o.Status == models.OrderStatusCompleted {
			summary.EmployeeOrders.Completed++
		} else {
			summary.EmployeeOrders.Pending++
		}
	}
	for _, item := range snap.Stock {
		summary.TotalStockUnits += item.Count
		switch {
		case item.Count == 0:
			summary.OutOfStockItemIDs = append(summary.OutOfStockItemIDs, item.ID)
		case item.Count <= s.lowStockThreshold:
			summary.LowStockItemIDs = append(summary.LowStockItemIDs, item.ID)
		}
	}
	return summary
}
