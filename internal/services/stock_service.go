package services

import (
	"fmt"

	"vendor_hub_backend/internal/ledger"
	"vendor_hub_backend/internal/models"
)

// UpdateStockRequest sets the on-hand count of a stock item.
type UpdateStockRequest struct {
	Count *int `json:"count" binding:"required"`
}

// --- StockService Interface ---
type StockService interface {
	GetStock() []models.StockItem
	GetStockItem(itemID string) (*models.StockItem, error)
	UpdateStock(itemID string, req UpdateStockRequest) (*models.StockItem, error)
	GetMovements(filters models.MovementFilters) []models.StockMovement
}

// --- stockService Implementation ---
type stockService struct {
	ledger *ledger.Ledger
}

// NewStockService creates a new instance of StockService.
func NewStockService(l *ledger.Ledger) StockService {
	return &stockService{ledger: l}
}

func (s *stockService) GetStock() []models.StockItem {
	return s.ledger.Stock()
}

func (s *stockService) GetStockItem(itemID string) (*models.StockItem, error) {
	item, ok := s.ledger.StockItem(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStockItemNotFound, itemID)
	}
	return &item, nil
}

func (s *stockService) UpdateStock(itemID string, req UpdateStockRequest) (*models.StockItem, error) {
	if req.Count == nil {
		return nil, fmt.Errorf("%w: count is required", ErrValidation)
	}
	if !s.ledger.UpdateStock(itemID, *req.Count) {
		return nil, fmt.Errorf("%w: %s", ErrStockItemNotFound, itemID)
	}
	return s.GetStockItem(itemID)
}

func (s *stockService) GetMovements(filters models.MovementFilters) []models.StockMovement {
	movements := s.ledger.Movements()
	filtered := make([]models.StockMovement, 0, len(movements))
	for _, m := range movements {
		if filters.ItemID != nil && m.ItemID != *filters.ItemID {
			continue
		}
		if filters.MovementType != nil && m.MovementType != *filters.MovementType {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}
