package services

import (
	"errors"
	"fmt"
	"strings"

	"vendor_hub_backend/internal/ledger"
	"vendor_hub_backend/internal/models"
)

// Custom Errors for the employee flow
var (
	ErrStockItemNotFound = errors.New("stock item not found")
	ErrOrderNotFound     = ledger.ErrOrderNotFound
	ErrOrderCompleted    = ledger.ErrOrderAlreadyCompleted
)

// BookOrderItemRequest is one line of a staff booking.
type BookOrderItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// BookOrderRequest is used for booking an order directly from the employee flow.
type BookOrderRequest struct {
	BookingTime string                 `json:"booking_time" binding:"required"`
	Items       []BookOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// --- EmployeeOrderService Interface ---
type EmployeeOrderService interface {
	BookOrder(req BookOrderRequest) (*models.EmployeeOrder, error)
	GetOrders(filters models.EmployeeOrderFilters) ([]models.EmployeeOrder, error)
	GetOrderByID(orderID string) (*models.EmployeeOrder, error)
	CompleteOrder(orderID string) (*models.EmployeeOrder, error)
}

// --- employeeOrderService Implementation ---
type employeeOrderService struct {
	ledger *ledger.Ledger
	newID  func() string
}

// NewEmployeeOrderService creates a new instance of EmployeeOrderService.
func NewEmployeeOrderService(l *ledger.Ledger) EmployeeOrderService {
	return &employeeOrderService{
		ledger: l,
		newID:  newEmployeeOrderID,
	}
}

func (s *employeeOrderService) BookOrder(req BookOrderRequest) (*models.EmployeeOrder, error) {
	if strings.TrimSpace(req.BookingTime) == "" {
		return nil, fmt.Errorf("%w: booking time is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	positions := make(map[string]int, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for item %s must be positive", ErrValidation, line.ItemID)
		}
		stockItem, ok := s.ledger.StockItem(line.ItemID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrStockItemNotFound, line.ItemID)
		}
		if i, seen := positions[line.ItemID]; seen {
			items[i].Quantity += line.Quantity
			continue
		}
		positions[line.ItemID] = len(items)
		items = append(items, models.OrderItem{
			ItemID:   stockItem.ID,
			Name:     stockItem.Name,
			Quantity: line.Quantity,
		})
	}

	order := models.EmployeeOrder{
		Items:       items,
		BookingTime: req.BookingTime,
		Status:      models.OrderStatusPending,
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		order.ID = s.newID()
		if err := s.ledger.AddEmployeeOrder(order); err != nil {
			if errors.Is(err, ledger.ErrDuplicateOrderID) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("failed to record employee order: %w", err)
		}
		recorded, _ := s.ledger.EmployeeOrder(order.ID)
		return &recorded, nil
	}
	return nil, fmt.Errorf("failed to allocate employee order id: %w", lastErr)
}

func (s *employeeOrderService) GetOrders(filters models.EmployeeOrderFilters) ([]models.EmployeeOrder, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, *filters.Status)
	}
	orders := s.ledger.EmployeeOrders()
	if filters.Status == nil {
		return orders, nil
	}
	filtered := make([]models.EmployeeOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status == *filters.Status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *employeeOrderService) GetOrderByID(orderID string) (*models.EmployeeOrder, error) {
	order, ok := s.ledger.EmployeeOrder(orderID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return &order, nil
}

func (s *employeeOrderService) CompleteOrder(orderID string) (*models.EmployeeOrder, error) {
	order, err := s.ledger.CompleteOrder(orderID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func newEmployeeOrderID() string {
	return "ORD" + shortUUID(6)
}
