package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"vendor_hub_backend/internal/fixtures"
	"vendor_hub_backend/internal/ledger"
	"vendor_hub_backend/internal/models"

	"github.com/google/uuid"
)

// Custom Errors for the vendor flow
var (
	ErrStoreNotFound       = errors.New("store not found")
	ErrStoreUnavailable    = errors.New("store is closed or unavailable")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrVendorOrderNotFound = errors.New("vendor order not found")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrValidation          = errors.New("validation error")
)

// VendorOrderDateLayout formats the creation date shown on vendor orders.
const VendorOrderDateLayout = "2 January 2006"

const maxOrderIDAttempts = 5

// --- Data Transfer Objects (DTOs) ---

// PlaceVendorOrderRequest is the checkout payload of the vendor flow.
type PlaceVendorOrderRequest struct {
	StoreID    string            `json:"store_id" binding:"required"`
	PickupTime string            `json:"pickup_time" binding:"required"`
	Items      []models.CartLine `json:"items" binding:"required,dive"`
}

// ReorderResponse carries what the vendor flow needs to start a new order from a past one.
type ReorderResponse struct {
	Store models.Store      `json:"store"`
	Items []models.CartLine `json:"items"`
	Total float64           `json:"total"`
}

// --- VendorOrderService Interface ---
type VendorOrderService interface {
	PlaceOrder(req PlaceVendorOrderRequest) (*models.VendorOrder, error)
	GetOrders(filters models.VendorOrderFilters) ([]models.VendorOrder, error)
	GetOrderByID(orderID string) (*models.VendorOrder, error)
	Reorder(orderID string) (*ReorderResponse, error)
}

// --- vendorOrderService Implementation ---
type vendorOrderService struct {
	ledger *ledger.Ledger
	seed   *fixtures.Seed
	now    func() time.Time
	newID  func() string
}

// NewVendorOrderService creates a new instance of VendorOrderService.
func NewVendorOrderService(l *ledger.Ledger, seed *fixtures.Seed) VendorOrderService {
	return &vendorOrderService{
		ledger: l,
		seed:   seed,
		now:    time.Now,
		newID:  newVendorOrderID,
	}
}

func (s *vendorOrderService) PlaceOrder(req PlaceVendorOrderRequest) (*models.VendorOrder, error) {
	store, ok := s.seed.Store(req.StoreID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, req.StoreID)
	}
	if !store.IsOpen {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, store.Name)
	}
	if strings.TrimSpace(req.PickupTime) == "" {
		return nil, fmt.Errorf("%w: pickup time is required", ErrValidation)
	}

	cart := NormalizeCart(req.Items)
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	createdAt := s.now()
	order := models.VendorOrder{
		Items:      cart,
		Total:      CartTotal(cart, s.ledger.Products()),
		PickupTime: req.PickupTime,
		Store:      store,
		Date:       createdAt.Format(VendorOrderDateLayout),
		Status:     models.OrderStatusPending,
		CreatedAt:  createdAt,
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		order.ID = s.uniqueID()
		if _, err := s.ledger.AddVendorOrder(order); err != nil {
			if errors.Is(err, ledger.ErrDuplicateOrderID) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("failed to record vendor order: %w", err)
		}
		recorded, _ := s.ledger.VendorOrder(order.ID)
		return &recorded, nil
	}
	return nil, fmt.Errorf("failed to allocate vendor order id: %w", lastErr)
}

// uniqueID draws ids until one is unused. The short id space can fill up, in
// which case it falls back to a longer random id.
func (s *vendorOrderService) uniqueID() string {
	for i := 0; i < 50; i++ {
		id := s.newID()
		if !s.ledger.HasOrderID(id) {
			return id
		}
	}
	return "A" + shortUUID(8)
}

func (s *vendorOrderService) GetOrders(filters models.VendorOrderFilters) ([]models.VendorOrder, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, *filters.Status)
	}
	orders := s.ledger.VendorOrders()
	filtered := make([]models.VendorOrder, 0, len(orders))
	for _, o := range orders {
		if filters.StoreID != nil && o.Store.ID != *filters.StoreID {
			continue
		}
		if filters.Status != nil && o.Status != *filters.Status {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered, nil
}

func (s *vendorOrderService) GetOrderByID(orderID string) (*models.VendorOrder, error) {
	order, ok := s.ledger.VendorOrder(orderID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVendorOrderNotFound, orderID)
	}
	return &order, nil
}

func (s *vendorOrderService) Reorder(orderID string) (*ReorderResponse, error) {
	order, ok := s.ledger.VendorOrder(orderID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVendorOrderNotFound, orderID)
	}
	store, ok := s.seed.Store(order.Store.ID)
	if !ok || !store.IsOpen {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, order.Store.Name)
	}
	return &ReorderResponse{
		Store: store,
		Items: order.Items,
		Total: CartTotal(order.Items, s.ledger.Products()),
	}, nil
}

// NormalizeCart applies cart lines as successive updates: a repeated product
// takes the later quantity, and a quantity of zero or less removes the line.
// First-seen product order is kept.
func NormalizeCart(lines []models.CartLine) []models.CartLine {
	cart := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		idx := -1
		for i := range cart {
			if cart[i].ProductID == line.ProductID {
				idx = i
				break
			}
		}
		switch {
		case line.Quantity <= 0:
			if idx >= 0 {
				cart = append(cart[:idx], cart[idx+1:]...)
			}
		case idx >= 0:
			cart[idx].Quantity = line.Quantity
		default:
			cart = append(cart, line)
		}
	}
	return cart
}

// CartTotal prices cart against the catalog. Lines for unknown products add nothing.
func CartTotal(cart []models.CartLine, catalog []models.Product) float64 {
	prices := make(map[string]float64, len(catalog))
	for _, p := range catalog {
		prices[p.ID] = p.Price
	}
	var total float64
	for _, line := range cart {
		total += prices[line.ProductID] * float64(line.Quantity)
	}
	return math.Round(total*100) / 100
}

func newVendorOrderID() string {
	return fmt.Sprintf("A%d", 100+rand.Intn(900))
}

func shortUUID(n int) string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:n])
}
