// Package ledger holds the shared in-memory state of the vendor and employee
// flows: the product catalog, stock counts, both order streams and the stock
// movement journal. It is the only write surface for that state.
package ledger

import (
	"errors"
	"sync"
	"time"

	"vendor_hub_backend/internal/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// ErrOrderNotFound is returned by CompleteOrder when no employee order has the given id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyCompleted is returned when completing an order that is no longer pending.
	ErrOrderAlreadyCompleted = errors.New("order already completed")

	// ErrDuplicateOrderID is returned when an order id is already present in either order list.
	ErrDuplicateOrderID = errors.New("order id already recorded")

	// ErrInvalidOrder is returned for orders without an id or with non-positive line quantities.
	ErrInvalidOrder = errors.New("invalid order")
)

// UnknownItemName is used for derived order lines whose product is missing from the catalog.
const UnknownItemName = "Unknown Item"

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used to report lookup misses.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithClock overrides the time source used for movement timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// Ledger is the single source of truth for catalog availability, stock and orders.
// Every exported method runs as one critical section, so callers never observe a
// vendor order without its employee counterpart or a half-applied completion.
type Ledger struct {
	mu sync.RWMutex

	products       []models.Product
	stock          []models.StockItem
	stockIndex     map[string]int
	vendorOrders   []models.VendorOrder   // newest first
	employeeOrders []models.EmployeeOrder // newest first
	movements      []models.StockMovement // oldest first
	lastMovementID int64

	logger zerolog.Logger
	now    func() time.Time
}

// New seeds a Ledger with the initial catalog and stock. Negative seed counts are
// clamped to zero and availability is reconciled before New returns. When the seed
// repeats a stock id, the first entry wins.
func New(products []models.Product, stock []models.StockItem, opts ...Option) *Ledger {
	l := &Ledger{
		products:   make([]models.Product, len(products)),
		stock:      make([]models.StockItem, 0, len(stock)),
		stockIndex: make(map[string]int, len(stock)),
		logger:     log.Logger,
		now:        time.Now,
	}
	copy(l.products, products)

	for _, item := range stock {
		if _, exists := l.stockIndex[item.ID]; exists {
			continue
		}
		item.Count = max(0, item.Count)
		l.stockIndex[item.ID] = len(l.stock)
		l.stock = append(l.stock, item)
	}

	for _, opt := range opts {
		opt(l)
	}

	l.syncProductStockLocked()
	return l
}
