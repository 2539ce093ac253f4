package services

import (
	"errors"
	"fmt"

	"vendor_hub_backend/internal/fixtures"
	"vendor_hub_backend/internal/ledger"
	"vendor_hub_backend/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// --- CatalogService Interface ---
type CatalogService interface {
	GetProducts(filters models.ProductFilters) []models.Product
	GetProductByID(productID string) (*models.Product, error)
	GetStores() []models.Store
	GetVendorTypes() []models.VendorType
}

type catalogService struct {
	ledger *ledger.Ledger
	seed   *fixtures.Seed
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(l *ledger.Ledger, seed *fixtures.Seed) CatalogService {
	return &catalogService{ledger: l, seed: seed}
}

func (s *catalogService) GetProducts(filters models.ProductFilters) []models.Product {
	products := s.ledger.Products()
	if !filters.InStockOnly {
		return products
	}
	available := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.InStock {
			available = append(available, p)
		}
	}
	return available
}

func (s *catalogService) GetProductByID(productID string) (*models.Product, error) {
	p, ok := s.ledger.Product(productID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	return &p, nil
}

func (s *catalogService) GetStores() []models.Store {
	stores := make([]models.Store, len(s.seed.Stores))
	copy(stores, s.seed.Stores)
	return stores
}

func (s *catalogService) GetVendorTypes() []models.VendorType {
	types := make([]models.VendorType, len(s.seed.VendorTypes))
	copy(types, s.seed.VendorTypes)
	return types
}
