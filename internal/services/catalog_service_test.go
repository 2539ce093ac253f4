package services

import (
	"testing"

	"vendor_hub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogProducts(t *testing.T) {
	l, seed := newTestLedger(t)
	svc := NewCatalogService(l, seed)

	assert.Len(t, svc.GetProducts(models.ProductFilters{}), 8)

	l.UpdateStock("p2", 0)
	inStock := svc.GetProducts(models.ProductFilters{InStockOnly: true})
	assert.Len(t, inStock, 7)
	for _, p := range inStock {
		assert.NotEqual(t, "p2", p.ID)
	}

	onion, err := svc.GetProductByID("p2")
	require.NoError(t, err)
	assert.False(t, onion.InStock)

	_, err = svc.GetProductByID("p99")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogStoresAndVendorTypes(t *testing.T) {
	l, seed := newTestLedger(t)
	svc := NewCatalogService(l, seed)

	stores := svc.GetStores()
	require.Len(t, stores, 3)
	stores[0].Name = "changed"
	assert.NotEqual(t, "changed", seed.Stores[0].Name)

	assert.Len(t, svc.GetVendorTypes(), 4)
}
