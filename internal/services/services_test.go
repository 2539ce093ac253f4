package services

import (
	"testing"

	"vendor_hub_backend/internal/fixtures"
	"vendor_hub_backend/internal/ledger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*ledger.Ledger, *fixtures.Seed) {
	t.Helper()
	seed, err := fixtures.Load("")
	require.NoError(t, err)
	return ledger.New(seed.Products, seed.Stock, ledger.WithLogger(zerolog.Nop())), seed
}

// sequence returns an id generator yielding ids in order, then repeating the last.
func sequence(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i]
		if i < len(ids)-1 {
			i++
		}
		return id
	}
}
