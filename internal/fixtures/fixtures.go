// Package fixtures provides the static seed data the ledger is initialised with.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"vendor_hub_backend/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// ErrInvalidSeed is returned when seed data fails validation.
var ErrInvalidSeed = errors.New("invalid seed data")

// Seed is the startup fixture: catalog, initial stock, stores and vendor types.
type Seed struct {
	Products    []models.Product    `yaml:"products"`
	Stock       []models.StockItem  `yaml:"stock"`
	Stores      []models.Store      `yaml:"stores"`
	VendorTypes []models.VendorType `yaml:"vendor_types"`
}

// Load reads the seed file at path, or the embedded default seed when path is empty.
func Load(path string) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read seed file %s: %w", path, err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates YAML seed data.
func Parse(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("could not decode seed data: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate checks ids are present and unique within each collection and that
// no stock count is negative.
func (s *Seed) Validate() error {
	seen := make(map[string]struct{}, len(s.Products))
	for _, p := range s.Products {
		if err := checkID("product", p.ID, seen); err != nil {
			return err
		}
		if p.Price < 0 {
			return fmt.Errorf("%w: product %s has negative price", ErrInvalidSeed, p.ID)
		}
	}

	seen = make(map[string]struct{}, len(s.Stock))
	for _, item := range s.Stock {
		if err := checkID("stock item", item.ID, seen); err != nil {
			return err
		}
		if item.Count < 0 {
			return fmt.Errorf("%w: stock item %s has negative count", ErrInvalidSeed, item.ID)
		}
	}

	seen = make(map[string]struct{}, len(s.Stores))
	for _, store := range s.Stores {
		if err := checkID("store", store.ID, seen); err != nil {
			return err
		}
	}

	seen = make(map[string]struct{}, len(s.VendorTypes))
	for _, vt := range s.VendorTypes {
		if err := checkID("vendor type", vt.ID, seen); err != nil {
			return err
		}
	}
	return nil
}

// Store returns the store with the given id.
func (s *Seed) Store(id string) (models.Store, bool) {
	for _, store := range s.Stores {
		if store.ID == id {
			return store, true
		}
	}
	return models.Store{}, false
}

func checkID(kind, id string, seen map[string]struct{}) error {
	if id == "" {
		return fmt.Errorf("%w: %s without id", ErrInvalidSeed, kind)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: duplicate %s id %s", ErrInvalidSeed, kind, id)
	}
	seen[id] = struct{}{}
	return nil
}
