package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"pharmacy-storefront/internal/domain"
)

//go:embed products.json
var productsJSON []byte

// Catalog is the static read-only product set.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// Load parses the embedded product set. It runs once at process start; a
// parse failure means the binary shipped with a broken catalog and is fatal.
func Load() (*Catalog, error) {
	return Parse(productsJSON)
}

// Parse builds a catalog from a JSON product array.
func Parse(data []byte) (*Catalog, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product %q has no id", p.Name)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}, nil
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the full product set in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
