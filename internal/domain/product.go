package domain

import "github.com/shopspring/decimal"

// Product categories. CategoryAll is a filter sentinel only and never appears
// on a product record.
const (
	CategoryAll       = "All"
	CategoryMedicines = "Medicines"
	CategoryCosmetics = "Cosmetics"
	CategoryWellness  = "Wellness"
)

// Product is a catalog record. The catalog is loaded once at process start
// and never mutated.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Rating   float64         `json:"rating"`
	Tags     []string        `json:"tags"`
	Image    string          `json:"img"`
}
