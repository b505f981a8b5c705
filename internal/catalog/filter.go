package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"pharmacy-storefront/internal/domain"
)

// Sort keys applied after filtering. Any other value keeps catalog order.
const (
	SortFeatured   = "featured"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

// Query selects which products are visible.
type Query struct {
	Text     string
	Category string // domain.CategoryAll disables the category filter
	MaxPrice decimal.Decimal
	Sort     string
}

// SelectVisible returns the products matching q, ordered by the sort key.
// It is pure: the input slice is never modified and ties keep their original
// relative order.
func SelectVisible(products []domain.Product, q Query) []domain.Product {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	visible := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.Category != domain.CategoryAll && p.Category != q.Category {
			continue
		}
		if p.Price.GreaterThan(q.MaxPrice) {
			continue
		}
		if !matches(p, text) {
			continue
		}
		visible = append(visible, p)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Price.LessThan(visible[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[j].Price.LessThan(visible[i].Price)
		})
	case SortRatingDesc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Rating > visible[j].Rating
		})
	}

	return visible
}

func matches(p domain.Product, text string) bool {
	if text == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), text) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), text) {
			return true
		}
	}
	return false
}
