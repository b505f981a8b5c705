package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"pharmacy-storefront/internal/domain"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func sampleProducts(t *testing.T) []domain.Product {
	t.Helper()
	cat, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat.Products()
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func assertOrder(t *testing.T, got []domain.Product, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d products %v, got %v", len(want), want, ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("expected order %v, got %v", want, ids(got))
		}
	}
}

func baseQuery() Query {
	return Query{
		Category: domain.CategoryAll,
		MaxPrice: decimal.NewFromInt(9999),
		Sort:     SortFeatured,
	}
}

func TestSelectVisible_CategoryKeepsCatalogOrder(t *testing.T) {
	q := baseQuery()
	q.Category = domain.CategoryCosmetics

	got := SelectVisible(sampleProducts(t), q)
	assertOrder(t, got, "cos-001", "cos-002")
}

func TestSelectVisible_PriceAsc(t *testing.T) {
	q := baseQuery()
	q.Sort = SortPriceAsc

	got := SelectVisible(sampleProducts(t), q)
	assertOrder(t, got, "med-001", "cos-002", "cos-001", "wel-001")
}

func TestSelectVisible_PriceDesc(t *testing.T) {
	q := baseQuery()
	q.Sort = SortPriceDesc

	got := SelectVisible(sampleProducts(t), q)
	assertOrder(t, got, "wel-001", "cos-001", "cos-002", "med-001")
}

func TestSelectVisible_RatingDescIsStable(t *testing.T) {
	q := baseQuery()
	q.Sort = SortRatingDesc

	// med-001 and cos-002 share rating 4.8; catalog order breaks the tie.
	got := SelectVisible(sampleProducts(t), q)
	assertOrder(t, got, "cos-001", "med-001", "cos-002", "wel-001")
}

func TestSelectVisible_MaxPriceCeiling(t *testing.T) {
	q := baseQuery()
	q.MaxPrice = mustDecimal(t, "9.5")

	got := SelectVisible(sampleProducts(t), q)
	assertOrder(t, got, "med-001", "cos-002")
}

func TestSelectVisible_QueryMatchesNameCaseInsensitive(t *testing.T) {
	q := baseQuery()
	q.Text = "  PARACETAMOL "

	got := SelectVisible(sampleProducts(t), q)
	assertOrder(t, got, "med-001")
}

func TestSelectVisible_QueryMatchesTags(t *testing.T) {
	q := baseQuery()
	q.Text = "uv"

	got := SelectVisible(sampleProducts(t), q)
	assertOrder(t, got, "cos-002")
}

func TestSelectVisible_UnknownSortKeepsCatalogOrder(t *testing.T) {
	q := baseQuery()
	q.Sort = "newest"

	got := SelectVisible(sampleProducts(t), q)
	assertOrder(t, got, "med-001", "cos-001", "cos-002", "wel-001")
}

func TestSelectVisible_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts(t)
	q := baseQuery()
	q.Sort = SortPriceDesc

	SelectVisible(products, q)
	assertOrder(t, products, "med-001", "cos-001", "cos-002", "wel-001")
}

func TestSelectVisible_NoMatches(t *testing.T) {
	q := baseQuery()
	q.Text = "insulin"

	if got := SelectVisible(sampleProducts(t), q); len(got) != 0 {
		t.Fatalf("expected no products, got %v", ids(got))
	}
}
