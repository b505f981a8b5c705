package httpserver

import (
	"github.com/shopspring/decimal"

	"pharmacy-storefront/internal/domain"
)

func qtyDecimal(qty int) decimal.Decimal {
	return decimal.NewFromInt(int64(qty))
}

type productView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category string   `json:"category"`
	Rating   float64  `json:"rating"`
	Tags     []string `json:"tags"`
	Image    string   `json:"img"`
}

type cartItemView struct {
	productView
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"lineTotal"`
}

type cartView struct {
	Items    []cartItemView `json:"items"`
	Subtotal float64        `json:"subtotal"`
	Count    int            `json:"count"`
}

func toProductView(p domain.Product) productView {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return productView{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price.Round(2).InexactFloat64(),
		Category: p.Category,
		Rating:   p.Rating,
		Tags:     tags,
		Image:    p.Image,
	}
}

func toProductViews(products []domain.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}

func toCartView(totals domain.CartTotals) cartView {
	view := cartView{Items: make([]cartItemView, 0, len(totals.Items))}
	for _, item := range totals.Items {
		lineTotal := item.Price.Mul(qtyDecimal(item.Qty)).Round(2)
		view.Items = append(view.Items, cartItemView{
			productView: toProductView(item.Product),
			Qty:         item.Qty,
			LineTotal:   lineTotal.InexactFloat64(),
		})
		view.Count += item.Qty
	}
	view.Subtotal = totals.Subtotal.Round(2).InexactFloat64()
	return view
}
