package domain

import "github.com/shopspring/decimal"

// CartLine is one product's accumulated quantity in the active cart.
// Qty never drops below 1; only explicit removal deletes a line.
type CartLine struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

// CartItem is a catalog record enriched with the line's quantity.
type CartItem struct {
	Product
	Qty int
}

// CartTotals is the derived view of the cart contents.
type CartTotals struct {
	Items    []CartItem
	Subtotal decimal.Decimal
}
