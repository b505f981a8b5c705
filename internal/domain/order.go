package domain

import "time"

// Payment methods accepted at checkout.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Payment struct {
	Method string `json:"method"`
}

// LocationFix is a resolved device location reading.
type LocationFix struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy"`
}

// OrderItem is a denormalized copy of cart and product data at submission time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"img"`
}

// OrderSnapshot is the full request body for the order endpoint, immutable
// once built. Location has no omitempty on purpose: an absent fix must
// serialize as an explicit null, not a missing key.
type OrderSnapshot struct {
	ID          string       `json:"id"`
	Customer    Customer     `json:"customer"`
	Payment     Payment      `json:"payment"`
	Items       []OrderItem  `json:"items"`
	Subtotal    float64      `json:"subtotal"`
	DeliveryFee float64      `json:"deliveryFee"`
	Total       float64      `json:"total"`
	Location    *LocationFix `json:"location"`
	CreatedAt   time.Time    `json:"createdAt"`
}
