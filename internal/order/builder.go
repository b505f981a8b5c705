package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pharmacy-storefront/internal/domain"
)

// Builder assembles immutable order snapshots from cart totals.
type Builder struct {
	deliveryFee decimal.Decimal
}

func NewBuilder(deliveryFee decimal.Decimal) *Builder {
	return &Builder{deliveryFee: deliveryFee}
}

// Build creates the snapshot submitted to the backend. Customer fields are
// trimmed but not validated here; the surrounding form owns non-emptiness.
// Prices are resolved from the catalog-backed totals at this moment, rounded
// to 2 places. A nil fix stays nil so it serializes as an explicit null.
func (b *Builder) Build(totals domain.CartTotals, customer domain.Customer, method string, fix *domain.LocationFix) (*domain.OrderSnapshot, error) {
	if len(totals.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(totals.Items))
	for _, it := range totals.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ID,
			Name:      it.Name,
			Category:  it.Category,
			Price:     round2(it.Price),
			Qty:       it.Qty,
			Image:     it.Image,
		})
	}

	subtotal := totals.Subtotal.Round(2)
	total := subtotal.Add(b.deliveryFee).Round(2)

	return &domain.OrderSnapshot{
		ID: uuid.NewString(),
		Customer: domain.Customer{
			Name:    strings.TrimSpace(customer.Name),
			Phone:   strings.TrimSpace(customer.Phone),
			Address: strings.TrimSpace(customer.Address),
		},
		Payment:     domain.Payment{Method: strings.TrimSpace(method)},
		Items:       items,
		Subtotal:    subtotal.InexactFloat64(),
		DeliveryFee: b.deliveryFee.Round(2).InexactFloat64(),
		Total:       total.InexactFloat64(),
		Location:    fix,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
