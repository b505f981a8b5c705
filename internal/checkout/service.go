package checkout

import (
	"context"
	"log"

	"pharmacy-storefront/internal/domain"
	"pharmacy-storefront/internal/geo"
	"pharmacy-storefront/internal/order"
)

// Service runs one checkout attempt end to end: snapshot the cart, grab a
// best-effort location fix, submit, and clear the cart only once the backend
// has accepted.
type Service struct {
	cart    cartStore
	builder *order.Builder
	locator geo.Locator
	sender  submitter
	logger  *log.Logger
}

type cartStore interface {
	Totals() domain.CartTotals
	Clear(ctx context.Context) error
}

type submitter interface {
	Submit(ctx context.Context, order *domain.OrderSnapshot) error
}

func New(cart cartStore, builder *order.Builder, locator geo.Locator, sender submitter, logger *log.Logger) *Service {
	return &Service{
		cart:    cart,
		builder: builder,
		locator: locator,
		sender:  sender,
		logger:  logger,
	}
}

// Input is the customer-facing side of a checkout attempt.
type Input struct {
	Customer domain.Customer
	Method   string
}

// Result identifies the accepted order for the confirmation notification.
type Result struct {
	OrderID string
	Total   float64
}

// Checkout returns domain.ErrEmptyCart before any location attempt or
// network call when there is nothing to order. On submission failure the
// cart is left exactly as it was.
func (s *Service) Checkout(ctx context.Context, in Input) (*Result, error) {
	totals := s.cart.Totals()
	if len(totals.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	fix := s.locator.Locate(ctx)

	snapshot, err := s.builder.Build(totals, in.Customer, in.Method, fix)
	if err != nil {
		return nil, err
	}

	if err := s.sender.Submit(ctx, snapshot); err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order is already accepted; a failed clear only risks a
		// stale cart on next load.
		s.logger.Printf("clear cart after order %s: %v", snapshot.ID, err)
	}

	return &Result{OrderID: snapshot.ID, Total: snapshot.Total}, nil
}
