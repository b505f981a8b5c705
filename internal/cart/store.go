package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"pharmacy-storefront/internal/catalog"
	"pharmacy-storefront/internal/domain"
	"pharmacy-storefront/internal/storage"
)

// Store holds the active cart and persists every mutation through the
// storage port before returning. Lines keep insertion order; re-adding a
// product bumps its existing line in place, it never appends a second one.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	storage storage.Store
	logger  *log.Logger
	lines   []domain.CartLine
}

// New loads the persisted cart. Absent, corrupt or unreadable state starts
// an empty cart; it is logged and never fatal.
func New(ctx context.Context, cat *catalog.Catalog, st storage.Store, logger *log.Logger) *Store {
	s := &Store{catalog: cat, storage: st, logger: logger}

	data, err := st.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		logger.Printf("load cart: %v, starting empty", err)
	default:
		var lines []domain.CartLine
		if err := json.Unmarshal(data, &lines); err != nil {
			logger.Printf("persisted cart unreadable, resetting: %v", err)
		} else {
			for i := range lines {
				if lines[i].Qty < 1 {
					lines[i].Qty = 1
				}
			}
			s.lines = lines
		}
	}

	return s
}

// Add puts one more unit of the product in the cart. Unknown product ids are
// a silent no-op.
func (s *Store) Add(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.Get(productID); !ok {
		return nil
	}

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines[i].Qty++
			return s.persist(ctx)
		}
	}

	s.lines = append(s.lines, domain.CartLine{ID: productID, Qty: 1})
	return s.persist(ctx)
}

// Remove deletes the product's line. Absent ids are a no-op.
func (s *Store) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(s.lines) {
		return nil
	}
	s.lines = kept
	return s.persist(ctx)
}

// SetQty sets the product's quantity, clamped to a minimum of 1. This path
// never removes a line; absent ids are a no-op.
func (s *Store) SetQty(ctx context.Context, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty < 1 {
		qty = 1
	}
	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines[i].Qty = qty
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.persist(ctx)
}

// Totals returns the cart lines enriched with catalog data plus the
// subtotal. Lines whose product no longer resolves are excluded.
func (s *Store) Totals() domain.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := domain.CartTotals{
		Items:    make([]domain.CartItem, 0, len(s.lines)),
		Subtotal: decimal.Zero,
	}
	for _, line := range s.lines {
		product, ok := s.catalog.Get(line.ID)
		if !ok {
			continue
		}
		totals.Items = append(totals.Items, domain.CartItem{Product: product, Qty: line.Qty})
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Qty)))
		totals.Subtotal = totals.Subtotal.Add(lineTotal)
	}
	return totals
}

// Lines returns a copy of the raw cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) persist(ctx context.Context) error {
	lines := s.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.storage.Save(ctx, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
