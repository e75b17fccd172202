package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dshu-atelier/storefront/internal/kvstore"
	"github.com/dshu-atelier/storefront/internal/logging"
	"github.com/dshu-atelier/storefront/internal/models"
)

// Service owns the cart lines. Lines keep insertion order; after every
// mutation the full list is written to the persisted store so the stored
// snapshot always mirrors memory. The visibility flag is transient.
type Service struct {
	store kvstore.Store

	mu    sync.Mutex
	items []models.CartItem
	open  bool
}

func NewService(store kvstore.Store) *Service {
	return &Service{store: store}
}

// AddItem merges into an existing line with the same (product id, size) key
// or appends a new one.
func (s *Service) AddItem(ctx context.Context, product models.Product, quantity int, selectedSize string) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.items {
		if s.items[i].Product.ID == product.ID && s.items[i].SelectedSize == selectedSize {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, models.CartItem{
			Product:      product,
			Quantity:     quantity,
			SelectedSize: selectedSize,
		})
	}

	return s.persist(ctx)
}

// RemoveItem drops every line for the product id, size variants included.
// Removal is keyed by product id only while AddItem keys on (id, size); the
// asymmetry is intentional.
func (s *Service) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	s.items = kept

	return s.persist(ctx)
}

// UpdateQuantity overwrites the quantity of every line for the product id.
// Anything at or below zero removes the lines instead; a non-positive
// quantity is never stored.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
		}
	}

	return s.persist(ctx)
}

// Clear empties the cart and removes the persisted record.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.store.Delete(ctx, kvstore.CartItemsKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Toggle flips the sidebar visibility and returns the new state. Not
// persisted.
func (s *Service) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

func (s *Service) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Load restores the lines from the persisted store at startup. A corrupt
// record is discarded and the cart stays as it was; Load never fails.
func (s *Service) Load(ctx context.Context) {
	var items []models.CartItem
	err := kvstore.GetJSON(ctx, s.store, kvstore.CartItemsKey, &items)
	switch {
	case err == nil:
		s.mu.Lock()
		s.items = items
		s.mu.Unlock()
	case errors.Is(err, kvstore.ErrNotFound):
	default:
		logging.FromContext(ctx).Warn("discarding corrupt cart record", "error", err)
		_ = s.store.Delete(ctx, kvstore.CartItemsKey)
	}
}

// Items returns the lines in insertion order.
func (s *Service) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the sum of unit price times quantity over every line.
func (s *Service) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Product.Price * it.Quantity
	}
	return total
}

// ItemCount is the sum of quantities, not the number of lines.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

// persist writes the full snapshot. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []models.CartItem{}
	}
	if err := kvstore.SetJSON(ctx, s.store, kvstore.CartItemsKey, items); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
