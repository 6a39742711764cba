package domain

import (
	"context"
	"time"

	"github.com/goccy/go-json"
)

// SelectionEntry is one requested product/quantity pair.
type SelectionEntry struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Selection maps product ids to requested quantities while preserving
// insertion order, so derived summaries list items deterministically.
// A missing id means "not in the cart". Quantities are validated at the
// delivery layer; every stored entry has Quantity >= 1.
type Selection struct {
	order []int
	qty   map[int]int
}

func NewSelection() Selection {
	return Selection{qty: make(map[int]int)}
}

// Set inserts or replaces the quantity for a product id.
func (s *Selection) Set(productID, quantity int) {
	if s.qty == nil {
		s.qty = make(map[int]int)
	}
	if _, ok := s.qty[productID]; !ok {
		s.order = append(s.order, productID)
	}
	s.qty[productID] = quantity
}

// Remove deletes the entry for a product id, if present.
func (s *Selection) Remove(productID int) {
	if _, ok := s.qty[productID]; !ok {
		return
	}
	delete(s.qty, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Quantity returns the requested quantity and whether the id is selected.
func (s Selection) Quantity(productID int) (int, bool) {
	q, ok := s.qty[productID]
	return q, ok
}

// Entries returns the selection in insertion order.
func (s Selection) Entries() []SelectionEntry {
	entries := make([]SelectionEntry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, SelectionEntry{ProductID: id, Quantity: s.qty[id]})
	}
	return entries
}

func (s Selection) Len() int {
	return len(s.order)
}

// MarshalJSON encodes the selection as an ordered entry array.
func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Entries())
}

// UnmarshalJSON restores a selection from an ordered entry array.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var entries []SelectionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*s = NewSelection()
	for _, e := range entries {
		s.Set(e.ProductID, e.Quantity)
	}
	return nil
}

// --- Cart Entities ---

// Cart is a server-side session cart: a selection plus at most one applied
// coupon. Summaries are always derived, never stored.
type Cart struct {
	ID            string    `json:"id"`
	Selection     Selection `json:"items"`
	AppliedCoupon *Coupon   `json:"appliedCoupon,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LineItem pairs a resolved catalog product with its requested quantity.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSummary is derived from (catalog, selection, coupon) and recomputed
// from scratch on every read.
//
// Invariants: Total == discounted products cost + ShippingCost, and
// Discount == no-coupon total - Total (>= 0).
type CartSummary struct {
	Items        []LineItem `json:"items"`
	Total        float64    `json:"total"`
	Discount     float64    `json:"discount"`
	ShippingCost float64    `json:"shippingCost"`
}

// --- Interfaces ---

// CartStore holds session carts. Implementations expire carts after a TTL;
// there is no cross-session persistence.
type CartStore interface {
	Get(ctx context.Context, id string) (*Cart, error)
	Put(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, id string) error
}
