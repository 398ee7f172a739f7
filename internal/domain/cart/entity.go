// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

var (
	ErrInvalidCart      = errors.New("cart: invalid")
	ErrInvalidProductID = errors.New("cart: productId is required")
)

// CartItem is one line of a cart. ProductID is unique within a cart.
type CartItem struct {
	ProductID string         `json:"productId"`
	Quantity  common.Decimal `json:"quantity"`
}

// Cart is the per-user item list (docId / primary key = userId).
//   - Items keep insertion/merge order.
//   - Version is the optimistic-lock token; 0 means "never stored".
type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`

	Version   int64     `json:"-"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// NewCart returns an empty cart that has not been stored yet.
func NewCart(userID string) (*Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrInvalidCart
	}
	return &Cart{UserID: uid, Items: []CartItem{}}, nil
}

// Apply merges one (productID, quantity) mutation into the cart.
func (c *Cart) Apply(productID string, quantity common.Decimal, now time.Time) error {
	if c == nil || strings.TrimSpace(c.UserID) == "" {
		return ErrInvalidCart
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return ErrInvalidProductID
	}
	c.Items = Merge(c.Items, pid, quantity)
	c.UpdatedAt = now.UTC()
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear(now time.Time) {
	c.Items = []CartItem{}
	c.UpdatedAt = now.UTC()
}

// Merge reconciles one mutation with items and returns a new list.
//
// The item matching productID is replaced by {productID, quantity} when quantity > 0
// and dropped when quantity <= 0. Other items pass through in their original order.
// Without a match, quantity > 0 appends a new item and quantity <= 0 changes nothing.
// Quantities are last-write-wins, not additive. items is never modified.
func Merge(items []CartItem, productID string, quantity common.Decimal) []CartItem {
	keep := quantity.IsPositive()
	out := make([]CartItem, 0, len(items)+1)
	found := false

	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
			continue
		}
		found = true
		if keep {
			out = append(out, CartItem{ProductID: productID, Quantity: quantity})
		}
	}

	if !found && keep {
		out = append(out, CartItem{ProductID: productID, Quantity: quantity})
	}
	return out
}

// CartsTableDDL defines the SQL for the carts table (postgres backend).
const CartsTableDDL = `
-- Carts DDL generated from domain/cart entity.
CREATE TABLE IF NOT EXISTS carts (
  user_id     TEXT        PRIMARY KEY,
  items       JSONB       NOT NULL DEFAULT '[]'::jsonb,  -- [{productId, quantity}] in merge order
  version     BIGINT      NOT NULL DEFAULT 1,            -- optimistic lock token
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
