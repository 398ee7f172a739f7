// internal/domain/archive/entity.go
package archive

import (
	"errors"
	"strings"
	"time"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// ArchivedOrder is a write-once copy of an order's fields kept in the checkout
// history store. CreatedAt is copied verbatim as the client supplied it.
type ArchivedOrder struct {
	OrderID    string              `json:"orderId"`
	UserID     string              `json:"userId"`
	Items      []orderdom.LineItem `json:"items"`
	TotalPrice common.Decimal      `json:"totalPrice"`
	CreatedAt  string              `json:"createdAt"`

	CustomerName    string `json:"customerName"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`

	ArchivedAt time.Time `json:"archivedAt"`
}

var (
	ErrInvalidOrderID   = errors.New("archive: orderId is required")
	ErrInvalidUserID    = errors.New("archive: userId is required")
	ErrInvalidItems     = errors.New("archive: items are required")
	ErrInvalidCreatedAt = errors.New("archive: createdAt is required")
)

// FromOrder copies the archived field set out of an order.
func FromOrder(o orderdom.Order, archivedAt time.Time) ArchivedOrder {
	return ArchivedOrder{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		Items:           append([]orderdom.LineItem{}, o.Items...),
		TotalPrice:      o.TotalPrice,
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339Nano),
		CustomerName:    o.CustomerName,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		ArchivedAt:      archivedAt.UTC(),
	}
}

// Normalize trims ids and fills absent customer fields with N/A.
func (a *ArchivedOrder) Normalize() {
	a.OrderID = strings.TrimSpace(a.OrderID)
	a.UserID = strings.TrimSpace(a.UserID)
	a.CreatedAt = strings.TrimSpace(a.CreatedAt)
	if strings.TrimSpace(a.CustomerName) == "" {
		a.CustomerName = orderdom.NotAvailable
	}
	if strings.TrimSpace(a.ShippingAddress) == "" {
		a.ShippingAddress = orderdom.NotAvailable
	}
	if strings.TrimSpace(a.PaymentMethod) == "" {
		a.PaymentMethod = orderdom.NotAvailable
	}
}

func (a ArchivedOrder) Validate() error {
	if a.OrderID == "" {
		return ErrInvalidOrderID
	}
	if a.UserID == "" {
		return ErrInvalidUserID
	}
	if a.Items == nil {
		return ErrInvalidItems
	}
	if a.CreatedAt == "" {
		return ErrInvalidCreatedAt
	}
	return nil
}

// CheckoutHistoryTableDDL defines the SQL for the checkout history table (postgres backend).
const CheckoutHistoryTableDDL = `
-- Checkout history DDL generated from domain/archive entity.
CREATE TABLE IF NOT EXISTS checkout_history (
  order_id          TEXT        PRIMARY KEY,
  user_id           TEXT        NOT NULL,
  items             JSONB       NOT NULL DEFAULT '[]'::jsonb,
  total_price       NUMERIC     NOT NULL,
  created_at        TEXT        NOT NULL,                  -- copied verbatim from the order
  customer_name     TEXT        NOT NULL DEFAULT 'N/A',
  shipping_address  TEXT        NOT NULL DEFAULT 'N/A',
  payment_method    TEXT        NOT NULL DEFAULT 'N/A',
  archived_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_checkout_history_user_id ON checkout_history(user_id);
`
