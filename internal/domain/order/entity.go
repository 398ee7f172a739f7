// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

// NotAvailable is stored for customer snapshot fields that were not supplied.
const NotAvailable = "N/A"

// ========================================
// Snapshot structs (stored in Order)
// ========================================

// LineItem is a snapshot of one purchased product taken at order creation.
// It is never linked back to live cart or catalog state.
type LineItem struct {
	ProductID string         `json:"productId"`
	Name      string         `json:"name,omitempty"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	Price     common.Decimal `json:"price"`
	Quantity  common.Decimal `json:"quantity"`
}

// CustomerInfo holds the free-text customer snapshot fields.
type CustomerInfo struct {
	CustomerName    string
	ShippingAddress string
	PaymentMethod   string
}

// ========================================
// Entity
// ========================================

// Order is immutable after creation except for Status.
type Order struct {
	OrderID    string         `json:"orderId"`
	UserID     string         `json:"userId"`
	Items      []LineItem     `json:"items"`
	TotalPrice common.Decimal `json:"totalPrice"`
	Status     Status         `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`

	CustomerName    string `json:"customerName"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

// ========================================
// Errors
// ========================================

var (
	ErrInvalidID        = errors.New("order: invalid orderId")
	ErrInvalidUserID    = errors.New("order: userId is required")
	ErrInvalidItems     = errors.New("order: items are required")
	ErrInvalidItem      = errors.New("order: invalid line item")
	ErrInvalidCreatedAt = errors.New("order: invalid createdAt")
	ErrInvalidStatus    = errors.New("order: status is required")
)

// ========================================
// Constructors
// ========================================

// New creates a PENDING order and computes its total once.
// items must be non-nil; an empty slice is a valid zero-total order.
func New(id, userID string, items []LineItem, info CustomerInfo, createdAt time.Time) (Order, error) {
	if items == nil {
		return Order{}, ErrInvalidItems
	}
	o := Order{
		OrderID:    strings.TrimSpace(id),
		UserID:     strings.TrimSpace(userID),
		Items:      normalizeItems(items),
		Status:     StatusPending,
		CreatedAt:  createdAt.UTC(),
		TotalPrice: Total(items),

		CustomerName:    orNotAvailable(info.CustomerName),
		ShippingAddress: orNotAvailable(info.ShippingAddress),
		PaymentMethod:   orNotAvailable(info.PaymentMethod),
	}
	if err := o.validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

// Total is Σ price×quantity in exact decimal arithmetic.
func Total(items []LineItem) common.Decimal {
	sum := common.Zero
	for _, it := range items {
		sum = sum.Add(it.Price.Mul(it.Quantity))
	}
	return sum
}

// ========================================
// Validation
// ========================================

func (o Order) validate() error {
	if o.OrderID == "" {
		return ErrInvalidID
	}
	if o.UserID == "" {
		return ErrInvalidUserID
	}
	if o.CreatedAt.IsZero() {
		return ErrInvalidCreatedAt
	}
	return validateItems(o.Items)
}

// validateItems rejects negative prices and quantities; zero is allowed.
func validateItems(items []LineItem) error {
	for _, it := range items {
		if it.Price.IsNegative() || it.Quantity.IsNegative() {
			return ErrInvalidItem
		}
	}
	return nil
}

// ========================================
// Helpers
// ========================================

func normalizeItems(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		it.ProductID = strings.TrimSpace(it.ProductID)
		out = append(out, it)
	}
	return out
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// OrdersTableDDL defines the SQL for the orders table (postgres backend).
const OrdersTableDDL = `
-- Orders DDL generated from domain/order entity.
CREATE TABLE IF NOT EXISTS orders (
  order_id          TEXT        PRIMARY KEY,
  user_id           TEXT        NOT NULL,
  items             JSONB       NOT NULL DEFAULT '[]'::jsonb,  -- line item snapshot
  total_price       NUMERIC     NOT NULL,
  status            TEXT        NOT NULL,
  created_at        TIMESTAMPTZ NOT NULL,
  customer_name     TEXT        NOT NULL DEFAULT 'N/A',
  shipping_address  TEXT        NOT NULL DEFAULT 'N/A',
  payment_method    TEXT        NOT NULL DEFAULT 'N/A'
);

-- status filter (GET /orders?status=...)
CREATE INDEX IF NOT EXISTS idx_orders_status     ON orders(status);
CREATE INDEX IF NOT EXISTS idx_orders_user_id    ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
`
