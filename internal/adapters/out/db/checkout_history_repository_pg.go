// internal/adapters/out/db/checkout_history_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	dbcommon "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/db/common"
	archivedom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/archive"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// CheckoutHistoryRepositoryPG implements archive.Repository on checkout_history.
type CheckoutHistoryRepositoryPG struct {
	DB *sql.DB
}

func NewCheckoutHistoryRepositoryPG(db *sql.DB) *CheckoutHistoryRepositoryPG {
	return &CheckoutHistoryRepositoryPG{DB: db}
}

// Put replaces every column of an existing row with the same order_id.
func (r *CheckoutHistoryRepositoryPG) Put(ctx context.Context, a archivedom.ArchivedOrder) error {
	run := dbcommon.GetRunner(ctx, r.DB)

	items, err := marshalLineItems(a.Items)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO checkout_history (
  order_id, user_id, items, total_price, created_at,
  customer_name, shipping_address, payment_method, archived_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (order_id) DO UPDATE SET
  user_id          = EXCLUDED.user_id,
  items            = EXCLUDED.items,
  total_price      = EXCLUDED.total_price,
  created_at       = EXCLUDED.created_at,
  customer_name    = EXCLUDED.customer_name,
  shipping_address = EXCLUDED.shipping_address,
  payment_method   = EXCLUDED.payment_method,
  archived_at      = EXCLUDED.archived_at`

	_, err = run.ExecContext(ctx, q,
		a.OrderID,
		a.UserID,
		items,
		a.TotalPrice.WireString(),
		a.CreatedAt,
		a.CustomerName,
		a.ShippingAddress,
		a.PaymentMethod,
		a.ArchivedAt.UTC(),
	)
	return err
}

func (r *CheckoutHistoryRepositoryPG) GetByOrderID(ctx context.Context, orderID string) (archivedom.ArchivedOrder, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	const q = `
SELECT
  order_id, user_id, items, total_price, created_at,
  customer_name, shipping_address, payment_method, archived_at
FROM checkout_history
WHERE order_id = $1`

	var (
		a     archivedom.ArchivedOrder
		items []byte
		total string
	)
	err := run.QueryRowContext(ctx, q, strings.TrimSpace(orderID)).Scan(
		&a.OrderID,
		&a.UserID,
		&items,
		&total,
		&a.CreatedAt,
		&a.CustomerName,
		&a.ShippingAddress,
		&a.PaymentMethod,
		&a.ArchivedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return archivedom.ArchivedOrder{}, archivedom.ErrNotFound
		}
		return archivedom.ArchivedOrder{}, err
	}

	a.Items = []orderdom.LineItem{}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &a.Items); err != nil {
			return archivedom.ArchivedOrder{}, err
		}
	}
	if a.TotalPrice, err = common.ParseDecimal(total); err != nil {
		return archivedom.ArchivedOrder{}, err
	}
	a.ArchivedAt = a.ArchivedAt.UTC()
	return a, nil
}
