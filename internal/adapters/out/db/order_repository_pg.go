// internal/adapters/out/db/order_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	dbcommon "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/db/common"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// OrderRepositoryPG implements order.Repository on the orders table.
type OrderRepositoryPG struct {
	DB *sql.DB
}

func NewOrderRepositoryPG(db *sql.DB) *OrderRepositoryPG {
	return &OrderRepositoryPG{DB: db}
}

const orderColumns = `
  order_id,
  user_id,
  items,
  total_price,
  status,
  created_at,
  customer_name,
  shipping_address,
  payment_method`

// ========================
// Queries
// ========================

func (r *OrderRepositoryPG) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	row := run.QueryRowContext(ctx, `SELECT`+orderColumns+` FROM orders WHERE order_id = $1`, strings.TrimSpace(id))
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orderdom.Order{}, orderdom.ErrNotFound
		}
		return orderdom.Order{}, err
	}
	return o, nil
}

// List uses idx_orders_status when a status filter is given.
func (r *OrderRepositoryPG) List(ctx context.Context, filter orderdom.Filter) ([]orderdom.Order, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	var (
		where []string
		args  []any
	)
	if filter.Status != nil {
		dbcommon.AppendCond(&where, &args, "status = $%d", string(*filter.Status))
	}

	q := `SELECT` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at ASC, order_id ASC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := run.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []orderdom.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ========================
// Commands
// ========================

func (r *OrderRepositoryPG) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	items, err := marshalLineItems(o.Items)
	if err != nil {
		return orderdom.Order{}, err
	}

	const q = `
INSERT INTO orders (
  order_id, user_id, items, total_price, status, created_at,
  customer_name, shipping_address, payment_method
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING` + orderColumns

	row := run.QueryRowContext(ctx, q,
		o.OrderID,
		o.UserID,
		items,
		o.TotalPrice.WireString(),
		string(o.Status),
		o.CreatedAt.UTC(),
		o.CustomerName,
		o.ShippingAddress,
		o.PaymentMethod,
	)
	out, err := scanOrder(row)
	if err != nil {
		if dbcommon.IsUniqueViolation(err) {
			return orderdom.Order{}, orderdom.ErrConflict
		}
		return orderdom.Order{}, err
	}
	return out, nil
}

// UpdateStatus locks the row, runs guard, then rewrites only status.
func (r *OrderRepositoryPG) UpdateStatus(ctx context.Context, id string, to orderdom.Status, guard func(from orderdom.Status) error) (orderdom.Order, error) {
	id = strings.TrimSpace(id)

	var out orderdom.Order
	err := dbcommon.WithTx(ctx, r.DB, func(ctx context.Context) error {
		run := dbcommon.GetRunner(ctx, r.DB)

		var from string
		err := run.QueryRowContext(ctx, `SELECT status FROM orders WHERE order_id = $1 FOR UPDATE`, id).Scan(&from)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return orderdom.ErrNotFound
			}
			return err
		}
		if guard != nil {
			if err := guard(orderdom.Status(from)); err != nil {
				return err
			}
		}

		row := run.QueryRowContext(ctx,
			`UPDATE orders SET status = $2 WHERE order_id = $1 RETURNING`+orderColumns,
			id, string(to),
		)
		out, err = scanOrder(row)
		return err
	})
	if err != nil {
		return orderdom.Order{}, err
	}
	return out, nil
}

// ========================
// Scan helpers
// ========================

func marshalLineItems(items []orderdom.LineItem) (string, error) {
	if items == nil {
		items = []orderdom.LineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func scanOrder(s dbcommon.RowScanner) (orderdom.Order, error) {
	var (
		o      orderdom.Order
		items  []byte
		total  string
		status string
	)
	if err := s.Scan(
		&o.OrderID,
		&o.UserID,
		&items,
		&total,
		&status,
		&o.CreatedAt,
		&o.CustomerName,
		&o.ShippingAddress,
		&o.PaymentMethod,
	); err != nil {
		return orderdom.Order{}, err
	}

	o.Items = []orderdom.LineItem{}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return orderdom.Order{}, err
		}
	}
	t, err := common.ParseDecimal(total)
	if err != nil {
		return orderdom.Order{}, err
	}
	o.TotalPrice = t
	o.Status = orderdom.Status(status)
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}
