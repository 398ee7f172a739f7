// internal/adapters/out/db/cart_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	dbcommon "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/db/common"
	cartdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/cart"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

// CartRepositoryPG implements cart.Repository on the carts table.
// The version column is compared in the UPDATE's WHERE clause, so the CAS is a
// single statement.
type CartRepositoryPG struct {
	DB *sql.DB
}

func NewCartRepositoryPG(db *sql.DB) *CartRepositoryPG {
	return &CartRepositoryPG{DB: db}
}

func (r *CartRepositoryPG) GetByUserID(ctx context.Context, userID string) (*cartdom.Cart, error) {
	run := dbcommon.GetRunner(ctx, r.DB)

	var (
		c     cartdom.Cart
		items []byte
	)
	err := run.QueryRowContext(ctx,
		`SELECT user_id, items, version, updated_at FROM carts WHERE user_id = $1`,
		strings.TrimSpace(userID),
	).Scan(&c.UserID, &items, &c.Version, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	c.Items = []cartdom.CartItem{}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &c.Items); err != nil {
			return nil, err
		}
	}
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

func (r *CartRepositoryPG) Save(ctx context.Context, c *cartdom.Cart, opts *common.SaveOptions) error {
	if c == nil {
		return errors.New("cart_repository_pg: cart is nil")
	}
	run := dbcommon.GetRunner(ctx, r.DB)

	items := c.Items
	if items == nil {
		items = []cartdom.CartItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	// lib/pq sends []byte as bytea; JSONB needs text.
	raw := string(b)
	uid := strings.TrimSpace(c.UserID)
	updated := c.UpdatedAt
	if updated.IsZero() {
		updated = time.Now().UTC()
	}

	var (
		q    string
		args []any
	)
	want, guarded := opts.Version()
	switch {
	case !guarded:
		q = `
INSERT INTO carts (user_id, items, version, updated_at)
VALUES ($1, $2, 1, $3)
ON CONFLICT (user_id) DO UPDATE
SET items = EXCLUDED.items, version = carts.version + 1, updated_at = EXCLUDED.updated_at
RETURNING version`
		args = []any{uid, raw, updated}
	case want == 0:
		q = `
INSERT INTO carts (user_id, items, version, updated_at)
VALUES ($1, $2, 1, $3)
ON CONFLICT (user_id) DO NOTHING
RETURNING version`
		args = []any{uid, raw, updated}
	default:
		q = `
UPDATE carts
SET items = $2, version = version + 1, updated_at = $3
WHERE user_id = $1 AND version = $4
RETURNING version`
		args = []any{uid, raw, updated, want}
	}

	var next int64
	if err := run.QueryRowContext(ctx, q, args...).Scan(&next); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cartdom.ErrConflict
		}
		return err
	}
	c.Version = next
	return nil
}

func (r *CartRepositoryPG) DeleteByUserID(ctx context.Context, userID string) error {
	run := dbcommon.GetRunner(ctx, r.DB)
	_, err := run.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, strings.TrimSpace(userID))
	return err
}
