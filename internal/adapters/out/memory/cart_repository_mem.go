// internal/adapters/out/memory/cart_repository_mem.go
package memory

import (
	"context"
	"strings"
	"sync"

	cartdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/cart"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

// CartRepositoryMem is an in-process cart.Repository with version CAS.
type CartRepositoryMem struct {
	mu    sync.Mutex
	carts map[string]cartdom.Cart
}

func NewCartRepositoryMem() *CartRepositoryMem {
	return &CartRepositoryMem{carts: map[string]cartdom.Cart{}}
}

// GetByUserID returns a copy so callers never share the stored item slice.
func (r *CartRepositoryMem) GetByUserID(_ context.Context, userID string) (*cartdom.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[strings.TrimSpace(userID)]
	if !ok {
		return nil, nil
	}
	c.Items = append([]cartdom.CartItem{}, c.Items...)
	return &c, nil
}

func (r *CartRepositoryMem) Save(_ context.Context, c *cartdom.Cart, opts *common.SaveOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	uid := strings.TrimSpace(c.UserID)
	cur, exists := r.carts[uid]
	var stored int64
	if exists {
		stored = cur.Version
	}
	if want, ok := opts.Version(); ok && want != stored {
		return cartdom.ErrConflict
	}

	next := *c
	next.UserID = uid
	next.Items = append([]cartdom.CartItem{}, c.Items...)
	next.Version = stored + 1
	r.carts[uid] = next

	c.Version = next.Version
	return nil
}

func (r *CartRepositoryMem) DeleteByUserID(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, strings.TrimSpace(userID))
	return nil
}
