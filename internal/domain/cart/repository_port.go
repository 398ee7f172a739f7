// internal/domain/cart/repository_port.go
package cart

import (
	"context"
	"errors"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

// Repository is a persistence port for Cart.
//
// Storage (Firestore):
//   - collection: carts
//   - docId: userId
//   - fields: items([]{productId, quantity}), version, updatedAt
type Repository interface {
	// GetByUserID returns (nil, nil) when the user has no cart yet.
	GetByUserID(ctx context.Context, userID string) (*Cart, error)

	// Save overwrites the cart document.
	// With opts.IfMatchVersion set the write is a compare-and-swap: it fails with
	// ErrConflict unless the stored version equals it (0 = must not exist).
	// On success c.Version holds the new stored version.
	Save(ctx context.Context, c *Cart, opts *common.SaveOptions) error

	// DeleteByUserID removes the cart. Missing carts are not an error.
	DeleteByUserID(ctx context.Context, userID string) error
}

var ErrConflict = errors.New("cart: version conflict")
