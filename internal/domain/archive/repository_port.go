package archive

import (
	"context"
	"errors"
)

// Repository is the checkout history store. Put overwrites any previous record
// with the same OrderID; there is no merge.
type Repository interface {
	Put(ctx context.Context, a ArchivedOrder) error
	GetByOrderID(ctx context.Context, orderID string) (ArchivedOrder, error)
}

var ErrNotFound = errors.New("archive: not found")
