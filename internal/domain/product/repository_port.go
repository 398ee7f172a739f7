package product

import (
	"context"
	"errors"
)

// Repository is the persistence port for Product.
type Repository interface {
	GetByID(ctx context.Context, id string) (Product, error)
	// List returns every product (full scan, no filter).
	List(ctx context.Context) ([]Product, error)

	Create(ctx context.Context, p Product) (Product, error)
	// Update overwrites an existing product; ErrNotFound if it does not exist.
	Update(ctx context.Context, p Product) (Product, error)
	// Delete is idempotent: deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotFound = errors.New("product: not found")
	ErrConflict = errors.New("product: conflict")
)
