package order

import (
	"context"
	"errors"
)

// Filter selects orders for List.
type Filter struct {
	// Status, when non-nil, keeps only orders whose status equals it exactly (case-sensitive).
	Status *Status
	// Limit caps the result size; 0 means unbounded.
	Limit int
}

// Matches reports whether o passes the status filter.
func (f Filter) Matches(o Order) bool {
	return f.Status == nil || o.Status == *f.Status
}

// Repository defines the persistence port for Order.
type Repository interface {
	// Queries
	GetByID(ctx context.Context, id string) (Order, error)
	List(ctx context.Context, filter Filter) ([]Order, error)

	// Commands
	Create(ctx context.Context, o Order) (Order, error)

	// UpdateStatus overwrites only the status field of an existing order and returns the
	// updated record. guard is called with the stored status before writing; its error
	// aborts the update. Missing orders yield ErrNotFound (never an upsert).
	UpdateStatus(ctx context.Context, id string, to Status, guard func(from Status) error) (Order, error)
}

// Standard repository errors
var (
	ErrNotFound = errors.New("order: not found")
	ErrConflict = errors.New("order: conflict")
)
