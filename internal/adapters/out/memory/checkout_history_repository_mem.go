// internal/adapters/out/memory/checkout_history_repository_mem.go
package memory

import (
	"context"
	"strings"
	"sync"

	archivedom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/archive"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// CheckoutHistoryRepositoryMem is an in-process archive.Repository.
type CheckoutHistoryRepositoryMem struct {
	mu      sync.RWMutex
	records map[string]archivedom.ArchivedOrder
}

func NewCheckoutHistoryRepositoryMem() *CheckoutHistoryRepositoryMem {
	return &CheckoutHistoryRepositoryMem{records: map[string]archivedom.ArchivedOrder{}}
}

// Put overwrites any record with the same orderId.
func (r *CheckoutHistoryRepositoryMem) Put(_ context.Context, a archivedom.ArchivedOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.Items = append([]orderdom.LineItem{}, a.Items...)
	r.records[strings.TrimSpace(a.OrderID)] = a
	return nil
}

func (r *CheckoutHistoryRepositoryMem) GetByOrderID(_ context.Context, orderID string) (archivedom.ArchivedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.records[strings.TrimSpace(orderID)]
	if !ok {
		return archivedom.ArchivedOrder{}, archivedom.ErrNotFound
	}
	a.Items = append([]orderdom.LineItem{}, a.Items...)
	return a, nil
}

// Len reports how many records are stored.
func (r *CheckoutHistoryRepositoryMem) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
