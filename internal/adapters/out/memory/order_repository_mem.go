// internal/adapters/out/memory/order_repository_mem.go
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// OrderRepositoryMem is an in-process order.Repository. Status filtering is a scan.
type OrderRepositoryMem struct {
	mu     sync.RWMutex
	orders map[string]orderdom.Order
}

func NewOrderRepositoryMem() *OrderRepositoryMem {
	return &OrderRepositoryMem{orders: map[string]orderdom.Order{}}
}

func (r *OrderRepositoryMem) GetByID(_ context.Context, id string) (orderdom.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[strings.TrimSpace(id)]
	if !ok {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return cloneOrder(o), nil
}

// List returns matching orders oldest first.
func (r *OrderRepositoryMem) List(_ context.Context, f orderdom.Filter) ([]orderdom.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]orderdom.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if f.Matches(o) {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].OrderID < out[j].OrderID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *OrderRepositoryMem) Create(_ context.Context, o orderdom.Order) (orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.OrderID]; ok {
		return orderdom.Order{}, orderdom.ErrConflict
	}
	r.orders[o.OrderID] = cloneOrder(o)
	return o, nil
}

func (r *OrderRepositoryMem) UpdateStatus(_ context.Context, id string, to orderdom.Status, guard func(from orderdom.Status) error) (orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id = strings.TrimSpace(id)
	o, ok := r.orders[id]
	if !ok {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	if guard != nil {
		if err := guard(o.Status); err != nil {
			return orderdom.Order{}, err
		}
	}
	o.Status = to
	r.orders[id] = o
	return cloneOrder(o), nil
}

func cloneOrder(o orderdom.Order) orderdom.Order {
	o.Items = append([]orderdom.LineItem{}, o.Items...)
	return o
}
