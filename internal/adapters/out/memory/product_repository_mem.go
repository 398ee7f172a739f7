// internal/adapters/out/memory/product_repository_mem.go
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	productdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/product"
)

// ProductRepositoryMem is an in-process product.Repository (tests / STORE_BACKEND=memory).
type ProductRepositoryMem struct {
	mu    sync.RWMutex
	items map[string]productdom.Product
	seq   map[string]int
	next  int
}

func NewProductRepositoryMem() *ProductRepositoryMem {
	return &ProductRepositoryMem{
		items: map[string]productdom.Product{},
		seq:   map[string]int{},
	}
}

func (r *ProductRepositoryMem) GetByID(_ context.Context, id string) (productdom.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[strings.TrimSpace(id)]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

// List returns products in insertion order.
func (r *ProductRepositoryMem) List(_ context.Context) ([]productdom.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]productdom.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.seq[out[i].ProductID] < r.seq[out[j].ProductID]
	})
	return out, nil
}

func (r *ProductRepositoryMem) Create(_ context.Context, p productdom.Product) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ProductID]; ok {
		return productdom.Product{}, productdom.ErrConflict
	}
	r.next++
	r.seq[p.ProductID] = r.next
	r.items[p.ProductID] = p
	return p, nil
}

func (r *ProductRepositoryMem) Update(_ context.Context, p productdom.Product) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ProductID]; !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	r.items[p.ProductID] = p
	return p, nil
}

func (r *ProductRepositoryMem) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id = strings.TrimSpace(id)
	delete(r.items, id)
	delete(r.seq, id)
	return nil
}
