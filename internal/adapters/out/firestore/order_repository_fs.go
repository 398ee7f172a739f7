// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// OrderRepositoryFS is the Firestore implementation of order.Repository.
//   - docId: orderId
//   - status filter uses the single-field index on "status" (Where, not a client-side scan)
type OrderRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewOrderRepositoryFS(client *firestore.Client, collection string) *OrderRepositoryFS {
	if strings.TrimSpace(collection) == "" {
		collection = "orders"
	}
	return &OrderRepositoryFS{Client: client, Collection: collection}
}

func (r *OrderRepositoryFS) ordersCol() *firestore.CollectionRef {
	return r.Client.Collection(r.Collection)
}

// ========================
// Queries
// ========================

func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	if r.Client == nil {
		return orderdom.Order{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}

	snap, err := r.ordersCol().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.Order{}, orderdom.ErrNotFound
		}
		return orderdom.Order{}, err
	}
	return docToOrder(snap)
}

func (r *OrderRepositoryFS) List(ctx context.Context, filter orderdom.Filter) ([]orderdom.Order, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	// status + createdAt ordering would need a composite index, so filtered
	// lists are sorted and truncated client-side.
	q := r.ordersCol().Query
	if filter.Status != nil {
		q = q.Where("status", "==", string(*filter.Status))
	} else if filter.Limit > 0 {
		q = q.OrderBy("createdAt", firestore.Asc).Limit(filter.Limit)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	out := []orderdom.Order{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		o, err := docToOrder(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// ========================
// Commands
// ========================

func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	if r.Client == nil {
		return orderdom.Order{}, errors.New("firestore client is nil")
	}

	if _, err := r.ordersCol().Doc(o.OrderID).Create(ctx, orderToDoc(o)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return orderdom.Order{}, orderdom.ErrConflict
		}
		return orderdom.Order{}, err
	}
	return o, nil
}

// UpdateStatus reads and writes in one transaction. A plain Set would create the
// document when it is missing, so the read surfaces NotFound first.
func (r *OrderRepositoryFS) UpdateStatus(ctx context.Context, id string, to orderdom.Status, guard func(from orderdom.Status) error) (orderdom.Order, error) {
	if r.Client == nil {
		return orderdom.Order{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	ref := r.ordersCol().Doc(id)

	var updated orderdom.Order
	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return orderdom.ErrNotFound
			}
			return err
		}

		cur, err := docToOrder(snap)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(cur.Status); err != nil {
				return err
			}
		}

		cur.Status = to
		updated = cur
		return tx.Update(ref, []firestore.Update{{Path: "status", Value: string(to)}})
	})
	if err != nil {
		return orderdom.Order{}, err
	}
	return updated, nil
}
