// internal/adapters/out/firestore/checkout_history_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	archivedom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/archive"
)

// CheckoutHistoryRepositoryFS stores archived orders (docId = orderId).
type CheckoutHistoryRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewCheckoutHistoryRepositoryFS(client *firestore.Client, collection string) *CheckoutHistoryRepositoryFS {
	if strings.TrimSpace(collection) == "" {
		collection = "checkoutHistory"
	}
	return &CheckoutHistoryRepositoryFS{Client: client, Collection: collection}
}

func (r *CheckoutHistoryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(r.Collection)
}

// Put overwrites the whole document (no merge).
func (r *CheckoutHistoryRepositoryFS) Put(ctx context.Context, a archivedom.ArchivedOrder) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	_, err := r.col().Doc(a.OrderID).Set(ctx, map[string]any{
		"orderId":         a.OrderID,
		"userId":          a.UserID,
		"items":           lineItemsToDoc(a.Items),
		"totalPrice":      decimalString(a.TotalPrice),
		"createdAt":       a.CreatedAt,
		"customerName":    a.CustomerName,
		"shippingAddress": a.ShippingAddress,
		"paymentMethod":   a.PaymentMethod,
		"archivedAt":      a.ArchivedAt.UTC(),
	})
	return err
}

func (r *CheckoutHistoryRepositoryFS) GetByOrderID(ctx context.Context, orderID string) (archivedom.ArchivedOrder, error) {
	if r.Client == nil {
		return archivedom.ArchivedOrder{}, errors.New("firestore client is nil")
	}

	id := strings.TrimSpace(orderID)
	if id == "" {
		return archivedom.ArchivedOrder{}, archivedom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return archivedom.ArchivedOrder{}, archivedom.ErrNotFound
		}
		return archivedom.ArchivedOrder{}, err
	}

	data := snap.Data()
	items, err := decodeLineItems(data["items"])
	if err != nil {
		return archivedom.ArchivedOrder{}, fmt.Errorf("checkout %s: %w", id, err)
	}
	total, err := asDecimal(data["totalPrice"])
	if err != nil {
		return archivedom.ArchivedOrder{}, fmt.Errorf("checkout %s: totalPrice: %w", id, err)
	}
	archivedAt, _ := asTime(data["archivedAt"])

	return archivedom.ArchivedOrder{
		OrderID:         snap.Ref.ID,
		UserID:          asString(data["userId"]),
		Items:           items,
		TotalPrice:      total,
		CreatedAt:       asString(data["createdAt"]),
		CustomerName:    asString(data["customerName"]),
		ShippingAddress: asString(data["shippingAddress"]),
		PaymentMethod:   asString(data["paymentMethod"]),
		ArchivedAt:      archivedAt,
	}, nil
}
