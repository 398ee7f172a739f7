// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/cart"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
//   - collection: carts
//   - docId: userId (docId is the source of truth)
//   - fields: items([]{productId, quantity}), version, updatedAt
//
// Save runs inside a transaction so the version check and the write are atomic.
type CartRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewCartRepositoryFS(client *firestore.Client, collection string) *CartRepositoryFS {
	if strings.TrimSpace(collection) == "" {
		collection = "carts"
	}
	return &CartRepositoryFS{Client: client, Collection: collection}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(r.Collection)
}

// GetByUserID returns (nil, nil) if not found.
func (r *CartRepositoryFS) GetByUserID(ctx context.Context, userID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("cart_repository_fs: userID is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	doc, err := cartDocFromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	c := doc.toDomain()
	c.UserID = uid
	return c, nil
}

// Save overwrites the cart document, guarded by opts.IfMatchVersion when set.
func (r *CartRepositoryFS) Save(ctx context.Context, c *cartdom.Cart, opts *common.SaveOptions) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("cart_repository_fs: cart is nil")
	}
	uid := strings.TrimSpace(c.UserID)
	if uid == "" {
		return errors.New("cart_repository_fs: Save requires cart.UserID as docId")
	}

	ref := r.col().Doc(uid)
	var next int64

	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var stored int64
		snap, err := tx.Get(ref)
		switch {
		case err == nil:
			stored = asInt64(snap.Data()["version"])
		case status.Code(err) == codes.NotFound:
			stored = 0
		default:
			return err
		}

		if want, ok := opts.Version(); ok && want != stored {
			return cartdom.ErrConflict
		}

		next = stored + 1
		doc := cartDocFromDomain(c)
		doc.Version = next
		return tx.Set(ref, doc)
	})
	if err != nil {
		return err
	}

	c.Version = next
	return nil
}

func (r *CartRepositoryFS) DeleteByUserID(ctx context.Context, userID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("cart_repository_fs: userID is empty")
	}

	_, err := r.col().Doc(uid).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

// NOTE: the domain struct is not used as the Firestore DTO directly (quantities are strings here).
type cartDoc struct {
	Items     []cartItemDoc `firestore:"items"`
	Version   int64         `firestore:"version"`
	UpdatedAt time.Time     `firestore:"updatedAt"`
}

type cartItemDoc struct {
	ProductID string `firestore:"productId"`
	Quantity  string `firestore:"quantity"`
}

// cartDocFromSnapshot parses snap.Data() by hand so carts written with numeric
// quantities (older clients) still load.
func cartDocFromSnapshot(snap *firestore.DocumentSnapshot) (cartDoc, error) {
	if snap == nil {
		return cartDoc{}, errors.New("cart_repository_fs: snapshot is nil")
	}

	out := cartDoc{Items: []cartItemDoc{}}
	raw := snap.Data()
	if raw == nil {
		return out, nil
	}

	out.Version = asInt64(raw["version"])
	if t, ok := asTime(raw["updatedAt"]); ok {
		out.UpdatedAt = t
	}

	for _, v := range asSliceAny(raw["items"]) {
		m := asMapAny(v)
		if m == nil {
			continue
		}
		pid := strings.TrimSpace(asString(m["productId"]))
		if pid == "" {
			continue
		}
		q, err := asDecimal(m["quantity"])
		if err != nil {
			return cartDoc{}, err
		}
		out.Items = append(out.Items, cartItemDoc{ProductID: pid, Quantity: decimalString(q)})
	}
	return out, nil
}

func cartDocFromDomain(c *cartdom.Cart) cartDoc {
	items := make([]cartItemDoc, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, cartItemDoc{
			ProductID: it.ProductID,
			Quantity:  decimalString(it.Quantity),
		})
	}
	updated := c.UpdatedAt
	if updated.IsZero() {
		updated = time.Now().UTC()
	}
	return cartDoc{Items: items, Version: c.Version, UpdatedAt: updated}
}

func (d cartDoc) toDomain() *cartdom.Cart {
	items := make([]cartdom.CartItem, 0, len(d.Items))
	for _, it := range d.Items {
		// quantities were validated in cartDocFromSnapshot
		q, _ := common.ParseDecimal(it.Quantity)
		items = append(items, cartdom.CartItem{ProductID: it.ProductID, Quantity: q})
	}
	return &cartdom.Cart{
		// UserID is filled by the caller from the docId
		Items:     items,
		Version:   d.Version,
		UpdatedAt: d.UpdatedAt,
	}
}
