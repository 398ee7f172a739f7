// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	productdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/product"
)

// ProductRepositoryFS is a Firestore-based implementation of product.Repository.
//   - docId: productId
//   - price is stored as a decimal string
type ProductRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewProductRepositoryFS(client *firestore.Client, collection string) *ProductRepositoryFS {
	if strings.TrimSpace(collection) == "" {
		collection = "products"
	}
	return &ProductRepositoryFS{Client: client, Collection: collection}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(r.Collection)
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r.Client == nil {
		return productdom.Product{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}
	return docToProduct(snap)
}

// List scans the whole collection.
func (r *ProductRepositoryFS) List(ctx context.Context) ([]productdom.Product, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	out := []productdom.Product{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := docToProduct(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepositoryFS) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if r.Client == nil {
		return productdom.Product{}, errors.New("firestore client is nil")
	}

	_, err := r.col().Doc(p.ProductID).Create(ctx, productToDoc(p))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return productdom.Product{}, productdom.ErrConflict
		}
		return productdom.Product{}, err
	}
	return p, nil
}

// Update overwrites an existing document; it never creates one.
func (r *ProductRepositoryFS) Update(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if r.Client == nil {
		return productdom.Product{}, errors.New("firestore client is nil")
	}

	ref := r.col().Doc(p.ProductID)
	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if status.Code(err) == codes.NotFound {
				return productdom.ErrNotFound
			}
			return err
		}
		return tx.Set(ref, productToDoc(p))
	})
	if err != nil {
		return productdom.Product{}, err
	}
	return p, nil
}

// Delete is idempotent (Firestore deletes of missing docs succeed).
func (r *ProductRepositoryFS) Delete(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

// ========================
// Mapping
// ========================

func productToDoc(p productdom.Product) map[string]any {
	return map[string]any{
		"productId":   p.ProductID,
		"name":        p.Name,
		"description": p.Description,
		"price":       decimalString(p.Price),
		"imageUrl":    p.ImageURL,
	}
}

func docToProduct(doc *firestore.DocumentSnapshot) (productdom.Product, error) {
	data := doc.Data()
	if data == nil {
		return productdom.Product{}, fmt.Errorf("empty product document: %s", doc.Ref.ID)
	}

	price, err := asDecimal(data["price"])
	if err != nil {
		return productdom.Product{}, fmt.Errorf("product %s: price: %w", doc.Ref.ID, err)
	}

	return productdom.Product{
		// docId is the source of truth
		ProductID:   doc.Ref.ID,
		Name:        strings.TrimSpace(asString(data["name"])),
		Description: asString(data["description"]),
		Price:       price,
		ImageURL:    strings.TrimSpace(asString(data["imageUrl"])),
	}, nil
}
