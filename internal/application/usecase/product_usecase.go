// internal/application/usecase/product_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	productdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/product"
)

// ProductImageSigner issues upload URLs for product images (GCS adapter).
type ProductImageSigner interface {
	SignUpload(ctx context.Context, productID, fileName, contentType string) (ImageUpload, error)
}

// ImageURLResolver turns a stored imageUrl (object path, gs:// URI, URL) into a public URL.
type ImageURLResolver interface {
	ResolveForResponse(stored string) string
}

// ImageUpload is the result of ProductImageSigner.SignUpload.
type ImageUpload struct {
	UploadURL  string    `json:"uploadUrl"`
	ImageURL   string    `json:"imageUrl"`
	ObjectPath string    `json:"objectPath"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// ProductInput carries create/update fields. nil means "not supplied".
type ProductInput struct {
	Name        *string
	Description *string
	Price       *common.Decimal
	ImageURL    *string
}

var ErrProductImagesNotConfigured = errors.New("product_usecase: image storage is not configured")

// ProductUsecase is the catalog manager.
type ProductUsecase struct {
	repo     productdom.Repository
	newID    IDGenerator
	signer   ProductImageSigner
	resolver ImageURLResolver
}

func NewProductUsecase(repo productdom.Repository) *ProductUsecase {
	return &ProductUsecase{repo: repo, newID: newUUID}
}

// WithImages attaches the optional image signer/resolver.
func (u *ProductUsecase) WithImages(signer ProductImageSigner, resolver ImageURLResolver) *ProductUsecase {
	u.signer = signer
	u.resolver = resolver
	return u
}

// Create requires name and price; description and imageUrl default to "".
func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (productdom.Product, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" || in.Price == nil {
		return productdom.Product{}, invalidArgumentf("fields 'name' and 'price' are required")
	}

	p, err := productdom.New(u.newID(), *in.Name, deref(in.Description), *in.Price, deref(in.ImageURL))
	if err != nil {
		return productdom.Product{}, invalidArgument(err)
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return productdom.Product{}, err
	}
	return u.present(created), nil
}

func (u *ProductUsecase) Get(ctx context.Context, id string) (productdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, invalidArgumentf("productId is required")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdom.ErrNotFound) {
			return productdom.Product{}, notFoundf("product %s", id)
		}
		return productdom.Product{}, err
	}
	return u.present(p), nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]productdom.Product, error) {
	ps, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]productdom.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, u.present(p))
	}
	return out, nil
}

// Update replaces name, description and price (all mandatory except description,
// which is cleared when absent). imageUrl is only changed when supplied.
func (u *ProductUsecase) Update(ctx context.Context, id string, in ProductInput) (productdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, invalidArgumentf("productId is required")
	}
	if in.Name == nil || in.Price == nil {
		return productdom.Product{}, invalidArgumentf("fields 'name' and 'price' are required")
	}

	cur, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdom.ErrNotFound) {
			return productdom.Product{}, notFoundf("product %s", id)
		}
		return productdom.Product{}, err
	}

	if err := cur.Replace(*in.Name, deref(in.Description), *in.Price); err != nil {
		return productdom.Product{}, invalidArgument(err)
	}
	if in.ImageURL != nil {
		cur.ImageURL = strings.TrimSpace(*in.ImageURL)
	}

	updated, err := u.repo.Update(ctx, cur)
	if err != nil {
		if errors.Is(err, productdom.ErrNotFound) {
			return productdom.Product{}, notFoundf("product %s", id)
		}
		return productdom.Product{}, err
	}
	return u.present(updated), nil
}

// Delete is idempotent.
func (u *ProductUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidArgumentf("productId is required")
	}
	return u.repo.Delete(ctx, id)
}

// ImageUploadURL returns a signed upload URL for the product's image.
func (u *ProductUsecase) ImageUploadURL(ctx context.Context, id, fileName, contentType string) (ImageUpload, error) {
	if u.signer == nil {
		return ImageUpload{}, ErrProductImagesNotConfigured
	}
	if strings.TrimSpace(fileName) == "" {
		return ImageUpload{}, invalidArgumentf("fileName is required")
	}
	if _, err := u.Get(ctx, id); err != nil {
		return ImageUpload{}, err
	}
	return u.signer.SignUpload(ctx, strings.TrimSpace(id), strings.TrimSpace(fileName), strings.TrimSpace(contentType))
}

func (u *ProductUsecase) present(p productdom.Product) productdom.Product {
	if u.resolver != nil && p.ImageURL != "" {
		p.ImageURL = u.resolver.ResolveForResponse(p.ImageURL)
	}
	return p
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
