package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/memory"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *common.Decimal {
	d := common.MustDecimal(s)
	return &d
}

func TestProductUsecase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUsecase(memory.NewProductRepositoryMem())

	p, err := uc.Create(ctx, ProductInput{
		Name:     strPtr("Kopi"),
		Price:    decPtr("15000"),
		ImageURL: strPtr("https://cdn.example/kopi.png"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ProductID)
	assert.Equal(t, "", p.Description)

	got, err := uc.Get(ctx, p.ProductID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	updated, err := uc.Update(ctx, p.ProductID, ProductInput{
		Name:  strPtr("Kopi Susu"),
		Price: decPtr("18000.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Kopi Susu", updated.Name)
	assert.Equal(t, "https://cdn.example/kopi.png", updated.ImageURL)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, p.ProductID))
	require.NoError(t, uc.Delete(ctx, p.ProductID))
	_, err = uc.Get(ctx, p.ProductID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductUsecase_Validation(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUsecase(memory.NewProductRepositoryMem())

	_, err := uc.Create(ctx, ProductInput{Price: decPtr("1")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = uc.Create(ctx, ProductInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = uc.Create(ctx, ProductInput{Name: strPtr("x"), Price: decPtr("-1")})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = uc.Update(ctx, "missing", ProductInput{Name: strPtr("x"), Price: decPtr("1")})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = uc.Update(ctx, "missing", ProductInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

type fakeSigner struct{}

func (fakeSigner) SignUpload(_ context.Context, productID, fileName, _ string) (ImageUpload, error) {
	return ImageUpload{
		UploadURL:  "https://signed.example/" + productID + "/" + fileName,
		ImageURL:   "https://storage.googleapis.com/b/products/" + productID + "/" + fileName,
		ObjectPath: "products/" + productID + "/" + fileName,
		ExpiresAt:  time.Now().Add(time.Minute),
	}, nil
}

type prefixResolver struct{}

func (prefixResolver) ResolveForResponse(stored string) string { return "resolved:" + stored }

func TestProductUsecase_Images(t *testing.T) {
	ctx := context.Background()

	bare := NewProductUsecase(memory.NewProductRepositoryMem())
	_, err := bare.ImageUploadURL(ctx, "p1", "a.png", "image/png")
	assert.ErrorIs(t, err, ErrProductImagesNotConfigured)

	uc := NewProductUsecase(memory.NewProductRepositoryMem()).WithImages(fakeSigner{}, prefixResolver{})

	_, err = uc.ImageUploadURL(ctx, "missing", "a.png", "image/png")
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := uc.Create(ctx, ProductInput{Name: strPtr("x"), Price: decPtr("1"), ImageURL: strPtr("products/x.png")})
	require.NoError(t, err)
	assert.Equal(t, "resolved:products/x.png", p.ImageURL)

	up, err := uc.ImageUploadURL(ctx, p.ProductID, "a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "products/"+p.ProductID+"/a.png", up.ObjectPath)

	_, err = uc.ImageUploadURL(ctx, p.ProductID, "", "image/png")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
