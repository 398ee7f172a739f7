// internal/adapters/out/gcs/product_image_repository_gcs.go
package gcs

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	iamcredentials "google.golang.org/api/iamcredentials/v1"

	gcscommon "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/gcs/common"
	uc "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/application/usecase"
)

const defaultSignedURLTTL = 15 * time.Minute

// ProductImageRepositoryGCS issues V4 signed PUT URLs for products/<productId>/<file>.
//
// Signing goes through the IAM credentials API (SignBlob) for AccessID, which works
// on Cloud Run where no private key is available.
type ProductImageRepositoryGCS struct {
	Bucket       string
	AccessID     string
	SignedURLTTL time.Duration

	// SignBytes signs the V4 string-to-sign. Set by the constructor; replaceable in tests.
	SignBytes func([]byte) ([]byte, error)
	now       func() time.Time
}

func NewProductImageRepositoryGCS(ctx context.Context, bucket, accessID string) (*ProductImageRepositoryGCS, error) {
	b := strings.TrimSpace(bucket)
	if b == "" {
		return nil, errors.New("productImage_repository_gcs: bucket is empty")
	}
	id := strings.TrimSpace(accessID)
	if id == "" {
		return nil, errors.New("productImage_repository_gcs: signer email not configured (set GCS_SIGNER_EMAIL)")
	}

	svc, err := iamcredentials.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("productImage_repository_gcs: iamcredentials init failed: %w", err)
	}

	signBytes := func(bts []byte) ([]byte, error) {
		name := fmt.Sprintf("projects/-/serviceAccounts/%s", id)
		req := &iamcredentials.SignBlobRequest{
			Payload: base64.StdEncoding.EncodeToString(bts),
		}
		resp, err := svc.Projects.ServiceAccounts.SignBlob(name, req).Do()
		if err != nil {
			return nil, err
		}
		return base64.StdEncoding.DecodeString(resp.SignedBlob)
	}

	return &ProductImageRepositoryGCS{
		Bucket:       b,
		AccessID:     id,
		SignedURLTTL: defaultSignedURLTTL,
		SignBytes:    signBytes,
		now:          time.Now,
	}, nil
}

// ObjectPath returns products/<productId>/<file> with sanitized segments.
func ObjectPath(productID, fileName, contentType string) (string, error) {
	pid := sanitizePathSegment(productID)
	if pid == "" {
		return "", errors.New("productImage_repository_gcs: productID is empty")
	}
	name := sanitizePathSegment(fileName)
	if name == "" {
		return "", errors.New("productImage_repository_gcs: fileName is empty")
	}
	return "products/" + pid + "/" + ensureExtensionByMIME(name, contentType), nil
}

// SignUpload implements usecase.ProductImageSigner.
func (r *ProductImageRepositoryGCS) SignUpload(_ context.Context, productID, fileName, contentType string) (uc.ImageUpload, error) {
	if r == nil || r.SignBytes == nil {
		return uc.ImageUpload{}, errors.New("productImage_repository_gcs: repo is not configured")
	}
	obj, err := ObjectPath(productID, fileName, contentType)
	if err != nil {
		return uc.ImageUpload{}, err
	}

	ttl := r.SignedURLTTL
	if ttl <= 0 {
		ttl = defaultSignedURLTTL
	}
	if ttl > time.Hour {
		ttl = time.Hour
	}
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	expires := now().UTC().Add(ttl)

	opts := &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         http.MethodPut,
		GoogleAccessID: r.AccessID,
		SignBytes:      r.SignBytes,
		Expires:        expires,
	}
	if ct := strings.TrimSpace(contentType); ct != "" {
		opts.ContentType = ct
	}

	b := bucketOrDefault(r.Bucket, "")
	u, err := storage.SignedURL(b, obj, opts)
	if err != nil {
		return uc.ImageUpload{}, err
	}

	return uc.ImageUpload{
		UploadURL:  u,
		ImageURL:   gcscommon.GCSPublicURL(b, obj, b),
		ObjectPath: obj,
		ExpiresAt:  expires,
	}, nil
}
