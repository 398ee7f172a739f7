// internal/adapters/out/gcs/product_image_url_resolver.go
package gcs

import (
	"strings"

	gcscommon "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/gcs/common"
)

// ProductImageURLResolver resolves a stored imageUrl for API responses.
//
// stored can be:
//   - http(s)://... (returned as-is, except GCS URLs which are canonicalized)
//   - gs://bucket/object
//   - objectPath (treated as object path within Bucket)
type ProductImageURLResolver struct {
	Bucket string
}

func NewProductImageURLResolver(bucket string) *ProductImageURLResolver {
	return &ProductImageURLResolver{Bucket: strings.TrimSpace(bucket)}
}

func (r *ProductImageURLResolver) ResolveForResponse(stored string) string {
	p := strings.TrimSpace(stored)
	if p == "" {
		return ""
	}

	if b, obj, ok := gcscommon.ParseGCSURL(p); ok {
		return gcscommon.GCSPublicURL(b, obj, r.Bucket)
	}

	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}

	// bare object path needs a bucket; without one we leave the value alone
	if strings.TrimSpace(r.Bucket) == "" {
		return p
	}
	return gcscommon.GCSPublicURL(r.Bucket, strings.TrimLeft(p, "/"), r.Bucket)
}
