package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGCSURL(t *testing.T) {
	cases := []struct {
		in     string
		bucket string
		object string
		ok     bool
	}{
		{"gs://shop-images/products/p1/a.png", "shop-images", "products/p1/a.png", true},
		{"https://storage.googleapis.com/shop-images/products/p1/a%20b.png", "shop-images", "products/p1/a b.png", true},
		{"https://storage.cloud.google.com/b/o", "b", "o", true},
		{"https://cdn.example.com/b/o", "", "", false},
		{"gs://bucket-only", "", "", false},
		{"products/p1/a.png", "", "", false},
	}
	for _, tc := range cases {
		b, o, ok := ParseGCSURL(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.bucket, b, tc.in)
		assert.Equal(t, tc.object, o, tc.in)
	}
}

func TestGCSPublicURL(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/b/products/x.png", GCSPublicURL("b", "/products/x.png", "d"))
	assert.Equal(t, "https://storage.googleapis.com/d/x.png", GCSPublicURL("", "x.png", "d"))
}
