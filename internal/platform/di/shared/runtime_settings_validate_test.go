package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"

	appcfg "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/config"
)

func TestValidateRuntimeSettings(t *testing.T) {
	firestoreCfg := func() *appcfg.Config {
		return &appcfg.Config{
			StoreBackend:       appcfg.BackendFirestore,
			ProductsCollection: "products",
			CartsCollection:    "carts",
			OrdersCollection:   "orders",
			HistoryCollection:  "checkoutHistory",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *appcfg.Config)
		wantErr bool
	}{
		{"firestore defaults", func(c *appcfg.Config) {}, false},
		{"empty collection", func(c *appcfg.Config) { c.CartsCollection = " " }, true},
		{"nested collection", func(c *appcfg.Config) { c.OrdersCollection = "shop/orders" }, true},
		{"postgres url", func(c *appcfg.Config) {
			c.StoreBackend = appcfg.BackendPostgres
			c.DatabaseURL = "postgres://u:p@localhost:5432/shop?sslmode=disable"
		}, false},
		{"postgres secret ref", func(c *appcfg.Config) {
			c.StoreBackend = appcfg.BackendPostgres
			c.DatabaseURL = "sm://database-url"
		}, false},
		{"postgres missing dsn", func(c *appcfg.Config) { c.StoreBackend = appcfg.BackendPostgres }, true},
		{"postgres garbage dsn", func(c *appcfg.Config) {
			c.StoreBackend = appcfg.BackendPostgres
			c.DatabaseURL = "localhost"
		}, true},
		{"bucket with path", func(c *appcfg.Config) { c.ProductImageBucket = "bucket/products" }, true},
		{"memory ignores collections", func(c *appcfg.Config) {
			c.StoreBackend = appcfg.BackendMemory
			c.ProductsCollection = ""
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := firestoreCfg()
			tt.mutate(c)
			err := ValidateRuntimeSettings(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
