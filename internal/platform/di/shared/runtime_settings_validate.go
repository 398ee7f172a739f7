// internal/platform/di/shared/runtime_settings_validate.go
package shared

import (
	"fmt"
	"strings"

	appcfg "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/config"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/secrets"
)

// ValidateRuntimeSettings performs hard validation of the settings the selected
// backend depends on, before any client is opened.
//
// Optional features (product images) stay disabled when their settings are
// empty; only structurally invalid values fail.
func ValidateRuntimeSettings(cfg *appcfg.Config) error {
	if cfg == nil {
		return fmt.Errorf("shared.runtime_settings: config is nil")
	}

	switch cfg.StoreBackend {
	case appcfg.BackendFirestore:
		// Collections must never be empty once resolved (defaults exist).
		for name, v := range map[string]string{
			"PRODUCTS_COLLECTION": cfg.ProductsCollection,
			"CARTS_COLLECTION":    cfg.CartsCollection,
			"ORDERS_COLLECTION":   cfg.OrdersCollection,
			"HISTORY_COLLECTION":  cfg.HistoryCollection,
		} {
			v = strings.TrimSpace(v)
			if v == "" {
				return fmt.Errorf("shared.runtime_settings: %s is empty", name)
			}
			if strings.Contains(v, "/") {
				return fmt.Errorf("shared.runtime_settings: %s must be a top-level collection (got %q)", name, v)
			}
		}

	case appcfg.BackendPostgres:
		dsn := strings.TrimSpace(cfg.DatabaseURL)
		if dsn == "" {
			return fmt.Errorf("shared.runtime_settings: DATABASE_URL is required for the postgres backend")
		}
		if !secrets.IsReference(dsn) &&
			!strings.HasPrefix(dsn, "postgres://") &&
			!strings.HasPrefix(dsn, "postgresql://") &&
			!strings.Contains(dsn, "=") {
			return fmt.Errorf("shared.runtime_settings: DATABASE_URL is neither a postgres URL, a key=value DSN nor a secret reference")
		}
	}

	// GCS bucket names cannot contain spaces.
	if strings.ContainsAny(cfg.ProductImageBucket, " \t\r\n") {
		return fmt.Errorf("shared.runtime_settings: PRODUCT_IMAGE_BUCKET contains whitespace (got %q)", cfg.ProductImageBucket)
	}
	if strings.ContainsAny(strings.TrimSpace(cfg.ProductImageBucket), "/") {
		return fmt.Errorf("shared.runtime_settings: PRODUCT_IMAGE_BUCKET must be a bucket name, not a path (got %q)", cfg.ProductImageBucket)
	}

	return nil
}
