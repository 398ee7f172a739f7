// internal/infra/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store backends selectable with STORE_BACKEND.
const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
	BackendMemory    = "memory"
)

// Config holds every environment setting of the API process.
type Config struct {
	Port   string
	AppEnv string

	StoreBackend string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	GCPCreds                 string

	// Firestore collection names (one per table of the key-value model)
	ProductsCollection string
	CartsCollection    string
	OrdersCollection   string
	HistoryCollection  string

	// Postgres DSN (postgres backend). May be an sm:// reference.
	DatabaseURL string

	// Optional GCS bucket for product images; empty disables the upload URL endpoint.
	ProductImageBucket string
	// Service account used to sign upload URLs.
	GCSSignerEmail string

	OrderStatusPolicy string
	CartMaxRetries    int
	CORSAllowOrigin   string
}

// Load reads the environment and returns Config.
func Load() (*Config, error) {
	defaultProject := getenvDefault("GCP_PROJECT_ID", os.Getenv("GOOGLE_CLOUD_PROJECT"))

	cfg := &Config{
		Port:   getenvDefault("PORT", "8080"),
		AppEnv: getenvDefault("APP_ENV", "development"),

		StoreBackend: strings.ToLower(getenvDefault("STORE_BACKEND", BackendFirestore)),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		ProductsCollection: getenvDefault("PRODUCTS_COLLECTION", "products"),
		CartsCollection:    getenvDefault("CARTS_COLLECTION", "carts"),
		OrdersCollection:   getenvDefault("ORDERS_COLLECTION", "orders"),
		HistoryCollection:  getenvDefault("HISTORY_COLLECTION", "checkoutHistory"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		ProductImageBucket: os.Getenv("PRODUCT_IMAGE_BUCKET"),
		GCSSignerEmail:     getenvDefault("GCS_SIGNER_EMAIL", os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL")),

		OrderStatusPolicy: getenvDefault("ORDER_STATUS_POLICY", "permissive"),
		CORSAllowOrigin:   getenvDefault("CORS_ALLOW_ORIGIN", "*"),
	}

	retries, err := getenvInt("CART_MAX_RETRIES", 5)
	if err != nil {
		return nil, err
	}
	cfg.CartMaxRetries = retries

	switch cfg.StoreBackend {
	case BackendFirestore, BackendPostgres, BackendMemory:
	default:
		return nil, fmt.Errorf("config: unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	return cfg, nil
}

// CredentialsFile prefers FIRESTORE_CREDENTIALS_FILE over GOOGLE_APPLICATION_CREDENTIALS.
func (c *Config) CredentialsFile() string {
	if f := strings.TrimSpace(c.FirestoreCredentialsFile); f != "" {
		return f
	}
	return strings.TrimSpace(c.GCPCreds)
}

// IsProduction drives the logger mode.
func (c *Config) IsProduction() bool {
	switch strings.ToLower(strings.TrimSpace(c.AppEnv)) {
	case "prod", "production":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
