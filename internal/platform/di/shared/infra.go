// internal/platform/di/shared/infra.go
package shared

import (
	"context"
	"errors"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"google.golang.org/api/option"

	gcsadapter "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/gcs"
	appcfg "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/config"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/database"
	firestoreinfra "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/firestore"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/secrets"
)

// Infra is shared runtime infrastructure for DI.
// - owns external clients (Firestore / Postgres pool / SecretManager)
// - owns the optional product image signer
//
// Only the clients the selected STORE_BACKEND needs are opened.
type Infra struct {
	Config *appcfg.Config
	Log    *logger.Logger

	// Clients (owned; Close-managed)
	Firestore     *firestoreinfra.ClientWrapper
	DB            *database.DB
	SecretManager *secretmanager.Client

	Secrets *secrets.Resolver

	// Optional: nil when PRODUCT_IMAGE_BUCKET is empty or signing is unavailable.
	ImageSigner   *gcsadapter.ProductImageRepositoryGCS
	ImageResolver *gcsadapter.ProductImageURLResolver
}

// NewInfra initializes shared infra.
// The store client of the selected backend is strict (return error).
// SecretManager and the image signer are best-effort (warn + continue).
func NewInfra(ctx context.Context, cfg *appcfg.Config, log *logger.Logger) (*Infra, error) {
	if cfg == nil {
		return nil, errors.New("shared.infra: config is nil")
	}
	if err := ValidateRuntimeSettings(cfg); err != nil {
		return nil, err
	}
	log = logger.OrNop(log).Named("shared.infra")

	inf := &Infra{Config: cfg, Log: log}

	credFile := cfg.CredentialsFile()
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Info("[shared.infra] using credentials file for GCP clients", "file", redactPath(credFile))
	}

	// 1) Optional: Secret Manager client (sm:// config values)
	if needsSecretManager(cfg) {
		sm, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Warn("[shared.infra] secretmanager.NewClient failed; sm:// values cannot be resolved", "error", err)
		} else {
			inf.SecretManager = sm
		}
	}
	inf.Secrets = secrets.NewResolver(inf.SecretManager, cfg.FirestoreProjectID)

	// 2) Store backend (strict)
	switch cfg.StoreBackend {
	case appcfg.BackendFirestore:
		if strings.TrimSpace(cfg.FirestoreProjectID) == "" {
			_ = inf.Close()
			return nil, errors.New("shared.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
		}
		fsClient, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, credFile)
		if err != nil {
			_ = inf.Close()
			return nil, fmt.Errorf("shared.infra: firestore (project=%s): %w", cfg.FirestoreProjectID, err)
		}
		inf.Firestore = fsClient
		log.Info("[shared.infra] firestore connected", "project", cfg.FirestoreProjectID)

	case appcfg.BackendPostgres:
		dsn, err := inf.Secrets.Resolve(ctx, cfg.DatabaseURL)
		if err != nil {
			_ = inf.Close()
			return nil, fmt.Errorf("shared.infra: resolve DATABASE_URL: %w", err)
		}
		if strings.TrimSpace(dsn) == "" {
			_ = inf.Close()
			return nil, errors.New("shared.infra: DATABASE_URL is empty")
		}
		db, err := database.NewConnection(ctx, dsn)
		if err != nil {
			_ = inf.Close()
			return nil, fmt.Errorf("shared.infra: postgres: %w", err)
		}
		inf.DB = db
		log.Info("[shared.infra] postgres connected")

	case appcfg.BackendMemory:
		log.Warn("[shared.infra] memory backend selected; data is lost on restart")
	}

	// 3) Product images (best-effort)
	if bucket := strings.TrimSpace(cfg.ProductImageBucket); bucket != "" {
		inf.ImageResolver = gcsadapter.NewProductImageURLResolver(bucket)

		signer, err := gcsadapter.NewProductImageRepositoryGCS(ctx, bucket, cfg.GCSSignerEmail)
		if err != nil {
			log.Warn("[shared.infra] product image signer disabled", "error", err)
		} else {
			inf.ImageSigner = signer
			log.Info("[shared.infra] product image signer initialized", "bucket", bucket)
		}
	}

	return inf, nil
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	var errs []error
	if i.Firestore != nil {
		errs = append(errs, i.Firestore.Close())
	}
	if i.DB != nil {
		errs = append(errs, i.DB.Close())
	}
	if i.SecretManager != nil {
		errs = append(errs, i.SecretManager.Close())
	}
	return errors.Join(errs...)
}

func needsSecretManager(cfg *appcfg.Config) bool {
	return secrets.IsReference(cfg.DatabaseURL) && cfg.StoreBackend == appcfg.BackendPostgres
}

func redactPath(p string) string {
	// Do not log full path (Windows/Unix compatible light masking)
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, "\\", "/")
	parts := strings.Split(p, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return "***"
	}
	return "***/" + last
}
