// internal/platform/di/container.go
package di

import (
	"context"
	"errors"
	"fmt"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/in/http/handlers"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/in/http/middleware"
	pgrepo "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/db"
	fsrepo "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/firestore"
	memrepo "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/memory"
	uc "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/application/usecase"
	archivedom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/archive"
	cartdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/cart"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
	productdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/product"
	appcfg "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/config"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/platform/di/shared"
)

// ========================================
// Container
// ========================================
type Container struct {
	Config *appcfg.Config
	Infra  *shared.Infra
	Log    *logger.Logger

	Repos Repositories

	// Application-layer usecases
	ProductUC  *uc.ProductUsecase
	CartUC     *uc.CartUsecase
	OrderUC    *uc.OrderUsecase
	CheckoutUC *uc.CheckoutUsecase

	Metrics *middleware.ServerMetrics
}

// Repositories is the set of store ports, all from one backend.
type Repositories struct {
	Products productdom.Repository
	Carts    cartdom.Repository
	Orders   orderdom.Repository
	History  archivedom.Repository
}

// NewContainer opens infra, picks the store backend and builds the usecases.
func NewContainer(ctx context.Context, cfg *appcfg.Config, log *logger.Logger) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("di: config is nil")
	}
	log = logger.OrNop(log)

	inf, err := shared.NewInfra(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	repos, err := buildRepositories(inf)
	if err != nil {
		_ = inf.Close()
		return nil, err
	}

	policy, err := orderdom.PolicyByName(cfg.OrderStatusPolicy)
	if err != nil {
		_ = inf.Close()
		return nil, fmt.Errorf("di: ORDER_STATUS_POLICY: %w", err)
	}

	productUC := uc.NewProductUsecase(repos.Products)
	if inf.ImageResolver != nil {
		var signer uc.ProductImageSigner
		if inf.ImageSigner != nil {
			signer = inf.ImageSigner
		}
		productUC = productUC.WithImages(signer, inf.ImageResolver)
	}

	c := &Container{
		Config:     cfg,
		Infra:      inf,
		Log:        log,
		Repos:      repos,
		ProductUC:  productUC,
		CartUC:     uc.NewCartUsecase(repos.Carts, cfg.CartMaxRetries, log.Named("cart")),
		OrderUC:    uc.NewOrderUsecase(repos.Orders, policy),
		CheckoutUC: uc.NewCheckoutUsecase(repos.History).WithOrders(repos.Orders),
		Metrics:    middleware.NewServerMetrics("api"),
	}

	log.Info("[di] container ready",
		"backend", cfg.StoreBackend,
		"orderStatusPolicy", string(policy.Kind()),
		"cartMaxRetries", cfg.CartMaxRetries,
		"productImages", inf.ImageSigner != nil,
	)
	return c, nil
}

func buildRepositories(inf *shared.Infra) (Repositories, error) {
	cfg := inf.Config
	switch cfg.StoreBackend {
	case appcfg.BackendFirestore:
		client := inf.Firestore.Client
		return Repositories{
			Products: fsrepo.NewProductRepositoryFS(client, cfg.ProductsCollection),
			Carts:    fsrepo.NewCartRepositoryFS(client, cfg.CartsCollection),
			Orders:   fsrepo.NewOrderRepositoryFS(client, cfg.OrdersCollection),
			History:  fsrepo.NewCheckoutHistoryRepositoryFS(client, cfg.HistoryCollection),
		}, nil

	case appcfg.BackendPostgres:
		db := inf.DB.Client
		return Repositories{
			Products: pgrepo.NewProductRepositoryPG(db),
			Carts:    pgrepo.NewCartRepositoryPG(db),
			Orders:   pgrepo.NewOrderRepositoryPG(db),
			History:  pgrepo.NewCheckoutHistoryRepositoryPG(db),
		}, nil

	case appcfg.BackendMemory:
		return Repositories{
			Products: memrepo.NewProductRepositoryMem(),
			Carts:    memrepo.NewCartRepositoryMem(),
			Orders:   memrepo.NewOrderRepositoryMem(),
			History:  memrepo.NewCheckoutHistoryRepositoryMem(),
		}, nil
	}
	return Repositories{}, fmt.Errorf("di: unknown store backend %q", cfg.StoreBackend)
}

// pingers returns the health probes of the opened store clients.
func (c *Container) pingers() map[string]handlers.Pinger {
	out := map[string]handlers.Pinger{}
	if c.Infra == nil {
		return out
	}
	if c.Infra.Firestore != nil {
		out["firestore"] = c.Infra.Firestore
	}
	if c.Infra.DB != nil {
		out["postgres"] = c.Infra.DB
	}
	return out
}

// Close releases every client the container opened.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return c.Infra.Close()
}
