package httpin

import (
	"net/http"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/in/http/handlers"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/in/http/middleware"
	usecase "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/application/usecase"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
)

// RouterDeps collects all usecases (and other dependencies) injected from main.go.
type RouterDeps struct {
	ProductUC  *usecase.ProductUsecase
	CartUC     *usecase.CartUsecase
	OrderUC    *usecase.OrderUsecase
	CheckoutUC *usecase.CheckoutUsecase

	// Health probes, keyed by name ("firestore", "postgres").
	Pingers map[string]handlers.Pinger

	Metrics         *middleware.ServerMetrics
	CORSAllowOrigin string
	Logger          *logger.Logger
}

// NewRouter sets up HTTP routing for all domain endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	log := logger.OrNop(deps.Logger)
	mux := http.NewServeMux()

	// Health check (always on)
	mux.Handle("/healthz", handlers.NewHealthHandler(deps.Pingers))

	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics.Handler())
	}

	// 以降、Usecase が存在するものだけマウントする
	if deps.ProductUC != nil {
		mount(mux, "/products", handlers.NewProductHandler(deps.ProductUC, log))
	}
	if deps.CartUC != nil {
		mount(mux, "/carts", handlers.NewCartHandler(deps.CartUC, log))
	}
	if deps.OrderUC != nil {
		mount(mux, "/orders", handlers.NewOrderHandler(deps.OrderUC, log))
	}
	if deps.CheckoutUC != nil {
		mount(mux, "/checkout", handlers.NewCheckoutHandler(deps.CheckoutUC, log))
	}

	mws := []func(http.Handler) http.Handler{
		middleware.CORS(deps.CORSAllowOrigin),
		middleware.Recover(log),
		middleware.AccessLog(log),
	}
	if deps.Metrics != nil {
		mws = append(mws, deps.Metrics.Middleware)
	}
	return middleware.Chain(mux, mws...)
}

// mount registers h for both "/x" and "/x/...".
func mount(mux *http.ServeMux, prefix string, h http.Handler) {
	mux.Handle(prefix, h)
	mux.Handle(prefix+"/", h)
}
