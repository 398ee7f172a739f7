// internal/platform/di/register.go
package di

import (
	"net/http"

	httpin "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/in/http"
)

// RouterDeps adapts the container to the router's dependency set.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		ProductUC:       c.ProductUC,
		CartUC:          c.CartUC,
		OrderUC:         c.OrderUC,
		CheckoutUC:      c.CheckoutUC,
		Pingers:         c.pingers(),
		Metrics:         c.Metrics,
		CORSAllowOrigin: c.Config.CORSAllowOrigin,
		Logger:          c.Log,
	}
}

// Register mounts the application router under "/" on mux.
// A nil container leaves mux untouched so the caller's /healthz keeps answering.
func Register(mux *http.ServeMux, c *Container) {
	if mux == nil || c == nil {
		return
	}
	mux.Handle("/", httpin.NewRouter(c.RouterDeps()))
}
