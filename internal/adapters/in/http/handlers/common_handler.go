package handlers

import (
	"context"
	"net/http"
	"time"
)

// 共通: 405
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, "method "+r.Method+" not allowed")
}

// 共通: 404
func notFound(w http.ResponseWriter) {
	writeMessage(w, http.StatusNotFound, "not found")
}

// Pinger is anything the health check can probe (store client, DB pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers /healthz. With no pingers it only reports liveness.
type HealthHandler struct {
	pingers map[string]Pinger
	timeout time.Duration
}

func NewHealthHandler(pingers map[string]Pinger) http.Handler {
	return &HealthHandler{pingers: pingers, timeout: 2 * time.Second}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	for name, p := range h.pingers {
		if p == nil {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			writeMessage(w, http.StatusServiceUnavailable, name+" unavailable")
			return
		}
	}
	writeMessage(w, http.StatusOK, "ok")
}
