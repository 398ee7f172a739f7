// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcfg "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/config"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/platform/di"
)

func main() {
	ctx := context.Background()

	cfg, err := appcfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[boot] config: %v\n", err)
		os.Exit(1)
	}

	mode := "development"
	if cfg.IsProduction() {
		mode = "production"
	}
	log, err := logger.New(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[boot] logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// ─────────────────────────────────────────────────────────────
	// Lightweight healthz first so the port answers even if DI fails
	// ─────────────────────────────────────────────────────────────
	mux := http.NewServeMux()

	// ─────────────────────────────────────────────────────────────
	// DI container & heavy deps; keep /healthz even on failure
	// ─────────────────────────────────────────────────────────────
	cont, err := di.NewContainer(ctx, cfg, log)
	if err != nil {
		log.Error("[boot] di init failed; serving /healthz only", "error", err)
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	} else {
		defer func() {
			if err := cont.Close(); err != nil {
				log.Warn("[boot] container close", "error", err)
			}
		}()
		di.Register(mux, cont)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// ─────────────────────────────────────────────────────────────
	// Graceful shutdown for Cloud Run
	// ─────────────────────────────────────────────────────────────
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		sig := <-c
		log.Info("[boot] received signal; shutting down", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("[boot] server shutdown error", "error", err)
		}
		close(idleConnsClosed)
	}()

	log.Info("[boot] listening", "port", cfg.Port, "backend", cfg.StoreBackend, "env", cfg.AppEnv)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("[boot] server error", "error", err)
	}

	<-idleConnsClosed
	log.Info("[boot] server stopped")
}
