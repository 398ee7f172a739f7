package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcfg "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/config"
)

func memoryConfig() *appcfg.Config {
	return &appcfg.Config{
		Port:              "8080",
		AppEnv:            "development",
		StoreBackend:      appcfg.BackendMemory,
		OrderStatusPolicy: "strict",
		CartMaxRetries:    5,
		CORSAllowOrigin:   "*",
	}
}

func TestNewContainer_MemoryBackend(t *testing.T) {
	c, err := NewContainer(context.Background(), memoryConfig(), nil)
	require.NoError(t, err)
	defer c.Close()

	mux := http.NewServeMux()
	Register(mux, c)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders",
		strings.NewReader(`{"userId":"u1","items":[{"productId":"p1","price":"10","quantity":"2"}]}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPrice":20`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewContainer_RejectsUnknownPolicy(t *testing.T) {
	cfg := memoryConfig()
	cfg.OrderStatusPolicy = "whatever"

	_, err := NewContainer(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestRegister_NilContainer(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
