package httpin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/in/http/middleware"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/memory"
	usecase "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/application/usecase"
)

func newTestRouter() http.Handler {
	return NewRouter(RouterDeps{
		ProductUC:       usecase.NewProductUsecase(memory.NewProductRepositoryMem()),
		CartUC:          usecase.NewCartUsecase(memory.NewCartRepositoryMem(), usecase.DefaultCartMaxAttempts, nil),
		OrderUC:         usecase.NewOrderUsecase(memory.NewOrderRepositoryMem(), nil),
		CheckoutUC:      usecase.NewCheckoutUsecase(memory.NewCheckoutHistoryRepositoryMem()),
		Metrics:         middleware.NewServerMetrics("test"),
		CORSAllowOrigin: "*",
	})
}

func TestRouter_MountsEveryResource(t *testing.T) {
	h := newTestRouter()

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/products", "", http.StatusOK},
		{http.MethodGet, "/products/", "", http.StatusOK},
		{http.MethodGet, "/carts/u1", "", http.StatusOK},
		{http.MethodGet, "/orders", "", http.StatusOK},
		{http.MethodPost, "/checkout", `{}`, http.StatusBadRequest},
		{http.MethodGet, "/nothing-here", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRouter_MetricsExposeRequests(t *testing.T) {
	h := newTestRouter()

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shop_test_http_requests_total")
}
