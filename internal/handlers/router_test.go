package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevatescripts/backend/internal/config"
	"github.com/elevatescripts/backend/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	mem := store.NewMemory()
	store.Seed(context.Background(), mem)
	return NewRouter(NewAPI(mem, &config.Config{Port: "8000"}))
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/test", "", http.StatusOK},
		{http.MethodGet, "/api/products", "", http.StatusOK},
		{http.MethodGet, "/api/status", "", http.StatusOK},
		{http.MethodPost, "/api/status/toggle", `{"game":"cs2","state":"detected"}`, http.StatusOK},
		{http.MethodPost, "/api/cart/calc", `{"items":[{"slug":"elevate-v1","qty":1}]}`, http.StatusOK},
		{http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tc.want, rr.Code)
		})
	}
}

func TestRouterSetsCORSAndSecurityHeaders(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestCheckoutIsRateLimited(t *testing.T) {
	router := newTestRouter(t)
	body := `{"email":"buyer@example.com","items":[{"slug":"elevate-v1","qty":1}]}`

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, first.Code)

	// Same client IP immediately after gets throttled.
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body)))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
