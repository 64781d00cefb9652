package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/shiftboard/internal/adapters/memory"
	"github.com/zatekoja/shiftboard/internal/api/handlers"
	"github.com/zatekoja/shiftboard/internal/api/middleware"
	"github.com/zatekoja/shiftboard/internal/api/routes"
	"github.com/zatekoja/shiftboard/internal/application/services"
)

func newTestHandler(t *testing.T, allowedOrigins []string) http.Handler {
	t.Helper()
	store, err := memory.NewShiftLookupAdapterFromFile("../../../fixtures/scenario.yaml")
	require.NoError(t, err)
	service := services.NewEligibilityService(store, nil)
	return routes.NewRouter(handlers.NewEligibilityHandler(service), allowedOrigins, nil).SetupRoutes()
}

func TestRouter_Health(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_EligibleShifts(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workers/4/eligible-shifts?facility_id=5&start=2023-01-01+00:00&end=2023-01-31+23:59", nil)
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":4`)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_RejectsOtherMethods(t *testing.T) {
	handler := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/workers/4/eligible-shifts", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_PropagatesRequestID(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_CORS(t *testing.T) {
	t.Run("wildcard by default", func(t *testing.T) {
		handler := newTestHandler(t, nil)

		req := httptest.NewRequest(http.MethodOptions, "/api/workers/4/eligible-shifts", nil)
		req.Header.Set("Origin", "https://scheduler.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("explicit allow list", func(t *testing.T) {
		handler := newTestHandler(t, []string{"https://scheduler.example"})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://scheduler.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "https://scheduler.example", rec.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_CompressesWhenAccepted(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/workers/4/eligible-shifts?facility_id=5&start=2023-01-01&end=2023-02-01", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
