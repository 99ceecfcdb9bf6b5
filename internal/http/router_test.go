package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"treasury/internal/platform/metrics"
	"treasury/internal/platform/middleware"
	"treasury/pkg/domain"
	"treasury/pkg/requestcontext"
	"treasury/pkg/testutil"
)

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (*middleware.JWTClaims, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return &middleware.JWTClaims{Caller: domain.MustAddress("0x2000000000000000000000000000000000000002")}, nil
}

type whoami struct{}

func (whoami) Register(r chi.Router) {
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(requestcontext.Caller(r.Context())))
	})
}

func newTestRouter(checks map[string]HealthCheck) http.Handler {
	reg := prometheus.NewRegistry()
	return NewRouter(Deps{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:       metrics.New(reg),
		Gatherer:      reg,
		JWT:           stubValidator{},
		Authenticated: []Registrar{whoami{}},
		Checks:        checks,
	})
}

func TestRouter_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		rr := testutil.DoRequest(newTestRouter(nil), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("failing check", func(t *testing.T) {
		h := newTestRouter(map[string]HealthCheck{
			"redis": func(context.Context) error { return errors.New("connection refused") },
		})
		rr := testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), "degraded")
	})
}

func TestRouter_Metrics(t *testing.T) {
	h := newTestRouter(nil)
	testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/health", nil))

	rr := testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `treasury_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestRouter_AuthenticatedRoutes(t *testing.T) {
	h := newTestRouter(nil)

	rr := testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr = testutil.DoRequest(h, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "0x2000000000000000000000000000000000000002", rr.Body.String())
}
