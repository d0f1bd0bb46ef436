package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHealth bool

func (h staticHealth) Healthy(context.Context) bool {
	return bool(h)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("USE_HTTP2", "")
		t.Setenv("CORS_ORIGINS", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, &Config{Port: "8080", CorsOrigins: []string{"*"}}, cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("USE_HTTP2", "true")
		t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, &Config{Port: "9090", UseHttp2: true, CorsOrigins: []string{"http://a.test", "http://b.test"}}, cfg)
	})

	for _, port := range []string{"http", "0", "70000"} {
		t.Run("invalid port "+port, func(t *testing.T) {
			t.Setenv("PORT", port)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestServer_HealthChecks(t *testing.T) {
	tests := []struct {
		name    string
		healthy bool
		status  int
	}{
		{name: "healthy", healthy: true, status: http.StatusOK},
		{name: "unhealthy", healthy: false, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: "8080", CorsOrigins: []string{"*"}}, staticHealth(tt.healthy)).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks("/health")
			t.Cleanup(s.stop)

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	s := New(&Config{Port: "8080", CorsOrigins: []string{"*"}}, staticHealth(true)).SetupErrorHandler()
	t.Cleanup(s.stop)

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
