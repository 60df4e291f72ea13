package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("All checkers healthy", func(t *testing.T) {
		service := NewService()
		service.AddChecker("postgres", func() error { return nil })
		service.AddChecker("redis", func() error { return nil })

		healthy, results := service.Check()

		assert.True(t, healthy)
		assert.Equal(t, "ok", results["postgres"])
		assert.Equal(t, "ok", results["redis"])
	})

	t.Run("One checker failing marks service unhealthy", func(t *testing.T) {
		service := NewService()
		service.AddChecker("postgres", func() error { return nil })
		service.AddChecker("nats", func() error { return errors.New("nats connection is down") })

		healthy, results := service.Check()

		assert.False(t, healthy)
		assert.Equal(t, "ok", results["postgres"])
		assert.Equal(t, "nats connection is down", results["nats"])
	})

	t.Run("No checkers registered", func(t *testing.T) {
		service := NewService()

		healthy, results := service.Check()

		assert.True(t, healthy)
		assert.Empty(t, results)
	})
}

func TestRegisterHealthEndpoints(t *testing.T) {
	newServer := func(service *Service) *echo.Echo {
		e := echo.New()
		RegisterHealthEndpoints(e, "campuspool", "1.0.0", service)
		return e
	}

	t.Run("Ping returns build info", func(t *testing.T) {
		e := newServer(NewService())
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var info BuildInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "campuspool", info.ServiceName)
		assert.Equal(t, "1.0.0", info.Version)
		assert.NotEmpty(t, info.GoVersion)
		assert.False(t, info.ServerTime.IsZero())
	})

	t.Run("Liveness always OK", func(t *testing.T) {
		service := NewService()
		service.AddChecker("postgres", func() error { return errors.New("connection refused") })
		e := newServer(service)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("Readiness reports failing dependency", func(t *testing.T) {
		service := NewService()
		service.AddChecker("postgres", func() error { return errors.New("connection refused") })
		service.AddChecker("redis", func() error { return nil })
		e := newServer(service)

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var results map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
		assert.Equal(t, "connection refused", results["postgres"])
		assert.Equal(t, "ok", results["redis"])
	})

	t.Run("Readiness OK when all dependencies up", func(t *testing.T) {
		service := NewService()
		service.AddChecker("postgres", func() error { return nil })
		e := newServer(service)

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
