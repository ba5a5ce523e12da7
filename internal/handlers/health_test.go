package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELDIARY_BACK-END/internal/config"
	"TRAVELDIARY_BACK-END/internal/dto"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func get(h http.HandlerFunc, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGenerationHealth(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		h := NewHealthHandler(pingerFunc(func(context.Context) error { return nil }), config.GenerationConfig{Model: "m"})
		rec := get(h.GenerationHealth, "/api/ai/health")

		require.Equal(t, http.StatusOK, rec.Code)
		var out dto.GenerationHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, dto.GenerationMissingAPIKey, out.Status)
		assert.Contains(t, out.Message, config.EnvGeminiAPIKey)
		assert.Equal(t, map[string]bool{
			config.EnvGeminiAPIKey:      false,
			config.EnvGoogleAPIKey:      false,
			config.EnvGeminiCredentials: false,
		}, out.EnvVars)
	})

	t.Run("configured", func(t *testing.T) {
		t.Setenv(config.EnvGeminiAPIKey, "super-secret-value")
		t.Setenv(config.EnvGoogleAPIKey, "")
		t.Setenv(config.EnvGeminiCredentials, "")
		gen := config.FromEnv().Generation

		h := NewHealthHandler(pingerFunc(func(context.Context) error { return nil }), gen)
		rec := get(h.GenerationHealth, "/api/ai/health")

		require.Equal(t, http.StatusOK, rec.Code)
		var out dto.GenerationHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, dto.GenerationConfigured, out.Status)
		assert.True(t, out.EnvVars[config.EnvGeminiAPIKey])
		assert.NotContains(t, rec.Body.String(), "super-secret-value")
	})
}

func TestHealthEndpoints(t *testing.T) {
	healthy := NewHealthHandler(pingerFunc(func(context.Context) error { return nil }), config.GenerationConfig{})
	broken := NewHealthHandler(pingerFunc(func(context.Context) error { return errors.New("connection refused") }), config.GenerationConfig{})

	assert.Equal(t, http.StatusOK, get(healthy.HealthCheck, "/healthz").Code)
	assert.Equal(t, http.StatusOK, get(broken.LivenessCheck, "/livez").Code)
	assert.Equal(t, http.StatusOK, get(healthy.ReadinessCheck, "/readyz").Code)

	rec := get(broken.ReadinessCheck, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
