package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearGenerationEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvGeminiAPIKey, EnvGoogleAPIKey, EnvGeminiCredentials, "GEMINI_MODEL", "STORAGE_BACKEND", "GENERATION_FALLBACK_MAX_DAYS"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearGenerationEnv(t)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, "gemini-2.0-flash", cfg.Generation.Model)
	assert.Equal(t, 7, cfg.Generation.FallbackMaxDays)
	assert.Zero(t, cfg.RateLimit.RequestsPerSecond)
	assert.False(t, cfg.Generation.Configured())
	assert.Equal(t, map[string]bool{
		EnvGeminiAPIKey:      false,
		EnvGoogleAPIKey:      false,
		EnvGeminiCredentials: false,
	}, cfg.Generation.EnvPresence())
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_GenerationCredential(t *testing.T) {
	clearGenerationEnv(t)
	t.Setenv(EnvGoogleAPIKey, "alias-key")

	cfg := FromEnv()
	assert.True(t, cfg.Generation.Configured())
	assert.Equal(t, "alias-key", cfg.Generation.APIKey)
	assert.True(t, cfg.Generation.EnvPresence()[EnvGoogleAPIKey])
	assert.False(t, cfg.Generation.EnvPresence()[EnvGeminiAPIKey])

	t.Setenv(EnvGeminiAPIKey, "primary-key")
	cfg = FromEnv()
	assert.Equal(t, "primary-key", cfg.Generation.APIKey)
}

func TestFromEnv_CredentialsFileCounts(t *testing.T) {
	clearGenerationEnv(t)
	t.Setenv(EnvGeminiCredentials, "/etc/traveldiary/sa.json")

	cfg := FromEnv()
	assert.True(t, cfg.Generation.Configured())
	assert.Empty(t, cfg.Generation.APIKey)
}

func TestFromEnv_Parsing(t *testing.T) {
	clearGenerationEnv(t)
	t.Setenv("STORAGE_BACKEND", "Mongo")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, StorageMongo, cfg.Storage.Backend)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.InDelta(t, 2.5, cfg.RateLimit.RequestsPerSecond, 1e-9)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int32(5), cfg.Database.MaxConns)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		clearGenerationEnv(t)
		return FromEnv()
	}

	cfg := base()
	cfg.Storage.Backend = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Storage.Backend = StoragePostgres
	cfg.Database.Password = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.Password = "secret"
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Generation.FallbackMaxDays = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.RateLimit.RequestsPerSecond = -1
	assert.Error(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		User: "u", Password: "p", Host: "db", Port: "5432", Name: "plans", SSLMode: "require", ConnTimeout: 10 * time.Second,
	}}
	assert.Equal(t, "postgres://u:p@db:5432/plans?sslmode=require&connect_timeout=10", cfg.GetDSN())
}
