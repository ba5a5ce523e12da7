package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for the plan archive
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// Environment variables that can carry a generation credential
const (
	EnvGeminiAPIKey      = "GEMINI_API_KEY"
	EnvGoogleAPIKey      = "GOOGLE_API_KEY"
	EnvGeminiCredentials = "GEMINI_CREDENTIALS_FILE"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Plan archive backend selection
	Storage StorageConfig

	// Database configuration (postgres backend)
	Database DatabaseConfig

	// MongoDB configuration (mongo backend)
	Mongo MongoConfig

	// JWT configuration
	JWT JWTConfig

	// Text generation configuration
	Generation GenerationConfig

	// CORS configuration
	CORS CORSConfig

	// Per-client rate limiting
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// StorageConfig selects the plan archive backend
type StorageConfig struct {
	Backend string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int32
	MinConns     int32
	MaxLifetime  time.Duration
	ConnTimeout  time.Duration
	QueryTimeout time.Duration
}

// MongoConfig holds MongoDB connection settings
type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret         string
	Issuer         string
	AccessTokenTTL time.Duration
}

// GenerationConfig holds text generation backend configuration
type GenerationConfig struct {
	APIKey          string
	CredentialsFile string
	Model           string
	Endpoint        string
	// FallbackMaxDays caps the days elaborated by the fallback planner
	FallbackMaxDays int

	envPresence map[string]bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// RateLimitConfig holds per-client rate limit settings. A zero RPS disables
// the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	VisitorTTL        time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	config := FromEnv()

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FromEnv builds a Config from the current process environment without
// reading any .env file.
func FromEnv() *Config {
	apiKey := getEnv(EnvGeminiAPIKey, "")
	if apiKey == "" {
		apiKey = getEnv(EnvGoogleAPIKey, "")
	}

	return &Config{
		Server: ServerConfig{
			Port:              getEnv("SERVER_PORT", "8080"),
			ReadTimeout:       getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			ReadHeaderTimeout: getDurationEnv("SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			// Generation calls are awaited inside the request, keep this generous
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Backend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageMemory)),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "postgres"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxConns:     getInt32Env("DB_MAX_CONNS", 5),
			MinConns:     getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", time.Hour),
			ConnTimeout:  getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 30*time.Second),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "traveldiary"),
			Collection:     getEnv("MONGO_COLLECTION", "trip_plans"),
			ConnectTimeout: getDurationEnv("MONGO_CONNECT_TIMEOUT", 10*time.Second),
			QueryTimeout:   getDurationEnv("MONGO_QUERY_TIMEOUT", 5*time.Second),
		},
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			Issuer:         getEnv("JWT_ISSUER", "traveldiary"),
			AccessTokenTTL: getDurationEnv("JWT_ACCESS_TTL", 7*24*time.Hour), // 7 days
		},
		Generation: GenerationConfig{
			APIKey:          apiKey,
			CredentialsFile: getEnv(EnvGeminiCredentials, ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Endpoint:        getEnv("GEMINI_ENDPOINT", ""),
			FallbackMaxDays: getIntEnv("GENERATION_FALLBACK_MAX_DAYS", 7),
			envPresence: map[string]bool{
				EnvGeminiAPIKey:      os.Getenv(EnvGeminiAPIKey) != "",
				EnvGoogleAPIKey:      os.Getenv(EnvGoogleAPIKey) != "",
				EnvGeminiCredentials: os.Getenv(EnvGeminiCredentials) != "",
			},
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getFloatEnv("RATE_LIMIT_RPS", 0),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 5),
			VisitorTTL:        getDurationEnv("RATE_LIMIT_VISITOR_TTL", 10*time.Minute),
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory:
		log.Println("Warning: STORAGE_BACKEND=memory, saved trip plans are lost on restart.")
	case StoragePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when STORAGE_BACKEND=postgres")
		}
	case StorageMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required when STORAGE_BACKEND=mongo")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want memory, postgres or mongo)", c.Storage.Backend)
	}

	if c.Generation.FallbackMaxDays < 1 {
		return fmt.Errorf("GENERATION_FALLBACK_MAX_DAYS must be at least 1")
	}

	// Check generation credentials
	if !c.Generation.Configured() {
		log.Printf("Warning: %s is not set. AI trip plans will use the template fallback.", EnvGeminiAPIKey)
	} else {
		log.Printf("Generation configuration loaded: model=%s", c.Generation.Model)
	}

	if c.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS cannot be negative")
	}

	return nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// Configured reports whether any generation credential is available
func (g GenerationConfig) Configured() bool {
	return g.APIKey != "" || g.CredentialsFile != ""
}

// EnvPresence reports which credential environment variables were set when
// the configuration was built
func (g GenerationConfig) EnvPresence() map[string]bool {
	out := map[string]bool{
		EnvGeminiAPIKey:      false,
		EnvGoogleAPIKey:      false,
		EnvGeminiCredentials: false,
	}
	for k, v := range g.envPresence {
		out[k] = v
	}
	return out
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
