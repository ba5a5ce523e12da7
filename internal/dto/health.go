package dto

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}

// Generation credential statuses
const (
	GenerationConfigured    = "configured"
	GenerationMissingAPIKey = "missing_api_key"
)

// GenerationHealthResponse reports whether a generation credential is set.
// EnvVars only says which variables are present, never their values.
type GenerationHealthResponse struct {
	Status  string          `json:"status" example:"configured"`
	Message string          `json:"message"`
	EnvVars map[string]bool `json:"envVars"`
}
