package handlers

import (
	"context"
	"net/http"
	"time"

	"TRAVELDIARY_BACK-END/internal/config"
	"TRAVELDIARY_BACK-END/internal/dto"
	"TRAVELDIARY_BACK-END/internal/utils"
)

// Pinger is the part of the plan store the readiness check needs
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check related requests
type HealthHandler struct {
	store      Pinger
	generation config.GenerationConfig
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(store Pinger, gen config.GenerationConfig) *HealthHandler {
	return &HealthHandler{store: store, generation: gen}
}

// HealthCheck handles basic health check (no database)
// @Summary Process health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
// @Summary Process liveness
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /livez [get]
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check (includes plan store connectivity)
// @Summary Readiness including plan store connectivity
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: map[string]any{"store": err.Error()},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]any{"store": "ok"},
	})
}

// GenerationHealth handles GET /api/ai/health
// @Summary Generation credential status
// @Description Reports whether a generation credential is configured. Values are never returned.
// @Tags health
// @Produce json
// @Success 200 {object} dto.GenerationHealthResponse
// @Router /api/ai/health [get]
func (h *HealthHandler) GenerationHealth(w http.ResponseWriter, r *http.Request) {
	resp := dto.GenerationHealthResponse{
		Status:  dto.GenerationConfigured,
		Message: "Generation credential is configured (model " + h.generation.Model + ")",
		EnvVars: h.generation.EnvPresence(),
	}
	if !h.generation.Configured() {
		resp.Status = dto.GenerationMissingAPIKey
		resp.Message = "No generation credential found. Set " + config.EnvGeminiAPIKey + " to enable AI trip plans"
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}
