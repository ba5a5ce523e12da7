package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TRAVELDIARY_BACK-END/internal/config"
	"TRAVELDIARY_BACK-END/internal/handlers"
	"TRAVELDIARY_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes on mux
func SetupRoutes(
	mux *http.ServeMux,
	plannerHandler *handlers.PlannerHandler,
	healthHandler *handlers.HealthHandler,
	tripsHandler *handlers.TripsHandler,
	jwtCfg *config.JWTConfig,
) {
	// Health check routes
	mux.HandleFunc("GET /healthz", healthHandler.HealthCheck)
	mux.HandleFunc("GET /livez", healthHandler.LivenessCheck)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessCheck)

	// AI planning routes
	mux.HandleFunc("POST /api/ai/trip-plan", plannerHandler.TripPlan)
	mux.HandleFunc("POST /api/ai/itinerary", plannerHandler.Itinerary)
	mux.HandleFunc("GET /api/ai/health", healthHandler.GenerationHealth)

	// Plan archive routes
	mux.HandleFunc("PUT /api/trips/{trip_id}/plan", middleware.AuthMiddleware(tripsHandler.SaveTripPlan, jwtCfg))
	mux.HandleFunc("GET /api/trips/{trip_id}/plan", middleware.AuthMiddleware(tripsHandler.GetTripPlan, jwtCfg))
	mux.HandleFunc("DELETE /api/trips/{trip_id}/plan", middleware.AuthMiddleware(tripsHandler.DeleteTripPlan, jwtCfg))

	// Swagger UI
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("TravelDiary backend is running."))
}
