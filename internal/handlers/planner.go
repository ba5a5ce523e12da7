package handlers

import (
	"errors"
	"log"
	"net/http"

	"TRAVELDIARY_BACK-END/internal/dto"
	"TRAVELDIARY_BACK-END/internal/planner"
	"TRAVELDIARY_BACK-END/internal/utils"
)

// PlannerHandler serves the AI trip planning endpoints
type PlannerHandler struct {
	pipeline *planner.Pipeline
}

// NewPlannerHandler creates a new PlannerHandler
func NewPlannerHandler(p *planner.Pipeline) *PlannerHandler {
	return &PlannerHandler{pipeline: p}
}

// TripPlan handles POST /api/ai/trip-plan
// @Summary Generate a schema-validated trip plan
// @Description Generates a day-by-day plan. Failures are reported, never replaced by a template plan.
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body dto.TripPlanRequest true "Trip details"
// @Success 200 {object} planner.TripPlan
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/ai/trip-plan [post]
func (h *PlannerHandler) TripPlan(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ReadBody(w, r)
	if err != nil {
		return // Error already handled by ReadBody
	}

	req, err := planner.ParseTripPlanRequest(body)
	if err != nil {
		var ve *planner.ValidationError
		if errors.As(err, &ve) {
			utils.WriteErrorDetails(w, http.StatusBadRequest, "Invalid request", "", ve.Fields)
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	plan, err := planner.Run[planner.TripPlan](r.Context(), h.pipeline, planner.NewTripPlanAdapter(req))
	if err != nil {
		log.Printf("[planner] trip-plan for %s failed (%s): %v", req, planner.KindOf(err), err)
		writeGenerationError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, plan)
}

func writeGenerationError(w http.ResponseWriter, err error) {
	switch planner.KindOf(err) {
	case planner.KindCredentialMissing:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Generation service not configured",
			"Set GEMINI_API_KEY (or GOOGLE_API_KEY) in the server environment to enable AI trip plans")
	case planner.KindSchemaViolation:
		var se *planner.SchemaViolationError
		errors.As(err, &se)
		utils.WriteErrorDetails(w, http.StatusInternalServerError, "Failed to generate plan",
			"The generated plan did not match the expected format", se.Fields)
	case planner.KindQuotaExceeded:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate plan",
			"The generation service quota is exhausted, try again later")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate plan", err.Error())
	}
}

// Itinerary handles POST /api/ai/itinerary
// @Summary Generate an itinerary with template fallback
// @Description Always returns a usable itinerary. fallback is true when the template planner was used.
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body dto.ItineraryRequest true "Trip details"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/ai/itinerary [post]
func (h *PlannerHandler) Itinerary(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ReadBody(w, r)
	if err != nil {
		return // Error already handled by ReadBody
	}

	req, err := planner.ParseItineraryRequest(body)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Destination and duration are required", "")
		return
	}

	out := planner.RunWithFallback[planner.FreeformPlan](r.Context(), h.pipeline, planner.NewItineraryAdapter(req))
	resp := dto.ItineraryResponse{
		FreeformPlan: out.Plan,
		Fallback:     out.Fallback,
		IsQuotaError: out.QuotaExceeded,
	}
	if out.Fallback && h.pipeline.Synthesizer().Capped(req.Duration) {
		resp.DaysCapped = true
		resp.RequestedDays = req.Duration
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}
