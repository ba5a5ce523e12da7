package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"TRAVELDIARY_BACK-END/internal/dto"
	"TRAVELDIARY_BACK-END/internal/models"
	"TRAVELDIARY_BACK-END/internal/planner"
	"TRAVELDIARY_BACK-END/internal/planstore"
	"TRAVELDIARY_BACK-END/internal/utils"
)

// TripsHandler manages plans attached to trips
type TripsHandler struct {
	store planstore.Store
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(store planstore.Store) *TripsHandler {
	return &TripsHandler{store: store}
}

// SaveTripPlan handles PUT /api/trips/{trip_id}/plan
// @Summary Attach a generated plan to a trip
// @Description The plan is validated against the contract named by kind before it is stored.
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID (UUID)"
// @Param payload body dto.SaveTripPlanRequest true "Plan payload"
// @Success 200 {object} dto.TripPlanEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/plan [put]
func (h *TripsHandler) SaveTripPlan(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := tripRequestIDs(w, r)
	if !ok {
		return
	}

	var req dto.SaveTripPlanRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	kind := models.PlanKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if !kind.Valid() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "kind must be trip_plan or itinerary")
		return
	}
	if len(req.Plan) == 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "plan is required")
		return
	}

	// Store the validated plan so unknown fields are dropped
	plan, err := normalizePlan(kind, req.Plan)
	if err != nil {
		var se *planner.SchemaViolationError
		if errors.As(err, &se) {
			utils.WriteErrorDetails(w, http.StatusBadRequest, "Invalid plan", "plan does not match the "+string(kind)+" format", se.Fields)
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal error", err.Error())
		return
	}

	rec, err := h.store.Save(r.Context(), models.TripPlanRecord{
		TripID:   tripID,
		OwnerID:  userID,
		Kind:     kind,
		Plan:     plan,
		Fallback: req.Fallback,
	})
	if errors.Is(err, planstore.ErrForbidden) {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the plan owner can replace this plan")
		return
	}
	if err != nil {
		log.Printf("[trips] save plan %s: %v", tripID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripPlanEnvelope{TripPlan: toTripPlanResponse(rec)})
}

// GetTripPlan handles GET /api/trips/{trip_id}/plan
// @Summary Fetch the plan attached to a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID (UUID)"
// @Success 200 {object} dto.TripPlanEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/plan [get]
func (h *TripsHandler) GetTripPlan(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := tripRequestIDs(w, r)
	if !ok {
		return
	}

	rec, err := h.store.Get(r.Context(), tripID)
	if errors.Is(err, planstore.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "No plan attached to this trip")
		return
	}
	if err != nil {
		log.Printf("[trips] get plan %s: %v", tripID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if rec.OwnerID != userID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "You do not have access to this plan")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripPlanEnvelope{TripPlan: toTripPlanResponse(rec)})
}

// DeleteTripPlan handles DELETE /api/trips/{trip_id}/plan
// @Summary Detach the plan from a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID (UUID)"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/plan [delete]
func (h *TripsHandler) DeleteTripPlan(w http.ResponseWriter, r *http.Request) {
	userID, tripID, ok := tripRequestIDs(w, r)
	if !ok {
		return
	}

	err := h.store.Delete(r.Context(), tripID, userID)
	switch {
	case errors.Is(err, planstore.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "No plan attached to this trip")
		return
	case errors.Is(err, planstore.ErrForbidden):
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the plan owner can delete this plan")
		return
	case err != nil:
		log.Printf("[trips] delete plan %s: %v", tripID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Trip plan deleted successfully"})
}

// tripRequestIDs extracts the authenticated user and the trip_id path value,
// writing the error response itself when either is missing.
func tripRequestIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return uuid.Nil, uuid.Nil, false
	}
	tripID, err := uuid.Parse(r.PathValue("trip_id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, tripID, true
}

func normalizePlan(kind models.PlanKind, raw json.RawMessage) (json.RawMessage, error) {
	var (
		plan any
		err  error
	)
	switch kind {
	case models.PlanKindTripPlan:
		plan, err = planner.ValidateTripPlan(raw)
	default:
		plan, err = planner.ValidateFreeformPlan(raw)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(plan)
}

func toTripPlanResponse(rec models.TripPlanRecord) dto.TripPlanResponse {
	return dto.TripPlanResponse{
		TripID:    rec.TripID.String(),
		OwnerID:   rec.OwnerID.String(),
		Kind:      string(rec.Kind),
		Plan:      rec.Plan,
		Fallback:  rec.Fallback,
		CreatedAt: utils.FormatTimestamp(rec.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(rec.UpdatedAt),
	}
}
