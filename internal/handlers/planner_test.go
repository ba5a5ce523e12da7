package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELDIARY_BACK-END/internal/dto"
	"TRAVELDIARY_BACK-END/internal/planner"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string, format planner.ResponseFormat) (string, error) {
	g.calls++
	return g.text, g.err
}

const generatedTripPlan = `{
  "summary": "Three relaxed days in Lisbon.",
  "dailyPlan": [
    {"day": 1, "title": "Alfama", "activities": [
      {"timeOfDay": "morning", "name": "Castelo de São Jorge", "description": "Walk the castle walls."}
    ]}
  ]
}`

const tripPlanBody = `{"destination":"Lisbon","startDate":"2025-05-01","endDate":"2025-05-03"}`

func newPlannerHandler(gen planner.Generator) *PlannerHandler {
	return NewPlannerHandler(planner.NewPipeline(gen, planner.Synthesizer{}))
}

func post(h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestTripPlan_Success(t *testing.T) {
	gen := &stubGenerator{text: "```json\n" + generatedTripPlan + "\n```"}
	rec := post(newPlannerHandler(gen).TripPlan, "/api/ai/trip-plan", tripPlanBody)

	require.Equal(t, http.StatusOK, rec.Code)
	var plan planner.TripPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, "Three relaxed days in Lisbon.", plan.Summary)
	require.Len(t, plan.DailyPlan, 1)
	assert.Equal(t, 1, gen.calls)
}

func TestTripPlan_InvalidRequest(t *testing.T) {
	gen := &stubGenerator{text: generatedTripPlan}
	rec := post(newPlannerHandler(gen).TripPlan, "/api/ai/trip-plan", `{"destination":"X","travelers":0}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeError(t, rec)
	assert.Equal(t, "Invalid request", out.Error)

	details, ok := out.Details.([]any)
	require.True(t, ok, "details should be a list of field errors")
	paths := map[string]bool{}
	for _, d := range details {
		paths[d.(map[string]any)["path"].(string)] = true
	}
	assert.True(t, paths["destination"])
	assert.True(t, paths["startDate"])
	assert.True(t, paths["endDate"])
	assert.True(t, paths["travelers"])
	assert.Zero(t, gen.calls, "invalid requests never reach the backend")
}

func TestTripPlan_NotJSONObject(t *testing.T) {
	rec := post(newPlannerHandler(&stubGenerator{}).TripPlan, "/api/ai/trip-plan", `["Paris"]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTripPlan_Failures(t *testing.T) {
	tests := []struct {
		name    string
		gen     planner.Generator
		errMsg  string
		message string
	}{
		{"not configured", nil, "Generation service not configured", "GEMINI_API_KEY"},
		{"quota", &stubGenerator{err: &planner.BackendError{Kind: planner.KindQuotaExceeded, HTTPStatus: 429}}, "Failed to generate plan", "quota"},
		{"transport", &stubGenerator{err: &planner.BackendError{Kind: planner.KindTransport, Message: "connection reset"}}, "Failed to generate plan", "connection reset"},
		{"malformed", &stubGenerator{text: "Sure! Here is your plan."}, "Failed to generate plan", "malformed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(newPlannerHandler(tt.gen).TripPlan, "/api/ai/trip-plan", tripPlanBody)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			out := decodeError(t, rec)
			assert.Equal(t, tt.errMsg, out.Error)
			assert.Contains(t, out.Message, tt.message)
		})
	}
}

func TestTripPlan_SchemaViolationDetails(t *testing.T) {
	gen := &stubGenerator{text: `{"summary":"x","dailyPlan":[{"day":1,"title":"t","activities":[{"name":"a"}]}]}`}
	rec := post(newPlannerHandler(gen).TripPlan, "/api/ai/trip-plan", tripPlanBody)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	out := decodeError(t, rec)
	assert.Equal(t, "Failed to generate plan", out.Error)
	assert.Contains(t, rec.Body.String(), `"path":"dailyPlan[0].activities[0].description"`)
}

func TestItinerary_MissingFields(t *testing.T) {
	for _, body := range []string{`{}`, `{"toDestination":"Paris"}`, `{"duration":3}`, `{"toDestination":"Paris","duration":0}`} {
		rec := post(newPlannerHandler(&stubGenerator{}).Itinerary, "/api/ai/itinerary", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Destination and duration are required", decodeError(t, rec).Error)
	}
}

func decodeItinerary(t *testing.T, rec *httptest.ResponseRecorder) dto.ItineraryResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.ItineraryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestItinerary_FallbackWithoutCredential(t *testing.T) {
	rec := post(newPlannerHandler(nil).Itinerary, "/api/ai/itinerary",
		`{"fromDestination":"London","toDestination":"Paris","duration":"3 days","budget":"low"}`)

	out := decodeItinerary(t, rec)
	assert.True(t, out.Fallback)
	assert.False(t, out.IsQuotaError)
	assert.False(t, out.DaysCapped)
	assert.Equal(t, "Paris", out.ToDestination)
	assert.Equal(t, 3, out.Duration)
	assert.Len(t, out.Itinerary, 3)
}

func TestItinerary_QuotaFallbackCapsDays(t *testing.T) {
	gen := &stubGenerator{err: &planner.BackendError{Kind: planner.KindQuotaExceeded, HTTPStatus: 429}}
	rec := post(newPlannerHandler(gen).Itinerary, "/api/ai/itinerary", `{"toDestination":"Kyoto","duration":12}`)

	out := decodeItinerary(t, rec)
	assert.True(t, out.Fallback)
	assert.True(t, out.IsQuotaError)
	assert.True(t, out.DaysCapped)
	assert.Equal(t, 12, out.RequestedDays)
	assert.Len(t, out.Itinerary, planner.DefaultMaxFallbackDays)
}

func TestItinerary_Generated(t *testing.T) {
	gen := &stubGenerator{text: `{"itinerary":[{"day":1,"title":"Arrival","activities":[{"time":"09:00","activity":"Check in"}]}],"tips":["Carry cash"]}`}
	rec := post(newPlannerHandler(gen).Itinerary, "/api/ai/itinerary", `{"toDestination":"Hanoi","duration":1}`)

	out := decodeItinerary(t, rec)
	assert.False(t, out.Fallback)
	assert.Equal(t, "Hanoi", out.ToDestination)
	assert.Equal(t, []string{"Carry cash"}, out.Tips)
	assert.NotContains(t, rec.Body.String(), "fallback")
}
