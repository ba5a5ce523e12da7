package generation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELDIARY_BACK-END/internal/config"
	"TRAVELDIARY_BACK-END/internal/planner"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), config.GenerationConfig{
		APIKey:   "test-key",
		Model:    "gemini-test",
		Endpoint: srv.URL + "/",
	})
	require.NoError(t, err)
	return c
}

func TestNew_NoCredential(t *testing.T) {
	c, err := New(context.Background(), config.GenerationConfig{Model: "gemini-test"})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, planner.ErrCredentialMissing)
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "models/gemini-test", modelName("gemini-test"))
	assert.Equal(t, "models/gemini-test", modelName("models/gemini-test"))
	assert.Equal(t, "models/gemini-2.0-flash", modelName(""))
}

func TestGenerate_ReturnsCandidateText(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent"), r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"summary\":"},{"text":"\"ok\"}"}]}}]}`)
	})

	text, err := c.Generate(context.Background(), "plan a trip", planner.ResponseFormat{
		MIMEType: "application/json",
		Schema:   planner.TripPlanSchemaHint(),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"ok"}`, text)

	contents, ok := got["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 1)
	assert.Contains(t, string(mustJSON(t, contents[0])), "plan a trip")

	cfg, ok := got["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "application/json", cfg["responseMimeType"])
	schema, ok := cfg["responseSchema"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, planner.HintObject, schema["type"])
}

func TestGenerate_QuotaExceeded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED"}}`)
	})

	_, err := c.Generate(context.Background(), "p", planner.ResponseFormat{})
	require.Error(t, err)
	assert.Equal(t, planner.KindQuotaExceeded, planner.KindOf(err))

	var be *planner.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusTooManyRequests, be.HTTPStatus)
}

func TestGenerate_ServerErrorIsTransport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`)
	})

	_, err := c.Generate(context.Background(), "p", planner.ResponseFormat{})
	require.Error(t, err)
	assert.Equal(t, planner.KindTransport, planner.KindOf(err))
}

func TestGenerate_NoCandidates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`)
	})

	_, err := c.Generate(context.Background(), "p", planner.ResponseFormat{})
	require.Error(t, err)
	assert.Equal(t, planner.KindTransport, planner.KindOf(err))
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestToSchema(t *testing.T) {
	assert.Nil(t, toSchema(nil))

	s := toSchema(planner.TripPlanSchemaHint())
	require.NotNil(t, s)
	assert.Equal(t, planner.HintObject, s.Type)
	assert.Contains(t, s.Required, "dailyPlan")

	daily, ok := s.Properties["dailyPlan"]
	require.True(t, ok)
	assert.Equal(t, planner.HintArray, daily.Type)
	require.NotNil(t, daily.Items)
	assert.Contains(t, daily.Items.Properties, "activities")
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
