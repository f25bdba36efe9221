package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rise/internal/engine"
	"rise/internal/storage"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	srv := New(engine.NewService(db), db, path, nil, zap.NewNop())
	return srv.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestRootEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "RISE API running", body["message"])
}

func TestDiagnosticsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "running", body["backend"])
	assert.Equal(t, "connected", body["database"])
	assert.Contains(t, body["tables"], "tasks")
	assert.Contains(t, body["tables"], "profile")
}

func TestProposeEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/onboarding/propose", map[string]any{
		"goals":   []string{"learn python"},
		"blocker": "low energy after work",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	plan := decodeBody[engine.OnboardingPlan](t, rec)
	assert.Equal(t, "Base Protocol", plan.ProtocolName)
	require.Len(t, plan.Blocks, 3)
	assert.Equal(t, "07:00", plan.Blocks[0].Start.Format("15:04"))
	assert.Equal(t, "12:30", plan.Blocks[1].Start.Format("15:04"))
	assert.Equal(t, "18:00", plan.Blocks[2].Start.Format("15:04"))
	assert.NotEmpty(t, plan.Message)
}

func TestProposeEndpointEveningPattern(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/onboarding/propose", map[string]any{
		"goals":          []string{"learn python"},
		"blocker":        "meetings",
		"energy_pattern": "morning-person",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	plan := decodeBody[engine.OnboardingPlan](t, rec)
	assert.Equal(t, "19:00", plan.Blocks[0].Start.Format("15:04"))
}

func TestProposeEndpointValidation(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/onboarding/propose", map[string]any{
		"goals":   []string{},
		"blocker": "x",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]map[string]string](t, rec)
	assert.Equal(t, "validation", body["error"]["code"])
}

func TestAcceptListCompleteProfileFlow(t *testing.T) {
	h := newTestHandler(t)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	records := []map[string]any{
		{
			"title":    "Meal Prep",
			"start":    day.Add(18 * time.Hour).Format(time.RFC3339),
			"end":      day.Add(18*time.Hour + 45*time.Minute).Format(time.RFC3339),
			"category": "vitality",
		},
		{
			"title":    "Python Micro-Learning",
			"start":    day.Add(7 * time.Hour).Format(time.RFC3339),
			"end":      day.Add(7*time.Hour + 25*time.Minute).Format(time.RFC3339),
			"category": "mind",
		},
	}

	rec := doJSON(t, h, http.MethodPost, "/api/onboarding/accept", records)
	require.Equal(t, http.StatusOK, rec.Code)
	accepted := decodeBody[map[string]any](t, rec)
	assert.Equal(t, true, accepted["ok"])
	assert.Equal(t, float64(2), accepted["created"])
	assert.NotEmpty(t, accepted["profile_id"])

	rec = doJSON(t, h, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decodeBody[[]map[string]any](t, rec)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Python Micro-Learning", tasks[0]["title"])
	assert.Equal(t, "Meal Prep", tasks[1]["title"])

	id, ok := tasks[0]["id"].(string)
	require.True(t, ok)

	rec = doJSON(t, h, http.MethodPost, "/api/tasks/"+id+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	completed := decodeBody[map[string]any](t, rec)
	assert.Equal(t, true, completed["ok"])
	assert.Equal(t, float64(15), completed["xp_gain"])

	rec = doJSON(t, h, http.MethodGet, "/api/tasks?status=scheduled", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	remaining := decodeBody[[]map[string]any](t, rec)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Meal Prep", remaining[0]["title"])

	rec = doJSON(t, h, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(1), profile["level"])
	assert.Equal(t, float64(15), profile["xp"])
	assert.Equal(t, float64(0), profile["streak"])
}

func TestCompleteUnknownTaskReturns404(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/tasks/no-such-id/complete", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]map[string]string](t, rec)
	assert.Equal(t, "not_found", body["error"]["code"])
}

func TestCompleteTwiceReturns409(t *testing.T) {
	h := newTestHandler(t)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := doJSON(t, h, http.MethodPost, "/api/onboarding/accept", []map[string]any{{
		"title":    "Zone 2 Run",
		"start":    day.Add(12 * time.Hour).Format(time.RFC3339),
		"end":      day.Add(12*time.Hour + 40*time.Minute).Format(time.RFC3339),
		"category": "fitness",
	}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/tasks", nil)
	tasks := decodeBody[[]map[string]any](t, rec)
	id := tasks[0]["id"].(string)

	rec = doJSON(t, h, http.MethodPost, "/api/tasks/"+id+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, h, http.MethodPost, "/api/tasks/"+id+"/complete", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody[map[string]map[string]string](t, rec)
	assert.Equal(t, "conflict", body["error"]["code"])
}

func TestProfileDefaultsWithoutProfile(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(1), profile["level"])
	assert.Equal(t, float64(0), profile["xp"])
	assert.Equal(t, float64(0), profile["streak"])
}

func TestAcceptRejectsInvertedInterval(t *testing.T) {
	h := newTestHandler(t)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := doJSON(t, h, http.MethodPost, "/api/onboarding/accept", []map[string]any{{
		"title":    "backwards",
		"start":    day.Add(10 * time.Hour).Format(time.RFC3339),
		"end":      day.Add(9 * time.Hour).Format(time.RFC3339),
		"category": "mind",
	}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSHeadersAndPreflight(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/profile", nil)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/profile", nil)
	pre := httptest.NewRecorder()
	h.ServeHTTP(pre, req)
	assert.Equal(t, http.StatusNoContent, pre.Code)
	assert.Equal(t, "*", pre.Header().Get("Access-Control-Allow-Origin"))
}

func TestMalformedBodyReturns400(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/onboarding/propose", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
