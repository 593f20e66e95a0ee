package trip

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/types"
)

type stubEnricher struct {
	stats types.EnhancementStats
}

func (s *stubEnricher) Enrich(_ context.Context, _ string, plan *types.CompleteTripPlan) types.EnhancementStats {
	plan.EnhancementStatus = StatusEnhanced
	return s.stats
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	gazetteer := destinations.NewService(slog.Default())
	model := new(MockModelClient)
	model.On("GenerateWithSystem", mock.Anything, mock.Anything, mock.Anything).
		Return("", types.ErrModelUnavailable).Maybe()
	svc := NewService(model, gazetteer, nil, slog.Default())
	return NewTripHandler(svc, &stubEnricher{stats: types.EnhancementStats{ReviewsFound: 2}}, gazetteer, 5000, 15, slog.Default())
}

func planRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips/plan", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.PlanTrip(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestPlanTripMissingFields(t *testing.T) {
	rec := planRequest(t, `{"days": 3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields: destination, days, and budget", decodeError(t, rec))
}

func TestPlanTripDaysOutOfRange(t *testing.T) {
	rec := planRequest(t, `{"destination": "Ranchi", "days": 20, "budget": "15000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Days must be between 1 and 15", decodeError(t, rec))
}

func TestPlanTripBudgetTooLow(t *testing.T) {
	rec := planRequest(t, `{"destination": "Ranchi", "days": 3, "budget": "2000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Budget must be at least ₹5,000", decodeError(t, rec))
}

func TestPlanTripUnsupportedDestination(t *testing.T) {
	rec := planRequest(t, `{"destination": "Goa", "days": 3, "budget": "15000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "Only Jharkhand destinations are supported")
}

func TestPlanTripValidationOrder(t *testing.T) {
	// Days check runs before budget: a request failing both reports days.
	rec := planRequest(t, `{"destination": "Goa", "days": 99, "budget": "10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Days must be between 1 and 15", decodeError(t, rec))
}

func TestPlanTripSuccess(t *testing.T) {
	rec := planRequest(t, `{"destination": "Ranchi", "days": 3, "budget": "15000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "PLANORA AI", rec.Header().Get("X-Powered-By"))

	var resp types.PlanTripResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Regexp(t, `^trip_\d+_[0-9a-f]{9}$`, resp.TripID)
	require.NotNil(t, resp.TripPlan)
	assert.Equal(t, StatusEnhanced, resp.TripPlan.EnhancementStatus)
	assert.Equal(t, 2, resp.EnhancementStats.ReviewsFound)
	assert.Equal(t, "Trip plan generated successfully for Ranchi!", resp.Message)
}

func TestPlanTripBadBody(t *testing.T) {
	rec := planRequest(t, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
