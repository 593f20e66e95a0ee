package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/types"
)

// stubWeatherService lets handler tests pick the error branch directly.
type stubWeatherService struct {
	err error
}

func (s stubWeatherService) GetWeatherIntelligence(context.Context, string) (*types.WeatherIntelligence, error) {
	return &types.WeatherIntelligence{CurrentSeason: "Winter", Temperature: "18°C (Range: 12°C - 24°C)"}, s.err
}

func (s stubWeatherService) GetCurrentWeatherInfo(context.Context, string) (*types.WeatherInfo, error) {
	return &types.WeatherInfo{CurrentSeason: "Winter"}, s.err
}

func (s stubWeatherService) GetWeeklyForecast(context.Context, string) ([]types.WeatherForecast, error) {
	return []types.WeatherForecast{{Date: "15/1/2026", High: 24, Low: 12}}, s.err
}

func weatherHandlerRequest(t *testing.T, svcErr error, path string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewWeatherHandler(stubWeatherService{err: svcErr}, destinations.NewService(slog.Default()), slog.Default())

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	switch {
	case req.URL.Path == "/weather/forecast":
		h.GetForecast(rec, req)
	default:
		h.GetIntelligence(rec, req)
	}
	return rec
}

func TestWeatherHandlerLive(t *testing.T) {
	rec := weatherHandlerRequest(t, nil, "/weather/intelligence?destination=ranchi")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["live"])
	assert.Equal(t, "ranchi", body["destination"])
	assert.NotNil(t, body["intelligence"])
}

func TestWeatherHandlerProviderDownStillServes(t *testing.T) {
	err := fmt.Errorf("openweather status 500: %w", types.ErrProviderUnavailable)
	rec := weatherHandlerRequest(t, err, "/weather/intelligence?destination=ranchi")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["live"])
	assert.NotNil(t, body["intelligence"])
}

func TestWeatherHandlerUnexpectedError(t *testing.T) {
	rec := weatherHandlerRequest(t, fmt.Errorf("boom"), "/weather/intelligence?destination=ranchi")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWeatherHandlerUnsupportedDestination(t *testing.T) {
	rec := weatherHandlerRequest(t, nil, "/weather/intelligence?destination=mumbai")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeatherHandlerForecast(t *testing.T) {
	rec := weatherHandlerRequest(t, nil, "/weather/forecast?destination=deoghar")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["live"])
	forecast, ok := body["forecast"].([]interface{})
	require.True(t, ok)
	assert.Len(t, forecast, 1)
}
