package enrichment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora-ai/planora-api/internal/api/trip"
	"github.com/planora-ai/planora-api/internal/types"
)

type stubWeather struct {
	intel *types.WeatherIntelligence
	err   error
	calls int32
}

func (s *stubWeather) GetWeatherIntelligence(context.Context, string) (*types.WeatherIntelligence, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.intel, s.err
}

func (s *stubWeather) GetCurrentWeatherInfo(context.Context, string) (*types.WeatherInfo, error) {
	return nil, errors.New("not used")
}

func (s *stubWeather) GetWeeklyForecast(context.Context, string) ([]types.WeatherForecast, error) {
	return nil, errors.New("not used")
}

type stubSearch struct {
	reviews    []types.Review
	reviewsErr error
	guides     []types.LocalGuide
	guidesErr  error
	news       []types.NewsItem
	newsErr    error
	calls      int32
}

func (s *stubSearch) SearchReviews(context.Context, string) ([]types.Review, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.reviews, s.reviewsErr
}

func (s *stubSearch) FindGuides(context.Context, string) ([]types.LocalGuide, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.guides, s.guidesErr
}

func (s *stubSearch) GetTourismNews(context.Context) ([]types.NewsItem, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.news, s.newsErr
}

func (s *stubSearch) SearchHotels(context.Context, string, string) ([]types.Hotel, error) {
	return nil, errors.New("not used")
}

func testIntel() *types.WeatherIntelligence {
	return &types.WeatherIntelligence{
		CurrentSeason:           trip.SeasonWinter,
		Temperature:             "18°C (Range: 12°C - 24°C)",
		ClothingRecommendations: []string{"Light woolens", "Warm jacket"},
		SeasonalConsiderations:  []string{"Best time for sightseeing"},
	}
}

func testPlan() *types.CompleteTripPlan {
	return &types.CompleteTripPlan{
		WeatherInfo: types.WeatherInfo{
			CurrentSeason: trip.SeasonWinter,
			Temperature:   "10–25°C",
			Humidity:      "60%",
			WindSpeed:     "4 m/s",
			Visibility:    "Good",
		},
		EnhancementStatus: trip.StatusSmartFallback,
	}
}

func TestEnrichAllProvidersSucceed(t *testing.T) {
	w := &stubWeather{intel: testIntel()}
	s := &stubSearch{
		reviews: []types.Review{{Text: "Amazing"}, {Text: "Beautiful"}},
		guides:  []types.LocalGuide{{Name: "JTDC"}},
		news:    []types.NewsItem{{Title: "Festival"}},
	}
	svc := NewService(w, s, nil, slog.Default())

	plan := testPlan()
	stats := svc.Enrich(context.Background(), "Ranchi", plan)

	assert.Equal(t, 2, stats.ReviewsFound)
	assert.Equal(t, 1, stats.GuidesFound)
	assert.Equal(t, 1, stats.NewsFound)
	assert.True(t, stats.WeatherEnhanced)

	require.NotNil(t, plan.RealTimeEnhancements)
	rte := plan.RealTimeEnhancements
	assert.Equal(t, "SerpAPI + OpenWeather + Gemini AI", rte.DataSource)
	assert.Equal(t, 3, rte.SearchesUsed)
	assert.Equal(t, map[string]string{
		"weather": types.APIStatusSuccess,
		"reviews": types.APIStatusSuccess,
		"guides":  types.APIStatusSuccess,
		"news":    types.APIStatusSuccess,
	}, rte.APIStatus)
	assert.Equal(t, trip.StatusEnhanced, plan.EnhancementStatus)

	// Live weather overlays the plan but keeps the base readings.
	assert.Equal(t, "18°C (Range: 12°C - 24°C)", plan.WeatherInfo.Temperature)
	assert.Equal(t, "Light woolens, Warm jacket", plan.WeatherInfo.Clothing)
	assert.Equal(t, "60%", plan.WeatherInfo.Humidity)
	assert.Equal(t, "4 m/s", plan.WeatherInfo.WindSpeed)
	assert.Equal(t, "Good", plan.WeatherInfo.Visibility)
}

func TestEnrichProviderFallbacksAreReported(t *testing.T) {
	provErr := fmt.Errorf("%w: key missing", types.ErrProviderUnavailable)
	w := &stubWeather{intel: testIntel(), err: provErr}
	s := &stubSearch{
		reviews:    []types.Review{{Text: "Curated"}},
		reviewsErr: provErr,
		guides:     []types.LocalGuide{{Name: "JTDC"}},
		news:       []types.NewsItem{{Title: "Update"}},
	}
	svc := NewService(w, s, nil, slog.Default())

	plan := testPlan()
	stats := svc.Enrich(context.Background(), "Ranchi", plan)

	// Fallback data still counts, only the status flags the degradation.
	assert.Equal(t, 1, stats.ReviewsFound)
	assert.False(t, stats.WeatherEnhanced)
	assert.Equal(t, types.APIStatusFallback, plan.RealTimeEnhancements.APIStatus["weather"])
	assert.Equal(t, types.APIStatusFallback, plan.RealTimeEnhancements.APIStatus["reviews"])
	assert.Equal(t, types.APIStatusSuccess, plan.RealTimeEnhancements.APIStatus["guides"])

	// Fallback weather intelligence is still merged into the plan.
	assert.Equal(t, "18°C (Range: 12°C - 24°C)", plan.WeatherInfo.Temperature)
}

func TestEnrichUnexpectedErrorEmptiesSlice(t *testing.T) {
	w := &stubWeather{intel: testIntel()}
	s := &stubSearch{
		news:    []types.NewsItem{{Title: "Partial"}},
		newsErr: errors.New("boom"),
		reviews: []types.Review{{Text: "Fine"}},
		guides:  []types.LocalGuide{{Name: "JTDC"}},
	}
	svc := NewService(w, s, nil, slog.Default())

	plan := testPlan()
	stats := svc.Enrich(context.Background(), "Ranchi", plan)

	assert.Equal(t, 0, stats.NewsFound)
	assert.Equal(t, types.APIStatusError, plan.RealTimeEnhancements.APIStatus["news"])
	assert.NotNil(t, plan.RealTimeEnhancements.CurrentNews)
	assert.Empty(t, plan.RealTimeEnhancements.CurrentNews)
}

func TestEnrichCachesResults(t *testing.T) {
	w := &stubWeather{intel: testIntel()}
	s := &stubSearch{reviews: []types.Review{{Text: "Amazing"}}}
	svc := NewService(w, s, nil, slog.Default())

	svc.Enrich(context.Background(), "Ranchi", testPlan())
	firstWeatherCalls := atomic.LoadInt32(&w.calls)
	firstSearchCalls := atomic.LoadInt32(&s.calls)

	// Same destination, different casing: one provider round total.
	stats := svc.Enrich(context.Background(), "  RANCHI ", testPlan())

	assert.Equal(t, firstWeatherCalls, atomic.LoadInt32(&w.calls))
	assert.Equal(t, firstSearchCalls, atomic.LoadInt32(&s.calls))
	assert.Equal(t, 1, stats.ReviewsFound)
}

func TestEnrichNilProviderSlices(t *testing.T) {
	w := &stubWeather{intel: testIntel()}
	s := &stubSearch{}
	svc := NewService(w, s, nil, slog.Default())

	plan := testPlan()
	stats := svc.Enrich(context.Background(), "Deoghar", plan)

	assert.Equal(t, 0, stats.ReviewsFound)
	assert.NotNil(t, plan.RealTimeEnhancements.AttractionReviews)
	assert.NotNil(t, plan.RealTimeEnhancements.LocalGuides)
	assert.NotNil(t, plan.RealTimeEnhancements.CurrentNews)
}
