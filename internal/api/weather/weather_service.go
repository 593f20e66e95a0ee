package weather

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/api/trip"
	"github.com/planora-ai/planora-api/internal/types"
)

// Service exposes destination weather for plan enrichment.
type Service interface {
	// GetWeatherIntelligence builds the full weather block. When the
	// provider is unreachable it returns a seasonal estimate together with
	// an error wrapping ErrProviderUnavailable, so callers can report the
	// degraded status while still using the estimate.
	GetWeatherIntelligence(ctx context.Context, destination string) (*types.WeatherIntelligence, error)
	// GetCurrentWeatherInfo returns the compact current conditions block.
	GetCurrentWeatherInfo(ctx context.Context, destination string) (*types.WeatherInfo, error)
	// GetWeeklyForecast returns up to seven daily entries.
	GetWeeklyForecast(ctx context.Context, destination string) ([]types.WeatherForecast, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger    *slog.Logger
	client    *Client
	gazetteer destinations.Service
	now       func() time.Time
}

func NewService(client *Client, gazetteer destinations.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		client:    client,
		gazetteer: gazetteer,
		now:       time.Now,
	}
}

func (s *ServiceImpl) GetWeatherIntelligence(ctx context.Context, destination string) (*types.WeatherIntelligence, error) {
	ctx, span := otel.Tracer("WeatherService").Start(ctx, "GetWeatherIntelligence")
	defer span.End()

	coords := s.gazetteer.Coordinates(destination)

	var current *openWeatherCurrent
	var forecast *openWeatherForecast
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.client.getCurrent(gctx, coords)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = s.client.getForecast(gctx, coords)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "Weather provider unavailable, using seasonal estimate",
			slog.String("destination", destination), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider unavailable")
		return s.fallbackIntelligence(destination), err
	}

	span.SetStatus(codes.Ok, "Weather intelligence built")
	return s.buildIntelligence(current, forecast, destination), nil
}

func (s *ServiceImpl) GetCurrentWeatherInfo(ctx context.Context, destination string) (*types.WeatherInfo, error) {
	ctx, span := otel.Tracer("WeatherService").Start(ctx, "GetCurrentWeatherInfo")
	defer span.End()

	coords := s.gazetteer.Coordinates(destination)
	current, err := s.client.getCurrent(ctx, coords)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider unavailable")
		return s.fallbackInfo(), err
	}

	info := &types.WeatherInfo{
		CurrentSeason: trip.SeasonFor(s.now()),
		Temperature:   fmt.Sprintf("%d°C (feels like %d°C)", round(current.Main.Temp), round(current.Main.FeelsLike)),
		Clothing:      clothingForTemp(current.Main.Temp),
		Precautions:   precautionsFor(current),
		Humidity:      fmt.Sprintf("%d%%", round(current.Main.Humidity)),
		WindSpeed:     fmt.Sprintf("%g m/s", current.Wind.Speed),
		Visibility:    visibilityString(current.Visibility),
	}
	span.SetStatus(codes.Ok, "Current weather returned")
	return info, nil
}

func (s *ServiceImpl) GetWeeklyForecast(ctx context.Context, destination string) ([]types.WeatherForecast, error) {
	ctx, span := otel.Tracer("WeatherService").Start(ctx, "GetWeeklyForecast")
	defer span.End()

	coords := s.gazetteer.Coordinates(destination)
	forecast, err := s.client.getForecast(ctx, coords)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider unavailable")
		return s.fallbackForecast(), err
	}

	// Every 8th entry approximates one day in the 3-hourly forecast.
	out := make([]types.WeatherForecast, 0, 7)
	for i, entry := range forecast.List {
		if i%8 != 0 || len(out) == 7 {
			continue
		}
		high := entry.Main.Temp
		if entry.Main.TempMax != nil {
			high = *entry.Main.TempMax
		}
		low := entry.Main.Temp
		if entry.Main.TempMin != nil {
			low = *entry.Main.TempMin
		}
		condition := "—"
		weatherID := 800
		if len(entry.Weather) > 0 {
			condition = entry.Weather[0].Description
			weatherID = entry.Weather[0].ID
		}
		out = append(out, types.WeatherForecast{
			Date:         time.Unix(entry.Dt, 0).Format("2/1/2006"),
			High:         round(high),
			Low:          round(low),
			Condition:    condition,
			Humidity:     round(entry.Main.Humidity),
			ChanceOfRain: round(entry.Pop * 100),
			WindSpeed:    entry.Wind.Speed,
			UVIndex:      uvIndexFor(weatherID),
			Sunrise:      "—",
			Sunset:       "—",
		})
	}
	span.SetStatus(codes.Ok, "Forecast returned")
	return out, nil
}

func (s *ServiceImpl) buildIntelligence(current *openWeatherCurrent, forecast *openWeatherForecast, destination string) *types.WeatherIntelligence {
	season := trip.SeasonFor(s.now())

	temp := current.Main.Temp
	tempMin := current.Main.TempMin
	tempMax := current.Main.TempMax
	condMain := "Clear"
	condDesc := condMain
	if len(current.Weather) > 0 {
		condMain = current.Weather[0].Main
		condDesc = current.Weather[0].Description
	}

	return &types.WeatherIntelligence{
		CurrentSeason:           season,
		ExpectedWeather:         condDesc,
		Temperature:             fmt.Sprintf("%d°C (Range: %d°C - %d°C)", round(temp), round(tempMin), round(tempMax)),
		Rainfall:                rainfallInfo(season, current),
		WeatherWarnings:         weatherWarnings(current),
		ClothingRecommendations: detailedClothing(temp, season),
		WeatherBasedActivities:  weatherActivities(condMain, season),
		SeasonalConsiderations:  seasonalConsiderations(season),
		BestTimeToVisit:         bestTimeToVisit(destination),
		WeatherAlerts:           s.weatherAlerts(current),
	}
}

func (s *ServiceImpl) fallbackIntelligence(destination string) *types.WeatherIntelligence {
	season := trip.SeasonFor(s.now())
	expected := "Variable"
	temperature := "15°C - 30°C"
	rainfall := "Low"
	if season == trip.SeasonWinter {
		expected = "Pleasant and cool"
		temperature = "10°C - 25°C"
	}
	if season == trip.SeasonMonsoon {
		rainfall = "High"
	}
	return &types.WeatherIntelligence{
		CurrentSeason:           season,
		ExpectedWeather:         expected,
		Temperature:             temperature,
		Rainfall:                rainfall,
		WeatherWarnings:         []string{},
		ClothingRecommendations: detailedClothing(20, season),
		WeatherBasedActivities:  weatherActivities("Clear", season),
		SeasonalConsiderations:  seasonalConsiderations(season),
		BestTimeToVisit:         bestTimeToVisit(destination),
		WeatherAlerts:           []types.WeatherAlert{},
	}
}

func (s *ServiceImpl) fallbackInfo() *types.WeatherInfo {
	season := trip.SeasonFor(s.now())
	temperature := "20°C - 28°C"
	clothingTemp := 25.0
	if season == trip.SeasonWinter {
		temperature = "15°C - 22°C"
		clothingTemp = 18
	}
	return &types.WeatherInfo{
		CurrentSeason: season,
		Temperature:   temperature,
		Clothing:      clothingForTemp(clothingTemp),
		Precautions:   "Standard weather precautions recommended",
	}
}

func (s *ServiceImpl) fallbackForecast() []types.WeatherForecast {
	out := make([]types.WeatherForecast, 0, 7)
	for i := 0; i < 7; i++ {
		out = append(out, types.WeatherForecast{
			Date:         s.now().AddDate(0, 0, i).Format("2/1/2006"),
			High:         25,
			Low:          15,
			Condition:    "Pleasant",
			Humidity:     60,
			ChanceOfRain: 10,
			WindSpeed:    5,
			UVIndex:      6,
			Sunrise:      "—",
			Sunset:       "—",
		})
	}
	return out
}

func (s *ServiceImpl) weatherAlerts(current *openWeatherCurrent) []types.WeatherAlert {
	alerts := []types.WeatherAlert{}
	if current.Main.Temp < 8 {
		alerts = append(alerts, types.WeatherAlert{
			Type:               "warning",
			Message:            "Cold wave conditions - temperatures below 8°C",
			Severity:           "medium",
			ValidUntil:         s.now().Add(24 * time.Hour).Format(time.RFC3339),
			AffectedActivities: []string{"Early morning sightseeing", "Outdoor photography"},
		})
	}
	return alerts
}

func round(f float64) int {
	return int(math.Round(f))
}

func visibilityString(vis *float64) string {
	if vis == nil {
		return "Good"
	}
	return fmt.Sprintf("%g km", math.Round(*vis/100)/10)
}

func clothingForTemp(temp float64) string {
	switch {
	case temp < 15:
		return "Heavy woolens, jacket, warm cap, gloves recommended"
	case temp < 25:
		return "Light woolens, sweater, light jacket for evenings"
	case temp < 35:
		return "Cotton clothes, light fabrics, sun hat recommended"
	default:
		return "Light cotton, breathable fabrics, sun protection essential"
	}
}

func detailedClothing(temp float64, season string) []string {
	switch season {
	case trip.SeasonWinter:
		rec := []string{
			"Light woolen sweater or cardigan",
			"Warm jacket for mornings and evenings",
			"Long pants or jeans",
			"Closed shoes with socks",
		}
		if temp < 10 {
			rec = append(rec, "Warm cap and light gloves")
		}
		return rec
	case trip.SeasonSummer:
		return []string{"Cotton t-shirts and shirts", "Light colored clothing", "Sun hat or cap", "Sunglasses", "Comfortable walking shoes"}
	case trip.SeasonMonsoon:
		return []string{"Quick-dry clothing", "Waterproof jacket or raincoat", "Umbrella", "Non-slip footwear", "Plastic bags for electronics"}
	default:
		return []string{"Light layers", "Comfortable shoes"}
	}
}

func weatherActivities(conditionMain, season string) []types.WeatherActivity {
	out := []types.WeatherActivity{}
	if season == trip.SeasonWinter {
		out = append(out,
			types.WeatherActivity{
				Activity:                "Waterfall visits (Hundru, Dassam, Jonha)",
				SuitableWeather:         "Clear, sunny days",
				AlternativeIfBadWeather: "Visit museums or temples",
				Season:                  trip.SeasonWinter,
				TimeOfDay:               "morning",
			},
			types.WeatherActivity{
				Activity:                "Wildlife safaris at Betla National Park",
				SuitableWeather:         "Clear weather, mild temperatures",
				AlternativeIfBadWeather: "Visit Birsa Zoological Park",
				Season:                  trip.SeasonWinter,
				TimeOfDay:               "morning",
			},
		)
	}
	if !strings.Contains(strings.ToLower(conditionMain), "rain") {
		out = append(out, types.WeatherActivity{
			Activity:                "Temple visits (Baidyanath, Parasnath)",
			SuitableWeather:         "Any weather except heavy rain",
			AlternativeIfBadWeather: "Indoor cultural activities",
			Season:                  season,
			TimeOfDay:               "any",
		})
	}
	return out
}

func weatherWarnings(current *openWeatherCurrent) []string {
	warnings := []string{}
	condMain := ""
	if len(current.Weather) > 0 {
		condMain = current.Weather[0].Main
	}
	if current.Main.Temp > 35 {
		warnings = append(warnings, "High temperature alert - stay hydrated and avoid midday sun")
	}
	if current.Main.Temp < 5 {
		warnings = append(warnings, "Cold weather warning - dress warmly and carry extra layers")
	}
	if strings.Contains(strings.ToLower(condMain), "rain") {
		warnings = append(warnings, "Rainy conditions - carry umbrella and wear appropriate footwear")
	}
	if current.Wind.Speed > 10 {
		warnings = append(warnings, "Windy conditions - secure loose items and be cautious outdoors")
	}
	return warnings
}

func precautionsFor(current *openWeatherCurrent) string {
	condMain := ""
	if len(current.Weather) > 0 {
		condMain = current.Weather[0].Main
	}
	precautions := []string{}
	if current.Main.Temp > 30 {
		precautions = append(precautions, "Stay hydrated")
	}
	if current.Main.Temp < 15 {
		precautions = append(precautions, "Keep warm")
	}
	if strings.Contains(strings.ToLower(condMain), "rain") {
		precautions = append(precautions, "Carry rain gear")
	}
	if current.Main.Humidity > 80 {
		precautions = append(precautions, "Be prepared for humid conditions")
	}
	if len(precautions) == 0 {
		return "Take normal weather precautions"
	}
	return strings.Join(precautions, ", ")
}

func rainfallInfo(season string, current *openWeatherCurrent) string {
	if season == trip.SeasonMonsoon {
		return "High - expect regular rainfall"
	}
	if season == trip.SeasonWinter {
		return "Minimal - dry season"
	}
	if lastHour, ok := current.Rain["1h"]; ok {
		return fmt.Sprintf("%gmm in last hour", lastHour)
	}
	return "Low to moderate depending on season"
}

func seasonalConsiderations(season string) []string {
	m := map[string][]string{
		trip.SeasonWinter: {
			"Best time for sightseeing with pleasant weather",
			"Pack warm clothes for early morning and evening",
			"Ideal for outdoor activities and trekking",
		},
		trip.SeasonSummer: {
			"Very hot during day, plan indoor activities during peak hours",
			"Carry sun protection and stay hydrated",
			"Early morning and evening best for outdoor activities",
		},
		trip.SeasonMonsoon: {
			"Heavy rainfall may affect travel plans",
			"Roads to remote areas may be difficult",
			"Beautiful green landscapes but limited outdoor activities",
		},
		trip.SeasonPostMonsoon: {
			"Pleasant weather with clear skies",
			"Excellent for photography and sightseeing",
			"Waterfalls at their most beautiful",
		},
	}
	if out, ok := m[season]; ok {
		return out
	}
	return m[trip.SeasonWinter]
}

func bestTimeToVisit(_ string) string {
	return "October to March (Winter and Post-Monsoon) - pleasant weather, ideal for sightseeing and outdoor activities"
}

func uvIndexFor(weatherID int) int {
	switch {
	case weatherID >= 200 && weatherID < 300:
		return 2 // Thunderstorm
	case weatherID >= 300 && weatherID < 600:
		return 4 // Drizzle/Rain
	case weatherID >= 600 && weatherID < 700:
		return 3 // Snow
	case weatherID >= 700 && weatherID < 800:
		return 5 // Atmosphere
	case weatherID == 800:
		return 8 // Clear
	default:
		return 6 // Clouds
	}
}
