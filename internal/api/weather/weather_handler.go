package weather

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/planora-ai/planora-api/internal/api"
	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/types"
)

type Handler struct {
	logger    *slog.Logger
	service   Service
	gazetteer destinations.Service
}

func NewWeatherHandler(service Service, gazetteer destinations.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		gazetteer: gazetteer,
	}
}

// GetIntelligence handles GET /weather/intelligence?destination=...
func (h *Handler) GetIntelligence(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("WeatherHandler").Start(r.Context(), "GetIntelligence")
	defer span.End()

	destination := r.URL.Query().Get("destination")
	if !h.gazetteer.IsSupported(destination) {
		span.SetStatus(codes.Error, "Unsupported destination")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Only Jharkhand destinations are supported")
		return
	}

	intel, err := h.service.GetWeatherIntelligence(ctx, destination)
	if err != nil && !errors.Is(err, types.ErrProviderUnavailable) {
		h.logger.ErrorContext(ctx, "Weather intelligence failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Weather lookup failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch weather data")
		return
	}

	// Provider failures still carry curated seasonal guidance.
	span.SetStatus(codes.Ok, "Weather intelligence returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success":      true,
		"destination":  h.gazetteer.Normalize(destination),
		"live":         err == nil,
		"intelligence": intel,
	})
}

// GetForecast handles GET /weather/forecast?destination=...
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("WeatherHandler").Start(r.Context(), "GetForecast")
	defer span.End()

	destination := r.URL.Query().Get("destination")
	if !h.gazetteer.IsSupported(destination) {
		span.SetStatus(codes.Error, "Unsupported destination")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Only Jharkhand destinations are supported")
		return
	}

	forecast, err := h.service.GetWeeklyForecast(ctx, destination)
	if err != nil && !errors.Is(err, types.ErrProviderUnavailable) {
		h.logger.ErrorContext(ctx, "Weekly forecast failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Forecast lookup failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch forecast")
		return
	}

	span.SetStatus(codes.Ok, "Forecast returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success":     true,
		"destination": h.gazetteer.Normalize(destination),
		"live":        err == nil,
		"forecast":    forecast,
	})
}
