package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/planora-ai/planora-api/internal/api"
	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/types"
)

// Enricher attaches live data to a generated plan.
type Enricher interface {
	Enrich(ctx context.Context, destination string, plan *types.CompleteTripPlan) types.EnhancementStats
}

type Handler struct {
	logger     *slog.Logger
	service    Service
	enrichment Enricher
	gazetteer  destinations.Service
	minBudget  int
	maxDays    int
}

func NewTripHandler(service Service, enrichmentSvc Enricher, gazetteer destinations.Service, minBudget, maxDays int, logger *slog.Logger) *Handler {
	if minBudget <= 0 {
		minBudget = 5000
	}
	if maxDays <= 0 {
		maxDays = 15
	}
	return &Handler{
		logger:     logger,
		service:    service,
		enrichment: enrichmentSvc,
		gazetteer:  gazetteer,
		minBudget:  minBudget,
		maxDays:    maxDays,
	}
}

// PlanTrip handles POST /trips/plan - validates the request, generates the
// plan and enriches it with live data
func (h *Handler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "PlanTrip")
	defer span.End()

	l := h.logger.With(slog.String("method", "PlanTrip"))

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Powered-By", "PLANORA AI")

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)

	// Validation gate. Checks run in a fixed order so callers always see
	// the most fundamental problem first.
	if req.Destination == "" || req.Days == 0 || req.Budget == "" {
		span.SetStatus(codes.Error, "Missing required fields")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Missing required fields: destination, days, and budget")
		return
	}
	if req.Days < 1 || req.Days > h.maxDays {
		span.SetStatus(codes.Error, "Days out of range")
		api.ErrorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("Days must be between 1 and %d", h.maxDays))
		return
	}
	budgetNum, err := ParseINR(req.Budget)
	if err != nil || budgetNum < h.minBudget {
		span.SetStatus(codes.Error, "Budget below minimum")
		api.ErrorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("Budget must be at least %s", FormatINR(h.minBudget)))
		return
	}
	if !h.gazetteer.IsSupported(req.Destination) {
		span.SetStatus(codes.Error, "Unsupported destination")
		api.ErrorResponse(w, r, http.StatusBadRequest,
			"Only Jharkhand destinations are supported. Please enter a valid Jharkhand location like Ranchi, Deoghar, Netarhat, Jamshedpur, Hazaribagh, or Betla.")
		return
	}

	l.InfoContext(ctx, "Planning trip",
		slog.String("destination", req.Destination),
		slog.Int("days", req.Days),
		slog.String("budget", req.Budget),
	)

	plan, err := h.service.GenerateTripPlan(ctx, req)
	if err != nil {
		if errors.Is(err, types.ErrUnsupportedDestination) {
			span.SetStatus(codes.Error, "Unsupported destination")
			api.ErrorResponse(w, r, http.StatusBadRequest, "Only Jharkhand destinations are supported")
			return
		}
		l.ErrorContext(ctx, "Trip plan generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Plan generation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate trip plan")
		return
	}

	stats := h.enrichment.Enrich(ctx, req.Destination, plan)

	l.InfoContext(ctx, "Trip plan enhanced",
		slog.Int("reviews_found", stats.ReviewsFound),
		slog.Int("guides_found", stats.GuidesFound),
		slog.Int("news_found", stats.NewsFound),
		slog.Bool("weather_enhanced", stats.WeatherEnhanced),
	)
	span.SetStatus(codes.Ok, "Trip plan generated")

	api.WriteJSONResponse(w, r, http.StatusOK, types.PlanTripResponse{
		Success:          true,
		TripID:           newTripID(),
		TripPlan:         plan,
		EnhancementStats: stats,
		Message:          fmt.Sprintf("Trip plan generated successfully for %s!", req.Destination),
	})
}

func newTripID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("trip_%d_%s", time.Now().UnixMilli(), suffix)
}
