package search

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

func NewSearchHandler(service Service, gazetteer destinations.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		gazetteer: gazetteer,
	}
}

// SearchHotels handles GET /hotels?destination=...&budget=...
func (h *Handler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SearchHandler").Start(r.Context(), "SearchHotels")
	defer span.End()

	destination := r.URL.Query().Get("destination")
	if !h.gazetteer.IsSupported(destination) {
		span.SetStatus(codes.Error, "Unsupported destination")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Only Jharkhand destinations are supported")
		return
	}
	budget := r.URL.Query().Get("budget")

	hotels, err := h.service.SearchHotels(ctx, destination, budget)
	if err != nil && !errors.Is(err, types.ErrProviderUnavailable) {
		h.logger.ErrorContext(ctx, "Hotel search failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Hotel search failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to search hotels")
		return
	}

	span.SetStatus(codes.Ok, "Hotels returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success":     true,
		"destination": h.gazetteer.Normalize(destination),
		"live":        err == nil,
		"hotels":      hotels,
	})
}
