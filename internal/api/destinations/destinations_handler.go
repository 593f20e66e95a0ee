package destinations

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/planora-ai/planora-api/internal/api"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewDestinationsHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// GetDestinations handles GET /destinations - returns the supported destinations
func (h *Handler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationsHandler").Start(r.Context(), "GetDestinations")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetDestinations"))

	locations := h.service.List()
	l.DebugContext(ctx, "Returning supported destinations", slog.Int("count", len(locations)))
	span.SetStatus(codes.Ok, "Destinations returned successfully")

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success":      true,
		"destinations": locations,
	})
}

// CheckDestination handles GET /destinations/check?destination=... - resolves a
// free-text destination against the gazetteer
func (h *Handler) CheckDestination(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DestinationsHandler").Start(r.Context(), "CheckDestination")
	defer span.End()

	l := h.logger.With(slog.String("method", "CheckDestination"))

	destination := r.URL.Query().Get("destination")
	if destination == "" {
		span.SetStatus(codes.Error, "Missing destination parameter")
		api.ErrorResponse(w, r, http.StatusBadRequest, "destination query parameter is required")
		return
	}

	canonical, ok := h.service.Resolve(destination)
	l.DebugContext(ctx, "Resolved destination",
		slog.String("destination", destination),
		slog.String("canonical", canonical),
		slog.Bool("supported", ok),
	)
	span.SetStatus(codes.Ok, "Destination checked")

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success":     true,
		"destination": destination,
		"canonical":   canonical,
		"supported":   ok,
	})
}
