package chat

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

func NewChatHandler(service Service, gazetteer destinations.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		gazetteer: gazetteer,
	}
}

// Chat handles POST /chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "Chat")
	defer span.End()

	l := h.logger.With(slog.String("method", "Chat"))

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Powered-By", "PLANORA AI")

	var req types.ChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.WriteJSONResponse(w, r, http.StatusBadRequest, types.ChatErrorResponse{
			Error:        "Invalid request body.",
			Code:         "BAD_REQUEST",
			Hint:         "Send a JSON body with a messages array.",
			Destinations: h.gazetteer.List(),
		})
		return
	}

	if len(req.Messages) == 0 {
		span.SetStatus(codes.Error, "No messages")
		api.WriteJSONResponse(w, r, http.StatusBadRequest, types.ChatErrorResponse{
			Error:        "No messages provided.",
			Code:         "BAD_REQUEST",
			Hint:         "Send at least one user message mentioning a Jharkhand destination.",
			Destinations: h.gazetteer.List(),
		})
		return
	}

	resp, err := h.service.Chat(ctx, req)
	if err != nil {
		if errors.Is(err, ErrOutOfScope) {
			span.SetStatus(codes.Error, "Out of scope")
			api.WriteJSONResponse(w, r, http.StatusBadRequest, types.ChatErrorResponse{
				Error: "This planner supports Jharkhand destinations only (e.g., Ranchi, Deoghar, Netarhat, Jamshedpur, Hazaribagh, Betla). Please include a Jharkhand location.",
				Code:  "JHARKHAND_ONLY",
				Hint:         "Add a supported destination in your question.",
				Destinations: h.gazetteer.List(),
			})
			return
		}
		l.ErrorContext(ctx, "Chat request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Chat failed")
		api.WriteJSONResponse(w, r, http.StatusInternalServerError, types.ChatErrorResponse{
			Error: "Failed to process chat request.",
			Code:  "SERVER_ERROR",
			Hint:  "Please retry in a moment. If the issue persists, try switching the model.",
		})
		return
	}

	span.SetStatus(codes.Ok, "Chat reply returned")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
