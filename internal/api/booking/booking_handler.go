package booking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/planora-ai/planora-api/internal/api"
	"github.com/planora-ai/planora-api/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewBookingHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// CreateBooking handles POST /bookings - validates and stores a booking request
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BookingHandler").Start(r.Context(), "CreateBooking")
	defer span.End()

	l := h.logger.With(slog.String("method", "CreateBooking"))

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Powered-By", "PLANORA AI")

	var req types.BookingRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.WriteJSONResponse(w, r, http.StatusBadRequest, types.BookingResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	resp, err := h.service.CreateBooking(ctx, req)
	if err != nil {
		if IsValidationError(err) {
			span.SetStatus(codes.Error, "Validation failed")
			api.WriteJSONResponse(w, r, http.StatusBadRequest, types.BookingResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		l.ErrorContext(ctx, "Booking processing failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Booking failed")
		api.WriteJSONResponse(w, r, http.StatusInternalServerError, types.BookingResponse{
			Success: false,
			Error:   "Failed to process booking request. Please try again or contact support.",
		})
		return
	}

	span.SetStatus(codes.Ok, "Booking created")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// GetBooking handles GET /bookings/{id}
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BookingHandler").Start(r.Context(), "GetBooking")
	defer span.End()

	id := chi.URLParam(r, "id")
	booking, err := h.service.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			span.SetStatus(codes.Error, "Booking not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "Booking not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to fetch booking", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Lookup failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	span.SetStatus(codes.Ok, "Booking returned")
	api.WriteJSONResponse(w, r, http.StatusOK, booking)
}

// CancelBooking handles DELETE /bookings/{id}
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BookingHandler").Start(r.Context(), "CancelBooking")
	defer span.End()

	id := chi.URLParam(r, "id")
	if err := h.service.CancelBooking(ctx, id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			span.SetStatus(codes.Error, "Booking not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "Booking not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to cancel booking", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cancel failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	span.SetStatus(codes.Ok, "Booking cancelled")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  types.BookingStatusCancelled,
	})
}

// ListBookings handles GET /bookings
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BookingHandler").Start(r.Context(), "ListBookings")
	defer span.End()

	bookings, err := h.service.ListBookings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list bookings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "List failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	if bookings == nil {
		bookings = []types.Booking{}
	}

	span.SetStatus(codes.Ok, "Bookings returned")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success":  true,
		"bookings": bookings,
	})
}
