package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	appmetrics "github.com/planora-ai/planora-api/app/observability/metrics"
	"github.com/planora-ai/planora-api/internal/types"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indian mobile numbers, with optional +91 or 0 prefix.
	phoneRe      = regexp.MustCompile(`^(?:\+91|0)?[6-9]\d{9}$`)
	phoneCleanRe = regexp.MustCompile(`[\s\-\(\)]`)
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError carries a caller-facing message for a rejected request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Service handles booking intake and lifecycle.
type Service interface {
	// CreateBooking validates and stores a booking request. Validation
	// failures return a *ValidationError.
	CreateBooking(ctx context.Context, req types.BookingRequest) (*types.BookingResponse, error)
	GetBooking(ctx context.Context, id string) (*types.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	ListBookings(ctx context.Context) ([]types.Booking, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger  *slog.Logger
	repo    Repository
	metrics *appmetrics.AppMetrics
	now     func() time.Time
}

func NewService(repo Repository, metrics *appmetrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

func (s *ServiceImpl) CreateBooking(ctx context.Context, req types.BookingRequest) (*types.BookingResponse, error) {
	ctx, span := otel.Tracer("BookingService").Start(ctx, "CreateBooking")
	defer span.End()

	l := s.logger.With(slog.String("method", "CreateBooking"))

	if s.metrics != nil {
		s.metrics.BookingRequestsTotal.Add(ctx, 1)
	}

	if err := s.validate(req); err != nil {
		span.SetStatus(codes.Error, "Validation failed")
		return nil, err
	}

	booking := types.Booking{
		ID:              newBookingID(s.now()),
		TripID:          req.TripID,
		HotelName:       req.Details.Name,
		Location:        req.Details.Location,
		CheckIn:         req.Details.Dates.CheckIn,
		CheckOut:        req.Details.Dates.CheckOut,
		Guests:          req.Details.Guests,
		ContactName:     req.ContactInfo.Name,
		ContactEmail:    req.ContactInfo.Email,
		ContactPhone:    req.ContactInfo.Phone,
		SpecialRequests: req.Details.SpecialRequests,
		Status:          types.BookingStatusPending,
		CreatedAt:       s.now(),
	}

	if err := s.repo.SaveBooking(ctx, booking); err != nil {
		l.ErrorContext(ctx, "Failed to save booking", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Save failed")
		return nil, err
	}

	l.InfoContext(ctx, "Booking created", slog.String("booking_id", booking.ID))
	span.SetStatus(codes.Ok, "Booking created")

	return &types.BookingResponse{
		Success:             true,
		BookingID:           booking.ID,
		ConfirmationDetails: confirmationDetails(req),
	}, nil
}

func (s *ServiceImpl) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	ctx, span := otel.Tracer("BookingService").Start(ctx, "GetBooking")
	defer span.End()
	return s.repo.FindBookingByID(ctx, id)
}

func (s *ServiceImpl) CancelBooking(ctx context.Context, id string) error {
	ctx, span := otel.Tracer("BookingService").Start(ctx, "CancelBooking")
	defer span.End()
	return s.repo.UpdateBookingStatus(ctx, id, types.BookingStatusCancelled)
}

func (s *ServiceImpl) ListBookings(ctx context.Context) ([]types.Booking, error) {
	ctx, span := otel.Tracer("BookingService").Start(ctx, "ListBookings")
	defer span.End()
	return s.repo.ListBookings(ctx)
}

// validate checks the intake form in a fixed order, mirroring the order
// callers see errors in.
func (s *ServiceImpl) validate(req types.BookingRequest) error {
	if req.Details.Name == "" {
		return &ValidationError{Message: "Hotel/service name is required"}
	}
	if req.Details.Dates.CheckIn == "" || req.Details.Dates.CheckOut == "" {
		return &ValidationError{Message: "Check-in and check-out dates are required"}
	}
	if req.ContactInfo.Name == "" || req.ContactInfo.Email == "" || req.ContactInfo.Phone == "" {
		return &ValidationError{Message: "Contact information (name, email, phone) is required"}
	}
	if !emailRe.MatchString(req.ContactInfo.Email) {
		return &ValidationError{Message: "Valid email address is required"}
	}
	cleanPhone := phoneCleanRe.ReplaceAllString(req.ContactInfo.Phone, "")
	if !phoneRe.MatchString(cleanPhone) {
		return &ValidationError{Message: "Valid Indian phone number is required"}
	}
	if !isoDateRe.MatchString(req.Details.Dates.CheckIn) || !isoDateRe.MatchString(req.Details.Dates.CheckOut) {
		return &ValidationError{Message: "Invalid check-in or check-out date"}
	}
	checkIn, errIn := time.Parse("2006-01-02", req.Details.Dates.CheckIn)
	checkOut, errOut := time.Parse("2006-01-02", req.Details.Dates.CheckOut)
	if errIn != nil || errOut != nil {
		return &ValidationError{Message: "Invalid check-in or check-out date"}
	}
	today, _ := time.Parse("2006-01-02", s.now().Format("2006-01-02"))
	if checkIn.Before(today) {
		return &ValidationError{Message: "Check-in date cannot be in the past"}
	}
	if !checkOut.After(checkIn) {
		return &ValidationError{Message: "Check-out date must be after check-in date"}
	}
	guests := req.Details.Guests
	if guests < 1 || guests > 10 {
		return &ValidationError{Message: "Guests must be between 1 and 10"}
	}
	return nil
}

// newBookingID builds IDs like JHMDQ3K2A1B2C3: "JH" plus base36 timestamp
// and a random base36 suffix, uppercased.
func newBookingID(now time.Time) string {
	timestamp := strconv.FormatInt(now.UnixMilli(), 36)
	random := strconv.FormatInt(rand.Int63n(36*36*36*36*36*36), 36)
	return strings.ToUpper("JH" + timestamp + random)
}

func confirmationDetails(req types.BookingRequest) *types.ConfirmationDetails {
	return &types.ConfirmationDetails{
		ProviderContact: providerContact(req.Details.Name),
		NextSteps: []string{
			fmt.Sprintf("Your booking request for %s has been submitted", req.Details.Name),
			"The hotel will contact you within 2–4 hours to confirm availability",
			fmt.Sprintf("Check-in: %s, Check-out: %s", formatDateLocal(req.Details.Dates.CheckIn), formatDateLocal(req.Details.Dates.CheckOut)),
			fmt.Sprintf("Number of guests: %d", req.Details.Guests),
			"Keep your booking ID ready for reference",
			"You will receive a confirmation email shortly",
		},
		PaymentInfo:        "Payment details will be shared by the hotel during confirmation call",
		CancellationPolicy: "Cancellation policy varies by hotel. Please confirm with the property directly.",
	}
}

func providerContact(hotelName string) string {
	name := strings.ToLower(hotelName)
	switch {
	case strings.Contains(name, "tourist lodge"):
		return "Jharkhand Tourism: 0651-2331828"
	case strings.Contains(name, "heritage"):
		return "Heritage Hotels: Contact via your booking reference"
	case strings.Contains(name, "resort"):
		return "Resort will confirm via email and phone"
	default:
		return "Hotel will contact you directly using provided details"
	}
}

func formatDateLocal(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format("02 Jan 2006")
}

// IsValidationError reports whether err is a caller-facing validation
// failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
