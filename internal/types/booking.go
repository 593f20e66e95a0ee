package types

import "time"

// BookingRequest is the caller-supplied booking intake form.
type BookingRequest struct {
	TripID      string         `json:"tripId,omitempty"`
	Details     BookingDetails `json:"details"`
	ContactInfo ContactInfo    `json:"contactInfo"`
}

type BookingDetails struct {
	Name            string       `json:"name"`
	Location        string       `json:"location,omitempty"`
	Dates           BookingDates `json:"dates"`
	Guests          int          `json:"guests"`
	SpecialRequests string       `json:"specialRequests,omitempty"`
}

type BookingDates struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is a stored booking record.
type Booking struct {
	ID              string    `json:"id"`
	TripID          string    `json:"tripId,omitempty"`
	HotelName       string    `json:"hotelName"`
	Location        string    `json:"location,omitempty"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	Guests          int       `json:"guests"`
	ContactName     string    `json:"contactName"`
	ContactEmail    string    `json:"contactEmail"`
	ContactPhone    string    `json:"contactPhone"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Booking lifecycle states.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// BookingResponse is the envelope written by the booking handler.
type BookingResponse struct {
	Success             bool                 `json:"success"`
	BookingID           string               `json:"bookingId,omitempty"`
	Error               string               `json:"error,omitempty"`
	ConfirmationDetails *ConfirmationDetails `json:"confirmationDetails,omitempty"`
}

type ConfirmationDetails struct {
	ProviderContact    string   `json:"providerContact"`
	NextSteps          []string `json:"nextSteps"`
	PaymentInfo        string   `json:"paymentInfo"`
	CancellationPolicy string   `json:"cancellationPolicy"`
}
