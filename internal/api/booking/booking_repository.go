package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/planora-ai/planora-api/internal/types"
)

// PGXPool is the slice of pgxpool.Pool the repository uses. pgxmock
// satisfies it in tests.
type PGXPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Repository = (*PostgresRepository)(nil)

type Repository interface {
	SaveBooking(ctx context.Context, booking types.Booking) error
	FindBookingByID(ctx context.Context, id string) (*types.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) error
	ListBookings(ctx context.Context) ([]types.Booking, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	pgpool PGXPool
}

func NewBookingRepository(pgpool PGXPool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresRepository) SaveBooking(ctx context.Context, booking types.Booking) error {
	query := `
        INSERT INTO bookings (
            id, trip_id, destination, check_in, check_out, guests,
            contact_name, contact_email, contact_phone, special_requests, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.pgpool.Exec(ctx, query,
		booking.ID, booking.TripID, booking.HotelName, booking.CheckIn, booking.CheckOut,
		booking.Guests, booking.ContactName, booking.ContactEmail, booking.ContactPhone,
		booking.SpecialRequests, booking.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindBookingByID(ctx context.Context, id string) (*types.Booking, error) {
	query := `
        SELECT id, trip_id, destination, check_in::text, check_out::text, guests,
               contact_name, contact_email, contact_phone, special_requests, status, created_at
        FROM bookings
        WHERE id = $1
    `
	var b types.Booking
	err := r.pgpool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.TripID, &b.HotelName, &b.CheckIn, &b.CheckOut, &b.Guests,
		&b.ContactName, &b.ContactEmail, &b.ContactPhone, &b.SpecialRequests,
		&b.Status, &b.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &b, nil
}

func (r *PostgresRepository) UpdateBookingStatus(ctx context.Context, id, status string) error {
	tag, err := r.pgpool.Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListBookings(ctx context.Context) ([]types.Booking, error) {
	query := `
        SELECT id, trip_id, destination, check_in::text, check_out::text, guests,
               contact_name, contact_email, contact_phone, special_requests, status, created_at
        FROM bookings
        ORDER BY created_at DESC
    `
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var out []types.Booking
	for rows.Next() {
		var b types.Booking
		if err := rows.Scan(
			&b.ID, &b.TripID, &b.HotelName, &b.CheckIn, &b.CheckOut, &b.Guests,
			&b.ContactName, &b.ContactEmail, &b.ContactPhone, &b.SpecialRequests,
			&b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading bookings: %w", err)
	}
	return out, nil
}
