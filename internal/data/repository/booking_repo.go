package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-screening/internal/data/entity"
	"cinema-screening/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int, screeningID *uuid.UUID) ([]*entity.Booking, error)
	CountAll(ctx context.Context, screeningID *uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindByScreeningAndSeat(ctx context.Context, screeningID, seatID uuid.UUID) (*entity.Booking, error)
	FindBookedSeatIDs(ctx context.Context, screeningID uuid.UUID) ([]uuid.UUID, error)
	CountBySeatID(ctx context.Context, seatID uuid.UUID) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, screening_id, seat_id, customer_name, customer_email, created_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.ScreeningID,
		&booking.SeatID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create inserts the booking. A second booking for the same screening and
// seat fails on uq_bookings_screening_seat and comes back as ErrDuplicate.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, screening_id, seat_id, customer_name, customer_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ScreeningID,
		booking.SeatID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CreatedAt,
	)

	if err != nil {
		err = translatePgError(err)
		if errors.Is(err, ErrDuplicate) {
			r.log.Warn("Seat already booked",
				zap.String("screening_id", booking.ScreeningID.String()),
				zap.String("seat_id", booking.SeatID.String()),
			)
		} else {
			r.log.Error("Failed to create booking",
				zap.Error(err),
				zap.String("screening_id", booking.ScreeningID.String()),
				zap.String("seat_id", booking.SeatID.String()),
			)
		}
		return fmt.Errorf("create booking for seat %s: %w", booking.SeatID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int, screeningID *uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []interface{}{}

	if screeningID != nil {
		query += ` WHERE screening_id = $1`
		args = append(args, *screeningID)
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountAll(ctx context.Context, screeningID *uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`
	args := []interface{}{}

	if screeningID != nil {
		query += ` WHERE screening_id = $1`
		args = append(args, *screeningID)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) FindByScreeningAndSeat(ctx context.Context, screeningID, seatID uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE screening_id = $1 AND seat_id = $2`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, screeningID, seatID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by screening and seat",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
			zap.String("seat_id", seatID.String()),
		)
		return nil, fmt.Errorf("find booking for screening %s seat %s: %w",
			screeningID.String(), seatID.String(), err)
	}

	return booking, nil
}

// FindBookedSeatIDs returns the ids of every seat booked for the screening.
func (r *bookingRepository) FindBookedSeatIDs(ctx context.Context, screeningID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT seat_id FROM bookings WHERE screening_id = $1`, screeningID)
	if err != nil {
		r.log.Error("Failed to find booked seat IDs",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, fmt.Errorf("find booked seat IDs for screening %s: %w", screeningID.String(), err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("collect booked seat IDs: %w", err)
	}

	return ids, nil
}

// CountBySeatID counts bookings of a seat across all screenings.
func (r *bookingRepository) CountBySeatID(ctx context.Context, seatID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE seat_id = $1`, seatID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by seat",
			zap.Error(err),
			zap.String("seat_id", seatID.String()),
		)
		return 0, fmt.Errorf("count bookings of seat %s: %w", seatID.String(), err)
	}

	return count, nil
}
