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

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	CreateBatchIfEmpty(ctx context.Context, roomID uuid.UUID, seats []*entity.Seat) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Seat, error)
	FindAll(ctx context.Context, limit, offset int, roomID *uuid.UUID) ([]*entity.Seat, error)
	CountAll(ctx context.Context, roomID *uuid.UUID) (int64, error)
	CountByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error)
	Update(ctx context.Context, seat *entity.Seat) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

const seatColumns = `id, room_id, seat_row, seat_number, created_at, updated_at`

func scanSeat(row pgx.Row) (*entity.Seat, error) {
	var seat entity.Seat
	err := row.Scan(
		&seat.ID,
		&seat.RoomID,
		&seat.Row,
		&seat.Number,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *seatRepository) collect(rows pgx.Rows) ([]*entity.Seat, error) {
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (id, room_id, seat_row, seat_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.RoomID,
		seat.Row,
		seat.Number,
		seat.CreatedAt,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("room_id", seat.RoomID.String()),
			zap.String("seat", seat.Label()),
		)
		return fmt.Errorf("create seat %s: %w", seat.Label(), translatePgError(err))
	}

	return nil
}

// CreateBatchIfEmpty inserts seats for a room in one transaction, but only when
// the room has no seats yet. The room row is locked so two concurrent batches
// cannot both see an empty room. It returns the number of seats that already
// existed; a non-zero count means nothing was inserted.
func (r *seatRepository) CreateBatchIfEmpty(ctx context.Context, roomID uuid.UUID, seats []*entity.Seat) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seat batch: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var locked uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("room %s: %w", roomID.String(), ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("lock room %s: %w", roomID.String(), err)
	}

	var existing int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM seats WHERE room_id = $1`, roomID).Scan(&existing); err != nil {
		return 0, fmt.Errorf("count seats in room %s: %w", roomID.String(), err)
	}
	if existing > 0 {
		return existing, nil
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"seats"},
		[]string{"id", "room_id", "seat_row", "seat_number", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(seats), func(i int) ([]any, error) {
			s := seats[i]
			return []any{s.ID, s.RoomID, s.Row, s.Number, s.CreatedAt, s.UpdatedAt}, nil
		}),
	)
	if err != nil {
		r.log.Error("Failed to copy seat batch",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Int("seats", len(seats)),
		)
		return 0, fmt.Errorf("insert seat batch for room %s: %w", roomID.String(), translatePgError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit seat batch: %w", err)
	}

	r.log.Info("Seat batch created",
		zap.String("room_id", roomID.String()),
		zap.Int64("seats", copied),
	)
	return 0, nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats WHERE id = $1`

	seat, err := scanSeat(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return seat, nil
}

func (r *seatRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT ` + seatColumns + `
		FROM seats
		WHERE room_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find seats by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find seats by room ID %s: %w", roomID.String(), err)
	}

	return r.collect(rows)
}

func (r *seatRepository) FindAll(ctx context.Context, limit, offset int, roomID *uuid.UUID) ([]*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats`
	args := []interface{}{}

	if roomID != nil {
		query += ` WHERE room_id = $1`
		args = append(args, *roomID)
	}

	query += fmt.Sprintf(" ORDER BY room_id, seat_row, seat_number LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all seats",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all seats: %w", err)
	}

	return r.collect(rows)
}

func (r *seatRepository) CountAll(ctx context.Context, roomID *uuid.UUID) (int64, error) {
	if roomID != nil {
		return r.CountByRoomID(ctx, *roomID)
	}

	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM seats`).Scan(&count); err != nil {
		r.log.Error("Failed to count seats", zap.Error(err))
		return 0, fmt.Errorf("count seats: %w", err)
	}

	return count, nil
}

func (r *seatRepository) CountByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM seats WHERE room_id = $1`, roomID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count seats by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count seats by room ID %s: %w", roomID.String(), err)
	}

	return count, nil
}

func (r *seatRepository) Update(ctx context.Context, seat *entity.Seat) error {
	query := `
		UPDATE seats
		SET room_id = $2, seat_row = $3, seat_number = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.RoomID,
		seat.Row,
		seat.Number,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update seat",
			zap.Error(err),
			zap.String("seat_id", seat.ID.String()),
		)
		return fmt.Errorf("update seat %s: %w", seat.ID.String(), translatePgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s: %w", seat.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *seatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM seats WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete seat",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return fmt.Errorf("delete seat %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
