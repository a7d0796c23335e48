package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinema-screening/internal/data/entity"
	"cinema-screening/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ScreeningFilter narrows List queries. Nil fields are ignored.
type ScreeningFilter struct {
	RoomID  *uuid.UUID
	MovieID *uuid.UUID
}

type ScreeningRepository interface {
	Create(ctx context.Context, screening *entity.Screening) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error)
	FindIDsByRoomID(ctx context.Context, roomID uuid.UUID) ([]uuid.UUID, error)
	FindAll(ctx context.Context, limit, offset int, filter ScreeningFilter) ([]*entity.Screening, error)
	CountAll(ctx context.Context, filter ScreeningFilter) (int64, error)
	Update(ctx context.Context, screening *entity.Screening) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

const screeningSelect = `
	SELECT sc.id, sc.movie_id, sc.room_id, sc.start_time, sc.created_at, sc.updated_at,
	       m.title, m.duration_in_minutes, r.name
	FROM screenings sc
	JOIN movies m ON m.id = sc.movie_id
	JOIN rooms r ON r.id = sc.room_id
`

func scanScreening(row pgx.Row) (*entity.Screening, error) {
	var screening entity.Screening
	err := row.Scan(
		&screening.ID,
		&screening.MovieID,
		&screening.RoomID,
		&screening.StartTime,
		&screening.CreatedAt,
		&screening.UpdatedAt,
		&screening.MovieTitle,
		&screening.MovieDurationMins,
		&screening.RoomName,
	)
	if err != nil {
		return nil, err
	}
	return &screening, nil
}

func (r *screeningRepository) collect(rows pgx.Rows) ([]*entity.Screening, error) {
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		screening, err := scanScreening(rows)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, screening)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate screening rows: %w", err)
	}

	return screenings, nil
}

func (r *screeningRepository) Create(ctx context.Context, screening *entity.Screening) error {
	query := `
		INSERT INTO screenings (id, movie_id, room_id, start_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		screening.ID,
		screening.MovieID,
		screening.RoomID,
		screening.StartTime,
		screening.CreatedAt,
		screening.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
			zap.String("room_id", screening.RoomID.String()),
			zap.Time("start_time", screening.StartTime),
		)
		return fmt.Errorf("create screening for movie %s room %s: %w",
			screening.MovieID.String(), screening.RoomID.String(), translatePgError(err))
	}

	return nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	screening, err := scanScreening(r.db.QueryRow(ctx, screeningSelect+` WHERE sc.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return screening, nil
}

func (r *screeningRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error) {
	rows, err := r.db.Query(ctx, screeningSelect+` WHERE sc.room_id = $1 ORDER BY sc.start_time, sc.id`, roomID)
	if err != nil {
		r.log.Error("Failed to find screenings by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find screenings by room ID %s: %w", roomID.String(), err)
	}

	return r.collect(rows)
}

func (r *screeningRepository) FindIDsByRoomID(ctx context.Context, roomID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM screenings WHERE room_id = $1`, roomID)
	if err != nil {
		r.log.Error("Failed to find screening IDs by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find screening IDs by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("collect screening IDs: %w", err)
	}

	return ids, nil
}

func screeningWhere(filter ScreeningFilter) (string, []interface{}) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	if filter.RoomID != nil {
		args = append(args, *filter.RoomID)
		where.WriteString(fmt.Sprintf(" AND sc.room_id = $%d", len(args)))
	}
	if filter.MovieID != nil {
		args = append(args, *filter.MovieID)
		where.WriteString(fmt.Sprintf(" AND sc.movie_id = $%d", len(args)))
	}

	return where.String(), args
}

func (r *screeningRepository) FindAll(ctx context.Context, limit, offset int, filter ScreeningFilter) ([]*entity.Screening, error) {
	where, args := screeningWhere(filter)
	query := screeningSelect + where +
		fmt.Sprintf(" ORDER BY sc.start_time, sc.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all screenings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all screenings: %w", err)
	}

	return r.collect(rows)
}

func (r *screeningRepository) CountAll(ctx context.Context, filter ScreeningFilter) (int64, error) {
	where, args := screeningWhere(filter)

	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM screenings sc`+where, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count screenings", zap.Error(err))
		return 0, fmt.Errorf("count screenings: %w", err)
	}

	return count, nil
}

func (r *screeningRepository) Update(ctx context.Context, screening *entity.Screening) error {
	query := `
		UPDATE screenings
		SET movie_id = $2, room_id = $3, start_time = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		screening.ID,
		screening.MovieID,
		screening.RoomID,
		screening.StartTime,
		screening.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update screening",
			zap.Error(err),
			zap.String("screening_id", screening.ID.String()),
		)
		return fmt.Errorf("update screening %s: %w", screening.ID.String(), translatePgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %s: %w", screening.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *screeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM screenings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete screening",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return fmt.Errorf("delete screening %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Screening deleted", zap.String("screening_id", id.String()))
	return nil
}
