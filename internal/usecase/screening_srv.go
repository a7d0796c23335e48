package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-screening/internal/cache"
	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/dto/response"
	"cinema-screening/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScreeningService interface {
	GetScreenings(ctx context.Context, req *request.PaginatedRequest, roomID, movieID *string) (*response.PaginatedResponse[response.ScreeningResponse], error)
	GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error)
	CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningUpdateRequest) (*response.ScreeningResponse, error)
	DeleteScreening(ctx context.Context, screeningID string) error

	// GetSeatStatus lists every seat of the screening's room, ordered by row
	// and number, flagged booked when a booking exists for this screening.
	GetSeatStatus(ctx context.Context, screeningID string) ([]response.SeatStatusResponse, error)
}

type screeningService struct {
	repo     *repository.Repository
	seatMaps cache.SeatMapCache
	log      *zap.Logger
}

func NewScreeningService(repo *repository.Repository, seatMaps cache.SeatMapCache, log *zap.Logger) ScreeningService {
	return &screeningService{
		repo:     repo,
		seatMaps: seatMaps,
		log:      log.With(zap.String("service", "screening")),
	}
}

func (s *screeningService) GetScreenings(ctx context.Context, req *request.PaginatedRequest, roomID, movieID *string) (*response.PaginatedResponse[response.ScreeningResponse], error) {
	var (
		filter repository.ScreeningFilter
		err    error
	)
	if filter.RoomID, err = parseOptionalID("room", roomID); err != nil {
		return nil, err
	}
	if filter.MovieID, err = parseOptionalID("movie", movieID); err != nil {
		return nil, err
	}

	screenings, err := s.repo.Screening.FindAll(ctx, req.Limit(), req.Offset(), filter)
	if err != nil {
		return nil, fmt.Errorf("get screenings: %w", err)
	}

	total, err := s.repo.Screening.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count screenings: %w", err)
	}

	return response.NewPaginatedResponse(response.ScreeningsToResponse(screenings), req.Page, req.PerPage, total), nil
}

func (s *screeningService) GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error) {
	screening, err := s.findScreening(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

func (s *screeningService) CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, validationFailed(errs)
	}

	movieID, err := parseID("movie", req.MovieID)
	if err != nil {
		return nil, err
	}
	roomID, err := parseID("room", req.RoomID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureMovieAndRoom(ctx, movieID, roomID); err != nil {
		return nil, err
	}

	now := time.Now()
	screening := &entity.Screening{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:   movieID,
		RoomID:    roomID,
		StartTime: req.StartTime,
	}

	if err := s.repo.Screening.Create(ctx, screening); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, notFound("movie or room no longer exists")
		}
		return nil, fmt.Errorf("create screening: %w", err)
	}

	s.log.Info("Screening created",
		zap.String("screening_id", screening.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("room_id", roomID.String()),
		zap.Time("start_time", screening.StartTime),
	)

	// re-read for the joined movie title and room name
	return s.GetScreeningByID(ctx, screening.ID.String())
}

func (s *screeningService) UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningUpdateRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, validationFailed(errs)
	}

	screening, err := s.findScreening(ctx, screeningID)
	if err != nil {
		return nil, err
	}
	previousRoom := screening.RoomID

	if req.MovieID != nil {
		if screening.MovieID, err = parseID("movie", *req.MovieID); err != nil {
			return nil, err
		}
	}
	if req.RoomID != nil {
		if screening.RoomID, err = parseID("room", *req.RoomID); err != nil {
			return nil, err
		}
	}
	if req.StartTime != nil {
		screening.StartTime = *req.StartTime
	}

	if req.MovieID != nil || req.RoomID != nil {
		if err := s.ensureMovieAndRoom(ctx, screening.MovieID, screening.RoomID); err != nil {
			return nil, err
		}
	}
	if screening.RoomID != previousRoom {
		// booked seats belong to the current room
		booked, err := s.repo.Booking.CountAll(ctx, &screening.ID)
		if err != nil {
			return nil, fmt.Errorf("count bookings of screening: %w", err)
		}
		if booked > 0 {
			return nil, conflict("screening has %d bookings and cannot move to another room", booked)
		}
	}
	screening.UpdatedAt = time.Now()

	if err := s.repo.Screening.Update(ctx, screening); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, notFound("screening %s not found", screeningID)
		case errors.Is(err, repository.ErrReference):
			return nil, notFound("movie or room no longer exists")
		}
		return nil, fmt.Errorf("update screening: %w", err)
	}

	if screening.RoomID != previousRoom {
		s.seatMaps.Invalidate(ctx, screening.ID)
	}

	s.log.Info("Screening updated", zap.String("screening_id", screeningID))

	return s.GetScreeningByID(ctx, screeningID)
}

func (s *screeningService) DeleteScreening(ctx context.Context, screeningID string) error {
	id, err := parseID("screening", screeningID)
	if err != nil {
		return err
	}

	if err := s.repo.Screening.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("screening %s not found", screeningID)
		}
		return fmt.Errorf("delete screening: %w", err)
	}

	s.seatMaps.Invalidate(ctx, id)
	return nil
}

func (s *screeningService) GetSeatStatus(ctx context.Context, screeningID string) ([]response.SeatStatusResponse, error) {
	screening, err := s.findScreening(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.seatMaps.Get(ctx, screening.ID); ok {
		return response.SeatStatusesToResponse(cached), nil
	}

	// taken before the database reads so a booking committed meanwhile
	// makes Set discard this snapshot
	version, cacheable := s.seatMaps.Version(ctx, screening.ID)

	seats, err := s.repo.Seat.FindByRoomID(ctx, screening.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get seats of room %s: %w", screening.RoomID, err)
	}

	bookedIDs, err := s.repo.Booking.FindBookedSeatIDs(ctx, screening.ID)
	if err != nil {
		return nil, fmt.Errorf("get booked seats of screening %s: %w", screeningID, err)
	}

	booked := make(map[uuid.UUID]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	statuses := make([]entity.SeatStatus, len(seats))
	for i, seat := range seats {
		_, isBooked := booked[seat.ID]
		statuses[i] = entity.SeatStatus{
			SeatID:   seat.ID,
			Row:      seat.Row,
			Number:   seat.Number,
			IsBooked: isBooked,
		}
	}

	if cacheable {
		s.seatMaps.Set(ctx, screening.ID, version, statuses)
	}

	return response.SeatStatusesToResponse(statuses), nil
}

func (s *screeningService) findScreening(ctx context.Context, screeningID string) (*entity.Screening, error) {
	id, err := parseID("screening", screeningID)
	if err != nil {
		return nil, err
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get screening by id: %w", err)
	}
	if screening == nil {
		return nil, notFound("screening %s not found", screeningID)
	}

	return screening, nil
}

func (s *screeningService) ensureMovieAndRoom(ctx context.Context, movieID, roomID uuid.UUID) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return notFound("movie %s not found", movieID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("get room by id: %w", err)
	}
	if room == nil {
		return notFound("room %s not found", roomID)
	}

	return nil
}
