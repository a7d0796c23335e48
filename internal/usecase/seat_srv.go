package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

const (
	DefaultSeatRows    = 8
	DefaultSeatsPerRow = 10
)

type SeatService interface {
	GetSeats(ctx context.Context, req *request.PaginatedRequest, roomID *string) (*response.PaginatedResponse[response.SeatResponse], error)
	GetSeatByID(ctx context.Context, seatID string) (*response.SeatResponse, error)
	CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error)
	UpdateSeat(ctx context.Context, seatID string, req *request.SeatUpdateRequest) (*response.SeatResponse, error)
	DeleteSeat(ctx context.Context, seatID string) error

	// BulkCreateSeats lays out a grid of seats in a room that has none yet.
	BulkCreateSeats(ctx context.Context, roomID string, req *request.SeatBulkRequest) (*response.SeatBulkResponse, error)
}

type seatService struct {
	repo     *repository.Repository
	seatMaps cache.SeatMapCache
	log      *zap.Logger
}

func NewSeatService(repo *repository.Repository, seatMaps cache.SeatMapCache, log *zap.Logger) SeatService {
	return &seatService{
		repo:     repo,
		seatMaps: seatMaps,
		log:      log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) GetSeats(ctx context.Context, req *request.PaginatedRequest, roomID *string) (*response.PaginatedResponse[response.SeatResponse], error) {
	roomFilter, err := parseOptionalID("room", roomID)
	if err != nil {
		return nil, err
	}

	seats, err := s.repo.Seat.FindAll(ctx, req.Limit(), req.Offset(), roomFilter)
	if err != nil {
		return nil, fmt.Errorf("get seats: %w", err)
	}

	total, err := s.repo.Seat.CountAll(ctx, roomFilter)
	if err != nil {
		return nil, fmt.Errorf("count seats: %w", err)
	}

	data := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		data[i] = response.SeatToResponse(seat)
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *seatService) GetSeatByID(ctx context.Context, seatID string) (*response.SeatResponse, error) {
	seat, err := s.findSeat(ctx, seatID)
	if err != nil {
		return nil, err
	}

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, validationFailed(errs)
	}

	roomID, err := parseID("room", req.RoomID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureRoom(ctx, roomID); err != nil {
		return nil, err
	}

	now := time.Now()
	seat := &entity.Seat{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomID: roomID,
		Row:    strings.ToUpper(req.Row),
		Number: req.Number,
	}

	if err := s.repo.Seat.Create(ctx, seat); err != nil {
		return nil, s.translateWriteError(err, seat)
	}

	s.invalidateRooms(ctx, roomID)

	s.log.Info("Seat created",
		zap.String("seat_id", seat.ID.String()),
		zap.String("room_id", roomID.String()),
		zap.String("seat", seat.Label()),
	)

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) UpdateSeat(ctx context.Context, seatID string, req *request.SeatUpdateRequest) (*response.SeatResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, validationFailed(errs)
	}

	seat, err := s.findSeat(ctx, seatID)
	if err != nil {
		return nil, err
	}
	previousRoom := seat.RoomID

	if req.RoomID != nil {
		if seat.RoomID, err = parseID("room", *req.RoomID); err != nil {
			return nil, err
		}
		if err := s.ensureRoom(ctx, seat.RoomID); err != nil {
			return nil, err
		}
	}
	if seat.RoomID != previousRoom {
		// bookings tie the seat to screenings of its current room
		booked, err := s.repo.Booking.CountBySeatID(ctx, seat.ID)
		if err != nil {
			return nil, fmt.Errorf("count bookings of seat: %w", err)
		}
		if booked > 0 {
			return nil, conflict("seat %s has %d bookings and cannot move to another room", seat.Label(), booked)
		}
	}
	if req.Row != nil {
		seat.Row = strings.ToUpper(*req.Row)
	}
	if req.Number != nil {
		seat.Number = *req.Number
	}
	seat.UpdatedAt = time.Now()

	if err := s.repo.Seat.Update(ctx, seat); err != nil {
		return nil, s.translateWriteError(err, seat)
	}

	s.invalidateRooms(ctx, previousRoom, seat.RoomID)

	s.log.Info("Seat updated", zap.String("seat_id", seatID))

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) DeleteSeat(ctx context.Context, seatID string) error {
	seat, err := s.findSeat(ctx, seatID)
	if err != nil {
		return err
	}

	if err := s.repo.Seat.Delete(ctx, seat.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("seat %s not found", seatID)
		}
		return fmt.Errorf("delete seat: %w", err)
	}

	s.invalidateRooms(ctx, seat.RoomID)
	return nil
}

func (s *seatService) BulkCreateSeats(ctx context.Context, roomID string, req *request.SeatBulkRequest) (*response.SeatBulkResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, validationFailed(errs)
	}

	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}

	rows := req.Rows
	if rows == 0 {
		rows = DefaultSeatRows
	}
	perRow := req.SeatsPerRow
	if perRow == 0 {
		perRow = DefaultSeatsPerRow
	}

	now := time.Now()
	seats := make([]*entity.Seat, 0, rows*perRow)
	for r := 1; r <= rows; r++ {
		label := utils.RowLabel(r)
		for n := 1; n <= perRow; n++ {
			seats = append(seats, &entity.Seat{
				Base: entity.Base{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				RoomID: id,
				Row:    label,
				Number: n,
			})
		}
	}

	existing, err := s.repo.Seat.CreateBatchIfEmpty(ctx, id, seats)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, notFound("room %s not found", roomID)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, conflict("room %s already has seats", roomID)
		}
		return nil, fmt.Errorf("bulk create seats: %w", err)
	}
	if existing > 0 {
		s.log.Warn("Room already has seats, bulk create skipped",
			zap.String("room_id", roomID),
			zap.Int64("existing", existing),
		)
		return nil, conflict("room already has %d seats", existing)
	}

	s.invalidateRooms(ctx, id)

	s.log.Info("Seats created",
		zap.String("room_id", roomID),
		zap.Int("rows", rows),
		zap.Int("seats_per_row", perRow),
	)

	return &response.SeatBulkResponse{
		RoomID:      roomID,
		Rows:        rows,
		SeatsPerRow: perRow,
		Created:     len(seats),
	}, nil
}

func (s *seatService) findSeat(ctx context.Context, seatID string) (*entity.Seat, error) {
	id, err := parseID("seat", seatID)
	if err != nil {
		return nil, err
	}

	seat, err := s.repo.Seat.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seat by id: %w", err)
	}
	if seat == nil {
		return nil, notFound("seat %s not found", seatID)
	}

	return seat, nil
}

func (s *seatService) ensureRoom(ctx context.Context, roomID uuid.UUID) error {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("get room by id: %w", err)
	}
	if room == nil {
		return notFound("room %s not found", roomID)
	}
	return nil
}

func (s *seatService) translateWriteError(err error, seat *entity.Seat) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return conflict("seat %s already exists in room", seat.Label())
	case errors.Is(err, repository.ErrReference):
		return notFound("room %s not found", seat.RoomID)
	case errors.Is(err, repository.ErrNotFound):
		return notFound("seat %s not found", seat.ID)
	}
	return fmt.Errorf("save seat: %w", err)
}

// invalidateRooms drops cached seat maps of every screening in the given rooms.
func (s *seatService) invalidateRooms(ctx context.Context, roomIDs ...uuid.UUID) {
	seen := make(map[uuid.UUID]bool, len(roomIDs))
	for _, roomID := range roomIDs {
		if seen[roomID] {
			continue
		}
		seen[roomID] = true

		screeningIDs, err := s.repo.Screening.FindIDsByRoomID(ctx, roomID)
		if err != nil {
			s.log.Warn("Failed to list screenings for seat map invalidation",
				zap.Error(err),
				zap.String("room_id", roomID.String()),
			)
			continue
		}
		s.seatMaps.Invalidate(ctx, screeningIDs...)
	}
}
