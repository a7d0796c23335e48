package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/dto/response"
	"cinema-screening/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	GetRooms(ctx context.Context, req *request.PaginatedRequest, name *string) (*response.PaginatedResponse[response.RoomResponse], error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomDetailResponse, error)
	GetRoomScreenings(ctx context.Context, roomID string) ([]response.ScreeningResponse, error)
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRooms(ctx context.Context, req *request.PaginatedRequest, name *string) (*response.PaginatedResponse[response.RoomResponse], error) {
	rooms, err := s.repo.Room.FindAll(ctx, req.Limit(), req.Offset(), name)
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	total, err := s.repo.Room.CountAll(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	data := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		data[i] = response.RoomToResponse(room)
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomDetailResponse, error) {
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	seatCount, err := s.repo.Seat.CountByRoomID(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("count seats of room %s: %w", roomID, err)
	}

	resp := response.RoomToDetailResponse(room, seatCount)
	return &resp, nil
}

func (s *roomService) GetRoomScreenings(ctx context.Context, roomID string) ([]response.ScreeningResponse, error) {
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	screenings, err := s.repo.Screening.FindByRoomID(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("get screenings of room %s: %w", roomID, err)
	}

	return response.ScreeningsToResponse(screenings), nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, validationFailed(errs)
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Capacity: req.Capacity,
		Color:    req.Color,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.Int("capacity", room.Capacity),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, validationFailed(errs)
	}

	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Color != nil {
		room.Color = req.Color
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("room %s not found", roomID)
		}
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated", zap.String("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// DeleteRoom removes the room together with its seats, screenings and their bookings.
func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := parseID("room", roomID)
	if err != nil {
		return err
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("room %s not found", roomID)
		}
		return fmt.Errorf("delete room: %w", err)
	}

	return nil
}

func (s *roomService) findRoom(ctx context.Context, roomID string) (*entity.Room, error) {
	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room by id: %w", err)
	}
	if room == nil {
		return nil, notFound("room %s not found", roomID)
	}

	return room, nil
}
