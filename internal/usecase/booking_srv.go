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
	"cinema-screening/internal/queue"
	"cinema-screening/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	GetBookings(ctx context.Context, req *request.PaginatedRequest, screeningID *string) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo     *repository.Repository
	seatMaps cache.SeatMapCache
	events   queue.BookingPublisher
	log      *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	seatMaps cache.SeatMapCache,
	events queue.BookingPublisher,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		seatMaps: seatMaps,
		events:   events,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest, screeningID *string) (*response.PaginatedResponse[response.BookingResponse], error) {
	screeningFilter, err := parseOptionalID("screening", screeningID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset(), screeningFilter)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, screeningFilter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	data := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		data[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// CreateBooking admits a booking only when the seat is free for the
// screening. The pre-check gives the early answer; the unique constraint on
// (screening_id, seat_id) decides races, and both report ErrSeatAlreadyBooked.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, validationFailed(errs)
	}

	screeningID, err := parseID("screening", req.ScreeningID)
	if err != nil {
		return nil, err
	}
	seatID, err := parseID("seat", req.SeatID)
	if err != nil {
		return nil, err
	}

	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("get screening by id: %w", err)
	}
	if screening == nil {
		return nil, notFound("screening %s not found", req.ScreeningID)
	}

	seat, err := s.repo.Seat.FindByID(ctx, seatID)
	if err != nil {
		return nil, fmt.Errorf("get seat by id: %w", err)
	}
	if seat == nil {
		return nil, notFound("seat %s not found", req.SeatID)
	}

	if seat.RoomID != screening.RoomID {
		return nil, invalid("seat does not belong to the screening's room")
	}

	existing, err := s.repo.Booking.FindByScreeningAndSeat(ctx, screeningID, seatID)
	if err != nil {
		return nil, fmt.Errorf("check seat availability: %w", err)
	}
	if existing != nil {
		s.log.Info("Seat already booked",
			zap.String("screening_id", req.ScreeningID),
			zap.String("seat", seat.Label()),
		)
		return nil, ErrSeatAlreadyBooked
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ScreeningID:   screeningID,
		SeatID:        seatID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			s.log.Info("Seat booked concurrently",
				zap.String("screening_id", req.ScreeningID),
				zap.String("seat", seat.Label()),
			)
			return nil, ErrSeatAlreadyBooked
		case errors.Is(err, repository.ErrReference):
			return nil, notFound("screening or seat no longer exists")
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.seatMaps.Invalidate(ctx, screeningID)

	if err := s.events.PublishBookingCreated(ctx, queue.NewBookingEvent(booking, time.Now())); err != nil {
		s.log.Warn("Failed to publish booking created event",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("screening_id", req.ScreeningID),
		zap.String("seat", seat.Label()),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("booking %s not found", bookingID)
		}
		return fmt.Errorf("delete booking: %w", err)
	}

	s.seatMaps.Invalidate(ctx, booking.ScreeningID)

	if err := s.events.PublishBookingDeleted(ctx, queue.NewBookingEvent(booking, time.Now())); err != nil {
		s.log.Warn("Failed to publish booking deleted event",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
	}

	return nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	if booking == nil {
		return nil, notFound("booking %s not found", bookingID)
	}

	return booking, nil
}
