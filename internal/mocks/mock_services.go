package mocks

import (
	"context"

	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/dto/response"
	"cinema-screening/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
	usecase.BookingService
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.BookingResponse)
	return resp, args.Error(1)
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	return m.Called(ctx, bookingID).Error(0)
}

type MockScreeningService struct {
	mock.Mock
	usecase.ScreeningService
}

func (m *MockScreeningService) GetSeatStatus(ctx context.Context, screeningID string) ([]response.SeatStatusResponse, error) {
	args := m.Called(ctx, screeningID)
	seats, _ := args.Get(0).([]response.SeatStatusResponse)
	return seats, args.Error(1)
}

func (m *MockScreeningService) GetScreenings(ctx context.Context, req *request.PaginatedRequest, roomID, movieID *string) (*response.PaginatedResponse[response.ScreeningResponse], error) {
	args := m.Called(ctx, req, roomID, movieID)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.ScreeningResponse])
	return resp, args.Error(1)
}

type MockSeatService struct {
	mock.Mock
	usecase.SeatService
}

func (m *MockSeatService) BulkCreateSeats(ctx context.Context, roomID string, req *request.SeatBulkRequest) (*response.SeatBulkResponse, error) {
	args := m.Called(ctx, roomID, req)
	resp, _ := args.Get(0).(*response.SeatBulkResponse)
	return resp, args.Error(1)
}

type MockRoomService struct {
	mock.Mock
	usecase.RoomService
}

func (m *MockRoomService) GetRoomScreenings(ctx context.Context, roomID string) ([]response.ScreeningResponse, error) {
	args := m.Called(ctx, roomID)
	screenings, _ := args.Get(0).([]response.ScreeningResponse)
	return screenings, args.Error(1)
}
