package mocks

import (
	"context"

	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	repository.BookingRepository
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepo) FindByScreeningAndSeat(ctx context.Context, screeningID, seatID uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, screeningID, seatID)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingRepo) FindBookedSeatIDs(ctx context.Context, screeningID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, screeningID)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *MockBookingRepo) FindAll(ctx context.Context, limit, offset int, screeningID *uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, limit, offset, screeningID)
	bookings, _ := args.Get(0).([]*entity.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepo) CountAll(ctx context.Context, screeningID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, screeningID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) CountBySeatID(ctx context.Context, seatID uuid.UUID) (int64, error) {
	args := m.Called(ctx, seatID)
	return args.Get(0).(int64), args.Error(1)
}
