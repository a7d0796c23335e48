package mocks

import (
	"context"

	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSeatRepo struct {
	mock.Mock
	repository.SeatRepository
}

func (m *MockSeatRepo) Create(ctx context.Context, seat *entity.Seat) error {
	args := m.Called(ctx, seat)
	return args.Error(0)
}

func (m *MockSeatRepo) CreateBatchIfEmpty(ctx context.Context, roomID uuid.UUID, seats []*entity.Seat) (int64, error) {
	args := m.Called(ctx, roomID, seats)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeatRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	args := m.Called(ctx, id)
	seat, _ := args.Get(0).(*entity.Seat)
	return seat, args.Error(1)
}

func (m *MockSeatRepo) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Seat, error) {
	args := m.Called(ctx, roomID)
	seats, _ := args.Get(0).([]*entity.Seat)
	return seats, args.Error(1)
}

func (m *MockSeatRepo) CountByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeatRepo) Update(ctx context.Context, seat *entity.Seat) error {
	args := m.Called(ctx, seat)
	return args.Error(0)
}

func (m *MockSeatRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSeatRepo) FindAll(ctx context.Context, limit, offset int, roomID *uuid.UUID) ([]*entity.Seat, error) {
	args := m.Called(ctx, limit, offset, roomID)
	seats, _ := args.Get(0).([]*entity.Seat)
	return seats, args.Error(1)
}

func (m *MockSeatRepo) CountAll(ctx context.Context, roomID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}
