package mocks

import (
	"context"

	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRoomRepo struct {
	mock.Mock
	repository.RoomRepository
}

func (m *MockRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*entity.Room)
	return room, args.Error(1)
}

func (m *MockRoomRepo) FindAll(ctx context.Context, limit, offset int, nameFilter *string) ([]*entity.Room, error) {
	args := m.Called(ctx, limit, offset, nameFilter)
	rooms, _ := args.Get(0).([]*entity.Room)
	return rooms, args.Error(1)
}

func (m *MockRoomRepo) FindAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *MockRoomRepo) CountAll(ctx context.Context, nameFilter *string) (int64, error) {
	args := m.Called(ctx, nameFilter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepo) Update(ctx context.Context, room *entity.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
