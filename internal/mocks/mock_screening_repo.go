package mocks

import (
	"context"

	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockScreeningRepo struct {
	mock.Mock
	repository.ScreeningRepository
}

func (m *MockScreeningRepo) Create(ctx context.Context, screening *entity.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	args := m.Called(ctx, id)
	screening, _ := args.Get(0).(*entity.Screening)
	return screening, args.Error(1)
}

func (m *MockScreeningRepo) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error) {
	args := m.Called(ctx, roomID)
	screenings, _ := args.Get(0).([]*entity.Screening)
	return screenings, args.Error(1)
}

func (m *MockScreeningRepo) FindIDsByRoomID(ctx context.Context, roomID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, roomID)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *MockScreeningRepo) Update(ctx context.Context, screening *entity.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScreeningRepo) FindAll(ctx context.Context, limit, offset int, filter repository.ScreeningFilter) ([]*entity.Screening, error) {
	args := m.Called(ctx, limit, offset, filter)
	screenings, _ := args.Get(0).([]*entity.Screening)
	return screenings, args.Error(1)
}

func (m *MockScreeningRepo) CountAll(ctx context.Context, filter repository.ScreeningFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
