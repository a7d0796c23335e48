package mocks

import (
	"context"

	"cinema-screening/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSeatMapCache struct {
	mock.Mock
}

func (m *MockSeatMapCache) Get(ctx context.Context, screeningID uuid.UUID) ([]entity.SeatStatus, bool) {
	args := m.Called(ctx, screeningID)
	seats, _ := args.Get(0).([]entity.SeatStatus)
	return seats, args.Bool(1)
}

func (m *MockSeatMapCache) Version(ctx context.Context, screeningID uuid.UUID) (int64, bool) {
	args := m.Called(ctx, screeningID)
	return args.Get(0).(int64), args.Bool(1)
}

func (m *MockSeatMapCache) Set(ctx context.Context, screeningID uuid.UUID, version int64, seats []entity.SeatStatus) bool {
	return m.Called(ctx, screeningID, version, seats).Bool(0)
}

func (m *MockSeatMapCache) Invalidate(ctx context.Context, screeningIDs ...uuid.UUID) {
	m.Called(ctx, screeningIDs)
}

func (m *MockSeatMapCache) Close() error {
	return m.Called().Error(0)
}
