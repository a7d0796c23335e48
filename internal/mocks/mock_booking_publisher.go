package mocks

import (
	"context"

	"cinema-screening/internal/queue"

	"github.com/stretchr/testify/mock"
)

type MockBookingPublisher struct {
	mock.Mock
}

func (m *MockBookingPublisher) PublishBookingCreated(ctx context.Context, event queue.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockBookingPublisher) PublishBookingDeleted(ctx context.Context, event queue.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockBookingPublisher) Close() error {
	return m.Called().Error(0)
}
