package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/dto/response"
	"cinema-screening/internal/mocks"
	"cinema-screening/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var defaultLayout = request.SeatBulkRequest{Rows: 8, SeatsPerRow: 10}

func created(roomID string) *response.SeatBulkResponse {
	return &response.SeatBulkResponse{RoomID: roomID, Rows: 8, SeatsPerRow: 10, Created: 80}
}

func TestCreateSeats_SingleRoom(t *testing.T) {
	seats := new(mocks.MockSeatService)
	rooms := new(mocks.MockRoomRepo)
	roomID := uuid.NewString()

	seats.On("BulkCreateSeats", mock.Anything, roomID, &defaultLayout).Return(created(roomID), nil)

	err := CreateSeats(context.Background(), seats, rooms, roomID, defaultLayout, zap.NewNop())

	require.NoError(t, err)
	seats.AssertExpectations(t)
	rooms.AssertNotCalled(t, "FindAllIDs", mock.Anything)
}

func TestCreateSeats_AllRoomsSkipsSeededOnes(t *testing.T) {
	seats := new(mocks.MockSeatService)
	rooms := new(mocks.MockRoomRepo)
	hall1, hall2 := uuid.New(), uuid.New()

	rooms.On("FindAllIDs", mock.Anything).Return([]uuid.UUID{hall1, hall2}, nil)
	seats.On("BulkCreateSeats", mock.Anything, hall1.String(), mock.Anything).
		Return(nil, fmt.Errorf("room already has 80 seats: %w", usecase.ErrConflict))
	seats.On("BulkCreateSeats", mock.Anything, hall2.String(), mock.Anything).
		Return(created(hall2.String()), nil)

	core, logs := observer.New(zapcore.InfoLevel)
	err := CreateSeats(context.Background(), seats, rooms, "", defaultLayout, zap.New(core))

	require.NoError(t, err)
	seats.AssertExpectations(t)
	assert.Equal(t, 1, logs.FilterMessage("Skipping room").Len())
	assert.Equal(t, 1, logs.FilterMessage("Seats created").Len())
}

func TestCreateSeats_MissingRoomIsError(t *testing.T) {
	seats := new(mocks.MockSeatService)
	rooms := new(mocks.MockRoomRepo)
	roomID := uuid.NewString()

	seats.On("BulkCreateSeats", mock.Anything, roomID, mock.Anything).
		Return(nil, fmt.Errorf("room %s: %w", roomID, usecase.ErrNotFound))

	err := CreateSeats(context.Background(), seats, rooms, roomID, defaultLayout, zap.NewNop())

	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestCreateSeats_NoRooms(t *testing.T) {
	seats := new(mocks.MockSeatService)
	rooms := new(mocks.MockRoomRepo)

	rooms.On("FindAllIDs", mock.Anything).Return([]uuid.UUID{}, nil)

	err := CreateSeats(context.Background(), seats, rooms, "", defaultLayout, zap.NewNop())

	require.NoError(t, err)
	seats.AssertNotCalled(t, "BulkCreateSeats", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSeats_ListRoomsFails(t *testing.T) {
	rooms := new(mocks.MockRoomRepo)
	rooms.On("FindAllIDs", mock.Anything).Return(nil, errors.New("connection refused"))

	err := CreateSeats(context.Background(), new(mocks.MockSeatService), rooms, "", defaultLayout, zap.NewNop())

	assert.ErrorContains(t, err, "list rooms")
}

func TestParseRoomFlag(t *testing.T) {
	assert.NoError(t, ParseRoomFlag(""))
	assert.NoError(t, ParseRoomFlag(uuid.NewString()))
	assert.Error(t, ParseRoomFlag("hall-1"))
}
