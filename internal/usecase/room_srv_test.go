package usecase_test

import (
	"context"
	"testing"
	"time"

	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/mocks"
	"cinema-screening/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetRoomByID_IncludesSeatCount(t *testing.T) {
	roomRepo := new(mocks.MockRoomRepo)
	seatRepo := new(mocks.MockSeatRepo)
	svc := usecase.NewRoomService(&repository.Repository{Room: roomRepo, Seat: seatRepo}, zap.NewNop())

	room := &entity.Room{Base: entity.Base{ID: uuid.New()}, Name: "Hall 1", Capacity: 80}
	roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	seatRepo.On("CountByRoomID", mock.Anything, room.ID).Return(int64(80), nil)

	resp, err := svc.GetRoomByID(context.Background(), room.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "Hall 1", resp.Name)
	assert.Equal(t, int64(80), resp.SeatCount)
}

func TestCreateRoom_Validation(t *testing.T) {
	roomRepo := new(mocks.MockRoomRepo)
	svc := usecase.NewRoomService(&repository.Repository{Room: roomRepo}, zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), &request.RoomRequest{Name: "", Capacity: 0})

	require.ErrorIs(t, err, usecase.ErrValidation)
	roomRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateRoom_PartialFields(t *testing.T) {
	roomRepo := new(mocks.MockRoomRepo)
	svc := usecase.NewRoomService(&repository.Repository{Room: roomRepo}, zap.NewNop())

	color := "red"
	room := &entity.Room{Base: entity.Base{ID: uuid.New()}, Name: "Hall 1", Capacity: 80, Color: &color}
	roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	roomRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Room")).Return(nil)

	capacity := 120
	resp, err := svc.UpdateRoom(context.Background(), room.ID.String(), &request.RoomUpdateRequest{Capacity: &capacity})

	require.NoError(t, err)
	assert.Equal(t, "Hall 1", resp.Name)
	assert.Equal(t, 120, resp.Capacity)
	assert.Equal(t, "red", *resp.Color)
}

func TestDeleteRoom_NotFound(t *testing.T) {
	roomRepo := new(mocks.MockRoomRepo)
	svc := usecase.NewRoomService(&repository.Repository{Room: roomRepo}, zap.NewNop())

	id := uuid.New()
	roomRepo.On("Delete", mock.Anything, id).Return(repository.ErrNotFound)

	err := svc.DeleteRoom(context.Background(), id.String())

	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestGetRoomScreenings_OrderedWithMovieAndRoom(t *testing.T) {
	roomRepo := new(mocks.MockRoomRepo)
	screeningRepo := new(mocks.MockScreeningRepo)
	svc := usecase.NewRoomService(&repository.Repository{Room: roomRepo, Screening: screeningRepo}, zap.NewNop())

	room := &entity.Room{Base: entity.Base{ID: uuid.New()}, Name: "Hall 1", Capacity: 80}
	evening := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	screenings := []*entity.Screening{
		{Base: entity.Base{ID: uuid.New()}, MovieID: uuid.New(), RoomID: room.ID, StartTime: evening,
			MovieTitle: "Film A", MovieDurationMins: 90, RoomName: "Hall 1"},
		{Base: entity.Base{ID: uuid.New()}, MovieID: uuid.New(), RoomID: room.ID, StartTime: evening.Add(3 * time.Hour),
			MovieTitle: "Film B", MovieDurationMins: 120, RoomName: "Hall 1"},
	}
	roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	screeningRepo.On("FindByRoomID", mock.Anything, room.ID).Return(screenings, nil)

	resp, err := svc.GetRoomScreenings(context.Background(), room.ID.String())

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Film A", resp[0].MovieTitle)
	assert.Equal(t, "Film B", resp[1].MovieTitle)
	assert.True(t, resp[0].StartTime.Before(resp[1].StartTime))
	for _, s := range resp {
		assert.Equal(t, "Hall 1", s.RoomName)
		assert.Equal(t, room.ID.String(), s.RoomID)
	}
	assert.Equal(t, evening.Add(90*time.Minute), resp[0].EndTime)
}

func TestGetRoomScreenings_RoomNotFound(t *testing.T) {
	roomRepo := new(mocks.MockRoomRepo)
	screeningRepo := new(mocks.MockScreeningRepo)
	svc := usecase.NewRoomService(&repository.Repository{Room: roomRepo, Screening: screeningRepo}, zap.NewNop())

	roomID := uuid.New()
	roomRepo.On("FindByID", mock.Anything, roomID).Return(nil, nil)

	_, err := svc.GetRoomScreenings(context.Background(), roomID.String())

	require.ErrorIs(t, err, usecase.ErrNotFound)
	screeningRepo.AssertNotCalled(t, "FindByRoomID", mock.Anything, mock.Anything)
}

func TestGetRoomScreenings_InvalidRoomID(t *testing.T) {
	roomRepo := new(mocks.MockRoomRepo)
	svc := usecase.NewRoomService(&repository.Repository{Room: roomRepo}, zap.NewNop())

	_, err := svc.GetRoomScreenings(context.Background(), "hall-1")

	require.ErrorIs(t, err, usecase.ErrValidation)
	roomRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
