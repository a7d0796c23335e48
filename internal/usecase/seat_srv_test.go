package usecase_test

import (
	"context"
	"fmt"
	"testing"

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

func newSeatService() (usecase.SeatService, *mocks.MockRoomRepo, *mocks.MockSeatRepo, *mocks.MockScreeningRepo, *mocks.MockSeatMapCache) {
	roomRepo := new(mocks.MockRoomRepo)
	seatRepo := new(mocks.MockSeatRepo)
	screeningRepo := new(mocks.MockScreeningRepo)
	seatMaps := new(mocks.MockSeatMapCache)

	repo := &repository.Repository{
		Room:      roomRepo,
		Seat:      seatRepo,
		Screening: screeningRepo,
	}
	return usecase.NewSeatService(repo, seatMaps, zap.NewNop()), roomRepo, seatRepo, screeningRepo, seatMaps
}

func TestBulkCreateSeats_DefaultLayout(t *testing.T) {
	svc, _, seatRepo, screeningRepo, seatMaps := newSeatService()
	roomID := uuid.New()
	screeningIDs := []uuid.UUID{uuid.New(), uuid.New()}

	var batch []*entity.Seat
	seatRepo.On("CreateBatchIfEmpty", mock.Anything, roomID, mock.Anything).
		Run(func(args mock.Arguments) {
			batch = args.Get(2).([]*entity.Seat)
		}).Return(int64(0), nil)
	screeningRepo.On("FindIDsByRoomID", mock.Anything, roomID).Return(screeningIDs, nil)
	seatMaps.On("Invalidate", mock.Anything, screeningIDs).Return()

	resp, err := svc.BulkCreateSeats(context.Background(), roomID.String(), &request.SeatBulkRequest{})

	require.NoError(t, err)
	assert.Equal(t, 8, resp.Rows)
	assert.Equal(t, 10, resp.SeatsPerRow)
	assert.Equal(t, 80, resp.Created)

	require.Len(t, batch, 80)
	assert.Equal(t, "A1", batch[0].Label())
	assert.Equal(t, "A10", batch[9].Label())
	assert.Equal(t, "B1", batch[10].Label())
	assert.Equal(t, "H10", batch[79].Label())

	seen := make(map[string]bool)
	for _, seat := range batch {
		assert.Equal(t, roomID, seat.RoomID)
		assert.False(t, seen[seat.Label()], "duplicate position %s", seat.Label())
		seen[seat.Label()] = true
	}

	seatMaps.AssertExpectations(t)
}

func TestBulkCreateSeats_RoomAlreadyHasSeats(t *testing.T) {
	svc, _, seatRepo, _, seatMaps := newSeatService()
	roomID := uuid.New()

	seatRepo.On("CreateBatchIfEmpty", mock.Anything, roomID, mock.Anything).Return(int64(80), nil)

	_, err := svc.BulkCreateSeats(context.Background(), roomID.String(), &request.SeatBulkRequest{Rows: 2, SeatsPerRow: 5})

	require.ErrorIs(t, err, usecase.ErrConflict)
	assert.Equal(t, "room already has 80 seats", err.Error())
	seatMaps.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestBulkCreateSeats_Errors(t *testing.T) {
	svc, _, seatRepo, _, _ := newSeatService()
	missing := uuid.New()

	seatRepo.On("CreateBatchIfEmpty", mock.Anything, missing, mock.Anything).
		Return(int64(0), fmt.Errorf("room %s: %w", missing, repository.ErrNotFound))

	_, err := svc.BulkCreateSeats(context.Background(), missing.String(), &request.SeatBulkRequest{})
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	_, err = svc.BulkCreateSeats(context.Background(), missing.String(), &request.SeatBulkRequest{Rows: 27})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = svc.BulkCreateSeats(context.Background(), "room-1", &request.SeatBulkRequest{})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestCreateSeat_DuplicatePositionIsConflict(t *testing.T) {
	svc, roomRepo, seatRepo, _, _ := newSeatService()
	roomID := uuid.New()

	roomRepo.On("FindByID", mock.Anything, roomID).Return(&entity.Room{Base: entity.Base{ID: roomID}}, nil)
	seatRepo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("create seat: %w", fmt.Errorf("%w: uq_seats_room_row_number", repository.ErrDuplicate)))

	_, err := svc.CreateSeat(context.Background(), &request.SeatRequest{
		RoomID: roomID.String(),
		Row:    "c",
		Number: 4,
	})

	require.ErrorIs(t, err, usecase.ErrConflict)
	assert.Equal(t, "seat C4 already exists in room", err.Error())
}

func TestCreateSeat_InvalidatesRoomSeatMaps(t *testing.T) {
	svc, roomRepo, seatRepo, screeningRepo, seatMaps := newSeatService()
	roomID := uuid.New()
	screeningID := uuid.New()

	roomRepo.On("FindByID", mock.Anything, roomID).Return(&entity.Room{Base: entity.Base{ID: roomID}}, nil)
	seatRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Seat")).Return(nil)
	screeningRepo.On("FindIDsByRoomID", mock.Anything, roomID).Return([]uuid.UUID{screeningID}, nil)
	seatMaps.On("Invalidate", mock.Anything, []uuid.UUID{screeningID}).Return()

	resp, err := svc.CreateSeat(context.Background(), &request.SeatRequest{
		RoomID: roomID.String(),
		Row:    "A",
		Number: 11,
	})

	require.NoError(t, err)
	assert.Equal(t, "A11", resp.Label)
	seatMaps.AssertExpectations(t)
}

func newSeatMoveFixture() (usecase.SeatService, *mocks.MockRoomRepo, *mocks.MockSeatRepo, *mocks.MockScreeningRepo, *mocks.MockBookingRepo, *mocks.MockSeatMapCache) {
	roomRepo := new(mocks.MockRoomRepo)
	seatRepo := new(mocks.MockSeatRepo)
	screeningRepo := new(mocks.MockScreeningRepo)
	bookingRepo := new(mocks.MockBookingRepo)
	seatMaps := new(mocks.MockSeatMapCache)

	repo := &repository.Repository{
		Room:      roomRepo,
		Seat:      seatRepo,
		Screening: screeningRepo,
		Booking:   bookingRepo,
	}
	return usecase.NewSeatService(repo, seatMaps, zap.NewNop()), roomRepo, seatRepo, screeningRepo, bookingRepo, seatMaps
}

func TestUpdateSeat_BookedSeatCannotChangeRoom(t *testing.T) {
	svc, roomRepo, seatRepo, _, bookingRepo, _ := newSeatMoveFixture()
	seat := &entity.Seat{Base: entity.Base{ID: uuid.New()}, RoomID: uuid.New(), Row: "A", Number: 1}
	target := &entity.Room{Base: entity.Base{ID: uuid.New()}, Name: "Hall 2", Capacity: 40}

	seatRepo.On("FindByID", mock.Anything, seat.ID).Return(seat, nil)
	roomRepo.On("FindByID", mock.Anything, target.ID).Return(target, nil)
	bookingRepo.On("CountBySeatID", mock.Anything, seat.ID).Return(int64(2), nil)

	roomID := target.ID.String()
	_, err := svc.UpdateSeat(context.Background(), seat.ID.String(), &request.SeatUpdateRequest{RoomID: &roomID})

	require.ErrorIs(t, err, usecase.ErrConflict)
	assert.EqualError(t, err, "seat A1 has 2 bookings and cannot move to another room")
	seatRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateSeat_UnbookedSeatMovesAndInvalidatesBothRooms(t *testing.T) {
	svc, roomRepo, seatRepo, screeningRepo, bookingRepo, seatMaps := newSeatMoveFixture()
	from := uuid.New()
	seat := &entity.Seat{Base: entity.Base{ID: uuid.New()}, RoomID: from, Row: "A", Number: 1}
	target := &entity.Room{Base: entity.Base{ID: uuid.New()}, Name: "Hall 2", Capacity: 40}
	fromScreenings := []uuid.UUID{uuid.New()}
	toScreenings := []uuid.UUID{uuid.New()}

	seatRepo.On("FindByID", mock.Anything, seat.ID).Return(seat, nil)
	roomRepo.On("FindByID", mock.Anything, target.ID).Return(target, nil)
	bookingRepo.On("CountBySeatID", mock.Anything, seat.ID).Return(int64(0), nil)
	seatRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Seat")).Return(nil)
	screeningRepo.On("FindIDsByRoomID", mock.Anything, from).Return(fromScreenings, nil)
	screeningRepo.On("FindIDsByRoomID", mock.Anything, target.ID).Return(toScreenings, nil)
	seatMaps.On("Invalidate", mock.Anything, fromScreenings).Return()
	seatMaps.On("Invalidate", mock.Anything, toScreenings).Return()

	roomID := target.ID.String()
	resp, err := svc.UpdateSeat(context.Background(), seat.ID.String(), &request.SeatUpdateRequest{RoomID: &roomID})

	require.NoError(t, err)
	assert.Equal(t, roomID, resp.RoomID)
	seatMaps.AssertExpectations(t)
}

func TestUpdateSeat_SameRoomSkipsBookingCheck(t *testing.T) {
	svc, _, seatRepo, screeningRepo, bookingRepo, seatMaps := newSeatMoveFixture()
	seat := &entity.Seat{Base: entity.Base{ID: uuid.New()}, RoomID: uuid.New(), Row: "A", Number: 1}

	seatRepo.On("FindByID", mock.Anything, seat.ID).Return(seat, nil)
	seatRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Seat")).Return(nil)
	screeningRepo.On("FindIDsByRoomID", mock.Anything, seat.RoomID).Return([]uuid.UUID{}, nil)
	seatMaps.On("Invalidate", mock.Anything, []uuid.UUID{}).Return()

	number := 3
	resp, err := svc.UpdateSeat(context.Background(), seat.ID.String(), &request.SeatUpdateRequest{Number: &number})

	require.NoError(t, err)
	assert.Equal(t, "A3", resp.Label)
	bookingRepo.AssertNotCalled(t, "CountBySeatID", mock.Anything, mock.Anything)
}
