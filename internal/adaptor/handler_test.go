package adaptor_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cinema-screening/internal/adaptor"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/dto/response"
	"cinema-screening/internal/mocks"
	"cinema-screening/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  map[string]any  `json:"errors"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func bookingRouter(svc usecase.BookingService) http.Handler {
	h := adaptor.NewBookingHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/bookings", h.CreateBooking)
	r.Delete("/api/bookings/{id}", h.DeleteBooking)
	return r
}

func TestCreateBooking_Created(t *testing.T) {
	svc := new(mocks.MockBookingService)
	screeningID, seatID := uuid.NewString(), uuid.NewString()

	svc.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req *request.BookingRequest) bool {
		return req.ScreeningID == screeningID && req.SeatID == seatID
	})).Return(&response.BookingResponse{
		ID:          uuid.NewString(),
		ScreeningID: screeningID,
		SeatID:      seatID,
		BookedAt:    time.Now(),
	}, nil)

	body := `{"screening_id":"` + screeningID + `","seat_id":"` + seatID + `"}`
	rec := httptest.NewRecorder()
	bookingRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode(t, rec)
	assert.True(t, resp.Status)
	assert.Contains(t, string(resp.Data), seatID)
}

func TestCreateBooking_SeatAlreadyBookedIsConflict(t *testing.T) {
	svc := new(mocks.MockBookingService)
	svc.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, usecase.ErrSeatAlreadyBooked)

	body := `{"screening_id":"` + uuid.NewString() + `","seat_id":"` + uuid.NewString() + `"}`
	rec := httptest.NewRecorder()
	bookingRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Status)
	assert.Equal(t, "This seat is already booked for this screening.", resp.Error)
}

func TestCreateBooking_BadRequest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErrKey string
	}{
		{name: "malformed json", body: `{"screening_id":`},
		{name: "missing seat", body: `{"screening_id":"` + uuid.NewString() + `"}`, wantErrKey: "seat_id"},
		{name: "bad email", body: `{"screening_id":"` + uuid.NewString() + `","seat_id":"` + uuid.NewString() + `","customer_email":"nope"}`, wantErrKey: "customer_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockBookingService)
			rec := httptest.NewRecorder()
			bookingRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decode(t, rec)
			assert.NotEmpty(t, resp.Error)
			if tt.wantErrKey != "" {
				assert.Contains(t, resp.Errors, tt.wantErrKey)
			}
			svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "deleted", err: nil, wantStatus: http.StatusOK},
		{name: "not found", err: usecase.ErrNotFound, wantStatus: http.StatusNotFound, wantError: "not found"},
		{name: "invalid id", err: usecase.ErrValidation, wantStatus: http.StatusBadRequest, wantError: "validation failed"},
		{name: "database down", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantError: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockBookingService)
			svc.On("DeleteBooking", mock.Anything, "b-1").Return(tt.err)

			rec := httptest.NewRecorder()
			bookingRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings/b-1", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decode(t, rec).Error)
		})
	}
}

func TestGetSeatStatus(t *testing.T) {
	svc := new(mocks.MockScreeningService)
	screeningID := uuid.NewString()
	seats := []response.SeatStatusResponse{
		{ID: uuid.NewString(), Row: "A", Number: 1, IsBooked: true},
		{ID: uuid.NewString(), Row: "A", Number: 2, IsBooked: false},
	}
	svc.On("GetSeatStatus", mock.Anything, screeningID).Return(seats, nil)

	h := adaptor.NewScreeningHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/screenings/{id}/seats", h.GetSeatStatus)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/screenings/"+screeningID+"/seats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []response.SeatStatusResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, seats, got)
}

func TestGetScreenings_PassesFilters(t *testing.T) {
	svc := new(mocks.MockScreeningService)
	roomID := uuid.NewString()

	svc.On("GetScreenings", mock.Anything,
		&request.PaginatedRequest{Page: 2, PerPage: 5},
		mock.MatchedBy(func(v *string) bool { return v != nil && *v == roomID }),
		(*string)(nil),
	).Return(response.NewPaginatedResponse([]response.ScreeningResponse{}, 2, 5, 0), nil)

	h := adaptor.NewScreeningHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/screenings", h.GetScreenings)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/screenings?page=2&per_page=5&room_id="+roomID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestBulkCreateSeats_EmptyBodyUsesDefaults(t *testing.T) {
	seatSvc := new(mocks.MockSeatService)
	roomID := uuid.NewString()

	seatSvc.On("BulkCreateSeats", mock.Anything, roomID, &request.SeatBulkRequest{}).
		Return(&response.SeatBulkResponse{RoomID: roomID, Rows: 8, SeatsPerRow: 10, Created: 80}, nil)

	h := adaptor.NewRoomHandler(nil, seatSvc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/rooms/{id}/seats/bulk", h.BulkCreateSeats)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rooms/"+roomID+"/seats/bulk", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	seatSvc.AssertExpectations(t)
}

func TestBulkCreateSeats_ConflictWhenRoomHasSeats(t *testing.T) {
	seatSvc := new(mocks.MockSeatService)
	roomID := uuid.NewString()

	seatSvc.On("BulkCreateSeats", mock.Anything, roomID, mock.Anything).
		Return(nil, errors.Join(usecase.ErrConflict, errors.New("room already has 80 seats")))

	h := adaptor.NewRoomHandler(nil, seatSvc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/rooms/{id}/seats/bulk", h.BulkCreateSeats)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rooms/"+roomID+"/seats/bulk", strings.NewReader(`{"rows":2}`)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func roomScreeningsRouter(svc usecase.RoomService) http.Handler {
	h := adaptor.NewRoomHandler(svc, nil, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/rooms/{id}/screenings", h.GetRoomScreenings)
	return r
}

func TestGetRoomScreenings_OK(t *testing.T) {
	svc := new(mocks.MockRoomService)
	roomID := uuid.NewString()
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	svc.On("GetRoomScreenings", mock.Anything, roomID).Return([]response.ScreeningResponse{
		{ID: uuid.NewString(), MovieTitle: "Film A", RoomID: roomID, RoomName: "Hall 1", StartTime: start},
		{ID: uuid.NewString(), MovieTitle: "Film B", RoomID: roomID, RoomName: "Hall 1", StartTime: start.Add(3 * time.Hour)},
	}, nil)

	rec := httptest.NewRecorder()
	roomScreeningsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms/"+roomID+"/screenings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var screenings []response.ScreeningResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &screenings))
	require.Len(t, screenings, 2)
	assert.Equal(t, "Film A", screenings[0].MovieTitle)
	assert.Equal(t, "Film B", screenings[1].MovieTitle)
	assert.Equal(t, "Hall 1", screenings[1].RoomName)
}

func TestGetRoomScreenings_UnknownRoomIsNotFound(t *testing.T) {
	roomRepo := new(mocks.MockRoomRepo)
	roomID := uuid.New()
	roomRepo.On("FindByID", mock.Anything, roomID).Return(nil, nil)
	svc := usecase.NewRoomService(&repository.Repository{Room: roomRepo}, zap.NewNop())

	rec := httptest.NewRecorder()
	roomScreeningsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms/"+roomID.String()+"/screenings", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decode(t, rec).Status)
}

func TestGetRoomScreenings_InvalidRoomIDIsBadRequest(t *testing.T) {
	roomRepo := new(mocks.MockRoomRepo)
	svc := usecase.NewRoomService(&repository.Repository{Room: roomRepo}, zap.NewNop())

	rec := httptest.NewRecorder()
	roomScreeningsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms/hall-1/screenings", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	roomRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
