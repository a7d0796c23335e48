package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/usecase"
	"cinema-screening/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service     usecase.RoomService
	seatService usecase.SeatService
	log         *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, seatService usecase.SeatService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service:     service,
		seatService: seatService,
		log:         log.With(zap.String("handler", "room")),
	}
}

// GetRooms handles GET /api/rooms?name=&page=&per_page=
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context(), paginationFromQuery(r), optionalQuery(r, "name"))
	if err != nil {
		handleServiceError(w, h.log, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "Rooms retrieved successfully", rooms)
}

// GetRoomByID handles GET /api/rooms/{id}
func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.GetRoomByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get room by ID")
		return
	}

	utils.ResponseSuccess(w, "Room retrieved successfully", room)
}

// GetRoomScreenings handles GET /api/rooms/{id}/screenings
func (h *RoomHandler) GetRoomScreenings(w http.ResponseWriter, r *http.Request) {
	screenings, err := h.service.GetRoomScreenings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get room screenings")
		return
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", screenings)
}

// CreateRoom handles POST /api/rooms
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created successfully", room)
}

// UpdateRoom handles PUT /api/rooms/{id}
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "Room updated successfully", room)
}

// DeleteRoom handles DELETE /api/rooms/{id}
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "Room deleted successfully", nil)
}

// BulkCreateSeats handles POST /api/rooms/{id}/seats/bulk. An empty body
// lays out the default 8 rows of 10 seats.
func (h *RoomHandler) BulkCreateSeats(w http.ResponseWriter, r *http.Request) {
	var req request.SeatBulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.seatService.BulkCreateSeats(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "bulk create seats")
		return
	}

	utils.ResponseCreated(w, "Seats created successfully", result)
}
