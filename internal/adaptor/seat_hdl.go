package adaptor

import (
	"net/http"

	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/usecase"
	"cinema-screening/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetSeats handles GET /api/seats?room_id=&page=&per_page=
func (h *SeatHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.GetSeats(r.Context(), paginationFromQuery(r), optionalQuery(r, "room_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get seats")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved successfully", seats)
}

// GetSeatByID handles GET /api/seats/{id}
func (h *SeatHandler) GetSeatByID(w http.ResponseWriter, r *http.Request) {
	seat, err := h.service.GetSeatByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get seat by ID")
		return
	}

	utils.ResponseSuccess(w, "Seat retrieved successfully", seat)
}

// CreateSeat handles POST /api/seats
func (h *SeatHandler) CreateSeat(w http.ResponseWriter, r *http.Request) {
	var req request.SeatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	seat, err := h.service.CreateSeat(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create seat")
		return
	}

	utils.ResponseCreated(w, "Seat created successfully", seat)
}

// UpdateSeat handles PUT /api/seats/{id}
func (h *SeatHandler) UpdateSeat(w http.ResponseWriter, r *http.Request) {
	var req request.SeatUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	seat, err := h.service.UpdateSeat(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update seat")
		return
	}

	utils.ResponseSuccess(w, "Seat updated successfully", seat)
}

// DeleteSeat handles DELETE /api/seats/{id}
func (h *SeatHandler) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSeat(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete seat")
		return
	}

	utils.ResponseSuccess(w, "Seat deleted successfully", nil)
}
