package adaptor

import (
	"net/http"

	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/usecase"
	"cinema-screening/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScreeningHandler struct {
	service usecase.ScreeningService
	log     *zap.Logger
}

func NewScreeningHandler(service usecase.ScreeningService, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{
		service: service,
		log:     log.With(zap.String("handler", "screening")),
	}
}

// GetScreenings handles GET /api/screenings?room_id=&movie_id=&page=&per_page=
func (h *ScreeningHandler) GetScreenings(w http.ResponseWriter, r *http.Request) {
	screenings, err := h.service.GetScreenings(r.Context(),
		paginationFromQuery(r),
		optionalQuery(r, "room_id"),
		optionalQuery(r, "movie_id"),
	)
	if err != nil {
		handleServiceError(w, h.log, err, "get screenings")
		return
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", screenings)
}

// GetScreeningByID handles GET /api/screenings/{id}
func (h *ScreeningHandler) GetScreeningByID(w http.ResponseWriter, r *http.Request) {
	screening, err := h.service.GetScreeningByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get screening by ID")
		return
	}

	utils.ResponseSuccess(w, "Screening retrieved successfully", screening)
}

// GetSeatStatus handles GET /api/screenings/{id}/seats
func (h *ScreeningHandler) GetSeatStatus(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.GetSeatStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get seat status")
		return
	}

	utils.ResponseSuccess(w, "Seat status retrieved successfully", seats)
}

// CreateScreening handles POST /api/screenings
func (h *ScreeningHandler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	screening, err := h.service.CreateScreening(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create screening")
		return
	}

	utils.ResponseCreated(w, "Screening created successfully", screening)
}

// UpdateScreening handles PUT /api/screenings/{id}
func (h *ScreeningHandler) UpdateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	screening, err := h.service.UpdateScreening(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update screening")
		return
	}

	utils.ResponseSuccess(w, "Screening updated successfully", screening)
}

// DeleteScreening handles DELETE /api/screenings/{id}
func (h *ScreeningHandler) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteScreening(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete screening")
		return
	}

	utils.ResponseSuccess(w, "Screening deleted successfully", nil)
}
