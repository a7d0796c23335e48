// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"cinema-screening/internal/adaptor"
	"cinema-screening/internal/cache"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/queue"
	"cinema-screening/internal/usecase"
	"cinema-screening/pkg/database"
	"cinema-screening/pkg/middleware"
	"cinema-screening/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router and services
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services and handlers and mounts every route
func Wiring(
	db database.PgxIface,
	repo *repository.Repository,
	seatMaps cache.SeatMapCache,
	events queue.BookingPublisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, seatMaps, events, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, db, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, db database.PgxIface, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireRoom(r, handler.Room)
	wireMovie(r, handler.Movie)
	wireScreening(r, handler.Screening)
	wireSeat(r, handler.Seat)
	wireBooking(r, handler.Booking)

	r.Get("/health", healthHandler(db))

	return r
}

func healthHandler(db database.PgxIface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Database unavailable", nil, nil)
			return
		}

		utils.ResponseSuccess(w, "OK", map[string]string{"database": "up"})
	}
}
