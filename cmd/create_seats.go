package cmd

import (
	"context"
	"errors"
	"fmt"

	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSeats lays out the seat grid for roomID, or for every room when
// roomID is empty. Rooms that already have seats are skipped.
func CreateSeats(
	ctx context.Context,
	seats usecase.SeatService,
	rooms repository.RoomRepository,
	roomID string,
	layout request.SeatBulkRequest,
	logger *zap.Logger,
) error {
	var roomIDs []string
	if roomID != "" {
		roomIDs = []string{roomID}
	} else {
		ids, err := rooms.FindAllIDs(ctx)
		if err != nil {
			return fmt.Errorf("list rooms: %w", err)
		}
		for _, id := range ids {
			roomIDs = append(roomIDs, id.String())
		}
	}

	if len(roomIDs) == 0 {
		logger.Warn("No rooms found, nothing to seed")
		return nil
	}

	var created int
	for _, id := range roomIDs {
		result, err := seats.BulkCreateSeats(ctx, id, &layout)
		switch {
		case errors.Is(err, usecase.ErrConflict):
			logger.Warn("Skipping room", zap.String("room_id", id), zap.Error(err))
			continue
		case err != nil:
			return fmt.Errorf("create seats for room %s: %w", id, err)
		}

		created += result.Created
		logger.Info("Seats created",
			zap.String("room_id", result.RoomID),
			zap.Int("rows", result.Rows),
			zap.Int("seats_per_row", result.SeatsPerRow),
			zap.Int("created", result.Created),
		)
	}

	logger.Info("Seat seeding finished", zap.Int("rooms", len(roomIDs)), zap.Int("created", created))
	return nil
}

// ParseRoomFlag rejects malformed --room-id values before touching the database.
func ParseRoomFlag(raw string) error {
	if raw == "" {
		return nil
	}
	if _, err := uuid.Parse(raw); err != nil {
		return fmt.Errorf("invalid --room-id %q: %w", raw, err)
	}
	return nil
}
