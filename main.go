// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cinema-screening/cmd"
	"cinema-screening/internal/cache"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/queue"
	"cinema-screening/internal/usecase"
	"cinema-screening/internal/wire"
	"cinema-screening/pkg/database"
	"cinema-screening/pkg/utils"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usage = `Usage: cinema-screening [command] [flags]

Commands:
  serve                 start the HTTP API (default)
  migrate [up|down]     apply or roll back the database schema
  create-seats          lay out seats for one room or every room

Flags for create-seats:
`

func main() {
	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	flags := pflag.NewFlagSet(command, pflag.ExitOnError)
	roomID := flags.String("room-id", "", "room to seed; all rooms when empty")
	rows := flags.Int("rows", usecase.DefaultSeatRows, "number of seat rows (A, B, ...)")
	seatsPerRow := flags.Int("seats-per-row", usecase.DefaultSeatsPerRow, "seats in each row")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	switch command {
	case "migrate":
		direction := "up"
		if flags.NArg() > 0 {
			direction = flags.Arg(0)
		}
		if err := database.Migrate(config.Database.MigrateURL(), direction); err != nil {
			logger.Fatal("Migration failed", zap.String("direction", direction), zap.Error(err))
		}
		logger.Info("Migration finished", zap.String("direction", direction))
		return
	case "serve", "create-seats":
	default:
		flags.Usage()
		os.Exit(2)
	}

	if config.Database.AutoMigrate {
		if err := database.Migrate(config.Database.MigrateURL(), "up"); err != nil {
			logger.Fatal("Auto-migration failed", zap.Error(err))
		}
		logger.Info("Database schema is up to date")
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	seatMaps := cache.NewSeatMapCache(config.Redis, logger)
	defer seatMaps.Close()

	events := queue.NewBookingPublisher(config.AMQP, logger)
	defer events.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(db, repos, seatMaps, events, logger)

	if command == "create-seats" {
		if err := cmd.ParseRoomFlag(*roomID); err != nil {
			logger.Fatal("Invalid flags", zap.Error(err))
		}

		layout := request.SeatBulkRequest{Rows: *rows, SeatsPerRow: *seatsPerRow}
		if err := cmd.CreateSeats(context.Background(), app.Service.Seat, repos.Room, *roomID, layout, logger); err != nil {
			logger.Fatal("Seat seeding failed", zap.Error(err))
		}
		return
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
