package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cinema-screening/internal/data/entity"
	"cinema-screening/pkg/utils"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	seatMapKeyPrefix = "seatmap:"

	// versionTTL only has to outlive a single seat map computation.
	versionTTL = 24 * time.Hour
)

// SeatMapCache holds computed seat maps per screening. All methods are best
// effort: a failing backend is logged and treated as a miss.
//
// Every screening has a version that Invalidate bumps. A reader takes the
// version before loading from the database and hands it back to Set, which
// drops the map if an invalidation happened in between.
type SeatMapCache interface {
	Get(ctx context.Context, screeningID uuid.UUID) ([]entity.SeatStatus, bool)
	Version(ctx context.Context, screeningID uuid.UUID) (int64, bool)
	Set(ctx context.Context, screeningID uuid.UUID, version int64, seats []entity.SeatStatus) bool
	Invalidate(ctx context.Context, screeningIDs ...uuid.UUID)
	Close() error
}

func SeatMapKey(screeningID uuid.UUID) string {
	return seatMapKeyPrefix + screeningID.String()
}

func SeatMapVersionKey(screeningID uuid.UUID) string {
	return seatMapKeyPrefix + screeningID.String() + ":version"
}

var errStaleSeatMap = errors.New("seat map version changed")

type redisSeatMapCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewSeatMapCache connects to Redis when an address is configured. With no
// address, or when the server does not answer a ping, it returns a cache that
// never hits so reads always go to the database.
func NewSeatMapCache(cfg utils.RedisConfig, log *zap.Logger) SeatMapCache {
	log = log.With(zap.String("component", "seatmap_cache"))

	if cfg.Addr == "" {
		log.Info("Redis address not configured, seat map cache disabled")
		return NewNoopSeatMapCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, seat map cache disabled",
			zap.Error(err),
			zap.String("addr", cfg.Addr),
		)
		_ = client.Close()
		return NewNoopSeatMapCache()
	}

	log.Info("Seat map cache connected",
		zap.String("addr", cfg.Addr),
		zap.Duration("ttl", cfg.SeatMapTTL),
	)
	return NewRedisSeatMapCache(client, cfg.SeatMapTTL, log)
}

func NewRedisSeatMapCache(client *redis.Client, ttl time.Duration, log *zap.Logger) SeatMapCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisSeatMapCache{client: client, ttl: ttl, log: log}
}

func (c *redisSeatMapCache) Get(ctx context.Context, screeningID uuid.UUID) ([]entity.SeatStatus, bool) {
	data, err := c.client.Get(ctx, SeatMapKey(screeningID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn("Seat map cache read failed",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, false
	}

	var seats []entity.SeatStatus
	if err := json.Unmarshal(data, &seats); err != nil {
		c.log.Warn("Seat map cache entry corrupt",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, false
	}

	return seats, true
}

func (c *redisSeatMapCache) Version(ctx context.Context, screeningID uuid.UUID) (int64, bool) {
	version, err := c.client.Get(ctx, SeatMapVersionKey(screeningID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		c.log.Warn("Seat map version read failed",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return 0, false
	}
	return version, true
}

// Set stores seats only while the screening is still at version. The version
// key is watched, so an Invalidate racing with the write aborts it.
func (c *redisSeatMapCache) Set(ctx context.Context, screeningID uuid.UUID, version int64, seats []entity.SeatStatus) bool {
	data, err := json.Marshal(seats)
	if err != nil {
		c.log.Warn("Seat map encode failed", zap.Error(err))
		return false
	}

	versionKey := SeatMapVersionKey(screeningID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleSeatMap
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, SeatMapKey(screeningID), data, c.ttl)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
		return true
	case errors.Is(err, errStaleSeatMap), errors.Is(err, redis.TxFailedErr):
		c.log.Debug("Seat map changed while computing, not cached",
			zap.String("screening_id", screeningID.String()),
			zap.Int64("version", version),
		)
	default:
		c.log.Warn("Seat map cache write failed",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
	}
	return false
}

// Invalidate bumps the version of every screening and drops its cached map.
func (c *redisSeatMapCache) Invalidate(ctx context.Context, screeningIDs ...uuid.UUID) {
	if len(screeningIDs) == 0 {
		return
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range screeningIDs {
			versionKey := SeatMapVersionKey(id)
			pipe.Incr(ctx, versionKey)
			pipe.Expire(ctx, versionKey, versionTTL)
			pipe.Del(ctx, SeatMapKey(id))
		}
		return nil
	})
	if err != nil {
		c.log.Warn("Seat map cache invalidation failed",
			zap.Error(err),
			zap.Int("screenings", len(screeningIDs)),
		)
	}
}

func (c *redisSeatMapCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("close redis client: %w", err)
	}
	return nil
}

type noopSeatMapCache struct{}

func NewNoopSeatMapCache() SeatMapCache {
	return noopSeatMapCache{}
}

func (noopSeatMapCache) Get(context.Context, uuid.UUID) ([]entity.SeatStatus, bool)      { return nil, false }
func (noopSeatMapCache) Version(context.Context, uuid.UUID) (int64, bool)                { return 0, false }
func (noopSeatMapCache) Set(context.Context, uuid.UUID, int64, []entity.SeatStatus) bool { return false }
func (noopSeatMapCache) Invalidate(context.Context, ...uuid.UUID)                        {}
func (noopSeatMapCache) Close() error                                                    { return nil }
