package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/a1technologies/cooling-crm/internal/config"
)

const (
	redisDialTimeout  = 3 * time.Second
	redisIOTimeout    = 2 * time.Second
	redisStartupCheck = 3 * time.Second
)

// Redis holds the client backing the session slot.
type Redis struct {
	Client *redis.Client
	addr   string
}

// NewRedis builds a client for the session slot. The startup ping is bounded and a failure
// is logged, not fatal; the readiness check keeps reporting it.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *Redis {
	r := &Redis{
		Client: redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  redisDialTimeout,
			ReadTimeout:  redisIOTimeout,
			WriteTimeout: redisIOTimeout,
		}),
		addr: cfg.Addr,
	}

	checkCtx, cancel := context.WithTimeout(ctx, redisStartupCheck)
	defer cancel()
	if err := r.Ping(checkCtx); err != nil {
		logger.Warn("session slot redis unreachable", zap.Error(err))
	} else {
		logger.Info("session slot redis connected", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	}
	return r
}

// Close closes the client.
func (r *Redis) Close() {
	if r == nil || r.Client == nil {
		return
	}
	_ = r.Client.Close()
}

// Ping checks the server, naming the address on failure.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis %s: %w", r.addr, err)
	}
	return nil
}
