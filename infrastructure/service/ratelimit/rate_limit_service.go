package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

// RateLimitService counts attempts per key inside a window and blocks keys
// that go over the limit.
type RateLimitService interface {
	CheckLimit(ctx context.Context, key string, limit int) (bool, error)
	Increment(ctx context.Context, key string, window time.Duration) error
	Block(ctx context.Context, key string, duration time.Duration, reason string) error
	IsBlocked(ctx context.Context, key string) (bool, error)
	GetAttempts(ctx context.Context, key string) (int, error)
}

type RateLimitConfig struct {
	Enabled       bool
	RedisURL      string
	IPAttempts    int
	IPWindow      time.Duration
	BlockDuration time.Duration
}

var ErrMissingRedisURL = errors.New("REDIS_URL is required when rate limiting is enabled")

type rateLimitService struct {
	redisClient *redis.Client
	logger      logger.Logger
	keyPrefix   string
}

// NewRateLimitService returns a Redis backed limiter, or a no-op one when
// rate limiting is disabled.
func NewRateLimitService(ctx context.Context, config RateLimitConfig, log logger.Logger) (RateLimitService, error) {
	if !config.Enabled {
		log.Info(ctx, "Rate limiting disabled", nil)
		return NoopRateLimitService{}, nil
	}
	if config.RedisURL == "" {
		return nil, ErrMissingRedisURL
	}

	opt, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info(ctx, "Rate limiting service initialized", map[string]interface{}{
		"ip_attempts":    config.IPAttempts,
		"ip_window":      config.IPWindow.String(),
		"block_duration": config.BlockDuration.String(),
	})

	return NewRedisRateLimitService(client, log), nil
}

// NewRedisRateLimitService wraps an existing client. Keys are namespaced
// under "pradera:ratelimit:".
func NewRedisRateLimitService(client *redis.Client, log logger.Logger) RateLimitService {
	return &rateLimitService{redisClient: client, logger: log, keyPrefix: "pradera:ratelimit:"}
}

func (s *rateLimitService) CheckLimit(ctx context.Context, key string, limit int) (bool, error) {
	current, err := s.GetAttempts(ctx, key)
	if err != nil {
		return false, err
	}

	underLimit := current < limit
	s.logger.Debug(ctx, "Rate limit check", map[string]interface{}{
		"key":         key,
		"current":     current,
		"limit":       limit,
		"under_limit": underLimit,
	})
	return underLimit, nil
}

func (s *rateLimitService) Increment(ctx context.Context, key string, window time.Duration) error {
	pipeline := s.redisClient.TxPipeline()
	incr := pipeline.Incr(ctx, s.keyPrefix+key)
	pipeline.Expire(ctx, s.keyPrefix+key, window)

	if _, err := pipeline.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment rate limit: %w", err)
	}

	s.logger.Debug(ctx, "Rate limit incremented", map[string]interface{}{
		"key":    key,
		"count":  incr.Val(),
		"window": window.String(),
	})
	return nil
}

func (s *rateLimitService) Block(ctx context.Context, key string, duration time.Duration, reason string) error {
	blockKey := s.keyPrefix + "blocked:" + key

	pipeline := s.redisClient.TxPipeline()
	pipeline.HSet(ctx, blockKey, map[string]interface{}{
		"reason":         reason,
		"blocked_at":     time.Now().Unix(),
		"correlation_id": logger.CorrelationIDFromContext(ctx),
	})
	pipeline.Expire(ctx, blockKey, duration)

	if _, err := pipeline.Exec(ctx); err != nil {
		return fmt.Errorf("failed to block key: %w", err)
	}

	logger.LogSecurityEvent(ctx, s.logger, "rate_limit_block", "MEDIUM", map[string]interface{}{
		"key":      key,
		"duration": duration.String(),
		"reason":   reason,
	})
	return nil
}

func (s *rateLimitService) IsBlocked(ctx context.Context, key string) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, s.keyPrefix+"blocked:"+key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check block status: %w", err)
	}
	return exists > 0, nil
}

func (s *rateLimitService) GetAttempts(ctx context.Context, key string) (int, error) {
	count, err := s.redisClient.Get(ctx, s.keyPrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get attempts: %w", err)
	}
	return count, nil
}

// NoopRateLimitService allows everything.
type NoopRateLimitService struct{}

func (NoopRateLimitService) CheckLimit(context.Context, string, int) (bool, error) { return true, nil }

func (NoopRateLimitService) Increment(context.Context, string, time.Duration) error { return nil }

func (NoopRateLimitService) Block(context.Context, string, time.Duration, string) error { return nil }

func (NoopRateLimitService) IsBlocked(context.Context, string) (bool, error) { return false, nil }

func (NoopRateLimitService) GetAttempts(context.Context, string) (int, error) { return 0, nil }
