package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeRez0/sharpdata/internal/adapter/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLease is a lease shared by every replica using the same Redis.
type RedisLease struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisClient(ctx context.Context, cfg *config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

func NewRedisLease(rdb *redis.Client, log *zap.Logger) *RedisLease {
	return &RedisLease{rdb: rdb, logger: log}
}

func (l *RedisLease) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context), bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("set lease %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) {
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
			l.logger.Warn("Release lease", zap.String("key", key), zap.Error(err))
		}
	}
	return release, true, nil
}
