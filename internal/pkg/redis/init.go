package redis

import (
	"MoodMastery/internal/api/config"
	"MoodMastery/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

var Rdb *redis.Client

// InitRedis 初始化 Redis 客户端连接；未配置地址时以单机模式运行，Rdb 保持为 nil
func InitRedis(cfg config.RedisConfig) error {
	if cfg.Addr == "" {
		log.Warn("Redis address not configured, running without redis")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	rdb.AddHook(logger.NewRedisLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return err
	}

	Rdb = rdb
	log.Info("Redis connection established successfully.", "addr", cfg.Addr)
	return nil
}

// Enabled Redis 是否可用
func Enabled() bool {
	return Rdb != nil
}

// Close 关闭连接
func Close() error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Close()
}
