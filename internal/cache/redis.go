package cache

import (
	"context"
	"time"

	"ArenaRevenue/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient 地址为空或 ping 失败时返回 nil，调用方据此关闭缓存
func NewRedisClient(cfg config.RedisConfig, logger *logrus.Logger) *redis.Client {
	if cfg.Addr == "" {
		logger.Info("未配置 Redis，响应缓存关闭")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warnf("Redis %s 不可用，响应缓存关闭", cfg.Addr)
		_ = client.Close()
		return nil
	}
	logger.Infof("Redis连接成功: %s", cfg.Addr)
	return client
}
