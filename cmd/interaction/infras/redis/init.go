package redis

import (
	"context"

	"VideoTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

const RedisDBInteraction = 1

var redisDBLikeCount *redis.Client

func Load() {
	redisDBLikeCount = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       RedisDBInteraction,
	})

	if _, err := redisDBLikeCount.Ping(context.Background()).Result(); err != nil {
		hlog.Info("redisDBLikeCount", err)
	}
}
