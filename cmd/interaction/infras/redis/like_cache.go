package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 点赞目标业务类型
const (
	BusinessTypeVideo   = 1
	BusinessTypeComment = 2
	BusinessTypeTweet   = 3
)

// 计数缓存 Key：count:{business_id}:{target_id}
const countCacheKeyTemplate = "count:%d:%d"

// LikeCacheManager 点赞计数缓存 旁路缓存 尽力而为
// 数据库中的点赞记录才是事实来源
type LikeCacheManager struct {
	client     *redis.Client
	defaultTTL time.Duration
}

func NewLikeCacheManager() *LikeCacheManager {
	if redisDBLikeCount == nil {
		return nil
	}
	return &LikeCacheManager{
		client:     redisDBLikeCount,
		defaultTTL: 24 * time.Hour,
	}
}

func countKey(businessType int, targetId int64) string {
	return fmt.Sprintf(countCacheKeyTemplate, businessType, targetId)
}

func (lcm *LikeCacheManager) IncrLikeCount(ctx context.Context, businessType int, targetId int64) error {
	key := countKey(businessType, targetId)
	if err := lcm.client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return lcm.client.Expire(ctx, key, lcm.defaultTTL).Err()
}

func (lcm *LikeCacheManager) DecrLikeCount(ctx context.Context, businessType int, targetId int64) error {
	return lcm.client.Decr(ctx, countKey(businessType, targetId)).Err()
}

// GetLikeCount 缓存未命中时返回(0, redis.Nil) 由调用方回源数据库
func (lcm *LikeCacheManager) GetLikeCount(ctx context.Context, businessType int, targetId int64) (int64, error) {
	return lcm.client.Get(ctx, countKey(businessType, targetId)).Int64()
}

// SetLikeCount 回源后写缓存
func (lcm *LikeCacheManager) SetLikeCount(ctx context.Context, businessType int, targetId, count int64) error {
	return lcm.client.Set(ctx, countKey(businessType, targetId), count, lcm.defaultTTL).Err()
}
