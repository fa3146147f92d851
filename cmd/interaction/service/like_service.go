package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/interaction/infras/redis"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// LikeActionService 点赞toggle服务
// 同一(用户,目标)至多一条记录 靠存储层唯一索引兜底并发
type LikeActionService struct {
	ctx          context.Context
	cacheManager *redis.LikeCacheManager
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{
		ctx:          ctx,
		cacheManager: redis.NewLikeCacheManager(),
	}
}

// Toggle 存在则删除并返回removed 不存在则创建并返回created
// 创建撞唯一索引说明并发toggle已抢先创建 返回已存在的记录
func (service *LikeActionService) Toggle(kind string, actorId, targetId int64) (*model.ToggleResult, error) {
	switch kind {
	case constants.LikeKindVideo:
		return service.toggleVideoLike(actorId, targetId)
	case constants.LikeKindComment:
		return service.toggleCommentLike(actorId, targetId)
	case constants.LikeKindTweet:
		return service.toggleTweetLike(actorId, targetId)
	default:
		return nil, errno.ParamErr.WithMessage("unknown like kind: " + kind)
	}
}

func (service *LikeActionService) toggleVideoLike(actorId, videoId int64) (*model.ToggleResult, error) {
	exist, err := db.IsLikeTargetVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.TargetNotFoundErr
	}

	existing, err := db.GetVideoLike(service.ctx, actorId, videoId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if _, err := db.DeleteVideoLike(service.ctx, actorId, videoId); err != nil {
			return nil, err
		}
		service.adjustCount(redis.BusinessTypeVideo, videoId, -1)
		return &model.ToggleResult{State: constants.ToggleStateRemoved, Record: existing}, nil
	}

	like := &model.VideoLike{
		VideoLikeId: utils.GenerateID(),
		UserId:      actorId,
		VideoId:     videoId,
		CreatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateVideoLike(service.ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发toggle抢先创建 返回已存在的记录
			winner, gerr := db.GetVideoLike(service.ctx, actorId, videoId)
			if gerr != nil || winner == nil {
				return nil, err
			}
			return &model.ToggleResult{State: constants.ToggleStateCreated, Record: winner}, nil
		}
		return nil, err
	}
	service.adjustCount(redis.BusinessTypeVideo, videoId, 1)
	return &model.ToggleResult{State: constants.ToggleStateCreated, Record: like}, nil
}

func (service *LikeActionService) toggleCommentLike(actorId, commentId int64) (*model.ToggleResult, error) {
	exist, err := db.IsCommentExist(service.ctx, commentId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.TargetNotFoundErr
	}

	existing, err := db.GetCommentLike(service.ctx, actorId, commentId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if _, err := db.DeleteCommentLike(service.ctx, actorId, commentId); err != nil {
			return nil, err
		}
		service.adjustCount(redis.BusinessTypeComment, commentId, -1)
		return &model.ToggleResult{State: constants.ToggleStateRemoved, Record: existing}, nil
	}

	like := &model.CommentLike{
		CommentLikeId: utils.GenerateID(),
		UserId:        actorId,
		CommentId:     commentId,
		CreatedAt:     time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateCommentLike(service.ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, gerr := db.GetCommentLike(service.ctx, actorId, commentId)
			if gerr != nil || winner == nil {
				return nil, err
			}
			return &model.ToggleResult{State: constants.ToggleStateCreated, Record: winner}, nil
		}
		return nil, err
	}
	service.adjustCount(redis.BusinessTypeComment, commentId, 1)
	return &model.ToggleResult{State: constants.ToggleStateCreated, Record: like}, nil
}

func (service *LikeActionService) toggleTweetLike(actorId, tweetId int64) (*model.ToggleResult, error) {
	exist, err := db.IsLikeTargetTweetExist(service.ctx, tweetId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.TargetNotFoundErr
	}

	existing, err := db.GetTweetLike(service.ctx, actorId, tweetId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if _, err := db.DeleteTweetLike(service.ctx, actorId, tweetId); err != nil {
			return nil, err
		}
		service.adjustCount(redis.BusinessTypeTweet, tweetId, -1)
		return &model.ToggleResult{State: constants.ToggleStateRemoved, Record: existing}, nil
	}

	like := &model.TweetLike{
		TweetLikeId: utils.GenerateID(),
		UserId:      actorId,
		TweetId:     tweetId,
		CreatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateTweetLike(service.ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, gerr := db.GetTweetLike(service.ctx, actorId, tweetId)
			if gerr != nil || winner == nil {
				return nil, err
			}
			return &model.ToggleResult{State: constants.ToggleStateCreated, Record: winner}, nil
		}
		return nil, err
	}
	service.adjustCount(redis.BusinessTypeTweet, tweetId, 1)
	return &model.ToggleResult{State: constants.ToggleStateCreated, Record: like}, nil
}

// adjustCount 更新缓存计数 缓存不可用时跳过 不影响toggle结果
func (service *LikeActionService) adjustCount(businessType int, targetId, delta int64) {
	if service.cacheManager == nil {
		return
	}
	var err error
	if delta > 0 {
		err = service.cacheManager.IncrLikeCount(service.ctx, businessType, targetId)
	} else {
		err = service.cacheManager.DecrLikeCount(service.ctx, businessType, targetId)
	}
	if err != nil {
		hlog.Warnf("Failed to adjust like count cache: %v", err)
	}
}

// GetVideoLikeCount 读缓存 未命中回源数据库并回写
func (service *LikeActionService) GetVideoLikeCount(videoId int64) (int64, error) {
	if service.cacheManager != nil {
		if count, err := service.cacheManager.GetLikeCount(service.ctx, redis.BusinessTypeVideo, videoId); err == nil {
			return count, nil
		}
	}
	count, err := db.GetVideoLikeCount(service.ctx, videoId)
	if err != nil {
		return 0, err
	}
	if service.cacheManager != nil {
		if err := service.cacheManager.SetLikeCount(service.ctx, redis.BusinessTypeVideo, videoId, count); err != nil {
			hlog.Warnf("Failed to backfill like count cache: %v", err)
		}
	}
	return count, nil
}
