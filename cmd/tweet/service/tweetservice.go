package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/tweet/dal/db"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (service *TweetService) CreateTweet(actorId int64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("Content is required")
	}
	exist, err := userdb.IsUserExist(service.ctx, actorId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("User not found")
	}
	now := time.Now().Format(constants.DataFormate)
	tweet := &model.Tweet{
		TweetId:   utils.GenerateID(),
		UserId:    actorId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateTweet(service.ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (service *TweetService) getOwnedTweet(actorId, tweetId int64) (*model.Tweet, error) {
	tweet, err := db.GetTweetInfo(service.ctx, tweetId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Tweet not found")
		}
		return nil, err
	}
	if tweet.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}
	return tweet, nil
}

func (service *TweetService) UpdateTweet(actorId, tweetId int64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("Content is required")
	}
	tweet, err := service.getOwnedTweet(actorId, tweetId)
	if err != nil {
		return nil, err
	}
	if err := db.UpdateTweetContent(service.ctx, tweetId, content); err != nil {
		return nil, err
	}
	tweet.Content = content
	return tweet, nil
}

func (service *TweetService) DeleteTweet(actorId, tweetId int64) (*model.Tweet, error) {
	tweet, err := service.getOwnedTweet(actorId, tweetId)
	if err != nil {
		return nil, err
	}
	if err := db.DeleteTweet(service.ctx, tweetId); err != nil {
		return nil, err
	}
	return tweet, nil
}

// GetUserTweets 用户动态列表 按创建时间倒序
func (service *TweetService) GetUserTweets(userId, pageNum, pageSize int64) ([]*model.Tweet, error) {
	exist, err := userdb.IsUserExist(service.ctx, userId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("User not found")
	}
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	return db.GetTweetsByUserId(service.ctx, userId, pageNum, pageSize)
}
