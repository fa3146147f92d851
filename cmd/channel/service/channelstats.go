package service

import (
	"context"

	"VideoTube.com/cmd/channel/dal/db"
	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
)

type ChannelService struct {
	ctx context.Context
}

func NewChannelService(ctx context.Context) *ChannelService {
	return &ChannelService{ctx: ctx}
}

func (service *ChannelService) ensureChannelExist(channelId int64) error {
	exist, err := userdb.IsUserExist(service.ctx, channelId)
	if err != nil {
		return err
	}
	if !exist {
		return errno.RecordNotFoundErr.WithMessage("Channel not found")
	}
	return nil
}

// GetChannelStats 频道总览
// 总点赞数按三类目标的归属合并 悬空点赞不计入 无数据的新频道各项均为0
func (service *ChannelService) GetChannelStats(channelId int64) (*model.ChannelStats, error) {
	if err := service.ensureChannelExist(channelId); err != nil {
		return nil, err
	}

	totalViews, totalVideos, err := db.GetOwnedVideoStats(service.ctx, channelId)
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := db.GetSubscriberCount(service.ctx, channelId)
	if err != nil {
		return nil, err
	}

	videoIds, err := db.GetOwnedVideoIds(service.ctx, channelId)
	if err != nil {
		return nil, err
	}
	commentIds, err := db.GetOwnedCommentIds(service.ctx, channelId)
	if err != nil {
		return nil, err
	}
	tweetIds, err := db.GetOwnedTweetIds(service.ctx, channelId)
	if err != nil {
		return nil, err
	}
	videoLikes, err := db.CountVideoLikesIn(service.ctx, videoIds)
	if err != nil {
		return nil, err
	}
	commentLikes, err := db.CountCommentLikesIn(service.ctx, commentIds)
	if err != nil {
		return nil, err
	}
	tweetLikes, err := db.CountTweetLikesIn(service.ctx, tweetIds)
	if err != nil {
		return nil, err
	}

	return &model.ChannelStats{
		TotalViews:       totalViews,
		TotalVideos:      totalVideos,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       videoLikes + commentLikes + tweetLikes,
	}, nil
}

// GetChannelVideos 频道主页视频 包含未发布的 频道统计面向频道主本人
func (service *ChannelService) GetChannelVideos(channelId, pageNum, pageSize int64) ([]*model.Video, error) {
	if err := service.ensureChannelExist(channelId); err != nil {
		return nil, err
	}
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	return db.GetChannelVideos(service.ctx, channelId, pageNum, pageSize)
}
