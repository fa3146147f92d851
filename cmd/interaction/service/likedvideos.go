package service

import (
	"context"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/resolver"
)

type LikedVideoService struct {
	ctx context.Context
}

func NewLikedVideoService(ctx context.Context) *LikedVideoService {
	return &LikedVideoService{ctx: ctx}
}

// LikedVideoList 用户喜欢的视频列表
// 点赞记录联结视频再联结视频作者 目标已删除的点赞直接丢弃
func (service *LikedVideoService) LikedVideoList(userId, pageNum, pageSize int64) ([]*model.LikedVideo, error) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	likes, err := db.GetVideoLikesByUserId(service.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	videoIds := make([]int64, 0, len(likes))
	for _, like := range likes {
		videoIds = append(videoIds, like.VideoId)
	}
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, err
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		videoById[video.VideoId] = video
		ownerIds = append(ownerIds, video.UserId)
	}
	owners, err := resolver.Owners(service.ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	result := make([]*model.LikedVideo, 0, len(likes))
	for _, like := range likes {
		video, ok := videoById[like.VideoId]
		if !ok {
			// 悬空引用 视频已删除
			continue
		}
		owner, ok := owners[video.UserId]
		if !ok {
			continue
		}
		result = append(result, &model.LikedVideo{
			LikeId:  like.VideoLikeId,
			LikedBy: like.UserId,
			Video: &model.FeedVideo{
				VideoId:     video.VideoId,
				VideoUrl:    video.VideoUrl,
				CoverUrl:    video.CoverUrl,
				Title:       video.Title,
				Description: video.Description,
				Duration:    video.Duration,
				VisitCount:  video.VisitCount,
				CreatedAt:   video.CreatedAt,
				CreatedBy:   owner,
			},
		})
	}
	return result, nil
}
