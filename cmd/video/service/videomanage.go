package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoManageService struct {
	ctx context.Context
}

func NewVideoManageService(ctx context.Context) *VideoManageService {
	return &VideoManageService{ctx: ctx}
}

func (service *VideoManageService) GetVideoInfo(videoId int64) (*model.Video, error) {
	video, err := db.GetVideoInfo(service.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Video not found")
		}
		return nil, err
	}
	return video, nil
}

type UpdateVideoRequest struct {
	ActorId       int64
	VideoId       int64
	Title         string
	Description   string
	ThumbnailPath string // 为空表示不更换封面
}

// Update 只有所有者可以修改视频信息
// 换封面时旧封面的远端删除尽力而为 失败只告警不阻塞更新
func (service *VideoManageService) Update(req *UpdateVideoRequest) (*model.Video, error) {
	if req.Title == "" || req.Description == "" {
		return nil, errno.ParamErr.WithMessage("Title and description are required")
	}
	video, err := service.GetVideoInfo(req.VideoId)
	if err != nil {
		return nil, err
	}
	if video.UserId != req.ActorId {
		return nil, errno.AuthorizationFailedErr
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"updated_at":  time.Now().Format(constants.DataFormate),
	}
	if req.ThumbnailPath != "" {
		if ok := oss.Remove(service.ctx, video.CoverUrl); !ok {
			hlog.Warnf("Failed to remove old thumbnail of video %d", video.VideoId)
		}
		coverUrl, err := oss.StoreThumbnail(service.ctx, req.ThumbnailPath, video.VideoId)
		if err != nil {
			return nil, errno.UploadFailedErr
		}
		updates["cover_url"] = coverUrl
	}
	if err := db.UpdateVideo(service.ctx, req.VideoId, updates); err != nil {
		return nil, err
	}
	return db.GetVideoInfo(service.ctx, req.VideoId)
}

// Delete 只有所有者可以删除
// 远端媒体删除尽力而为 失败只告警 本地记录删除不受影响
// 关联的评论/点赞/播放列表成员不级联删除 由读路径过滤悬空引用
func (service *VideoManageService) Delete(actorId, videoId int64) (*model.Video, error) {
	video, err := service.GetVideoInfo(videoId)
	if err != nil {
		return nil, err
	}
	if video.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}

	if ok := oss.Remove(service.ctx, video.VideoUrl); !ok {
		hlog.Warnf("Failed to remove remote media of video %d", videoId)
	}
	if ok := oss.Remove(service.ctx, video.CoverUrl); !ok {
		hlog.Warnf("Failed to remove remote thumbnail of video %d", videoId)
	}

	if err := db.DeleteVideo(service.ctx, videoId); err != nil {
		return nil, err
	}
	return video, nil
}

// TogglePublishStatus 翻转发布状态 只有所有者可以操作
func (service *VideoManageService) TogglePublishStatus(actorId, videoId int64) (*model.Video, error) {
	video, err := service.GetVideoInfo(videoId)
	if err != nil {
		return nil, err
	}
	if video.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}
	if err := db.UpdateVideoPublishStatus(service.ctx, videoId, !video.IsPublished); err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	return video, nil
}

// AddVisitCount 播放量+1
func (service *VideoManageService) AddVisitCount(videoId int64) error {
	video, err := service.GetVideoInfo(videoId)
	if err != nil {
		return err
	}
	return db.UpdateVideoVisit(service.ctx, videoId, video.VisitCount+1)
}

// VideoList 用户发布的视频列表
func (service *VideoManageService) VideoList(userId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	return db.Videolist(service.ctx, userId, pageNum, pageSize)
}
