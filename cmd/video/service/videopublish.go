package service

import (
	"context"
	"os"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type VideoPublishService struct {
	ctx context.Context
}

func NewVideoPublishService(ctx context.Context) *VideoPublishService {
	return &VideoPublishService{ctx: ctx}
}

type PublishRequest struct {
	ActorId       int64
	Title         string
	Description   string
	VideoPath     string // 本地临时文件
	ThumbnailPath string // 为空时从视频截取首帧
	IsPublished   bool
}

// Publish 发布视频
// 先把媒体文件送入对象存储（含时长探测）再落库 任一上传失败都不会产生半写记录
func (service *VideoPublishService) Publish(req *PublishRequest) (*model.Video, error) {
	if req.Title == "" || req.Description == "" {
		return nil, errno.ParamErr.WithMessage("Title and description are required")
	}
	if req.VideoPath == "" {
		return nil, errno.ParamErr.WithMessage("Video file is required")
	}

	vid := utils.GenerateID()

	stored, err := oss.StoreVideo(service.ctx, req.VideoPath, vid)
	if err != nil {
		hlog.Errorf("Failed to store video %d: %v", vid, err)
		return nil, errno.UploadFailedErr
	}

	thumbnailPath := req.ThumbnailPath
	if thumbnailPath == "" {
		thumbnailPath, err = utils.GetVideoThumbnail(req.VideoPath, os.TempDir())
		if err != nil {
			return nil, errno.UploadFailedErr.WithMessage("Failed to generate thumbnail")
		}
	}
	coverUrl, err := oss.StoreThumbnail(service.ctx, thumbnailPath, vid)
	if err != nil {
		hlog.Errorf("Failed to store thumbnail %d: %v", vid, err)
		return nil, errno.UploadFailedErr
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     vid,
		UserId:      req.ActorId,
		VideoUrl:    stored.Url,
		CoverUrl:    coverUrl,
		Title:       req.Title,
		Description: req.Description,
		Duration:    stored.Duration,
		IsPublished: req.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.InsertVideo(service.ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}
