package handlers

import (
	"context"
	"os"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Publish 接收multipart上传的视频与可选封面 先落临时文件再交给发布服务
func Publish(ctx context.Context, c *app.RequestContext) {
	var param VideoPublishParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("Video file is required"), nil)
		return
	}
	videoPath, err := saveTempFile(c, videoFile)
	if err != nil {
		hlog.Errorf("Failed to save uploaded video: %v", err)
		SendResponse(c, errno.UploadFailedErr, nil)
		return
	}
	defer os.Remove(videoPath)

	thumbnailPath := ""
	if thumbFile, err := c.FormFile("thumbnail"); err == nil {
		thumbnailPath, err = saveTempFile(c, thumbFile)
		if err != nil {
			hlog.Errorf("Failed to save uploaded thumbnail: %v", err)
			SendResponse(c, errno.UploadFailedErr, nil)
			return
		}
		defer os.Remove(thumbnailPath)
	}

	video, err := service.NewVideoPublishService(ctx).Publish(&service.PublishRequest{
		ActorId:       param.ActorId,
		Title:         param.Title,
		Description:   param.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
		IsPublished:   param.IsPublished,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
