package handlers

import (
	"context"
	"os"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func GetVideoInfo(ctx context.Context, c *app.RequestContext) {
	var param GetVideoInfoParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewVideoManageService(ctx).GetVideoInfo(param.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var param UpdateVideoParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	// 可选换封面
	thumbnailPath := ""
	if thumbFile, err := c.FormFile("thumbnail"); err == nil {
		thumbnailPath, err = saveTempFile(c, thumbFile)
		if err != nil {
			SendResponse(c, errno.UploadFailedErr, nil)
			return
		}
		defer os.Remove(thumbnailPath)
	}

	video, err := service.NewVideoManageService(ctx).Update(&service.UpdateVideoRequest{
		ActorId:       param.ActorId,
		VideoId:       param.VideoId,
		Title:         param.Title,
		Description:   param.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var param DeleteVideoParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewVideoManageService(ctx).Delete(param.ActorId, param.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
	var param TogglePublishParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewVideoManageService(ctx).TogglePublishStatus(param.ActorId, param.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func Visit(ctx context.Context, c *app.RequestContext) {
	var param VisitParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewVideoManageService(ctx).AddVisitCount(param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func VideoList(ctx context.Context, c *app.RequestContext) {
	var param VideoListParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, total, err := service.NewVideoManageService(ctx).VideoList(param.UserId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"total":  total,
		"videos": videos,
	})
}
