package handlers

import (
	"context"

	"VideoTube.com/cmd/channel/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	var param ChannelStatsParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	stats, err := service.NewChannelService(ctx).GetChannelStats(param.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	var param ChannelVideosParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewChannelService(ctx).GetChannelVideos(param.ChannelId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
