package handlers

import (
	"context"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func FeedList(ctx context.Context, c *app.RequestContext) {
	var param FeedListParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	feed, err := service.NewFeedListService(ctx).FeedList(&service.FeedListRequest{
		Keyword:   param.Keyword,
		SortBy:    param.SortBy,
		SortOrder: param.SortOrder,
		PageNum:   param.PageNum,
		PageSize:  param.PageSize,
		ActorId:   param.ActorId,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, feed)
}
