package handlers

import (
	"context"

	"VideoTube.com/cmd/relation/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	var param SubscribeParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	result, err := service.NewRelationService(ctx).ToggleSubscription(param.ActorId, param.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

func SubscriberList(ctx context.Context, c *app.RequestContext) {
	var param SubscriberListParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscribers, err := service.NewSubscriberListService(ctx).SubscriberList(param.ChannelId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, subscribers)
}

func SubscribedChannelList(ctx context.Context, c *app.RequestContext) {
	var param SubscribedChannelListParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channels, err := service.NewSubscriberListService(ctx).SubscribedChannelList(param.UserId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, channels)
}
