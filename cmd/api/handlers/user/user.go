package handlers

import (
	"context"

	"VideoTube.com/cmd/user/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateUser(ctx context.Context, c *app.RequestContext) {
	var param CreateUserParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUserService(ctx).CreateUser(param.UserName, param.FullName, param.AvatarUrl)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	var param GetUserInfoParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUserService(ctx).GetUserInfo(param.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
