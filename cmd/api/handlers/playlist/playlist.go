package handlers

import (
	"context"

	"VideoTube.com/cmd/playlist/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param CreatePlaylistParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(param.ActorId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param UpdatePlaylistParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(param.ActorId, param.PlaylistId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var param DeletePlaylistParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).DeletePlaylist(param.ActorId, param.PlaylistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideoParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).AddVideo(param.ActorId, param.PlaylistId, param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideoParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).RemoveVideo(param.ActorId, param.PlaylistId, param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	var param GetPlaylistParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	view, err := service.NewPlaylistService(ctx).GetPlaylist(param.PlaylistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, view)
}

func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	var param GetUserPlaylistsParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).GetUserPlaylists(param.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlists)
}
