package handlers

import (
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type CreatePlaylistParam struct {
	ActorId     int64  `form:"actor_id"`
	Name        string `form:"name"`
	Description string `form:"description"`
}

type UpdatePlaylistParam struct {
	ActorId     int64  `form:"actor_id"`
	PlaylistId  int64  `form:"playlist_id"`
	Name        string `form:"name"`
	Description string `form:"description"`
}

type DeletePlaylistParam struct {
	ActorId    int64 `form:"actor_id"`
	PlaylistId int64 `form:"playlist_id"`
}

type PlaylistVideoParam struct {
	ActorId    int64 `form:"actor_id"`
	PlaylistId int64 `form:"playlist_id"`
	VideoId    int64 `form:"video_id"`
}

type GetPlaylistParam struct {
	PlaylistId int64 `form:"playlist_id" query:"playlist_id"`
}

type GetUserPlaylistsParam struct {
	UserId int64 `form:"user_id" query:"user_id"`
}
