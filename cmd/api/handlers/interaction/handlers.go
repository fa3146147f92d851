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

type LikeParam struct {
	ActorId  int64  `form:"actor_id"`
	Kind     string `form:"kind"`
	TargetId int64  `form:"target_id"`
}

type LikeCountParam struct {
	VideoId int64 `form:"video_id" query:"video_id"`
}

type LikedVideoListParam struct {
	UserId   int64 `form:"user_id" query:"user_id"`
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}

type CreateCommentParam struct {
	ActorId int64  `form:"actor_id"`
	VideoId int64  `form:"video_id"`
	Content string `form:"content"`
}

type UpdateCommentParam struct {
	ActorId   int64  `form:"actor_id"`
	CommentId int64  `form:"comment_id"`
	Content   string `form:"content"`
}

type DeleteCommentParam struct {
	ActorId   int64 `form:"actor_id"`
	CommentId int64 `form:"comment_id"`
}

type ListCommentParam struct {
	VideoId  int64 `form:"video_id" query:"video_id"`
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}
