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

type CreateTweetParam struct {
	ActorId int64  `form:"actor_id"`
	Content string `form:"content"`
}

type UpdateTweetParam struct {
	ActorId int64  `form:"actor_id"`
	TweetId int64  `form:"tweet_id"`
	Content string `form:"content"`
}

type DeleteTweetParam struct {
	ActorId int64 `form:"actor_id"`
	TweetId int64 `form:"tweet_id"`
}

type GetUserTweetsParam struct {
	UserId   int64 `form:"user_id" query:"user_id"`
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}
