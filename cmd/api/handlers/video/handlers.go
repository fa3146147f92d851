package handlers

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
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

// saveTempFile 落盘到临时目录 文件名加uuid前缀避免并发上传互相覆盖
func saveTempFile(c *app.RequestContext, file *multipart.FileHeader) (string, error) {
	path := filepath.Join(os.TempDir(), uuid.NewString()+"_"+file.Filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

type FeedListParam struct {
	Keyword   string `form:"keyword" query:"keyword"`
	SortBy    string `form:"sort_by" query:"sort_by"`
	SortOrder string `form:"sort_order" query:"sort_order"`
	PageNum   int64  `form:"page_num" query:"page_num"`
	PageSize  int64  `form:"page_size" query:"page_size"`
	ActorId   int64  `form:"actor_id" query:"actor_id"`
}

type VideoPublishParam struct {
	ActorId     int64  `form:"actor_id"`
	Title       string `form:"title"`
	Description string `form:"description"`
	IsPublished bool   `form:"is_published"`
}

type GetVideoInfoParam struct {
	VideoId int64 `form:"video_id" query:"video_id"`
}

type UpdateVideoParam struct {
	ActorId     int64  `form:"actor_id"`
	VideoId     int64  `form:"video_id"`
	Title       string `form:"title"`
	Description string `form:"description"`
}

type DeleteVideoParam struct {
	ActorId int64 `form:"actor_id"`
	VideoId int64 `form:"video_id"`
}

type TogglePublishParam struct {
	ActorId int64 `form:"actor_id"`
	VideoId int64 `form:"video_id"`
}

type VisitParam struct {
	VideoId int64 `form:"video_id" query:"video_id"`
}

type VideoListParam struct {
	UserId   int64 `form:"user_id" query:"user_id"`
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}
