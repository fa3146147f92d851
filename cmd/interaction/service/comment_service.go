package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/resolver"
	"VideoTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (service *CommentService) CreateComment(actorId, videoId int64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("Content is required")
	}
	exist, err := db.IsLikeTargetVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("Video not found")
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    actorId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (service *CommentService) UpdateComment(actorId, commentId int64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errno.ParamErr.WithMessage("Content is required")
	}
	comment, err := db.GetCommentInfo(service.ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Comment not found")
		}
		return nil, err
	}
	if comment.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}
	if err := db.UpdateCommentContent(service.ctx, commentId, content); err != nil {
		return nil, err
	}
	comment.Content = content
	comment.UpdatedAt = time.Now().Format(constants.DataFormate)
	return comment, nil
}

func (service *CommentService) DeleteComment(actorId, commentId int64) (*model.Comment, error) {
	comment, err := db.GetCommentInfo(service.ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Comment not found")
		}
		return nil, err
	}
	if comment.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}
	if err := db.DeleteComment(service.ctx, commentId); err != nil {
		return nil, err
	}
	return comment, nil
}

// CommentList 视频评论列表 评论作者投影为公开摘要
// 作者已被删除的评论直接跳过 不让整页失败
func (service *CommentService) CommentList(videoId, pageNum, pageSize int64) ([]*model.CommentView, error) {
	exist, err := db.IsLikeTargetVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("Video not found")
	}
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	comments, err := db.GetVideoCommentListByPart(service.ctx, videoId, pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	ownerIds := make([]int64, 0, len(comments))
	for _, comment := range comments {
		ownerIds = append(ownerIds, comment.UserId)
	}
	owners, err := resolver.Owners(service.ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	views := make([]*model.CommentView, 0, len(comments))
	for _, comment := range comments {
		owner, ok := owners[comment.UserId]
		if !ok {
			continue
		}
		views = append(views, &model.CommentView{
			CommentId: comment.CommentId,
			VideoId:   comment.VideoId,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			CreatedBy: owner,
		})
	}
	return views, nil
}
