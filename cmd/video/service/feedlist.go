package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/resolver"
)

// 排序字段白名单 对外的排序键映射到实际列名
// 不在名单内的排序键一律拒绝
var sortFieldAllowList = map[string]string{
	constants.SortByCreatedAt: "created_at",
	constants.SortByViews:     "visit_count",
	constants.SortByDuration:  "duration",
}

type FeedListService struct {
	ctx context.Context
}

func NewFeedListService(ctx context.Context) *FeedListService {
	return &FeedListService{ctx: ctx}
}

type FeedListRequest struct {
	Keyword   string
	SortBy    string
	SortOrder string
	PageNum   int64
	PageSize  int64
	ActorId   int64
}

// FeedList 视频流接口
// 未发布视频只有所有者可见 视频作者投影为公开摘要
// 作者已被删除的行跳过 不让整页失败
func (service *FeedListService) FeedList(req *FeedListRequest) ([]*model.FeedVideo, error) {
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = constants.SortByCreatedAt
	}
	sortField, ok := sortFieldAllowList[sortBy]
	if !ok {
		return nil, errno.ParamErr.WithMessage("unsupported sort field: " + req.SortBy)
	}
	if req.SortOrder != "" && req.SortOrder != constants.SortOrderAsc && req.SortOrder != constants.SortOrderDesc {
		return nil, errno.ParamErr.WithMessage("unsupported sort order: " + req.SortOrder)
	}
	pageNum := req.PageNum
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	pageSize := req.PageSize
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	videos, err := db.SearchVideos(service.ctx, &db.FeedQuery{
		Keyword:   req.Keyword,
		SortField: sortField,
		Desc:      req.SortOrder != constants.SortOrderAsc,
		PageNum:   pageNum,
		PageSize:  pageSize,
		ActorId:   req.ActorId,
	})
	if err != nil {
		return nil, err
	}

	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		ownerIds = append(ownerIds, video.UserId)
	}
	owners, err := resolver.Owners(service.ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	feed := make([]*model.FeedVideo, 0, len(videos))
	for _, video := range videos {
		owner, ok := owners[video.UserId]
		if !ok {
			continue
		}
		feed = append(feed, &model.FeedVideo{
			VideoId:     video.VideoId,
			VideoUrl:    video.VideoUrl,
			CoverUrl:    video.CoverUrl,
			Title:       video.Title,
			Description: video.Description,
			Duration:    video.Duration,
			VisitCount:  video.VisitCount,
			CreatedAt:   video.CreatedAt,
			CreatedBy:   owner,
		})
	}
	return feed, nil
}
