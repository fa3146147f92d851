package db

import (
	"context"
	"fmt"
	"strings"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

// feed查询条件 排序字段只能来自service层的白名单 这里只负责拼接
type FeedQuery struct {
	Keyword   string
	SortField string // 已经过白名单校验的列名
	Desc      bool
	PageNum   int64
	PageSize  int64
	ActorId   int64 // 未发布视频仅对所有者可见
}

// SearchVideos feed视频流查询
// 标题/描述大小写不敏感的子串匹配 排序键之外固定以video_id做次级排序
// 保证分页顺序稳定
func SearchVideos(ctx context.Context, q *FeedQuery) ([]*model.Video, error) {
	var videos []*model.Video
	tx := DB.WithContext(ctx).Model(&model.Video{})
	if q.Keyword != "" {
		pattern := "%" + strings.ToLower(q.Keyword) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	tx = tx.Where("is_published = ? OR user_id = ?", true, q.ActorId)

	direction := "ASC"
	if q.Desc {
		direction = "DESC"
	}
	tx = tx.Order(fmt.Sprintf("%s %s, video_id ASC", q.SortField, direction))

	if err := tx.Offset(int((q.PageNum - 1) * q.PageSize)).Limit(int(q.PageSize)).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "SearchVideos failed")
	}
	return videos, nil
}

// Videolist 获取用户发布的视频
func Videolist(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	var videos []*model.Video
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "VideoList count failed")
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Order("created_at DESC, video_id ASC").
		Offset(int((pageNum - 1) * pageSize)).Limit(int(pageSize)).Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "VideoList failed")
	}
	return videos, count, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return err
	}
	return nil
}

func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	video := new(model.Video)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func UpdateVideo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(updates).Error; err != nil {
		return errors.WithMessage(err, "Failed to update Video")
	}
	return nil
}

func UpdateVideoPublishStatus(ctx context.Context, videoId int64, isPublished bool) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("is_published", isPublished).Error; err != nil {
		return err
	}
	return nil
}

func UpdateVideoVisit(ctx context.Context, videoId, visitCount int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Update("visit_count", visitCount).Error; err != nil {
		return err
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	result := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("No rows has been affected")
	}
	return nil
}

func IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}
