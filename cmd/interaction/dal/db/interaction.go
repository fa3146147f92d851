package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Update("content", content).Error; err != nil {
		return err
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	return nil
}

// 获取某一条评论的全部信息
func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// 获取视频的评论列表 以创建时间排序 comment_id兜底保证分页稳定
func GetVideoCommentListByPart(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Order("created_at ASC, comment_id ASC").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func IsCommentExist(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// 点赞记录的查增删 唯一索引负责并发toggle下的原子性
// 创建时命中gorm.ErrDuplicatedKey说明并发toggle已抢先创建

func GetVideoLike(ctx context.Context, userId, videoId int64) (*model.VideoLike, error) {
	like := &model.VideoLike{}
	err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("user_id = ? And video_id = ?", userId, videoId).First(like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return like, nil
}

func CreateVideoLike(ctx context.Context, like *model.VideoLike) error {
	return DB.WithContext(ctx).Create(like).Error
}

func DeleteVideoLike(ctx context.Context, userId, videoId int64) (int64, error) {
	result := DB.WithContext(ctx).Where("user_id = ? And video_id = ?", userId, videoId).Delete(&model.VideoLike{})
	return result.RowsAffected, result.Error
}

func GetCommentLike(ctx context.Context, userId, commentId int64) (*model.CommentLike, error) {
	like := &model.CommentLike{}
	err := DB.WithContext(ctx).Model(&model.CommentLike{}).
		Where("user_id = ? And comment_id = ?", userId, commentId).First(like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return like, nil
}

func CreateCommentLike(ctx context.Context, like *model.CommentLike) error {
	return DB.WithContext(ctx).Create(like).Error
}

func DeleteCommentLike(ctx context.Context, userId, commentId int64) (int64, error) {
	result := DB.WithContext(ctx).Where("user_id = ? And comment_id = ?", userId, commentId).Delete(&model.CommentLike{})
	return result.RowsAffected, result.Error
}

func GetTweetLike(ctx context.Context, userId, tweetId int64) (*model.TweetLike, error) {
	like := &model.TweetLike{}
	err := DB.WithContext(ctx).Model(&model.TweetLike{}).
		Where("user_id = ? And tweet_id = ?", userId, tweetId).First(like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return like, nil
}

func CreateTweetLike(ctx context.Context, like *model.TweetLike) error {
	return DB.WithContext(ctx).Create(like).Error
}

func DeleteTweetLike(ctx context.Context, userId, tweetId int64) (int64, error) {
	result := DB.WithContext(ctx).Where("user_id = ? And tweet_id = ?", userId, tweetId).Delete(&model.TweetLike{})
	return result.RowsAffected, result.Error
}

// GetVideoLikeCount 这个视频被多少人喜欢
func GetVideoLikeCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetVideoLikesByUserId 获取用户喜欢的视频点赞记录 分页
func GetVideoLikesByUserId(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.VideoLike, error) {
	var likes []*model.VideoLike
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("user_id = ?", userId).
		Order("created_at DESC, video_like_id ASC").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// 校验点赞目标是否存在 目标实体分属不同领域 直接查对应实体表
func IsLikeTargetVideoExist(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// GetVideosByIds 批量取点赞目标视频 用于喜欢列表的联结
func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	var videos []*model.Video
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func IsLikeTargetTweetExist(ctx context.Context, tweetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}
