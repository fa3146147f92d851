package db

import (
	"context"

	"VideoTube.com/cmd/model"
)

// 频道统计的只读聚合查询 所有聚合在无匹配行时返回0而不是错误

// GetOwnedVideoStats 统计用户发布视频的总播放量与数量
func GetOwnedVideoStats(ctx context.Context, ownerId int64) (totalViews, totalVideos int64, err error) {
	var views *int64
	if err = DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", ownerId).
		Select("SUM(visit_count)").Scan(&views).Error; err != nil {
		return 0, 0, err
	}
	if views != nil {
		totalViews = *views
	}
	if err = DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", ownerId).Count(&totalVideos).Error; err != nil {
		return 0, 0, err
	}
	return totalViews, totalVideos, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// 点赞数统计需要按目标归属做三路合并
// 先批量取出用户拥有的各类目标id 再按id集合数点赞行
// 悬空点赞（目标已删除）的目标id不会出现在集合里 自然计0

func GetOwnedVideoIds(ctx context.Context, ownerId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", ownerId).
		Select("video_id").Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func GetOwnedCommentIds(ctx context.Context, ownerId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("user_id = ?", ownerId).
		Select("comment_id").Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func GetOwnedTweetIds(ctx context.Context, ownerId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", ownerId).
		Select("tweet_id").Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func CountVideoLikesIn(ctx context.Context, videoIds []int64) (count int64, err error) {
	if len(videoIds) == 0 {
		return 0, nil
	}
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("video_id IN (?)", videoIds).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountCommentLikesIn(ctx context.Context, commentIds []int64) (count int64, err error) {
	if len(commentIds) == 0 {
		return 0, nil
	}
	if err := DB.WithContext(ctx).Model(&model.CommentLike{}).Where("comment_id IN (?)", commentIds).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountTweetLikesIn(ctx context.Context, tweetIds []int64) (count int64, err error) {
	if len(tweetIds) == 0 {
		return 0, nil
	}
	if err := DB.WithContext(ctx).Model(&model.TweetLike{}).Where("tweet_id IN (?)", tweetIds).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetChannelVideos 频道主页的视频列表
func GetChannelVideos(ctx context.Context, ownerId, pageNum, pageSize int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", ownerId).
		Order("created_at DESC, video_id ASC").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}
