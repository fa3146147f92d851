package db

import (
	"context"

	"VideoTube.com/cmd/model"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return DB.WithContext(ctx).Create(tweet).Error
}

func GetTweetInfo(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	tweet := &model.Tweet{}
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func GetTweetsByUserId(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Tweet, error) {
	var tweets []*model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).
		Order("created_at DESC, tweet_id ASC").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Update("content", content).Error; err != nil {
		return err
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return err
	}
	return nil
}
