package db

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetSubscription(ctx context.Context, subscriberId, channelId int64) (*model.Subscription, error) {
	sub := &model.Subscription{}
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? And channel_id = ?", subscriberId, channelId).First(sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}

func CreateSubscription(ctx context.Context, subscriberId, channelId int64) (*model.Subscription, error) {
	sub := &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (int64, error) {
	result := DB.WithContext(ctx).Where("subscriber_id = ? And channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	return result.RowsAffected, result.Error
}

// 获取订阅了channelId的用户（粉丝）
func GetSubscriberListPaged(ctx context.Context, channelId, pageNum, pageSize int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).
		Order("subscription_id ASC").Select("subscriber_id").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// 获取用户subscriberId订阅的频道列表
func GetSubscribedChannelListPaged(ctx context.Context, subscriberId, pageNum, pageSize int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).
		Order("subscription_id ASC").Select("channel_id").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// 订阅目标必须是已存在的用户频道
func IsChannelExist(ctx context.Context, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", channelId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return -1, err
	}
	return count, nil
}
