package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/relation/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/resolver"
)

type SubscriberListService struct {
	ctx context.Context
}

func NewSubscriberListService(ctx context.Context) *SubscriberListService {
	return &SubscriberListService{ctx: ctx}
}

// SubscriberList 频道的订阅者列表 解析为公开用户摘要
func (service *SubscriberListService) SubscriberList(channelId, pageNum, pageSize int64) ([]*model.UserSummary, error) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	subscriberIds, err := db.GetSubscriberListPaged(service.ctx, channelId, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	return service.resolveInOrder(subscriberIds)
}

// SubscribedChannelList 用户订阅的频道列表
func (service *SubscriberListService) SubscribedChannelList(subscriberId, pageNum, pageSize int64) ([]*model.UserSummary, error) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	channelIds, err := db.GetSubscribedChannelListPaged(service.ctx, subscriberId, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	return service.resolveInOrder(channelIds)
}

func (service *SubscriberListService) resolveInOrder(userIds []int64) ([]*model.UserSummary, error) {
	owners, err := resolver.Owners(service.ctx, userIds)
	if err != nil {
		return nil, err
	}
	result := make([]*model.UserSummary, 0, len(userIds))
	for _, id := range userIds {
		if owner, ok := owners[id]; ok {
			result = append(result, owner)
		}
	}
	return result, nil
}
