package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/relation/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleSubscription 订阅/取消订阅toggle
// 订阅自己是非法请求 频道必须存在
func (service *RelationService) ToggleSubscription(subscriberId, channelId int64) (*model.ToggleResult, error) {
	if subscriberId == channelId {
		return nil, errno.SelfRelationErr
	}
	exist, err := db.IsChannelExist(service.ctx, channelId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.TargetNotFoundErr.WithMessage("Channel not found")
	}

	existing, err := db.GetSubscription(service.ctx, subscriberId, channelId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if _, err := db.DeleteSubscription(service.ctx, subscriberId, channelId); err != nil {
			return nil, err
		}
		return &model.ToggleResult{State: constants.ToggleStateRemoved, Record: existing}, nil
	}

	sub, err := db.CreateSubscription(service.ctx, subscriberId, channelId)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发toggle抢先创建
			winner, gerr := db.GetSubscription(service.ctx, subscriberId, channelId)
			if gerr != nil || winner == nil {
				return nil, err
			}
			return &model.ToggleResult{State: constants.ToggleStateCreated, Record: winner}, nil
		}
		return nil, err
	}
	return &model.ToggleResult{State: constants.ToggleStateCreated, Record: sub}, nil
}
