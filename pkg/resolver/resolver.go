package resolver

import (
	"context"

	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/errno"
)

// 引用解析器 把实体上的owner外键解析为公开的用户摘要
// 一次批量查询完成 不做逐行回表

func project(user *model.User) *model.UserSummary {
	return &model.UserSummary{
		UserId:    user.UserId,
		UserName:  user.UserName,
		FullName:  user.FullName,
		AvatarUrl: user.AvatarUrl,
	}
}

// Owners 批量解析owner 返回命中的id->摘要映射
// 缺失的引用不在映射中 由调用方决定跳过还是报错
func Owners(ctx context.Context, ownerIds []int64) (map[int64]*model.UserSummary, error) {
	result := make(map[int64]*model.UserSummary, len(ownerIds))
	if len(ownerIds) == 0 {
		return result, nil
	}
	// 去重后查询
	seen := make(map[int64]struct{}, len(ownerIds))
	ids := make([]int64, 0, len(ownerIds))
	for _, id := range ownerIds {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	users, err := userdb.GetUsersByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		result[user.UserId] = project(user)
	}
	return result, nil
}

// Owner 解析单个owner 引用不存在时返回ReferenceNotFoundErr
func Owner(ctx context.Context, ownerId int64) (*model.UserSummary, error) {
	owners, err := Owners(ctx, []int64{ownerId})
	if err != nil {
		return nil, err
	}
	owner, ok := owners[ownerId]
	if !ok {
		return nil, errno.ReferenceNotFoundErr
	}
	return owner, nil
}
