package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

// CreateUser 用户名全局唯一
func (service *UserService) CreateUser(userName, fullName, avatarUrl string) (*model.User, error) {
	if userName == "" || fullName == "" {
		return nil, errno.ParamErr.WithMessage("Username and full name are required")
	}
	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  userName,
		FullName:  fullName,
		AvatarUrl: avatarUrl,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateUser(service.ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.DuplicateRecordErr.WithMessage("Username already taken")
		}
		return nil, err
	}
	return user, nil
}

func (service *UserService) GetUserInfo(userId int64) (*model.User, error) {
	user, err := db.GetUserById(service.ctx, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("User not found")
		}
		return nil, err
	}
	return user, nil
}
