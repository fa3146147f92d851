package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/playlist/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

// CreatePlaylist 同一用户下名称唯一 撞唯一索引返回DuplicateRecordErr
func (service *PlaylistService) CreatePlaylist(actorId int64, name, description string) (*model.Playlist, error) {
	if name == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("Name and description are required")
	}
	now := time.Now().Format(constants.DataFormate)
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      actorId,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.CreatePlaylist(service.ctx, playlist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.DuplicateRecordErr.WithMessage("Playlist already exists")
		}
		return nil, err
	}
	return playlist, nil
}

func (service *PlaylistService) getOwnedPlaylist(actorId, playlistId int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylistInfo(service.ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Playlist not found")
		}
		return nil, err
	}
	if playlist.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}
	return playlist, nil
}

func (service *PlaylistService) UpdatePlaylist(actorId, playlistId int64, name, description string) (*model.Playlist, error) {
	if name == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("Name and description are required")
	}
	playlist, err := service.getOwnedPlaylist(actorId, playlistId)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":        name,
		"description": description,
		"updated_at":  time.Now().Format(constants.DataFormate),
	}
	if err := db.UpdatePlaylist(service.ctx, playlistId, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.DuplicateRecordErr.WithMessage("Playlist already exists")
		}
		return nil, err
	}
	playlist.Name = name
	playlist.Description = description
	return playlist, nil
}

func (service *PlaylistService) DeletePlaylist(actorId, playlistId int64) (*model.Playlist, error) {
	playlist, err := service.getOwnedPlaylist(actorId, playlistId)
	if err != nil {
		return nil, err
	}
	if err := db.DeletePlaylist(service.ctx, playlistId); err != nil {
		return nil, err
	}
	return playlist, nil
}

// AddVideo 向播放列表加入视频 集合语义 重复加入幂等成功
func (service *PlaylistService) AddVideo(actorId, playlistId, videoId int64) error {
	if _, err := service.getOwnedPlaylist(actorId, playlistId); err != nil {
		return err
	}
	exist, err := db.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return err
	}
	if !exist {
		return errno.TargetNotFoundErr.WithMessage("Video not found")
	}
	position, err := db.GetNextPosition(service.ctx, playlistId)
	if err != nil {
		return err
	}
	return db.AddVideoToPlaylist(service.ctx, &model.PlaylistVideo{
		PlaylistVideoId: utils.GenerateID(),
		PlaylistId:      playlistId,
		VideoId:         videoId,
		Position:        position,
	})
}

func (service *PlaylistService) RemoveVideo(actorId, playlistId, videoId int64) error {
	if _, err := service.getOwnedPlaylist(actorId, playlistId); err != nil {
		return err
	}
	return db.RemoveVideoFromPlaylist(service.ctx, playlistId, videoId)
}
