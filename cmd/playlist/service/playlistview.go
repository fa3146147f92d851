package service

import (
	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/playlist/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/resolver"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetPlaylist 播放列表读模型
// 两级解析 先列表所有者 再逐个成员视频及其作者 悬空成员直接跳过
func (service *PlaylistService) GetPlaylist(playlistId int64) (*model.PlaylistView, error) {
	playlist, err := db.GetPlaylistInfo(service.ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Playlist not found")
		}
		return nil, err
	}
	owner, err := resolver.Owner(service.ctx, playlist.UserId)
	if err != nil {
		return nil, err
	}

	videoIds, err := db.GetVideoIdsFromPlaylist(service.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, err
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		videoById[video.VideoId] = video
		ownerIds = append(ownerIds, video.UserId)
	}
	videoOwners, err := resolver.Owners(service.ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	// 按position顺序组装 已删除的视频或作者不再出现
	members := make([]*model.FeedVideo, 0, len(videoIds))
	for _, videoId := range videoIds {
		video, ok := videoById[videoId]
		if !ok {
			continue
		}
		videoOwner, ok := videoOwners[video.UserId]
		if !ok {
			continue
		}
		members = append(members, &model.FeedVideo{
			VideoId:     video.VideoId,
			VideoUrl:    video.VideoUrl,
			CoverUrl:    video.CoverUrl,
			Title:       video.Title,
			Description: video.Description,
			Duration:    video.Duration,
			VisitCount:  video.VisitCount,
			CreatedAt:   video.CreatedAt,
			CreatedBy:   videoOwner,
		})
	}

	return &model.PlaylistView{
		PlaylistId:  playlist.PlaylistId,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedBy:   owner,
		Videos:      members,
	}, nil
}

// GetUserPlaylists 用户的全部播放列表 只带元信息不展开成员
func (service *PlaylistService) GetUserPlaylists(userId int64) ([]*model.Playlist, error) {
	return db.GetPlaylistsByUserId(service.ctx, userId)
}
