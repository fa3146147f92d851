package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return err
	}
	return nil
}

func GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

// 获取用户的播放列表（有多少个列表）
func GetPlaylistsByUserId(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId).
		Order("created_at ASC, playlist_id ASC").Find(&playlists).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get Playlists")
	}
	return playlists, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).Updates(updates).Error; err != nil {
		return err
	}
	return nil
}

func DeletePlaylist(ctx context.Context, playlistId int64) error {
	// 先清空成员再删列表 成员删除失败不阻塞
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to clear PlaylistVideos")
	}
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to delete Playlist")
	}
	return nil
}

// AddVideoToPlaylist 集合语义 重复加入同一视频时唯一索引拦截 调用方视作幂等成功
func AddVideoToPlaylist(ctx context.Context, pv *model.PlaylistVideo) error {
	if err := DB.WithContext(ctx).Create(pv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return errors.WithMessage(err, "Failed to add VideoToPlaylist")
	}
	return nil
}

func RemoveVideoFromPlaylist(ctx context.Context, playlistId, videoId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ? And video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.WithMessage(err, "Failed to remove VideoFromPlaylist")
	}
	return nil
}

// GetVideoIdsFromPlaylist 按加入顺序返回成员视频id
func GetVideoIdsFromPlaylist(ctx context.Context, playlistId int64) ([]int64, error) {
	videoIds := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
		Order("position ASC, playlist_video_id ASC").Select("video_id").Scan(&videoIds).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to get VideoIdsFromPlaylist")
	}
	return videoIds, nil
}

// 成员视频与校验直接查视频表
func IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

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

func GetNextPosition(ctx context.Context, playlistId int64) (int64, error) {
	var maxPos *int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
		Select("MAX(position)").Scan(&maxPos).Error; err != nil {
		return 0, err
	}
	if maxPos == nil {
		return 1, nil
	}
	return *maxPos + 1, nil
}
