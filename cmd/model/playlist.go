package model

// 同一用户下播放列表名称唯一
type Playlist struct {
	PlaylistId  int64  `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"uniqueIndex:idx_owner_name"`
	Name        string `json:"name" gorm:"uniqueIndex:idx_owner_name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// PlaylistVideo 播放列表中的视频 集合语义 同一视频至多出现一次
type PlaylistVideo struct {
	PlaylistVideoId int64 `json:"playlist_video_id" gorm:"primaryKey"`
	PlaylistId      int64 `json:"playlist_id" gorm:"uniqueIndex:idx_playlist_video"`
	VideoId         int64 `json:"video_id" gorm:"uniqueIndex:idx_playlist_video"`
	Position        int64 `json:"position"`
}
