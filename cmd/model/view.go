package model

// 读模型 由View Composer在请求时联结规范化实体得到

type FeedVideo struct {
	VideoId     int64        `json:"video_id"`
	VideoUrl    string       `json:"video_url"`
	CoverUrl    string       `json:"cover_url"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Duration    float64      `json:"duration"`
	VisitCount  int64        `json:"visit_count"`
	CreatedAt   string       `json:"created_at"`
	CreatedBy   *UserSummary `json:"created_by"`
}

type LikedVideo struct {
	LikeId  int64      `json:"like_id"`
	LikedBy int64      `json:"liked_by"`
	Video   *FeedVideo `json:"video"`
}

type CommentView struct {
	CommentId int64        `json:"comment_id"`
	VideoId   int64        `json:"video_id"`
	Content   string       `json:"content"`
	CreatedAt string       `json:"created_at"`
	CreatedBy *UserSummary `json:"created_by"`
}

type PlaylistView struct {
	PlaylistId  int64        `json:"playlist_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedBy   *UserSummary `json:"created_by"`
	Videos      []*FeedVideo `json:"videos"`
}

type ChannelStats struct {
	TotalViews       int64 `json:"total_views"`
	TotalVideos      int64 `json:"total_videos"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}

// ToggleResult toggle操作的结果 state取值见constants
type ToggleResult struct {
	State  string      `json:"state"`
	Record interface{} `json:"record"`
}
