package model

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"primaryKey"`
	VideoId   int64  `json:"video_id" gorm:"index"`
	UserId    int64  `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// 点赞按目标类型分表存储 (user_id, target_id) 的唯一索引保证
// 同一用户对同一目标至多存在一条点赞记录
type VideoLike struct {
	VideoLikeId int64  `json:"video_like_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"uniqueIndex:idx_user_video"`
	VideoId     int64  `json:"video_id" gorm:"uniqueIndex:idx_user_video"`
	CreatedAt   string `json:"created_at"`
}

type CommentLike struct {
	CommentLikeId int64  `json:"comment_like_id" gorm:"primaryKey"`
	UserId        int64  `json:"user_id" gorm:"uniqueIndex:idx_user_comment"`
	CommentId     int64  `json:"comment_id" gorm:"uniqueIndex:idx_user_comment"`
	CreatedAt     string `json:"created_at"`
}

type TweetLike struct {
	TweetLikeId int64  `json:"tweet_like_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"uniqueIndex:idx_user_tweet"`
	TweetId     int64  `json:"tweet_id" gorm:"uniqueIndex:idx_user_tweet"`
	CreatedAt   string `json:"created_at"`
}
