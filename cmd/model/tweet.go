package model

type Tweet struct {
	TweetId   int64  `json:"tweet_id" gorm:"primaryKey"`
	UserId    int64  `json:"user_id" gorm:"index"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
