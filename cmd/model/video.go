package model

type Video struct {
	VideoId     int64   `json:"video_id" gorm:"primaryKey"`
	UserId      int64   `json:"user_id" gorm:"index"`
	VideoUrl    string  `json:"video_url"`
	CoverUrl    string  `json:"cover_url"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"` // 时长 单位秒
	VisitCount  int64   `json:"visit_count"`
	IsPublished bool    `json:"is_published"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
