package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Toggle结果状态
	ToggleStateCreated = "created"
	ToggleStateRemoved = "removed"

	// 点赞目标类型
	LikeKindVideo   = "video"
	LikeKindComment = "comment"
	LikeKindTweet   = "tweet"

	// feed允许的排序字段
	SortByCreatedAt = "createdAt"
	SortByViews     = "views"
	SortByDuration  = "duration"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)
