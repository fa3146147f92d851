package model

// Subscription 订阅关系 subscriber订阅channel
// (subscriber_id, channel_id) 唯一 订阅自己是非法请求
type Subscription struct {
	SubscriptionId int64  `json:"subscription_id" gorm:"primaryKey"`
	SubscriberId   int64  `json:"subscriber_id" gorm:"uniqueIndex:idx_subscriber_channel"`
	ChannelId      int64  `json:"channel_id" gorm:"uniqueIndex:idx_subscriber_channel"`
	CreatedAt      string `json:"created_at"`
}
