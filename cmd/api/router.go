package main

import (
	channel "VideoTube.com/cmd/api/handlers/channel"
	interaction "VideoTube.com/cmd/api/handlers/interaction"
	playlist "VideoTube.com/cmd/api/handlers/playlist"
	relation "VideoTube.com/cmd/api/handlers/relation"
	tweet "VideoTube.com/cmd/api/handlers/tweet"
	user "VideoTube.com/cmd/api/handlers/user"
	video "VideoTube.com/cmd/api/handlers/video"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz) {
	v1 := r.Group("/api/v1")

	userGroup := v1.Group("/user")
	userGroup.POST("/create", user.CreateUser)
	userGroup.GET("/info", user.GetUserInfo)

	videoGroup := v1.Group("/video")
	videoGroup.GET("/feed", video.FeedList)
	videoGroup.POST("/publish", video.Publish)
	videoGroup.GET("/info", video.GetVideoInfo)
	videoGroup.POST("/update", video.UpdateVideo)
	videoGroup.POST("/delete", video.DeleteVideo)
	videoGroup.POST("/toggle_publish", video.TogglePublishStatus)
	videoGroup.POST("/visit", video.Visit)
	videoGroup.GET("/list", video.VideoList)

	likeGroup := v1.Group("/like")
	likeGroup.POST("/action", interaction.LikeAction)
	likeGroup.GET("/count", interaction.VideoLikeCount)
	likeGroup.GET("/videos", interaction.LikedVideoList)

	commentGroup := v1.Group("/comment")
	commentGroup.POST("/create", interaction.CreateComment)
	commentGroup.POST("/update", interaction.UpdateComment)
	commentGroup.POST("/delete", interaction.DeleteComment)
	commentGroup.GET("/list", interaction.CommentList)

	subscriptionGroup := v1.Group("/subscription")
	subscriptionGroup.POST("/toggle", relation.ToggleSubscription)
	subscriptionGroup.GET("/subscribers", relation.SubscriberList)
	subscriptionGroup.GET("/channels", relation.SubscribedChannelList)

	playlistGroup := v1.Group("/playlist")
	playlistGroup.POST("/create", playlist.CreatePlaylist)
	playlistGroup.POST("/update", playlist.UpdatePlaylist)
	playlistGroup.POST("/delete", playlist.DeletePlaylist)
	playlistGroup.POST("/video/add", playlist.AddVideoToPlaylist)
	playlistGroup.POST("/video/remove", playlist.RemoveVideoFromPlaylist)
	playlistGroup.GET("/info", playlist.GetPlaylist)
	playlistGroup.GET("/list", playlist.GetUserPlaylists)

	tweetGroup := v1.Group("/tweet")
	tweetGroup.POST("/create", tweet.CreateTweet)
	tweetGroup.POST("/update", tweet.UpdateTweet)
	tweetGroup.POST("/delete", tweet.DeleteTweet)
	tweetGroup.GET("/list", tweet.GetUserTweets)

	channelGroup := v1.Group("/channel")
	channelGroup.GET("/stats", channel.GetChannelStats)
	channelGroup.GET("/videos", channel.GetChannelVideos)
}
