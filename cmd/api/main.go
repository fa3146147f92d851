package main

import (
	"context"
	"fmt"

	channeldb "VideoTube.com/cmd/channel/dal/db"
	interactiondb "VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/interaction/infras/redis"
	playlistdb "VideoTube.com/cmd/playlist/dal/db"
	relationdb "VideoTube.com/cmd/relation/dal/db"
	tweetdb "VideoTube.com/cmd/tweet/dal/db"
	userdb "VideoTube.com/cmd/user/dal/db"
	videodb "VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/config"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	userdb.Init()
	videodb.Init()
	interactiondb.Init()
	relationdb.Init()
	playlistdb.Init()
	tweetdb.Init()
	channeldb.Init()
	if err := oss.InitMinio(); err != nil {
		hlog.Errorf("Failed to init object storage: %v", err)
	}
	redis.Load()
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts("0.0.0.0:8888"),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(16*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v\nstack=%s", err, stack),
			})
		})))

	register(r)

	r.Spin()
}
