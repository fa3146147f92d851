package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&model.User{}, &model.Video{}, &model.Tweet{}, &model.Comment{},
		&model.VideoLike{}, &model.CommentLike{}, &model.TweetLike{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	db.DB = gdb
	userdb.DB = gdb
}

func seedUser(t *testing.T, userName string) *model.User {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  userName,
		FullName:  "Test " + userName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userdb.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedVideo(t *testing.T, ownerId int64, title string, published bool) *model.Video {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      ownerId,
		Title:       title,
		Description: "about " + title,
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.DB.WithContext(context.Background()).Create(video).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
	return video
}

func TestLikeToggleVideo(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, "creator")
	liker := seedUser(t, "liker")
	video := seedVideo(t, owner.UserId, "first", true)

	svc := NewLikeActionService(ctx)

	result, err := svc.Toggle(constants.LikeKindVideo, liker.UserId, video.VideoId)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if result.State != constants.ToggleStateCreated {
		t.Fatalf("expected state %q, got %q", constants.ToggleStateCreated, result.State)
	}

	count, err := svc.GetVideoLikeCount(video.VideoId)
	if err != nil {
		t.Fatalf("get like count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 like, got %d", count)
	}

	result, err = svc.Toggle(constants.LikeKindVideo, liker.UserId, video.VideoId)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if result.State != constants.ToggleStateRemoved {
		t.Fatalf("expected state %q, got %q", constants.ToggleStateRemoved, result.State)
	}

	count, err = svc.GetVideoLikeCount(video.VideoId)
	if err != nil {
		t.Fatalf("get like count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 likes after un-like, got %d", count)
	}
}

// 偶数次toggle回到原点 奇数次留下一条记录
func TestLikeToggleParity(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, "creator")
	liker := seedUser(t, "liker")
	video := seedVideo(t, owner.UserId, "parity", true)

	svc := NewLikeActionService(ctx)
	for i := 0; i < 5; i++ {
		if _, err := svc.Toggle(constants.LikeKindVideo, liker.UserId, video.VideoId); err != nil {
			t.Fatalf("toggle %d failed: %v", i, err)
		}
	}
	count, err := db.GetVideoLikeCount(ctx, video.VideoId)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 like after odd number of toggles, got %d", count)
	}
}

func TestLikeToggleTargetNotFound(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	liker := seedUser(t, "liker")

	svc := NewLikeActionService(ctx)

	t.Run("Video", func(t *testing.T) {
		_, err := svc.Toggle(constants.LikeKindVideo, liker.UserId, 404404)
		assertErrCode(t, err, errno.TargetNotFoundCode)
	})
	t.Run("Tweet", func(t *testing.T) {
		_, err := svc.Toggle(constants.LikeKindTweet, liker.UserId, 404404)
		assertErrCode(t, err, errno.TargetNotFoundCode)
	})
	t.Run("Comment", func(t *testing.T) {
		_, err := svc.Toggle(constants.LikeKindComment, liker.UserId, 404404)
		assertErrCode(t, err, errno.TargetNotFoundCode)
	})
}

func TestLikeToggleUnknownKind(t *testing.T) {
	setupTestDB(t)
	svc := NewLikeActionService(context.Background())
	_, err := svc.Toggle("poll", 1, 2)
	assertErrCode(t, err, errno.ParamErrCode)
}

func TestLikeToggleTweet(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	author := seedUser(t, "author")
	liker := seedUser(t, "liker")
	now := time.Now().Format(constants.DataFormate)
	tweet := &model.Tweet{
		TweetId:   utils.GenerateID(),
		UserId:    author.UserId,
		Content:   "hello",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.DB.WithContext(ctx).Create(tweet).Error; err != nil {
		t.Fatalf("failed to seed tweet: %v", err)
	}

	svc := NewLikeActionService(ctx)
	result, err := svc.Toggle(constants.LikeKindTweet, liker.UserId, tweet.TweetId)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if result.State != constants.ToggleStateCreated {
		t.Fatalf("expected created, got %q", result.State)
	}
	result, err = svc.Toggle(constants.LikeKindTweet, liker.UserId, tweet.TweetId)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if result.State != constants.ToggleStateRemoved {
		t.Fatalf("expected removed, got %q", result.State)
	}
}

// 并发toggle同时走创建分支时 后写方撞唯一索引 应返回已存在的记录而不是报错
func TestLikeCreateRace(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, "creator")
	liker := seedUser(t, "liker")
	video := seedVideo(t, owner.UserId, "race", true)

	// 模拟抢先创建
	first := &model.VideoLike{
		VideoLikeId: utils.GenerateID(),
		UserId:      liker.UserId,
		VideoId:     video.VideoId,
		CreatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateVideoLike(ctx, first); err != nil {
		t.Fatalf("seed like failed: %v", err)
	}

	dup := &model.VideoLike{
		VideoLikeId: utils.GenerateID(),
		UserId:      liker.UserId,
		VideoId:     video.VideoId,
		CreatedAt:   time.Now().Format(constants.DataFormate),
	}
	err := db.CreateVideoLike(ctx, dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}

	count, err := db.GetVideoLikeCount(ctx, video.VideoId)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 like row, got %d", count)
	}
}

func assertErrCode(t *testing.T, err error, code int64) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	e := errno.ConvertErr(err)
	if e.ErrCode != code {
		t.Fatalf("expected error code %d, got %d (%s)", code, e.ErrCode, e.ErrMsg)
	}
}
