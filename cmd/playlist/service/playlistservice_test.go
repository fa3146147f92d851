package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/playlist/dal/db"
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
	if err := gdb.AutoMigrate(&model.User{}, &model.Video{}, &model.Playlist{}, &model.PlaylistVideo{}); err != nil {
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

func seedVideo(t *testing.T, ownerId int64, title string) *model.Video {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      ownerId,
		Title:       title,
		Description: "about " + title,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.DB.WithContext(context.Background()).Create(video).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
	return video
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

// 同一用户下名称唯一 不同用户可以重名
func TestCreatePlaylistUniqueName(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	svc := NewPlaylistService(ctx)

	if _, err := svc.CreatePlaylist(alice.UserId, "Favorites", "best of"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := svc.CreatePlaylist(alice.UserId, "Favorites", "again")
	assertErrCode(t, err, errno.DuplicateRecordCode)

	if _, err := svc.CreatePlaylist(bob.UserId, "Favorites", "bob's picks"); err != nil {
		t.Fatalf("same name under another owner should work: %v", err)
	}
}

func TestPlaylistOwnership(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	stranger := seedUser(t, "stranger")

	svc := NewPlaylistService(ctx)
	playlist, err := svc.CreatePlaylist(alice.UserId, "Mine", "hands off")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.UpdatePlaylist(stranger.UserId, playlist.PlaylistId, "Yours", "taken")
	assertErrCode(t, err, errno.AuthorizationFailedCode)

	_, err = svc.DeletePlaylist(stranger.UserId, playlist.PlaylistId)
	assertErrCode(t, err, errno.AuthorizationFailedCode)

	if _, err := db.GetPlaylistInfo(ctx, playlist.PlaylistId); err != nil {
		t.Fatalf("playlist should survive unauthorized delete: %v", err)
	}
}

// 重复加入同一视频是幂等操作 不报错也不产生第二行
func TestPlaylistSetSemantics(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	video := seedVideo(t, alice.UserId, "clip")

	svc := NewPlaylistService(ctx)
	playlist, err := svc.CreatePlaylist(alice.UserId, "Watchlist", "later")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.AddVideo(alice.UserId, playlist.PlaylistId, video.VideoId); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddVideo(alice.UserId, playlist.PlaylistId, video.VideoId); err != nil {
		t.Fatalf("duplicate add should be a no-op: %v", err)
	}

	ids, err := db.GetVideoIdsFromPlaylist(ctx, playlist.PlaylistId)
	if err != nil {
		t.Fatalf("member list failed: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected 1 member row, got %d", len(ids))
	}

	if err := svc.AddVideo(alice.UserId, playlist.PlaylistId, 404404); err == nil {
		t.Fatal("adding a missing video should fail")
	} else {
		assertErrCode(t, err, errno.TargetNotFoundCode)
	}
}

func TestGetPlaylistComposition(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	first := seedVideo(t, alice.UserId, "first")
	second := seedVideo(t, alice.UserId, "second")
	doomed := seedVideo(t, alice.UserId, "doomed")

	svc := NewPlaylistService(ctx)
	playlist, err := svc.CreatePlaylist(alice.UserId, "Mix", "assorted")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	for _, video := range []*model.Video{first, second, doomed} {
		if err := svc.AddVideo(alice.UserId, playlist.PlaylistId, video.VideoId); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	// 成员视频被删除后 视图应当无声地跳过它
	if err := db.DB.WithContext(ctx).Where("video_id = ?", doomed.VideoId).Delete(doomed).Error; err != nil {
		t.Fatalf("failed to delete video: %v", err)
	}

	view, err := svc.GetPlaylist(playlist.PlaylistId)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if view.CreatedBy == nil || view.CreatedBy.UserId != alice.UserId {
		t.Fatal("playlist owner should be projected to a public summary")
	}
	if len(view.Videos) != 2 {
		t.Fatalf("expected 2 surviving members, got %d", len(view.Videos))
	}
	if view.Videos[0].VideoId != first.VideoId || view.Videos[1].VideoId != second.VideoId {
		t.Fatal("members should keep their insertion order")
	}

	_, err = svc.GetPlaylist(404404)
	assertErrCode(t, err, errno.RecordNotFoundCode)
}

func TestGetUserPlaylists(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")

	svc := NewPlaylistService(ctx)
	for _, name := range []string{"One", "Two", "Three"} {
		if _, err := svc.CreatePlaylist(alice.UserId, name, "d"); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	playlists, err := svc.GetUserPlaylists(alice.UserId)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(playlists) != 3 {
		t.Fatalf("expected 3 playlists, got %d", len(playlists))
	}
}
