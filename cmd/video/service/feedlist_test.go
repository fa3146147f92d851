package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/cmd/video/dal/db"
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
	if err := gdb.AutoMigrate(&model.User{}, &model.Video{}); err != nil {
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

func seedVideo(t *testing.T, ownerId int64, title string, published bool, visits int64) *model.Video {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      ownerId,
		Title:       title,
		Description: "about " + title,
		VisitCount:  visits,
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.InsertVideo(context.Background(), video); err != nil {
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

// 未发布视频只有所有者能在feed中看到
func TestFeedPrivacy(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, "creator")
	viewer := seedUser(t, "viewer")
	seedVideo(t, owner.UserId, "public clip", true, 0)
	seedVideo(t, owner.UserId, "private draft", false, 0)

	svc := NewFeedListService(ctx)

	asViewer, err := svc.FeedList(&FeedListRequest{ActorId: viewer.UserId})
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(asViewer) != 1 {
		t.Fatalf("viewer should see 1 video, got %d", len(asViewer))
	}
	if asViewer[0].Title != "public clip" {
		t.Fatalf("viewer should only see the published video, got %q", asViewer[0].Title)
	}

	asOwner, err := svc.FeedList(&FeedListRequest{ActorId: owner.UserId})
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(asOwner) != 2 {
		t.Fatalf("owner should see both videos, got %d", len(asOwner))
	}
}

func TestFeedKeyword(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, "creator")
	seedVideo(t, owner.UserId, "Cooking Pasta", true, 0)
	seedVideo(t, owner.UserId, "travel vlog", true, 0)

	svc := NewFeedListService(ctx)
	feed, err := svc.FeedList(&FeedListRequest{Keyword: "PASTA"})
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected 1 match, got %d", len(feed))
	}
	if feed[0].Title != "Cooking Pasta" {
		t.Fatalf("keyword match should be case-insensitive, got %q", feed[0].Title)
	}
}

func TestFeedSortValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewFeedListService(context.Background())

	t.Run("UnknownField", func(t *testing.T) {
		_, err := svc.FeedList(&FeedListRequest{SortBy: "owner_id; DROP TABLE videos"})
		assertErrCode(t, err, errno.ParamErrCode)
	})
	t.Run("UnknownOrder", func(t *testing.T) {
		_, err := svc.FeedList(&FeedListRequest{SortOrder: "sideways"})
		assertErrCode(t, err, errno.ParamErrCode)
	})
}

func TestFeedSortByViews(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, "creator")
	seedVideo(t, owner.UserId, "low", true, 10)
	seedVideo(t, owner.UserId, "high", true, 1000)
	seedVideo(t, owner.UserId, "mid", true, 100)

	feed, err := NewFeedListService(ctx).FeedList(&FeedListRequest{
		SortBy:    constants.SortByViews,
		SortOrder: constants.SortOrderDesc,
	})
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(feed))
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].VisitCount > feed[i-1].VisitCount {
			t.Fatalf("feed not sorted by views desc: %d before %d", feed[i-1].VisitCount, feed[i].VisitCount)
		}
	}
}

// 相邻两页不重叠 合并后覆盖全部行
func TestFeedPagination(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, "creator")
	total := 7
	for i := 0; i < total; i++ {
		seedVideo(t, owner.UserId, fmt.Sprintf("video %d", i), true, int64(i))
	}

	svc := NewFeedListService(ctx)
	seen := make(map[int64]bool)
	for page := int64(1); page <= 3; page++ {
		feed, err := svc.FeedList(&FeedListRequest{PageNum: page, PageSize: 3})
		if err != nil {
			t.Fatalf("page %d failed: %v", page, err)
		}
		for _, item := range feed {
			if seen[item.VideoId] {
				t.Fatalf("video %d appeared on more than one page", item.VideoId)
			}
			seen[item.VideoId] = true
		}
	}
	if len(seen) != total {
		t.Fatalf("pages should cover all %d videos, got %d", total, len(seen))
	}

	// 前缀性质 一页取6条等于两页各取3条首尾相接
	big, err := svc.FeedList(&FeedListRequest{PageNum: 1, PageSize: 6})
	if err != nil {
		t.Fatalf("big page failed: %v", err)
	}
	var joined []int64
	for page := int64(1); page <= 2; page++ {
		feed, err := svc.FeedList(&FeedListRequest{PageNum: page, PageSize: 3})
		if err != nil {
			t.Fatalf("small page failed: %v", err)
		}
		for _, item := range feed {
			joined = append(joined, item.VideoId)
		}
	}
	if len(big) != len(joined) {
		t.Fatalf("expected %d items, got %d", len(joined), len(big))
	}
	for i := range big {
		if big[i].VideoId != joined[i] {
			t.Fatalf("page concatenation mismatch at %d", i)
		}
	}
}
