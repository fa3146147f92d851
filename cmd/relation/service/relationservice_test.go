package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/relation/dal/db"
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
	if err := gdb.AutoMigrate(&model.User{}, &model.Subscription{}); err != nil {
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

func TestToggleSubscription(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	fan := seedUser(t, "fan")
	channel := seedUser(t, "channel")

	svc := NewRelationService(ctx)

	result, err := svc.ToggleSubscription(fan.UserId, channel.UserId)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if result.State != constants.ToggleStateCreated {
		t.Fatalf("expected created, got %q", result.State)
	}

	count, err := db.GetSubscriberCount(ctx, channel.UserId)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 subscriber, got %d", count)
	}

	result, err = svc.ToggleSubscription(fan.UserId, channel.UserId)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if result.State != constants.ToggleStateRemoved {
		t.Fatalf("expected removed, got %q", result.State)
	}

	count, err = db.GetSubscriberCount(ctx, channel.UserId)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 subscribers after unsubscribe, got %d", count)
	}
}

func TestToggleSubscriptionGuards(t *testing.T) {
	setupTestDB(t)
	fan := seedUser(t, "fan")

	svc := NewRelationService(context.Background())

	t.Run("Self", func(t *testing.T) {
		_, err := svc.ToggleSubscription(fan.UserId, fan.UserId)
		assertErrCode(t, err, errno.SelfRelationCode)
	})
	t.Run("MissingChannel", func(t *testing.T) {
		_, err := svc.ToggleSubscription(fan.UserId, 404404)
		assertErrCode(t, err, errno.TargetNotFoundCode)
	})
}

func TestSubscriberLists(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	channel := seedUser(t, "channel")
	fans := []*model.User{seedUser(t, "fan1"), seedUser(t, "fan2"), seedUser(t, "fan3")}

	relationSvc := NewRelationService(ctx)
	for _, fan := range fans {
		if _, err := relationSvc.ToggleSubscription(fan.UserId, channel.UserId); err != nil {
			t.Fatalf("subscribe failed: %v", err)
		}
	}

	listSvc := NewSubscriberListService(ctx)

	subscribers, err := listSvc.SubscriberList(channel.UserId, 1, 10)
	if err != nil {
		t.Fatalf("subscriber list failed: %v", err)
	}
	if len(subscribers) != len(fans) {
		t.Fatalf("expected %d subscribers, got %d", len(fans), len(subscribers))
	}

	channels, err := listSvc.SubscribedChannelList(fans[0].UserId, 1, 10)
	if err != nil {
		t.Fatalf("channel list failed: %v", err)
	}
	if len(channels) != 1 || channels[0].UserId != channel.UserId {
		t.Fatal("fan should see exactly the one channel they subscribed to")
	}
}
