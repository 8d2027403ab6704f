package service

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/dao/sqlstore"
	"Chirp/pkg/apperr"
	"Chirp/pkg/util"
	"Chirp/types"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

type testServices struct {
	store    *sqlstore.Store
	users    *UserService
	follows  *FollowService
	tweets   *TweetService
	comments *CommentsService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	conf := &config.Config{
		Store:  &config.Store{Driver: config.DriverSQLite},
		SQLite: &config.SQLite{Path: filepath.Join(t.TempDir(), "chirp.db")},
	}
	store, err := sqlstore.Open(conf)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	users := &UserService{UsersRepo: store.Users()}
	return &testServices{
		store:    store,
		users:    users,
		follows:  &FollowService{UsersRepo: store.Users()},
		tweets:   &TweetService{TweetsRepo: store.Tweets(), UsersRepo: store.Users(), UserService: users},
		comments: &CommentsService{CommentsRepo: store.Comments(), TweetsRepo: store.Tweets(), UserService: users},
	}
}

func (s *testServices) signup(t *testing.T, username string) int64 {
	t.Helper()
	profile, err := s.users.Signup(context.Background(), &types.SignupRequest{
		Name:     username,
		Username: username,
		Email:    username + "@x.com",
		Password: "pw-" + username,
	})
	if err != nil {
		t.Fatalf("signup %s: %v", username, err)
	}
	id, err := util.ParseID(profile.ID)
	if err != nil {
		t.Fatalf("parse id %q: %v", profile.ID, err)
	}
	return id
}

func assertKind(t *testing.T, err error, kind apperr.Kind, msg string) {
	t.Helper()
	e, ok := apperr.From(err)
	if !ok {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
	if e.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%s)", kind, e.Kind, e.Message)
	}
	if msg != "" && e.Message != msg {
		t.Fatalf("expected message %q, got %q", msg, e.Message)
	}
}

var errBroken = errors.New("store unavailable")

// brokenUsers 让指定写操作失败，其余透传
type brokenUsers struct {
	dao.UserStore
	failAppend   bool
	failFollower bool
}

func (b *brokenUsers) AppendTweet(ctx context.Context, id, tweetID int64) error {
	if b.failAppend {
		return errBroken
	}
	return b.UserStore.AppendTweet(ctx, id, tweetID)
}

func (b *brokenUsers) AddFollower(ctx context.Context, id, followerID int64) error {
	if b.failFollower {
		return errBroken
	}
	return b.UserStore.AddFollower(ctx, id, followerID)
}

type brokenTweets struct {
	dao.TweetStore
}

func (b *brokenTweets) IncrReplies(context.Context, int64, int) error {
	return errBroken
}
