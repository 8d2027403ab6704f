package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"Chirp/config"
	"Chirp/dao"
	"Chirp/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conf := &config.Config{
		Store:  &config.Store{Driver: config.DriverSQLite},
		SQLite: &config.SQLite{Path: filepath.Join(t.TempDir(), "chirp.db")},
	}
	s, err := Open(conf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func newUser(id int64, username string) *models.User {
	return &models.User{
		ID:            id,
		Name:          username,
		Username:      username,
		Email:         username + "@x.com",
		Password:      "hash",
		JoinDate:      time.Now().UTC(),
		FollowingList: models.IDList{},
		FollowersList: models.IDList{},
		Tweets:        models.IDList{},
	}
}

func TestUsersCreateAndFind(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	users := s.Users()

	if err := users.Create(ctx, newUser(1, "alice")); err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := users.FindByEmail(ctx, "alice@x.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if u.ID != 1 || u.Username != "alice" {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := users.FindByID(ctx, 99); !errors.Is(err, dao.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	dup := newUser(2, "alice")
	if err := users.Create(ctx, dup); !errors.Is(err, dao.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for username, got %v", err)
	}

	ok, err := users.ExistsUsername(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("exists username: %v %v", ok, err)
	}
	ok, err = users.ExistsEmail(ctx, "nobody@x.com")
	if err != nil || ok {
		t.Fatalf("exists email: %v %v", ok, err)
	}
}

func TestUsersListExcludes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for i, name := range []string{"a", "b", "c"} {
		if err := s.Users().Create(ctx, newUser(int64(i+1), name)); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	all, err := s.Users().List(ctx, 0)
	if err != nil || len(all) != 3 {
		t.Fatalf("list all: %d %v", len(all), err)
	}
	rest, err := s.Users().List(ctx, 2)
	if err != nil || len(rest) != 2 {
		t.Fatalf("list excluding: %d %v", len(rest), err)
	}
	for _, u := range rest {
		if u.ID == 2 {
			t.Fatalf("excluded user returned")
		}
	}

	found, err := s.Users().FindByIDs(ctx, []int64{1, 3, 42})
	if err != nil || len(found) != 2 {
		t.Fatalf("find by ids: %d %v", len(found), err)
	}
}

func TestUsersFollowLists(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	users := s.Users()
	_ = users.Create(ctx, newUser(1, "a"))
	_ = users.Create(ctx, newUser(2, "b"))

	if err := users.AddFollowing(ctx, 1, 2); err != nil {
		t.Fatalf("add following: %v", err)
	}
	if err := users.AddFollower(ctx, 2, 1); err != nil {
		t.Fatalf("add follower: %v", err)
	}

	a, _ := users.FindByID(ctx, 1)
	b, _ := users.FindByID(ctx, 2)
	if a.Following != 1 || len(a.FollowingList) != 1 || a.FollowingList[0] != 2 {
		t.Fatalf("following not recorded: %+v", a)
	}
	if b.Followers != 1 || len(b.FollowersList) != 1 || b.FollowersList[0] != 1 {
		t.Fatalf("follower not recorded: %+v", b)
	}

	_ = users.RemoveFollowing(ctx, 1, 2)
	_ = users.RemoveFollower(ctx, 2, 1)
	a, _ = users.FindByID(ctx, 1)
	b, _ = users.FindByID(ctx, 2)
	if a.Following != 0 || len(a.FollowingList) != 0 || b.Followers != 0 || len(b.FollowersList) != 0 {
		t.Fatalf("unfollow not recorded: %+v %+v", a, b)
	}

	// 计数不设下限
	_ = users.RemoveFollower(ctx, 2, 1)
	b, _ = users.FindByID(ctx, 2)
	if b.Followers != -1 {
		t.Fatalf("expected followers to go negative, got %d", b.Followers)
	}

	if err := users.AddFollowing(ctx, 404, 1); !errors.Is(err, dao.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing user, got %v", err)
	}
}

func TestUsersUpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_ = s.Users().Create(ctx, newUser(1, "a"))
	_ = s.Users().Create(ctx, newUser(2, "b"))

	bio, name := "hello", "Alice"
	if err := s.Users().UpdateProfile(ctx, 1, dao.ProfileUpdate{Bio: &bio, Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	u, _ := s.Users().FindByID(ctx, 1)
	if u.Bio != "hello" || u.Name != "Alice" || u.Username != "a" {
		t.Fatalf("unexpected profile %+v", u)
	}

	taken := "b"
	if err := s.Users().UpdateProfile(ctx, 1, dao.ProfileUpdate{Username: &taken}); !errors.Is(err, dao.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestTweetsAndComments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := int64(1); i <= 3; i++ {
		tw := &models.Tweet{ID: i, Content: "t", AuthorID: 1, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := s.Tweets().Create(ctx, tw); err != nil {
			t.Fatalf("create tweet: %v", err)
		}
	}

	list, err := s.Tweets().List(ctx)
	if err != nil || len(list) != 3 {
		t.Fatalf("list: %d %v", len(list), err)
	}
	if list[0].ID != 3 || list[2].ID != 1 {
		t.Fatalf("expected newest first, got %d..%d", list[0].ID, list[2].ID)
	}

	some, _ := s.Tweets().FindByIDs(ctx, []int64{1, 2})
	if len(some) != 2 || some[0].ID != 2 {
		t.Fatalf("find by ids order: %+v", some)
	}

	if err := s.Tweets().IncrReplies(ctx, 2, 1); err != nil {
		t.Fatalf("incr: %v", err)
	}
	if err := s.Tweets().IncrReplies(ctx, 999, 1); err != nil {
		t.Fatalf("incr on missing tweet must be a no-op, got %v", err)
	}
	tw, _ := s.Tweets().FindByID(ctx, 2)
	if tw.Replies != 1 {
		t.Fatalf("replies = %d", tw.Replies)
	}

	for i := int64(1); i <= 2; i++ {
		c := &models.Comment{ID: 10 + i, Content: "c", AuthorID: 1, TweetID: 2, CreatedAt: base.Add(time.Duration(3-i) * time.Hour)}
		if err := s.Comments().Create(ctx, c); err != nil {
			t.Fatalf("create comment: %v", err)
		}
	}
	comments, err := s.Comments().ListByTweet(ctx, 2)
	if err != nil || len(comments) != 2 {
		t.Fatalf("list comments: %d %v", len(comments), err)
	}
	if comments[0].ID != 12 {
		t.Fatalf("expected oldest first, got %d", comments[0].ID)
	}

	if err := s.Comments().Delete(ctx, 11); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Comments().Delete(ctx, 11); !errors.Is(err, dao.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if s.Driver() != config.DriverSQLite {
		t.Fatalf("driver = %s", s.Driver())
	}
}
