package service

import (
	"Chirp/pkg/apperr"
	"Chirp/pkg/util"
	"context"
	"slices"
	"testing"
	"time"
)

func TestCreateTweet(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	a := s.signup(t, "alice")

	tweet, err := s.tweets.CreateTweet(ctx, &CreateTweetOpt{
		AuthorID: a,
		Content:  "hello world",
		Images:   []string{"https://img/1.png"},
		Location: "Boston",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tweet.Replies != 0 || tweet.Likes != 0 || tweet.Retweets != 0 {
		t.Errorf("counters not zero: %+v", tweet)
	}
	if tweet.Scheduled || tweet.ScheduledDate != nil {
		t.Errorf("unexpected schedule: %+v", tweet)
	}
	if tweet.Author.Username != "alice" || tweet.AuthorID != util.FormatID(a) {
		t.Errorf("unexpected author: %+v", tweet.Author)
	}

	id, _ := util.ParseID(tweet.ID)
	alice, _ := s.store.Users().FindByID(ctx, a)
	if !slices.Contains(alice.Tweets, id) {
		t.Fatalf("tweet id not appended to author: %v", alice.Tweets)
	}
}

func TestCreateTweetScheduled(t *testing.T) {
	s := newTestServices(t)
	a := s.signup(t, "alice")

	tweet, err := s.tweets.CreateTweet(context.Background(), &CreateTweetOpt{
		AuthorID:      a,
		Content:       "later",
		CreatedAt:     "2024-01-02T03:04:05Z",
		ScheduledDate: "2024-02-01T00:00:00+08:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !tweet.Scheduled || tweet.ScheduledDate == nil {
		t.Fatalf("expected scheduled tweet: %+v", tweet)
	}
	if want := time.Date(2024, 1, 31, 16, 0, 0, 0, time.UTC); !tweet.ScheduledDate.Equal(want) {
		t.Errorf("scheduled = %v, want %v", tweet.ScheduledDate, want)
	}
	if want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC); !tweet.CreatedAt.Equal(want) {
		t.Errorf("createdAt = %v, want %v", tweet.CreatedAt, want)
	}
}

func TestCreateTweetValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	a := s.signup(t, "alice")

	_, err := s.tweets.CreateTweet(ctx, &CreateTweetOpt{Content: "x"})
	assertKind(t, err, apperr.Validation, "Author ID is required")

	_, err = s.tweets.CreateTweet(ctx, &CreateTweetOpt{AuthorID: a, Content: "   "})
	assertKind(t, err, apperr.Validation, "Content is required")

	_, err = s.tweets.CreateTweet(ctx, &CreateTweetOpt{AuthorID: a, Content: "x", CreatedAt: "yesterday"})
	assertKind(t, err, apperr.Validation, "")

	_, err = s.tweets.CreateTweet(ctx, &CreateTweetOpt{AuthorID: a, Content: "x", ScheduledDate: "soon"})
	assertKind(t, err, apperr.Validation, "")
}

func TestListTweetsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	a := s.signup(t, "alice")

	if _, err := s.tweets.CreateTweet(ctx, &CreateTweetOpt{AuthorID: a, Content: "first", CreatedAt: "2024-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	latest, err := s.tweets.CreateTweet(ctx, &CreateTweetOpt{AuthorID: a, Content: "second"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tweets, err := s.tweets.ListTweets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(tweets))
	}
	if tweets[0].ID != latest.ID || tweets[0].Replies != 0 {
		t.Fatalf("newest tweet not first: %+v", tweets[0])
	}
	if tweets[0].Author.Name != "alice" {
		t.Errorf("author not embedded: %+v", tweets[0].Author)
	}
}

func TestListTweetsPlaceholderAuthor(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	if _, err := s.tweets.CreateTweet(ctx, &CreateTweetOpt{AuthorID: 42, Content: "orphan"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	tweets, err := s.tweets.ListTweets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	author := tweets[0].Author
	if author.Name != "Unknown User" || author.Username != "unknown" || author.ID != "42" {
		t.Fatalf("unexpected placeholder %+v", author)
	}
	if author.Avatar != util.PlaceholderAvatar("default") {
		t.Errorf("unexpected avatar %q", author.Avatar)
	}
}

func TestListUserTweets(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	a := s.signup(t, "alice")
	b := s.signup(t, "bob")

	mine, _ := s.tweets.CreateTweet(ctx, &CreateTweetOpt{AuthorID: a, Content: "alice says"})
	if _, err := s.tweets.CreateTweet(ctx, &CreateTweetOpt{AuthorID: b, Content: "bob says"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	tweets, err := s.tweets.ListUserTweets(ctx, a)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tweets) != 1 || tweets[0].ID != mine.ID {
		t.Fatalf("unexpected tweets %+v", tweets)
	}

	_, err = s.tweets.ListUserTweets(ctx, 42)
	assertKind(t, err, apperr.NotFound, "User not found")
}

func TestCreateTweetAppendFailsOpen(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	a := s.signup(t, "alice")

	s.tweets.UsersRepo = &brokenUsers{UserStore: s.store.Users(), failAppend: true}
	tweet, err := s.tweets.CreateTweet(ctx, &CreateTweetOpt{AuthorID: a, Content: "still here"})
	if err != nil {
		t.Fatalf("append failure must not surface: %v", err)
	}

	all, _ := s.tweets.ListTweets(ctx)
	if len(all) != 1 || all[0].ID != tweet.ID {
		t.Fatalf("tweet not stored: %+v", all)
	}
	alice, _ := s.store.Users().FindByID(ctx, a)
	if len(alice.Tweets) != 0 {
		t.Fatalf("expected author list untouched, got %v", alice.Tweets)
	}
}
