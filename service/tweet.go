package service

import (
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/apperr"
	"Chirp/pkg/log"
	"Chirp/pkg/snowflake"
	"Chirp/types"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

var _ ITweetService = (*TweetService)(nil)

type ITweetService interface {
	ListTweets(ctx context.Context) ([]*types.TweetResponse, error)
	ListUserTweets(ctx context.Context, userID int64) ([]*types.TweetResponse, error)
	CreateTweet(ctx context.Context, opt *CreateTweetOpt) (*types.TweetResponse, error)
}

type CreateTweetOpt struct {
	AuthorID      int64
	Content       string
	CreatedAt     string
	Images        []string
	Location      string
	ScheduledDate string
}

type TweetService struct {
	TweetsRepo  dao.TweetStore
	UsersRepo   dao.UserStore
	UserService IUserService
}

func (s *TweetService) ListTweets(ctx context.Context) ([]*types.TweetResponse, error) {
	tweets, err := s.TweetsRepo.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return s.withAuthors(ctx, tweets)
}

// ListUserTweets 根据用户文档里的推文 id 列表查询
func (s *TweetService) ListUserTweets(ctx context.Context, userID int64) ([]*types.TweetResponse, error) {
	user, err := s.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	tweets, err := s.TweetsRepo.FindByIDs(ctx, user.Tweets)
	if err != nil {
		return nil, storeError(err)
	}
	return s.withAuthors(ctx, tweets)
}

// CreateTweet 推文写入成功即视为成功，作者推文列表的追加失败只记日志
func (s *TweetService) CreateTweet(ctx context.Context, opt *CreateTweetOpt) (*types.TweetResponse, error) {
	if opt.AuthorID == 0 {
		return nil, apperr.NewValidation("Author ID is required")
	}
	content := strings.TrimSpace(opt.Content)
	if content == "" {
		return nil, apperr.NewValidation("Content is required")
	}

	createdAt, ok := parseTime(opt.CreatedAt, time.Now().UTC())
	if !ok {
		return nil, apperr.NewValidation("createdAt must be an RFC3339 timestamp")
	}

	tweet := &models.Tweet{
		ID:        snowflake.GenID(),
		Content:   content,
		AuthorID:  opt.AuthorID,
		CreatedAt: createdAt,
		Location:  strings.TrimSpace(opt.Location),
	}
	if len(opt.Images) > 0 {
		tweet.Images = opt.Images
	}
	if strings.TrimSpace(opt.ScheduledDate) != "" {
		scheduled, ok := parseTime(opt.ScheduledDate, time.Time{})
		if !ok {
			return nil, apperr.NewValidation("scheduledDate must be an RFC3339 timestamp")
		}
		tweet.ScheduledDate = &scheduled
		tweet.Scheduled = true
	}

	if err := s.TweetsRepo.Create(ctx, tweet); err != nil {
		return nil, storeError(err)
	}

	if err := s.UsersRepo.AppendTweet(ctx, opt.AuthorID, tweet.ID); err != nil {
		log.L.Warn("append tweet to author failed",
			zap.Int64("author_id", opt.AuthorID),
			zap.Int64("tweet_id", tweet.ID),
			zap.Error(err),
		)
	}

	authors, err := s.UserService.BatchGetSummaries(ctx, []int64{opt.AuthorID})
	if err != nil {
		log.L.Warn("load tweet author failed", zap.Int64("author_id", opt.AuthorID), zap.Error(err))
	}
	return toTweet(tweet, authorOf(authors, opt.AuthorID)), nil
}

func (s *TweetService) withAuthors(ctx context.Context, tweets []*models.Tweet) ([]*types.TweetResponse, error) {
	ids := make([]int64, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.AuthorID)
	}
	authors, err := s.UserService.BatchGetSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*types.TweetResponse, 0, len(tweets))
	for _, t := range tweets {
		result = append(result, toTweet(t, authorOf(authors, t.AuthorID)))
	}
	return result, nil
}
