package service

import (
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/apperr"
	"Chirp/pkg/log"
	"Chirp/pkg/snowflake"
	"Chirp/types"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	AddComment(ctx context.Context, opt *CreateCommentOpt) (*types.CommentResponse, error)
	ListComments(ctx context.Context, tweetID int64) ([]*types.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID, userID int64) error
}

type CreateCommentOpt struct {
	TweetID   int64
	AuthorID  int64
	Content   string
	CreatedAt string
}

type CommentsService struct {
	CommentsRepo dao.CommentStore
	TweetsRepo   dao.TweetStore
	UserService  IUserService
}

// AddComment 不校验推文是否存在，回复数更新失败不影响评论本身
func (s *CommentsService) AddComment(ctx context.Context, opt *CreateCommentOpt) (*types.CommentResponse, error) {
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

	comment := &models.Comment{
		ID:        snowflake.GenID(),
		Content:   content,
		AuthorID:  opt.AuthorID,
		TweetID:   opt.TweetID,
		CreatedAt: createdAt,
	}
	if err := s.CommentsRepo.Create(ctx, comment); err != nil {
		return nil, storeError(err)
	}

	if err := s.TweetsRepo.IncrReplies(ctx, opt.TweetID, 1); err != nil {
		log.L.Warn("increment replies failed",
			zap.Int64("tweet_id", opt.TweetID),
			zap.Int64("comment_id", comment.ID),
			zap.Error(err),
		)
	}

	authors, err := s.UserService.BatchGetSummaries(ctx, []int64{opt.AuthorID})
	if err != nil {
		log.L.Warn("load comment author failed", zap.Int64("author_id", opt.AuthorID), zap.Error(err))
	}
	return toComment(comment, authorOf(authors, opt.AuthorID)), nil
}

// ListComments 按时间正序，作者缺失时用占位身份
func (s *CommentsService) ListComments(ctx context.Context, tweetID int64) ([]*types.CommentResponse, error) {
	comments, err := s.CommentsRepo.ListByTweet(ctx, tweetID)
	if err != nil {
		return nil, storeError(err)
	}

	userIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.AuthorID)
	}
	authors, err := s.UserService.BatchGetSummaries(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*types.CommentResponse, 0, len(comments))
	for _, c := range comments {
		result = append(result, toComment(c, authorOf(authors, c.AuthorID)))
	}
	return result, nil
}

func (s *CommentsService) DeleteComment(ctx context.Context, commentID, userID int64) error {
	if userID == 0 {
		return apperr.NewValidation("User ID is required")
	}

	// 1. 查询评论
	comment, err := s.CommentsRepo.FindByID(ctx, commentID)
	if err != nil {
		return notFoundOr(err, "Comment not found")
	}

	// 2. 权限检查(只能删除自己的评论)
	if comment.AuthorID != userID {
		return apperr.NewForbidden("Unauthorized to delete this comment")
	}

	// 3. 删除后回复数减一，不设下限
	if err := s.CommentsRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return apperr.NewNotFound("Comment not found")
		}
		return storeError(err)
	}
	if err := s.TweetsRepo.IncrReplies(ctx, comment.TweetID, -1); err != nil {
		log.L.Warn("decrement replies failed",
			zap.Int64("tweet_id", comment.TweetID),
			zap.Int64("comment_id", commentID),
			zap.Error(err),
		)
	}
	return nil
}
