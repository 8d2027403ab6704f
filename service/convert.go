package service

import (
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/apperr"
	"Chirp/pkg/util"
	"Chirp/types"
	"errors"
	"slices"
	"strings"
	"time"
)

const (
	placeholderName     = "Unknown User"
	placeholderUsername = "unknown"
)

// storeError 业务错误原样返回，其余包装为存储错误
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.From(err); ok {
		return err
	}
	return apperr.NewStore(err)
}

// notFoundOr 把 dao.ErrNotFound 转成指定提示的 NotFound
func notFoundOr(err error, msg string) error {
	if errors.Is(err, dao.ErrNotFound) {
		return apperr.NewNotFound(msg)
	}
	return storeError(err)
}

func toProfile(u *models.User, callerID int64) *types.UserProfile {
	return &types.UserProfile{
		ID:          util.FormatID(u.ID),
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		Avatar:      u.Avatar,
		Bio:         u.Bio,
		Banner:      u.Banner,
		Location:    u.Location,
		Website:     u.Website,
		JoinDate:    u.JoinDate,
		Following:   u.Following,
		Followers:   u.Followers,
		Tweets:      util.FormatIDs(u.Tweets),
		IsFollowing: callerID != 0 && slices.Contains(u.FollowersList, callerID),
	}
}

func toSummary(u *models.User) types.UserSummary {
	return types.UserSummary{
		ID:       util.FormatID(u.ID),
		Name:     u.Name,
		Username: u.Username,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
	}
}

// placeholderSummary 作者记录已不存在时使用
func placeholderSummary(id int64) types.UserSummary {
	return types.UserSummary{
		ID:       util.FormatID(id),
		Name:     placeholderName,
		Username: placeholderUsername,
		Avatar:   util.PlaceholderAvatar("default"),
	}
}

func authorOf(authors map[int64]types.UserSummary, id int64) types.UserSummary {
	if s, ok := authors[id]; ok {
		// 作者信息里不带简介
		s.Bio = ""
		return s
	}
	return placeholderSummary(id)
}

func toTweet(t *models.Tweet, author types.UserSummary) *types.TweetResponse {
	return &types.TweetResponse{
		ID:            util.FormatID(t.ID),
		Content:       t.Content,
		AuthorID:      util.FormatID(t.AuthorID),
		Author:        author,
		CreatedAt:     t.CreatedAt,
		ScheduledDate: t.ScheduledDate,
		Scheduled:     t.Scheduled,
		Likes:         t.Likes,
		Retweets:      t.Retweets,
		Replies:       t.Replies,
		Images:        t.Images,
		Location:      t.Location,
	}
}

func toComment(c *models.Comment, author types.UserSummary) *types.CommentResponse {
	return &types.CommentResponse{
		ID:        util.FormatID(c.ID),
		Content:   c.Content,
		AuthorID:  util.FormatID(c.AuthorID),
		TweetID:   util.FormatID(c.TweetID),
		Author:    author,
		CreatedAt: c.CreatedAt,
		Likes:     c.Likes,
	}
}

// parseTime 空值返回 fallback，只接受 RFC3339
func parseTime(value string, fallback time.Time) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
