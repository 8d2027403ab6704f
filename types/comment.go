package types

import "time"

type CreateCommentRequest struct {
	AuthorID  string `json:"authorId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// DeleteCommentRequest UserID 为请求删除的用户
type DeleteCommentRequest struct {
	UserID string `json:"userId"`
}

type CommentResponse struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	AuthorID  string      `json:"authorId"`
	TweetID   string      `json:"tweetId"`
	Author    UserSummary `json:"author"`
	CreatedAt time.Time   `json:"createdAt"`
	Likes     int         `json:"likes"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
