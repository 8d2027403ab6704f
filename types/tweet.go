package types

import "time"

type CreateTweetRequest struct {
	AuthorID      string   `json:"authorId"`
	Content       string   `json:"content"`
	CreatedAt     string   `json:"createdAt"`
	Images        []string `json:"images"`
	Location      string   `json:"location"`
	ScheduledDate string   `json:"scheduledDate"`
}

type TweetResponse struct {
	ID            string      `json:"id"`
	Content       string      `json:"content"`
	AuthorID      string      `json:"authorId"`
	Author        UserSummary `json:"author"`
	CreatedAt     time.Time   `json:"createdAt"`
	ScheduledDate *time.Time  `json:"scheduledDate,omitempty"`
	Scheduled     bool        `json:"scheduled"`
	Likes         int         `json:"likes"`
	Retweets      int         `json:"retweets"`
	Replies       int         `json:"replies"`
	Images        []string    `json:"images,omitempty"`
	Location      string      `json:"location,omitempty"`
}

type CreateTweetResponse struct {
	Message string         `json:"message"`
	TweetID string         `json:"tweetId"`
	Tweet   *TweetResponse `json:"tweet"`
}
