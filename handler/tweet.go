package handler

import (
	"Chirp/pkg/apperr"
	"Chirp/pkg/context"
	"Chirp/pkg/response"
	"Chirp/pkg/util"
	"Chirp/service"
	"Chirp/types"

	"github.com/gin-gonic/gin"
)

type Tweet struct {
	TweetService service.ITweetService
}

func (t *Tweet) RegisterRouter(r gin.IRouter) {
	r.GET("/tweets", context.Wrap(t.ListTweets))
	r.POST("/tweets", context.Wrap(t.CreateTweet))
	r.GET("/users/:id/tweets", context.Wrap(t.ListUserTweets))
}

func (t *Tweet) ListTweets(c *gin.Context) error {
	tweets, err := t.TweetService.ListTweets(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tweets)
	return nil
}

func (t *Tweet) ListUserTweets(c *gin.Context) error {
	id, err := paramID(c, "id", "invalid user id")
	if err != nil {
		return err
	}
	tweets, err := t.TweetService.ListUserTweets(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, tweets)
	return nil
}

// CreateTweet 发布推文
func (t *Tweet) CreateTweet(c *gin.Context) error {
	var req types.CreateTweetRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	authorID, err := util.ParseOptionalID(req.AuthorID)
	if err != nil {
		return apperr.NewValidation("invalid user id")
	}

	tweet, err := t.TweetService.CreateTweet(c.Request.Context(), &service.CreateTweetOpt{
		AuthorID:      authorID,
		Content:       req.Content,
		CreatedAt:     req.CreatedAt,
		Images:        req.Images,
		Location:      req.Location,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		return err
	}
	response.Created(c, types.CreateTweetResponse{
		Message: "Tweet created successfully",
		TweetID: tweet.ID,
		Tweet:   tweet,
	})
	return nil
}
