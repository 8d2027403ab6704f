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

type CommentsHandler struct {
	CommentsService service.ICommentsService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	comments := r.Group("/tweets")
	comments.POST("/:id/comments", context.Wrap(ch.CreateComment)) //创建评论
	comments.GET("/:id/comments", context.Wrap(ch.GetComments))
	comments.DELETE("/comments/:id", context.Wrap(ch.DeleteComment))
}

// CreateComment 创建评论
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	tweetID, err := paramID(c, "id", "invalid tweet id")
	if err != nil {
		return err
	}
	var req types.CreateCommentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	authorID, err := util.ParseOptionalID(req.AuthorID)
	if err != nil {
		return apperr.NewValidation("invalid user id")
	}

	comment, err := ch.CommentsService.AddComment(c.Request.Context(), &service.CreateCommentOpt{
		TweetID:   tweetID,
		AuthorID:  authorID,
		Content:   req.Content,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		return err
	}
	response.Created(c, comment)
	return nil
}

// GetComments 获取评论列表，按时间正序
func (ch *CommentsHandler) GetComments(c *gin.Context) error {
	tweetID, err := paramID(c, "id", "invalid tweet id")
	if err != nil {
		return err
	}
	comments, err := ch.CommentsService.ListComments(c.Request.Context(), tweetID)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

// DeleteComment 只有作者本人可以删除
func (ch *CommentsHandler) DeleteComment(c *gin.Context) error {
	commentID, err := paramID(c, "id", "invalid comment id")
	if err != nil {
		return err
	}
	var req types.DeleteCommentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	userID, err := util.ParseOptionalID(req.UserID)
	if err != nil {
		return apperr.NewValidation("invalid user id")
	}

	if err := ch.CommentsService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		return err
	}
	response.Success(c, types.MessageResponse{Message: "Comment deleted successfully"})
	return nil
}
