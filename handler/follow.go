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

type Follow struct {
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	g := r.Group("/users")
	g.POST("/follow/:targetId", context.Wrap(f.FollowUser))
	g.POST("/unfollow/:targetId", context.Wrap(f.UnfollowUser))
	g.GET("/:id/followers", context.Wrap(f.GetFollowers))
	g.GET("/:id/following", context.Wrap(f.GetFollowing))
}

// parsePair 发起方来自 body，目标来自路径
func (f *Follow) parsePair(c *gin.Context) (int64, int64, error) {
	target, err := paramID(c, "targetId", "invalid user id")
	if err != nil {
		return 0, 0, err
	}
	var req types.FollowRequest
	if err := bindJSON(c, &req); err != nil {
		return 0, 0, err
	}
	caller, err := util.ParseID(req.UserID)
	if err != nil {
		return 0, 0, apperr.NewValidation("invalid user id")
	}
	return caller, target, nil
}

// FollowUser 关注用户
func (f *Follow) FollowUser(c *gin.Context) error {
	caller, target, err := f.parsePair(c)
	if err != nil {
		return err
	}
	resp, err := f.FollowService.Follow(c.Request.Context(), caller, target)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// UnfollowUser 取消关注用户
func (f *Follow) UnfollowUser(c *gin.Context) error {
	caller, target, err := f.parsePair(c)
	if err != nil {
		return err
	}
	resp, err := f.FollowService.Unfollow(c.Request.Context(), caller, target)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (f *Follow) GetFollowers(c *gin.Context) error {
	id, err := paramID(c, "id", "invalid user id")
	if err != nil {
		return err
	}
	users, err := f.FollowService.ListFollowers(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (f *Follow) GetFollowing(c *gin.Context) error {
	id, err := paramID(c, "id", "invalid user id")
	if err != nil {
		return err
	}
	users, err := f.FollowService.ListFollowing(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}
