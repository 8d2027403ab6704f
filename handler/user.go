package handler

import (
	"Chirp/pkg/context"
	"Chirp/pkg/response"
	"Chirp/service"
	"Chirp/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/users")
	g.GET("", context.Wrap(u.ListUsers))
	g.POST("/signup", context.Wrap(u.Signup))
	g.POST("/login", context.Wrap(u.Login))
	g.GET("/username/:username", context.Wrap(u.GetByUsername))
	g.GET("/:id", context.Wrap(u.GetByID))
	g.PUT("/:id", context.Wrap(u.UpdateProfile))
}

// ListUsers 带 userId 时排除自己并标记关注状态
func (u *User) ListUsers(c *gin.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	users, err := u.UserService.ListUsers(c.Request.Context(), caller)
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	profile, err := u.UserService.Signup(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, types.SignupResponse{Message: "User created successfully", User: profile})
	return nil
}

func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	profile, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) GetByID(c *gin.Context) error {
	id, err := paramID(c, "id", "invalid user id")
	if err != nil {
		return err
	}
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	profile, err := u.UserService.GetByID(c.Request.Context(), id, caller)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) GetByUsername(c *gin.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	profile, err := u.UserService.GetByUsername(c.Request.Context(), c.Param("username"), caller)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) UpdateProfile(c *gin.Context) error {
	id, err := paramID(c, "id", "invalid user id")
	if err != nil {
		return err
	}
	var req types.UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	profile, err := u.UserService.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}
