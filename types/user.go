package types

import "time"

type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest 只更新请求中出现的字段
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
	Banner   *string `json:"banner"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
}

// UserProfile 对外的用户信息，不含密码
type UserProfile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Avatar      string    `json:"avatar"`
	Bio         string    `json:"bio"`
	Banner      string    `json:"banner"`
	Location    string    `json:"location"`
	Website     string    `json:"website"`
	JoinDate    time.Time `json:"joinDate"`
	Following   int       `json:"following"`
	Followers   int       `json:"followers"`
	Tweets      []string  `json:"tweets"`
	IsFollowing bool      `json:"isFollowing"`
}

// UserSummary 关注列表、作者信息使用的精简结构
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio,omitempty"`
}

type SignupResponse struct {
	Message string       `json:"message"`
	User    *UserProfile `json:"user"`
}
