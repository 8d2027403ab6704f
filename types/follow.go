package types

// FollowRequest 关注/取关请求，UserID 是发起方
type FollowRequest struct {
	UserID string `json:"userId"`
}

type FollowResponse struct {
	Message   string `json:"message"`
	Following int    `json:"following"` // 发起方关注数
	Followers int    `json:"followers"` // 目标粉丝数
}
