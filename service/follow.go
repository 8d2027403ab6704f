package service

import (
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/apperr"
	"Chirp/pkg/log"
	"Chirp/types"
	"context"
	"slices"

	"go.uber.org/zap"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followeeID int64) (*types.FollowResponse, error)
	Unfollow(ctx context.Context, followerID, followeeID int64) (*types.FollowResponse, error)
	ListFollowers(ctx context.Context, userID int64) ([]types.UserSummary, error)
	ListFollowing(ctx context.Context, userID int64) ([]types.UserSummary, error)
}

// FollowService 关注关系保存在双方文档中，两次写入互相独立，中途失败会留下单边关系
type FollowService struct {
	UsersRepo dao.UserStore
}

func (s *FollowService) loadPair(ctx context.Context, followerID, followeeID int64) (*models.User, *models.User, error) {
	// 不能关注自己
	if followerID == followeeID {
		return nil, nil, apperr.NewValidation("You cannot follow yourself")
	}
	follower, err := s.UsersRepo.FindByID(ctx, followerID)
	if err != nil {
		return nil, nil, notFoundOr(err, "User not found")
	}
	followee, err := s.UsersRepo.FindByID(ctx, followeeID)
	if err != nil {
		return nil, nil, notFoundOr(err, "User not found")
	}
	return follower, followee, nil
}

func (s *FollowService) Follow(ctx context.Context, followerID, followeeID int64) (*types.FollowResponse, error) {
	follower, followee, err := s.loadPair(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}

	// 检查是否已经关注
	if slices.Contains(follower.FollowingList, followeeID) {
		return nil, apperr.NewConflict("Already following this user")
	}

	if err := s.UsersRepo.AddFollowing(ctx, followerID, followeeID); err != nil {
		return nil, storeError(err)
	}
	if err := s.UsersRepo.AddFollower(ctx, followeeID, followerID); err != nil {
		log.L.Error("follow left one-sided",
			zap.Int64("follower_id", followerID),
			zap.Int64("followee_id", followeeID),
			zap.Error(err),
		)
		return nil, storeError(err)
	}

	return &types.FollowResponse{
		Message:   "Successfully followed user",
		Following: follower.Following + 1,
		Followers: followee.Followers + 1,
	}, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID int64) (*types.FollowResponse, error) {
	follower, followee, err := s.loadPair(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(follower.FollowingList, followeeID) {
		return nil, apperr.NewConflict("Not following this user")
	}

	if err := s.UsersRepo.RemoveFollowing(ctx, followerID, followeeID); err != nil {
		return nil, storeError(err)
	}
	if err := s.UsersRepo.RemoveFollower(ctx, followeeID, followerID); err != nil {
		log.L.Error("unfollow left one-sided",
			zap.Int64("follower_id", followerID),
			zap.Int64("followee_id", followeeID),
			zap.Error(err),
		)
		return nil, storeError(err)
	}

	return &types.FollowResponse{
		Message:   "Successfully unfollowed user",
		Following: follower.Following - 1,
		Followers: followee.Followers - 1,
	}, nil
}

func (s *FollowService) ListFollowers(ctx context.Context, userID int64) ([]types.UserSummary, error) {
	user, err := s.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return s.resolve(ctx, user.FollowersList)
}

func (s *FollowService) ListFollowing(ctx context.Context, userID int64) ([]types.UserSummary, error) {
	user, err := s.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return s.resolve(ctx, user.FollowingList)
}

// resolve 按列表顺序返回，已不存在的用户直接跳过
func (s *FollowService) resolve(ctx context.Context, ids []int64) ([]types.UserSummary, error) {
	users, err := s.UsersRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, storeError(err)
	}
	byID := make(map[int64]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	result := make([]types.UserSummary, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			result = append(result, toSummary(u))
		}
	}
	return result, nil
}
