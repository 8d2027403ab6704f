package service

import (
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/apperr"
	"Chirp/pkg/encrypt"
	"Chirp/pkg/snowflake"
	"Chirp/pkg/util"
	"Chirp/types"
	"context"
	"errors"
	"strings"
	"time"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	ListUsers(ctx context.Context, excludeID int64) ([]*types.UserProfile, error)
	Signup(ctx context.Context, req *types.SignupRequest) (*types.UserProfile, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.UserProfile, error)
	GetByID(ctx context.Context, id, callerID int64) (*types.UserProfile, error)
	GetByUsername(ctx context.Context, username string, callerID int64) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, id int64, req *types.UpdateProfileRequest) (*types.UserProfile, error)
	BatchGetSummaries(ctx context.Context, ids []int64) (map[int64]types.UserSummary, error)
}

type UserService struct {
	UsersRepo dao.UserStore
}

// ListUsers excludeID 非 0 时排除自己，并标记是否已关注
func (s *UserService) ListUsers(ctx context.Context, excludeID int64) ([]*types.UserProfile, error) {
	users, err := s.UsersRepo.List(ctx, excludeID)
	if err != nil {
		return nil, storeError(err)
	}
	result := make([]*types.UserProfile, 0, len(users))
	for _, u := range users {
		result = append(result, toProfile(u, excludeID))
	}
	return result, nil
}

// Signup 注册用户
func (s *UserService) Signup(ctx context.Context, req *types.SignupRequest) (*types.UserProfile, error) {
	name := strings.TrimSpace(req.Name)
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if name == "" || username == "" || email == "" || req.Password == "" {
		return nil, apperr.NewValidation("Name, username, email and password are required")
	}

	exist, err := s.UsersRepo.ExistsEmail(ctx, email)
	if err != nil {
		return nil, storeError(err)
	}
	if exist {
		return nil, apperr.NewConflict("Email already exists")
	}
	exist, err = s.UsersRepo.ExistsUsername(ctx, username)
	if err != nil {
		return nil, storeError(err)
	}
	if exist {
		return nil, apperr.NewConflict("Username already exists")
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, storeError(err)
	}

	user := &models.User{
		ID:            snowflake.GenID(),
		Name:          name,
		Username:      username,
		Email:         email,
		Password:      hashed,
		Avatar:        util.PlaceholderAvatar(username),
		JoinDate:      time.Now().UTC(),
		FollowingList: models.IDList{},
		FollowersList: models.IDList{},
		Tweets:        models.IDList{},
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册时由唯一索引兜底
		if errors.Is(err, dao.ErrDuplicate) {
			return nil, apperr.NewConflict("Email or username already exists")
		}
		return nil, storeError(err)
	}
	return toProfile(user, 0), nil
}

// Login 登录处理
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.UserProfile, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, apperr.NewAuth("Invalid email or password")
		}
		return nil, storeError(err)
	}
	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, apperr.NewAuth("Invalid email or password")
	}
	return toProfile(user, 0), nil
}

func (s *UserService) GetByID(ctx context.Context, id, callerID int64) (*types.UserProfile, error) {
	user, err := s.UsersRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return toProfile(user, callerID), nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string, callerID int64) (*types.UserProfile, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return toProfile(user, callerID), nil
}

// UpdateProfile 只写入请求中出现的字段
func (s *UserService) UpdateProfile(ctx context.Context, id int64, req *types.UpdateProfileRequest) (*types.UserProfile, error) {
	user, err := s.UsersRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}

	upd := dao.ProfileUpdate{
		Bio:      req.Bio,
		Avatar:   req.Avatar,
		Banner:   req.Banner,
		Location: req.Location,
		Website:  req.Website,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperr.NewValidation("Name cannot be empty")
		}
		upd.Name = &name
	}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, apperr.NewValidation("Username cannot be empty")
		}
		if username != user.Username {
			other, err := s.UsersRepo.FindByUsername(ctx, username)
			if err != nil && !errors.Is(err, dao.ErrNotFound) {
				return nil, storeError(err)
			}
			if other != nil && other.ID != id {
				return nil, apperr.NewConflict("Username already exists")
			}
		}
		upd.Username = &username
	}

	if err := s.UsersRepo.UpdateProfile(ctx, id, upd); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return nil, apperr.NewConflict("Username already exists")
		}
		return nil, notFoundOr(err, "User not found")
	}

	updated, err := s.UsersRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return toProfile(updated, 0), nil
}

// BatchGetSummaries 批量获取用户简要信息，不存在的 id 不出现在结果中
func (s *UserService) BatchGetSummaries(ctx context.Context, ids []int64) (map[int64]types.UserSummary, error) {
	result := make(map[int64]types.UserSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := s.UsersRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, storeError(err)
	}
	for _, u := range users {
		result[u.ID] = toSummary(u)
	}
	return result, nil
}
