// Package dao 定义服务层依赖的存储契约，文档库与关系库各自实现。
//
// 所有跨文档的写操作都由服务层按顺序发起，存储层不提供事务。
package dao

import (
	"Chirp/models"
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("dao: record not found")
	ErrDuplicate = errors.New("dao: duplicate key")
)

// ProfileUpdate 只更新非 nil 字段
type ProfileUpdate struct {
	Name     *string
	Username *string
	Bio      *string
	Avatar   *string
	Banner   *string
	Location *string
	Website  *string
}

func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && p.Username == nil && p.Bio == nil && p.Avatar == nil &&
		p.Banner == nil && p.Location == nil && p.Website == nil
}

// Fields 返回 存储字段名 -> 新值
func (p ProfileUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("name", p.Name)
	set("username", p.Username)
	set("bio", p.Bio)
	set("avatar", p.Avatar)
	set("banner", p.Banner)
	set("location", p.Location)
	set("website", p.Website)
	return fields
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// FindByIDs 不存在的 id 直接忽略，返回顺序不保证
	FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error)
	// List excludeID 为 0 时返回全部用户
	List(ctx context.Context, excludeID int64) ([]*models.User, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) error

	// 以下四个方法各自只写一个文档：列表和计数在同一次更新里修改
	AddFollowing(ctx context.Context, id, targetID int64) error
	RemoveFollowing(ctx context.Context, id, targetID int64) error
	AddFollower(ctx context.Context, id, followerID int64) error
	RemoveFollower(ctx context.Context, id, followerID int64) error

	AppendTweet(ctx context.Context, id, tweetID int64) error
}

type TweetStore interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	FindByID(ctx context.Context, id int64) (*models.Tweet, error)
	// List 按创建时间倒序
	List(ctx context.Context) ([]*models.Tweet, error)
	// FindByIDs 按创建时间倒序
	FindByIDs(ctx context.Context, ids []int64) ([]*models.Tweet, error)
	// IncrReplies 推文不存在时什么也不做，也不设下限
	IncrReplies(ctx context.Context, id int64, delta int) error
}

type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	// ListByTweet 按创建时间正序
	ListByTweet(ctx context.Context, tweetID int64) ([]*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// Backend 一个已连接的存储实例
type Backend interface {
	Users() UserStore
	Tweets() TweetStore
	Comments() CommentStore
	Driver() string
	Ping(ctx context.Context) error
	// Migrate 建索引或建表，可重复执行
	Migrate(ctx context.Context) error
	Close(ctx context.Context) error
}
