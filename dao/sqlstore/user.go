package sqlstore

import (
	"Chirp/dao"
	"Chirp/models"
	"context"
	"slices"

	"gorm.io/gorm"
)

var _ dao.UserStore = (*Users)(nil)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.FindByWhere(ctx, "email = ?", email)
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.FindByWhere(ctx, "username = ?", username)
}

func (u *Users) FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	return u.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN ?", ids)
	})
}

func (u *Users) List(ctx context.Context, excludeID int64) ([]*models.User, error) {
	return u.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		if excludeID != 0 {
			db = db.Where("id <> ?", excludeID)
		}
		return db.Order("id ASC")
	})
}

func (u *Users) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return u.IsExist(ctx, "email = ?", email)
}

func (u *Users) ExistsUsername(ctx context.Context, username string) (bool, error) {
	return u.IsExist(ctx, "username = ?", username)
}

func (u *Users) UpdateProfile(ctx context.Context, id int64, upd dao.ProfileUpdate) error {
	if upd.Empty() {
		return nil
	}
	err := u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(upd.Fields()).Error
	return translate(err)
}

// 关系库没有 $push/$pull，列表在单行更新里读改写
type listColumn int

const (
	followingColumn listColumn = iota
	followersColumn
	tweetsColumn
)

func (u *Users) AddFollowing(ctx context.Context, id, targetID int64) error {
	return u.modifyList(ctx, id, followingColumn, targetID, true)
}

func (u *Users) RemoveFollowing(ctx context.Context, id, targetID int64) error {
	return u.modifyList(ctx, id, followingColumn, targetID, false)
}

func (u *Users) AddFollower(ctx context.Context, id, followerID int64) error {
	return u.modifyList(ctx, id, followersColumn, followerID, true)
}

func (u *Users) RemoveFollower(ctx context.Context, id, followerID int64) error {
	return u.modifyList(ctx, id, followersColumn, followerID, false)
}

func (u *Users) AppendTweet(ctx context.Context, id, tweetID int64) error {
	return u.modifyList(ctx, id, tweetsColumn, tweetID, true)
}

func (u *Users) modifyList(ctx context.Context, id int64, col listColumn, value int64, add bool) error {
	user, err := u.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var (
		list    models.IDList
		column  string
		counter string
	)
	switch col {
	case followingColumn:
		list, column, counter = user.FollowingList, "following_list", "following"
	case followersColumn:
		list, column, counter = user.FollowersList, "followers_list", "followers"
	default:
		list, column = user.Tweets, "tweets"
	}

	delta := 1
	if add {
		list = append(slices.Clone(list), value)
	} else {
		delta = -1
		list = slices.DeleteFunc(slices.Clone(list), func(v int64) bool { return v == value })
	}
	if list == nil {
		list = models.IDList{}
	}

	updates := map[string]any{column: list}
	if counter != "" {
		updates[counter] = gorm.Expr(counter+" + ?", delta)
	}
	err = u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates).Error
	return translate(err)
}
