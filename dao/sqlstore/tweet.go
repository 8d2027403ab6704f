package sqlstore

import (
	"Chirp/dao"
	"Chirp/models"
	"context"

	"gorm.io/gorm"
)

var _ dao.TweetStore = (*Tweets)(nil)

type Tweets struct {
	Repo[models.Tweet]
}

func NewTweets(db *gorm.DB) *Tweets {
	return &Tweets{
		Repo: NewRepo[models.Tweet](db),
	}
}

func (t *Tweets) List(ctx context.Context) ([]*models.Tweet, error) {
	return t.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("id DESC")
	})
}

func (t *Tweets) FindByIDs(ctx context.Context, ids []int64) ([]*models.Tweet, error) {
	if len(ids) == 0 {
		return []*models.Tweet{}, nil
	}
	return t.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN ?", ids).Order("created_at DESC").Order("id DESC")
	})
}

func (t *Tweets) IncrReplies(ctx context.Context, id int64, delta int) error {
	err := t.Db.WithContext(ctx).
		Model(&models.Tweet{}).
		Where("id = ?", id).
		UpdateColumn("replies", gorm.Expr("replies + ?", delta)).
		Error
	return translate(err)
}
