package sqlstore

import (
	"Chirp/dao"
	"Chirp/models"
	"context"

	"gorm.io/gorm"
)

var _ dao.CommentStore = (*Comments)(nil)

type Comments struct {
	Repo[models.Comment]
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{
		Repo: NewRepo[models.Comment](db),
	}
}

func (c *Comments) ListByTweet(ctx context.Context, tweetID int64) ([]*models.Comment, error) {
	return c.FindAll(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("tweet_id = ?", tweetID).Order("created_at ASC").Order("id ASC")
	})
}

func (c *Comments) Delete(ctx context.Context, id int64) error {
	res := c.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dao.ErrNotFound
	}
	return nil
}
