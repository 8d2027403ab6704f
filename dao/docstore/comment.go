package docstore

import (
	"Chirp/dao"
	"Chirp/models"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ dao.CommentStore = (*Comments)(nil)

type Comments struct {
	coll *mongo.Collection
}

func (c *Comments) Create(ctx context.Context, comment *models.Comment) error {
	_, err := c.coll.InsertOne(ctx, comment)
	return translate(err)
}

func (c *Comments) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	if err := c.coll.FindOne(ctx, byID(id)).Decode(&comment); err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (c *Comments) ListByTweet(ctx context.Context, tweetID int64) ([]*models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := c.coll.Find(ctx, bson.M{"tweet_id": tweetID}, opts)
	if err != nil {
		return nil, translate(err)
	}
	comments := make([]*models.Comment, 0)
	if err := cur.All(ctx, &comments); err != nil {
		return nil, translate(err)
	}
	return comments, nil
}

func (c *Comments) Delete(ctx context.Context, id int64) error {
	res, err := c.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return dao.ErrNotFound
	}
	return nil
}
