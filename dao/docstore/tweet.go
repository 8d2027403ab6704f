package docstore

import (
	"Chirp/dao"
	"Chirp/models"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ dao.TweetStore = (*Tweets)(nil)

type Tweets struct {
	coll *mongo.Collection
}

var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

func (t *Tweets) Create(ctx context.Context, tweet *models.Tweet) error {
	_, err := t.coll.InsertOne(ctx, tweet)
	return translate(err)
}

func (t *Tweets) FindByID(ctx context.Context, id int64) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := t.coll.FindOne(ctx, byID(id)).Decode(&tweet); err != nil {
		return nil, translate(err)
	}
	return &tweet, nil
}

func (t *Tweets) find(ctx context.Context, filter bson.M) ([]*models.Tweet, error) {
	cur, err := t.coll.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, translate(err)
	}
	tweets := make([]*models.Tweet, 0)
	if err := cur.All(ctx, &tweets); err != nil {
		return nil, translate(err)
	}
	return tweets, nil
}

func (t *Tweets) List(ctx context.Context) ([]*models.Tweet, error) {
	return t.find(ctx, bson.M{})
}

func (t *Tweets) FindByIDs(ctx context.Context, ids []int64) ([]*models.Tweet, error) {
	if len(ids) == 0 {
		return []*models.Tweet{}, nil
	}
	return t.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (t *Tweets) IncrReplies(ctx context.Context, id int64, delta int) error {
	_, err := t.coll.UpdateOne(ctx, byID(id), bson.M{"$inc": bson.M{"replies": delta}})
	return translate(err)
}
