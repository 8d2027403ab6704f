package docstore

import (
	"Chirp/dao"
	"Chirp/models"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ dao.UserStore = (*Users)(nil)

type Users struct {
	coll *mongo.Collection
}

func (u *Users) Create(ctx context.Context, user *models.User) error {
	_, err := u.coll.InsertOne(ctx, user)
	return translate(err)
}

func (u *Users) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := u.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (u *Users) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return u.findOne(ctx, byID(id))
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"email": email})
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"username": username})
}

func (u *Users) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*models.User, error) {
	cur, err := u.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, translate(err)
	}
	users := make([]*models.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (u *Users) FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	return u.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (u *Users) List(ctx context.Context, excludeID int64) ([]*models.User, error) {
	filter := bson.M{}
	if excludeID != 0 {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return u.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (u *Users) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := u.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (u *Users) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return u.exists(ctx, bson.M{"email": email})
}

func (u *Users) ExistsUsername(ctx context.Context, username string) (bool, error) {
	return u.exists(ctx, bson.M{"username": username})
}

func (u *Users) UpdateProfile(ctx context.Context, id int64, upd dao.ProfileUpdate) error {
	if upd.Empty() {
		return nil
	}
	return updateMatched(u.coll.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M(upd.Fields())}))
}

func (u *Users) AddFollowing(ctx context.Context, id, targetID int64) error {
	return u.update(ctx, id, bson.M{
		"$push": bson.M{"following_list": targetID},
		"$inc":  bson.M{"following": 1},
	})
}

func (u *Users) RemoveFollowing(ctx context.Context, id, targetID int64) error {
	return u.update(ctx, id, bson.M{
		"$pull": bson.M{"following_list": targetID},
		"$inc":  bson.M{"following": -1},
	})
}

func (u *Users) AddFollower(ctx context.Context, id, followerID int64) error {
	return u.update(ctx, id, bson.M{
		"$push": bson.M{"followers_list": followerID},
		"$inc":  bson.M{"followers": 1},
	})
}

func (u *Users) RemoveFollower(ctx context.Context, id, followerID int64) error {
	return u.update(ctx, id, bson.M{
		"$pull": bson.M{"followers_list": followerID},
		"$inc":  bson.M{"followers": -1},
	})
}

func (u *Users) AppendTweet(ctx context.Context, id, tweetID int64) error {
	return u.update(ctx, id, bson.M{"$push": bson.M{"tweets": tweetID}})
}

func (u *Users) update(ctx context.Context, id int64, update bson.M) error {
	return updateMatched(u.coll.UpdateOne(ctx, byID(id), update))
}
