// Package docstore 以 MongoDB 实现 dao 契约，集合为 users、tweets、comments，_id 为雪花 id。
package docstore

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/models"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var _ dao.Backend = (*Store)(nil)

type Store struct {
	client   *mongo.Client
	db       *mongo.Database
	users    *Users
	tweets   *Tweets
	comments *Comments
}

// Open 建立连接并做一次 ping，连接句柄在进程内复用
func Open(ctx context.Context, conf *config.Mongo) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, conf.Timeout())
	defer cancel()

	opts := options.Client().
		ApplyURI(conf.URI).
		SetConnectTimeout(conf.Timeout()).
		SetServerSelectionTimeout(conf.Timeout())
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("docstore: connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("docstore: ping: %w", err)
	}
	return New(client, conf.Database), nil
}

func New(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		client:   client,
		db:       db,
		users:    &Users{coll: db.Collection(models.CollectionUsers)},
		tweets:   &Tweets{coll: db.Collection(models.CollectionTweets)},
		comments: &Comments{coll: db.Collection(models.CollectionComments)},
	}
}

func (s *Store) Users() dao.UserStore       { return s.users }
func (s *Store) Tweets() dao.TweetStore     { return s.tweets }
func (s *Store) Comments() dao.CommentStore { return s.comments }
func (s *Store) Driver() string             { return config.DriverMongo }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.users.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("docstore: users indexes: %w", err)
	}
	_, err = s.tweets.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("docstore: tweets indexes: %w", err)
	}
	_, err = s.comments.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "tweet_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("docstore: comments indexes: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// translate 把驱动错误映射为 dao 哨兵错误
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w: %v", dao.ErrNotFound, err)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", dao.ErrDuplicate, err)
	default:
		return err
	}
}

func byID(id int64) bson.M {
	return bson.M{"_id": id}
}

// updateMatched 更新未命中任何文档时视为不存在
func updateMatched(res *mongo.UpdateResult, err error) error {
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return dao.ErrNotFound
	}
	return nil
}
