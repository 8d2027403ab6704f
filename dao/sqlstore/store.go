// Package sqlstore 在 MySQL / SQLite 上实现 dao 契约，文档结构原样保留，id 列表存为 JSON 列。
package sqlstore

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/log"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ dao.Backend = (*Store)(nil)

type Store struct {
	db       *gorm.DB
	driver   string
	users    *Users
	tweets   *Tweets
	comments *Comments
}

// Open 按配置连接数据库
func Open(conf *config.Config) (*Store, error) {
	var dialector gorm.Dialector
	switch conf.Store.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.MySQL.Dsn())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.SQLite.Path)
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", conf.Store.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(zap.NewStdLog(log.L), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", conf.Store.Driver, err)
	}
	return New(db, conf.Store.Driver), nil
}

func New(db *gorm.DB, driver string) *Store {
	return &Store{
		db:       db,
		driver:   driver,
		users:    NewUsers(db),
		tweets:   NewTweets(db),
		comments: NewComments(db),
	}
}

func (s *Store) Users() dao.UserStore       { return s.users }
func (s *Store) Tweets() dao.TweetStore     { return s.tweets }
func (s *Store) Comments() dao.CommentStore { return s.comments }
func (s *Store) Driver() string             { return s.driver }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.User{}, &models.Tweet{}, &models.Comment{})
}

func (s *Store) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
