package database

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/dao/docstore"
	"Chirp/dao/sqlstore"
	"Chirp/pkg/log"
	"context"
	"time"

	"go.uber.org/zap"
)

// NewBackend 按 store.driver 建立存储连接，返回的 cleanup 在进程退出时断开连接
func NewBackend(conf *config.Config) (dao.Backend, func(), error) {
	var (
		backend dao.Backend
		err     error
	)
	switch conf.Store.Driver {
	case config.DriverMongo:
		backend, err = docstore.Open(context.Background(), conf.Mongo)
	default:
		backend, err = sqlstore.Open(conf)
	}
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Store.Driver), zap.Error(err))
		return nil, nil, err
	}
	log.L.Info("connect database success", zap.String("driver", backend.Driver()))

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := backend.Close(ctx); err != nil {
			log.L.Error("close database", zap.Error(err))
			return
		}
		log.L.Info("database closed", zap.String("driver", backend.Driver()))
	}
	return backend, cleanup, nil
}
