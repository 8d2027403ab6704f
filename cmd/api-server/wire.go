//go:build wireinject
// +build wireinject

package main

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/handler"
	"Chirp/pkg/database"
	"Chirp/pkg/server"
	"Chirp/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewBackend,
		server.NewGinEngine,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,
	)
	return nil, nil, nil
}
