package handler

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(User), "*"),
	wire.Struct(new(Follow), "*"),
	wire.Struct(new(Tweet), "*"),
	wire.Struct(new(CommentsHandler), "*"),
	wire.Struct(new(Health), "*"),
)
