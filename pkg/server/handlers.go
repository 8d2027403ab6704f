package server

import (
	"Chirp/handler"
)

type Handlers struct {
	User            *handler.User
	Follow          *handler.Follow
	Tweet           *handler.Tweet
	CommentsHandler *handler.CommentsHandler
	Health          *handler.Health
}
