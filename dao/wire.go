package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserStore,
	NewTweetStore,
	NewCommentStore,
)

func NewUserStore(b Backend) UserStore {
	return b.Users()
}

func NewTweetStore(b Backend) TweetStore {
	return b.Tweets()
}

func NewCommentStore(b Backend) CommentStore {
	return b.Comments()
}
