package models

import "time"

const CollectionComments = "comments"

type Comment struct {
	ID        int64     `bson:"_id" gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Content   string    `bson:"content" gorm:"column:content;type:text;not null" json:"content"`
	AuthorID  int64     `bson:"author_id" gorm:"column:author_id;not null" json:"author_id"`
	TweetID   int64     `bson:"tweet_id" gorm:"column:tweet_id;not null;index" json:"tweet_id"` // 弱引用，不校验存在
	CreatedAt time.Time `bson:"created_at" gorm:"column:created_at;not null" json:"created_at"`
	Likes     int       `bson:"likes" gorm:"column:likes;not null;default:0" json:"likes"`
}

func (Comment) TableName() string {
	return CollectionComments
}
