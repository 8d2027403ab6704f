package models

import (
	"time"

	"gorm.io/datatypes"
)

const CollectionTweets = "tweets"

type Tweet struct {
	ID            int64                       `bson:"_id" gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Content       string                      `bson:"content" gorm:"column:content;type:text;not null" json:"content"`
	AuthorID      int64                       `bson:"author_id" gorm:"column:author_id;not null;index" json:"author_id"`
	CreatedAt     time.Time                   `bson:"created_at" gorm:"column:created_at;not null;index" json:"created_at"`
	ScheduledDate *time.Time                  `bson:"scheduled_date,omitempty" gorm:"column:scheduled_date" json:"scheduled_date,omitempty"`
	Scheduled     bool                        `bson:"scheduled" gorm:"column:scheduled;not null;default:false" json:"scheduled"`
	Likes         int                         `bson:"likes" gorm:"column:likes;not null;default:0" json:"likes"`
	Retweets      int                         `bson:"retweets" gorm:"column:retweets;not null;default:0" json:"retweets"`
	Replies       int                         `bson:"replies" gorm:"column:replies;not null;default:0" json:"replies"`
	Images        datatypes.JSONSlice[string] `bson:"images,omitempty" gorm:"column:images" json:"images,omitempty"`
	Location      string                      `bson:"location,omitempty" gorm:"column:location;size:100" json:"location,omitempty"`
}

func (Tweet) TableName() string {
	return CollectionTweets
}
