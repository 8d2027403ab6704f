package models

import (
	"time"

	"gorm.io/datatypes"
)

const CollectionUsers = "users"

// IDList 文档内的 id 列表；关系库中以 JSON 列保存
type IDList = datatypes.JSONSlice[int64]

type User struct {
	ID            int64     `bson:"_id" gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name          string    `bson:"name" gorm:"column:name;size:100;not null" json:"name"`
	Username      string    `bson:"username" gorm:"column:username;size:50;not null;uniqueIndex" json:"username"`
	Email         string    `bson:"email" gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password      string    `bson:"password" gorm:"column:password;size:255;not null" json:"-"`
	Bio           string    `bson:"bio" gorm:"column:bio;size:500" json:"bio"`
	Avatar        string    `bson:"avatar" gorm:"column:avatar;size:500" json:"avatar"`
	Banner        string    `bson:"banner" gorm:"column:banner;size:500" json:"banner"`
	Location      string    `bson:"location" gorm:"column:location;size:100" json:"location"`
	Website       string    `bson:"website" gorm:"column:website;size:255" json:"website"`
	JoinDate      time.Time `bson:"join_date" gorm:"column:join_date;not null" json:"join_date"`
	Following     int       `bson:"following" gorm:"column:following;not null;default:0" json:"following"` // 关注数
	Followers     int       `bson:"followers" gorm:"column:followers;not null;default:0" json:"followers"` // 粉丝数
	FollowingList IDList    `bson:"following_list" gorm:"column:following_list" json:"following_list"`
	FollowersList IDList    `bson:"followers_list" gorm:"column:followers_list" json:"followers_list"`
	Tweets        IDList    `bson:"tweets" gorm:"column:tweets" json:"tweets"`
}

func (User) TableName() string {
	return CollectionUsers
}
