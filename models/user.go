package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"size:254;uniqueIndex;not null"`
	Username  string `gorm:"size:150;uniqueIndex;not null"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"size:150"`
	LastName  string `gorm:"size:150"`
	Avatar    string // public URL, empty when unset
}

// Follow is a directed subscription edge: UserID follows FollowingID.
// No soft delete: a tombstoned row would still hold the unique index
// and block re-subscribing.
type Follow struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;uniqueIndex:idx_follows_user_following"`
	FollowingID uint `gorm:"not null;uniqueIndex:idx_follows_user_following"`
	CreatedAt   time.Time

	User      User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Following User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}
