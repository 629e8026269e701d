package models

import (
	"fmt"
	"time"
)

// Access is a registered API consumer. Secret holds the sealed value; the
// plaintext only lives in PlainSecret after the store opens it.
type Access struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"uniqueIndex;size:255;not null"`
	Secret      string `gorm:"type:text;not null"`
	PlainSecret string `gorm:"-"`
	UserID      uint   `gorm:"index;not null"`
	User        *UserProfile
	RedirectURI string
	AppName     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Access) TableName() string {
	return "api_access"
}

// AccessKeyFor builds the client key for a user's count-th consumer.
func AccessKeyFor(user *UserProfile, count int64) string {
	return fmt.Sprintf("mkt:%d:%s:%d", user.ID, user.Email, count)
}
