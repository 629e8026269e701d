package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AdminsGroup members are refused programmatic API identities.
const AdminsGroup = "Admins"

type UserProfile struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	DisplayName  string
	PasswordHash string  // empty for accounts that never log in through the browser
	Region       string  `gorm:"size:32"` // last resolved region slug
	Groups       []Group `gorm:"many2many:groups_users;"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserProfile) TableName() string {
	return "users"
}

// SetPassword stores a bcrypt hash of password.
func (u *UserProfile) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *UserProfile) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// InGroup reports whether the loaded Groups include name.
func (u *UserProfile) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

type Group struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:80;not null"`
}

func (Group) TableName() string {
	return "groups"
}
