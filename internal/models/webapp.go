package models

import "time"

// App review states used by payment account cancellation.
const (
	StatusNull    = 0
	StatusPending = 2
	StatusPublic  = 4
)

// Webapp carries the app fields the payment layer reads and writes.
type Webapp struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	AppSlug          string `gorm:"size:30;index"`
	Status           int    `gorm:"not null;default:0"`
	OwnerID          uint   `gorm:"index"`
	SolitudePublicID *string `gorm:"size:255"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Webapp) TableName() string {
	return "addons"
}
