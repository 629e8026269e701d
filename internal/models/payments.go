package models

import "time"

// Payment provider identifiers persisted in PaymentAccount.Provider.
const (
	ProviderPayPal    = 0
	ProviderBango     = 1
	ProviderReference = 2
)

type SolitudeSeller struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	UUID        string `gorm:"uniqueIndex;size:255;not null"`
	ResourceURI string `gorm:"size:255"`
	CreatedAt   time.Time
}

func (SolitudeSeller) TableName() string {
	return "payments_seller"
}

type PaymentAccount struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;uniqueIndex:idx_payment_account_user_uri"`
	Name             string `gorm:"size:64"`
	AgreedTOS        bool   `gorm:"not null;default:false"`
	SolitudeSellerID uint   `gorm:"index"`
	SolitudeSeller   *SolitudeSeller
	SellerURI        string `gorm:"uniqueIndex;size:255;not null"`
	URI              string `gorm:"uniqueIndex;uniqueIndex:idx_payment_account_user_uri;size:255;not null"`
	AccountID        string `gorm:"size:255"`
	Provider         int    `gorm:"not null;default:1"`
	Inactive         bool   `gorm:"not null;default:false"`
	Shared           bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PaymentAccount) TableName() string {
	return "payment_accounts"
}

type AddonPaymentAccount struct {
	ID               uint   `gorm:"primaryKey"`
	AddonID          uint   `gorm:"index;not null"`
	PaymentAccountID uint   `gorm:"index;not null"`
	AccountURI       string `gorm:"index;size:255;not null"`
	ProductURI       string `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt        time.Time
}

func (AddonPaymentAccount) TableName() string {
	return "addon_payment_account"
}
