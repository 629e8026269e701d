package models

// Nonce is one row of the replay ledger. Absent tokens are stored as ""
// so the composite unique index also covers two-legged requests.
type Nonce struct {
	ID           uint   `gorm:"primaryKey"`
	Nonce        string `gorm:"size:128;not null;uniqueIndex:idx_oauth_nonce_tuple"`
	Timestamp    int64  `gorm:"not null;index;uniqueIndex:idx_oauth_nonce_tuple"`
	ClientKey    string `gorm:"size:255;not null;uniqueIndex:idx_oauth_nonce_tuple"`
	RequestToken string `gorm:"size:128;not null;default:'';uniqueIndex:idx_oauth_nonce_tuple"`
	AccessToken  string `gorm:"size:128;not null;default:'';uniqueIndex:idx_oauth_nonce_tuple"`
}

func (Nonce) TableName() string {
	return "oauth_nonce"
}
