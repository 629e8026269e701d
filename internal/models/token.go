package models

// TokenType distinguishes pending request tokens from access tokens.
type TokenType int

const (
	TokenTypeRequest TokenType = 0
	TokenTypeAccess  TokenType = 1
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeRequest:
		return "request"
	case TokenTypeAccess:
		return "access"
	}
	return "unknown"
}

// ParseTokenType is the inverse of TokenType.String.
func ParseTokenType(s string) (TokenType, bool) {
	switch s {
	case "request":
		return TokenTypeRequest, true
	case "access":
		return TokenTypeAccess, true
	}
	return 0, false
}

type Token struct {
	ID        uint      `gorm:"primaryKey"`
	TokenType TokenType `gorm:"index:idx_token_type_key;not null"`
	CredsID   uint      `gorm:"index;not null"`
	Creds     *Access
	Key       string  `gorm:"index:idx_token_type_key;size:255;not null"`
	Secret    string  `gorm:"size:255;not null"`
	Timestamp int64   `gorm:"not null"`
	UserID    *uint   `gorm:"index"` // nil until the resource owner grants
	Verifier  *string `gorm:"size:255"`
}

func (Token) TableName() string {
	return "oauth_token"
}

// IsRequest returns true for pending request tokens
func (t *Token) IsRequest() bool {
	return t.TokenType == TokenTypeRequest
}

// IsAuthorized returns true once a user has been bound to the token
func (t *Token) IsAuthorized() bool {
	return t.UserID != nil
}
