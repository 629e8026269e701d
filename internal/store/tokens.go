package store

import (
	"context"
	"fmt"

	"github.com/mozilla/zamboni-sub003/internal/models"

	"gorm.io/gorm"
)

func (s *Store) CreateToken(ctx context.Context, token *models.Token) error {
	return translate(s.db.WithContext(ctx).Create(token).Error)
}

// GetTokenByTypeAndKey loads a token and its consumer. The consumer's
// secret stays sealed.
func (s *Store) GetTokenByTypeAndKey(
	ctx context.Context,
	typ models.TokenType,
	key string,
) (*models.Token, error) {
	var token models.Token
	if err := s.db.WithContext(ctx).Preload("Creds").
		Where("token_type = ? AND key = ?", typ, key).First(&token).Error; err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

// GetTokenForClient loads a token scoped to the consumer with clientKey.
func (s *Store) GetTokenForClient(
	ctx context.Context,
	typ models.TokenType,
	clientKey, key string,
) (*models.Token, error) {
	var token models.Token
	err := s.db.WithContext(ctx).
		Joins("JOIN api_access ON api_access.id = oauth_token.creds_id").
		Where("oauth_token.token_type = ? AND api_access.key = ? AND oauth_token.key = ?",
			typ, clientKey, key).
		First(&token).Error
	if err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

// TokenExistsForClient runs one EXISTS query whatever the outcome.
func (s *Store) TokenExistsForClient(
	ctx context.Context,
	typ models.TokenType,
	clientKey, key string,
) (bool, error) {
	var exists bool
	err := s.db.WithContext(ctx).Raw(`SELECT EXISTS (
		SELECT 1 FROM oauth_token
		JOIN api_access ON api_access.id = oauth_token.creds_id
		WHERE oauth_token.token_type = ? AND api_access.key = ? AND oauth_token.key = ?
	)`, typ, clientKey, key).Scan(&exists).Error
	return exists, err
}

func (s *Store) UpdateToken(ctx context.Context, token *models.Token) error {
	return s.db.WithContext(ctx).Model(token).Select("user_id", "verifier").Updates(token).Error
}

func (s *Store) DeleteToken(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Token{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ExchangeRequestToken inserts access and deletes request in one
// transaction. A request token that is already gone fails the exchange.
func (s *Store) ExchangeRequestToken(ctx context.Context, request, access *models.Token) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND token_type = ?", request.ID, models.TokenTypeRequest).
			Delete(&models.Token{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return translate(tx.Create(access).Error)
	})
}

// CountTokensByType counts stored tokens; tokenType is "request" or "access".
func (s *Store) CountTokensByType(tokenType string) (int64, error) {
	typ, ok := models.ParseTokenType(tokenType)
	if !ok {
		return 0, fmt.Errorf("unknown token type %q", tokenType)
	}
	var n int64
	err := s.read.Model(&models.Token{}).Where("token_type = ?", typ).Count(&n).Error
	return n, err
}
