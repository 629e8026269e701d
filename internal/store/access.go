package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"gorm.io/gorm"
)

// CreateAccess seals access.PlainSecret into access.Secret and inserts the row.
func (s *Store) CreateAccess(ctx context.Context, access *models.Access) error {
	sealed, err := s.box.Seal(access.PlainSecret)
	if err != nil {
		return fmt.Errorf("seal access secret: %w", err)
	}
	access.Secret = sealed
	return translate(s.db.WithContext(ctx).Create(access).Error)
}

// missSecretLength matches the length of minted consumer secrets.
const missSecretLength = 16

func sealMissSecret(box *util.SecretBox) (string, error) {
	plain, err := util.RandomString(missSecretLength)
	if err != nil {
		return "", err
	}
	return box.Seal(plain)
}

// GetAccessByKey returns the consumer with PlainSecret populated. A miss
// still opens a sealed secret before returning ErrRecordNotFound.
func (s *Store) GetAccessByKey(ctx context.Context, key string) (*models.Access, error) {
	var access models.Access
	if err := s.read.WithContext(ctx).Where("key = ?", key).First(&access).Error; err != nil {
		err = translate(err)
		if errors.Is(err, ErrRecordNotFound) {
			_, _ = s.box.Open(s.missSealed)
		}
		return nil, err
	}
	if err := s.open(&access); err != nil {
		return nil, err
	}
	return &access, nil
}

func (s *Store) AccessKeyExists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.read.WithContext(ctx).Raw(
		"SELECT EXISTS (SELECT 1 FROM api_access WHERE key = ?)", key,
	).Scan(&exists).Error
	return exists, err
}

func (s *Store) CountAccessByUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Access{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// ListAccessByUser returns the user's consumers, oldest first, with secrets opened.
func (s *Store) ListAccessByUser(ctx context.Context, userID uint) ([]models.Access, error) {
	var list []models.Access
	if err := s.read.WithContext(ctx).Where("user_id = ?", userID).
		Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	for i := range list {
		if err := s.open(&list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// DeleteAccess removes one of userID's consumers and every token issued to it.
func (s *Store) DeleteAccess(ctx context.Context, userID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Access{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return tx.Where("creds_id = ?", id).Delete(&models.Token{}).Error
	})
}

// DeleteAllAccessForUser is the admin bypass that clears a user's consumers.
func (s *Store) DeleteAllAccessForUser(ctx context.Context, userID uint) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"creds_id IN (?)", tx.Model(&models.Access{}).Select("id").Where("user_id = ?", userID),
		).Delete(&models.Token{}).Error; err != nil {
			return err
		}
		res := tx.Where("user_id = ?", userID).Delete(&models.Access{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

func (s *Store) open(access *models.Access) error {
	plain, err := s.box.Open(access.Secret)
	if err != nil {
		return fmt.Errorf("open secret for access %d: %w", access.ID, err)
	}
	access.PlainSecret = plain
	return nil
}

// CountAccess counts every registered consumer; used for the metrics gauge.
func (s *Store) CountAccess() (int64, error) {
	var n int64
	err := s.read.Model(&models.Access{}).Count(&n).Error
	return n, err
}
