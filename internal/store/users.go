package store

import (
	"context"

	"github.com/mozilla/zamboni-sub003/internal/models"

	"gorm.io/gorm/clause"
)

func (s *Store) CreateUser(ctx context.Context, user *models.UserProfile) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

// GetUserByID loads a user with its groups.
func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := s.read.WithContext(ctx).Preload("Groups").First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := s.read.WithContext(ctx).Preload("Groups").
		Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) UpdateUserRegion(ctx context.Context, userID uint, region string) error {
	res := s.db.WithContext(ctx).Model(&models.UserProfile{}).
		Where("id = ?", userID).Update("region", region)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// EnsureGroup returns the named group, creating it when missing.
func (s *Store) EnsureGroup(ctx context.Context, name string) (*models.Group, error) {
	group := models.Group{Name: name}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).Create(&group).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&group).Error; err != nil {
		return nil, translate(err)
	}
	return &group, nil
}

func (s *Store) AddUserToGroup(ctx context.Context, userID uint, groupName string) error {
	group, err := s.EnsureGroup(ctx, groupName)
	if err != nil {
		return err
	}
	user := models.UserProfile{ID: userID}
	return s.db.WithContext(ctx).Model(&user).Association("Groups").Append(group)
}
