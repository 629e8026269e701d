package store

import (
	"context"

	"github.com/mozilla/zamboni-sub003/internal/models"
)

func (s *Store) CreateWebapp(ctx context.Context, app *models.Webapp) error {
	return translate(s.db.WithContext(ctx).Create(app).Error)
}

func (s *Store) GetWebapp(ctx context.Context, id uint) (*models.Webapp, error) {
	var app models.Webapp
	if err := s.read.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

// SetWebappPublicID stores the generic product id minted for the app.
func (s *Store) SetWebappPublicID(ctx context.Context, id uint, publicID string) error {
	return s.db.WithContext(ctx).Model(&models.Webapp{}).Where("id = ?", id).
		Update("solitude_public_id", publicID).Error
}
