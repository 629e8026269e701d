package store

import (
	"context"

	"github.com/mozilla/zamboni-sub003/internal/models"

	"gorm.io/gorm/clause"
)

// InsertNonce records a nonce tuple. created is true only for the first
// insert of a tuple; the unique index decides between concurrent callers.
func (s *Store) InsertNonce(ctx context.Context, nonce *models.Nonce) (bool, error) {
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(nonce)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// DeleteNoncesBefore drops ledger rows with a timestamp older than ts.
func (s *Store) DeleteNoncesBefore(ctx context.Context, ts int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where(clause.Lt{Column: clause.Column{Name: "timestamp"}, Value: ts}).
		Delete(&models.Nonce{})
	return res.RowsAffected, res.Error
}
