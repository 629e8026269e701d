package store

import (
	"context"

	"github.com/mozilla/zamboni-sub003/internal/models"

	"gorm.io/gorm"
)

func (s *Store) CreateSolitudeSeller(ctx context.Context, seller *models.SolitudeSeller) error {
	return translate(s.db.WithContext(ctx).Create(seller).Error)
}

func (s *Store) CreatePaymentAccount(ctx context.Context, acct *models.PaymentAccount) error {
	return translate(s.db.WithContext(ctx).Create(acct).Error)
}

func (s *Store) GetPaymentAccount(ctx context.Context, id uint) (*models.PaymentAccount, error) {
	var acct models.PaymentAccount
	if err := s.read.WithContext(ctx).Preload("SolitudeSeller").First(&acct, id).Error; err != nil {
		return nil, translate(err)
	}
	return &acct, nil
}

// ListPaymentAccounts returns a page of the user's active accounts.
func (s *Store) ListPaymentAccounts(
	ctx context.Context,
	userID uint,
	params PaginationParams,
) ([]models.PaymentAccount, PaginationResult, error) {
	query := s.read.WithContext(ctx).Model(&models.PaymentAccount{}).
		Where("user_id = ? AND inactive = ?", userID, false)
	if params.Search != "" {
		query = query.Where("name LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PaginationResult{}, err
	}

	var accounts []models.PaymentAccount
	if err := query.Order("id").Offset(params.offset()).Limit(params.PageSize).
		Find(&accounts).Error; err != nil {
		return nil, PaginationResult{}, err
	}
	return accounts, CalculatePagination(total, params.Page, params.PageSize), nil
}

func (s *Store) UpdatePaymentAccount(ctx context.Context, acct *models.PaymentAccount) error {
	return translate(s.db.WithContext(ctx).Save(acct).Error)
}

func (s *Store) ListAddonPaymentAccountsByURI(
	ctx context.Context,
	accountURI string,
) ([]models.AddonPaymentAccount, error) {
	var refs []models.AddonPaymentAccount
	err := s.db.WithContext(ctx).Where("account_uri = ?", accountURI).Order("id").Find(&refs).Error
	return refs, err
}

func (s *Store) CreateAddonPaymentAccount(ctx context.Context, ref *models.AddonPaymentAccount) error {
	return translate(s.db.WithContext(ctx).Create(ref).Error)
}

// CancelPaymentAccount soft-deletes acct and removes the app references to
// it in one transaction. With disableRefs, referencing apps that have no
// other payment account drop to StatusNull. The affected app ids are
// returned in reference order.
func (s *Store) CancelPaymentAccount(
	ctx context.Context,
	acct *models.PaymentAccount,
	disableRefs bool,
) (nulled []uint, removed []models.AddonPaymentAccount, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs []models.AddonPaymentAccount
		if err := tx.Where("account_uri = ?", acct.URI).Order("id").Find(&refs).Error; err != nil {
			return err
		}
		if acct.Shared && len(refs) > 0 {
			return ErrAccountInUse
		}

		if err := tx.Model(&models.PaymentAccount{}).Where("id = ?", acct.ID).
			Update("inactive", true).Error; err != nil {
			return err
		}

		for _, ref := range refs {
			if disableRefs {
				var n int64
				if err := tx.Model(&models.AddonPaymentAccount{}).
					Where("addon_id = ?", ref.AddonID).Count(&n).Error; err != nil {
					return err
				}
				if n <= 1 {
					if err := tx.Model(&models.Webapp{}).Where("id = ?", ref.AddonID).
						Update("status", models.StatusNull).Error; err != nil {
						return err
					}
					nulled = append(nulled, ref.AddonID)
				}
			}
			if err := tx.Delete(&models.AddonPaymentAccount{}, ref.ID).Error; err != nil {
				return err
			}
			removed = append(removed, ref)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	acct.Inactive = true
	return nulled, removed, nil
}
