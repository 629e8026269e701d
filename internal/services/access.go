package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/oauth1"
	"github.com/mozilla/zamboni-sub003/internal/store"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"go.uber.org/zap"
)

var (
	ErrAccessNotFound     = errors.New("api access not found")
	ErrInvalidRedirectURI = errors.New("redirect_uri must be an absolute http(s) URL")
	ErrAppNameRequired    = errors.New("app_name is required")
	ErrUnusableClientKey  = errors.New("email does not produce a valid consumer key")
)

// maxKeyAttempts bounds the suffix search when earlier consumers were deleted
// or a concurrent create took the candidate key.
const maxKeyAttempts = 32

// AccessService manages a user's API consumer credentials.
type AccessService struct {
	store *store.Store
	log   *zap.Logger
}

func NewAccessService(s *store.Store, log *zap.Logger) *AccessService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccessService{store: s, log: log}
}

// CreateForUser mints a consumer for user. The key encodes the user and a
// per-user suffix that starts at their consumer count and moves past keys
// still in use; the plaintext secret is only available on the returned value.
func (s *AccessService) CreateForUser(
	ctx context.Context,
	user *models.UserProfile,
	appName, redirectURI string,
) (*models.Access, error) {
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return nil, ErrAppNameRequired
	}
	redirectURI = strings.TrimSpace(redirectURI)
	if !util.IsAbsoluteHTTPURL(redirectURI) {
		return nil, ErrInvalidRedirectURI
	}

	count, err := s.store.CountAccessByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	secret, err := util.RandomString(oauth1.SecretLength)
	if err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}

	for suffix := count; suffix < count+maxKeyAttempts; suffix++ {
		key := models.AccessKeyFor(user, suffix)
		if !oauth1.CheckClientKey(key) {
			return nil, ErrUnusableClientKey
		}
		taken, err := s.store.AccessKeyExists(ctx, key)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		access := &models.Access{
			Key:         key,
			PlainSecret: secret,
			UserID:      user.ID,
			RedirectURI: redirectURI,
			AppName:     appName,
		}
		err = s.store.CreateAccess(ctx, access)
		if errors.Is(err, store.ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.log.Info("api access created", zap.Uint("user_id", user.ID), zap.String("key", access.Key))
		return access, nil
	}
	return nil, fmt.Errorf("no free consumer key for user %d after %d attempts", user.ID, maxKeyAttempts)
}

func (s *AccessService) List(ctx context.Context, user *models.UserProfile) ([]models.Access, error) {
	return s.store.ListAccessByUser(ctx, user.ID)
}

// Delete removes one of user's consumers and the tokens issued to it.
func (s *AccessService) Delete(ctx context.Context, user *models.UserProfile, id uint) error {
	if err := s.store.DeleteAccess(ctx, user.ID, id); err != nil {
		return notFound(err, ErrAccessNotFound)
	}
	s.log.Info("api access deleted", zap.Uint("user_id", user.ID), zap.Uint("access_id", id))
	return nil
}

// DeleteAllForUser is the admin path that clears every consumer of userID.
func (s *AccessService) DeleteAllForUser(ctx context.Context, userID uint) (int64, error) {
	n, err := s.store.DeleteAllAccessForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.log.Info("api access cleared", zap.Uint("user_id", userID), zap.Int64("deleted", n))
	return n, nil
}
