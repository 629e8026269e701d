package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/store"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRequired      = errors.New("email is required")
)

// UserService is the user-record lookup consumed by the authentication
// middleware, the browser login and the region middleware.
type UserService struct {
	store   *store.Store
	metrics metrics.Recorder
	log     *zap.Logger
}

func NewUserService(s *store.Store, m metrics.Recorder, log *zap.Logger) *UserService {
	if m == nil {
		m = metrics.NewNoopMetrics()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{store: s, metrics: m, log: log}
}

// Authenticate checks a browser login. Unknown emails and wrong passwords
// return the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.UserProfile, error) {
	user, err := s.store.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil || !user.CheckPassword(password) {
		s.metrics.RecordLogin(false)
		if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
			s.log.Error("login lookup failed", zap.Error(err))
		}
		return nil, ErrInvalidCredentials
	}
	s.metrics.RecordLogin(true)
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, email, displayName, password string) (*models.UserProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	user := &models.UserProfile{Email: email, DisplayName: strings.TrimSpace(displayName)}
	if password != "" {
		if err := user.SetPassword(password); err != nil {
			return nil, err
		}
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserProfile, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

// UpdateRegion persists the region slug last resolved for user. It is a
// no-op when nothing changed.
func (s *UserService) UpdateRegion(ctx context.Context, user *models.UserProfile, region string) error {
	if user.Region == region {
		return nil
	}
	if err := s.store.UpdateUserRegion(ctx, user.ID, region); err != nil {
		return err
	}
	user.Region = region
	return nil
}

// notFound maps a store miss to the service-level sentinel and passes
// other errors through.
func notFound(err, sentinel error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
