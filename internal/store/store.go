package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the gorm-backed credential and payments store. Writes always go
// to the primary handle.
type Store struct {
	db      *gorm.DB
	read    *gorm.DB
	replica *gorm.DB
	box     *util.SecretBox
	log     *zap.Logger

	// missSealed is opened on consumer lookups that miss, so a miss costs
	// the same decryption as a hit.
	missSealed string
}

func New(ctx context.Context, driver, dsn string, cfg *config.Config, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&models.UserProfile{},
		&models.Group{},
		&models.Access{},
		&models.Token{},
		&models.Nonce{},
		&models.SolitudeSeller{},
		&models.PaymentAccount{},
		&models.AddonPaymentAccount{},
		&models.Webapp{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	box, err := util.NewSecretBox(cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	missSealed, err := sealMissSecret(box)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, read: db, box: box, log: log, missSealed: missSealed}

	if cfg.DatabaseReplicaDSN != "" {
		replica, err := open(ctx, driver, cfg.DatabaseReplicaDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open replica: %w", err)
		}
		s.replica = replica
	}

	if err := s.seedData(ctx, cfg); err != nil {
		log.Warn("failed to seed data", zap.Error(err))
	}

	return s, nil
}

func open(ctx context.Context, driver, dsn string) (*gorm.DB, error) {
	dialector, err := GetDialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isMemorySQLite(driver, dsn) {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// seedData makes sure the Admins group exists and, when a password is
// configured, that the default admin account is in it.
func (s *Store) seedData(ctx context.Context, cfg *config.Config) error {
	if _, err := s.EnsureGroup(ctx, models.AdminsGroup); err != nil {
		return err
	}
	if !cfg.BootstrapAdminsEnabled || cfg.DefaultAdminPassword == "" {
		return nil
	}

	_, err := s.GetUserByEmail(ctx, cfg.DefaultAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return err
	}

	admin := &models.UserProfile{Email: cfg.DefaultAdminEmail, DisplayName: "admin"}
	if err := admin.SetPassword(cfg.DefaultAdminPassword); err != nil {
		return err
	}
	if err := s.CreateUser(ctx, admin); err != nil {
		return err
	}
	s.log.Info("created default admin", zap.String("email", admin.Email))
	return s.AddUserToGroup(ctx, admin.ID, models.AdminsGroup)
}

// ForRequest returns a view of the store for one API request. Unpinned
// requests read from the replica when one is configured; pinned requests
// and the default store always read from the primary.
func (s *Store) ForRequest(pinned bool) *Store {
	view := *s
	view.read = s.db
	if !pinned && s.replica != nil {
		view.read = s.replica
	}
	return &view
}

// Health checks the database connection
func (s *Store) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// DB returns the primary GORM handle
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the primary and replica connection pools.
func (s *Store) Close() error {
	var errs []error
	for _, db := range []*gorm.DB{s.db, s.replica} {
		if db == nil {
			continue
		}
		sqlDB, err := db.DB()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, sqlDB.Close())
	}
	return errors.Join(errs...)
}
