package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mozilla/zamboni-sub003/internal/bootstrap"
	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/logging"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/services"
	"github.com/mozilla/zamboni-sub003/internal/store"
	"github.com/mozilla/zamboni-sub003/internal/version"

	"go.uber.org/zap"
)

func main() {
	// Define flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Usage = printUsage
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		version.PrintVersion()
		os.Exit(0)
	}

	// Check if command is provided
	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	// Handle subcommands
	var err error
	switch args[0] {
	case "server":
		err = runServer()
	case "create-access":
		err = runCreateAccess(args[1:])
	case "clear-access":
		err = runClearAccess(args[1:])
	case "version":
		version.PrintVersion()
	default:
		fmt.Printf("Unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("Usage: %s [OPTIONS] COMMAND\n\n", os.Args[0])
	fmt.Println("Marketplace API server (OAuth 1.0a, shared-secret auth, payment accounts)")
	fmt.Println("\nCommands:")
	fmt.Println("  server          Start the API server")
	fmt.Println("  create-access   Create OAuth consumer credentials for a user")
	fmt.Println("  clear-access    Delete every OAuth consumer (and its tokens) of a user")
	fmt.Println("  version         Show version information")
	fmt.Println("\nOptions:")
	fmt.Println("  -v, --version    Show version information")
	fmt.Println("  -h, --help       Show this help message")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return log.With(zap.String("app", version.App), zap.String("version", version.GetVersion())), nil
}

func runServer() error {
	cfg := config.Load()
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := bootstrap.Run(context.Background(), cfg, log); err != nil {
		log.Error("server failed", zap.Error(err))
		return err
	}
	return nil
}

// withUserStore opens the store, looks up the user by email and hands both
// to fn.
func withUserStore(
	email string,
	fn func(ctx context.Context, db *store.Store, user *models.UserProfile, log *zap.Logger) error,
) error {
	cfg := config.Load()
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	if cfg.DBInitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DBInitTimeout)
		defer cancel()
	}

	db, err := store.New(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN, cfg, logging.Component(log, "store"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	users := services.NewUserService(db, nil, logging.Component(log, "users"))
	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", email, err)
	}
	return fn(ctx, db, user, log)
}

// runCreateAccess mints consumer credentials for an existing user and
// prints them once.
func runCreateAccess(args []string) error {
	fs := flag.NewFlagSet("create-access", flag.ExitOnError)
	email := fs.String("email", "", "Email of the user who owns the credentials")
	appName := fs.String("app-name", "", "Application name shown on the authorize page")
	redirectURI := fs.String("redirect-uri", "", "Absolute http(s) URL the user returns to after authorizing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		fs.Usage()
		return errors.New("-email is required")
	}

	return withUserStore(*email, func(ctx context.Context, db *store.Store, user *models.UserProfile, log *zap.Logger) error {
		access, err := services.NewAccessService(db, logging.Component(log, "access")).
			CreateForUser(ctx, user, *appName, *redirectURI)
		if err != nil {
			return err
		}

		fmt.Printf("Consumer key:    %s\n", access.Key)
		fmt.Printf("Consumer secret: %s\n", access.PlainSecret)
		fmt.Println("The secret is not shown again.")
		return nil
	})
}

// runClearAccess deletes every consumer owned by a user, along with the
// tokens issued to them.
func runClearAccess(args []string) error {
	fs := flag.NewFlagSet("clear-access", flag.ExitOnError)
	email := fs.String("email", "", "Email of the user whose credentials are removed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		fs.Usage()
		return errors.New("-email is required")
	}

	return withUserStore(*email, func(ctx context.Context, db *store.Store, user *models.UserProfile, log *zap.Logger) error {
		n, err := services.NewAccessService(db, logging.Component(log, "access")).
			DeleteAllForUser(ctx, user.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d consumer(s) for %s\n", n, user.Email)
		return nil
	})
}
