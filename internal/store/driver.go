package store

import (
	"fmt"
	"strings"

	"github.com/mozilla/zamboni-sub003/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DriverFactory is a function that creates a gorm.Dialector
type DriverFactory func(dsn string) gorm.Dialector

// driverFactories maps driver names to their factory functions
var driverFactories = map[string]DriverFactory{
	config.DatabaseDriverSQLite:   sqlite.Open,
	config.DatabaseDriverPostgres: postgres.Open,
}

// GetDialector returns a GORM dialector for the given driver name and DSN
func GetDialector(driver, dsn string) (gorm.Dialector, error) {
	factory, exists := driverFactories[driver]
	if !exists {
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	return factory(dsn), nil
}

// isMemorySQLite reports whether every pooled connection would open a
// separate private database.
func isMemorySQLite(driver, dsn string) bool {
	return driver == config.DatabaseDriverSQLite &&
		(strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory"))
}
