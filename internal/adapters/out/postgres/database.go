package postgres

import (
	"fmt"

	"icetube/internal/adapters/out/postgres/activityrepo"
	"icetube/internal/adapters/out/postgres/inventoryrepo"
	"icetube/internal/adapters/out/postgres/orderrepo"
	"icetube/internal/adapters/out/postgres/userrepo"

	// lib/pq is registered under the "postgres" driver name used below.
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MakeDSN builds a key/value connection string understood by lib/pq.
func MakeDSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// Open connects GORM to PostgreSQL through the lib/pq database/sql driver.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(
		gormpostgres.New(gormpostgres.Config{
			DriverName: "postgres",
			DSN:        dsn,
		}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Warn)},
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&inventoryrepo.InventoryItemDTO{},
		&orderrepo.OrderDTO{},
		&userrepo.UserDTO{},
		&activityrepo.ActivityLogDTO{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
