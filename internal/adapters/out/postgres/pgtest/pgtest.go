// Package pgtest starts a throwaway PostgreSQL container with the service
// schema for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	pg "icetube/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every table created by postgres.Migrate.
var Tables = []string{"inventory_items", "orders", "users", "activity_logs"}

type Database struct {
	container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects through postgres.Open and migrates.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := pg.Open(dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = pg.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{container: container, DB: db}, nil
}

// Truncate empties every service table.
func (d *Database) Truncate() error {
	return d.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s", strings.Join(Tables, ", "))).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.container == nil {
		return nil
	}
	return d.container.Terminate(ctx)
}
