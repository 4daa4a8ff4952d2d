//go:build integration

package containers

import (
	"context"
	"testing"
	"time"

	"citizen_registry/internal/config"
	"citizen_registry/internal/db"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

const (
	pgDatabase = "nimc_test"
	pgUser     = "nimc"
	pgPassword = "nimc"
)

// PostgresContainer wraps a testcontainers Postgres instance and a migrated pool.
type PostgresContainer struct {
	Container testcontainers.Container
	Config    *config.Config
	DB        *gorm.DB
}

// NewPostgresContainer starts Postgres, opens the pool through db.Open and
// migrates the schema. Everything is released when the test ends.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase(pgDatabase),
		tcpostgres.WithUsername(pgUser),
		tcpostgres.WithPassword(pgPassword),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get postgres host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get postgres port: %v", err)
	}

	cfg := &config.Config{
		DBDriver:       config.DriverPostgres,
		DBHost:         host,
		DBPort:         port.Port(),
		DBUser:         pgUser,
		DBPassword:     pgPassword,
		DBName:         pgDatabase,
		DBSSLMode:      "disable",
		DBMaxOpenConns: 10,
		DBMaxIdleConns: 2,
		DBOpTimeout:    5 * time.Second,
	}
	gdb, err := db.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to open postgres: %v", err)
	}
	t.Cleanup(func() { db.Close(gdb) })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return &PostgresContainer{Container: container, Config: cfg, DB: gdb}
}

// Truncate empties the given tables and resets their identities.
func (p *PostgresContainer) Truncate(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if err := p.DB.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE").Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
