// Package storetest opens migrated stores for tests: an in-process SQLite database
// for fast repository and handler tests, and a disposable PostgreSQL container for
// integration suites.
package storetest

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteDSN is a private in-memory database with foreign keys enforced.
const SQLiteDSN = "file::memory:?_pragma=foreign_keys(1)"

// OpenSQLite returns a migrated in-memory database closed at test cleanup.
//
// The pool is limited to one connection: every connection to ":memory:" is its own
// database. Code under test must therefore not use the root connection while a
// transaction is open.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(SQLiteDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, postgres.Migrate(context.Background(), db))
	return db
}

// PostgresContainer is a running database plus a migrated connection to it.
type PostgresContainer struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres starts a PostgreSQL container and migrates the schema. The test is
// skipped when no container provider is available.
func StartPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(ctx, db))

	return &PostgresContainer{Container: container, DB: db}
}

// Truncate empties every kitchen table.
func (p *PostgresContainer) Truncate(t *testing.T) {
	t.Helper()
	require.NoError(t, p.DB.Exec(
		"TRUNCATE TABLE line_items, orders, tables, menu_items, restaurants, sequences").Error)
}

// Terminate closes the connection and removes the container.
func (p *PostgresContainer) Terminate(t *testing.T) {
	t.Helper()
	if sqlDB, err := p.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	require.NoError(t, p.Container.Terminate(context.Background()))
}
