// Package integration contains integration tests that run against a real
// PostgreSQL instance started with testcontainers. They are skipped when
// the -short flag is set.
package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	mpg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB bundles a disposable PostgreSQL container with an open GORM handle.
type TestDB struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// NewTestDB starts a PostgreSQL container, runs the schema migrations and
// returns a connected handle. Cleanup is registered on the test.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("invoicing_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := connectToDatabase(dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := runMigrations(db); err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to run migrations: %v", err)
	}

	tdb := &TestDB{Container: container, DB: db, DSN: dsn}
	t.Cleanup(func() { tdb.Close() })
	return tdb
}

// Close terminates the container and the database connection.
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		if sqlDB, err := tdb.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if tdb.Container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = tdb.Container.Terminate(ctx)
	}
}

// CleanTables truncates every application table so tests can share a container.
func (tdb *TestDB) CleanTables(t *testing.T) {
	t.Helper()

	var tables []string
	err := tdb.DB.Raw(
		`SELECT tablename FROM pg_tables WHERE schemaname = 'public' AND tablename != 'schema_migrations'`,
	).Scan(&tables).Error
	if err != nil {
		t.Fatalf("failed to list tables: %v", err)
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

// WithTransaction runs fn inside a transaction that is always rolled back,
// keeping the database pristine for the next test.
func (tdb *TestDB) WithTransaction(t *testing.T, fn func(tx *gorm.DB)) {
	t.Helper()

	tx := tdb.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin transaction: %v", tx.Error)
	}
	defer tx.Rollback()

	fn(tx)
}

func connectToDatabase(dsn string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("TEST_DB_DEBUG") != "" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	driver, err := mpg.WithInstance(sqlDB, &mpg.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	path, err := findMigrationsPath()
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// findMigrationsPath locates the migrations directory relative to this file,
// walking up in case the test binary runs from a nested working directory.
func findMigrationsPath() (string, error) {
	_, thisFile, _, ok := runtime.Caller(0)
	if ok {
		dir := filepath.Dir(thisFile)
		for i := 0; i < 5; i++ {
			candidate := filepath.Join(dir, "migrations")
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				return candidate, nil
			}
			dir = filepath.Dir(dir)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	for _, rel := range []string{"migrations", "../migrations", "../../migrations"} {
		candidate := filepath.Join(wd, rel)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("migrations directory not found")
}
