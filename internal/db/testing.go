package db

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
)

var ErrTestDatabaseNotConfigured = errors.New("TEST_POSTGRESQL_URL and TEST_MIGRATIONS_PATH must be set")

func CreateTestPool() (*pgxpool.Pool, error) {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if connString == "" || migrationsPath == "" {
		return nil, ErrTestDatabaseNotConfigured
	}
	if err := ApplyMigrations(migrationsPath, connString); err != nil {
		return nil, err
	}
	return pgxpool.Connect(context.Background(), connString)
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE account")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
