package main

import (
	"accounts/internal/db"
	"flag"
	"os"

	"go.uber.org/zap"
)

func main() {
	path := flag.String("path", os.Getenv("MIGRATIONS_PATH"), "directory with SQL migrations")
	url := flag.String("url", os.Getenv("POSTGRESQL_URL"), "PostgreSQL connection URL")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *path == "" || *url == "" {
		logger.Fatal("Migrations path and PostgreSQL URL must be set.")
	}

	if err := db.ApplyMigrations(*path, *url); err != nil {
		logger.Fatal("Could not apply migrations.", zap.Error(err))
	}
	logger.Info("Migrations have been applied.", zap.String("path", *path))
}
