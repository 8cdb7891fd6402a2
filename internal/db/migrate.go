package db

import (
	"database/sql"
	"fmt"

	"bookinggo/internal/db/migrations"

	"github.com/pressly/goose/v3"
)

// RunMigrations runs goose.Up using the embedded migrations.
func RunMigrations(sqlDB *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
