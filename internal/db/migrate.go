// Package db owns the schema. Postgres is migrated with goose from the
// embedded SQL files; sqlite (local runs and tests) uses gorm's AutoMigrate
// over the entity models since the SQL uses postgres types.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// Up applies every pending migration.
func Up(ctx context.Context, gdb *gorm.DB, driver string, models ...any) error {
	logger := zap.L().Named("db.migrate")

	if driver == "sqlite" {
		if err := gdb.WithContext(ctx).AutoMigrate(models...); err != nil {
			return fmt.Errorf("auto migrate sqlite: %w", err)
		}
		logger.Info("sqlite schema migrated", zap.Int("models", len(models)))
		return nil
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	if err := runGoose(ctx, sqlDB, "up"); err != nil {
		return err
	}
	logger.Info("postgres migrations applied")
	return nil
}

// Status logs the applied state of each migration. sqlite has nothing to
// report.
func Status(ctx context.Context, gdb *gorm.DB, driver string) error {
	if driver == "sqlite" {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return runGoose(ctx, sqlDB, "status")
}

// Down rolls back the latest migration.
func Down(ctx context.Context, gdb *gorm.DB, driver string) error {
	if driver == "sqlite" {
		return fmt.Errorf("down migrations are not supported for sqlite")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return runGoose(ctx, sqlDB, "down")
}

func runGoose(ctx context.Context, sqlDB *sql.DB, command string) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, sqlDB, migrationsDir)
	case "down":
		err = goose.DownContext(ctx, sqlDB, migrationsDir)
	case "status":
		err = goose.StatusContext(ctx, sqlDB, migrationsDir)
	default:
		err = fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations (%s): %w", command, err)
	}
	return nil
}
