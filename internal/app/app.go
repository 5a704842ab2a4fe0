package app

import (
	"context"
	"database/sql"

	"go-writeup/internal/category"
	"go-writeup/internal/config"
	"go-writeup/internal/db"
	"go-writeup/internal/employee"
	"go-writeup/internal/shared/connection"
	"go-writeup/internal/user"
	"go-writeup/internal/writeup"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of one process.
type Infra struct {
	Config config.Config
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

// Models lists the entities AutoMigrate needs on sqlite.
func Models() []any {
	return []any{
		&employee.Employee{},
		&category.Category{},
		&category.Rule{},
		&writeup.WriteUp{},
		&user.User{},
	}
}

func Connect(cfg config.Config) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Infra{Config: cfg, GormDB: gormDB, SQLDB: sqlDB, Redis: rdb}, nil
}

func (in *Infra) Close() {
	if in.Redis != nil {
		_ = in.Redis.Close()
	}
	if in.SQLDB != nil {
		_ = in.SQLDB.Close()
	}
}

// Migrate brings the schema up to date for the configured driver.
func (in *Infra) Migrate(ctx context.Context) error {
	return db.Up(ctx, in.GormDB, in.Config.Database.Driver, Models()...)
}

// BuildApp connects, migrates, seeds and registers every module on router.
// The returned cleanup must run after the server stops.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	infra, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	if cfg.RunMigrations {
		if err := infra.Migrate(context.Background()); err != nil {
			infra.Close()
			return nil, err
		}
	}

	closePublisher, err := registerModules(router, infra)
	if err != nil {
		infra.Close()
		return nil, err
	}

	return func() {
		closePublisher()
		infra.Close()
	}, nil
}
