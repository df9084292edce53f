package app

import (
	"context"
	"database/sql"

	"go-leave/internal/config"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of a process.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

func connectDB(cfg *config.Config) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	return &Infra{GormDB: gormDB, SQLDB: sqlDB}, nil
}

// BuildApp connects the infrastructure and registers every HTTP module on router.
// The returned Infra must be closed by the caller.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*Infra, error) {
	infra, err := connectDB(cfg)
	if err != nil {
		return nil, err
	}

	infra.Redis, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		infra.Close()
		return nil, err
	}

	router.Use(middleware.RequestID())

	if err := registerModules(ctx, router, cfg, infra, logger); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}
