package main

import (
	"context"
	"os"

	"go-leave/internal/app"
	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	deps, err := app.BuildApp(context.Background(), r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	if err := bootstrap.StartHTTPServer(
		r,
		bootstrap.DefaultServerConfig(cfg.App.Port),
		bootstrap.NewStdoutAuditLogger(),
		func(context.Context) { deps.Close() },
	); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
