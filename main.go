package main

import (
	"context"
	"log"

	"github.com/DhavalSuthar-24/ladder/config"
	_ "github.com/DhavalSuthar-24/ladder/docs"
	"github.com/DhavalSuthar-24/ladder/internal/category"
	"github.com/DhavalSuthar-24/ladder/internal/challenge"
	"github.com/DhavalSuthar-24/ladder/internal/player"
	"github.com/DhavalSuthar-24/ladder/pkg/logger"
	"github.com/DhavalSuthar-24/ladder/routes"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Ladder REST API
// @version 1.0
// @description Players challenge each other inside their category and record match results.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.Output,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	if err := migrate(config.DB); err != nil {
		logger.Error(ctx, "AutoMigrate failed", zap.Error(err))
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	logger.Info(ctx, "AutoMigrate successful")

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.Redis == nil {
		logger.Warn(ctx, "REDIS_ADDR not set, challenge locks are held in-process")
	}

	r := routes.SetupRoutes(config.DB, config.Redis, cfg)

	logger.Info(ctx, "starting server",
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
		zap.String("db_driver", cfg.DB.Driver),
	)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// migrate creates tables in dependency order: players first, then the
// category and challenge tables that reference them.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&player.Player{}); err != nil {
		return err
	}
	if err := category.Migrate(db); err != nil {
		return err
	}
	return challenge.Migrate(db)
}
