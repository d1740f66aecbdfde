package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/wrendann/teamfinder/config"
	_ "github.com/wrendann/teamfinder/docs"
	"github.com/wrendann/teamfinder/internal/auth"
	"github.com/wrendann/teamfinder/internal/event"
	"github.com/wrendann/teamfinder/internal/team"
	"github.com/wrendann/teamfinder/internal/user"
	"github.com/wrendann/teamfinder/pkg/cache"
	"github.com/wrendann/teamfinder/routes"
)

// @title TeamFinder REST API
// @version 1.0
// @description Team formation backend: browse events, form teams, and manage join requests and invitations.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := config.GetConfig()

	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	err = config.DB.AutoMigrate(
		&user.User{}, &auth.RefreshToken{},
		&event.Event{},
		&team.Team{}, &team.TeamMember{}, &team.JoinRequest{}, &team.TeamInvitation{},
	)
	if err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}
	logger.Info("AutoMigrate successful")

	// The cache is best-effort: a missing redis degrades to direct reads.
	cacheClient, err := cache.NewClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
	} else {
		defer cacheClient.Close()
	}

	r := routes.SetupRoutes(config.DB, cfg, cacheClient, logger)

	logger.Info("starting server",
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env))
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("Failed to run server", zap.Error(err))
	}
}
