package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/brightcart/storefront-api/internal/api"
	"github.com/brightcart/storefront-api/internal/core/service"
	mongostore "github.com/brightcart/storefront-api/internal/infrastructure/db/mongo"
	redisstore "github.com/brightcart/storefront-api/internal/infrastructure/db/redis"
	"github.com/brightcart/storefront-api/internal/infrastructure/queue"
	"github.com/brightcart/storefront-api/internal/pkg/config"
	"github.com/brightcart/storefront-api/pkg/logger"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	accountRepo := mongostore.NewAccountRepository(db)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account index creation failed")
	}
	if err := mongostore.NewOrderRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("order index creation failed")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	auditService := service.NewAuditService(mongostore.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		DB:     db,
		Redis:  rdb,
		Audit:  dispatcher,
		Config: cfg,
		Log:    log,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting storefront API")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
