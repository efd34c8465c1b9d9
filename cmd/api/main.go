package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shutterstudio/studio-api/internal/api"
	"github.com/shutterstudio/studio-api/internal/infrastructure/db/mongo"
	"github.com/shutterstudio/studio-api/internal/infrastructure/db/redis"
	"github.com/shutterstudio/studio-api/internal/infrastructure/queue"
	"github.com/shutterstudio/studio-api/internal/pkg/config"
	"github.com/shutterstudio/studio-api/pkg/logger"

	_ "github.com/shutterstudio/studio-api/docs"
)

const shutdownTimeout = 10 * time.Second

// @title        Studio API
// @version      1.0
// @description  Photography studio management API.
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	if err := mongo.EnsureIndexes(ctx,
		mongo.NewBookingRepository(db),
		mongo.NewUserRepository(db),
		mongo.NewNotificationRepository(db),
		mongo.NewAlbumRepository(db),
		mongo.NewOrderRepository(db),
		mongo.NewReviewRepository(db),
		mongo.NewActivityLogRepository(db),
	); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	delivery := queue.NewDispatcher(cfg.NotifyWorkers, queue.NewLogDeliverer(log), log)
	delivery.Start(ctx)

	e := api.NewRouter(db, rdb, delivery, cfg.JWTSecret, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("starting http server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
