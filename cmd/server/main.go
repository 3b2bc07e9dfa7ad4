package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/cleanvillage/sanitation-system/internal/api"
	"github.com/cleanvillage/sanitation-system/internal/core/ports"
	"github.com/cleanvillage/sanitation-system/internal/core/service"
	"github.com/cleanvillage/sanitation-system/internal/infrastructure/db/mongo"
	"github.com/cleanvillage/sanitation-system/internal/infrastructure/db/redis"
	"github.com/cleanvillage/sanitation-system/internal/infrastructure/store/jsonstore"
	"github.com/cleanvillage/sanitation-system/internal/notification"
	"github.com/cleanvillage/sanitation-system/internal/pkg/config"
	"github.com/cleanvillage/sanitation-system/pkg/logger"
)

// @title           Clean Village Sanitation API
// @version         1.0
// @description     Citizen sanitation complaint portal for rural villages.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage backend ---
	var (
		users      ports.UserRepository
		complaints ports.ComplaintRepository
		sessions   ports.SessionRepository
		mongoDB    *gomongo.Database
		redisCli   *goredis.Client
	)

	switch cfg.Storage.Backend {
	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		mongoDB = db

		userRepo := mongo.NewUserRepository(db)
		complaintRepo := mongo.NewComplaintRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("user index creation failed")
		}
		if err := complaintRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("complaint index creation failed")
		}
		users, complaints = userRepo, complaintRepo
		log.Info().Str("db", cfg.Mongo.Database).Msg("using mongo storage")
	default:
		store, err := jsonstore.Open(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Storage.DataDir).Msg("opening data directory failed")
		}
		users = jsonstore.NewUserRepository(store)
		complaints = jsonstore.NewComplaintRepository(store)
		sessions = jsonstore.NewSessionRepository(store)
		log.Info().Str("dir", cfg.Storage.DataDir).Msg("using file storage")
	}

	// --- Session backend ---
	if cfg.Storage.SessionBackend == "redis" {
		cli, err := redis.Connect(ctx, redis.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = cli.Close() }()
		redisCli = cli
		sessions = redis.NewSessionRepository(cli, cfg.SessionTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis sessions")
	} else if sessions == nil {
		// Mongo storage with file sessions still needs a jsonstore root.
		store, err := jsonstore.Open(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Storage.DataDir).Msg("opening data directory failed")
		}
		sessions = jsonstore.NewSessionRepository(store)
	}

	// --- Services ---
	dispatcher := notification.NewDispatcher(cfg.Notify.Workers, cfg.Notify.Recipient, cfg.Escalation.Window, log)
	identityService := service.NewIdentityService(users, sessions, log)
	complaintService := service.NewComplaintService(complaints, dispatcher, cfg.Escalation.Window, log)
	dispatcher.BindEscalator(complaintService)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Identity:      identityService,
		Complaints:    complaintService,
		Notifications: dispatcher,
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.SessionTTL,
		Mongo:         mongoDB,
		Redis:         redisCli,
		Log:           log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
