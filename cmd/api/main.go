package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/config"
	"github.com/noah-isme/school-admin-api/internal/database"
	"github.com/noah-isme/school-admin-api/internal/logger"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/router"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.Setup("info", "json")
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	hasher := service.NewBcryptHasher(cfg.BcryptCost)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	result, err := service.NewSeedService(db, hasher, cfg.SeedDemo, log).Seed(seedCtx)
	cancelSeed()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}
	if !result.Skipped {
		log.Info().
			Int("users", result.Users).
			Int("classes", result.Classes).
			Int("subjects", result.Subjects).
			Int("students", result.Students).
			Msg("database seeded")
	}

	sessionConfig := middleware.SessionConfig{
		CookieName: cfg.SessionCookie,
		TTL:        cfg.SessionTTL,
		Secure:     cfg.SessionSecure,
	}
	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		storage, err := database.OpenRedisStorage(context.Background(), cfg.RedisURL, "")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer storage.Close()
		sessionConfig.Storage = storage
		limiterStorage = storage.Namespace("school:ratelimit:")
		log.Info().Msg("sessions stored in redis")
	}
	sessions := middleware.NewSessions(sessionConfig, log)

	deps, err := router.NewDependencies(router.Options{
		Config:         cfg,
		DB:             db,
		Sessions:       sessions,
		LimiterStorage: limiterStorage,
		Hasher:         hasher,
		Logger:         log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build dependencies")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		ErrorHandler: errorHandler(log),
	})

	middleware.Register(app, middleware.Config{
		Logger:      &log,
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   cfg.AppEnv == "development",
	})
	router.Register(app, cfg, deps)

	go func() {
		log.Info().Str("addr", cfg.HTTPAddress()).Str("driver", cfg.DatabaseDriver).Msg("school admin api listening")
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	waitForShutdown(app, db, log)
}

func openDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseDriver == config.DriverPostgres {
		return database.ConnectPostgres(cfg.DatabaseURL)
	}
	return database.ConnectSQLite(cfg.DatabasePath)
}

// errorHandler renders errors that escape handlers, such as unknown routes, as {"error": ...}.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
			message = fiberErr.Message
		} else {
			log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("unhandled error")
		}
		return utils.SendError(c, status, message)
	}
}

func waitForShutdown(app *fiber.App, db *gorm.DB, log zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}

	log.Info().Msg("server stopped")
}
