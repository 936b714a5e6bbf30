package main

import (
	"log"
	"time"

	"github.com/TharunSree/taxi-fleet-backend/internal/audit"
	"github.com/TharunSree/taxi-fleet-backend/internal/config"
	"github.com/TharunSree/taxi-fleet-backend/internal/database"
	"github.com/TharunSree/taxi-fleet-backend/internal/logger"
	"github.com/TharunSree/taxi-fleet-backend/internal/routes"
	"github.com/TharunSree/taxi-fleet-backend/internal/services"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal("Failed to get database instance", zap.Error(err))
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Logout revocation degrades gracefully when Redis is unavailable.
	tokens, err := services.NewTokenStore(cfg.Redis.URL)
	if err != nil {
		logger.Logger.Warn("Redis unavailable, logout will not revoke tokens", zap.Error(err))
		tokens = nil
	}

	recorder := audit.NewRecorder(db, logger.Logger)
	mailer := services.NewSMTPMailer(db, cfg.SMTP, logger.Logger)

	r := routes.Setup(routes.Deps{
		DB:       db,
		Config:   cfg,
		Logger:   logger.Logger,
		Recorder: recorder,
		Mailer:   mailer,
		Tokens:   tokens,
	})

	logger.Logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Logger.Fatal("Failed to start server", zap.Error(err))
	}
}
