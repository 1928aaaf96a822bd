// @title           Feedback Board API
// @version         1.0
// @description     사용자 Feedback 수집, upvote, comment 및 관리자 상태 관리 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3001
// @BasePath  /api

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
// @description 관리자 전용 엔드포인트에 필요한 공유 토큰

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "feedback-board-api/docs" // Swagger docs import

	"feedback-board-api/internal/client"
	"feedback-board-api/internal/config"
	"feedback-board-api/internal/database"
	"feedback-board-api/internal/event"
	"feedback-board-api/internal/job"
	"feedback-board-api/internal/metrics"
	"feedback-board-api/internal/repository"
	"feedback-board-api/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.UsesDefaultAdminToken() {
		logger.Warn("⚠️  ADMIN_TOKEN is not set, using the insecure development token")
	}

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Feedback Board Service",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// Initialize database
	db, err := database.New(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	logger.Info("Metrics initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Live updates
	hub := event.NewHub(logger)
	hub.OnClientsChanged = m.SetStreamClients
	go hub.Run(ctx)

	var publisher event.Publisher = hub
	redisClient, err := connectRedis(ctx, cfg, logger)
	if err != nil {
		logger.Warn("Redis unavailable, live updates stay in-process", zap.Error(err))
	}
	if redisClient != nil {
		broker := event.NewRedisBroker(redisClient, cfg.Redis.Channel, logger, m)
		publisher = broker
		go func() {
			if err := broker.Relay(ctx, hub); err != nil {
				logger.Error("Redis relay stopped", zap.Error(err))
			}
		}()
		logger.Info("Redis event relay started", zap.String("channel", cfg.Redis.Channel))
	}

	// Scheduled jobs
	scheduler := cron.New()
	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	if _, err := collector.Register(scheduler, cfg.Metrics.Schedule); err != nil {
		logger.Warn("Failed to schedule business metrics collector", zap.Error(err))
	}
	if cfg.BackupEnabled() {
		s3Client, err := client.NewS3Client(&cfg.S3, m)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, backups disabled", zap.Error(err))
		} else {
			backupJob := job.NewBackupJob(
				repository.NewFeedbackRepository(db),
				repository.NewCommentRepository(db),
				s3Client,
				logger,
			)
			if _, err := backupJob.Register(scheduler, cfg.Backup.Schedule); err != nil {
				logger.Warn("Failed to schedule backup job", zap.Error(err))
			} else {
				logger.Info("Backup job scheduled",
					zap.String("bucket", cfg.S3.Bucket),
					zap.String("schedule", cfg.Backup.Schedule),
				)
			}
		}
	} else {
		logger.Info("S3 bucket or backup schedule not configured, backups disabled")
	}
	scheduler.Start()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:         db,
		Logger:     logger,
		Metrics:    m,
		AdminToken: cfg.Admin.Token,
		BasePath:   cfg.Server.BasePath,
		Hub:        hub,
		Publisher:  publisher,
		Redis:      redisClient,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Feedback Board Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// 진행 중인 cron 작업 완료 대기
	<-scheduler.Stop().Done()
	cancel()
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Info("Server exited gracefully")
}

// connectRedis returns nil without error when no Redis URL is configured
func connectRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		return nil, nil
	}
	return database.NewRedis(ctx, cfg.Redis.URL, logger)
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
