package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"docindex/docs"
	"docindex/internal/config"
	"docindex/internal/database"
	"docindex/internal/database/migration"
	handlers "docindex/internal/http/handler"
	"docindex/internal/http/middleware"
	logpkg "docindex/internal/logger"
	"docindex/internal/metrics"
	"docindex/internal/otel"
	"docindex/internal/repository"
	"docindex/internal/repository/memory"
	"docindex/internal/repository/postgres"
	docredis "docindex/internal/repository/redis"
	"docindex/internal/service"
	"docindex/internal/storage"
)

// @title Document Index API
// @version 1.0
// @description Indexes marketing documents, derives categories and tags, and ranks them by keyword.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := logpkg.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting docindex API server",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.Port),
		zap.String("store_driver", cfg.Store.Driver),
	)

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	docRepo, closeStore := openDocumentStore(ctx, cfg, logger)
	defer closeStore()

	// Object storage is optional; without it uploads and file URLs report storage unavailable.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			logger.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		logger.Info("Object storage ready", zap.String("bucket", cfg.MinIO.Bucket))
	} else {
		logger.Warn("MINIO_ENDPOINT not set; file uploads are disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	domainMetrics, err := metrics.New(reg)
	if err != nil {
		logger.Fatal("Failed to register metrics", zap.Error(err))
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg, "/healthz")
	if err != nil {
		logger.Fatal("Failed to register HTTP metrics", zap.Error(err))
	}

	docSvc := service.NewDocumentService(objStore, docRepo, service.WithMetrics(domainMetrics))
	fileSvc := service.NewFileService(objStore, time.Duration(cfg.Files.PresignExpirySec)*time.Second)

	app := fiber.New(fiberConfig(cfg.Files))

	// RequestID first so every later middleware and log line can see it
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(logger))
	app.Use(httpMetrics.Handler())
	app.Use(middleware.Deadline(time.Duration(cfg.RequestTimeoutSec) * time.Second))

	handlers.RegisterRoutes(app, docRepo, docSvc, fileSvc, handlers.Options{
		MaxUploadBytes: int64(cfg.Files.MaxUploadBytes),
		Gatherer:       reg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}

// openDocumentStore builds the repository selected by STORE_DRIVER and returns its cleanup.
// uploadOverhead leaves room for multipart framing and form fields on top of
// the file itself.
const uploadOverhead = 1 << 20

// fiberConfig builds the app config. The body limit follows the upload cap;
// with no cap configured Fiber's default body limit applies.
func fiberConfig(files config.FilesConfig) fiber.Config {
	fc := fiber.Config{ErrorHandler: handlers.ErrorHandler()}
	if files.MaxUploadBytes > 0 {
		fc.BodyLimit = files.MaxUploadBytes + uploadOverhead
	}
	return fc
}

func openDocumentStore(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (repository.DocumentRepository, func()) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		if cfg.Database.AutoMigrate {
			if err := migration.Up(ctx, db, logger, cfg.Database.Host); err != nil {
				_ = db.Close()
				logger.Fatal("Failed to migrate database", zap.Error(err))
			}
		}
		logger.Info("Connected to PostgreSQL", zap.String("db_host", cfg.Database.Host))
		return postgres.NewDocumentPostgres(db), closer(db, logger)

	case config.DriverRedis:
		client, err := database.NewRedis(cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		return docredis.NewDocumentRedis(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }

	case config.DriverMemory:
		logger.Warn("Using in-memory document store; data is lost on restart")
		return memory.NewDocumentMemory(), func() {}

	default:
		logger.Fatal("Unknown store driver", zap.String("driver", cfg.Store.Driver))
		return nil, nil
	}
}

func closer(db *sql.DB, logger *zap.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}
}
