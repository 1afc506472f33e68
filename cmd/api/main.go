package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/optimusdesign/booking-api/internal/config"
	"github.com/optimusdesign/booking-api/internal/handler"
	"github.com/optimusdesign/booking-api/internal/infra/postgresql"
	"github.com/optimusdesign/booking-api/internal/infra/postgresql/migrations"
	infraredis "github.com/optimusdesign/booking-api/internal/infra/redis"
	"github.com/optimusdesign/booking-api/internal/observability"
	"github.com/optimusdesign/booking-api/internal/provider"
	"github.com/optimusdesign/booking-api/internal/ratelimit"
	"github.com/optimusdesign/booking-api/internal/repository"
	"github.com/optimusdesign/booking-api/internal/service"
	"github.com/optimusdesign/booking-api/internal/transport"
)

func main() {
	// Local development convenience; in deployment the environment is set
	// by the orchestrator and no .env file exists.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := postgresql.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("postgres initialization failed", zap.Error(err))
	}

	if err := migrations.Migrate(db); err != nil {
		logger.Fatal("database migrations failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("postgres underlying db init failed", zap.Error(err))
	}
	defer sqlDB.Close()

	rdb, err := infraredis.NewRedis(cfg.RedisURL)
	if err != nil {
		logger.Fatal("redis initialization failed", zap.Error(err))
	}
	defer rdb.Close()

	var mailer provider.EmailSender
	if cfg.NotificationsEnabled() {
		resend, err := provider.NewResendProvider(cfg.ResendAPIKey)
		if err != nil {
			logger.Fatal("resend provider initialization failed", zap.Error(err))
		}
		mailer = resend
	} else {
		logger.Warn("RESEND_API_KEY is not set, email notifications are disabled")
	}

	appointmentRepo := repository.NewGormAppointmentRepo(db)
	failureRepo := repository.NewGormNotifyFailureRepo(db)

	svc, err := service.NewAppointmentService(
		appointmentRepo,
		failureRepo,
		mailer,
		service.NotifyConfig{
			Sender:      cfg.Sender(),
			Recipient:   cfg.RecipientEmail,
			FallbackLog: cfg.FallbackLog,
		},
		logger,
	)
	if err != nil {
		logger.Fatal("appointment service initialization failed", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	svc.SetMetrics(metrics)

	var limiter ratelimit.RateLimiter
	if cfg.SubmitRatePerMin > 0 {
		redisLimiter, err := infraredis.NewRedisRateLimiter(rdb, cfg.SubmitRatePerMin)
		if err != nil {
			logger.Fatal("rate limiter initialization failed", zap.Error(err))
		}
		limiter = redisLimiter
	}

	app := fiber.New(fiber.Config{
		AppName:      "booking-api",
		ErrorHandler: transport.ErrorHandler(logger),
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type,X-Request-ID",
	}))
	app.Use(metrics.HTTPMiddleware())

	handler.RegisterHealthRoutes(app, sqlDB, rdb)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	if err := handler.RegisterAppointmentRoutes(app, svc, handler.SubmitRateLimit(limiter, logger)); err != nil {
		logger.Fatal("route registration failed", zap.Error(err))
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		logger.Info("shutdown signal received")
		if err := app.Shutdown(); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("booking-api started",
		zap.Int("port", cfg.APIPort),
		zap.Bool("notificationsEnabled", cfg.NotificationsEnabled()),
		zap.Bool("fallbackLog", cfg.FallbackLog),
		zap.Int("submitRatePerMin", cfg.SubmitRatePerMin),
	)

	if err := app.Listen(fmt.Sprintf(":%d", cfg.APIPort)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}

	logger.Info("booking-api stopped")
}
