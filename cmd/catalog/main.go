package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/ispanshop/catalog-service/internal/catalog"
	cataloghttp "github.com/ispanshop/catalog-service/internal/catalog/delivery/http"
	"github.com/ispanshop/catalog-service/internal/catalog/repository"
	orderhttp "github.com/ispanshop/catalog-service/internal/order/delivery/http"
	orderrepository "github.com/ispanshop/catalog-service/internal/order/repository"
	"github.com/ispanshop/catalog-service/kafka"
	"github.com/ispanshop/catalog-service/pkg/auth"
	"github.com/ispanshop/catalog-service/pkg/config"
	"github.com/ispanshop/catalog-service/pkg/database"
	"github.com/ispanshop/catalog-service/pkg/logger"
	"github.com/ispanshop/catalog-service/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting catalog service")

	auth.SetSecret(cfg.JWT.Secret)

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.Jaeger.Endpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	catalogRepo := repository.NewGormCatalogRepository(db)
	if err := catalogRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run catalog migrations")
	}
	orderRepo := orderrepository.NewGormOrderRepository(db)
	if err := orderRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run order migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Optional taxonomy cache
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Redis unreachable, taxonomy cache disabled")
			redisClient = nil
		} else {
			logger.Logger.Info().Str("addr", cfg.Redis.Addr).Msg("Taxonomy cache enabled")
		}
	}

	// Optional moderation event publisher; a nil publisher drops events
	var publisher *kafka.Publisher
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unreachable, moderation events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize catalog handler with Wire DI
	catalogHandler, err := catalog.InitializeHandler(db, redisClient, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	orderHandler := orderhttp.NewOrderHandler(orderRepo)

	startHTTPServer(catalogHandler, orderHandler, sqlDB, cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(catalogHandler *cataloghttp.CatalogHandler, orderHandler *orderhttp.OrderHandler, db *sql.DB, port string) {
	router := mux.NewRouter()

	cataloghttp.RegisterMiddlewares(router, cataloghttp.DefaultMiddlewareConfig())

	catalogHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	cataloghttp.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}
