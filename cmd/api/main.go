package main

// @title Airport Catalog Service API
// @version 1.0.0
// @description Микросервис каталога аэродромов. Предоставляет API для поиска ближайших аэродромов по координатам, текстового поиска по названию и муниципалитету, а также статистики по каталогу.
// @description
// @description Основные возможности:
// @description - Поиск ближайшего аэродрома к точке (с опциональным радиусом и фильтром по категориям)
// @description - Поиск K ближайших аэродромов с расстоянием до каждого
// @description - Текстовый поиск с ранжированием (префикс названия, префикс муниципалитета, подстрока)
// @description - Получение аэродрома по идентификатору (ICAO/local ident)
// @description - Статистика по загруженному каталогу

// @contact.name API Support
// @contact.email support@airport-catalog.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/airport-catalog/docs/swagger"
	"github.com/airport-catalog/internal/config"
	httpDelivery "github.com/airport-catalog/internal/delivery/http"
	"github.com/airport-catalog/internal/delivery/http/handler"
	"github.com/airport-catalog/internal/pkg/logger"
	"github.com/airport-catalog/internal/repository/cache"
	"github.com/airport-catalog/internal/repository/postgres"
	"github.com/airport-catalog/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Airport Catalog Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	airportRepo := postgres.NewAirportRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	nearestUC := usecase.NewNearestUseCase(
		airportRepo,
		log,
	)

	searchUC := usecase.NewSearchUseCase(
		airportRepo,
		cacheRepo,
		log,
		cfg.Cache.SearchCacheTTL,
	)

	statsUC := usecase.NewStatsUseCase(
		airportRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	airportHandler := handler.NewAirportHandler(nearestUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		airportHandler,
		searchHandler,
		statsHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
