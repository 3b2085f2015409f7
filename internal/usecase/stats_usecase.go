package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/airport-catalog/internal/domain"
	"github.com/airport-catalog/internal/domain/repository"
)

// StatsUseCase - use case статистики каталога и готовности сервиса
type StatsUseCase struct {
	airportRepo repository.AirportRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewStatsUseCase - создание нового StatsUseCase
func NewStatsUseCase(
	airportRepo repository.AirportRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		airportRepo: airportRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetStatistics возвращает агрегированную статистику каталога
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	if cached, err := uc.cacheRepo.GetStats(ctx); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := uc.airportRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to get catalog statistics", zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache catalog statistics", zap.Error(err))
	}

	return stats, nil
}

// CatalogSize возвращает количество записей каталога; используется readiness
// проверкой
func (uc *StatsUseCase) CatalogSize(ctx context.Context) (int64, error) {
	count, err := uc.airportRepo.Count(ctx)
	if err != nil {
		uc.logger.Error("Failed to count airports", zap.Error(err))
		return 0, err
	}
	return count, nil
}
