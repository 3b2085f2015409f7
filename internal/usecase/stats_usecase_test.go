package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/airport-catalog/internal/domain"
	"github.com/airport-catalog/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	stats := &domain.Statistics{
		TotalAirports: 42,
		ByCategory: map[string]int{
			domain.CategoryLargeAirport: 10,
			domain.CategorySmallAirport: 32,
		},
	}

	t.Run("store result is cached", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockRepo, mockCache, logger, time.Minute)

		mockCache.On("GetStats", ctx).Return(nil, nil)
		mockRepo.On("GetStatistics", ctx).Return(stats, nil)
		mockCache.On("SetStats", ctx, stats, time.Minute).Return(nil)

		result, err := uc.GetStatistics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), result.TotalAirports)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockRepo, mockCache, logger, time.Minute)

		mockCache.On("GetStats", ctx).Return(stats, nil)

		result, err := uc.GetStatistics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), result.TotalAirports)
		mockRepo.AssertNotCalled(t, "GetStatistics")
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockRepo, mockCache, logger, time.Minute)

		mockCache.On("GetStats", ctx).Return(nil, nil)
		mockRepo.On("GetStatistics", ctx).Return(stats, nil)
		mockCache.On("SetStats", ctx, stats, time.Minute).Return(errors.New("redis down"))

		result, err := uc.GetStatistics(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("store error is propagated", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockRepo, mockCache, logger, time.Minute)

		mockCache.On("GetStats", ctx).Return(nil, nil)
		mockRepo.On("GetStatistics", ctx).Return(nil, errors.New("connection refused"))

		_, err := uc.GetStatistics(ctx)
		assert.Error(t, err)
	})
}

func TestStatsUseCase_CatalogSize(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns count", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockRepo, mockCache, logger, time.Minute)

		mockRepo.On("Count", ctx).Return(int64(7), nil)

		count, err := uc.CatalogSize(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})

	t.Run("store error is propagated", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockRepo, mockCache, logger, time.Minute)

		mockRepo.On("Count", ctx).Return(int64(0), errors.New("connection refused"))

		_, err := uc.CatalogSize(ctx)
		assert.Error(t, err)
	})
}
