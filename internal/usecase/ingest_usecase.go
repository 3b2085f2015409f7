package usecase

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/airport-catalog/internal/domain"
	"github.com/airport-catalog/internal/domain/repository"
	"github.com/airport-catalog/internal/pkg/errors"
	"github.com/airport-catalog/internal/pkg/utils"
)

const metersPerFoot = 0.3048

// IngestUseCase - use case загрузки каталога: валидация и upsert записей
type IngestUseCase struct {
	airportRepo repository.AirportRepository
	logger      *zap.Logger
}

// NewIngestUseCase - создание нового IngestUseCase
func NewIngestUseCase(
	airportRepo repository.AirportRepository,
	logger *zap.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		airportRepo: airportRepo,
		logger:      logger,
	}
}

// Upsert валидирует событие и создаёт/обновляет запись каталога.
// Идентификатор нормализуется в верхний регистр, высота конвертируется из
// футов в метры.
func (uc *IngestUseCase) Upsert(ctx context.Context, event *domain.AirportUpsertEvent) error {
	ident := strings.ToUpper(strings.TrimSpace(event.Ident))
	if ident == "" {
		return errors.ErrInvalidIdent
	}
	if strings.TrimSpace(event.Name) == "" {
		return errors.ErrInvalidRequest
	}
	if !utils.ValidateCoordinates(event.Lat, event.Lon) {
		return errors.ErrInvalidCoordinates
	}
	if !domain.IsValidAirportCategory(event.Category) {
		return errors.ErrInvalidCategory
	}

	airport := &domain.Airport{
		Ident:        ident,
		Name:         event.Name,
		Lat:          event.Lat,
		Lon:          event.Lon,
		Municipality: event.Municipality,
		Country:      event.Country,
		Category:     event.Category,
	}

	if event.ElevationFt != nil {
		meters := int(math.Round(float64(*event.ElevationFt) * metersPerFoot))
		airport.ElevationM = &meters
	}

	if err := uc.airportRepo.Upsert(ctx, airport); err != nil {
		uc.logger.Error("Failed to upsert airport",
			zap.String("ident", ident),
			zap.Error(err))
		return err
	}

	uc.logger.Debug("Airport upserted", zap.String("ident", ident))
	return nil
}
