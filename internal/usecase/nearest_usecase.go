package usecase

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/airport-catalog/internal/domain"
	"github.com/airport-catalog/internal/domain/repository"
	"github.com/airport-catalog/internal/pkg/errors"
	"github.com/airport-catalog/internal/pkg/utils"
	"github.com/airport-catalog/internal/usecase/dto"
)

// NearestUseCase - use case гео-поиска ближайших аэродромов
type NearestUseCase struct {
	airportRepo repository.AirportRepository
	logger      *zap.Logger
}

// NewNearestUseCase - создание нового NearestUseCase
func NewNearestUseCase(
	airportRepo repository.AirportRepository,
	logger *zap.Logger,
) *NearestUseCase {
	return &NearestUseCase{
		airportRepo: airportRepo,
		logger:      logger,
	}
}

// FindNearestK возвращает до req.Limit аэродромов, ближайших к точке запроса.
// Прямоугольник-суперсет сужает выборку из каталога, после чего кандидаты
// фильтруются по точному расстоянию, сортируются и усекаются.
func (uc *NearestUseCase) FindNearestK(ctx context.Context, req dto.NearbyRequest) (*dto.NearestResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if req.Limit < 0 {
		return nil, errors.ErrInvalidLimit
	}
	for _, c := range req.Categories {
		if !domain.IsValidAirportCategory(c) {
			return nil, errors.ErrInvalidCategory
		}
	}

	radius := math.Inf(1)
	if req.MaxDistanceKm != nil {
		if !utils.ValidateRadius(*req.MaxDistanceKm) {
			return nil, errors.ErrInvalidRadius
		}
		radius = *req.MaxDistanceKm
	}

	if req.Limit == 0 {
		return &dto.NearestResponse{Airports: []dto.NearestAirportDTO{}}, nil
	}

	box := utils.BoundingBoxForRadius(req.Lat, req.Lon, radius)
	center := domain.Point{Lat: req.Lat, Lon: req.Lon}
	candidates, err := uc.airportRepo.GetInBoundingBox(ctx, center, box, req.Categories)
	if err != nil {
		uc.logger.Error("Failed to retrieve bounding box candidates",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Error(err))
		return nil, err
	}

	results := make([]dto.NearestAirportDTO, 0, len(candidates))
	for _, a := range candidates {
		d := utils.GreatCircleDistanceKm(req.Lat, req.Lon, a.Lat, a.Lon)

		// The rectangle admits false positives near its corners; only the
		// exact great-circle distance decides membership.
		if d > radius {
			continue
		}

		results = append(results, dto.NearestAirportDTO{
			AirportDTO: dto.ConvertAirport(a),
			DistanceKm: d,
		})
	}

	// Equidistant airports are ordered by ident to keep results deterministic
	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Ident < results[j].Ident
	})

	if len(results) > req.Limit {
		results = results[:req.Limit]
	}

	return &dto.NearestResponse{
		Airports: results,
		Total:    len(results),
	}, nil
}

// FindNearest возвращает единственный ближайший аэродром или ErrAirportNotFound
func (uc *NearestUseCase) FindNearest(ctx context.Context, req dto.NearestRequest) (*dto.NearestAirportDTO, error) {
	resp, err := uc.FindNearestK(ctx, dto.NearbyRequest{
		Lat:           req.Lat,
		Lon:           req.Lon,
		Limit:         1,
		MaxDistanceKm: req.MaxDistanceKm,
		Categories:    req.Categories,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Airports) == 0 {
		return nil, errors.ErrAirportNotFound
	}

	best := resp.Airports[0]

	// The radius is enforced a second time on the single winner
	if req.MaxDistanceKm != nil && best.DistanceKm > *req.MaxDistanceKm {
		return nil, errors.ErrAirportNotFound
	}

	return &best, nil
}
