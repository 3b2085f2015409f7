package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/airport-catalog/internal/domain"
	apperrors "github.com/airport-catalog/internal/pkg/errors"
	"github.com/airport-catalog/internal/usecase"
	"github.com/airport-catalog/internal/usecase/dto"
)

// Airports around Paris (48.8566, 2.3522) with known great-circle distances:
// LFPB Le Bourget ~ 11 km, LFPG Charles de Gaulle ~ 23 km, LFPO Orly ~ 14 km.
func parisAirports() []*domain.Airport {
	return []*domain.Airport{
		{ID: 1, Ident: "LFPG", Name: "Charles de Gaulle International Airport", Lat: 49.012798, Lon: 2.55, Municipality: ptrString("Paris"), Category: domain.CategoryLargeAirport},
		{ID: 2, Ident: "LFPO", Name: "Paris-Orly Airport", Lat: 48.7233, Lon: 2.3794, Municipality: ptrString("Paris"), Category: domain.CategoryLargeAirport},
		{ID: 3, Ident: "LFPB", Name: "Paris-Le Bourget Airport", Lat: 48.9694, Lon: 2.4414, Municipality: ptrString("Paris"), Category: domain.CategoryMediumAirport},
	}
}

func TestNearestUseCase_FindNearestK(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("results ordered by distance", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(parisAirports(), nil)

		resp, err := uc.FindNearestK(ctx, dto.NearbyRequest{
			Lat:   48.8566,
			Lon:   2.3522,
			Limit: 10,
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Airports, 3)
		assert.Equal(t, "LFPB", resp.Airports[0].Ident)
		assert.Equal(t, "LFPO", resp.Airports[1].Ident)
		assert.Equal(t, "LFPG", resp.Airports[2].Ident)

		for i := 1; i < len(resp.Airports); i++ {
			assert.LessOrEqual(t, resp.Airports[i-1].DistanceKm, resp.Airports[i].DistanceKm)
		}

		mockRepo.AssertExpectations(t)
	})

	t.Run("query point is passed to the store as the ordering center", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		// The store orders candidates by proximity to this point, so a capped
		// candidate list can never lose the nearest airport.
		center := domain.Point{Lat: 48.8566, Lon: 2.3522}
		mockRepo.On("GetInBoundingBox", ctx, center, mock.Anything, mock.Anything).
			Return(parisAirports(), nil)

		resp, err := uc.FindNearestK(ctx, dto.NearbyRequest{
			Lat:   48.8566,
			Lon:   2.3522,
			Limit: 10,
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Airports, 3)
		mockRepo.AssertExpectations(t)
	})

	t.Run("limit truncates result", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(parisAirports(), nil)

		resp, err := uc.FindNearestK(ctx, dto.NearbyRequest{
			Lat:   48.8566,
			Lon:   2.3522,
			Limit: 2,
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Airports, 2)
		assert.Equal(t, "LFPB", resp.Airports[0].Ident)
		assert.Equal(t, "LFPO", resp.Airports[1].Ident)
	})

	t.Run("limit zero returns empty result without store call", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		resp, err := uc.FindNearestK(ctx, dto.NearbyRequest{
			Lat:   48.8566,
			Lon:   2.3522,
			Limit: 0,
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.Airports)
		mockRepo.AssertNotCalled(t, "GetInBoundingBox")
	})

	t.Run("exact distance filters bounding box false positives", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		// The store may return corner candidates outside the circle; LFPG at
		// ~23 km must be dropped for a 15 km radius even though the rectangle
		// admitted it.
		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(parisAirports(), nil)

		resp, err := uc.FindNearestK(ctx, dto.NearbyRequest{
			Lat:           48.8566,
			Lon:           2.3522,
			Limit:         10,
			MaxDistanceKm: ptrFloat64(15),
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Airports, 2)
		for _, a := range resp.Airports {
			assert.LessOrEqual(t, a.DistanceKm, 15.0)
		}
	})

	t.Run("equidistant airports ordered by ident", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		// Two airports at the same coordinates are exactly equidistant.
		same := []*domain.Airport{
			{ID: 10, Ident: "ZZZZ", Name: "Zulu Field", Lat: 48.9, Lon: 2.4, Category: domain.CategorySmallAirport},
			{ID: 11, Ident: "AAAA", Name: "Alpha Field", Lat: 48.9, Lon: 2.4, Category: domain.CategorySmallAirport},
		}
		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(same, nil)

		resp, err := uc.FindNearestK(ctx, dto.NearbyRequest{
			Lat:   48.8566,
			Lon:   2.3522,
			Limit: 10,
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Airports, 2)
		assert.Equal(t, "AAAA", resp.Airports[0].Ident)
		assert.Equal(t, "ZZZZ", resp.Airports[1].Ident)
	})

	t.Run("category filter is passed to the store", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, []string{domain.CategoryLargeAirport}).
			Return([]*domain.Airport{parisAirports()[0]}, nil)

		resp, err := uc.FindNearestK(ctx, dto.NearbyRequest{
			Lat:        48.8566,
			Lon:        2.3522,
			Limit:      10,
			Categories: []string{domain.CategoryLargeAirport},
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Airports, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		_, err := uc.FindNearestK(ctx, dto.NearbyRequest{Lat: 91, Lon: 0, Limit: 1})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)

		_, err = uc.FindNearestK(ctx, dto.NearbyRequest{Lat: 0, Lon: -181, Limit: 1})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
	})

	t.Run("negative radius", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		_, err := uc.FindNearestK(ctx, dto.NearbyRequest{
			Lat:           48.8566,
			Lon:           2.3522,
			Limit:         1,
			MaxDistanceKm: ptrFloat64(-5),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRadius)
	})

	t.Run("negative limit", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		_, err := uc.FindNearestK(ctx, dto.NearbyRequest{Lat: 48.8566, Lon: 2.3522, Limit: -1})
		assert.ErrorIs(t, err, apperrors.ErrInvalidLimit)
	})

	t.Run("invalid category", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		_, err := uc.FindNearestK(ctx, dto.NearbyRequest{
			Lat:        48.8566,
			Lon:        2.3522,
			Limit:      1,
			Categories: []string{"spaceport"},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
	})

	t.Run("store error is propagated", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, err := uc.FindNearestK(ctx, dto.NearbyRequest{Lat: 48.8566, Lon: 2.3522, Limit: 1})
		assert.Error(t, err)
	})
}

func TestNearestUseCase_FindNearest(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns the single nearest airport", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(parisAirports(), nil)

		best, err := uc.FindNearest(ctx, dto.NearestRequest{Lat: 48.8566, Lon: 2.3522})

		assert.NoError(t, err)
		assert.Equal(t, "LFPB", best.Ident)
	})

	t.Run("agrees with the first element of a k=1 query", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(parisAirports(), nil)

		single, err := uc.FindNearest(ctx, dto.NearestRequest{Lat: 48.8566, Lon: 2.3522})
		assert.NoError(t, err)

		ranked, err := uc.FindNearestK(ctx, dto.NearbyRequest{Lat: 48.8566, Lon: 2.3522, Limit: 1})
		assert.NoError(t, err)
		assert.Len(t, ranked.Airports, 1)
		assert.Equal(t, ranked.Airports[0].Ident, single.Ident)
		assert.Equal(t, ranked.Airports[0].DistanceKm, single.DistanceKm)
	})

	t.Run("bounded radius keeps the near airport and drops the far one", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		catalog := []*domain.Airport{
			{ID: 1, Ident: "LFPG", Name: "Charles de Gaulle International Airport", Lat: 49.0097, Lon: 2.5479, Category: domain.CategoryLargeAirport},
			{ID: 2, Ident: "EGLL", Name: "London Heathrow Airport", Lat: 51.4706, Lon: -0.4619, Category: domain.CategoryLargeAirport},
		}
		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(catalog, nil)

		best, err := uc.FindNearest(ctx, dto.NearestRequest{
			Lat:           48.8566,
			Lon:           2.3522,
			MaxDistanceKm: ptrFloat64(100),
		})

		assert.NoError(t, err)
		assert.Equal(t, "LFPG", best.Ident)
		assert.InDelta(t, 23.5, best.DistanceKm, 1.0)
	})

	t.Run("nearest airport outside radius yields not found", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		// LFPB is ~11 km away; with a 1 km radius nothing qualifies.
		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(parisAirports(), nil)

		_, err := uc.FindNearest(ctx, dto.NearestRequest{
			Lat:           48.8566,
			Lon:           2.3522,
			MaxDistanceKm: ptrFloat64(1),
		})

		assert.ErrorIs(t, err, apperrors.ErrAirportNotFound)
	})

	t.Run("empty catalog yields not found", func(t *testing.T) {
		mockRepo := &MockAirportRepository{}
		uc := usecase.NewNearestUseCase(mockRepo, logger)

		mockRepo.On("GetInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return([]*domain.Airport{}, nil)

		_, err := uc.FindNearest(ctx, dto.NearestRequest{Lat: 48.8566, Lon: 2.3522})
		assert.ErrorIs(t, err, apperrors.ErrAirportNotFound)
	})
}
