package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/airport-catalog/internal/domain"
	"github.com/airport-catalog/internal/domain/repository"
	"github.com/airport-catalog/internal/pkg/errors"
	"github.com/airport-catalog/internal/usecase/dto"
)

// Ранги текстового совпадения: меньший ранг - выше приоритет
const (
	rankNamePrefix         = 1
	rankMunicipalityPrefix = 2
	rankSubstring          = 3
)

const defaultSearchLimit = 10

// SearchUseCase - use case текстового поиска и поиска по идентификатору
type SearchUseCase struct {
	airportRepo repository.AirportRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	airportRepo repository.AirportRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		airportRepo: airportRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Search выполняет поиск аэродромов по подстроке имени или муниципалитета.
// Ранжирование: префикс имени, префикс муниципалитета, подстрока; внутри
// ранга - по алфавиту имени.
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.ErrEmptySearchQuery
	}
	if req.Limit < 0 {
		return nil, errors.ErrInvalidLimit
	}
	if req.Limit == 0 {
		req.Limit = defaultSearchLimit
	}

	// Cache lookup; cache failures are logged by the repository and must not
	// be confused with an unavailable catalog store.
	cacheKey := fmt.Sprintf("airports:search:%s:%d", strings.ToLower(query), req.Limit)
	if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
		var cached dto.SearchResponse
		if err := json.Unmarshal(data, &cached); err != nil {
			uc.logger.Warn("Failed to unmarshal cached search response", zap.String("key", cacheKey), zap.Error(err))
		} else {
			return &cached, nil
		}
	}

	candidates, err := uc.airportRepo.SearchByText(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to search airports by text", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	type rankedAirport struct {
		airport *domain.Airport
		rank    int
	}

	lowered := strings.ToLower(query)
	ranked := make([]rankedAirport, 0, len(candidates))
	for _, a := range candidates {
		rank := matchRank(a, lowered)
		if rank == 0 {
			continue
		}
		ranked = append(ranked, rankedAirport{airport: a, rank: rank})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].rank != ranked[j].rank {
			return ranked[i].rank < ranked[j].rank
		}
		ni, nj := strings.ToLower(ranked[i].airport.Name), strings.ToLower(ranked[j].airport.Name)
		if ni != nj {
			return ni < nj
		}
		return ranked[i].airport.Ident < ranked[j].airport.Ident
	})

	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	results := make([]dto.AirportDTO, 0, len(ranked))
	for _, ra := range ranked {
		results = append(results, dto.ConvertAirport(ra.airport))
	}

	resp := &dto.SearchResponse{
		Airports: results,
		Total:    len(results),
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache search response", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return resp, nil
}

// GetByIdent возвращает аэродром по идентификатору без учёта регистра
func (uc *SearchUseCase) GetByIdent(ctx context.Context, ident string) (*dto.AirportDTO, error) {
	if strings.TrimSpace(ident) == "" {
		return nil, errors.ErrInvalidIdent
	}

	airport, err := uc.airportRepo.GetByIdent(ctx, ident)
	if err != nil {
		return nil, err
	}

	result := dto.ConvertAirport(airport)
	return &result, nil
}

// matchRank определяет ранг совпадения кандидата; 0 - не совпадает
func matchRank(a *domain.Airport, loweredQuery string) int {
	name := strings.ToLower(a.Name)
	municipality := ""
	if a.Municipality != nil {
		municipality = strings.ToLower(*a.Municipality)
	}

	switch {
	case strings.HasPrefix(name, loweredQuery):
		return rankNamePrefix
	case strings.HasPrefix(municipality, loweredQuery):
		return rankMunicipalityPrefix
	case strings.Contains(name, loweredQuery),
		municipality != "" && strings.Contains(municipality, loweredQuery):
		return rankSubstring
	default:
		return 0
	}
}
