package postgres

import (
	"context"
	"database/sql"

	"github.com/airport-catalog/internal/domain"
	"github.com/airport-catalog/internal/domain/repository"
	"github.com/airport-catalog/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	// LimitBoxCandidates ограничивает выборку кандидатов внутри прямоугольника
	LimitBoxCandidates = 5000

	// LimitSearchCandidates ограничивает выборку кандидатов текстового поиска
	LimitSearchCandidates = 500
)

type airportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAirportRepository(db *DB) repository.AirportRepository {
	return &airportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *airportRepository) GetByIdent(ctx context.Context, ident string) (*domain.Airport, error) {
	query := `
		SELECT
			id, ident, name, lat, lon, municipality, country,
			elevation_m, category, created_at, updated_at
		FROM airports
		WHERE upper(ident) = upper($1)
	`

	var a domain.Airport
	err := r.db.QueryRowContext(ctx, query, ident).Scan(
		&a.ID, &a.Ident, &a.Name, &a.Lat, &a.Lon,
		&a.Municipality, &a.Country, &a.ElevationM, &a.Category,
		&a.CreatedAt, &a.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.ErrAirportNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get airport by ident", zap.String("ident", ident), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &a, nil
}

// GetInBoundingBox выбирает кандидатов внутри прямоугольника. Запрос
// фиксированный и параметризованный: пустой массив категорий отключает фильтр,
// границы прямоугольника могут выходить за ±90/±180 - BETWEEN это допускает.
// Кандидаты сортируются по планарному приближению расстояния до center, чтобы
// LIMIT срезал только самые дальние строки.
func (r *airportRepository) GetInBoundingBox(
	ctx context.Context,
	center domain.Point,
	box domain.BoundingBox,
	categories []string,
) ([]*domain.Airport, error) {
	query := `
		SELECT
			id, ident, name, lat, lon, municipality, country,
			elevation_m, category, created_at, updated_at
		FROM airports
		WHERE lat BETWEEN $1 AND $2
		  AND lon BETWEEN $3 AND $4
		  AND ($5::text[] IS NULL OR cardinality($5::text[]) = 0 OR category = ANY($5::text[]))
		ORDER BY (lat - $6) ^ 2 + ((lon - $7) * cos(radians($6))) ^ 2, ident
		LIMIT $8
	`

	rows, err := r.db.QueryContext(ctx, query,
		box.MinLat, box.MaxLat, box.MinLon, box.MaxLon,
		pq.Array(categories), center.Lat, center.Lon, LimitBoxCandidates,
	)
	if err != nil {
		r.logger.Error("Failed to get airports in bounding box", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var airports []*domain.Airport
	for rows.Next() {
		var a domain.Airport
		err := rows.Scan(
			&a.ID, &a.Ident, &a.Name, &a.Lat, &a.Lon,
			&a.Municipality, &a.Country, &a.ElevationM, &a.Category,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan airport", zap.Error(err))
			continue
		}
		airports = append(airports, &a)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate airports in bounding box", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return airports, nil
}

// SearchByText выбирает кандидатов по подстроке. Префиксные совпадения имени
// идут первыми, затем префиксные совпадения муниципалитета: LIMIT срезает
// только совпадения худшего ранга.
func (r *airportRepository) SearchByText(ctx context.Context, fragment string) ([]*domain.Airport, error) {
	query := `
		SELECT
			id, ident, name, lat, lon, municipality, country,
			elevation_m, category, created_at, updated_at
		FROM airports
		WHERE name ILIKE '%' || $1 || '%'
		   OR municipality ILIKE '%' || $1 || '%'
		ORDER BY
			(name ILIKE $1 || '%') DESC,
			(municipality ILIKE $1 || '%') DESC,
			name, ident
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, fragment, LimitSearchCandidates)
	if err != nil {
		r.logger.Error("Failed to search airports by text", zap.String("fragment", fragment), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var airports []*domain.Airport
	for rows.Next() {
		var a domain.Airport
		err := rows.Scan(
			&a.ID, &a.Ident, &a.Name, &a.Lat, &a.Lon,
			&a.Municipality, &a.Country, &a.ElevationM, &a.Category,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			continue
		}
		airports = append(airports, &a)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate text search candidates", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return airports, nil
}

func (r *airportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM airports`).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to count airports", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

func (r *airportRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		ByCategory: make(map[string]int),
	}

	query := `
		SELECT category, count(*)
		FROM airports
		GROUP BY category
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to get catalog statistics", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			continue
		}
		stats.ByCategory[category] = count
		stats.TotalAirports += int64(count)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate catalog statistics", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	coverageQuery := `
		SELECT
			coalesce(min(lat), 0), coalesce(max(lat), 0),
			coalesce(min(lon), 0), coalesce(max(lon), 0),
			coalesce(max(updated_at), now())
		FROM airports
	`

	err = r.db.QueryRowContext(ctx, coverageQuery).Scan(
		&stats.Coverage.BBoxMinLat, &stats.Coverage.BBoxMaxLat,
		&stats.Coverage.BBoxMinLon, &stats.Coverage.BBoxMaxLon,
		&stats.LastUpdated,
	)
	if err != nil {
		r.logger.Error("Failed to get catalog coverage", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stats, nil
}

func (r *airportRepository) Upsert(ctx context.Context, airport *domain.Airport) error {
	query := `
		INSERT INTO airports (
			ident, name, lat, lon, municipality, country, elevation_m, category
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (ident) DO UPDATE SET
			name         = EXCLUDED.name,
			lat          = EXCLUDED.lat,
			lon          = EXCLUDED.lon,
			municipality = EXCLUDED.municipality,
			country      = EXCLUDED.country,
			elevation_m  = EXCLUDED.elevation_m,
			category     = EXCLUDED.category,
			updated_at   = now()
	`

	_, err := r.db.ExecContext(ctx, query,
		airport.Ident, airport.Name, airport.Lat, airport.Lon,
		airport.Municipality, airport.Country, airport.ElevationM, airport.Category,
	)
	if err != nil {
		r.logger.Error("Failed to upsert airport", zap.String("ident", airport.Ident), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
