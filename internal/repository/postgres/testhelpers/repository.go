package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/airport-catalog/internal/domain/repository"
	"github.com/airport-catalog/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewAirportRepositoryForTest creates an airport repository with test database and logger
func NewAirportRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AirportRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewAirportRepository(pgDB)
}
