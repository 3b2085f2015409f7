package repository

import (
	"context"

	"github.com/airport-catalog/internal/domain"
)

// AirportRepository определяет методы каталога аэродромов
type AirportRepository interface {
	// GetByIdent возвращает аэродром по идентификатору (без учёта регистра)
	GetByIdent(ctx context.Context, ident string) (*domain.Airport, error)

	// GetInBoundingBox возвращает аэродромы внутри прямоугольника с опциональным
	// фильтром по категориям (пустой список = без фильтра). Кандидаты
	// упорядочены по близости к center: при усечении выборки теряются только
	// самые дальние.
	GetInBoundingBox(ctx context.Context, center domain.Point, box domain.BoundingBox, categories []string) ([]*domain.Airport, error)

	// SearchByText возвращает кандидатов по подстроке имени или муниципалитета;
	// ранжирование выполняет вызывающая сторона. Префиксные совпадения идут
	// первыми: при усечении выборки теряются только совпадения худшего ранга.
	SearchByText(ctx context.Context, fragment string) ([]*domain.Airport, error)

	// Count возвращает размер каталога
	Count(ctx context.Context) (int64, error)

	// GetStatistics возвращает агрегированную статистику каталога
	GetStatistics(ctx context.Context) (*domain.Statistics, error)

	// Upsert создаёт или обновляет запись по идентификатору
	Upsert(ctx context.Context, airport *domain.Airport) error
}
