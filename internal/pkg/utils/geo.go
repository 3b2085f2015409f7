package utils

import (
	"math"

	"github.com/airport-catalog/internal/domain"
)

const (
	earthRadiusKm  = 6371.0
	kmPerDegreeLat = 111.0
)

// GreatCircleDistanceKm вычисляет расстояние между двумя точками в километрах
// по сферической теореме косинусов.
func GreatCircleDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	dLonRad := (lon2 - lon1) * math.Pi / 180.0

	arg := math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLonRad) +
		math.Sin(lat1Rad)*math.Sin(lat2Rad)

	// Floating point rounding can push the value just outside the acos domain
	// for identical or antipodal points.
	if arg > 1 {
		arg = 1
	}
	if arg < -1 {
		arg = -1
	}

	return earthRadiusKm * math.Acos(arg)
}

// BoundingBoxForRadius строит прямоугольник, гарантированно содержащий все
// точки в радиусе radiusKm от заданной координаты. Для неограниченного поиска
// передаётся math.Inf(1). Границы могут выходить за ±90/±180: прямоугольник
// используется только как грубый предварительный фильтр.
func BoundingBoxForRadius(lat, lon, radiusKm float64) domain.BoundingBox {
	dLat := radiusKm / kmPerDegreeLat
	if math.IsNaN(dLat) || dLat > 90 {
		dLat = 90
	}

	// Near the poles the divisor collapses and the longitude delta blows up;
	// the full longitude range is the correct superset there.
	dLon := 180.0
	if cosLat := math.Cos(lat * math.Pi / 180.0); cosLat > 0 {
		dLon = radiusKm / (kmPerDegreeLat * cosLat)
	}
	if math.IsNaN(dLon) || dLon > 180 {
		dLon = 180
	}

	return domain.BoundingBox{
		MinLat: lat - dLat,
		MaxLat: lat + dLat,
		MinLon: lon - dLon,
		MaxLon: lon + dLon,
	}
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет валидность радиуса в километрах
func ValidateRadius(radiusKm float64) bool {
	return !math.IsNaN(radiusKm) && radiusKm >= 0
}
