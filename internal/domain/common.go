package domain

import "time"

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// BoundingBox - прямоугольник широты/долготы. Границы могут выходить за
// ±90/±180, когда прямоугольник служит грубым предварительным фильтром.
type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// Contains проверяет, попадает ли точка в прямоугольник
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Statistics представляет общую статистику по каталогу аэродромов
type Statistics struct {
	TotalAirports int64          `json:"total_airports"`
	ByCategory    map[string]int `json:"by_category"`
	Coverage      CoverageStats  `json:"coverage"`
	LastUpdated   time.Time      `json:"last_updated"`
}

// CoverageStats статистика покрытия каталога
type CoverageStats struct {
	BBoxMinLat float64 `json:"bbox_min_lat"`
	BBoxMaxLat float64 `json:"bbox_max_lat"`
	BBoxMinLon float64 `json:"bbox_min_lon"`
	BBoxMaxLon float64 `json:"bbox_max_lon"`
}
