package domain

import "time"

// Airport представляет запись каталога аэродромов
type Airport struct {
	ID           int64     `json:"id" db:"id"`
	Ident        string    `json:"ident" db:"ident"`
	Name         string    `json:"name" db:"name"`
	Lat          float64   `json:"lat" db:"lat"`
	Lon          float64   `json:"lon" db:"lon"`
	Municipality *string   `json:"municipality,omitempty" db:"municipality"`
	Country      *string   `json:"country,omitempty" db:"country"`
	ElevationM   *int      `json:"elevation_m,omitempty" db:"elevation_m"`
	Category     string    `json:"category" db:"category"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AirportDistance - аэродром с вычисленным расстоянием до точки запроса.
// Расстояние присутствует только у гео-запросов; поиск по идентификатору и
// тексту возвращает Airport без него.
type AirportDistance struct {
	Airport    *Airport `json:"airport"`
	DistanceKm float64  `json:"distance_km"`
}
