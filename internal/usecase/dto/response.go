package dto

import "github.com/airport-catalog/internal/domain"

// AirportDTO - представление аэродрома в ответах API
type AirportDTO struct {
	ID           int64   `json:"id"`
	Ident        string  `json:"ident"`
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Municipality *string `json:"municipality,omitempty"`
	Country      *string `json:"country,omitempty"`
	ElevationM   *int    `json:"elevation_m,omitempty"`
	Category     string  `json:"category"`
}

// NearestAirportDTO - аэродром гео-запроса с вычисленным расстоянием.
// Расстояние не округляется: округление для отображения выполняет HTTP слой.
type NearestAirportDTO struct {
	AirportDTO
	DistanceKm float64 `json:"distance_km"`
}

// NearestResponse - ответ k-nearest запроса, отсортирован по расстоянию
type NearestResponse struct {
	Airports []NearestAirportDTO `json:"airports"`
	Total    int                 `json:"total"`
}

// SearchResponse - ответ текстового поиска, отсортирован по рангу совпадения
type SearchResponse struct {
	Airports []AirportDTO `json:"airports"`
	Total    int          `json:"total"`
}

// ConvertAirport преобразует доменную запись в DTO
func ConvertAirport(a *domain.Airport) AirportDTO {
	return AirportDTO{
		ID:           a.ID,
		Ident:        a.Ident,
		Name:         a.Name,
		Lat:          a.Lat,
		Lon:          a.Lon,
		Municipality: a.Municipality,
		Country:      a.Country,
		ElevationM:   a.ElevationM,
		Category:     a.Category,
	}
}
