package dto

// NearestRequest - запрос ближайшего аэродрома к точке
type NearestRequest struct {
	Lat           float64  `json:"lat" validate:"min=-90,max=90"`
	Lon           float64  `json:"lon" validate:"min=-180,max=180"`
	MaxDistanceKm *float64 `json:"max_distance_km,omitempty" validate:"omitempty,min=0"`
	Categories    []string `json:"categories,omitempty"`
}

// NearbyRequest - запрос k ближайших аэродромов к точке
type NearbyRequest struct {
	Lat           float64  `json:"lat" validate:"min=-90,max=90"`
	Lon           float64  `json:"lon" validate:"min=-180,max=180"`
	Limit         int      `json:"limit" validate:"min=0,max=1000"`
	MaxDistanceKm *float64 `json:"max_distance_km,omitempty" validate:"omitempty,min=0"`
	Categories    []string `json:"categories,omitempty"`
}

// SearchRequest - текстовый поиск по имени или муниципалитету
type SearchRequest struct {
	Query string `json:"q" validate:"required,min=1"`
	Limit int    `json:"limit" validate:"min=0,max=100"`
}
