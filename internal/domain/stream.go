package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с publisher-ом каталога)
const (
	StreamCatalogUpsert = "stream:catalog:upsert"
	StreamCatalogDone   = "stream:catalog:done"
)

// AirportUpsertEvent - входящее событие на загрузку/обновление аэродрома.
// Высота приходит в футах и конвертируется в метры при ингесте.
type AirportUpsertEvent struct {
	BatchID      uuid.UUID `json:"batch_id"`
	Ident        string    `json:"ident"`
	Name         string    `json:"name"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	Municipality *string   `json:"municipality,omitempty"`
	Country      *string   `json:"country,omitempty"`
	ElevationFt  *int      `json:"elevation_ft,omitempty"`
	Category     string    `json:"category"`
}

// AirportUpsertResult - результат обработки события
type AirportUpsertResult struct {
	BatchID uuid.UUID `json:"batch_id"`
	Ident   string    `json:"ident"`
	Error   string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
