package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateMissionRequest DTO для создания миссии
// @Description DTO для создания миссии
type CreateMissionRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description,omitempty"`
}

// UpdateMissionRequest DTO для обновления миссии
// @Description DTO для обновления миссии
type UpdateMissionRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status" validate:"required,oneof=active completed"`
}

// MissionResponse DTO для ответа с информацией о миссии
// @Description DTO для ответа с информацией о миссии
type MissionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RingPoint вершина полигона геозоны
// @Description Вершина полигона геозоны
type RingPoint struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// CreateAreaRequest DTO для создания геозоны
// @Description DTO для создания геозоны
type CreateAreaRequest struct {
	Name string      `json:"name" validate:"required,min=2,max=255"`
	Ring []RingPoint `json:"ring" validate:"required,min=3,dive"`
}

// AreaResponse DTO для ответа с информацией о геозоне
// @Description DTO для ответа с информацией о геозоне
type AreaResponse struct {
	ID        uuid.UUID   `json:"id"`
	MissionID uuid.UUID   `json:"mission_id"`
	Name      string      `json:"name"`
	Ring      []RingPoint `json:"ring"`
	CreatedAt time.Time   `json:"created_at"`
}

// CreateAssetRequest DTO для создания охраняемого объекта
// @Description DTO для создания охраняемого объекта
type CreateAssetRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=255"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// AssetResponse DTO для ответа с информацией об охраняемом объекте
// @Description DTO для ответа с информацией об охраняемом объекте
type AssetResponse struct {
	ID        uuid.UUID `json:"id"`
	MissionID uuid.UUID `json:"mission_id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// DetectionRequest DTO события детекции от перцепционного конвейера.
// Нулевые координаты и нулевой score валидны, поэтому required нет —
// только диапазоны.
// @Description DTO события детекции
type DetectionRequest struct {
	Label       string  `json:"label" validate:"required,min=1,max=64"`
	Score       float64 `json:"score" validate:"gte=0,lte=1"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
	TimestampMS int64   `json:"timestamp_ms" validate:"gte=0"`
}

// DetectionResponse DTO записи хроники с решением движка
// @Description DTO записи хроники с решением движка
type DetectionResponse struct {
	ID          int64     `json:"id"`
	MissionID   uuid.UUID `json:"mission_id"`
	Label       string    `json:"label"`
	Score       float64   `json:"score"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	TimestampMS int64     `json:"timestamp_ms"`
	Decision    string    `json:"decision"`
	ProcessedAt time.Time `json:"processed_at"`
}

// EvaluationResponse DTO пробного прогона без записи
// @Description DTO пробного прогона без записи
type EvaluationResponse struct {
	Decision string `json:"decision"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID           uuid.UUID `json:"id"`
	MissionID    uuid.UUID `json:"mission_id"`
	EventID      int64     `json:"event_id"`
	Label        string    `json:"label"`
	Score        float64   `json:"score"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	TimestampMS  int64     `json:"timestamp_ms"`
	Decision     string    `json:"decision"`
	Acknowledged bool      `json:"acknowledged"`
	CreatedAt    time.Time `json:"created_at"`
}

// StatsResponse DTO для ответа со счетчиками решений
// @Description DTO для ответа со счетчиками решений
type StatsResponse struct {
	Recorded       int `json:"recorded"`
	Surfaced       int `json:"surfaced"`
	AutoDispatched int `json:"auto_dispatched"`
	OpenAlerts     int `json:"open_alerts"`
}
