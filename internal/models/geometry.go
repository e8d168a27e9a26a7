package models

import (
	"time"

	"github.com/google/uuid"
)

// Coordinate — пара долгота/широта в градусах WGS84, без высоты.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// AreaOfInterest — геозона повышенного приоритета: простой полигон (замкнутое кольцо координат).
type AreaOfInterest struct {
	ID        uuid.UUID    `json:"id"`
	MissionID uuid.UUID    `json:"mission_id"`
	Name      string       `json:"name"`
	Ring      []Coordinate `json:"ring"`
	CreatedAt time.Time    `json:"created_at"`
}

// CriticalAsset — охраняемый точечный объект (например, склад).
type CriticalAsset struct {
	ID        uuid.UUID  `json:"id"`
	MissionID uuid.UUID  `json:"mission_id"`
	Name      string     `json:"name"`
	Location  Coordinate `json:"location"`
	CreatedAt time.Time  `json:"created_at"`
}

// MissionContext — снимок геозон и охраняемых объектов миссии, передаётся движку на каждый вызов.
type MissionContext struct {
	AreasOfInterest []*AreaOfInterest `json:"areas_of_interest"`
	CriticalAssets  []*CriticalAsset  `json:"critical_assets"`
}
