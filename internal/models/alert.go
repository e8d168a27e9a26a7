package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert — событие, поднятое до оператора (surface) или переданное
// в диспетчеризацию (auto-dispatch). Хранится для ленты и разбора.
type Alert struct {
	ID           uuid.UUID  `json:"id"`
	MissionID    uuid.UUID  `json:"mission_id"`
	EventID      int64      `json:"event_id"`
	Label        string     `json:"label"`
	Score        float64    `json:"score"`
	Coord        Coordinate `json:"coord"`
	TimestampMS  int64      `json:"timestamp_ms"`
	Decision     Decision   `json:"decision"`
	Acknowledged bool       `json:"acknowledged"`
	CreatedAt    time.Time  `json:"created_at"`
}

// DecisionStats — счётчики решений миссии за скользящее окно.
type DecisionStats struct {
	Recorded       int `json:"recorded"`
	Surfaced       int `json:"surfaced"`
	AutoDispatched int `json:"auto_dispatched"`
	OpenAlerts     int `json:"open_alerts"`
}
