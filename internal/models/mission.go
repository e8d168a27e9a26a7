package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы миссии.
const (
	MissionStatusActive    = "active"
	MissionStatusCompleted = "completed"
)

// Mission — один сеанс наблюдения; на время активности владеет
// собственным экземпляром движка значимости событий.
type Mission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
