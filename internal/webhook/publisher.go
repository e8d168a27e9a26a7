package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/mission_alert_system/internal/models"
)

const (
	dispatchQueueKey = "dispatch_events"
)

// DispatchEvent - полезная нагрузка вебхука автодиспетчеризации: всё, что
// нужно внешнему диспетчерскому контуру для реакции на тревогу.
type DispatchEvent struct {
	AlertID     uuid.UUID         `json:"alert_id"`
	MissionID   uuid.UUID         `json:"mission_id"`
	EventID     int64             `json:"event_id"`
	Label       string            `json:"label"`
	Score       float64           `json:"score"`
	Coord       models.Coordinate `json:"coord"`
	TimestampMS int64             `json:"timestamp_ms"`
	Decision    models.Decision   `json:"decision"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NewDispatchEvent собирает событие диспетчеризации из тревоги
func NewDispatchEvent(alert *models.Alert) DispatchEvent {
	return DispatchEvent{
		AlertID:     alert.ID,
		MissionID:   alert.MissionID,
		EventID:     alert.EventID,
		Label:       alert.Label,
		Score:       alert.Score,
		Coord:       alert.Coord,
		TimestampMS: alert.TimestampMS,
		Decision:    alert.Decision,
		CreatedAt:   alert.CreatedAt,
	}
}

// DispatchPublisher - интерфейс для публикации событий диспетчеризации
type DispatchPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisDispatchPublisher - реализация DispatchPublisher, использующая Redis
type RedisDispatchPublisher struct {
	redisClient *redis.Client
}

// NewRedisDispatchPublisher создает новый RedisDispatchPublisher
func NewRedisDispatchPublisher(client *redis.Client) *RedisDispatchPublisher {
	return &RedisDispatchPublisher{
		redisClient: client,
	}
}

// Publish публикует событие диспетчеризации в очередь Redis
func (p *RedisDispatchPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает BRPop справа
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
