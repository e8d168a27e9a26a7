package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/mission_alert_system/internal/models"
	"github.com/shenikar/mission_alert_system/internal/service"
)

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) service.EventRepository {
	return &EventRepository{db: db}
}

// SaveDetection добавляет событие детекции в хронику миссии
func (r *EventRepository) SaveDetection(ctx context.Context, record *models.DetectionRecord) error {
	query := `
		INSERT INTO detection_events (mission_id, label, score, location, ts_ms, decision)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7)
		RETURNING id, processed_at;
	`
	err := r.db.QueryRow(ctx, query,
		record.MissionID,
		record.Label,
		record.Score,
		record.Coord.Lon,
		record.Coord.Lat,
		record.TimestampMS,
		record.Decision.String(),
	).Scan(&record.ID, &record.ProcessedAt)
	if err != nil {
		return fmt.Errorf("failed to save detection event: %w", err)
	}
	return nil
}

// ListDetections возвращает хронику детекций миссии, свежие первыми
func (r *EventRepository) ListDetections(ctx context.Context, missionID uuid.UUID, page, pageSize int) ([]*models.DetectionRecord, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			mission_id,
			label,
			score,
			ST_X(location::geometry) as longitude,
			ST_Y(location::geometry) as latitude,
			ts_ms,
			decision,
			processed_at
		FROM detection_events
		WHERE mission_id = $1
		ORDER BY ts_ms DESC, id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, missionID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list detection events: %w", err)
	}
	defer rows.Close()

	records := make([]*models.DetectionRecord, 0)
	for rows.Next() {
		record := &models.DetectionRecord{}
		var decision string
		err := rows.Scan(
			&record.ID,
			&record.MissionID,
			&record.Label,
			&record.Score,
			&record.Coord.Lon,
			&record.Coord.Lat,
			&record.TimestampMS,
			&decision,
			&record.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan detection row: %w", err)
		}
		record.Decision, err = models.ParseDecision(decision)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored decision: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListDetections: %w", err)
	}
	return records, nil
}

// CreateAlert создает тревогу по эскалированной детекции
func (r *EventRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (mission_id, event_id, label, score, location, ts_ms, decision)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.MissionID,
		alert.EventID,
		alert.Label,
		alert.Score,
		alert.Coord.Lon,
		alert.Coord.Lat,
		alert.TimestampMS,
		alert.Decision.String(),
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// ListAlerts возвращает тревоги миссии, onlyOpen отсекает подтвержденные
func (r *EventRepository) ListAlerts(ctx context.Context, missionID uuid.UUID, onlyOpen bool, page, pageSize int) ([]*models.Alert, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			mission_id,
			event_id,
			label,
			score,
			ST_X(location::geometry) as longitude,
			ST_Y(location::geometry) as latitude,
			ts_ms,
			decision,
			acknowledged,
			created_at
		FROM alerts
		WHERE mission_id = $1 AND ($2 = false OR acknowledged = false)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, missionID, onlyOpen, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		var decision string
		err := rows.Scan(
			&alert.ID,
			&alert.MissionID,
			&alert.EventID,
			&alert.Label,
			&alert.Score,
			&alert.Coord.Lon,
			&alert.Coord.Lat,
			&alert.TimestampMS,
			&decision,
			&alert.Acknowledged,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alert.Decision, err = models.ParseDecision(decision)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored decision: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListAlerts: %w", err)
	}
	return alerts, nil
}

// AcknowledgeAlert помечает тревогу подтвержденной
func (r *EventRepository) AcknowledgeAlert(ctx context.Context, missionID, alertID uuid.UUID) error {
	query := `UPDATE alerts SET acknowledged = true WHERE id = $1 AND mission_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, alertID, missionID)
	if err != nil {
		return fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s: %w", alertID, service.ErrAlertNotFound)
	}
	return nil
}

// GetDecisionStats возвращает счетчики решений за последние minutes минут
// и число неподтвержденных тревог
func (r *EventRepository) GetDecisionStats(ctx context.Context, missionID uuid.UUID, minutes int) (*models.DecisionStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE decision = 'record'),
			COUNT(*) FILTER (WHERE decision = 'surface'),
			COUNT(*) FILTER (WHERE decision = 'auto-dispatch'),
			(SELECT COUNT(*) FROM alerts WHERE mission_id = $1 AND acknowledged = false)
		FROM detection_events
		WHERE mission_id = $1 AND processed_at >= NOW() - ($2 * INTERVAL '1 minute');
	`
	stats := &models.DecisionStats{}
	err := r.db.QueryRow(ctx, query, missionID, minutes).Scan(
		&stats.Recorded,
		&stats.Surfaced,
		&stats.AutoDispatched,
		&stats.OpenAlerts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get decision stats: %w", err)
	}
	return stats, nil
}
