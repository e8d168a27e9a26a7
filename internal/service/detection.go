package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/mission_alert_system/internal/config"
	"github.com/shenikar/mission_alert_system/internal/models"
	"github.com/shenikar/mission_alert_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// EventRepository определяет контракт для работы с бд детекций и тревог
type EventRepository interface {
	SaveDetection(ctx context.Context, record *models.DetectionRecord) error
	ListDetections(ctx context.Context, missionID uuid.UUID, page, pageSize int) ([]*models.DetectionRecord, error)

	CreateAlert(ctx context.Context, alert *models.Alert) error
	ListAlerts(ctx context.Context, missionID uuid.UUID, onlyOpen bool, page, pageSize int) ([]*models.Alert, error)
	AcknowledgeAlert(ctx context.Context, missionID, alertID uuid.UUID) error

	GetDecisionStats(ctx context.Context, missionID uuid.UUID, minutes int) (*models.DecisionStats, error)
}

// AlertBroadcaster рассылает тревоги подключенным консолям операторов
type AlertBroadcaster interface {
	Broadcast(alert *models.Alert)
}

// DetectionService определяет контракт конвейера значимости: прием событий
// детекции, прогон через движок миссии, персистенция и реакция на решение
type DetectionService interface {
	// Ingest классифицирует событие, пишет его в хронику миссии и для
	// surface/auto-dispatch создает тревогу с рассылкой и, для
	// auto-dispatch, постановкой в очередь диспетчеризации.
	Ingest(ctx context.Context, missionID uuid.UUID, event models.DetectionEvent) (*models.DetectionRecord, error)
	// Evaluate возвращает решение без записи в историю движка и в бд.
	Evaluate(ctx context.Context, missionID uuid.UUID, event models.DetectionEvent) (models.Decision, error)

	ListDetections(ctx context.Context, missionID uuid.UUID, page, pageSize int) ([]*models.DetectionRecord, error)
	ListAlerts(ctx context.Context, missionID uuid.UUID, onlyOpen bool, page, pageSize int) ([]*models.Alert, error)
	AcknowledgeAlert(ctx context.Context, missionID, alertID uuid.UUID) error
	GetStats(ctx context.Context, missionID uuid.UUID) (*models.DecisionStats, error)
}

type detectionService struct {
	events      EventRepository
	missions    MissionService
	sessions    *SessionManager
	publisher   webhook.DispatchPublisher
	broadcaster AlertBroadcaster
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewDetectionService(
	events EventRepository,
	missions MissionService,
	sessions *SessionManager,
	publisher webhook.DispatchPublisher,
	broadcaster AlertBroadcaster,
	logger *logrus.Logger,
	cfg *config.Config,
) DetectionService {
	return &detectionService{
		events:      events,
		missions:    missions,
		sessions:    sessions,
		publisher:   publisher,
		broadcaster: broadcaster,
		logger:      logger,
		cfg:         cfg,
	}
}

// Ingest прогоняет событие через движок миссии и реагирует на решение
func (s *detectionService) Ingest(ctx context.Context, missionID uuid.UUID, event models.DetectionEvent) (*models.DetectionRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "detection",
		"method":     "Ingest",
		"mission_id": missionID,
		"label":      event.Label,
	})

	mctx, err := s.missionContext(ctx, missionID)
	if err != nil {
		log.WithError(err).Warn("Mission is not available for ingest")
		return nil, err
	}

	event.Label = strings.ToLower(event.Label)
	decision, err := s.sessions.Decide(missionID, event, mctx)
	if err != nil {
		log.WithError(err).Warn("Detection event rejected by engine")
		return nil, fmt.Errorf("service: could not classify detection: %w", err)
	}

	record := &models.DetectionRecord{
		MissionID:   missionID,
		Label:       event.Label,
		Score:       event.Score,
		Coord:       event.Coord,
		TimestampMS: event.TimestampMS,
		Decision:    decision,
	}
	if err := s.events.SaveDetection(ctx, record); err != nil {
		log.WithError(err).Error("Failed to save detection record")
		return nil, fmt.Errorf("service: could not save detection: %w", err)
	}

	log = log.WithField("decision", decision.String())
	if decision < models.DecisionSurface {
		log.Debug("Detection recorded")
		return record, nil
	}

	alert := &models.Alert{
		MissionID:   missionID,
		EventID:     record.ID,
		Label:       record.Label,
		Score:       record.Score,
		Coord:       record.Coord,
		TimestampMS: record.TimestampMS,
		Decision:    decision,
	}
	if err := s.events.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	s.broadcaster.Broadcast(alert)

	if decision == models.DecisionAutoDispatch {
		// Постановка в очередь best-effort: тревога уже записана и
		// разослана, потерю фиксируем в логе.
		if err := s.publisher.Publish(ctx, webhook.NewDispatchEvent(alert)); err != nil {
			log.WithError(err).Error("Failed to publish dispatch event")
		}
	}

	log.WithField("alert_id", alert.ID).Info("Alert raised for detection")
	return record, nil
}

// Evaluate возвращает решение движка без какой-либо записи
func (s *detectionService) Evaluate(ctx context.Context, missionID uuid.UUID, event models.DetectionEvent) (models.Decision, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "detection",
		"method":     "Evaluate",
		"mission_id": missionID,
		"label":      event.Label,
	})

	mctx, err := s.missionContext(ctx, missionID)
	if err != nil {
		log.WithError(err).Warn("Mission is not available for evaluate")
		return models.DecisionIgnore, err
	}

	event.Label = strings.ToLower(event.Label)
	decision, err := s.sessions.Peek(missionID, event, mctx)
	if err != nil {
		log.WithError(err).Warn("Detection event rejected by engine")
		return models.DecisionIgnore, fmt.Errorf("service: could not classify detection: %w", err)
	}
	return decision, nil
}

// ListDetections возвращает хронику детекций миссии с пагинацией
func (s *detectionService) ListDetections(ctx context.Context, missionID uuid.UUID, page, pageSize int) ([]*models.DetectionRecord, error) {
	page, pageSize = clampPage(page, pageSize)

	records, err := s.events.ListDetections(ctx, missionID, page, pageSize)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "detection",
			"method":     "ListDetections",
			"mission_id": missionID,
		}).WithError(err).Error("Failed to list detections from repository")
		return nil, fmt.Errorf("service: could not list detections: %w", err)
	}
	return records, nil
}

// ListAlerts возвращает тревоги миссии, опционально только неподтвержденные
func (s *detectionService) ListAlerts(ctx context.Context, missionID uuid.UUID, onlyOpen bool, page, pageSize int) ([]*models.Alert, error) {
	page, pageSize = clampPage(page, pageSize)

	alerts, err := s.events.ListAlerts(ctx, missionID, onlyOpen, page, pageSize)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "detection",
			"method":     "ListAlerts",
			"mission_id": missionID,
		}).WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// AcknowledgeAlert помечает тревогу подтвержденной оператором
func (s *detectionService) AcknowledgeAlert(ctx context.Context, missionID, alertID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "detection",
		"method":     "AcknowledgeAlert",
		"mission_id": missionID,
		"alert_id":   alertID,
	})

	if err := s.events.AcknowledgeAlert(ctx, missionID, alertID); err != nil {
		log.WithError(err).Warn("Failed to acknowledge alert")
		return fmt.Errorf("service: could not acknowledge alert: %w", err)
	}

	log.Info("Alert acknowledged")
	return nil
}

// GetStats возвращает счетчики решений за настроенное окно времени
func (s *detectionService) GetStats(ctx context.Context, missionID uuid.UUID) (*models.DecisionStats, error) {
	stats, err := s.events.GetDecisionStats(ctx, missionID, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "detection",
			"method":     "GetStats",
			"mission_id": missionID,
		}).WithError(err).Error("Failed to get decision stats from repository")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return stats, nil
}

// missionContext проверяет, что миссия существует и активна, и возвращает
// снимок её геометрии
func (s *detectionService) missionContext(ctx context.Context, missionID uuid.UUID) (*models.MissionContext, error) {
	mission, err := s.missions.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission.Status != models.MissionStatusActive {
		return nil, fmt.Errorf("service: mission %s: %w", missionID, ErrMissionNotActive)
	}
	return s.missions.GetMissionContext(ctx, missionID)
}

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
