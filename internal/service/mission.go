package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/mission_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Ошибки уровня сервиса, по которым хендлеры выбирают HTTP-статус.
var (
	ErrMissionNotFound  = errors.New("mission not found")
	ErrMissionNotActive = errors.New("mission is not active")
	ErrAreaNotFound     = errors.New("area of interest not found")
	ErrAssetNotFound    = errors.New("critical asset not found")
	ErrAlertNotFound    = errors.New("alert not found")
)

// MissionRepository определяет контракт для работы с бд миссий и их геометрии
type MissionRepository interface {
	CreateMission(ctx context.Context, mission *models.Mission) error
	GetMissionByID(ctx context.Context, id uuid.UUID) (*models.Mission, error)
	UpdateMission(ctx context.Context, mission *models.Mission) error
	CompleteMission(ctx context.Context, id uuid.UUID) error
	ListMissions(ctx context.Context, page, pageSize int) ([]*models.Mission, error)

	CreateArea(ctx context.Context, area *models.AreaOfInterest) error
	ListAreas(ctx context.Context, missionID uuid.UUID) ([]*models.AreaOfInterest, error)
	DeleteArea(ctx context.Context, missionID, areaID uuid.UUID) error

	CreateAsset(ctx context.Context, asset *models.CriticalAsset) error
	ListAssets(ctx context.Context, missionID uuid.UUID) ([]*models.CriticalAsset, error)
	DeleteAsset(ctx context.Context, missionID, assetID uuid.UUID) error

	GetContextFromCache(ctx context.Context, missionID uuid.UUID) (*models.MissionContext, error)
	SetContextCache(ctx context.Context, missionID uuid.UUID, mctx *models.MissionContext) error
	InvalidateContextCache(ctx context.Context, missionID uuid.UUID) error
}

// MissionService определяет контракт для бизнес-логики управления миссиями
type MissionService interface {
	CreateMission(ctx context.Context, mission *models.Mission) error
	GetMission(ctx context.Context, id uuid.UUID) (*models.Mission, error)
	UpdateMission(ctx context.Context, mission *models.Mission) error
	CompleteMission(ctx context.Context, id uuid.UUID) error
	ListMissions(ctx context.Context, page, pageSize int) ([]*models.Mission, error)

	AddArea(ctx context.Context, area *models.AreaOfInterest) error
	ListAreas(ctx context.Context, missionID uuid.UUID) ([]*models.AreaOfInterest, error)
	RemoveArea(ctx context.Context, missionID, areaID uuid.UUID) error

	AddAsset(ctx context.Context, asset *models.CriticalAsset) error
	ListAssets(ctx context.Context, missionID uuid.UUID) ([]*models.CriticalAsset, error)
	RemoveAsset(ctx context.Context, missionID, assetID uuid.UUID) error

	// GetMissionContext возвращает снимок геозон и охраняемых объектов
	// миссии для движка значимости, через кэш.
	GetMissionContext(ctx context.Context, missionID uuid.UUID) (*models.MissionContext, error)
}

type missionService struct {
	repo     MissionRepository
	sessions *SessionManager
	logger   *logrus.Logger
}

func NewMissionService(repo MissionRepository, sessions *SessionManager, logger *logrus.Logger) MissionService {
	return &missionService{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// CreateMission создает миссию в статусе active
func (s *missionService) CreateMission(ctx context.Context, mission *models.Mission) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "mission",
		"method":  "CreateMission",
		"name":    mission.Name,
	})
	log.Info("Attempting to create a new mission")

	mission.Status = models.MissionStatusActive
	if err := s.repo.CreateMission(ctx, mission); err != nil {
		log.WithError(err).Error("Failed to create mission in repository")
		return fmt.Errorf("service: could not create mission: %w", err)
	}

	log.WithField("mission_id", mission.ID).Info("Mission created successfully")
	return nil
}

// GetMission получает миссию по ID
func (s *missionService) GetMission(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "GetMission",
		"mission_id": id,
	})

	mission, err := s.repo.GetMissionByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get mission from repository")
		return nil, fmt.Errorf("service: could not get mission: %w", err)
	}
	return mission, nil
}

// UpdateMission обновляет имя, описание и статус существующей миссии.
func (s *missionService) UpdateMission(ctx context.Context, mission *models.Mission) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "UpdateMission",
		"mission_id": mission.ID,
	})
	log.Info("Attempting to update mission")

	existing, err := s.repo.GetMissionByID(ctx, mission.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent mission")
		return fmt.Errorf("service: mission %s not found for update: %w", mission.ID, err)
	}

	existing.Name = mission.Name
	existing.Description = mission.Description
	existing.Status = mission.Status

	if err := s.repo.UpdateMission(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update mission in repository")
		return fmt.Errorf("service: could not update mission: %w", err)
	}

	// Перевод в completed через update равносилен завершению: сессия
	// движка больше не нужна.
	if existing.Status == models.MissionStatusCompleted {
		s.sessions.Drop(existing.ID)
	}

	log.Info("Mission updated successfully")
	return nil
}

// CompleteMission завершает миссию и выбрасывает её сессию движка
func (s *missionService) CompleteMission(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "CompleteMission",
		"mission_id": id,
	})
	log.Info("Attempting to complete mission")

	if _, err := s.repo.GetMissionByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to complete a non-existent mission")
		return fmt.Errorf("service: mission %s not found for complete: %w", id, err)
	}

	if err := s.repo.CompleteMission(ctx, id); err != nil {
		log.WithError(err).Error("Failed to complete mission in repository")
		return fmt.Errorf("service: could not complete mission: %w", err)
	}

	s.sessions.Drop(id)

	log.Info("Mission completed successfully")
	return nil
}

// ListMissions возвращает список миссий с пагинацией
func (s *missionService) ListMissions(ctx context.Context, page, pageSize int) ([]*models.Mission, error) {
	page, pageSize = clampPage(page, pageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "mission",
		"method":    "ListMissions",
		"page":      page,
		"page_size": pageSize,
	})

	missions, err := s.repo.ListMissions(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list missions from repository")
		return nil, fmt.Errorf("service: could not list missions: %w", err)
	}

	log.WithField("count", len(missions)).Info("Missions listed successfully")
	return missions, nil
}

// AddArea добавляет геозону к активной миссии и сбрасывает кэш контекста
func (s *missionService) AddArea(ctx context.Context, area *models.AreaOfInterest) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "AddArea",
		"mission_id": area.MissionID,
		"name":       area.Name,
	})
	log.Info("Attempting to add area of interest")

	if err := s.requireActiveMission(ctx, area.MissionID); err != nil {
		log.WithError(err).Warn("Mission is not available for geometry changes")
		return err
	}

	if err := s.repo.CreateArea(ctx, area); err != nil {
		log.WithError(err).Error("Failed to create area in repository")
		return fmt.Errorf("service: could not create area: %w", err)
	}

	if err := s.repo.InvalidateContextCache(ctx, area.MissionID); err != nil {
		log.WithError(err).Warn("Failed to invalidate mission context cache")
	}

	log.WithField("area_id", area.ID).Info("Area of interest added successfully")
	return nil
}

// ListAreas возвращает геозоны миссии
func (s *missionService) ListAreas(ctx context.Context, missionID uuid.UUID) ([]*models.AreaOfInterest, error) {
	areas, err := s.repo.ListAreas(ctx, missionID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "mission",
			"method":     "ListAreas",
			"mission_id": missionID,
		}).WithError(err).Error("Failed to list areas from repository")
		return nil, fmt.Errorf("service: could not list areas: %w", err)
	}
	return areas, nil
}

// RemoveArea удаляет геозону и сбрасывает кэш контекста
func (s *missionService) RemoveArea(ctx context.Context, missionID, areaID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "RemoveArea",
		"mission_id": missionID,
		"area_id":    areaID,
	})
	log.Info("Attempting to remove area of interest")

	if err := s.repo.DeleteArea(ctx, missionID, areaID); err != nil {
		log.WithError(err).Warn("Failed to delete area in repository")
		return fmt.Errorf("service: could not delete area: %w", err)
	}

	if err := s.repo.InvalidateContextCache(ctx, missionID); err != nil {
		log.WithError(err).Warn("Failed to invalidate mission context cache")
	}

	log.Info("Area of interest removed successfully")
	return nil
}

// AddAsset добавляет охраняемый объект к активной миссии и сбрасывает кэш контекста
func (s *missionService) AddAsset(ctx context.Context, asset *models.CriticalAsset) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "AddAsset",
		"mission_id": asset.MissionID,
		"name":       asset.Name,
	})
	log.Info("Attempting to add critical asset")

	if err := s.requireActiveMission(ctx, asset.MissionID); err != nil {
		log.WithError(err).Warn("Mission is not available for geometry changes")
		return err
	}

	if err := s.repo.CreateAsset(ctx, asset); err != nil {
		log.WithError(err).Error("Failed to create asset in repository")
		return fmt.Errorf("service: could not create asset: %w", err)
	}

	if err := s.repo.InvalidateContextCache(ctx, asset.MissionID); err != nil {
		log.WithError(err).Warn("Failed to invalidate mission context cache")
	}

	log.WithField("asset_id", asset.ID).Info("Critical asset added successfully")
	return nil
}

// ListAssets возвращает охраняемые объекты миссии
func (s *missionService) ListAssets(ctx context.Context, missionID uuid.UUID) ([]*models.CriticalAsset, error) {
	assets, err := s.repo.ListAssets(ctx, missionID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "mission",
			"method":     "ListAssets",
			"mission_id": missionID,
		}).WithError(err).Error("Failed to list assets from repository")
		return nil, fmt.Errorf("service: could not list assets: %w", err)
	}
	return assets, nil
}

// RemoveAsset удаляет охраняемый объект и сбрасывает кэш контекста
func (s *missionService) RemoveAsset(ctx context.Context, missionID, assetID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "RemoveAsset",
		"mission_id": missionID,
		"asset_id":   assetID,
	})
	log.Info("Attempting to remove critical asset")

	if err := s.repo.DeleteAsset(ctx, missionID, assetID); err != nil {
		log.WithError(err).Warn("Failed to delete asset in repository")
		return fmt.Errorf("service: could not delete asset: %w", err)
	}

	if err := s.repo.InvalidateContextCache(ctx, missionID); err != nil {
		log.WithError(err).Warn("Failed to invalidate mission context cache")
	}

	log.Info("Critical asset removed successfully")
	return nil
}

// GetMissionContext возвращает снимок контекста миссии: сначала из кэша,
// при промахе собирает из бд и кладет в кэш
func (s *missionService) GetMissionContext(ctx context.Context, missionID uuid.UUID) (*models.MissionContext, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "GetMissionContext",
		"mission_id": missionID,
	})

	cached, err := s.repo.GetContextFromCache(ctx, missionID)
	if err != nil {
		log.WithError(err).Warn("Failed to read mission context cache, falling back to repository")
	}
	if cached != nil {
		return cached, nil
	}

	areas, err := s.repo.ListAreas(ctx, missionID)
	if err != nil {
		log.WithError(err).Error("Failed to list areas for mission context")
		return nil, fmt.Errorf("service: could not build mission context: %w", err)
	}
	assets, err := s.repo.ListAssets(ctx, missionID)
	if err != nil {
		log.WithError(err).Error("Failed to list assets for mission context")
		return nil, fmt.Errorf("service: could not build mission context: %w", err)
	}

	mctx := &models.MissionContext{
		AreasOfInterest: areas,
		CriticalAssets:  assets,
	}

	if err := s.repo.SetContextCache(ctx, missionID, mctx); err != nil {
		log.WithError(err).Warn("Failed to store mission context in cache")
	}

	return mctx, nil
}

func (s *missionService) requireActiveMission(ctx context.Context, missionID uuid.UUID) error {
	mission, err := s.repo.GetMissionByID(ctx, missionID)
	if err != nil {
		return fmt.Errorf("service: mission %s: %w", missionID, err)
	}
	if mission.Status != models.MissionStatusActive {
		return fmt.Errorf("service: mission %s: %w", missionID, ErrMissionNotActive)
	}
	return nil
}
