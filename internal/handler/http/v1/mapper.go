package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/mission_alert_system/internal/models"
)

// DTOToMissionModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToMissionModel(dto any) *models.Mission {
	switch v := dto.(type) {
	case CreateMissionRequest:
		return &models.Mission{
			Name:        v.Name,
			Description: v.Description,
		}
	case UpdateMissionRequest:
		return &models.Mission{
			Name:        v.Name,
			Description: v.Description,
			Status:      v.Status,
		}
	}
	return nil
}

// ModelToMissionResponse преобразует доменную модель в DTO для ответа
func ModelToMissionResponse(model *models.Mission) *MissionResponse {
	return &MissionResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToMissionResponses преобразует слайс моделей в слайс DTO
func ModelsToMissionResponses(models []*models.Mission) []*MissionResponse {
	responses := make([]*MissionResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToMissionResponse(model)
	}
	return responses
}

// DTOToAreaModel преобразует DTO геозоны в доменную модель
func DTOToAreaModel(missionID uuid.UUID, dto CreateAreaRequest) *models.AreaOfInterest {
	ring := make([]models.Coordinate, len(dto.Ring))
	for i, p := range dto.Ring {
		ring[i] = models.Coordinate{Lon: p.Longitude, Lat: p.Latitude}
	}
	return &models.AreaOfInterest{
		MissionID: missionID,
		Name:      dto.Name,
		Ring:      ring,
	}
}

// ModelToAreaResponse преобразует доменную модель геозоны в DTO для ответа
func ModelToAreaResponse(model *models.AreaOfInterest) *AreaResponse {
	ring := make([]RingPoint, len(model.Ring))
	for i, c := range model.Ring {
		ring[i] = RingPoint{Latitude: c.Lat, Longitude: c.Lon}
	}
	return &AreaResponse{
		ID:        model.ID,
		MissionID: model.MissionID,
		Name:      model.Name,
		Ring:      ring,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToAreaResponses преобразует слайс моделей геозон в слайс DTO
func ModelsToAreaResponses(models []*models.AreaOfInterest) []*AreaResponse {
	responses := make([]*AreaResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAreaResponse(model)
	}
	return responses
}

// DTOToAssetModel преобразует DTO охраняемого объекта в доменную модель
func DTOToAssetModel(missionID uuid.UUID, dto CreateAssetRequest) *models.CriticalAsset {
	return &models.CriticalAsset{
		MissionID: missionID,
		Name:      dto.Name,
		Location:  models.Coordinate{Lon: dto.Longitude, Lat: dto.Latitude},
	}
}

// ModelToAssetResponse преобразует доменную модель объекта в DTO для ответа
func ModelToAssetResponse(model *models.CriticalAsset) *AssetResponse {
	return &AssetResponse{
		ID:        model.ID,
		MissionID: model.MissionID,
		Name:      model.Name,
		Latitude:  model.Location.Lat,
		Longitude: model.Location.Lon,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToAssetResponses преобразует слайс моделей объектов в слайс DTO
func ModelsToAssetResponses(models []*models.CriticalAsset) []*AssetResponse {
	responses := make([]*AssetResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAssetResponse(model)
	}
	return responses
}

// DTOToDetectionEvent преобразует DTO детекции в событие движка
func DTOToDetectionEvent(dto DetectionRequest) models.DetectionEvent {
	return models.DetectionEvent{
		Label:       dto.Label,
		Score:       dto.Score,
		Coord:       models.Coordinate{Lon: dto.Longitude, Lat: dto.Latitude},
		TimestampMS: dto.TimestampMS,
	}
}

// ModelToDetectionResponse преобразует запись хроники в DTO для ответа
func ModelToDetectionResponse(model *models.DetectionRecord) *DetectionResponse {
	return &DetectionResponse{
		ID:          model.ID,
		MissionID:   model.MissionID,
		Label:       model.Label,
		Score:       model.Score,
		Latitude:    model.Coord.Lat,
		Longitude:   model.Coord.Lon,
		TimestampMS: model.TimestampMS,
		Decision:    model.Decision.String(),
		ProcessedAt: model.ProcessedAt,
	}
}

// ModelsToDetectionResponses преобразует слайс записей хроники в слайс DTO
func ModelsToDetectionResponses(models []*models.DetectionRecord) []*DetectionResponse {
	responses := make([]*DetectionResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToDetectionResponse(model)
	}
	return responses
}

// ModelToAlertResponse преобразует доменную модель тревоги в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:           model.ID,
		MissionID:    model.MissionID,
		EventID:      model.EventID,
		Label:        model.Label,
		Score:        model.Score,
		Latitude:     model.Coord.Lat,
		Longitude:    model.Coord.Lon,
		TimestampMS:  model.TimestampMS,
		Decision:     model.Decision.String(),
		Acknowledged: model.Acknowledged,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс тревог в слайс DTO
func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// StatsToResponse преобразует счетчики решений в DTO для ответа
func StatsToResponse(stats *models.DecisionStats) StatsResponse {
	return StatsResponse{
		Recorded:       stats.Recorded,
		Surfaced:       stats.Surfaced,
		AutoDispatched: stats.AutoDispatched,
		OpenAlerts:     stats.OpenAlerts,
	}
}
