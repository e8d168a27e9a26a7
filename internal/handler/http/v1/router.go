package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Все маршруты миссий закрыты API-ключом
	missions := api.Group("/missions", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		missions.POST("", h.createMission)
		missions.GET("", h.listMissions)
		missions.GET("/:id", h.getMission)
		missions.PUT("/:id", h.updateMission)
		missions.DELETE("/:id", h.completeMission)

		// Геометрия миссии
		missions.POST("/:id/areas", h.addArea)
		missions.GET("/:id/areas", h.listAreas)
		missions.DELETE("/:id/areas/:areaID", h.removeArea)
		missions.POST("/:id/assets", h.addAsset)
		missions.GET("/:id/assets", h.listAssets)
		missions.DELETE("/:id/assets/:assetID", h.removeAsset)

		// Конвейер детекций
		missions.POST("/:id/detections", h.ingestDetection)
		missions.POST("/:id/detections/evaluate", h.evaluateDetection)
		missions.GET("/:id/timeline", h.getTimeline)

		// Тревоги и статистика
		missions.GET("/:id/alerts", h.listAlerts)
		missions.POST("/:id/alerts/:alertID/ack", h.acknowledgeAlert)
		missions.GET("/:id/stats", h.getStats)
	}

	// Маршрут Health-check, открыт для проб без ключа
	api.GET("/system/health", h.healthCheck)
}
