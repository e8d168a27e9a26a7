package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/mission_alert_system/internal/config"
	"github.com/shenikar/mission_alert_system/internal/engine"
	"github.com/shenikar/mission_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	missionService   service.MissionService
	detectionService service.DetectionService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(missionService service.MissionService, detectionService service.DetectionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		missionService:   missionService,
		detectionService: detectionService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError сопоставляет ошибку сервиса с HTTP-статусом ответа
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, service.ErrMissionNotFound):
		status, msg = http.StatusNotFound, "mission not found"
	case errors.Is(err, service.ErrAreaNotFound):
		status, msg = http.StatusNotFound, "area not found"
	case errors.Is(err, service.ErrAssetNotFound):
		status, msg = http.StatusNotFound, "asset not found"
	case errors.Is(err, service.ErrAlertNotFound):
		status, msg = http.StatusNotFound, "alert not found"
	case errors.Is(err, service.ErrMissionNotActive):
		status, msg = http.StatusConflict, "mission is not active"
	case errors.Is(err, engine.ErrInvalidEvent):
		status, msg = http.StatusBadRequest, "invalid detection event"
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Service call failed")
	} else {
		log.WithError(err).Warn("Request rejected by service")
	}
	c.JSON(status, gin.H{"error": msg})
}

// @Summary Create a new mission
// @Description Create a new mission in the active status. Requires API key.
// @Tags Missions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param mission body CreateMissionRequest true "Mission creation request"
// @Success 201 {object} MissionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions [post]
func (h *Handler) createMission(c *gin.Context) {
	var input CreateMissionRequest
	log := h.logger.WithField("method", "createMission")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToMissionModel(input)
	if err := h.missionService.CreateMission(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToMissionResponse(model))
}

// @Summary Get a list of missions
// @Description Get a paginated list of all missions. Requires API key.
// @Tags Missions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} MissionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions [get]
func (h *Handler) listMissions(c *gin.Context) {
	log := h.logger.WithField("method", "listMissions")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	missions, err := h.missionService.ListMissions(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToMissionResponses(missions))
}

// @Summary Get mission by ID
// @Description Get a single mission by its ID. Requires API key.
// @Tags Missions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Success 200 {object} MissionResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id} [get]
func (h *Handler) getMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "getMission").WithField("id", id)

	mission, err := h.missionService.GetMission(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMissionResponse(mission))
}

// @Summary Update an existing mission
// @Description Update name, description and status of a mission by ID. Requires API key.
// @Tags Missions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param mission body UpdateMissionRequest true "Mission update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid mission ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id} [put]
func (h *Handler) updateMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "updateMission").WithField("id", id)

	var input UpdateMissionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToMissionModel(input)
	model.ID = id

	if err := h.missionService.UpdateMission(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Complete a mission
// @Description Complete a mission by its ID. The engine session and its accumulated state are discarded. Requires API key.
// @Tags Missions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id} [delete]
func (h *Handler) completeMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "completeMission").WithField("id", id)

	if err := h.missionService.CompleteMission(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add an area of interest
// @Description Attach a polygon area of interest to an active mission. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param area body CreateAreaRequest true "Area creation request"
// @Success 201 {object} AreaResponse
// @Failure 400 {object} map[string]string "Invalid mission ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 409 {object} map[string]string "Mission is not active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/areas [post]
func (h *Handler) addArea(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "addArea").WithField("mission_id", missionID)

	var input CreateAreaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAreaModel(missionID, input)
	if err := h.missionService.AddArea(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAreaResponse(model))
}

// @Summary List areas of interest
// @Description Get all areas of interest for a mission. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Success 200 {array} AreaResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/areas [get]
func (h *Handler) listAreas(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "listAreas").WithField("mission_id", missionID)

	areas, err := h.missionService.ListAreas(c.Request.Context(), missionID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAreaResponses(areas))
}

// @Summary Remove an area of interest
// @Description Remove an area of interest from a mission. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param areaID path string true "Area ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid mission or area ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Area not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/areas/{areaID} [delete]
func (h *Handler) removeArea(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	areaID, err := uuid.Parse(c.Param("areaID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "removeArea").WithField("mission_id", missionID).WithField("area_id", areaID)

	if err := h.missionService.RemoveArea(c.Request.Context(), missionID, areaID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add a critical asset
// @Description Attach a point critical asset to an active mission. Requires API key.
// @Tags Assets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param asset body CreateAssetRequest true "Asset creation request"
// @Success 201 {object} AssetResponse
// @Failure 400 {object} map[string]string "Invalid mission ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 409 {object} map[string]string "Mission is not active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/assets [post]
func (h *Handler) addAsset(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "addAsset").WithField("mission_id", missionID)

	var input CreateAssetRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAssetModel(missionID, input)
	if err := h.missionService.AddAsset(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAssetResponse(model))
}

// @Summary List critical assets
// @Description Get all critical assets for a mission. Requires API key.
// @Tags Assets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Success 200 {array} AssetResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/assets [get]
func (h *Handler) listAssets(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "listAssets").WithField("mission_id", missionID)

	assets, err := h.missionService.ListAssets(c.Request.Context(), missionID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAssetResponses(assets))
}

// @Summary Remove a critical asset
// @Description Remove a critical asset from a mission. Requires API key.
// @Tags Assets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param assetID path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid mission or asset ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/assets/{assetID} [delete]
func (h *Handler) removeAsset(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	assetID, err := uuid.Parse(c.Param("assetID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}
	log := h.logger.WithField("method", "removeAsset").WithField("mission_id", missionID).WithField("asset_id", assetID)

	if err := h.missionService.RemoveAsset(c.Request.Context(), missionID, assetID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Ingest a detection event
// @Description Run a detection event through the mission's significance engine, persist the decision and react to it. Requires API key.
// @Tags Detections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param detection body DetectionRequest true "Detection event"
// @Success 201 {object} DetectionResponse
// @Failure 400 {object} map[string]string "Invalid mission ID, request body or detection event"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 409 {object} map[string]string "Mission is not active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/detections [post]
func (h *Handler) ingestDetection(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "ingestDetection").WithField("mission_id", missionID)

	var input DetectionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.detectionService.Ingest(c.Request.Context(), missionID, DTOToDetectionEvent(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToDetectionResponse(record))
}

// @Summary Evaluate a detection event without recording it
// @Description Compute the decision the engine would make for the event, without advancing the mission's detection history. Requires API key.
// @Tags Detections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param detection body DetectionRequest true "Detection event"
// @Success 200 {object} EvaluationResponse
// @Failure 400 {object} map[string]string "Invalid mission ID, request body or detection event"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 409 {object} map[string]string "Mission is not active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/detections/evaluate [post]
func (h *Handler) evaluateDetection(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "evaluateDetection").WithField("mission_id", missionID)

	var input DetectionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := h.detectionService.Evaluate(c.Request.Context(), missionID, DTOToDetectionEvent(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, EvaluationResponse{Decision: decision.String()})
}

// @Summary Get the mission detection timeline
// @Description Get a paginated timeline of detection records with their decisions, newest first. Requires API key.
// @Tags Detections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} DetectionResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "getTimeline").WithField("mission_id", missionID)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	records, err := h.detectionService.ListDetections(c.Request.Context(), missionID, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDetectionResponses(records))
}

// @Summary Get mission alerts
// @Description Get a paginated list of mission alerts, optionally only the unacknowledged ones. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param open query bool false "Return only unacknowledged alerts" default(false)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "listAlerts").WithField("mission_id", missionID)
	onlyOpen, _ := strconv.ParseBool(c.DefaultQuery("open", "false"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	alerts, err := h.detectionService.ListAlerts(c.Request.Context(), missionID, onlyOpen, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Acknowledge an alert
// @Description Mark an alert as acknowledged by the operator. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Param alertID path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid mission or alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/alerts/{alertID}/ack [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	alertID, err := uuid.Parse(c.Param("alertID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("mission_id", missionID).WithField("alert_id", alertID)

	if err := h.detectionService.AcknowledgeAlert(c.Request.Context(), missionID, alertID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get mission decision statistics
// @Description Get counts of engine decisions and open alerts over the configured trailing window. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Mission ID"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "getStats").WithField("mission_id", missionID)

	stats, err := h.detectionService.GetStats(c.Request.Context(), missionID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
