package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/mission_alert_system/internal/config"
	"github.com/shenikar/mission_alert_system/internal/engine"
	"github.com/shenikar/mission_alert_system/internal/models"
	"github.com/shenikar/mission_alert_system/internal/service"
	"github.com/shenikar/mission_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockMissionService, *mocks.MockDetectionService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	missionMock := mocks.NewMockMissionService(ctrl)
	detectionMock := mocks.NewMockDetectionService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(missionMock, detectionMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, missionMock, detectionMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func TestCreateMission_Success(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := CreateMissionRequest{
		Name:        "Test Mission",
		Description: "Perimeter patrol",
	}
	expectedMission := &models.Mission{
		ID:          missionID,
		Name:        reqBody.Name,
		Description: reqBody.Description,
		Status:      models.MissionStatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	missionMock.EXPECT().
		CreateMission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Mission) error {
			*m = *expectedMission // Обновляем переданную миссию
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/missions", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp MissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, missionID, resp.ID)
	assert.Equal(t, reqBody.Name, resp.Name)
	assert.Equal(t, models.MissionStatusActive, resp.Status)
}

func TestCreateMission_InvalidJSON(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)

	missionMock.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/missions", bytes.NewBufferString(`{"name": "test"`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateMission_ValidationError(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	reqBody := CreateMissionRequest{ // Отсутствует Name
		Description: "Perimeter patrol",
	}

	missionMock.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/missions", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestCreateMission_ServiceError(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	reqBody := CreateMissionRequest{Name: "Test Mission"}
	serviceError := errors.New("failed to create mission in service")

	missionMock.EXPECT().
		CreateMission(gomock.Any(), gomock.Any()).
		Return(serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/missions", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetMission_Success(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	expectedMission := &models.Mission{
		ID:     missionID,
		Name:   "Retrieved Mission",
		Status: models.MissionStatusActive,
	}

	missionMock.EXPECT().GetMission(gomock.Any(), missionID).Return(expectedMission, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/missions/%s", missionID.String()), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, missionID, resp.ID)
	assert.Equal(t, expectedMission.Name, resp.Name)
}

func TestGetMission_InvalidID(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)

	missionMock.EXPECT().GetMission(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/missions/invalid-uuid", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid mission ID")
}

func TestGetMission_NotFound(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	serviceError := fmt.Errorf("service: could not get mission: %w", service.ErrMissionNotFound)

	missionMock.EXPECT().GetMission(gomock.Any(), missionID).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/missions/%s", missionID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "mission not found")
}

func TestGetMission_ServiceError(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	serviceError := errors.New("database error")

	missionMock.EXPECT().GetMission(gomock.Any(), missionID).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/missions/%s", missionID.String()), nil, authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code) // Нераспознанная ошибка сервиса отдается как 500
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListMissions_Success(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	expectedMissions := []*models.Mission{
		{ID: uuid.New(), Name: "Mission 1", Status: models.MissionStatusActive},
		{ID: uuid.New(), Name: "Mission 2", Status: models.MissionStatusCompleted},
	}

	missionMock.EXPECT().ListMissions(gomock.Any(), 1, 10).Return(expectedMissions, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/missions?page=1&pageSize=10", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []MissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedMissions[0].Name, resp[0].Name)
}

func TestUpdateMission_Success(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := UpdateMissionRequest{
		Name:        "Updated Name",
		Description: "Updated Description",
		Status:      models.MissionStatusCompleted,
	}

	missionMock.EXPECT().
		UpdateMission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Mission) error {
			assert.Equal(t, missionID, m.ID)
			assert.Equal(t, reqBody.Name, m.Name)
			assert.Equal(t, reqBody.Status, m.Status)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/missions/%s", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateMission_InvalidStatus(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := UpdateMissionRequest{
		Name:   "Updated Name",
		Status: "paused", // Недопустимый статус
	}

	missionMock.EXPECT().UpdateMission(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/missions/%s", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Status' failed on the 'oneof' tag")
}

func TestUpdateMission_NotFound(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := UpdateMissionRequest{
		Name:   "Updated Name",
		Status: models.MissionStatusActive,
	}
	serviceError := fmt.Errorf("service: mission %s not found for update: %w", missionID, service.ErrMissionNotFound)

	missionMock.EXPECT().UpdateMission(gomock.Any(), gomock.Any()).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/missions/%s", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "mission not found")
}

func TestCompleteMission_Success(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()

	missionMock.EXPECT().CompleteMission(gomock.Any(), missionID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/missions/%s", missionID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCompleteMission_NotFound(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	serviceError := fmt.Errorf("service: mission %s not found for complete: %w", missionID, service.ErrMissionNotFound)

	missionMock.EXPECT().CompleteMission(gomock.Any(), missionID).Return(serviceError).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/missions/%s", missionID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "mission not found")
}

func TestAddArea_Success(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	areaID := uuid.New()
	reqBody := CreateAreaRequest{
		Name: "Sector A",
		Ring: []RingPoint{
			{Latitude: 55.745, Longitude: 37.605},
			{Latitude: 55.745, Longitude: 37.615},
			{Latitude: 55.755, Longitude: 37.615},
			{Latitude: 55.755, Longitude: 37.605},
		},
	}

	missionMock.EXPECT().
		AddArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, area *models.AreaOfInterest) error {
			assert.Equal(t, missionID, area.MissionID)
			assert.Len(t, area.Ring, 4)
			area.ID = areaID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/areas", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AreaResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, areaID, resp.ID)
	assert.Len(t, resp.Ring, 4)
}

func TestAddArea_TooFewPoints(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := CreateAreaRequest{
		Name: "Degenerate",
		Ring: []RingPoint{
			{Latitude: 55.745, Longitude: 37.605},
			{Latitude: 55.755, Longitude: 37.615},
		},
	}

	missionMock.EXPECT().AddArea(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/areas", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Ring' failed on the 'min' tag")
}

func TestAddArea_MissionNotActive(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := CreateAreaRequest{
		Name: "Sector B",
		Ring: []RingPoint{
			{Latitude: 55.745, Longitude: 37.605},
			{Latitude: 55.745, Longitude: 37.615},
			{Latitude: 55.755, Longitude: 37.615},
		},
	}
	serviceError := fmt.Errorf("service: mission %s: %w", missionID, service.ErrMissionNotActive)

	missionMock.EXPECT().AddArea(gomock.Any(), gomock.Any()).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/areas", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "mission is not active")
}

func TestRemoveArea_NotFound(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	areaID := uuid.New()
	serviceError := fmt.Errorf("service: could not delete area: %w", service.ErrAreaNotFound)

	missionMock.EXPECT().RemoveArea(gomock.Any(), missionID, areaID).Return(serviceError).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/missions/%s/areas/%s", missionID.String(), areaID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "area not found")
}

func TestAddAsset_Success(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()
	assetID := uuid.New()
	reqBody := CreateAssetRequest{
		Name:      "Substation-7",
		Latitude:  55.7500,
		Longitude: 37.6100,
	}

	missionMock.EXPECT().
		AddAsset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, asset *models.CriticalAsset) error {
			assert.Equal(t, missionID, asset.MissionID)
			assert.Equal(t, reqBody.Latitude, asset.Location.Lat)
			assert.Equal(t, reqBody.Longitude, asset.Location.Lon)
			asset.ID = assetID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/assets", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AssetResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, assetID, resp.ID)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestRemoveAsset_InvalidID(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)
	missionID := uuid.New()

	missionMock.EXPECT().RemoveAsset(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/missions/%s/assets/invalid-uuid", missionID.String()), nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid asset ID")
}

func TestIngestDetection_Success(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := DetectionRequest{
		Label:       "fire",
		Score:       0.96,
		Latitude:    55.7500,
		Longitude:   37.6100,
		TimestampMS: 15000,
	}
	expectedRecord := &models.DetectionRecord{
		ID:          12,
		MissionID:   missionID,
		Label:       "fire",
		Score:       0.96,
		Coord:       models.Coordinate{Lon: 37.6100, Lat: 55.7500},
		TimestampMS: 15000,
		Decision:    models.DecisionAutoDispatch,
		ProcessedAt: time.Now(),
	}

	detectionMock.EXPECT().
		Ingest(gomock.Any(), missionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, event models.DetectionEvent) (*models.DetectionRecord, error) {
			assert.Equal(t, reqBody.Label, event.Label)
			assert.Equal(t, reqBody.Score, event.Score)
			assert.Equal(t, reqBody.Latitude, event.Coord.Lat)
			assert.Equal(t, reqBody.Longitude, event.Coord.Lon)
			assert.Equal(t, reqBody.TimestampMS, event.TimestampMS)
			return expectedRecord, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/detections", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp DetectionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, "auto-dispatch", resp.Decision)
}

func TestIngestDetection_ScoreOutOfRange(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := DetectionRequest{
		Label:       "fire",
		Score:       1.5, // Вне диапазона [0, 1]
		Latitude:    55.7500,
		Longitude:   37.6100,
		TimestampMS: 15000,
	}

	detectionMock.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/detections", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Score' failed on the 'lte' tag")
}

func TestIngestDetection_StaleEvent(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := DetectionRequest{
		Label:       "fire",
		Score:       0.9,
		Latitude:    55.7500,
		Longitude:   37.6100,
		TimestampMS: 1000,
	}
	serviceError := fmt.Errorf("service: could not classify detection: %w", engine.ErrInvalidEvent)

	detectionMock.EXPECT().Ingest(gomock.Any(), missionID, gomock.Any()).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/detections", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid detection event")
}

func TestIngestDetection_MissionNotActive(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := DetectionRequest{
		Label:       "person",
		Score:       0.93,
		Latitude:    55.7500,
		Longitude:   37.6100,
		TimestampMS: 2000,
	}
	serviceError := fmt.Errorf("service: mission %s: %w", missionID, service.ErrMissionNotActive)

	detectionMock.EXPECT().Ingest(gomock.Any(), missionID, gomock.Any()).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/detections", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "mission is not active")
}

func TestEvaluateDetection_Success(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	reqBody := DetectionRequest{
		Label:       "chemical",
		Score:       0.88,
		Latitude:    55.7500,
		Longitude:   37.6100,
		TimestampMS: 3000,
	}

	detectionMock.EXPECT().Evaluate(gomock.Any(), missionID, gomock.Any()).Return(models.DecisionSurface, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/detections/evaluate", missionID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EvaluationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "surface", resp.Decision)
}

func TestGetTimeline_Success(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	expectedRecords := []*models.DetectionRecord{
		{ID: 2, MissionID: missionID, Label: "person", Decision: models.DecisionSurface},
		{ID: 1, MissionID: missionID, Label: "vehicle", Decision: models.DecisionRecord},
	}

	detectionMock.EXPECT().ListDetections(gomock.Any(), missionID, 1, 20).Return(expectedRecords, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/missions/%s/timeline", missionID.String()), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []DetectionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "surface", resp[0].Decision)
}

func TestListAlerts_OnlyOpen(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	expectedAlerts := []*models.Alert{
		{ID: uuid.New(), MissionID: missionID, Label: "fire", Decision: models.DecisionAutoDispatch},
	}

	detectionMock.EXPECT().ListAlerts(gomock.Any(), missionID, true, 1, 20).Return(expectedAlerts, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/missions/%s/alerts?open=true", missionID.String()), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "auto-dispatch", resp[0].Decision)
}

func TestAcknowledgeAlert_Success(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	alertID := uuid.New()

	detectionMock.EXPECT().AcknowledgeAlert(gomock.Any(), missionID, alertID).Return(nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/alerts/%s/ack", missionID.String(), alertID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAcknowledgeAlert_NotFound(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	alertID := uuid.New()
	serviceError := fmt.Errorf("service: could not acknowledge alert: %w", service.ErrAlertNotFound)

	detectionMock.EXPECT().AcknowledgeAlert(gomock.Any(), missionID, alertID).Return(serviceError).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/missions/%s/alerts/%s/ack", missionID.String(), alertID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "alert not found")
}

func TestGetStats_Success(t *testing.T) {
	_, _, detectionMock, router := newTestHandler(t)
	missionID := uuid.New()
	expectedStats := &models.DecisionStats{
		Recorded:       120,
		Surfaced:       7,
		AutoDispatched: 2,
		OpenAlerts:     4,
	}

	detectionMock.EXPECT().GetStats(gomock.Any(), missionID).Return(expectedStats, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/missions/%s/stats", missionID.String()), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedStats.Recorded, resp.Recorded)
	assert.Equal(t, expectedStats.OpenAlerts, resp.OpenAlerts)
}

func TestMissionRoutes_RequireAPIKey(t *testing.T) {
	_, missionMock, _, router := newTestHandler(t)

	missionMock.EXPECT().ListMissions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/missions", nil) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	// Health-check доступен без ключа
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Ключ принимается и через заголовок Authorization: Bearer
	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
