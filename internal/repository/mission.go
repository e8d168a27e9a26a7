package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/mission_alert_system/internal/models"
	"github.com/shenikar/mission_alert_system/internal/service"
)

// Срок жизни кэшированного снимка контекста миссии
const missionContextTTL = 5 * time.Minute

type MissionRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewMissionRepository(db *pgxpool.Pool, redisClient *redis.Client) service.MissionRepository {
	return &MissionRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateMission создает новую запись о миссии в бд
func (r *MissionRepository) CreateMission(ctx context.Context, mission *models.Mission) error {
	query := `
		INSERT INTO missions (name, description, status)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		mission.Name,
		mission.Description,
		mission.Status,
	).Scan(&mission.ID, &mission.CreatedAt, &mission.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}
	return nil
}

// GetMissionByID возвращает миссию по её UUID
func (r *MissionRepository) GetMissionByID(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	mission := &models.Mission{}
	query := `
		SELECT id, name, description, status, created_at, updated_at
		FROM missions
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&mission.ID,
		&mission.Name,
		&mission.Description,
		&mission.Status,
		&mission.CreatedAt,
		&mission.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("mission with id %s: %w", id, service.ErrMissionNotFound)
		}
		return nil, fmt.Errorf("failed to get mission by id: %w", err)
	}
	return mission, nil
}

// UpdateMission обновляет имя, описание и статус миссии
func (r *MissionRepository) UpdateMission(ctx context.Context, mission *models.Mission) error {
	query := `
		UPDATE missions SET
			name = $1,
			description = $2,
			status = $3,
			updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		mission.Name,
		mission.Description,
		mission.Status,
		mission.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("mission with id %s: %w", mission.ID, service.ErrMissionNotFound)
	}
	return nil
}

// CompleteMission устанавливает статус 'completed' для миссии
func (r *MissionRepository) CompleteMission(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE missions SET
			status = 'completed',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to complete mission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("mission with id %s: %w", id, service.ErrMissionNotFound)
	}
	return nil
}

// ListMissions возвращает список миссий с пагинацией
func (r *MissionRepository) ListMissions(ctx context.Context, page, pageSize int) ([]*models.Mission, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, name, description, status, created_at, updated_at
		FROM missions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	missions := make([]*models.Mission, 0)
	for rows.Next() {
		mission := &models.Mission{}
		err := rows.Scan(
			&mission.ID,
			&mission.Name,
			&mission.Description,
			&mission.Status,
			&mission.CreatedAt,
			&mission.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission row: %w", err)
		}
		missions = append(missions, mission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return missions, nil
}

// CreateArea сохраняет геозону; контур передается в PostGIS как GeoJSON
func (r *MissionRepository) CreateArea(ctx context.Context, area *models.AreaOfInterest) error {
	geojson, err := ringToGeoJSON(area.Ring)
	if err != nil {
		return fmt.Errorf("failed to encode area ring: %w", err)
	}

	query := `
		INSERT INTO areas_of_interest (mission_id, name, ring)
		VALUES ($1, $2, ST_GeomFromGeoJSON($3)::geography) RETURNING id, created_at;
	`
	err = r.db.QueryRow(ctx, query,
		area.MissionID,
		area.Name,
		geojson,
	).Scan(&area.ID, &area.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create area of interest: %w", err)
	}
	return nil
}

// ListAreas возвращает геозоны миссии
func (r *MissionRepository) ListAreas(ctx context.Context, missionID uuid.UUID) ([]*models.AreaOfInterest, error) {
	query := `
		SELECT id, mission_id, name, ST_AsGeoJSON(ring::geometry), created_at
		FROM areas_of_interest
		WHERE mission_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas of interest: %w", err)
	}
	defer rows.Close()

	areas := make([]*models.AreaOfInterest, 0)
	for rows.Next() {
		area := &models.AreaOfInterest{}
		var geojson []byte
		err := rows.Scan(
			&area.ID,
			&area.MissionID,
			&area.Name,
			&geojson,
			&area.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		area.Ring, err = ringFromGeoJSON(geojson)
		if err != nil {
			return nil, fmt.Errorf("failed to decode area ring: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListAreas: %w", err)
	}
	return areas, nil
}

// DeleteArea удаляет геозону миссии
func (r *MissionRepository) DeleteArea(ctx context.Context, missionID, areaID uuid.UUID) error {
	query := `DELETE FROM areas_of_interest WHERE id = $1 AND mission_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, areaID, missionID)
	if err != nil {
		return fmt.Errorf("failed to delete area of interest: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("area with id %s: %w", areaID, service.ErrAreaNotFound)
	}
	return nil
}

// CreateAsset сохраняет охраняемый объект
func (r *MissionRepository) CreateAsset(ctx context.Context, asset *models.CriticalAsset) error {
	query := `
		INSERT INTO critical_assets (mission_id, name, location)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		asset.MissionID,
		asset.Name,
		asset.Location.Lon,
		asset.Location.Lat,
	).Scan(&asset.ID, &asset.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create critical asset: %w", err)
	}
	return nil
}

// ListAssets возвращает охраняемые объекты миссии
func (r *MissionRepository) ListAssets(ctx context.Context, missionID uuid.UUID) ([]*models.CriticalAsset, error) {
	query := `
		SELECT
			id,
			mission_id,
			name,
			ST_X(location::geometry) as longitude,
			ST_Y(location::geometry) as latitude,
			created_at
		FROM critical_assets
		WHERE mission_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list critical assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*models.CriticalAsset, 0)
	for rows.Next() {
		asset := &models.CriticalAsset{}
		err := rows.Scan(
			&asset.ID,
			&asset.MissionID,
			&asset.Name,
			&asset.Location.Lon,
			&asset.Location.Lat,
			&asset.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListAssets: %w", err)
	}
	return assets, nil
}

// DeleteAsset удаляет охраняемый объект миссии
func (r *MissionRepository) DeleteAsset(ctx context.Context, missionID, assetID uuid.UUID) error {
	query := `DELETE FROM critical_assets WHERE id = $1 AND mission_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, assetID, missionID)
	if err != nil {
		return fmt.Errorf("failed to delete critical asset: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("asset with id %s: %w", assetID, service.ErrAssetNotFound)
	}
	return nil
}

// GetContextFromCache пытается получить снимок контекста миссии из Redis
func (r *MissionRepository) GetContextFromCache(ctx context.Context, missionID uuid.UUID) (*models.MissionContext, error) {
	key := missionContextKey(missionID)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission context from cache: %w", err)
	}

	mctx := &models.MissionContext{}
	if err := json.Unmarshal(val, mctx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mission context from cache: %w", err)
	}
	return mctx, nil
}

// SetContextCache сохраняет снимок контекста миссии в Redis
func (r *MissionRepository) SetContextCache(ctx context.Context, missionID uuid.UUID, mctx *models.MissionContext) error {
	val, err := json.Marshal(mctx)
	if err != nil {
		return fmt.Errorf("failed to marshal mission context for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, missionContextKey(missionID), val, missionContextTTL).Err(); err != nil {
		return fmt.Errorf("failed to set mission context in cache: %w", err)
	}
	return nil
}

// InvalidateContextCache удаляет снимок контекста миссии из Redis
func (r *MissionRepository) InvalidateContextCache(ctx context.Context, missionID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, missionContextKey(missionID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate mission context cache: %w", err)
	}
	return nil
}

func missionContextKey(missionID uuid.UUID) string {
	return fmt.Sprintf("mission_ctx:%s", missionID.String())
}
