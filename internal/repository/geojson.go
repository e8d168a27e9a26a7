package repository

import (
	"encoding/json"
	"fmt"

	"github.com/shenikar/mission_alert_system/internal/models"
)

// geoJSONPolygon - обменный формат контура для ST_GeomFromGeoJSON/ST_AsGeoJSON
type geoJSONPolygon struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// ringToGeoJSON кодирует контур в GeoJSON Polygon. GeoJSON требует замкнутое
// кольцо, поэтому первая точка дублируется в конец.
func ringToGeoJSON(ring []models.Coordinate) (string, error) {
	if len(ring) < 3 {
		return "", fmt.Errorf("ring must contain at least 3 points, got %d", len(ring))
	}

	coords := make([][2]float64, 0, len(ring)+1)
	for _, p := range ring {
		coords = append(coords, [2]float64{p.Lon, p.Lat})
	}
	coords = append(coords, coords[0])

	payload, err := json.Marshal(geoJSONPolygon{
		Type:        "Polygon",
		Coordinates: [][][2]float64{coords},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal polygon: %w", err)
	}
	return string(payload), nil
}

// ringFromGeoJSON разбирает внешнее кольцо GeoJSON Polygon, отбрасывая
// замыкающую точку.
func ringFromGeoJSON(raw []byte) ([]models.Coordinate, error) {
	var poly geoJSONPolygon
	if err := json.Unmarshal(raw, &poly); err != nil {
		return nil, fmt.Errorf("failed to unmarshal polygon: %w", err)
	}
	if poly.Type != "Polygon" || len(poly.Coordinates) == 0 {
		return nil, fmt.Errorf("unexpected geometry %q", poly.Type)
	}

	outer := poly.Coordinates[0]
	if len(outer) > 1 && outer[0] == outer[len(outer)-1] {
		outer = outer[:len(outer)-1]
	}

	ring := make([]models.Coordinate, 0, len(outer))
	for _, p := range outer {
		ring = append(ring, models.Coordinate{Lon: p[0], Lat: p[1]})
	}
	return ring, nil
}
