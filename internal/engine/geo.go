package engine

import (
	"fmt"
	"math"

	"github.com/shenikar/mission_alert_system/internal/models"
)

const earthRadiusM = 6371000.0

// cellSizeDeg — шаг пространственной сетки, примерно 35 метров по широте.
// Дрожащие координаты одного физического инцидента схлопываются в одну ячейку.
const cellSizeDeg = 0.00032

// Допуск проверки принадлежности точки ребру полигона, в градусах.
const onEdgeEps = 1e-9

// haversineMeters возвращает расстояние по дуге большого круга в метрах.
func haversineMeters(a, b models.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180.0)*math.Cos(b.Lat*math.Pi/180.0)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// cellKey строит ключ истории: метка плюс ячейка сетки.
func cellKey(label string, c models.Coordinate) string {
	latCell := int64(math.Floor(c.Lat / cellSizeDeg))
	lonCell := int64(math.Floor(c.Lon / cellSizeDeg))
	return fmt.Sprintf("%s:%d:%d", label, latCell, lonCell)
}

// pointInRing проверяет принадлежность точки полигону методом трассировки луча.
// Граница считается внутренней: точка на ребре даёт true. Кольцо может быть
// задано как с повторённой замыкающей вершиной, так и без неё. Вырожденное
// кольцо (меньше трёх вершин) не содержит ничего.
func pointInRing(p models.Coordinate, ring []models.Coordinate) bool {
	if len(ring) < 3 {
		return false
	}

	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		if pointOnSegment(p, ring[j], ring[i]) {
			return true
		}
		j = i
	}

	inside := false
	j = len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i].Lon, ring[i].Lat
		xj, yj := ring[j].Lon, ring[j].Lat
		if ((yi > p.Lat) != (yj > p.Lat)) && (p.Lon < (xj-xi)*(p.Lat-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}
	return inside
}

// pointOnSegment — точка лежит на отрезке ab с допуском onEdgeEps.
func pointOnSegment(p, a, b models.Coordinate) bool {
	cross := (b.Lon-a.Lon)*(p.Lat-a.Lat) - (b.Lat-a.Lat)*(p.Lon-a.Lon)
	if math.Abs(cross) > onEdgeEps {
		return false
	}
	if p.Lon < math.Min(a.Lon, b.Lon)-onEdgeEps || p.Lon > math.Max(a.Lon, b.Lon)+onEdgeEps {
		return false
	}
	if p.Lat < math.Min(a.Lat, b.Lat)-onEdgeEps || p.Lat > math.Max(a.Lat, b.Lat)+onEdgeEps {
		return false
	}
	return true
}
