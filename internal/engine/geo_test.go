package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shenikar/mission_alert_system/internal/models"
)

func TestHaversineMeters(t *testing.T) {
	cases := []struct {
		name     string
		a, b     models.Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			a:        models.Coordinate{Lon: 37.61, Lat: 55.75},
			b:        models.Coordinate{Lon: 37.61, Lat: 55.75},
			expected: 0,
			delta:    0.001,
		},
		{
			name:     "one thousandth degree of latitude",
			a:        models.Coordinate{Lon: 37.61, Lat: 55.75},
			b:        models.Coordinate{Lon: 37.61, Lat: 55.751},
			expected: 111.2,
			delta:    0.5,
		},
		{
			name:     "longitude shrinks with latitude",
			a:        models.Coordinate{Lon: 37.610, Lat: 55.75},
			b:        models.Coordinate{Lon: 37.611, Lat: 55.75},
			expected: 62.6,
			delta:    0.5,
		},
		{
			name:     "moscow to saint petersburg",
			a:        models.Coordinate{Lon: 37.6173, Lat: 55.7558},
			b:        models.Coordinate{Lon: 30.3351, Lat: 59.9343},
			expected: 634000,
			delta:    3000,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := haversineMeters(tc.a, tc.b)

			assert.InDelta(t, tc.expected, got, tc.delta)
			// Симметрия расстояния.
			assert.InDelta(t, got, haversineMeters(tc.b, tc.a), 0.0001)
		})
	}
}

func TestCellKey(t *testing.T) {
	base := models.Coordinate{Lon: 37.6100, Lat: 55.7500}

	// Точки одной ячейки дают один ключ.
	sameCell := models.Coordinate{Lon: 37.6101, Lat: 55.75005}
	assert.Equal(t, cellKey("fire", base), cellKey("fire", sameCell))

	// Смещение на размер ячейки меняет ключ.
	nextCell := models.Coordinate{Lon: 37.6100, Lat: 55.7504}
	assert.NotEqual(t, cellKey("fire", base), cellKey("fire", nextCell))

	// Метка входит в ключ: один и тот же квадрат у разных меток
	// считается независимо.
	assert.NotEqual(t, cellKey("fire", base), cellKey("person", base))

	// Отрицательные координаты не схлопываются с положительными.
	south := models.Coordinate{Lon: -37.6100, Lat: -55.7500}
	assert.NotEqual(t, cellKey("fire", base), cellKey("fire", south))
}

func TestPointInRing(t *testing.T) {
	square := []models.Coordinate{
		{Lon: 0, Lat: 0},
		{Lon: 10, Lat: 0},
		{Lon: 10, Lat: 10},
		{Lon: 0, Lat: 10},
	}

	cases := []struct {
		name   string
		point  models.Coordinate
		inside bool
	}{
		{"center", models.Coordinate{Lon: 5, Lat: 5}, true},
		{"outside west", models.Coordinate{Lon: -1, Lat: 5}, false},
		{"outside north", models.Coordinate{Lon: 5, Lat: 10.0001}, false},
		{"on bottom edge", models.Coordinate{Lon: 5, Lat: 0}, true},
		{"on right edge", models.Coordinate{Lon: 10, Lat: 5}, true},
		{"vertex", models.Coordinate{Lon: 0, Lat: 0}, true},
		{"just inside corner", models.Coordinate{Lon: 0.0001, Lat: 0.0001}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.inside, pointInRing(tc.point, square))
		})
	}
}

func TestPointInRingConcave(t *testing.T) {
	// Г-образный полигон: выемка справа сверху.
	ring := []models.Coordinate{
		{Lon: 0, Lat: 0},
		{Lon: 10, Lat: 0},
		{Lon: 10, Lat: 5},
		{Lon: 5, Lat: 5},
		{Lon: 5, Lat: 10},
		{Lon: 0, Lat: 10},
	}

	assert.True(t, pointInRing(models.Coordinate{Lon: 2, Lat: 8}, ring))
	assert.True(t, pointInRing(models.Coordinate{Lon: 8, Lat: 2}, ring))
	// Точка в выемке.
	assert.False(t, pointInRing(models.Coordinate{Lon: 8, Lat: 8}, ring))
}

func TestPointInRingDegenerate(t *testing.T) {
	point := models.Coordinate{Lon: 1, Lat: 1}

	assert.False(t, pointInRing(point, nil))
	assert.False(t, pointInRing(point, []models.Coordinate{{Lon: 0, Lat: 0}}))
	assert.False(t, pointInRing(point, []models.Coordinate{{Lon: 0, Lat: 0}, {Lon: 5, Lat: 5}}))
}
