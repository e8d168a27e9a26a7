package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/mission_alert_system/internal/models"
)

// Базовая точка всех сценариев: перекрёсток в центре полигона миссии.
const (
	baseLon = 37.6100
	baseLat = 55.7500
)

func evt(label string, score, lon, lat float64, ts int64) models.DetectionEvent {
	return models.DetectionEvent{
		Label:       label,
		Score:       score,
		Coord:       models.Coordinate{Lon: lon, Lat: lat},
		TimestampMS: ts,
	}
}

// ctxWithAOI - контекст миссии с квадратной геозоной вокруг базовой точки.
func ctxWithAOI() *models.MissionContext {
	return &models.MissionContext{
		AreasOfInterest: []*models.AreaOfInterest{
			{
				Name: "sector-a",
				Ring: []models.Coordinate{
					{Lon: 37.605, Lat: 55.745},
					{Lon: 37.615, Lat: 55.745},
					{Lon: 37.615, Lat: 55.755},
					{Lon: 37.605, Lat: 55.755},
				},
			},
		},
	}
}

// ctxWithAsset - контекст миссии с охраняемым объектом в базовой точке.
func ctxWithAsset() *models.MissionContext {
	return &models.MissionContext{
		CriticalAssets: []*models.CriticalAsset{
			{Name: "substation-7", Location: models.Coordinate{Lon: baseLon, Lat: baseLat}},
		},
	}
}

func mustDecide(t *testing.T, e *Engine, event models.DetectionEvent, mctx *models.MissionContext) models.Decision {
	t.Helper()
	d, err := e.Decide(event, mctx)
	require.NoError(t, err)
	return d
}

func TestDecideFireEscalation(t *testing.T) {
	// Подготовка
	e := New()

	// Действие: первая детекция пожара с очень высокой уверенностью.
	first := mustDecide(t, e, evt("fire", 0.96, baseLon, baseLat, 1000), nil)

	// Проверки: одиночный кадр без устойчивости только записывается.
	assert.Equal(t, models.DecisionRecord, first)

	// Действие: повтор в той же ячейке через 4 секунды.
	second := mustDecide(t, e, evt("fire", 0.96, baseLon, baseLat, 5000), nil)

	// Проверки: устойчивость достигнута, уверенность выше порога
	// автодиспетчеризации.
	assert.Equal(t, models.DecisionAutoDispatch, second)
}

func TestDecideFireSurfaceWithoutAutoThreshold(t *testing.T) {
	e := New()

	mustDecide(t, e, evt("fire", 0.90, baseLon, baseLat, 1000), nil)
	second := mustDecide(t, e, evt("fire", 0.90, baseLon, baseLat, 5000), nil)

	assert.Equal(t, models.DecisionSurface, second)
}

func TestDecideFireInsideAOIAutoDispatch(t *testing.T) {
	// Пожар внутри геозоны эскалируется до автодиспетчеризации и без
	// порога 0.95.
	e := New()
	mctx := ctxWithAOI()

	mustDecide(t, e, evt("fire", 0.90, baseLon, baseLat, 1000), mctx)
	second := mustDecide(t, e, evt("fire", 0.90, baseLon, baseLat, 5000), mctx)

	assert.Equal(t, models.DecisionAutoDispatch, second)
}

func TestDecideFireNearAssetLoweredThreshold(t *testing.T) {
	// Рядом с охраняемым объектом пожару достаточно 0.85 и одного кадра.
	e := New()

	d := mustDecide(t, e, evt("fire", 0.86, baseLon, baseLat, 1000), ctxWithAsset())

	assert.Equal(t, models.DecisionSurface, d)
}

func TestDecideFireBelowThresholdStaysRecorded(t *testing.T) {
	e := New()

	for ts := int64(0); ts < 50000; ts += 5000 {
		d := mustDecide(t, e, evt("fire", 0.87, baseLon, baseLat, ts), nil)
		assert.Equal(t, models.DecisionRecord, d)
	}
}

func TestDecidePersistenceGapBoundary(t *testing.T) {
	// Подготовка
	e := New()
	mctx := ctxWithAOI()

	// Действие: пауза ровно в 12 секунд сохраняет счётчик, 12.001 - сбрасывает.
	mustDecide(t, e, evt("fire", 0.96, baseLon, baseLat, 0), mctx)
	atGap := mustDecide(t, e, evt("fire", 0.96, baseLon, baseLat, 12000), mctx)
	afterGap := mustDecide(t, e, evt("fire", 0.96, baseLon, baseLat, 24001), mctx)

	// Проверки
	assert.Equal(t, models.DecisionAutoDispatch, atGap)
	assert.Equal(t, models.DecisionRecord, afterGap)
}

func TestDecidePersonRequiresAOI(t *testing.T) {
	// Человек вне геозоны не эскалируется никакой устойчивостью.
	e := New()

	for i, ts := range []int64{0, 5000, 10000, 15000} {
		d := mustDecide(t, e, evt("person", 0.95, baseLon, baseLat, ts), nil)
		assert.Equal(t, models.DecisionRecord, d, "event %d", i)
	}
}

func TestDecidePersonPersistenceInsideAOI(t *testing.T) {
	e := New()
	mctx := ctxWithAOI()

	first := mustDecide(t, e, evt("person", 0.93, baseLon, baseLat, 0), mctx)
	second := mustDecide(t, e, evt("person", 0.93, baseLon, baseLat, 5000), mctx)
	third := mustDecide(t, e, evt("person", 0.93, baseLon, baseLat, 10000), mctx)

	assert.Equal(t, models.DecisionRecord, first)
	assert.Equal(t, models.DecisionRecord, second)
	assert.Equal(t, models.DecisionSurface, third)
}

func TestDecidePersonClusterAcrossCells(t *testing.T) {
	// Подготовка: три человека в разных ячейках сетки, но в ста метрах
	// друг от друга, внутри геозоны.
	e := New()
	mctx := ctxWithAOI()

	// Действие
	first := mustDecide(t, e, evt("person", 0.91, baseLon, 55.7500, 0), mctx)
	second := mustDecide(t, e, evt("person", 0.91, baseLon, 55.7503, 4000), mctx)
	third := mustDecide(t, e, evt("person", 0.91, baseLon, 55.7506, 8000), mctx)

	// Проверки: счётчики ячеек остаются на единице, срабатывает
	// кластерная проверка на третьем событии.
	assert.Equal(t, models.DecisionRecord, first)
	assert.Equal(t, models.DecisionRecord, second)
	assert.Equal(t, models.DecisionSurface, third)
}

func TestDecidePersonClusterWindowExpires(t *testing.T) {
	e := New()
	mctx := ctxWithAOI()

	mustDecide(t, e, evt("person", 0.91, baseLon, 55.7500, 0), mctx)
	mustDecide(t, e, evt("person", 0.91, baseLon, 55.7503, 4000), mctx)
	mustDecide(t, e, evt("person", 0.91, baseLon, 55.7506, 8000), mctx)

	// Спустя 37 секунд прежние детекции выпали из кластерного окна,
	// а счётчик ячейки сброшен паузой.
	late := mustDecide(t, e, evt("person", 0.91, baseLon, 55.7506, 45000), mctx)

	assert.Equal(t, models.DecisionRecord, late)
}

func TestDecidePersonClusterIgnoresFarEvents(t *testing.T) {
	e := New()
	mctx := ctxWithAOI()

	// Две детекции в паре сотен метров южнее не входят в радиус кластера.
	mustDecide(t, e, evt("person", 0.91, baseLon, 55.7475, 0), mctx)
	mustDecide(t, e, evt("person", 0.91, baseLon, 55.7477, 3000), mctx)
	third := mustDecide(t, e, evt("person", 0.91, baseLon, 55.7500, 6000), mctx)

	assert.Equal(t, models.DecisionRecord, third)
}

func TestDecidePersonNearAssetRaisedThreshold(t *testing.T) {
	e := New()
	mctx := ctxWithAsset()

	below := mustDecide(t, e, evt("person", 0.91, baseLon, baseLat, 0), mctx)
	above := mustDecide(t, e, evt("person", 0.93, baseLon, 55.7504, 1000), mctx)

	assert.Equal(t, models.DecisionRecord, below)
	assert.Equal(t, models.DecisionSurface, above)
}

func TestDecidePeopleLabelMatchesPersonPolicy(t *testing.T) {
	e := New()
	mctx := ctxWithAOI()

	mustDecide(t, e, evt("people", 0.92, baseLon, baseLat, 0), mctx)
	mustDecide(t, e, evt("people", 0.92, baseLon, baseLat, 5000), mctx)
	third := mustDecide(t, e, evt("people", 0.92, baseLon, baseLat, 10000), mctx)

	assert.Equal(t, models.DecisionSurface, third)
}

func TestDecideClusterDoesNotMixLabels(t *testing.T) {
	// person и people считаются раздельно: смешанная тройка кластер не
	// образует.
	e := New()
	mctx := ctxWithAOI()

	mustDecide(t, e, evt("person", 0.91, baseLon, 55.7500, 0), mctx)
	mustDecide(t, e, evt("people", 0.91, baseLon, 55.7503, 3000), mctx)
	third := mustDecide(t, e, evt("person", 0.91, baseLon, 55.7506, 6000), mctx)

	assert.Equal(t, models.DecisionRecord, third)
}

func TestDecideChemicalNearAsset(t *testing.T) {
	e := New()

	d := mustDecide(t, e, evt("chemical", 0.86, baseLon, baseLat, 1000), ctxWithAsset())

	assert.Equal(t, models.DecisionSurface, d)
}

func TestDecideChemicalInsideAOI(t *testing.T) {
	e := New()

	d := mustDecide(t, e, evt("chemical", 0.86, baseLon, baseLat, 1000), ctxWithAOI())

	assert.Equal(t, models.DecisionSurface, d)
}

func TestDecideChemicalWithoutContextRecorded(t *testing.T) {
	e := New()

	d := mustDecide(t, e, evt("chemical", 0.99, baseLon, baseLat, 1000), nil)

	assert.Equal(t, models.DecisionRecord, d)
}

func TestDecideChemicalBelowThreshold(t *testing.T) {
	e := New()

	d := mustDecide(t, e, evt("chemical", 0.84, baseLon, baseLat, 1000), ctxWithAsset())

	assert.Equal(t, models.DecisionRecord, d)
}

func TestDecideUnknownLabelAlwaysRecorded(t *testing.T) {
	e := New()
	mctx := ctxWithAOI()
	mctx.CriticalAssets = ctxWithAsset().CriticalAssets

	for i, ts := range []int64{0, 4000, 8000, 12000} {
		d := mustDecide(t, e, evt("vehicle", 0.99, baseLon, baseLat, ts), mctx)
		assert.Equal(t, models.DecisionRecord, d, "event %d", i)
	}
}

func TestDecideLabelCaseInsensitive(t *testing.T) {
	e := New()

	mustDecide(t, e, evt("Fire", 0.96, baseLon, baseLat, 1000), nil)
	second := mustDecide(t, e, evt("FIRE", 0.96, baseLon, baseLat, 5000), nil)

	assert.Equal(t, models.DecisionAutoDispatch, second)
}

func TestDecideAssetRadiusBoundary(t *testing.T) {
	// Подготовка: объект в базовой точке, детекции в 44 и 67 метрах.
	e := New()
	mctx := ctxWithAsset()

	near := mustDecide(t, e, evt("fire", 0.86, baseLon, 55.7504, 0), mctx)
	far := mustDecide(t, e, evt("fire", 0.86, baseLon, 55.7506, 1000), mctx)

	assert.Equal(t, models.DecisionSurface, near)
	assert.Equal(t, models.DecisionRecord, far)
}

func TestDecideNotIdempotent(t *testing.T) {
	// Повторная подача того же события удваивает устойчивость: Decide
	// пишет историю безусловно.
	e := New()
	event := evt("fire", 0.96, baseLon, baseLat, 1000)

	first := mustDecide(t, e, event, nil)
	second := mustDecide(t, e, event, nil)

	assert.Equal(t, models.DecisionRecord, first)
	assert.Equal(t, models.DecisionAutoDispatch, second)
}

func TestDecideThresholdMonotonicity(t *testing.T) {
	// При фиксированных метке, контексте и устойчивости рост уверенности
	// не понижает решение.
	scores := []float64{0.10, 0.80, 0.84, 0.85, 0.87, 0.88, 0.90, 0.94, 0.95, 1.0}

	contexts := map[string]*models.MissionContext{
		"no context": nil,
		"aoi":        ctxWithAOI(),
		"asset":      ctxWithAsset(),
	}

	for _, label := range []string{"fire", "person", "chemical"} {
		for name, mctx := range contexts {
			for _, persistence := range []int{1, 2, 3} {
				prev := models.DecisionIgnore
				for _, score := range scores {
					e := New()
					var ts int64
					for i := 1; i < persistence; i++ {
						mustDecide(t, e, evt(label, score, baseLon, baseLat, ts), mctx)
						ts += 5000
					}
					d := mustDecide(t, e, evt(label, score, baseLon, baseLat, ts), mctx)

					assert.GreaterOrEqual(t, int(d), int(prev),
						"%s/%s persistence=%d score=%.2f", label, name, persistence, score)
					prev = d
				}
			}
		}
	}
}

func TestPeekMatchesDecideWithoutMutation(t *testing.T) {
	// Подготовка
	e := New()
	mctx := ctxWithAOI()
	events := []models.DetectionEvent{
		evt("fire", 0.96, baseLon, baseLat, 1000),
		evt("fire", 0.96, baseLon, baseLat, 5000),
		evt("person", 0.93, baseLon, 55.7503, 6000),
		evt("person", 0.93, baseLon, 55.7503, 9000),
		evt("person", 0.93, baseLon, 55.7503, 13000),
		evt("chemical", 0.86, baseLon, baseLat, 14000),
	}

	for i, event := range events {
		// Действие: два Peek подряд, затем Decide.
		peeked, err := e.Peek(event, mctx)
		require.NoError(t, err)
		again, err := e.Peek(event, mctx)
		require.NoError(t, err)
		decided := mustDecide(t, e, event, mctx)

		// Проверки: Peek стабилен и совпадает с последующим Decide.
		assert.Equal(t, peeked, again, "event %d", i)
		assert.Equal(t, decided, peeked, "event %d", i)
	}
}

func TestPeekDoesNotAdvanceStream(t *testing.T) {
	e := New()

	_, err := e.Peek(evt("fire", 0.96, baseLon, baseLat, 50000), nil)
	require.NoError(t, err)

	// Более раннее событие всё ещё принимается: Peek не двигает поток.
	_, err = e.Decide(evt("fire", 0.96, baseLon, baseLat, 1000), nil)
	assert.NoError(t, err)
}

func TestDecideRejectsMalformedEvents(t *testing.T) {
	cases := []struct {
		name  string
		event models.DetectionEvent
	}{
		{"nan lon", evt("fire", 0.9, nanF(), baseLat, 1000)},
		{"inf lat", evt("fire", 0.9, baseLon, infF(), 1000)},
		{"nan score", evt("fire", nanF(), baseLon, baseLat, 1000)},
		{"score below zero", evt("fire", -0.01, baseLon, baseLat, 1000)},
		{"score above one", evt("fire", 1.01, baseLon, baseLat, 1000)},
		{"negative timestamp", evt("fire", 0.9, baseLon, baseLat, -1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := New()

			d, err := e.Decide(tc.event, nil)

			assert.ErrorIs(t, err, ErrInvalidEvent)
			assert.Equal(t, models.DecisionIgnore, d)
			assert.Empty(t, e.cells)
			assert.Empty(t, e.window)
		})
	}
}

func TestDecideRejectsTimestampRegression(t *testing.T) {
	// Подготовка
	e := New()
	mustDecide(t, e, evt("fire", 0.90, baseLon, baseLat, 10000), nil)

	// Действие: событие позади потока.
	d, err := e.Decide(evt("fire", 0.96, baseLon, baseLat, 9999), nil)

	// Проверки: отказ без следов в состоянии.
	assert.ErrorIs(t, err, ErrInvalidEvent)
	assert.Equal(t, models.DecisionIgnore, d)
	assert.Len(t, e.window, 1)
	assert.Len(t, e.cells, 1)
	assert.Equal(t, int64(10000), e.maxTS)
}

func TestDecideAcceptsEqualTimestamp(t *testing.T) {
	// Кадры одной миллисекунды допустимы.
	e := New()

	mustDecide(t, e, evt("fire", 0.96, baseLon, baseLat, 1000), nil)
	d := mustDecide(t, e, evt("fire", 0.96, baseLon, baseLat, 1000), nil)

	assert.Equal(t, models.DecisionAutoDispatch, d)
}

func TestDecidePrunesRollingWindow(t *testing.T) {
	e := New()

	mustDecide(t, e, evt("fire", 0.5, baseLon, baseLat, 0), nil)
	mustDecide(t, e, evt("fire", 0.5, baseLon, baseLat, 30000), nil)
	assert.Len(t, e.window, 2)

	mustDecide(t, e, evt("fire", 0.5, baseLon, baseLat, 61000), nil)

	// Событие t=0 старше окна, t=30000 ещё внутри.
	require.Len(t, e.window, 2)
	assert.Equal(t, int64(30000), e.window[0].ts)
	assert.Equal(t, int64(61000), e.window[1].ts)
}

func TestDecideSweepsStaleCells(t *testing.T) {
	// Подготовка: ячейка пожара замолкает, затем поток других меток
	// доводит счётчик принятых событий до порога развёртки.
	e := New()
	mustDecide(t, e, evt("fire", 0.5, baseLon, baseLat, 0), nil)
	staleKey := cellKey("fire", models.Coordinate{Lon: baseLon, Lat: baseLat})

	ts := int64(200000)
	for i := 1; i < sweepEvery; i++ {
		mustDecide(t, e, evt("vehicle", 0.5, baseLon+float64(i)*0.01, baseLat, ts), nil)
		ts++
	}

	// Проверки: молчавшая дольше TTL ячейка вычищена.
	_, ok := e.cells[staleKey]
	assert.False(t, ok)
}

func nanF() float64 {
	var zero float64
	return zero / zero
}

func infF() float64 {
	var zero float64
	return 1 / zero
}
