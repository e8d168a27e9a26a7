// Package engine реализует движок значимости событий детекции: по шумному
// потоку наблюдений {метка, уверенность, координата, время} решает, молча
// записать событие, поднять его до оператора или передать в автоматическую
// диспетчеризацию, подавляя повторные срабатывания по одному и тому же
// физическому инциденту.
package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shenikar/mission_alert_system/internal/models"
)

// Пороговые значения политики значимости.
const (
	// Глубина скользящего окна недавних событий, мс.
	windowMS = 60000
	// Пауза между детекциями одной ячейки, после которой счётчик
	// устойчивости сбрасывается, мс.
	persistenceGapMS = 12000

	// Кластерная проверка для person/people: не меньше clusterMinCount
	// одноимённых детекций в радиусе clusterRadiusM за clusterWindowMS.
	clusterWindowMS = 30000
	clusterRadiusM  = 100.0
	clusterMinCount = 3

	// Радиус близости к охраняемому объекту, м.
	assetRadiusM = 60.0

	fireScoreMin      = 0.88
	fireAutoScoreMin  = 0.95
	fireAssetScoreMin = 0.85
	firePersistMin    = 2

	personScoreMin      = 0.90
	personAssetScoreMin = 0.92
	personPersistMin    = 3

	chemicalScoreMin = 0.85

	// Ячейки, молчавшие дольше cellTTLMS, вычищаются ленивой развёрткой
	// каждые sweepEvery принятых событий.
	cellTTLMS  = 10 * persistenceGapMS
	sweepEvery = 256
)

// ErrInvalidEvent возвращается для события с нечисловой координатой,
// уверенностью вне [0,1] или отметкой времени, ушедшей назад относительно
// потока. Состояние движка при этом не изменяется.
var ErrInvalidEvent = errors.New("engine: invalid detection event")

type cellEntry struct {
	count  int
	lastTS int64
}

type windowEntry struct {
	label string
	coord models.Coordinate
	ts    int64
}

// Engine накапливает историю детекций одной миссии и классифицирует каждое
// событие в одно из решений: ignore, record, surface, auto-dispatch.
// Экземпляр не потокобезопасен: владелец (сессия миссии) обязан
// сериализовать вызовы.
type Engine struct {
	// cells - счётчики устойчивости по ключу "метка+ячейка сетки".
	cells map[string]cellEntry
	// window - упорядоченное по времени окно последних 60 секунд,
	// используется только кластерной проверкой.
	window []windowEntry
	// maxTS - верхняя граница принятых отметок времени; события позади
	// неё отклоняются, чем закрывается отрицательная арифметика пауз.
	maxTS    int64
	accepted int
}

// New возвращает пустое состояние движка.
func New() *Engine {
	return &Engine{cells: make(map[string]cellEntry)}
}

// Decide классифицирует событие и безусловно записывает его в историю - и в
// счётчик ячейки, и в скользящее окно - каким бы ни было решение. Повторный
// вызов с тем же событием намеренно удваивает счётчик устойчивости; для
// чтения без записи есть Peek. Некорректное событие отклоняется с
// ErrInvalidEvent до любой записи.
func (e *Engine) Decide(event models.DetectionEvent, mctx *models.MissionContext) (models.Decision, error) {
	if err := e.validate(event); err != nil {
		return models.DecisionIgnore, err
	}

	label := strings.ToLower(event.Label)
	ts := event.TimestampMS

	// Окно пополняется до вычисления сигналов: текущее событие участвует
	// в собственной кластерной проверке.
	e.window = append(e.window, windowEntry{label: label, coord: event.Coord, ts: ts})
	e.pruneWindow(ts)

	key := cellKey(label, event.Coord)
	entry, ok := e.cells[key]
	if !ok || ts-entry.lastTS > persistenceGapMS {
		entry = cellEntry{count: 1, lastTS: ts}
	} else {
		entry.count++
		entry.lastTS = ts
	}
	e.cells[key] = entry

	decision := e.evaluate(label, event.Score, event.Coord, ts, entry.count, 0, mctx)

	e.maxTS = ts
	e.accepted++
	if e.accepted%sweepEvery == 0 {
		e.sweepCells(ts)
	}
	return decision, nil
}

// Peek вычисляет решение, которое вернул бы Decide для этого события,
// не изменяя ни счётчиков, ни окна.
func (e *Engine) Peek(event models.DetectionEvent, mctx *models.MissionContext) (models.Decision, error) {
	if err := e.validate(event); err != nil {
		return models.DecisionIgnore, err
	}

	label := strings.ToLower(event.Label)
	ts := event.TimestampMS

	count := 1
	if entry, ok := e.cells[cellKey(label, event.Coord)]; ok && ts-entry.lastTS <= persistenceGapMS {
		count = entry.count + 1
	}

	// Самого события в окне нет, кластерная проверка учитывает его добавкой.
	return e.evaluate(label, event.Score, event.Coord, ts, count, 1, mctx), nil
}

func (e *Engine) validate(event models.DetectionEvent) error {
	if !isFinite(event.Coord.Lon) || !isFinite(event.Coord.Lat) {
		return fmt.Errorf("%w: non-finite coordinate", ErrInvalidEvent)
	}
	if math.IsNaN(event.Score) || event.Score < 0 || event.Score > 1 {
		return fmt.Errorf("%w: score %v outside [0,1]", ErrInvalidEvent, event.Score)
	}
	if event.TimestampMS < 0 {
		return fmt.Errorf("%w: negative timestamp %d", ErrInvalidEvent, event.TimestampMS)
	}
	if event.TimestampMS < e.maxTS {
		return fmt.Errorf("%w: timestamp %d behind stream position %d", ErrInvalidEvent, event.TimestampMS, e.maxTS)
	}
	return nil
}

// evaluate собирает сигналы и применяет политику. extraCluster добавляется к
// числу одноимённых соседей в окне (Peek передаёт 1 за само событие).
func (e *Engine) evaluate(label string, score float64, coord models.Coordinate, ts int64, persistence, extraCluster int, mctx *models.MissionContext) models.Decision {
	insideAOI := insideAnyArea(coord, mctx)
	nearAsset := nearAnyAsset(coord, mctx)

	clusterHit := false
	if label == models.LabelPerson || label == models.LabelPeople {
		clusterHit = e.clusterCount(label, coord, ts)+extraCluster >= clusterMinCount
	}

	return applyPolicy(label, score, persistence, insideAOI, nearAsset, clusterHit)
}

// applyPolicy применяет правила по убыванию приоритета. Правило завершает
// разбор только эскалацией; иначе событие спускается к следующим правилам и
// в конце оседает как record - ниже record корректное событие не опускается.
func applyPolicy(label string, score float64, persistence int, insideAOI, nearAsset, clusterHit bool) models.Decision {
	person := label == models.LabelPerson || label == models.LabelPeople

	// Пожар: высокая уверенность плюс устойчивость; очень высокая
	// уверенность или геозона поднимают до автодиспетчеризации.
	if label == models.LabelFire && score >= fireScoreMin && persistence >= firePersistMin {
		if score >= fireAutoScoreMin || insideAOI {
			return models.DecisionAutoDispatch
		}
		return models.DecisionSurface
	}

	// Люди эскалируются только внутри геозоны: либо устойчивость в одной
	// ячейке, либо рассредоточенное скопление по кластерной проверке.
	if person && score >= personScoreMin && insideAOI && (persistence >= personPersistMin || clusterHit) {
		return models.DecisionSurface
	}

	// Химия: контекст геозоны или охраняемого объекта без требования
	// устойчивости.
	if label == models.LabelChemical && score >= chemicalScoreMin && (insideAOI || nearAsset) {
		return models.DecisionSurface
	}

	// Близость к охраняемому объекту снижает порог для пожара и повышает
	// для людей.
	if nearAsset && ((label == models.LabelFire && score >= fireAssetScoreMin) || (person && score >= personAssetScoreMin)) {
		return models.DecisionSurface
	}

	return models.DecisionRecord
}

// pruneWindow отбрасывает события старше windowMS. Окно упорядочено по
// времени, достаточно срезать префикс.
func (e *Engine) pruneWindow(ts int64) {
	cutoff := ts - windowMS
	i := 0
	for i < len(e.window) && e.window[i].ts < cutoff {
		i++
	}
	if i > 0 {
		e.window = append(e.window[:0], e.window[i:]...)
	}
}

// clusterCount - число одноимённых событий окна в радиусе clusterRadiusM
// за последние clusterWindowMS.
func (e *Engine) clusterCount(label string, coord models.Coordinate, ts int64) int {
	cutoff := ts - clusterWindowMS
	n := 0
	for _, w := range e.window {
		if w.ts < cutoff || w.label != label {
			continue
		}
		if haversineMeters(coord, w.coord) <= clusterRadiusM {
			n++
		}
	}
	return n
}

func (e *Engine) sweepCells(ts int64) {
	for key, entry := range e.cells {
		if ts-entry.lastTS > cellTTLMS {
			delete(e.cells, key)
		}
	}
}

func insideAnyArea(coord models.Coordinate, mctx *models.MissionContext) bool {
	if mctx == nil {
		return false
	}
	for _, area := range mctx.AreasOfInterest {
		if area != nil && pointInRing(coord, area.Ring) {
			return true
		}
	}
	return false
}

func nearAnyAsset(coord models.Coordinate, mctx *models.MissionContext) bool {
	if mctx == nil {
		return false
	}
	for _, asset := range mctx.CriticalAssets {
		if asset != nil && haversineMeters(coord, asset.Location) <= assetRadiusM {
			return true
		}
	}
	return false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
