package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Метки детекций, для которых действуют отдельные правила политики.
// Остальные метки обрабатываются как обычные наблюдения.
const (
	LabelFire     = "fire"
	LabelPerson   = "person"
	LabelPeople   = "people"
	LabelChemical = "chemical"
)

// DetectionEvent — одно событие детекции от перцепционного конвейера:
// метка, уверенность [0,1], координата и отметка времени в миллисекундах эпохи.
type DetectionEvent struct {
	Label       string     `json:"label"`
	Score       float64    `json:"score"`
	Coord       Coordinate `json:"coord"`
	TimestampMS int64      `json:"timestamp_ms"`
}

// Decision — исход классификации события детекции.
// Числовые значения задают порядок по срочности: ignore < record < surface < auto-dispatch.
type Decision int

const (
	DecisionIgnore Decision = iota
	DecisionRecord
	DecisionSurface
	DecisionAutoDispatch
)

var decisionNames = [...]string{
	DecisionIgnore:       "ignore",
	DecisionRecord:       "record",
	DecisionSurface:      "surface",
	DecisionAutoDispatch: "auto-dispatch",
}

func (d Decision) String() string {
	if d < DecisionIgnore || d > DecisionAutoDispatch {
		return fmt.Sprintf("decision(%d)", int(d))
	}
	return decisionNames[d]
}

// MarshalJSON сериализует решение строковым именем.
func (d Decision) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON разбирает строковое имя решения.
func (d *Decision) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid decision literal: %s", data)
	}
	parsed, err := ParseDecision(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDecision возвращает решение по его строковому имени.
func ParseDecision(s string) (Decision, error) {
	for d, name := range decisionNames {
		if s == name {
			return Decision(d), nil
		}
	}
	return DecisionIgnore, fmt.Errorf("unknown decision %q", s)
}

// DetectionRecord — обработанное событие детекции, сохранённое в таймлайн миссии.
type DetectionRecord struct {
	ID          int64      `json:"id"`
	MissionID   uuid.UUID  `json:"mission_id"`
	Label       string     `json:"label"`
	Score       float64    `json:"score"`
	Coord       Coordinate `json:"coord"`
	TimestampMS int64      `json:"timestamp_ms"`
	Decision    Decision   `json:"decision"`
	ProcessedAt time.Time  `json:"processed_at"`
}
