package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/mission_alert_system/internal/engine"
	"github.com/shenikar/mission_alert_system/internal/models"
)

// missionSession - движок одной миссии и мьютекс, сериализующий обращения
// к нему: экземпляр движка однопоточный по контракту.
type missionSession struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// SessionManager владеет сессиями движка по одной на активную миссию.
// Сессия создается лениво при первой детекции и живет до завершения миссии
// или перезапуска процесса: состояние движка нигде не персистится.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*missionSession
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*missionSession),
	}
}

// Decide прогоняет событие через движок миссии с записью истории.
func (m *SessionManager) Decide(missionID uuid.UUID, event models.DetectionEvent, mctx *models.MissionContext) (models.Decision, error) {
	sess := m.session(missionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.eng.Decide(event, mctx)
}

// Peek вычисляет решение без записи истории.
func (m *SessionManager) Peek(missionID uuid.UUID, event models.DetectionEvent, mctx *models.MissionContext) (models.Decision, error) {
	sess := m.session(missionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.eng.Peek(event, mctx)
}

// Drop выбрасывает сессию миссии вместе с накопленным состоянием движка.
func (m *SessionManager) Drop(missionID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, missionID)
}

// Active возвращает число живых сессий движка.
func (m *SessionManager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *SessionManager) session(missionID uuid.UUID) *missionSession {
	m.mu.RLock()
	sess, ok := m.sessions[missionID]
	m.mu.RUnlock()
	if ok {
		return sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok = m.sessions[missionID]; ok {
		return sess
	}
	sess = &missionSession{eng: engine.New()}
	m.sessions[missionID] = sess
	return sess
}
