// Package ws реализует живую ленту тревог для консолей операторов поверх
// gorilla/websocket.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/mission_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Консоль оператора обслуживается с другого origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	// missionID == uuid.Nil - подписка на тревоги всех миссий
	missionID uuid.UUID
}

// Hub держит подключенные консоли и раздает им тревоги
type Hub struct {
	logger *logrus.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// Broadcast рассылает тревогу всем подписанным консолям. Медленный клиент
// пропускает сообщение, а не тормозит прием детекций.
func (h *Hub) Broadcast(alert *models.Alert) {
	payload, err := json.Marshal(alert)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal alert for broadcast")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.missionID != uuid.Nil && c.missionID != alert.MissionID {
			continue
		}
		select {
		case c.send <- payload:
		default:
			h.logger.WithField("mission_id", alert.MissionID).
				Warn("Dropping alert for slow websocket client")
		}
	}
}

// Clients возвращает число подключенных консолей
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleAlerts апгрейдит HTTP-запрос до WebSocket и подписывает клиента на
// ленту тревог. Параметр mission_id ограничивает подписку одной миссией.
func (h *Hub) HandleAlerts(c *gin.Context) {
	missionID := uuid.Nil
	if raw := c.Query("mission_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission_id"})
			return
		}
		missionID = id
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}

	cl := &client{
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		missionID: missionID,
	}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
	h.logger.WithField("mission_id", missionID).Info("Operator console connected to alert feed")

	go h.writePump(cl)
	go h.readPump(cl)
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()
}

// readPump вычитывает входящие фреймы ради pong/close; содержимое клиенты
// не шлют.
func (h *Hub) readPump(cl *client) {
	defer func() {
		h.remove(cl)
		cl.conn.Close()
	}()

	cl.conn.SetReadLimit(512)
	cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WithError(err).Debug("Websocket client read error")
			}
			return
		}
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
