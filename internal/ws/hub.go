package ws

import (
	"encoding/json"
	"sync"

	"casino_arcade/internal/logger"
)

// типы событий, которые сервер отправляет клиенту
const (
	EventReady      = "ready"
	EventPong       = "pong"
	EventPlayResult = "play_result"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Hub держит открытые соединения по пользователям.
// У одного пользователя может быть несколько вкладок.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
	logger.Debug("ws: клиент подключен", "user_id", c.UserID, "connections", len(set))
}

// снимает клиента с учета и закрывает его очередь отправки
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	set, ok := h.clients[c.UserID]
	if ok {
		if _, exists := set[c]; exists {
			delete(set, c)
			if len(set) == 0 {
				delete(h.clients, c.UserID)
			}
		} else {
			ok = false
		}
	}
	h.mu.Unlock()

	if ok {
		c.closeSend()
		logger.Debug("ws: клиент отключен", "user_id", c.UserID)
	}
}

// NotifyUser рассылает событие во все соединения пользователя.
// Медленный клиент с полной очередью пропускает событие.
// Возвращает число соединений, которым событие поставлено в очередь.
func (h *Hub) NotifyUser(userID int64, eventType string, data interface{}) int {
	msg, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		logger.Error("ws: не удалось сериализовать событие", "error", err, "type", eventType)
		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for c := range h.clients[userID] {
		if c.enqueue(msg) {
			delivered++
		} else {
			logger.Warn("ws: очередь клиента переполнена, событие пропущено", "user_id", userID, "type", eventType)
		}
	}
	return delivered
}

func (h *Hub) Connections(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// закрывает все соединения, вызывается при остановке сервера
func (h *Hub) Close() {
	h.mu.Lock()
	var all []*Client
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.clients = make(map[int64]map[*Client]struct{})
	h.mu.Unlock()

	for _, c := range all {
		c.closeSend()
	}
}
