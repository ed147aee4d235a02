package ws

import (
	"encoding/json"
	"sync"

	"github.com/Tareq669/bot-sub000/internal/logging"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans round lifecycle events out to dashboard observers, keyed by
// chat id.
type Hub struct {
	mu    sync.RWMutex
	chats map[int64]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		chats: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(chatID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.chats[chatID] == nil {
		h.chats[chatID] = make(map[*websocket.Conn]bool)
	}
	h.chats[chatID][conn] = true
	logging.Log.Debugf("ws: client connected to chat %d (total: %d)", chatID, len(h.chats[chatID]))
}

func (h *Hub) RemoveConnection(chatID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.chats[chatID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.chats, chatID)
		}
		logging.Log.Debugf("ws: client disconnected from chat %d", chatID)
	}
}

func (h *Hub) Broadcast(chatID int64, message WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.chats[chatID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		logging.Log.Warnf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logging.Log.Warnf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}

// PublishRoundEvent satisfies the round manager's event sink.
func (h *Hub) PublishRoundEvent(chatID int64, event string, data interface{}) {
	h.Broadcast(chatID, WSMessage{Type: event, Data: data})
}
