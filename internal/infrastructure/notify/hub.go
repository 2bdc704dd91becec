package notify

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rafabene/teamboard-backend/internal/domain/ports"
)

const writeTimeout = 5 * time.Second

// Hub mantém as conexões websocket dos usuários logados e implementa
// ports.Notifier. Um usuário pode ter múltiplas conexões (várias abas).
type Hub struct {
	mu     sync.RWMutex
	conns  map[string]map[*websocket.Conn]bool // [userID][conn]
	logger ports.Logger
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		conns:  make(map[string]map[*websocket.Conn]bool),
		logger: logger,
	}
}

// Register associa uma conexão a um usuário
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true

	h.logger.Debug("websocket connected", "user_id", userID, "connections", len(h.conns[userID]))
}

// Unregister remove uma conexão de um usuário
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.conns[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.conns, userID)
		}
	}

	h.logger.Debug("websocket disconnected", "user_id", userID)
}

// Push envia uma notificação para todas as conexões de um usuário.
// Usuários desconectados são ignorados silenciosamente.
func (h *Hub) Push(userID string, notification ports.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.conns[userID]
	if !ok {
		return
	}

	for conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(notification); err != nil {
			h.logger.Warn("failed to push notification, dropping connection",
				"user_id", userID,
				"error", err,
			)
			_ = conn.Close()
			delete(conns, conn)
		}
	}

	if len(conns) == 0 {
		delete(h.conns, userID)
	}
}

// ConnectionCount retorna o número de conexões ativas de um usuário
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns[userID])
}
