package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/teamboard-backend/internal/domain/ports"
	"github.com/rafabene/teamboard-backend/internal/handlers/middleware"
	"github.com/rafabene/teamboard-backend/internal/infrastructure/notify"
)

// NotificationHandler expõe o websocket de notificações em tempo real
// (convites de board e afins, consumidos como toasts pelo front)
type NotificationHandler struct {
	hub    *notify.Hub
	logger ports.Logger
}

// NewNotificationHandler cria um novo NotificationHandler
func NewNotificationHandler(hub *notify.Hub, logger ports.Logger) *NotificationHandler {
	return &NotificationHandler{
		hub:    hub,
		logger: logger,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS já foi validado pelo middleware HTTP
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Connect abre a conexão websocket do usuário autenticado
//
//	@Summary	Abre o websocket de notificações
//	@Tags		notifications
//	@Security	BearerAuth
//	@Router		/ws/notifications [get]
func (h *NotificationHandler) Connect(c *gin.Context) {
	user := middleware.CurrentUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "user_id", user.ID, "error", err)
		return
	}

	h.hub.Register(user.ID, conn)

	// Loop de leitura apenas para detectar o fechamento da conexão;
	// o cliente não envia mensagens
	go func() {
		defer func() {
			h.hub.Unregister(user.ID, conn)
			_ = conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
