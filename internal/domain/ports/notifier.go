package ports

// Notification representa um evento enviado a um usuário conectado
// (convites de board, avisos administrativos, etc.)
type Notification struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Notification types
const (
	NotificationBoardInvite = "board.invite"
)

// Notifier define a interface para push de notificações em tempo real
type Notifier interface {
	Push(userID string, notification Notification)
}
