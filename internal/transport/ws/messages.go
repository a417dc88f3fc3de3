package ws

import "time"

// Типы событий в WS. Незнакомые типы игнорируются обеими сторонами —
// задел на будущие виды сообщений.
const (
	TypeChat = "chat" // чат-сообщение
)

// InboundMessage — кадр от клиента: {type:"chat", username, message}.
type InboundMessage struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// OutboundMessage — кадр к клиенту: {type:"chat", data:{...}}.
type OutboundMessage struct {
	Type string    `json:"type"`
	Data ChatEvent `json:"data"`
}

type ChatEvent struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
