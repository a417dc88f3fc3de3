package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/study-cat/study-service/internal/domain"

	"github.com/gorilla/websocket"
)

type ChatSvc interface {
	Append(ctx context.Context, username, message string) (*domain.ChatMessage, error)
}

type Server struct {
	upgrader websocket.Upgrader
	hub      *Hub
	chatSvc  ChatSvc

	pingEvery time.Duration
}

func NewServer(hub *Hub, chat ChatSvc, pingEvery time.Duration) *Server {
	if pingEvery <= 0 {
		pingEvery = 15 * time.Second
	}
	return &Server{
		hub:     hub,
		chatSvc: chat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pingEvery: pingEvery,
	}
}

// WS endpoint: GET /ws — рукопожатий поверх upgrade нет, соединение сразу готово.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "err", err)
		return
	}

	c := newWsConn(conn)
	s.hub.Add(c)

	go s.writeLoop(r.Context(), c)
	s.readLoop(r.Context(), c)

	s.hub.Remove(c)
	if err := c.Close(); err != nil {
		slog.Debug("ws close failed", "err", err)
	}
}

func (s *Server) readLoop(ctx context.Context, c *wsConn) {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(1 << 20)
	c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		// Битый кадр не закрывает соединение: логируем и читаем дальше.
		var msg InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Debug("ws malformed frame", "err", err)
			continue
		}

		switch msg.Type {
		case TypeChat:
			stored, err := s.chatSvc.Append(ctx, msg.Username, msg.Message)
			if err != nil {
				// best-effort: сообщение теряется, отправителю ничего не шлём
				slog.Warn("ws chat append failed", "user", msg.Username, "err", err)
				continue
			}

			// ЕДИНЫЙ broadcast всем, включая отправителя: клиент ставит
			// своё сообщение в ленту по эхо-кадру, локального эха нет.
			s.hub.Broadcast(OutboundMessage{
				Type: TypeChat,
				Data: ChatEvent{
					ID:        stored.ID,
					Username:  stored.Username,
					Message:   stored.Message,
					Timestamp: stored.Timestamp,
				},
			})
		default:
			// ignore
		}
	}
}

func (s *Server) writeLoop(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(s.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
		case <-ctx.Done():
			return
		case <-c.closed:
			return
		}
	}
}

type wsConn struct {
	conn   *websocket.Conn
	sendMu chan struct{}
	closed chan struct{}
}

func newWsConn(c *websocket.Conn) *wsConn {
	return &wsConn{
		conn:   c,
		sendMu: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

func (c *wsConn) Send(msg OutboundMessage) error {
	select {
	case <-c.closed:
		return websocket.ErrCloseSent
	default:
	}

	c.sendMu <- struct{}{}
	defer func() { <-c.sendMu }()
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))

	return c.conn.WriteJSON(msg)
}

func (c *wsConn) Close() error {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}

	return c.conn.Close()
}
