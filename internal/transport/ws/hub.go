package ws

import (
	"sync"
)

type Conn interface {
	Send(msg OutboundMessage) error
	Close() error
}

// Hub держит множество активных соединений. Один общий чат — без комнат.
type Hub struct {
	mu    sync.RWMutex
	conns map[Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[Conn]struct{})}
}

func (h *Hub) Add(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *Hub) Remove(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast рассылает кадр всем, включая отправителя. Ошибка отправки
// одному получателю не прерывает рассылку остальным.
func (h *Hub) Broadcast(msg OutboundMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.conns {
		_ = c.Send(msg) // best-effort
	}
}
