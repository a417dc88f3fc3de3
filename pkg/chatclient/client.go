// Package chatclient реализует клиентскую сторону чата: подключение к WS,
// загрузку истории по HTTP, слияние ленты без дублей и автопереподключение.
package chatclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultReconnectDelay = 3 * time.Second
	defaultHistoryLimit   = 50
)

type Message struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// входящий кадр сервера: {type:"chat", data:{...}}
type inFrame struct {
	Type string   `json:"type"`
	Data *Message `json:"data"`
}

// исходящий кадр: {type:"chat", username, message}
type outFrame struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type Options struct {
	// ReconnectDelay — фиксированная пауза между попытками, без backoff.
	ReconnectDelay time.Duration
	HistoryLimit   int
	Dialer         *websocket.Dialer
	HTTPClient     *http.Client
	// OnStatus дергается на каждую смену connected/disconnected.
	OnStatus func(connected bool)
}

type Client struct {
	httpBase string
	wsURL    string
	opts     Options

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	view      []Message
	seen      map[int64]struct{}

	runCtx  context.Context
	cancel  context.CancelFunc
	started bool
	done    chan struct{}
}

// New принимает базовый HTTP-адрес сервера (http://host:port);
// адрес WS выводится из него заменой схемы и путём /ws.
func New(baseURL string, opts Options) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	wsu := *u
	switch u.Scheme {
	case "https":
		wsu.Scheme = "wss"
	default:
		wsu.Scheme = "ws"
	}
	wsu.Path = "/ws"

	if opts.ReconnectDelay <= 0 {
		opts.ReconnectDelay = defaultReconnectDelay
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = defaultHistoryLimit
	}
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		httpBase: u.String(),
		wsURL:    wsu.String(),
		opts:     opts,
		seen:     make(map[int64]struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start запускает цикл подключения. Повторный вызов — no-op.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.runCtx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	go c.run(c.runCtx)
}

// Close отменяет таймер переподключения и закрывает соединение.
func (c *Client) Close() error {
	c.mu.Lock()
	started := c.started
	if c.cancel != nil {
		c.cancel()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.mu.Unlock()

	if started {
		<-c.done
	}
	return nil
}

func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Send отправляет чат-кадр. В разрыве сообщение тихо теряется —
// без очереди и без ошибки, пользователь ориентируется на индикатор.
func (c *Client) Send(username, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected || c.conn == nil {
		return
	}
	_ = c.conn.WriteJSON(outFrame{Type: "chat", Username: username, Message: message})
}

// Messages возвращает копию собранной ленты в порядке сборки.
func (c *Client) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.view))
	copy(out, c.view)
	return out
}

// LoadHistory один раз загружает снапшот истории и кладёт его в начало ленты.
// Живые сообщения, которых нет в снапшоте, сохраняются следом — слияние
// идемпотентно по id.
func (c *Client) LoadHistory(ctx context.Context) error {
	u := fmt.Sprintf("%s/api/chat/messages?limit=%d", c.httpBase, c.opts.HistoryLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("history fetch: unexpected status %d", resp.StatusCode)
	}

	var hist []Message
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		return fmt.Errorf("history fetch: decode: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// сессия уже закрыта — результат отбрасываем
	if c.runCtx != nil && c.runCtx.Err() != nil {
		return nil
	}

	merged := make([]Message, 0, len(hist)+len(c.view))
	seen := make(map[int64]struct{}, len(hist)+len(c.view))
	for _, m := range hist {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}
	for _, m := range c.view {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}
	c.view, c.seen = merged, seen
	return nil
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)

	for {
		conn, resp, err := c.opts.Dialer.DialContext(ctx, c.wsURL, nil)
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		if err == nil {
			if !c.setConn(conn) {
				// Close обогнал dial — соединение уже никому не нужно
				return
			}
			c.readPump(conn)
			c.setDisconnected()
		}

		// фиксированная пауза 3с, попытки не ограничены
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.opts.ReconnectDelay):
		}
	}
}

func (c *Client) readPump(conn *websocket.Conn) {
	defer func() { _ = conn.Close() }()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var f inFrame
		if err := json.Unmarshal(data, &f); err != nil {
			continue
		}
		if f.Type != "chat" || f.Data == nil {
			continue // незнакомые типы принимаем и игнорируем
		}
		c.merge(*f.Data)
	}
}

func (c *Client) merge(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, dup := c.seen[m.ID]; dup {
		return
	}
	c.seen[m.ID] = struct{}{}
	c.view = append(c.view, m)
}

// setConn публикует соединение. Если сессия уже закрыта — dial успел
// завершиться после cancel — соединение закрывается и не публикуется,
// иначе Close его не увидит и readPump повиснет навсегда.
func (c *Client) setConn(conn *websocket.Conn) bool {
	c.mu.Lock()
	if c.runCtx != nil && c.runCtx.Err() != nil {
		c.mu.Unlock()
		_ = conn.Close()
		return false
	}
	c.conn = conn
	c.connected = true
	cb := c.opts.OnStatus
	c.mu.Unlock()

	if cb != nil {
		cb(true)
	}
	return true
}

func (c *Client) setDisconnected() {
	c.mu.Lock()
	c.conn = nil
	c.connected = false
	cb := c.opts.OnStatus
	c.mu.Unlock()

	if cb != nil {
		cb(false)
	}
}
