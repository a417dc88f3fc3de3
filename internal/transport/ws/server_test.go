package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/study-cat/study-service/internal/repository/memory"
	"github.com/study-cat/study-service/internal/service"

	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) (*httptest.Server, *Hub, *memory.ChatStore) {
	t.Helper()

	store := memory.NewChatStore()
	hub := NewHub()
	srv := NewServer(hub, service.NewChatService(store), 0)

	ts := httptest.NewServer(http.HandlerFunc(srv.HandleWS))
	t.Cleanup(ts.Close)
	return ts, hub, store
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitConns(t *testing.T, hub *Hub, n int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d connections, have %d", n, hub.Count())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) OutboundMessage {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var out OutboundMessage
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return out
}

func TestFanOutIncludesSender(t *testing.T) {
	ts, hub, _ := newTestServer(t)

	a := dial(t, ts)
	b := dial(t, ts)
	waitConns(t, hub, 2)

	if err := a.WriteJSON(InboundMessage{Type: TypeChat, Username: "alice", Message: "hello"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, conn := range []*websocket.Conn{a, b} {
		got := readFrame(t, conn)
		if got.Type != TypeChat {
			t.Fatalf("expected chat frame, got %q", got.Type)
		}
		if got.Data.ID != 1 || got.Data.Username != "alice" || got.Data.Message != "hello" {
			t.Fatalf("unexpected event: %+v", got.Data)
		}
		if got.Data.Timestamp.IsZero() {
			t.Fatalf("timestamp missing")
		}
	}
}

func TestMalformedFrameDoesNotCloseConnection(t *testing.T) {
	ts, hub, store := newTestServer(t)

	conn := dial(t, ts)
	waitConns(t, hub, 1)

	// не-JSON, затем chat без message — оба должны тихо игнорироваться
	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"chat"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(InboundMessage{Type: TypeChat, Username: "bob", Message: "still here"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := readFrame(t, conn)
	if got.Data.ID != 1 || got.Data.Message != "still here" {
		t.Fatalf("expected only the valid message broadcast, got %+v", got.Data)
	}

	msgs, err := store.Recent(context.Background(), 50)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("malformed frames must not reach the store, got %d messages", len(msgs))
	}
}

func TestUnknownTypeIgnored(t *testing.T) {
	ts, hub, store := newTestServer(t)

	conn := dial(t, ts)
	waitConns(t, hub, 1)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"presence","username":"x"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(InboundMessage{Type: TypeChat, Username: "alice", Message: "hi"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := readFrame(t, conn)
	if got.Data.ID != 1 {
		t.Fatalf("expected id 1, got %d", got.Data.ID)
	}

	msgs, _ := store.Recent(context.Background(), 50)
	if len(msgs) != 1 {
		t.Fatalf("unknown type must not be stored, got %d", len(msgs))
	}
}

func TestDisconnectRemovesFromHub(t *testing.T) {
	ts, hub, _ := newTestServer(t)

	conn := dial(t, ts)
	waitConns(t, hub, 1)

	_ = conn.Close()
	waitConns(t, hub, 0)
}
