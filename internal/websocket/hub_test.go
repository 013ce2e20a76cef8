package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		conn: nil,
		send: make(chan []byte, sendBufferSize),
	}
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case data := <-c.send:
		var got Message
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return got
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for message")
	}
	return Message{}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub)
	c2 := mockClient(hub)
	hub.Register(c1)
	hub.Register(c2)

	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("ClientCount = %d, want 2", got)
	}

	hub.Unregister(c1)
	hub.Unregister(c1)
	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("ClientCount = %d, want 1", got)
	}

	hub.Unregister(c2)
	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("ClientCount = %d, want 0", got)
	}
}

func TestBroadcastCompletion(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub)
	c2 := mockClient(hub)
	hub.Register(c1)
	hub.Register(c2)

	hub.Publish(EntityAssignment, ActionCompleted, 42, map[string]any{"child_id": float64(3)})

	for _, c := range []*Client{c1, c2} {
		got := receive(t, c)
		if got.Type != "assignment_completed" {
			t.Errorf("type = %q, want assignment_completed", got.Type)
		}
		if got.Entity != EntityAssignment || got.Action != ActionCompleted {
			t.Errorf("entity/action = %s/%s", got.Entity, got.Action)
		}
		if got.ID != 42 {
			t.Errorf("id = %d, want 42", got.ID)
		}
		if got.Extra["child_id"] != float64(3) {
			t.Errorf("extra = %v", got.Extra)
		}
	}
}

func TestPublishNilHub(t *testing.T) {
	var hub *Hub
	hub.Publish(EntityChild, ActionDeleted, 1, nil)
}

func TestBroadcastFullBuffer(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub)
	hub.Register(c)

	for i := 0; i < sendBufferSize; i++ {
		hub.Publish(EntityChore, ActionUpdated, int64(i), nil)
	}
	hub.Publish(EntityChore, ActionUpdated, 999, nil)

	if got := len(c.send); got != sendBufferSize {
		t.Errorf("buffered = %d, want %d", got, sendBufferSize)
	}
	if got := hub.Dropped(); got != 1 {
		t.Errorf("Dropped = %d, want 1", got)
	}
	hub.Unregister(c)
}

func TestCloseAll(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub)
	hub.Register(c)

	hub.CloseAll()

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("ClientCount = %d, want 0", got)
	}
	if _, ok := <-c.send; ok {
		t.Error("send channel still open")
	}
	hub.Unregister(c)
}

func TestConcurrentAccess(t *testing.T) {
	hub := NewHub(slog.Default())
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := mockClient(hub)
			hub.Register(c)
			hub.Publish(EntityChild, ActionCreated, 0, nil)
			for {
				select {
				case <-c.send:
				default:
					hub.Unregister(c)
					return
				}
			}
		}()
	}

	wg.Wait()

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("ClientCount = %d, want 0", got)
	}
}
