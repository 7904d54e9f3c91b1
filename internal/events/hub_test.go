package events

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuu/pkg/models"
)

func testHub(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()

	r := gin.New()
	r.GET("/ws", Handler(hub))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitForListeners(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ListenerCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d listeners", n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastReachesListener(t *testing.T) {
	hub, url := testHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	waitForListeners(t, hub, 1)

	hub.Broadcast(models.KuuEvent{
		UserID:    "user-123",
		UserName:  "A",
		KuuCount:  10,
		Level:     2,
		Title:     "くぅー初心者",
		LeveledUp: true,
		Timestamp: time.Now().Unix(),
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var evt models.KuuEvent
	require.NoError(t, json.Unmarshal(data, &evt))
	assert.Equal(t, "user-123", evt.UserID)
	assert.Equal(t, 10, evt.KuuCount)
	assert.Equal(t, "くぅー初心者", evt.Title)
	assert.True(t, evt.LeveledUp)
}

func TestBroadcastFanOut(t *testing.T) {
	hub, url := testHub(t)

	var conns []*websocket.Conn
	for i := 0; i < 3; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
		conns = append(conns, conn)
	}
	waitForListeners(t, hub, 3)

	hub.Broadcast(models.KuuEvent{UserID: "user-123", KuuCount: 1, Level: 1})

	for _, conn := range conns {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(data), `"user-123"`)
	}
}

func TestBroadcastWithoutListenersDoesNotBlock(t *testing.T) {
	hub, _ := testHub(t)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Broadcast(models.KuuEvent{UserID: "user-123", KuuCount: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked with no listeners")
	}
}
