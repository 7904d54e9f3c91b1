// Package events pushes count-up notifications to websocket listeners so
// open ranking pages can react without polling.
package events

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"kuu/pkg/models"
)

type Hub struct {
	mu         sync.Mutex
	sendChans  map[*websocket.Conn]chan []byte
	broadcast  chan models.KuuEvent
	unregister chan *websocket.Conn
	log        *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		sendChans:  make(map[*websocket.Conn]chan []byte),
		broadcast:  make(chan models.KuuEvent, 64),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

// ListenerCount reports how many websocket listeners are registered.
func (h *Hub) ListenerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sendChans)
}

// Broadcast queues an event for all connected listeners. Never blocks the
// caller; if the hub is saturated the event is dropped.
func (h *Hub) Broadcast(evt models.KuuEvent) {
	select {
	case h.broadcast <- evt:
	default:
		h.log.Warn("event channel full, dropping kuu event", "user_id", evt.UserID)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.unregister:
			h.mu.Lock()
			if sendChan, ok := h.sendChans[conn]; ok {
				close(sendChan)
				delete(h.sendChans, conn)
				conn.Close()
				h.log.Info("event listener disconnected")
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			data, err := json.Marshal(evt)
			if err != nil {
				h.log.Error("marshal kuu event", "err", err)
				continue
			}

			h.mu.Lock()
			for conn, sendChan := range h.sendChans {
				select {
				case sendChan <- data:

				default:
					// Slow listener: drop the connection rather than
					// stall the broadcast loop.
					delete(h.sendChans, conn)
					close(sendChan)
					conn.Close()
					h.log.Warn("event listener send channel full, removing")
				}
			}
			h.mu.Unlock()
		}
	}
}
