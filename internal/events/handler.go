package events

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type listener struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Handler upgrades the connection and registers it as a listener. Clients
// only receive events; anything they send is discarded.
func Handler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.log.Warn("websocket upgrade", "err", err)
			return
		}

		sendChan := make(chan []byte, 256)
		l := &listener{hub: hub, conn: conn, send: sendChan}

		hub.mu.Lock()
		hub.sendChans[conn] = sendChan
		hub.mu.Unlock()
		hub.log.Info("event listener connected")

		go l.readPump()
		go l.writePump()
	}
}

// readPump drains inbound frames so pings and close frames are processed.
func (l *listener) readPump() {
	defer func() {
		l.hub.unregister <- l.conn
		l.conn.Close()
	}()

	l.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	l.conn.SetPongHandler(func(string) error {
		l.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := l.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (l *listener) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		l.conn.Close()
	}()

	for {
		select {
		case message, ok := <-l.send:
			l.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				l.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := l.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			l.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := l.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
