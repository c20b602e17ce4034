package feed

import (
	"encoding/json"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"log/slog"
	"net/http"
	"sync"
	"time"
	"viewermon/internal/app/ports"
	"viewermon/pkg/logger"
)

const writeTimeout = 5 * time.Second

// Feed pushes every tick's row as JSON to connected websocket clients.
// Clients that cannot keep up are dropped.
type Feed struct {
	log      logger.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func New(log logger.Logger) *Feed {
	return &Feed{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

func (f *Feed) Handle(c *gin.Context) {
	conn, err := f.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		f.log.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	f.mu.Lock()
	f.clients[conn] = struct{}{}
	total := len(f.clients)
	f.mu.Unlock()

	f.log.Info("Feed client connected", slog.String("remote", conn.RemoteAddr().String()), slog.Int("clients", total))

	// reader only notices the close, clients never send data
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				f.drop(conn)
				return
			}
		}
	}()
}

func (f *Feed) Broadcast(row ports.Row) {
	data, err := json.Marshal(row)
	if err != nil {
		f.log.Error("Failed to marshal feed row", err)
		return
	}

	f.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(f.clients))
	for conn := range f.clients {
		conns = append(conns, conn)
	}
	f.mu.Unlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			f.log.Debug("Dropping slow feed client", slog.String("remote", conn.RemoteAddr().String()))
			f.drop(conn)
		}
	}
}

func (f *Feed) drop(conn *websocket.Conn) {
	f.mu.Lock()
	if _, ok := f.clients[conn]; !ok {
		f.mu.Unlock()
		return
	}
	delete(f.clients, conn)
	f.mu.Unlock()

	_ = conn.Close()
}
