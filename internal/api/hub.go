package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/user/mideast-strategy/internal/game"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 64
)

// Message is the JSON frame sent to websocket clients
type Message struct {
	Type    string      `json:"type"` // "news" or "turn"
	GameID  string      `json:"game_id"`
	Payload game.Update `json:"payload"`
}

// client is one websocket connection, optionally following a single game
type client struct {
	hub    *Hub
	conn   *websocket.Conn
	gameID string
	send   chan []byte
}

type outbound struct {
	gameID string
	data   []byte
}

// Hub maintains the set of active clients and broadcasts session updates
type Hub struct {
	clients    map[*client]bool
	broadcast  chan outbound
	register   chan *client
	unregister chan *client
	done       chan struct{}
	logger     *zap.Logger
	upgrader   websocket.Upgrader
}

// NewHub creates a hub. Run must be started before clients connect.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan outbound, sendBufferSize),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Run dispatches registrations and broadcasts until ctx is done
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.logger.Info("Websocket client registered", zap.String("game_id", c.gameID))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				if c.gameID != "" && c.gameID != msg.gameID {
					continue
				}
				select {
				case c.send <- msg.data:
				default:
					// slow client
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

// Notify implements game.Notifier. It never blocks the game; updates are
// dropped when the broadcast queue is full.
func (h *Hub) Notify(update game.Update) {
	data, err := json.Marshal(Message{Type: update.Kind, GameID: update.GameID, Payload: update})
	if err != nil {
		h.logger.Error("Failed to marshal update", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- outbound{gameID: update.GameID, data: data}:
	default:
		h.logger.Warn("Dropping update, broadcast queue full", zap.String("game_id", update.GameID))
	}
}

// ServeWs upgrades the request. The optional "game" query parameter limits
// the connection to one session.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}
	c := &client{hub: h, conn: conn, gameID: r.URL.Query().Get("game"), send: make(chan []byte, sendBufferSize)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// readPump drains the connection so close frames are processed
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
