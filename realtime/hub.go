package realtime

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

// Event is a named payload pushed to connected clients.
type Event struct {
	Name string      `json:"event"`
	Data interface{} `json:"data"`
}

// Channel keys. A user joins their personal channel after connecting; task
// update events go to the owning project's channel.
func UserChannel(userID uint) string    { return fmt.Sprintf("user:%d", userID) }
func ProjectChannel(projID uint) string { return fmt.Sprintf("project:%d", projID) }

// Conn is the subset of the websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// Client is one live websocket connection known to the hub.
type Client struct {
	UserID uint

	conn    Conn
	writeMu sync.Mutex
}

func (c *Client) send(ev Event) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(ev)
}

func (c *Client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
}

// Hub tracks connected clients and their channel subscriptions. Delivery is
// fire-and-forget: a failed write drops the client, a disconnected client
// simply misses events.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]struct{}
	channels map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:  make(map[*Client]struct{}),
		channels: make(map[string]map[*Client]struct{}),
	}
}

// Register adds a connection to the hub and returns its client handle.
func (h *Hub) Register(conn Conn, userID uint) *Client {
	client := &Client{UserID: userID, conn: conn}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	return client
}

// Unregister removes the client from the hub and every channel it joined.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	delete(h.clients, client)
	for name, subs := range h.channels {
		delete(subs, client)
		if len(subs) == 0 {
			delete(h.channels, name)
		}
	}
	h.mu.Unlock()
}

// Subscribe adds the client to a named channel.
func (h *Hub) Subscribe(client *Client, channel string) {
	h.mu.Lock()
	if h.channels[channel] == nil {
		h.channels[channel] = make(map[*Client]struct{})
	}
	h.channels[channel][client] = struct{}{}
	h.mu.Unlock()
}

// Publish delivers the event to every connection subscribed to the channel.
func (h *Hub) Publish(channel string, ev Event) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.channels[channel]))
	for client := range h.channels[channel] {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	h.deliver(targets, ev)
}

// Broadcast delivers the event to every connected client.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	h.deliver(targets, ev)
}

func (h *Hub) deliver(targets []*Client, ev Event) {
	for _, client := range targets {
		if err := client.send(ev); err != nil {
			h.drop(client)
		}
	}
}

// PingAll probes every connection and drops the ones that no longer answer.
// Closing the connection unwinds its read loop, which performs the rest of
// the cleanup (presence removal, userList broadcast).
func (h *Hub) PingAll() int {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	dropped := 0
	for _, client := range targets {
		if err := client.ping(); err != nil {
			h.drop(client)
			dropped++
		}
	}
	return dropped
}

// ClientCount returns the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) drop(client *Client) {
	h.Unregister(client)
	_ = client.conn.Close()
}
