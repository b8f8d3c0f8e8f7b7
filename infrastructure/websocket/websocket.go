package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"

	"pc2-api/domain/ports"
	"pc2-api/pkg/logger"
)

// ErrHubClosed hub หยุดทำงานแล้ว
var ErrHubClosed = errors.New("websocket hub closed")

// Conn ส่วนของ websocket connection ที่ hub ใช้ (*websocket.Conn ของ gofiber ผ่าน)
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Message รูปแบบข้อความที่ส่งให้ client
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
	Room string `json:"room,omitempty"`
}

type client struct {
	id   string
	conn Conn
	room string // ว่าง = รับทุก app
}

type outbound struct {
	message  Message
	room     string // ว่าง = ทุก client
	clientID string // ไม่ว่าง = ส่งให้ client เดียว
}

type roomChange struct {
	clientID string
	room     string
}

// Hub กระจาย domain event ไปยัง websocket clients
// เขียนลง connection จาก goroutine ของ Run เท่านั้น
type Hub struct {
	clients    map[string]*client
	register   chan *client
	unregister chan string
	rooms      chan roomChange
	broadcast  chan outbound
	done       chan struct{}
	mutex      sync.RWMutex
}

var _ ports.EventPublisherPort = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*client),
		register:   make(chan *client),
		unregister: make(chan string),
		rooms:      make(chan roomChange),
		broadcast:  make(chan outbound, 64),
		done:       make(chan struct{}),
	}
}

// Run loop หลักของ hub; ปิดทุก connection เมื่อ ctx ถูก cancel
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.mutex.Lock()
			h.clients[c.id] = c
			h.mutex.Unlock()
			logger.Debug("WebSocket client connected", "client_id", c.id, "room", c.room)

		case id := <-h.unregister:
			h.remove(id)

		case change := <-h.rooms:
			h.mutex.Lock()
			if c, ok := h.clients[change.clientID]; ok {
				c.room = change.room
			}
			h.mutex.Unlock()

		case out := <-h.broadcast:
			h.deliver(out)
		}
	}
}

func (h *Hub) deliver(out outbound) {
	h.mutex.RLock()
	var targets []*client
	for _, c := range h.clients {
		switch {
		case out.clientID != "":
			if c.id == out.clientID {
				targets = append(targets, c)
			}
		case out.room == "" || c.room == "" || c.room == out.room:
			targets = append(targets, c)
		}
	}
	h.mutex.RUnlock()

	for _, c := range targets {
		if err := c.conn.WriteJSON(out.message); err != nil {
			logger.Warn("WebSocket send failed", "client_id", c.id, "error", err)
			h.remove(c.id)
		}
	}
}

func (h *Hub) remove(id string) {
	h.mutex.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
	}
	h.mutex.Unlock()

	if ok {
		_ = c.conn.Close()
		logger.Debug("WebSocket client disconnected", "client_id", id)
	}
}

func (h *Hub) shutdown() {
	close(h.done)
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for id, c := range h.clients {
		_ = c.conn.Close()
		delete(h.clients, id)
	}
}

// Register เพิ่ม client; room ว่าง = รับ event ทุก app
func (h *Hub) Register(conn Conn, room string) (string, error) {
	c := &client{id: uuid.NewString(), conn: conn, room: room}
	select {
	case h.register <- c:
		return c.id, nil
	case <-h.done:
		return "", ErrHubClosed
	}
}

func (h *Hub) Unregister(id string) {
	select {
	case h.unregister <- id:
	case <-h.done:
	}
}

// JoinRoom เปลี่ยน room ของ client (ว่าง = ออกจาก room)
func (h *Hub) JoinRoom(id, room string) {
	select {
	case h.rooms <- roomChange{clientID: id, room: room}:
	case <-h.done:
	}
}

// SendTo ส่งข้อความให้ client เดียว (ผ่าน hub เพื่อไม่ให้เขียน connection พร้อมกัน)
func (h *Hub) SendTo(ctx context.Context, id string, message Message) error {
	return h.enqueue(ctx, outbound{message: message, clientID: id})
}

// Publish ส่ง domain event ไปยัง room ของ app นั้น
func (h *Hub) Publish(ctx context.Context, event *ports.DomainEvent) error {
	return h.enqueue(ctx, outbound{
		message: Message{Type: event.Subject, Data: event, Room: event.App},
		room:    event.App,
	})
}

func (h *Hub) enqueue(ctx context.Context, out outbound) error {
	select {
	case h.broadcast <- out:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ClientCount จำนวน client ทั้งหมด
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// RoomClients จำนวน client ที่อยู่ใน room
func (h *Hub) RoomClients(room string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	n := 0
	for _, c := range h.clients {
		if c.room == room {
			n++
		}
	}
	return n
}

// HandleClientMessage จัดการข้อความจาก client: ping, join_room, leave_room
func (h *Hub) HandleClientMessage(ctx context.Context, id string, data []byte) {
	var message struct {
		Type string `json:"type"`
		Room string `json:"room"`
	}
	if err := json.Unmarshal(data, &message); err != nil {
		logger.Debug("Invalid websocket message", "client_id", id, "error", err)
		return
	}

	switch message.Type {
	case "ping":
		_ = h.SendTo(ctx, id, Message{Type: "pong", Data: "pong"})
	case "join_room":
		h.JoinRoom(id, message.Room)
		_ = h.SendTo(ctx, id, Message{Type: "room_joined", Data: message.Room, Room: message.Room})
	case "leave_room":
		h.JoinRoom(id, "")
		_ = h.SendTo(ctx, id, Message{Type: "room_left", Data: "Left room successfully"})
	default:
		logger.Debug("Unknown websocket message type", "client_id", id, "type", message.Type)
	}
}
