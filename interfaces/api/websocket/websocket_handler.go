package websocket

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	websocketHub "pc2-api/infrastructure/websocket"
	"pc2-api/pkg/logger"
)

// WebSocketHandler ต่อ client เข้ากับ hub ที่กระจาย domain event
type WebSocketHandler struct {
	hub *websocketHub.Hub
}

func NewWebSocketHandler(hub *websocketHub.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket ?app=tareas|galeria|multimedia|proyectos จำกัด event ให้ app เดียว
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	room := c.Query("app", "")

	id, err := h.hub.Register(c, room)
	if err != nil {
		logger.Warn("WebSocket register failed", "error", err)
		_ = c.Close()
		return
	}
	defer h.hub.Unregister(id)

	logger.Info("WebSocket client connected", "client_id", id, "app", room)

	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			logger.Debug("WebSocket read ended", "client_id", id, "error", err)
			return
		}
		h.hub.HandleClientMessage(context.Background(), id, message)
	}
}
