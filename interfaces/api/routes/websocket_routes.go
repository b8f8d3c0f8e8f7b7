package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	websocketHub "pc2-api/infrastructure/websocket"
	websocketHandler "pc2-api/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, hub *websocketHub.Hub) {
	wsHandler := websocketHandler.NewWebSocketHandler(hub)

	app.Use("/ws", wsHandler.WebSocketUpgrade)
	app.Get("/ws/events", websocket.New(wsHandler.HandleWebSocket))
}
