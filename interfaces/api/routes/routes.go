package routes

import (
	"github.com/gofiber/fiber/v2"

	"pc2-api/infrastructure/websocket"
	"pc2-api/interfaces/api/handlers"
	"pc2-api/interfaces/api/middleware"
)

// resourceHandler ชุด handler CRUD มาตรฐานของหนึ่ง resource
type resourceHandler interface {
	List(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Replace(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// resource ลงทะเบียน list/create และ retrieve/update/delete ของ /:id
// route ของ action ต้องลงทะเบียนก่อนเรียกฟังก์ชันนี้ ไม่งั้น /:id จะจับไปก่อน
func resource(r fiber.Router, h resourceHandler) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Replace)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, hub *websocket.Hub) {
	// Setup health, root and metrics routes
	SetupHealthRoutes(app, h)

	SetupTaskRoutes(app.Group("/tareas/api"), h)
	SetupGalleryRoutes(app.Group("/galeria/api"), h)
	SetupMultimediaRoutes(app.Group("/multimedia/api"), h)
	SetupProjectRoutes(app.Group("/proyectos/api"), h)

	// Setup WebSocket routes (needs app, not api group)
	SetupWebSocketRoutes(app, hub)
}

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/health", h.RootHandler.Health)
	app.Get("/metrics", middleware.MetricsHandler())
	app.Get("/", h.RootHandler.Index)
	app.Get("/api", h.RootHandler.Index)
}
