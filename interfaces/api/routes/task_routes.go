package routes

import (
	"github.com/gofiber/fiber/v2"

	"pc2-api/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	lists := api.Group("/listas")
	lists.Get("/:id/tareas", h.TaskListHandler.Tasks)
	resource(lists, h.TaskListHandler)

	tasks := api.Group("/tareas")
	tasks.Get("/filtrar", h.TaskHandler.Filter)                    // filter แบบ ad-hoc ไม่แบ่งหน้า
	tasks.Post("/:id/completar", h.TaskHandler.Complete)           // ปิดงาน
	tasks.Post("/:id/asignar_etiquetas", h.TaskHandler.AssignTags) // แทนที่ชุด tag ทั้งหมด
	resource(tasks, h.TaskHandler)

	tags := api.Group("/etiquetas")
	tags.Get("/:id/tareas", h.TagHandler.Tasks)
	resource(tags, h.TagHandler)
}
