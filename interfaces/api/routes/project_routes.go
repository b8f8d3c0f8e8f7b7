package routes

import (
	"github.com/gofiber/fiber/v2"

	"pc2-api/interfaces/api/handlers"
)

func SetupProjectRoutes(api fiber.Router, h *handlers.Handlers) {
	resource(api.Group("/clientes"), h.ClientHandler)
	resource(api.Group("/categorias"), h.ProjectCategoryHandler)

	projects := api.Group("/proyectos")
	projects.Get("/retrasados", h.ProjectHandler.Overdue)
	projects.Get("/por_estado", h.ProjectHandler.ByStatus) // ?estado=
	projects.Get("/:id/tareas", h.ProjectHandler.Tasks)
	projects.Post("/:id/comentar", h.ProjectHandler.Comment)
	resource(projects, h.ProjectHandler)

	tasks := api.Group("/tareas")
	tasks.Post("/:id/completar", h.ProjectTaskHandler.Complete)
	resource(tasks, h.ProjectTaskHandler)

	resource(api.Group("/comentarios"), h.ProjectCommentHandler)
}
