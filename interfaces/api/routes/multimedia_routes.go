package routes

import (
	"github.com/gofiber/fiber/v2"

	"pc2-api/interfaces/api/handlers"
)

func SetupMultimediaRoutes(api fiber.Router, h *handlers.Handlers) {
	resource(api.Group("/tipos"), h.FileTypeHandler)

	collections := api.Group("/colecciones")
	collections.Get("/:id/archivos", h.CollectionHandler.Files)
	resource(collections, h.CollectionHandler)

	files := api.Group("/archivos")
	files.Get("/destacados", h.MediaFileHandler.Featured)
	files.Post("/:id/comentar", h.MediaFileHandler.Comment)
	resource(files, h.MediaFileHandler)

	comments := api.Group("/comentarios")
	comments.Post("/:id/aprobar", h.MediaCommentHandler.Approve)
	resource(comments, h.MediaCommentHandler)
}
