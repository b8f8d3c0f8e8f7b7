package routes

import (
	"github.com/gofiber/fiber/v2"

	"pc2-api/interfaces/api/handlers"
)

func SetupGalleryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categorias")
	categories.Get("/slug/:slug", h.GalleryCategoryHandler.GetBySlug) // ดึง category ตาม slug
	resource(categories, h.GalleryCategoryHandler)

	resource(api.Group("/fotografos"), h.PhotographerHandler)
	resource(api.Group("/etiquetas"), h.ImageTagHandler)

	images := api.Group("/imagenes")
	images.Get("/destacadas", h.ImageHandler.Featured)
	images.Get("/por_categoria", h.ImageHandler.ByCategory)     // ?categoria_id=
	images.Get("/por_fotografo", h.ImageHandler.ByPhotographer) // ?fotografo_id=
	resource(images, h.ImageHandler)
}
