package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pc2-api/domain/dto"
	"pc2-api/domain/services"
	"pc2-api/pkg/utils"
)

// === Categorias ===

type GalleryCategoryHandler struct {
	categoryService services.GalleryCategoryService
}

func NewGalleryCategoryHandler(categoryService services.GalleryCategoryService) *GalleryCategoryHandler {
	return &GalleryCategoryHandler{categoryService: categoryService}
}

func (h *GalleryCategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.UserContext(), newQuery(c).listOptions())
	if err != nil {
		return respondError(c, err, "List gallery categories")
	}
	return utils.SuccessResponse(c, dto.GalleryCategoriesToResponses(categories))
}

func (h *GalleryCategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGalleryCategoryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	category, err := h.categoryService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create gallery category")
	}
	return utils.CreatedResponse(c, dto.GalleryCategoryToResponse(category))
}

func (h *GalleryCategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	category, err := h.categoryService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get gallery category")
	}
	return utils.SuccessResponse(c, dto.GalleryCategoryToResponse(category))
}

// GetBySlug GET /categorias/slug/:slug
func (h *GalleryCategoryHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	category, err := h.categoryService.GetBySlug(c.UserContext(), slug)
	if err != nil {
		return respondError(c, err, "Get gallery category by slug")
	}
	return utils.SuccessResponse(c, dto.GalleryCategoryToResponse(category))
}

func (h *GalleryCategoryHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateGalleryCategoryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *GalleryCategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateGalleryCategoryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *GalleryCategoryHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateGalleryCategoryRequest) error {
	category, err := h.categoryService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update gallery category")
	}
	return utils.SuccessResponse(c, dto.GalleryCategoryToResponse(category))
}

func (h *GalleryCategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.categoryService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete gallery category")
	}
	return utils.NoContentResponse(c)
}

// === Fotografos ===

type PhotographerHandler struct {
	photographerService services.PhotographerService
}

func NewPhotographerHandler(photographerService services.PhotographerService) *PhotographerHandler {
	return &PhotographerHandler{photographerService: photographerService}
}

func (h *PhotographerHandler) List(c *fiber.Ctx) error {
	photographers, err := h.photographerService.List(c.UserContext(), newQuery(c).listOptions())
	if err != nil {
		return respondError(c, err, "List photographers")
	}
	return utils.SuccessResponse(c, dto.PhotographersToResponses(photographers))
}

func (h *PhotographerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePhotographerRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	photographer, err := h.photographerService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create photographer")
	}
	return utils.CreatedResponse(c, dto.PhotographerToResponse(photographer))
}

func (h *PhotographerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	photographer, err := h.photographerService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get photographer")
	}
	return utils.SuccessResponse(c, dto.PhotographerToResponse(photographer))
}

func (h *PhotographerHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreatePhotographerRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *PhotographerHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdatePhotographerRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *PhotographerHandler) update(c *fiber.Ctx, id uint, req *dto.UpdatePhotographerRequest) error {
	photographer, err := h.photographerService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update photographer")
	}
	return utils.SuccessResponse(c, dto.PhotographerToResponse(photographer))
}

func (h *PhotographerHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.photographerService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete photographer")
	}
	return utils.NoContentResponse(c)
}

// === Imagenes ===

type ImageHandler struct {
	imageService services.ImageService
	fileURL      dto.FileURLFunc
}

func NewImageHandler(imageService services.ImageService, fileURL dto.FileURLFunc) *ImageHandler {
	return &ImageHandler{imageService: imageService, fileURL: fileURL}
}

func (h *ImageHandler) List(c *fiber.Ctx) error {
	return h.list(c, dto.ImageFilter{ListOptions: newQuery(c).listOptions()})
}

// ByCategory GET /imagenes/por_categoria?categoria_id= (ไม่ส่ง = ทุกรูป)
func (h *ImageHandler) ByCategory(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.ImageFilter{CategoryID: q.id("categoria_id")}
	if failed, err := q.fail(); failed {
		return err
	}
	return h.list(c, filter)
}

// ByPhotographer GET /imagenes/por_fotografo?fotografo_id=
func (h *ImageHandler) ByPhotographer(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.ImageFilter{PhotographerID: q.id("fotografo_id")}
	if failed, err := q.fail(); failed {
		return err
	}
	return h.list(c, filter)
}

func (h *ImageHandler) list(c *fiber.Ctx, filter dto.ImageFilter) error {
	images, err := h.imageService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "List images")
	}
	return utils.SuccessResponse(c, dto.ImagesToSummaryResponses(images, h.fileURL))
}

// Featured GET /imagenes/destacadas
func (h *ImageHandler) Featured(c *fiber.Ctx) error {
	images, err := h.imageService.Featured(c.UserContext())
	if err != nil {
		return respondError(c, err, "List featured images")
	}
	return utils.SuccessResponse(c, dto.ImagesToSummaryResponses(images, h.fileURL))
}

func (h *ImageHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateImageRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	image, err := h.imageService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create image")
	}
	return utils.CreatedResponse(c, dto.ImageToDetailResponse(image, h.fileURL))
}

func (h *ImageHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	image, err := h.imageService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get image")
	}
	return utils.SuccessResponse(c, dto.ImageToDetailResponse(image, h.fileURL))
}

func (h *ImageHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateImageRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *ImageHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateImageRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *ImageHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateImageRequest) error {
	image, err := h.imageService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update image")
	}
	return utils.SuccessResponse(c, dto.ImageToDetailResponse(image, h.fileURL))
}

func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.imageService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete image")
	}
	return utils.NoContentResponse(c)
}

// === Etiquetas ===

type ImageTagHandler struct {
	tagService services.ImageTagService
}

func NewImageTagHandler(tagService services.ImageTagService) *ImageTagHandler {
	return &ImageTagHandler{tagService: tagService}
}

func (h *ImageTagHandler) List(c *fiber.Ctx) error {
	tags, err := h.tagService.List(c.UserContext(), newQuery(c).listOptions())
	if err != nil {
		return respondError(c, err, "List image tags")
	}
	return utils.SuccessResponse(c, dto.ImageTagsToResponses(tags))
}

func (h *ImageTagHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateImageTagRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	tag, err := h.tagService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create image tag")
	}
	return utils.CreatedResponse(c, dto.ImageTagToResponse(tag))
}

func (h *ImageTagHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	tag, err := h.tagService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get image tag")
	}
	return utils.SuccessResponse(c, dto.ImageTagToResponse(tag))
}

func (h *ImageTagHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateImageTagRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *ImageTagHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateImageTagRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *ImageTagHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateImageTagRequest) error {
	tag, err := h.tagService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update image tag")
	}
	return utils.SuccessResponse(c, dto.ImageTagToResponse(tag))
}

func (h *ImageTagHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.tagService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete image tag")
	}
	return utils.NoContentResponse(c)
}
