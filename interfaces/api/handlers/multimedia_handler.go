package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pc2-api/domain/dto"
	"pc2-api/domain/services"
	"pc2-api/pkg/utils"
)

// === Tipos ===

type FileTypeHandler struct {
	fileTypeService services.FileTypeService
}

func NewFileTypeHandler(fileTypeService services.FileTypeService) *FileTypeHandler {
	return &FileTypeHandler{fileTypeService: fileTypeService}
}

func (h *FileTypeHandler) List(c *fiber.Ctx) error {
	types, err := h.fileTypeService.List(c.UserContext(), newQuery(c).listOptions())
	if err != nil {
		return respondError(c, err, "List file types")
	}
	return utils.SuccessResponse(c, dto.FileTypesToResponses(types))
}

func (h *FileTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFileTypeRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	ft, err := h.fileTypeService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create file type")
	}
	return utils.CreatedResponse(c, dto.FileTypeToResponse(ft))
}

func (h *FileTypeHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	ft, err := h.fileTypeService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get file type")
	}
	return utils.SuccessResponse(c, dto.FileTypeToResponse(ft))
}

func (h *FileTypeHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateFileTypeRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *FileTypeHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateFileTypeRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *FileTypeHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateFileTypeRequest) error {
	ft, err := h.fileTypeService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update file type")
	}
	return utils.SuccessResponse(c, dto.FileTypeToResponse(ft))
}

func (h *FileTypeHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.fileTypeService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete file type")
	}
	return utils.NoContentResponse(c)
}

// === Colecciones ===

type CollectionHandler struct {
	collectionService services.CollectionService
	fileURL           dto.FileURLFunc
}

func NewCollectionHandler(collectionService services.CollectionService, fileURL dto.FileURLFunc) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService, fileURL: fileURL}
}

func (h *CollectionHandler) List(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.CollectionFilter{
		ListOptions: q.listOptions(),
		Public:      q.boolean("publica"),
	}
	if failed, err := q.fail(); failed {
		return err
	}

	collections, err := h.collectionService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "List collections")
	}
	return utils.SuccessResponse(c, dto.CollectionsToResponses(collections, h.fileURL))
}

func (h *CollectionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCollectionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	collection, err := h.collectionService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create collection")
	}
	return utils.CreatedResponse(c, dto.CollectionToResponse(collection, h.fileURL))
}

func (h *CollectionHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	collection, err := h.collectionService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get collection")
	}
	return utils.SuccessResponse(c, dto.CollectionToResponse(collection, h.fileURL))
}

func (h *CollectionHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateCollectionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *CollectionHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateCollectionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *CollectionHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateCollectionRequest) error {
	collection, err := h.collectionService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update collection")
	}
	return utils.SuccessResponse(c, dto.CollectionToResponse(collection, h.fileURL))
}

func (h *CollectionHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.collectionService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete collection")
	}
	return utils.NoContentResponse(c)
}

// Files GET /colecciones/:id/archivos
func (h *CollectionHandler) Files(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	files, err := h.collectionService.ListFiles(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "List collection files")
	}
	return utils.SuccessResponse(c, dto.MediaFilesToSummaryResponses(files, h.fileURL))
}

// === Archivos ===

type MediaFileHandler struct {
	fileService services.MediaFileService
	fileURL     dto.FileURLFunc
}

func NewMediaFileHandler(fileService services.MediaFileService, fileURL dto.FileURLFunc) *MediaFileHandler {
	return &MediaFileHandler{fileService: fileService, fileURL: fileURL}
}

func (h *MediaFileHandler) List(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.MediaFileFilter{
		ListOptions:  q.listOptions(),
		FileTypeID:   q.id("tipo_archivo"),
		CollectionID: q.id("coleccion"),
		Featured:     q.boolean("destacado"),
	}
	if failed, err := q.fail(); failed {
		return err
	}

	files, err := h.fileService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "List media files")
	}
	return utils.SuccessResponse(c, dto.MediaFilesToSummaryResponses(files, h.fileURL))
}

// Featured GET /archivos/destacados
func (h *MediaFileHandler) Featured(c *fiber.Ctx) error {
	files, err := h.fileService.Featured(c.UserContext())
	if err != nil {
		return respondError(c, err, "List featured media files")
	}
	return utils.SuccessResponse(c, dto.MediaFilesToSummaryResponses(files, h.fileURL))
}

func (h *MediaFileHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMediaFileRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	file, err := h.fileService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create media file")
	}
	return utils.CreatedResponse(c, dto.MediaFileToDetailResponse(file, h.fileURL))
}

func (h *MediaFileHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	file, err := h.fileService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get media file")
	}
	return utils.SuccessResponse(c, dto.MediaFileToDetailResponse(file, h.fileURL))
}

func (h *MediaFileHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateMediaFileRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *MediaFileHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateMediaFileRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *MediaFileHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateMediaFileRequest) error {
	file, err := h.fileService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update media file")
	}
	return utils.SuccessResponse(c, dto.MediaFileToDetailResponse(file, h.fileURL))
}

func (h *MediaFileHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.fileService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete media file")
	}
	return utils.NoContentResponse(c)
}

// Comment POST /archivos/:id/comentar (สร้างแบบยังไม่อนุมัติเสมอ)
func (h *MediaFileHandler) Comment(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.AddCommentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	comment, err := h.fileService.AddComment(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err, "Comment media file")
	}
	return utils.CreatedResponse(c, dto.MediaCommentToResponse(comment))
}

// === Comentarios ===

type MediaCommentHandler struct {
	commentService services.MediaCommentService
}

func NewMediaCommentHandler(commentService services.MediaCommentService) *MediaCommentHandler {
	return &MediaCommentHandler{commentService: commentService}
}

func (h *MediaCommentHandler) List(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.MediaCommentFilter{
		MediaFileID: q.id("archivo"),
		Approved:    q.boolean("aprobado"),
	}
	if failed, err := q.fail(); failed {
		return err
	}

	comments, err := h.commentService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "List media comments")
	}
	return utils.SuccessResponse(c, dto.MediaCommentsToResponses(comments))
}

func (h *MediaCommentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMediaCommentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	comment, err := h.commentService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create media comment")
	}
	return utils.CreatedResponse(c, dto.MediaCommentToResponse(comment))
}

func (h *MediaCommentHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	comment, err := h.commentService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get media comment")
	}
	return utils.SuccessResponse(c, dto.MediaCommentToResponse(comment))
}

func (h *MediaCommentHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateMediaCommentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *MediaCommentHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateMediaCommentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *MediaCommentHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateMediaCommentRequest) error {
	comment, err := h.commentService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update media comment")
	}
	return utils.SuccessResponse(c, dto.MediaCommentToResponse(comment))
}

func (h *MediaCommentHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.commentService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete media comment")
	}
	return utils.NoContentResponse(c)
}

// Approve POST /comentarios/:id/aprobar
func (h *MediaCommentHandler) Approve(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	comment, err := h.commentService.Approve(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Approve media comment")
	}
	return utils.SuccessResponse(c, dto.MediaCommentToResponse(comment))
}
