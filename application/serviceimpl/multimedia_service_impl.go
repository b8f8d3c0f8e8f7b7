package serviceimpl

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/ports"
	"pc2-api/domain/repositories"
	"pc2-api/domain/services"
	"pc2-api/pkg/logger"
)

const cacheKeyFeaturedMedia = "multimedia:archivos:destacados"

// === FileType ===

type FileTypeServiceImpl struct {
	fileTypeRepo repositories.FileTypeRepository
	cache        ports.CachePort
}

func NewFileTypeService(fileTypeRepo repositories.FileTypeRepository, cache ports.CachePort) services.FileTypeService {
	return &FileTypeServiceImpl{fileTypeRepo: fileTypeRepo, cache: cache}
}

func (s *FileTypeServiceImpl) Create(ctx context.Context, req *dto.CreateFileTypeRequest) (*models.FileType, error) {
	fileType := &models.FileType{
		Name:              strings.TrimSpace(req.Nombre),
		Description:       valueOr(req.Descripcion, ""),
		AllowedExtensions: strings.TrimSpace(req.ExtensionesPermitidas),
		Icon:              valueOr(req.Icono, ""),
	}
	if err := s.fileTypeRepo.Create(ctx, fileType); err != nil {
		logger.ErrorContext(ctx, "Failed to create file type", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "File type created", "file_type_id", fileType.ID, "extensions", fileType.AllowedExtensions)
	return fileType, nil
}

func (s *FileTypeServiceImpl) GetByID(ctx context.Context, id uint) (*models.FileType, error) {
	fileType, err := s.fileTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "tipo", id)
	}
	return fileType, nil
}

func (s *FileTypeServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateFileTypeRequest) (*models.FileType, error) {
	fileType, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		fileType.Name = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		fileType.Description = *req.Descripcion
	}
	if req.ExtensionesPermitidas != nil {
		fileType.AllowedExtensions = strings.TrimSpace(*req.ExtensionesPermitidas)
	}
	if req.Icono != nil {
		fileType.Icon = *req.Icono
	}

	if err := s.fileTypeRepo.Update(ctx, fileType); err != nil {
		logger.ErrorContext(ctx, "Failed to update file type", "file_type_id", id, "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedMedia)
	return fileType, nil
}

func (s *FileTypeServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.fileTypeRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "tipo", id)
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedMedia)
	logger.InfoContext(ctx, "File type deleted", "file_type_id", id)
	return nil
}

func (s *FileTypeServiceImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.FileType, error) {
	return s.fileTypeRepo.List(ctx, opts)
}

// === Collection ===

type CollectionServiceImpl struct {
	collectionRepo repositories.CollectionRepository
	fileRepo       repositories.MediaFileRepository
	cache          ports.CachePort
	now            clock
}

func NewCollectionService(
	collectionRepo repositories.CollectionRepository,
	fileRepo repositories.MediaFileRepository,
	cache ports.CachePort,
) services.CollectionService {
	return &CollectionServiceImpl{
		collectionRepo: collectionRepo,
		fileRepo:       fileRepo,
		cache:          cache,
		now:            systemClock,
	}
}

func (s *CollectionServiceImpl) Create(ctx context.Context, req *dto.CreateCollectionRequest) (*models.Collection, error) {
	thumbnail, err := optionalStoragePath("miniatura", valueOr(req.Miniatura, ""))
	if err != nil {
		return nil, err
	}

	collection := &models.Collection{
		Name:        strings.TrimSpace(req.Nombre),
		Description: valueOr(req.Descripcion, ""),
		CreatedAt:   s.now(),
		Public:      true,
		Thumbnail:   thumbnail,
	}
	if req.Publica != nil {
		collection.Public = *req.Publica
	}

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		logger.ErrorContext(ctx, "Failed to create collection", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Collection created", "collection_id", collection.ID)
	return s.GetByID(ctx, collection.ID)
}

func (s *CollectionServiceImpl) GetByID(ctx context.Context, id uint) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "coleccion", id)
	}
	return collection, nil
}

func (s *CollectionServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateCollectionRequest) (*models.Collection, error) {
	collection, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		collection.Name = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		collection.Description = *req.Descripcion
	}
	if req.Publica != nil {
		collection.Public = *req.Publica
	}
	if req.Miniatura != nil {
		if collection.Thumbnail, err = optionalStoragePath("miniatura", *req.Miniatura); err != nil {
			return nil, err
		}
	}

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		logger.ErrorContext(ctx, "Failed to update collection", "collection_id", id, "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedMedia)
	return s.GetByID(ctx, id)
}

func (s *CollectionServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.collectionRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "coleccion", id)
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedMedia)
	logger.InfoContext(ctx, "Collection deleted", "collection_id", id)
	return nil
}

func (s *CollectionServiceImpl) List(ctx context.Context, filter dto.CollectionFilter) ([]*models.Collection, error) {
	return s.collectionRepo.List(ctx, filter)
}

func (s *CollectionServiceImpl) ListFiles(ctx context.Context, id uint) ([]*models.MediaFile, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.fileRepo.List(ctx, dto.MediaFileFilter{CollectionID: &id})
}

// === MediaFile ===

type MediaFileServiceImpl struct {
	fileRepo       repositories.MediaFileRepository
	fileTypeRepo   repositories.FileTypeRepository
	collectionRepo repositories.CollectionRepository
	commentRepo    repositories.MediaCommentRepository
	publisher      ports.EventPublisherPort
	cache          ports.CachePort
	cacheTTL       time.Duration
	now            clock
}

func NewMediaFileService(
	fileRepo repositories.MediaFileRepository,
	fileTypeRepo repositories.FileTypeRepository,
	collectionRepo repositories.CollectionRepository,
	commentRepo repositories.MediaCommentRepository,
	publisher ports.EventPublisherPort,
	cache ports.CachePort,
	cacheTTL time.Duration,
) services.MediaFileService {
	return &MediaFileServiceImpl{
		fileRepo:       fileRepo,
		fileTypeRepo:   fileTypeRepo,
		collectionRepo: collectionRepo,
		commentRepo:    commentRepo,
		publisher:      publisher,
		cache:          cache,
		cacheTTL:       cacheTTL,
		now:            systemClock,
	}
}

func (s *MediaFileServiceImpl) Create(ctx context.Context, req *dto.CreateMediaFileRequest) (*models.MediaFile, error) {
	fileType, err := s.loadFileType(ctx, req.TipoArchivo)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCollection(ctx, req.Coleccion.Value); err != nil {
		return nil, err
	}
	archivo, err := storagePath("archivo", req.Archivo)
	if err != nil {
		return nil, err
	}
	if err := validateMediaExtension(archivo, fileType); err != nil {
		return nil, err
	}
	thumbnail, err := optionalStoragePath("miniatura", valueOr(req.Miniatura, ""))
	if err != nil {
		return nil, err
	}
	if err := validateDuration(req.DuracionSegundos.Value); err != nil {
		return nil, err
	}

	file := &models.MediaFile{
		Title:           strings.TrimSpace(req.Titulo),
		Description:     valueOr(req.Descripcion, ""),
		File:            archivo,
		Thumbnail:       thumbnail,
		UploadedAt:      s.now(),
		FileTypeID:      req.TipoArchivo,
		CollectionID:    req.Coleccion.Value,
		DurationSeconds: req.DuracionSegundos.Value,
	}
	if req.TamanoBytes != nil {
		file.SizeBytes = *req.TamanoBytes
	}
	if req.Destacado != nil {
		file.Featured = *req.Destacado
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		logger.ErrorContext(ctx, "Failed to create media file", "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedMedia)

	logger.InfoContext(ctx, "Media file created", "file_id", file.ID, "file_type_id", file.FileTypeID)
	return s.GetByID(ctx, file.ID)
}

func (s *MediaFileServiceImpl) GetByID(ctx context.Context, id uint) (*models.MediaFile, error) {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "archivo", id)
	}
	return file, nil
}

func (s *MediaFileServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateMediaFileRequest) (*models.MediaFile, error) {
	file, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fileType := file.FileType
	if req.TipoArchivo != nil && *req.TipoArchivo != file.FileTypeID {
		if fileType, err = s.loadFileType(ctx, *req.TipoArchivo); err != nil {
			return nil, err
		}
		file.FileTypeID = fileType.ID
	}
	if req.Coleccion.Set {
		if err := s.ensureCollection(ctx, req.Coleccion.Value); err != nil {
			return nil, err
		}
		file.CollectionID = req.Coleccion.Value
	}
	if req.Archivo != nil {
		if file.File, err = storagePath("archivo", *req.Archivo); err != nil {
			return nil, err
		}
	}
	// ตรวจใหม่เมื่อเปลี่ยนไฟล์หรือประเภท
	if req.Archivo != nil || req.TipoArchivo != nil {
		if err := validateMediaExtension(file.File, fileType); err != nil {
			return nil, err
		}
	}
	if req.DuracionSegundos.Set {
		if err := validateDuration(req.DuracionSegundos.Value); err != nil {
			return nil, err
		}
		file.DurationSeconds = req.DuracionSegundos.Value
	}

	if req.Titulo != nil {
		file.Title = strings.TrimSpace(*req.Titulo)
	}
	if req.Descripcion != nil {
		file.Description = *req.Descripcion
	}
	if req.Miniatura != nil {
		if file.Thumbnail, err = optionalStoragePath("miniatura", *req.Miniatura); err != nil {
			return nil, err
		}
	}
	if req.TamanoBytes != nil {
		file.SizeBytes = *req.TamanoBytes
	}
	if req.Destacado != nil {
		file.Featured = *req.Destacado
	}

	file.FileType = nil
	file.Collection = nil
	file.Comments = nil
	if err := s.fileRepo.Update(ctx, file); err != nil {
		logger.ErrorContext(ctx, "Failed to update media file", "file_id", id, "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedMedia)
	return s.GetByID(ctx, id)
}

func (s *MediaFileServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.fileRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "archivo", id)
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedMedia)
	logger.InfoContext(ctx, "Media file deleted", "file_id", id)
	return nil
}

func (s *MediaFileServiceImpl) List(ctx context.Context, filter dto.MediaFileFilter) ([]*models.MediaFile, error) {
	return s.fileRepo.List(ctx, filter)
}

func (s *MediaFileServiceImpl) Featured(ctx context.Context) ([]*models.MediaFile, error) {
	var files []*models.MediaFile
	err := s.cache.GetOrSet(ctx, cacheKeyFeaturedMedia, &files, s.cacheTTL, func() (any, error) {
		featured := true
		return s.fileRepo.List(ctx, dto.MediaFileFilter{Featured: &featured})
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load featured media files", "error", err)
		return nil, err
	}
	return files, nil
}

func (s *MediaFileServiceImpl) AddComment(ctx context.Context, id uint, req *dto.AddCommentRequest) (*models.MediaComment, error) {
	exists, err := s.fileRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, services.NotFound("archivo", id)
	}

	comment := &models.MediaComment{
		MediaFileID: id,
		Author:      req.AuthorOrAnonymous(),
		Text:        req.Texto,
		CreatedAt:   s.now(),
		Approved:    false,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to add media comment", "file_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Media comment added", "file_id", id, "comment_id", comment.ID)
	publishEvent(ctx, s.publisher, ports.NewDomainEvent(ports.SubjectMediaCommentCreated, "multimedia", "comentarios", comment.ID, map[string]any{
		"archivo": id,
		"autor":   comment.Author,
	}))
	return comment, nil
}

func (s *MediaFileServiceImpl) loadFileType(ctx context.Context, id uint) (*models.FileType, error) {
	fileType, err := s.fileTypeRepo.GetByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, invalidPK("tipo_archivo", id)
		}
		return nil, err
	}
	return fileType, nil
}

func (s *MediaFileServiceImpl) ensureCollection(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.collectionRepo.GetByID(ctx, *id); err != nil {
		if isRecordNotFound(err) {
			return invalidPK("coleccion", *id)
		}
		return err
	}
	return nil
}

// validateMediaExtension นามสกุลต้องอยู่ทั้งใน allow-list ของระบบและของประเภทไฟล์
func validateMediaExtension(name string, fileType *models.FileType) error {
	ext := models.FileExtension(name)
	if !slices.Contains(models.AllowedMediaExtensions, ext) {
		return services.NewFieldError("archivo", fmt.Sprintf(
			"File extension “%s” is not allowed. Allowed extensions are: %s.",
			ext, strings.Join(models.AllowedMediaExtensions, ", ")))
	}
	if fileType != nil && !fileType.Allows(ext) {
		return services.NewValidationError(
			"El archivo no tiene una extensión permitida para este tipo. Extensiones permitidas: " +
				strings.Join(fileType.Extensions(), ", "))
	}
	return nil
}

func validateDuration(seconds *int) error {
	if seconds != nil && *seconds < 0 {
		return services.NewFieldError("duracion_segundos", "Ensure this value is greater than or equal to 0.")
	}
	return nil
}

// === MediaComment ===

type MediaCommentServiceImpl struct {
	commentRepo repositories.MediaCommentRepository
	fileRepo    repositories.MediaFileRepository
	publisher   ports.EventPublisherPort
	now         clock
}

func NewMediaCommentService(
	commentRepo repositories.MediaCommentRepository,
	fileRepo repositories.MediaFileRepository,
	publisher ports.EventPublisherPort,
) services.MediaCommentService {
	return &MediaCommentServiceImpl{
		commentRepo: commentRepo,
		fileRepo:    fileRepo,
		publisher:   publisher,
		now:         systemClock,
	}
}

func (s *MediaCommentServiceImpl) Create(ctx context.Context, req *dto.CreateMediaCommentRequest) (*models.MediaComment, error) {
	if err := s.ensureFile(ctx, req.Archivo); err != nil {
		return nil, err
	}

	comment := &models.MediaComment{
		MediaFileID: req.Archivo,
		Author:      trimmedOr(req.Autor, dto.AnonymousAuthor),
		Text:        req.Texto,
		CreatedAt:   s.now(),
	}
	if req.Aprobado != nil {
		comment.Approved = *req.Aprobado
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to create media comment", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Media comment created", "comment_id", comment.ID, "file_id", comment.MediaFileID)
	return comment, nil
}

func (s *MediaCommentServiceImpl) GetByID(ctx context.Context, id uint) (*models.MediaComment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "comentario", id)
	}
	return comment, nil
}

func (s *MediaCommentServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateMediaCommentRequest) (*models.MediaComment, error) {
	comment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Archivo != nil && *req.Archivo != comment.MediaFileID {
		if err := s.ensureFile(ctx, *req.Archivo); err != nil {
			return nil, err
		}
		comment.MediaFileID = *req.Archivo
	}
	if req.Autor != nil {
		comment.Author = trimmedOr(req.Autor, dto.AnonymousAuthor)
	}
	if req.Texto != nil {
		comment.Text = *req.Texto
	}
	if req.Aprobado != nil {
		comment.Approved = *req.Aprobado
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to update media comment", "comment_id", id, "error", err)
		return nil, err
	}
	return comment, nil
}

func (s *MediaCommentServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "comentario", id)
	}
	logger.InfoContext(ctx, "Media comment deleted", "comment_id", id)
	return nil
}

func (s *MediaCommentServiceImpl) List(ctx context.Context, filter dto.MediaCommentFilter) ([]*models.MediaComment, error) {
	return s.commentRepo.List(ctx, filter)
}

func (s *MediaCommentServiceImpl) Approve(ctx context.Context, id uint) (*models.MediaComment, error) {
	comment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Approved = true
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to approve media comment", "comment_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Media comment approved", "comment_id", id)
	publishEvent(ctx, s.publisher, ports.NewDomainEvent(ports.SubjectMediaCommentApproved, "multimedia", "comentarios", id, map[string]any{
		"archivo": comment.MediaFileID,
	}))
	return comment, nil
}

func (s *MediaCommentServiceImpl) ensureFile(ctx context.Context, id uint) error {
	exists, err := s.fileRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return invalidPK("archivo", id)
	}
	return nil
}
