package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/ports"
	"pc2-api/domain/repositories"
	"pc2-api/domain/services"
	"pc2-api/pkg/logger"
	"pc2-api/pkg/utils"
)

const cacheKeyFeaturedImages = "galeria:imagenes:destacadas"

// === GalleryCategory ===

type GalleryCategoryServiceImpl struct {
	categoryRepo repositories.GalleryCategoryRepository
	cache        ports.CachePort
}

func NewGalleryCategoryService(categoryRepo repositories.GalleryCategoryRepository, cache ports.CachePort) services.GalleryCategoryService {
	return &GalleryCategoryServiceImpl{categoryRepo: categoryRepo, cache: cache}
}

func (s *GalleryCategoryServiceImpl) Create(ctx context.Context, req *dto.CreateGalleryCategoryRequest) (*models.GalleryCategory, error) {
	name := strings.TrimSpace(req.Nombre)
	uniqueSlug, err := s.uniqueSlug(ctx, name, 0)
	if err != nil {
		return nil, err
	}

	category := &models.GalleryCategory{
		Name:        name,
		Slug:        uniqueSlug,
		Description: valueOr(req.Descripcion, ""),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create gallery category", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Gallery category created", "category_id", category.ID, "slug", category.Slug)
	return category, nil
}

func (s *GalleryCategoryServiceImpl) GetByID(ctx context.Context, id uint) (*models.GalleryCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "categoria", id)
	}
	return category, nil
}

func (s *GalleryCategoryServiceImpl) GetBySlug(ctx context.Context, categorySlug string) (*models.GalleryCategory, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, mapNotFound(err, "categoria", categorySlug)
	}
	return category, nil
}

func (s *GalleryCategoryServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateGalleryCategoryRequest) (*models.GalleryCategory, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		name := strings.TrimSpace(*req.Nombre)
		if name != category.Name {
			if category.Slug, err = s.uniqueSlug(ctx, name, id); err != nil {
				return nil, err
			}
			category.Name = name
		}
	}
	if req.Descripcion != nil {
		category.Description = *req.Descripcion
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update gallery category", "category_id", id, "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedImages)
	return category, nil
}

func (s *GalleryCategoryServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "categoria", id)
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedImages)
	logger.InfoContext(ctx, "Gallery category deleted", "category_id", id)
	return nil
}

func (s *GalleryCategoryServiceImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.GalleryCategory, error) {
	return s.categoryRepo.List(ctx, opts)
}

// uniqueSlug สร้าง slug จากชื่อ ถ้าซ้ำต่อท้าย -2, -3, ...
func (s *GalleryCategoryServiceImpl) uniqueSlug(ctx context.Context, name string, selfID uint) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "categoria"
	}

	candidate := base
	for n := 2; ; n++ {
		exists, err := s.categoryRepo.SlugExists(ctx, candidate, selfID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// === Photographer ===

type PhotographerServiceImpl struct {
	photographerRepo repositories.PhotographerRepository
	cache            ports.CachePort
	now              clock
}

func NewPhotographerService(photographerRepo repositories.PhotographerRepository, cache ports.CachePort) services.PhotographerService {
	return &PhotographerServiceImpl{photographerRepo: photographerRepo, cache: cache, now: systemClock}
}

func (s *PhotographerServiceImpl) Create(ctx context.Context, req *dto.CreatePhotographerRequest) (*models.Photographer, error) {
	email := strings.TrimSpace(req.Email)
	if err := s.ensureEmailAvailable(ctx, email, 0); err != nil {
		return nil, err
	}

	photographer := &models.Photographer{
		FirstName:    strings.TrimSpace(req.Nombre),
		LastName:     strings.TrimSpace(req.Apellido),
		Email:        email,
		Biography:    valueOr(req.Biografia, ""),
		RegisteredAt: s.now(),
	}
	if err := s.photographerRepo.Create(ctx, photographer); err != nil {
		logger.ErrorContext(ctx, "Failed to create photographer", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Photographer created", "photographer_id", photographer.ID)
	return photographer, nil
}

func (s *PhotographerServiceImpl) GetByID(ctx context.Context, id uint) (*models.Photographer, error) {
	photographer, err := s.photographerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "fotografo", id)
	}
	return photographer, nil
}

func (s *PhotographerServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdatePhotographerRequest) (*models.Photographer, error) {
	photographer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if err := s.ensureEmailAvailable(ctx, email, id); err != nil {
			return nil, err
		}
		photographer.Email = email
	}
	if req.Nombre != nil {
		photographer.FirstName = strings.TrimSpace(*req.Nombre)
	}
	if req.Apellido != nil {
		photographer.LastName = strings.TrimSpace(*req.Apellido)
	}
	if req.Biografia != nil {
		photographer.Biography = *req.Biografia
	}

	if err := s.photographerRepo.Update(ctx, photographer); err != nil {
		logger.ErrorContext(ctx, "Failed to update photographer", "photographer_id", id, "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedImages)
	return photographer, nil
}

func (s *PhotographerServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.photographerRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "fotografo", id)
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedImages)
	logger.InfoContext(ctx, "Photographer deleted", "photographer_id", id)
	return nil
}

func (s *PhotographerServiceImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.Photographer, error) {
	return s.photographerRepo.List(ctx, opts)
}

func (s *PhotographerServiceImpl) ensureEmailAvailable(ctx context.Context, email string, selfID uint) error {
	existing, err := s.photographerRepo.GetByEmail(ctx, email)
	if err != nil {
		if isRecordNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return duplicateValue("fotografo", "email")
	}
	return nil
}

// === Image ===

type ImageServiceImpl struct {
	imageRepo        repositories.ImageRepository
	categoryRepo     repositories.GalleryCategoryRepository
	photographerRepo repositories.PhotographerRepository
	cache            ports.CachePort
	cacheTTL         time.Duration
	now              clock
}

func NewImageService(
	imageRepo repositories.ImageRepository,
	categoryRepo repositories.GalleryCategoryRepository,
	photographerRepo repositories.PhotographerRepository,
	cache ports.CachePort,
	cacheTTL time.Duration,
) services.ImageService {
	return &ImageServiceImpl{
		imageRepo:        imageRepo,
		categoryRepo:     categoryRepo,
		photographerRepo: photographerRepo,
		cache:            cache,
		cacheTTL:         cacheTTL,
		now:              systemClock,
	}
}

func (s *ImageServiceImpl) Create(ctx context.Context, req *dto.CreateImageRequest) (*models.Image, error) {
	if err := s.ensurePhotographer(ctx, req.Fotografo); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, req.Categoria.Value); err != nil {
		return nil, err
	}
	archivo, err := storagePath("archivo", req.Archivo)
	if err != nil {
		return nil, err
	}

	image := &models.Image{
		Title:          strings.TrimSpace(req.Titulo),
		Description:    valueOr(req.Descripcion, ""),
		File:           archivo,
		UploadedAt:     s.now(),
		CategoryID:     req.Categoria.Value,
		PhotographerID: req.Fotografo,
		Location:       valueOr(req.Ubicacion, ""),
		CapturedOn:     req.FechaCaptura.Value,
	}
	if req.Destacada != nil {
		image.Featured = *req.Destacada
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		logger.ErrorContext(ctx, "Failed to create image", "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedImages)

	logger.InfoContext(ctx, "Image created", "image_id", image.ID, "photographer_id", image.PhotographerID)
	return s.GetByID(ctx, image.ID)
}

func (s *ImageServiceImpl) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "imagen", id)
	}
	return image, nil
}

func (s *ImageServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateImageRequest) (*models.Image, error) {
	image, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Fotografo != nil && *req.Fotografo != image.PhotographerID {
		if err := s.ensurePhotographer(ctx, *req.Fotografo); err != nil {
			return nil, err
		}
		image.PhotographerID = *req.Fotografo
	}
	if req.Categoria.Set {
		if err := s.ensureCategory(ctx, req.Categoria.Value); err != nil {
			return nil, err
		}
		image.CategoryID = req.Categoria.Value
	}

	if req.Titulo != nil {
		image.Title = strings.TrimSpace(*req.Titulo)
	}
	if req.Descripcion != nil {
		image.Description = *req.Descripcion
	}
	if req.Archivo != nil {
		if image.File, err = storagePath("archivo", *req.Archivo); err != nil {
			return nil, err
		}
	}
	if req.Ubicacion != nil {
		image.Location = *req.Ubicacion
	}
	if req.FechaCaptura.Set {
		image.CapturedOn = req.FechaCaptura.Value
	}
	if req.Destacada != nil {
		image.Featured = *req.Destacada
	}

	image.Category = nil
	image.Photographer = nil
	image.Tags = nil
	if err := s.imageRepo.Update(ctx, image); err != nil {
		logger.ErrorContext(ctx, "Failed to update image", "image_id", id, "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedImages)
	return s.GetByID(ctx, id)
}

func (s *ImageServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.imageRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "imagen", id)
	}
	invalidateCache(ctx, s.cache, cacheKeyFeaturedImages)
	logger.InfoContext(ctx, "Image deleted", "image_id", id)
	return nil
}

func (s *ImageServiceImpl) List(ctx context.Context, filter dto.ImageFilter) ([]*models.Image, error) {
	return s.imageRepo.List(ctx, filter)
}

func (s *ImageServiceImpl) Featured(ctx context.Context) ([]*models.Image, error) {
	var images []*models.Image
	err := s.cache.GetOrSet(ctx, cacheKeyFeaturedImages, &images, s.cacheTTL, func() (any, error) {
		featured := true
		return s.imageRepo.List(ctx, dto.ImageFilter{Featured: &featured})
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load featured images", "error", err)
		return nil, err
	}
	return images, nil
}

func (s *ImageServiceImpl) ensurePhotographer(ctx context.Context, id uint) error {
	if _, err := s.photographerRepo.GetByID(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return invalidPK("fotografo", id)
		}
		return err
	}
	return nil
}

func (s *ImageServiceImpl) ensureCategory(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.categoryRepo.GetByID(ctx, *id); err != nil {
		if isRecordNotFound(err) {
			return invalidPK("categoria", *id)
		}
		return err
	}
	return nil
}

// === ImageTag ===

type ImageTagServiceImpl struct {
	tagRepo   repositories.ImageTagRepository
	imageRepo repositories.ImageRepository
}

func NewImageTagService(tagRepo repositories.ImageTagRepository, imageRepo repositories.ImageRepository) services.ImageTagService {
	return &ImageTagServiceImpl{tagRepo: tagRepo, imageRepo: imageRepo}
}

func (s *ImageTagServiceImpl) Create(ctx context.Context, req *dto.CreateImageTagRequest) (*models.ImageTag, error) {
	name := strings.TrimSpace(req.Nombre)
	if err := s.ensureNameAvailable(ctx, name, 0); err != nil {
		return nil, err
	}
	imageIDs, err := s.resolveImages(ctx, req.Imagenes)
	if err != nil {
		return nil, err
	}

	tag := &models.ImageTag{Name: name}
	if err := s.tagRepo.Create(ctx, tag, imageIDs); err != nil {
		logger.ErrorContext(ctx, "Failed to create image tag", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Image tag created", "tag_id", tag.ID, "images", len(imageIDs))
	return s.GetByID(ctx, tag.ID)
}

func (s *ImageTagServiceImpl) GetByID(ctx context.Context, id uint) (*models.ImageTag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "etiqueta", id)
	}
	return tag, nil
}

func (s *ImageTagServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateImageTagRequest) (*models.ImageTag, error) {
	tag, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		name := strings.TrimSpace(*req.Nombre)
		if err := s.ensureNameAvailable(ctx, name, id); err != nil {
			return nil, err
		}
		tag.Name = name
	}

	var imageIDs []uint
	if req.Imagenes != nil {
		if imageIDs, err = s.resolveImages(ctx, *req.Imagenes); err != nil {
			return nil, err
		}
	}

	tag.Images = nil
	if err := s.tagRepo.Update(ctx, tag, imageIDs); err != nil {
		logger.ErrorContext(ctx, "Failed to update image tag", "tag_id", id, "error", err)
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ImageTagServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "etiqueta", id)
	}
	logger.InfoContext(ctx, "Image tag deleted", "tag_id", id)
	return nil
}

func (s *ImageTagServiceImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.ImageTag, error) {
	return s.tagRepo.List(ctx, opts)
}

// resolveImages ตัด id ซ้ำ และคืน invalid pk ของ id แรกที่ไม่มีอยู่
func (s *ImageTagServiceImpl) resolveImages(ctx context.Context, ids []uint) ([]uint, error) {
	unique := utils.UniqueIDs(ids)
	if len(unique) == 0 {
		return unique, nil
	}

	count, err := s.imageRepo.CountByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if count == int64(len(unique)) {
		return unique, nil
	}

	for _, id := range unique {
		n, err := s.imageRepo.CountByIDs(ctx, []uint{id})
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, invalidPK("imagenes", id)
		}
	}
	return unique, nil
}

func (s *ImageTagServiceImpl) ensureNameAvailable(ctx context.Context, name string, selfID uint) error {
	existing, err := s.tagRepo.GetByName(ctx, name)
	if err != nil {
		if isRecordNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return duplicateValue("etiqueta", "nombre")
	}
	return nil
}
