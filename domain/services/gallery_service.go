package services

import (
	"context"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
)

type GalleryCategoryService interface {
	// Create สร้าง category พร้อม slug ที่ไม่ซ้ำ
	Create(ctx context.Context, req *dto.CreateGalleryCategoryRequest) (*models.GalleryCategory, error)
	GetByID(ctx context.Context, id uint) (*models.GalleryCategory, error)
	GetBySlug(ctx context.Context, slug string) (*models.GalleryCategory, error)
	Update(ctx context.Context, id uint, req *dto.UpdateGalleryCategoryRequest) (*models.GalleryCategory, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.GalleryCategory, error)
}

type PhotographerService interface {
	Create(ctx context.Context, req *dto.CreatePhotographerRequest) (*models.Photographer, error)
	GetByID(ctx context.Context, id uint) (*models.Photographer, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePhotographerRequest) (*models.Photographer, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.Photographer, error)
}

type ImageService interface {
	Create(ctx context.Context, req *dto.CreateImageRequest) (*models.Image, error)
	GetByID(ctx context.Context, id uint) (*models.Image, error)
	Update(ctx context.Context, id uint, req *dto.UpdateImageRequest) (*models.Image, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ImageFilter) ([]*models.Image, error)

	// Featured รูปภาพ destacada (cache)
	Featured(ctx context.Context) ([]*models.Image, error)
}

type ImageTagService interface {
	Create(ctx context.Context, req *dto.CreateImageTagRequest) (*models.ImageTag, error)
	GetByID(ctx context.Context, id uint) (*models.ImageTag, error)
	Update(ctx context.Context, id uint, req *dto.UpdateImageTagRequest) (*models.ImageTag, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.ImageTag, error)
}
