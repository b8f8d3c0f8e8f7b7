package repositories

import (
	"context"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
)

type GalleryCategoryRepository interface {
	Create(ctx context.Context, category *models.GalleryCategory) error
	GetByID(ctx context.Context, id uint) (*models.GalleryCategory, error)
	GetBySlug(ctx context.Context, slug string) (*models.GalleryCategory, error)
	// SlugExists excludeID = 0 หมายถึงไม่ยกเว้น record ใด
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	Update(ctx context.Context, category *models.GalleryCategory) error
	// Delete set categoria ของรูปภาพเป็น null ก่อนลบ
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.GalleryCategory, error)
}

type PhotographerRepository interface {
	Create(ctx context.Context, photographer *models.Photographer) error
	GetByID(ctx context.Context, id uint) (*models.Photographer, error)
	GetByEmail(ctx context.Context, email string) (*models.Photographer, error)
	Update(ctx context.Context, photographer *models.Photographer) error
	// Delete ลบรูปภาพทั้งหมดของช่างภาพด้วย
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.Photographer, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	// GetByID preload Category, Photographer และ Tags
	GetByID(ctx context.Context, id uint) (*models.Image, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	Update(ctx context.Context, image *models.Image) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ImageFilter) ([]*models.Image, error)
}

type ImageTagRepository interface {
	Create(ctx context.Context, tag *models.ImageTag, imageIDs []uint) error
	// GetByID preload Images (เฉพาะ id)
	GetByID(ctx context.Context, id uint) (*models.ImageTag, error)
	GetByName(ctx context.Context, name string) (*models.ImageTag, error)
	// Update imageIDs != nil จะ replace ชุดรูปภาพ
	Update(ctx context.Context, tag *models.ImageTag, imageIDs []uint) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.ImageTag, error)
}
