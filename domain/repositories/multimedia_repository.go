package repositories

import (
	"context"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
)

type FileTypeRepository interface {
	Create(ctx context.Context, fileType *models.FileType) error
	GetByID(ctx context.Context, id uint) (*models.FileType, error)
	Update(ctx context.Context, fileType *models.FileType) error
	// Delete ลบไฟล์ของประเภทนี้และความคิดเห็นของไฟล์เหล่านั้นด้วย
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.FileType, error)
}

type CollectionRepository interface {
	Create(ctx context.Context, collection *models.Collection) error
	// GetByID คำนวณ FileCount ให้ด้วย
	GetByID(ctx context.Context, id uint) (*models.Collection, error)
	Update(ctx context.Context, collection *models.Collection) error
	// Delete set coleccion ของไฟล์เป็น null ก่อนลบ
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.CollectionFilter) ([]*models.Collection, error)
}

type MediaFileRepository interface {
	Create(ctx context.Context, file *models.MediaFile) error
	// GetByID preload FileType, Collection (พร้อม FileCount) และ Comments
	GetByID(ctx context.Context, id uint) (*models.MediaFile, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, file *models.MediaFile) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.MediaFileFilter) ([]*models.MediaFile, error)
}

type MediaCommentRepository interface {
	Create(ctx context.Context, comment *models.MediaComment) error
	GetByID(ctx context.Context, id uint) (*models.MediaComment, error)
	Update(ctx context.Context, comment *models.MediaComment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.MediaCommentFilter) ([]*models.MediaComment, error)
}
