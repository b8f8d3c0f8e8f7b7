package services

import (
	"context"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
)

type FileTypeService interface {
	Create(ctx context.Context, req *dto.CreateFileTypeRequest) (*models.FileType, error)
	GetByID(ctx context.Context, id uint) (*models.FileType, error)
	Update(ctx context.Context, id uint, req *dto.UpdateFileTypeRequest) (*models.FileType, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.FileType, error)
}

type CollectionService interface {
	Create(ctx context.Context, req *dto.CreateCollectionRequest) (*models.Collection, error)
	GetByID(ctx context.Context, id uint) (*models.Collection, error)
	Update(ctx context.Context, id uint, req *dto.UpdateCollectionRequest) (*models.Collection, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.CollectionFilter) ([]*models.Collection, error)

	// ListFiles ไฟล์ในคอลเลกชัน (colecciones/:id/archivos)
	ListFiles(ctx context.Context, id uint) ([]*models.MediaFile, error)
}

type MediaFileService interface {
	// Create ตรวจนามสกุลไฟล์กับ allow-list และ extensiones_permitidas ของประเภท
	Create(ctx context.Context, req *dto.CreateMediaFileRequest) (*models.MediaFile, error)
	GetByID(ctx context.Context, id uint) (*models.MediaFile, error)
	Update(ctx context.Context, id uint, req *dto.UpdateMediaFileRequest) (*models.MediaFile, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.MediaFileFilter) ([]*models.MediaFile, error)

	// Featured ไฟล์ destacado (cache)
	Featured(ctx context.Context) ([]*models.MediaFile, error)

	// AddComment สร้างความคิดเห็นที่ยังไม่อนุมัติ
	AddComment(ctx context.Context, id uint, req *dto.AddCommentRequest) (*models.MediaComment, error)
}

type MediaCommentService interface {
	Create(ctx context.Context, req *dto.CreateMediaCommentRequest) (*models.MediaComment, error)
	GetByID(ctx context.Context, id uint) (*models.MediaComment, error)
	Update(ctx context.Context, id uint, req *dto.UpdateMediaCommentRequest) (*models.MediaComment, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.MediaCommentFilter) ([]*models.MediaComment, error)

	// Approve set aprobado = true
	Approve(ctx context.Context, id uint) (*models.MediaComment, error)
}
