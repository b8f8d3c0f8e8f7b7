package repositories

import (
	"context"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
)

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	// Delete ลบโปรเจกต์ของลูกค้า (รวมงานและความคิดเห็น) ด้วย
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.Client, error)
}

type ProjectCategoryRepository interface {
	Create(ctx context.Context, category *models.ProjectCategory) error
	GetByID(ctx context.Context, id uint) (*models.ProjectCategory, error)
	Update(ctx context.Context, category *models.ProjectCategory) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.ProjectCategory, error)
	// CountProjects ใช้ตรวจก่อนลบ (category ที่มีโปรเจกต์ลบไม่ได้)
	CountProjects(ctx context.Context, id uint) (int64, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	// GetByID preload Client, Category และ MainImage
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ProjectFilter) ([]*models.Project, error)
}

type ProjectTaskRepository interface {
	Create(ctx context.Context, task *models.ProjectTask) error
	GetByID(ctx context.Context, id uint) (*models.ProjectTask, error)
	Update(ctx context.Context, task *models.ProjectTask) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ProjectTaskFilter) ([]*models.ProjectTask, error)
}

type ProjectCommentRepository interface {
	Create(ctx context.Context, comment *models.ProjectComment) error
	GetByID(ctx context.Context, id uint) (*models.ProjectComment, error)
	Update(ctx context.Context, comment *models.ProjectComment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ProjectCommentFilter) ([]*models.ProjectComment, error)
}
