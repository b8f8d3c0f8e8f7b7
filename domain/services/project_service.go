package services

import (
	"context"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
)

// ProjectDetail โปรเจกต์พร้อมงานและความคิดเห็น
type ProjectDetail struct {
	Project  *models.Project
	Tasks    []*models.ProjectTask
	Comments []*models.ProjectComment
}

type ClientService interface {
	Create(ctx context.Context, req *dto.CreateClientRequest) (*models.Client, error)
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	Update(ctx context.Context, id uint, req *dto.UpdateClientRequest) (*models.Client, error)

	// Delete ลบโปรเจกต์ทั้งหมดของลูกค้าด้วย
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.Client, error)
}

type ProjectCategoryService interface {
	Create(ctx context.Context, req *dto.CreateProjectCategoryRequest) (*models.ProjectCategory, error)
	GetByID(ctx context.Context, id uint) (*models.ProjectCategory, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProjectCategoryRequest) (*models.ProjectCategory, error)

	// Delete ลบไม่ได้ถ้ายังมีโปรเจกต์อ้างอิง
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.ProjectCategory, error)
}

type ProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*ProjectDetail, error)
	GetDetail(ctx context.Context, id uint) (*ProjectDetail, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProjectRequest) (*ProjectDetail, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ProjectFilter) ([]*models.Project, error)

	// ListTasks งานของโปรเจกต์ (proyectos/:id/tareas)
	ListTasks(ctx context.Context, id uint) ([]*models.ProjectTask, error)

	// AddComment เพิ่มความคิดเห็น (autor default "Anónimo")
	AddComment(ctx context.Context, id uint, req *dto.AddCommentRequest) (*models.ProjectComment, error)

	// Overdue โปรเจกต์ที่เลยวันส่งและยังไม่ปิด (cache)
	Overdue(ctx context.Context) ([]*models.Project, error)

	// ByStatus estado ว่าง = ทุกโปรเจกต์
	ByStatus(ctx context.Context, status string) ([]*models.Project, error)

	// SweepOverdue ใช้โดย scheduler: publish event ของโปรเจกต์ที่เลยกำหนด
	SweepOverdue(ctx context.Context) (int, error)
}

type ProjectTaskService interface {
	Create(ctx context.Context, req *dto.CreateProjectTaskRequest) (*models.ProjectTask, error)
	GetByID(ctx context.Context, id uint) (*models.ProjectTask, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProjectTaskRequest) (*models.ProjectTask, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ProjectTaskFilter) ([]*models.ProjectTask, error)

	// Complete set completada = true (เรียกซ้ำได้)
	Complete(ctx context.Context, id uint) (*models.ProjectTask, error)
}

type ProjectCommentService interface {
	Create(ctx context.Context, req *dto.CreateProjectCommentRequest) (*models.ProjectComment, error)
	GetByID(ctx context.Context, id uint) (*models.ProjectComment, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProjectCommentRequest) (*models.ProjectComment, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ProjectCommentFilter) ([]*models.ProjectComment, error)
}
