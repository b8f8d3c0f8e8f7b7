package services

import (
	"context"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
)

type TaskListService interface {
	Create(ctx context.Context, req *dto.CreateTaskListRequest) (*models.TaskList, error)

	// GetByID ดึงรายการพร้อม tasks (ใช้ทำ detail: total_tareas, tareas_completadas)
	GetByID(ctx context.Context, id uint) (*models.TaskList, error)

	Update(ctx context.Context, id uint, req *dto.UpdateTaskListRequest) (*models.TaskList, error)

	// Delete ลบรายการและ tasks ทั้งหมดในรายการ
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, opts dto.ListOptions) ([]*models.TaskList, error)

	// ListTasks tasks ในรายการ (listas/:id/tareas)
	ListTasks(ctx context.Context, id uint) ([]*models.Task, error)
}

type TaskService interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, id uint) error

	// List ใช้ทั้ง list ปกติและ /filtrar
	List(ctx context.Context, filter dto.TaskFilter) ([]*models.Task, error)

	// Complete mark task ว่าเสร็จ; ถ้าเสร็จอยู่แล้วคืน ValidationError
	Complete(ctx context.Context, id uint) (*models.Task, error)

	// AssignTags แทนที่ชุด tag ทั้งหมด; tag ที่ไม่มีอยู่จริงทำให้ไม่เปลี่ยนอะไรเลย
	AssignTags(ctx context.Context, id uint, tagIDs []uint) (*models.Task, error)
}

type TagService interface {
	Create(ctx context.Context, req *dto.CreateTagRequest) (*models.Tag, error)
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTagRequest) (*models.Tag, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.Tag, error)

	// ListTasks tasks ที่ติด tag นี้ (etiquetas/:id/tareas)
	ListTasks(ctx context.Context, id uint) ([]*models.Task, error)
}
