package repositories

import (
	"context"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
)

type TaskListRepository interface {
	Create(ctx context.Context, list *models.TaskList) error
	// GetByID preload Tasks (prioridad desc, fecha_vencimiento asc)
	GetByID(ctx context.Context, id uint) (*models.TaskList, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, list *models.TaskList) error
	// Delete ลบ tasks ในรายการและความสัมพันธ์กับ tag ใน transaction เดียว
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.TaskList, error)
}

type TaskRepository interface {
	// Create บันทึก task พร้อม tag ที่ระบุ (ถ้ามี) ใน transaction เดียว
	Create(ctx context.Context, task *models.Task, tagIDs []uint) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	// Update บันทึก field ของ task; tagIDs != nil จะ replace ชุด tag ด้วย
	Update(ctx context.Context, task *models.Task, tagIDs []uint) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.TaskFilter) ([]*models.Task, error)
	// ReplaceTags แทนที่ชุด tag ทั้งหมดแบบ atomic
	ReplaceTags(ctx context.Context, taskID uint, tagIDs []uint) error
}

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	// CountByIDs นับ tag ที่มีอยู่จริงจาก ids (ids ต้องไม่ซ้ำ)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, opts dto.ListOptions) ([]*models.Tag, error)
}
