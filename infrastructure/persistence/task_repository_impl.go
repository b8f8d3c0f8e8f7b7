package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/repositories"
	"pc2-api/pkg/utils"
)

var taskOrdering = map[string]string{
	"fecha_vencimiento": "tasks.due_date",
	"prioridad":         "tasks.priority",
	"fecha_creacion":    "tasks.created_at",
}

var defaultTaskOrder = []string{"tasks.priority DESC", "tasks.due_date ASC"}

// === TaskList ===

type TaskListRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskListRepository(db *gorm.DB) repositories.TaskListRepository {
	return &TaskListRepositoryImpl{db: db}
}

func (r *TaskListRepositoryImpl) Create(ctx context.Context, list *models.TaskList) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(list).Error
}

func (r *TaskListRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.TaskList, error) {
	var list models.TaskList
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.priority DESC").Order("tasks.due_date ASC").Order("tasks.id ASC")
		}).
		Where("id = ?", id).
		First(&list).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &list, nil
}

func (r *TaskListRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TaskList{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *TaskListRepositoryImpl) Update(ctx context.Context, list *models.TaskList) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(list).Error
}

func (r *TaskListRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&models.Task{}).Select("id").Where("list_id = ?", id)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.TaskList{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrRecordNotFound
		}
		return nil
	})
}

func (r *TaskListRepositoryImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.TaskList, error) {
	var lists []*models.TaskList
	q := applySearch(r.db.WithContext(ctx).Model(&models.TaskList{}), opts.SearchTerms(),
		"task_lists.name", "task_lists.description")
	err := q.Order("task_lists.created_at ASC").Order("task_lists.id ASC").Find(&lists).Error
	return lists, err
}

// === Task ===

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return err
		}
		return insertTaskTags(tx, task.ID, tagIDs)
	})
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(task).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		return replaceTaskTags(tx, task.ID, tagIDs)
	})
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrRecordNotFound
		}
		return nil
	})
}

func (r *TaskRepositoryImpl) List(ctx context.Context, f dto.TaskFilter) ([]*models.Task, error) {
	q := r.db.WithContext(ctx).Model(&models.Task{})

	if f.Status != nil {
		q = q.Where("tasks.status = ?", *f.Status)
	}
	if f.Priority != nil {
		q = q.Where("tasks.priority = ?", *f.Priority)
	}
	if f.PriorityGte != nil {
		q = q.Where("tasks.priority >= ?", *f.PriorityGte)
	}
	if f.PriorityLte != nil {
		q = q.Where("tasks.priority <= ?", *f.PriorityLte)
	}
	if f.Completed != nil {
		q = q.Where("tasks.completed = ?", *f.Completed)
	}
	if f.DueDate != nil {
		q = q.Where("tasks.due_date = ?", *f.DueDate)
	}
	if f.DueDateGte != nil {
		q = q.Where("tasks.due_date >= ?", *f.DueDateGte)
	}
	if f.DueDateLte != nil {
		q = q.Where("tasks.due_date <= ?", *f.DueDateLte)
	}
	if f.ListID != nil {
		q = q.Where("tasks.list_id = ?", *f.ListID)
	}
	if f.TagID != nil {
		tagged := r.db.Model(&models.TaskTag{}).Select("task_id").Where("tag_id = ?", *f.TagID)
		q = q.Where("tasks.id IN (?)", tagged)
	}

	q = applySearch(q, f.SearchTerms(), "tasks.title", "tasks.description")
	q = applyOrdering(q, f.OrderingFields(), taskOrdering, "tasks.id", defaultTaskOrder...)

	var tasks []*models.Task
	err := q.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ReplaceTags(ctx context.Context, taskID uint, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceTaskTags(tx, taskID, tagIDs)
	})
}

func replaceTaskTags(tx *gorm.DB, taskID uint, tagIDs []uint) error {
	if err := tx.Where("task_id = ?", taskID).Delete(&models.TaskTag{}).Error; err != nil {
		return err
	}
	return insertTaskTags(tx, taskID, tagIDs)
}

func insertTaskTags(tx *gorm.DB, taskID uint, tagIDs []uint) error {
	tagIDs = utils.UniqueIDs(tagIDs)
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]models.TaskTag, len(tagIDs))
	for i, tagID := range tagIDs {
		rows[i] = models.TaskTag{TaskID: taskID, TagID: tagID}
	}
	return tx.Create(&rows).Error
}

// === Tag ===

type TagRepositoryImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(tag).Error
}

func (r *TagRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, translateError(err)
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, translateError(err)
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Tag{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *TagRepositoryImpl) Update(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(tag).Error
}

func (r *TagRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Tag{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrRecordNotFound
		}
		return nil
	})
}

func (r *TagRepositoryImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.Tag, error) {
	var tags []*models.Tag
	q := applySearch(r.db.WithContext(ctx).Model(&models.Tag{}), opts.SearchTerms(), "tags.name")
	err := q.Order("tags.name ASC").Order("tags.id ASC").Find(&tags).Error
	return tags, err
}
