package serviceimpl

import (
	"context"
	"strings"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/ports"
	"pc2-api/domain/repositories"
	"pc2-api/domain/services"
	"pc2-api/pkg/logger"
	"pc2-api/pkg/utils"
)

const (
	msgTaskAlreadyCompleted = "Esta tarea ya está completada"
	msgUnknownTags          = "Alguna de las etiquetas solicitadas no existe"
)

// === TaskList ===

type TaskListServiceImpl struct {
	listRepo repositories.TaskListRepository
	taskRepo repositories.TaskRepository
}

func NewTaskListService(listRepo repositories.TaskListRepository, taskRepo repositories.TaskRepository) services.TaskListService {
	return &TaskListServiceImpl{listRepo: listRepo, taskRepo: taskRepo}
}

func (s *TaskListServiceImpl) Create(ctx context.Context, req *dto.CreateTaskListRequest) (*models.TaskList, error) {
	list := &models.TaskList{
		Name:        strings.TrimSpace(req.Nombre),
		Description: valueOr(req.Descripcion, ""),
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		logger.ErrorContext(ctx, "Failed to create task list", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task list created", "list_id", list.ID, "name", list.Name)
	return s.GetByID(ctx, list.ID)
}

func (s *TaskListServiceImpl) GetByID(ctx context.Context, id uint) (*models.TaskList, error) {
	list, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "lista", id)
	}
	return list, nil
}

func (s *TaskListServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateTaskListRequest) (*models.TaskList, error) {
	list, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		list.Name = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		list.Description = *req.Descripcion
	}

	if err := s.listRepo.Update(ctx, list); err != nil {
		logger.ErrorContext(ctx, "Failed to update task list", "list_id", id, "error", err)
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *TaskListServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.listRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "lista", id)
	}
	logger.InfoContext(ctx, "Task list deleted", "list_id", id)
	return nil
}

func (s *TaskListServiceImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.TaskList, error) {
	return s.listRepo.List(ctx, opts)
}

func (s *TaskListServiceImpl) ListTasks(ctx context.Context, id uint) ([]*models.Task, error) {
	exists, err := s.listRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, services.NotFound("lista", id)
	}
	return s.taskRepo.List(ctx, dto.TaskFilter{ListID: &id})
}

// === Task ===

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	listRepo  repositories.TaskListRepository
	tagRepo   repositories.TagRepository
	publisher ports.EventPublisherPort
	now       clock
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	listRepo repositories.TaskListRepository,
	tagRepo repositories.TagRepository,
	publisher ports.EventPublisherPort,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		listRepo:  listRepo,
		tagRepo:   tagRepo,
		publisher: publisher,
		now:       systemClock,
	}
}

func (s *TaskServiceImpl) Create(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	if err := s.ensureListExists(ctx, req.Lista); err != nil {
		return nil, err
	}
	tagIDs, err := s.resolveTagField(ctx, req.Etiquetas)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       strings.TrimSpace(req.Titulo),
		Description: valueOr(req.Descripcion, ""),
		ListID:      req.Lista,
		DueDate:     req.FechaVencimiento.Value,
		Priority:    models.PriorityMedium,
		Status:      models.TaskStatusPending,
	}
	if req.Prioridad != nil {
		task.Priority = *req.Prioridad
	}
	if req.Estado != nil {
		task.Status = *req.Estado
	}
	if req.Completada != nil {
		task.Completed = *req.Completada
	}
	s.reconcileCompletion(task, req.Estado != nil, req.Completada != nil)

	if err := s.taskRepo.Create(ctx, task, tagIDs); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "list_id", task.ListID)
	return s.GetByID(ctx, task.ID)
}

func (s *TaskServiceImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "tarea", id)
	}
	return task, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Lista != nil && *req.Lista != task.ListID {
		if err := s.ensureListExists(ctx, *req.Lista); err != nil {
			return nil, err
		}
		task.ListID = *req.Lista
	}
	var tagIDs []uint
	if req.Etiquetas != nil {
		if tagIDs, err = s.resolveTagField(ctx, req.Etiquetas); err != nil {
			return nil, err
		}
		if tagIDs == nil {
			tagIDs = []uint{}
		}
	}

	if req.Titulo != nil {
		task.Title = strings.TrimSpace(*req.Titulo)
	}
	if req.Descripcion != nil {
		task.Description = *req.Descripcion
	}
	if req.FechaVencimiento.Set {
		task.DueDate = req.FechaVencimiento.Value
	}
	if req.Prioridad != nil {
		task.Priority = *req.Prioridad
	}
	if req.Estado != nil {
		task.Status = *req.Estado
	}
	if req.Completada != nil {
		task.Completed = *req.Completada
	}
	s.reconcileCompletion(task, req.Estado != nil, req.Completada != nil)

	task.List = nil
	task.Tags = nil
	if err := s.taskRepo.Update(ctx, task, tagIDs); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *TaskServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "tarea", id)
	}
	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	return nil
}

func (s *TaskServiceImpl) List(ctx context.Context, filter dto.TaskFilter) ([]*models.Task, error) {
	return s.taskRepo.List(ctx, filter)
}

func (s *TaskServiceImpl) Complete(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		logger.WarnContext(ctx, "Task already completed", "task_id", id)
		return nil, services.NewValidationError(msgTaskAlreadyCompleted)
	}

	task.MarkCompleted(s.now())
	task.Tags = nil
	if err := s.taskRepo.Update(ctx, task, nil); err != nil {
		logger.ErrorContext(ctx, "Failed to complete task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task completed", "task_id", id)
	publishEvent(ctx, s.publisher, ports.NewDomainEvent(ports.SubjectTaskCompleted, "tareas", "tareas", id, map[string]any{
		"lista":            task.ListID,
		"fecha_completada": task.CompletedAt,
	}))
	return s.GetByID(ctx, id)
}

func (s *TaskServiceImpl) AssignTags(ctx context.Context, id uint, tagIDs []uint) (*models.Task, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	unique, ok, err := s.resolveTags(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.WarnContext(ctx, "Unknown tags in assignment", "task_id", id, "tag_ids", tagIDs)
		return nil, services.NewValidationError(msgUnknownTags)
	}

	if err := s.taskRepo.ReplaceTags(ctx, id, unique); err != nil {
		logger.ErrorContext(ctx, "Failed to assign tags", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task tags assigned", "task_id", id, "tag_ids", unique)
	publishEvent(ctx, s.publisher, ports.NewDomainEvent(ports.SubjectTaskTagsAssigned, "tareas", "tareas", id, map[string]any{
		"etiquetas": unique,
	}))
	return s.GetByID(ctx, id)
}

// reconcileCompletion ทำให้ estado, completada และ fecha_completada สอดคล้องกัน
// estado ที่ส่งมามาก่อน completada; ถ้าส่งแค่ completada จะปรับ estado ตาม
func (s *TaskServiceImpl) reconcileCompletion(task *models.Task, statusSet, completedSet bool) {
	switch {
	case statusSet:
		task.Completed = task.Status == models.TaskStatusCompleted
	case completedSet:
		if task.Completed {
			task.Status = models.TaskStatusCompleted
		} else if task.Status == models.TaskStatusCompleted {
			task.Status = models.TaskStatusPending
		}
	}

	if task.Completed {
		if task.CompletedAt == nil {
			now := s.now()
			task.CompletedAt = &now
		}
	} else {
		task.CompletedAt = nil
	}
}

func (s *TaskServiceImpl) ensureListExists(ctx context.Context, listID uint) error {
	exists, err := s.listRepo.Exists(ctx, listID)
	if err != nil {
		return err
	}
	if !exists {
		return invalidPK("lista", listID)
	}
	return nil
}

// resolveTags ตัด id ซ้ำและตรวจว่ามีอยู่ครบ
func (s *TaskServiceImpl) resolveTags(ctx context.Context, tagIDs []uint) ([]uint, bool, error) {
	unique := utils.UniqueIDs(tagIDs)
	if len(unique) == 0 {
		return unique, true, nil
	}
	count, err := s.tagRepo.CountByIDs(ctx, unique)
	if err != nil {
		return nil, false, err
	}
	return unique, count == int64(len(unique)), nil
}

// resolveTagField เหมือน resolveTags แต่คืน field error (ใช้กับ create/update)
func (s *TaskServiceImpl) resolveTagField(ctx context.Context, tagIDs []uint) ([]uint, error) {
	if tagIDs == nil {
		return nil, nil
	}
	unique, ok, err := s.resolveTags(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, services.NewFieldError("etiquetas", msgUnknownTags)
	}
	return unique, nil
}

// === Tag ===

type TagServiceImpl struct {
	tagRepo  repositories.TagRepository
	taskRepo repositories.TaskRepository
}

func NewTagService(tagRepo repositories.TagRepository, taskRepo repositories.TaskRepository) services.TagService {
	return &TagServiceImpl{tagRepo: tagRepo, taskRepo: taskRepo}
}

func (s *TagServiceImpl) Create(ctx context.Context, req *dto.CreateTagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Nombre)
	if err := s.ensureNameAvailable(ctx, name, 0); err != nil {
		return nil, err
	}

	tag := &models.Tag{
		Name:  name,
		Color: valueOr(req.Color, models.DefaultTagColor),
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		logger.ErrorContext(ctx, "Failed to create tag", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Tag created", "tag_id", tag.ID, "name", tag.Name)
	return tag, nil
}

func (s *TagServiceImpl) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "etiqueta", id)
	}
	return tag, nil
}

func (s *TagServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateTagRequest) (*models.Tag, error) {
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
	if req.Color != nil {
		tag.Color = *req.Color
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		logger.ErrorContext(ctx, "Failed to update tag", "tag_id", id, "error", err)
		return nil, err
	}
	return tag, nil
}

func (s *TagServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "etiqueta", id)
	}
	logger.InfoContext(ctx, "Tag deleted", "tag_id", id)
	return nil
}

func (s *TagServiceImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.Tag, error) {
	return s.tagRepo.List(ctx, opts)
}

func (s *TagServiceImpl) ListTasks(ctx context.Context, id uint) ([]*models.Task, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.taskRepo.List(ctx, dto.TaskFilter{TagID: &id})
}

func (s *TagServiceImpl) ensureNameAvailable(ctx context.Context, name string, selfID uint) error {
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
