package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/services"
	"pc2-api/pkg/logger"
	"pc2-api/pkg/utils"
)

// === Listas ===

type TaskListHandler struct {
	listService services.TaskListService
}

func NewTaskListHandler(listService services.TaskListService) *TaskListHandler {
	return &TaskListHandler{listService: listService}
}

func (h *TaskListHandler) List(c *fiber.Ctx) error {
	lists, err := h.listService.List(c.UserContext(), newQuery(c).listOptions())
	if err != nil {
		return respondError(c, err, "List task lists")
	}
	return utils.SuccessResponse(c, dto.TaskListsToResponses(lists))
}

func (h *TaskListHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTaskListRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	list, err := h.listService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create task list")
	}
	return utils.CreatedResponse(c, dto.TaskListToResponse(list))
}

// GetByID detail พร้อม tareas, total_tareas, tareas_completadas
func (h *TaskListHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}

	list, err := h.listService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get task list")
	}
	return utils.SuccessResponse(c, dto.TaskListToDetailResponse(list))
}

// Replace PUT: ต้องส่ง field บังคับครบ
func (h *TaskListHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateTaskListRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

// Update PATCH
func (h *TaskListHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateTaskListRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *TaskListHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateTaskListRequest) error {
	list, err := h.listService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update task list")
	}
	return utils.SuccessResponse(c, dto.TaskListToResponse(list))
}

func (h *TaskListHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.listService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete task list")
	}
	return utils.NoContentResponse(c)
}

// Tasks GET /listas/:id/tareas
func (h *TaskListHandler) Tasks(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	tasks, err := h.listService.ListTasks(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "List tasks of list")
	}
	return utils.SuccessResponse(c, dto.TasksToSummaryResponses(tasks))
}

// === Tareas ===

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List รองรับ filter แบบ declarative (estado, prioridad__gte, ...) + search + ordering
func (h *TaskHandler) List(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.TaskFilter{
		ListOptions: q.listOptions(),
		Status:      q.taskStatus("estado"),
		Priority:    q.priority("prioridad"),
		PriorityGte: q.priority("prioridad__gte"),
		PriorityLte: q.priority("prioridad__lte"),
		Completed:   q.boolean("completada"),
		DueDate:     q.date("fecha_vencimiento"),
		DueDateGte:  q.date("fecha_vencimiento__gte"),
		DueDateLte:  q.date("fecha_vencimiento__lte"),
		ListID:      q.id("lista"),
	}
	if failed, err := q.fail(); failed {
		return err
	}

	tasks, err := h.taskService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "List tasks")
	}
	return utils.SuccessResponse(c, dto.TasksToSummaryResponses(tasks))
}

// Filter GET /tareas/filtrar
func (h *TaskHandler) Filter(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.TaskFilter{
		Priority:   q.priority("prioridad"),
		DueDateGte: q.date("fecha_desde"),
		DueDateLte: q.date("fecha_hasta"),
		Completed:  q.flag("completada"),
		TagID:      q.id("etiqueta"),
	}
	// estado ไม่ validate: ค่าที่ไม่รู้จักแค่ไม่ match อะไร
	if v, ok := q.raw("estado"); ok {
		status := models.TaskStatus(v)
		filter.Status = &status
	}
	if failed, err := q.fail(); failed {
		return err
	}

	tasks, err := h.taskService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "Filter tasks")
	}

	logger.DebugContext(c.UserContext(), "Tasks filtered", "count", len(tasks))
	return utils.SuccessResponse(c, dto.TasksToSummaryResponses(tasks))
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.taskService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create task")
	}
	return utils.CreatedResponse(c, dto.TaskToDetailResponse(task))
}

func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}

	task, err := h.taskService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get task")
	}
	return utils.SuccessResponse(c, dto.TaskToDetailResponse(task))
}

func (h *TaskHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *TaskHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateTaskRequest) error {
	task, err := h.taskService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update task")
	}
	return utils.SuccessResponse(c, dto.TaskToDetailResponse(task))
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.taskService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete task")
	}
	return utils.NoContentResponse(c)
}

// Complete POST /tareas/:id/completar
func (h *TaskHandler) Complete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}

	task, err := h.taskService.Complete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Complete task")
	}
	return utils.SuccessResponse(c, dto.TaskToDetailResponse(task))
}

// AssignTags POST /tareas/:id/asignar_etiquetas
func (h *TaskHandler) AssignTags(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.AssignTagsRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.taskService.AssignTags(c.UserContext(), id, *req.EtiquetaIDs)
	if err != nil {
		return respondError(c, err, "Assign tags")
	}
	return utils.SuccessResponse(c, dto.TaskToDetailResponse(task))
}

// === Etiquetas ===

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := h.tagService.List(c.UserContext(), newQuery(c).listOptions())
	if err != nil {
		return respondError(c, err, "List tags")
	}
	return utils.SuccessResponse(c, dto.TagsToResponses(tags))
}

func (h *TagHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	tag, err := h.tagService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create tag")
	}
	return utils.CreatedResponse(c, dto.TagToResponse(tag))
}

func (h *TagHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	tag, err := h.tagService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get tag")
	}
	return utils.SuccessResponse(c, dto.TagToResponse(tag))
}

func (h *TagHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateTagRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateTagRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *TagHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateTagRequest) error {
	tag, err := h.tagService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update tag")
	}
	return utils.SuccessResponse(c, dto.TagToResponse(tag))
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.tagService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete tag")
	}
	return utils.NoContentResponse(c)
}

// Tasks GET /etiquetas/:id/tareas
func (h *TagHandler) Tasks(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	tasks, err := h.tagService.ListTasks(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "List tasks of tag")
	}
	return utils.SuccessResponse(c, dto.TasksToSummaryResponses(tasks))
}
