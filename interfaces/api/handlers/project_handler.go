package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/services"
	"pc2-api/pkg/utils"
)

// === Clientes ===

type ClientHandler struct {
	clientService services.ClientService
}

func NewClientHandler(clientService services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.clientService.List(c.UserContext(), newQuery(c).listOptions())
	if err != nil {
		return respondError(c, err, "List clients")
	}
	return utils.SuccessResponse(c, dto.ClientsToResponses(clients))
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	client, err := h.clientService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create client")
	}
	return utils.CreatedResponse(c, dto.ClientToResponse(client))
}

func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	client, err := h.clientService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get client")
	}
	return utils.SuccessResponse(c, dto.ClientToResponse(client))
}

func (h *ClientHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateClientRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateClientRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *ClientHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateClientRequest) error {
	client, err := h.clientService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update client")
	}
	return utils.SuccessResponse(c, dto.ClientToResponse(client))
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.clientService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete client")
	}
	return utils.NoContentResponse(c)
}

// === Categorias ===

type ProjectCategoryHandler struct {
	categoryService services.ProjectCategoryService
}

func NewProjectCategoryHandler(categoryService services.ProjectCategoryService) *ProjectCategoryHandler {
	return &ProjectCategoryHandler{categoryService: categoryService}
}

func (h *ProjectCategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.UserContext(), newQuery(c).listOptions())
	if err != nil {
		return respondError(c, err, "List project categories")
	}
	return utils.SuccessResponse(c, dto.ProjectCategoriesToResponses(categories))
}

func (h *ProjectCategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectCategoryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	category, err := h.categoryService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create project category")
	}
	return utils.CreatedResponse(c, dto.ProjectCategoryToResponse(category))
}

func (h *ProjectCategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	category, err := h.categoryService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get project category")
	}
	return utils.SuccessResponse(c, dto.ProjectCategoryToResponse(category))
}

func (h *ProjectCategoryHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateProjectCategoryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *ProjectCategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateProjectCategoryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *ProjectCategoryHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateProjectCategoryRequest) error {
	category, err := h.categoryService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update project category")
	}
	return utils.SuccessResponse(c, dto.ProjectCategoryToResponse(category))
}

// Delete 400 ถ้ายังมีโปรเจกต์อ้างอิงอยู่
func (h *ProjectCategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.categoryService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete project category")
	}
	return utils.NoContentResponse(c)
}

// === Proyectos ===

type ProjectHandler struct {
	projectService services.ProjectService
	fileURL        dto.FileURLFunc
	today          func() models.Date
}

func NewProjectHandler(projectService services.ProjectService, fileURL dto.FileURLFunc) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, fileURL: fileURL, today: models.Today}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.ProjectFilter{
		ListOptions: q.listOptions(),
		ClientID:    q.id("cliente"),
		CategoryID:  q.id("categoria"),
	}
	if failed, err := q.fail(); failed {
		return err
	}
	return h.list(c, func() ([]*models.Project, error) {
		return h.projectService.List(c.UserContext(), filter)
	})
}

// Overdue GET /proyectos/retrasados
func (h *ProjectHandler) Overdue(c *fiber.Ctx) error {
	return h.list(c, func() ([]*models.Project, error) {
		return h.projectService.Overdue(c.UserContext())
	})
}

// ByStatus GET /proyectos/por_estado?estado= (ไม่ส่ง = ทุกโปรเจกต์)
func (h *ProjectHandler) ByStatus(c *fiber.Ctx) error {
	return h.list(c, func() ([]*models.Project, error) {
		return h.projectService.ByStatus(c.UserContext(), c.Query("estado"))
	})
}

func (h *ProjectHandler) list(c *fiber.Ctx, load func() ([]*models.Project, error)) error {
	projects, err := load()
	if err != nil {
		return respondError(c, err, "List projects")
	}
	return utils.SuccessResponse(c, dto.ProjectsToSummaryResponses(projects, h.today()))
}

func (h *ProjectHandler) detail(c *fiber.Ctx, status int, detail *services.ProjectDetail) error {
	body := dto.ProjectToDetailResponse(detail.Project, detail.Tasks, detail.Comments, h.today(), h.fileURL)
	if status == fiber.StatusCreated {
		return utils.CreatedResponse(c, body)
	}
	return utils.SuccessResponse(c, body)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	detail, err := h.projectService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create project")
	}
	return h.detail(c, fiber.StatusCreated, detail)
}

func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	detail, err := h.projectService.GetDetail(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get project")
	}
	return h.detail(c, fiber.StatusOK, detail)
}

func (h *ProjectHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateProjectRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateProjectRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *ProjectHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateProjectRequest) error {
	detail, err := h.projectService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update project")
	}
	return h.detail(c, fiber.StatusOK, detail)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.projectService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete project")
	}
	return utils.NoContentResponse(c)
}

// Tasks GET /proyectos/:id/tareas
func (h *ProjectHandler) Tasks(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	tasks, err := h.projectService.ListTasks(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "List project tasks")
	}
	return utils.SuccessResponse(c, dto.ProjectTasksToSummaryResponses(tasks))
}

// Comment POST /proyectos/:id/comentar
func (h *ProjectHandler) Comment(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.AddCommentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	comment, err := h.projectService.AddComment(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err, "Comment project")
	}
	return utils.CreatedResponse(c, dto.ProjectCommentToResponse(comment))
}

// === Tareas ===

type ProjectTaskHandler struct {
	taskService services.ProjectTaskService
}

func NewProjectTaskHandler(taskService services.ProjectTaskService) *ProjectTaskHandler {
	return &ProjectTaskHandler{taskService: taskService}
}

func (h *ProjectTaskHandler) List(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.ProjectTaskFilter{ListOptions: q.listOptions(), ProjectID: q.id("proyecto")}
	if failed, err := q.fail(); failed {
		return err
	}
	tasks, err := h.taskService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "List project tasks")
	}
	return utils.SuccessResponse(c, dto.ProjectTasksToSummaryResponses(tasks))
}

func (h *ProjectTaskHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	task, err := h.taskService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create project task")
	}
	return utils.CreatedResponse(c, dto.ProjectTaskToResponse(task))
}

func (h *ProjectTaskHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	task, err := h.taskService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get project task")
	}
	return utils.SuccessResponse(c, dto.ProjectTaskToResponse(task))
}

func (h *ProjectTaskHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateProjectTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *ProjectTaskHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateProjectTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *ProjectTaskHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateProjectTaskRequest) error {
	task, err := h.taskService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update project task")
	}
	return utils.SuccessResponse(c, dto.ProjectTaskToResponse(task))
}

func (h *ProjectTaskHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.taskService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete project task")
	}
	return utils.NoContentResponse(c)
}

// Complete POST /tareas/:id/completar (เรียกซ้ำได้)
func (h *ProjectTaskHandler) Complete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	task, err := h.taskService.Complete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Complete project task")
	}
	return utils.SuccessResponse(c, dto.ProjectTaskToResponse(task))
}

// === Comentarios ===

type ProjectCommentHandler struct {
	commentService services.ProjectCommentService
}

func NewProjectCommentHandler(commentService services.ProjectCommentService) *ProjectCommentHandler {
	return &ProjectCommentHandler{commentService: commentService}
}

func (h *ProjectCommentHandler) List(c *fiber.Ctx) error {
	q := newQuery(c)
	filter := dto.ProjectCommentFilter{ListOptions: q.listOptions(), ProjectID: q.id("proyecto")}
	if failed, err := q.fail(); failed {
		return err
	}
	comments, err := h.commentService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "List project comments")
	}
	return utils.SuccessResponse(c, dto.ProjectCommentsToResponses(comments))
}

func (h *ProjectCommentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectCommentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	comment, err := h.commentService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Create project comment")
	}
	return utils.CreatedResponse(c, dto.ProjectCommentToResponse(comment))
}

func (h *ProjectCommentHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	comment, err := h.commentService.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Get project comment")
	}
	return utils.SuccessResponse(c, dto.ProjectCommentToResponse(comment))
}

func (h *ProjectCommentHandler) Replace(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.CreateProjectCommentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, req.ToUpdate())
}

func (h *ProjectCommentHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	var req dto.UpdateProjectCommentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return h.update(c, id, &req)
}

func (h *ProjectCommentHandler) update(c *fiber.Ctx, id uint, req *dto.UpdateProjectCommentRequest) error {
	comment, err := h.commentService.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, err, "Update project comment")
	}
	return utils.SuccessResponse(c, dto.ProjectCommentToResponse(comment))
}

func (h *ProjectCommentHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if err := h.commentService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "Delete project comment")
	}
	return utils.NoContentResponse(c)
}
