package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/ports"
	"pc2-api/domain/repositories"
	"pc2-api/domain/services"
	"pc2-api/pkg/logger"
)

const (
	cacheKeyOverdueProjectsPrefix = "proyectos:retrasados:"

	msgProtectedCategory = "No se puede eliminar la categoría porque tiene proyectos asociados"
	msgNonNegative       = "Ensure this value is greater than or equal to 0."
)

// overdueCacheKey key ของวันนั้น; ผลลัพธ์เปลี่ยนเมื่อข้ามวันแม้ไม่มีการเขียน
func overdueCacheKey(today models.Date) string {
	return cacheKeyOverdueProjectsPrefix + today.String()
}

func validateNonNegative(field string, value *decimal.Decimal) error {
	if value != nil && value.IsNegative() {
		return services.NewFieldError(field, msgNonNegative)
	}
	return nil
}

// === Client ===

type ClientServiceImpl struct {
	clientRepo repositories.ClientRepository
	cache      ports.CachePort
	now        clock
}

func NewClientService(clientRepo repositories.ClientRepository, cache ports.CachePort) services.ClientService {
	return &ClientServiceImpl{clientRepo: clientRepo, cache: cache, now: systemClock}
}

func (s *ClientServiceImpl) Create(ctx context.Context, req *dto.CreateClientRequest) (*models.Client, error) {
	email := strings.TrimSpace(req.Email)
	if err := s.ensureEmailAvailable(ctx, email, 0); err != nil {
		return nil, err
	}

	client := &models.Client{
		FirstName:    strings.TrimSpace(req.Nombre),
		LastName:     strings.TrimSpace(req.Apellido),
		Company:      valueOr(req.Empresa, ""),
		Email:        email,
		Phone:        valueOr(req.Telefono, ""),
		RegisteredAt: s.now(),
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		logger.ErrorContext(ctx, "Failed to create client", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Client created", "client_id", client.ID)
	return client, nil
}

func (s *ClientServiceImpl) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "cliente", id)
	}
	return client, nil
}

func (s *ClientServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateClientRequest) (*models.Client, error) {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if err := s.ensureEmailAvailable(ctx, email, id); err != nil {
			return nil, err
		}
		client.Email = email
	}
	if req.Nombre != nil {
		client.FirstName = strings.TrimSpace(*req.Nombre)
	}
	if req.Apellido != nil {
		client.LastName = strings.TrimSpace(*req.Apellido)
	}
	if req.Empresa != nil {
		client.Company = *req.Empresa
	}
	if req.Telefono != nil {
		client.Phone = *req.Telefono
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		logger.ErrorContext(ctx, "Failed to update client", "client_id", id, "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, overdueCacheKey(models.NewDate(s.now())))
	return client, nil
}

func (s *ClientServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "cliente", id)
	}
	invalidateCache(ctx, s.cache, overdueCacheKey(models.NewDate(s.now())))
	logger.InfoContext(ctx, "Client deleted", "client_id", id)
	return nil
}

func (s *ClientServiceImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.Client, error) {
	return s.clientRepo.List(ctx, opts)
}

func (s *ClientServiceImpl) ensureEmailAvailable(ctx context.Context, email string, selfID uint) error {
	existing, err := s.clientRepo.GetByEmail(ctx, email)
	if err != nil {
		if isRecordNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return duplicateValue("cliente", "email")
	}
	return nil
}

// === ProjectCategory ===

type ProjectCategoryServiceImpl struct {
	categoryRepo repositories.ProjectCategoryRepository
}

func NewProjectCategoryService(categoryRepo repositories.ProjectCategoryRepository) services.ProjectCategoryService {
	return &ProjectCategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *ProjectCategoryServiceImpl) Create(ctx context.Context, req *dto.CreateProjectCategoryRequest) (*models.ProjectCategory, error) {
	category := &models.ProjectCategory{
		Name:        strings.TrimSpace(req.Nombre),
		Description: valueOr(req.Descripcion, ""),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create project category", "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "Project category created", "category_id", category.ID)
	return category, nil
}

func (s *ProjectCategoryServiceImpl) GetByID(ctx context.Context, id uint) (*models.ProjectCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "categoria", id)
	}
	return category, nil
}

func (s *ProjectCategoryServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateProjectCategoryRequest) (*models.ProjectCategory, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		category.Name = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		category.Description = *req.Descripcion
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update project category", "category_id", id, "error", err)
		return nil, err
	}
	return category, nil
}

func (s *ProjectCategoryServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountProjects(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.WarnContext(ctx, "Project category in use", "category_id", id, "projects", count)
		return services.NewValidationError(msgProtectedCategory)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "categoria", id)
	}
	logger.InfoContext(ctx, "Project category deleted", "category_id", id)
	return nil
}

func (s *ProjectCategoryServiceImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.ProjectCategory, error) {
	return s.categoryRepo.List(ctx, opts)
}

// === Project ===

type ProjectServiceImpl struct {
	projectRepo  repositories.ProjectRepository
	clientRepo   repositories.ClientRepository
	categoryRepo repositories.ProjectCategoryRepository
	imageRepo    repositories.ImageRepository
	taskRepo     repositories.ProjectTaskRepository
	commentRepo  repositories.ProjectCommentRepository
	publisher    ports.EventPublisherPort
	cache        ports.CachePort
	cacheTTL     time.Duration
	now          clock
}

// ProjectRepositories repositories ที่ ProjectService ใช้
type ProjectRepositories struct {
	Projects   repositories.ProjectRepository
	Clients    repositories.ClientRepository
	Categories repositories.ProjectCategoryRepository
	Images     repositories.ImageRepository
	Tasks      repositories.ProjectTaskRepository
	Comments   repositories.ProjectCommentRepository
}

func NewProjectService(
	repos ProjectRepositories,
	publisher ports.EventPublisherPort,
	cache ports.CachePort,
	cacheTTL time.Duration,
) services.ProjectService {
	return &ProjectServiceImpl{
		projectRepo:  repos.Projects,
		clientRepo:   repos.Clients,
		categoryRepo: repos.Categories,
		imageRepo:    repos.Images,
		taskRepo:     repos.Tasks,
		commentRepo:  repos.Comments,
		publisher:    publisher,
		cache:        cache,
		cacheTTL:     cacheTTL,
		now:          systemClock,
	}
}

func (s *ProjectServiceImpl) today() models.Date {
	return models.NewDate(s.now())
}

func (s *ProjectServiceImpl) Create(ctx context.Context, req *dto.CreateProjectRequest) (*services.ProjectDetail, error) {
	if err := s.ensureReferences(ctx, &req.Cliente, &req.Categoria, req.ImagenPrincipal.Value); err != nil {
		return nil, err
	}
	if err := validateNonNegative("presupuesto", req.Presupuesto); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       strings.TrimSpace(req.Titulo),
		Description: req.Descripcion,
		ClientID:    req.Cliente,
		CategoryID:  req.Categoria,
		MainImageID: req.ImagenPrincipal.Value,
		StartDate:   s.today(),
		DueDate:     req.FechaEntrega.Value,
		Status:      models.ProjectStatusPending,
		Budget:      *req.Presupuesto,
	}
	if req.FechaInicio != nil {
		project.StartDate = *req.FechaInicio
	}
	if req.Estado != nil {
		project.Status = *req.Estado
	}
	if req.HorasEstimadas != nil {
		project.EstimatedHours = *req.HorasEstimadas
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		logger.ErrorContext(ctx, "Failed to create project", "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, overdueCacheKey(s.today()))

	logger.InfoContext(ctx, "Project created", "project_id", project.ID, "client_id", project.ClientID)
	return s.GetDetail(ctx, project.ID)
}

func (s *ProjectServiceImpl) GetDetail(ctx context.Context, id uint) (*services.ProjectDetail, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "proyecto", id)
	}

	tasks, err := s.taskRepo.List(ctx, dto.ProjectTaskFilter{ProjectID: &id})
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.List(ctx, dto.ProjectCommentFilter{ProjectID: &id})
	if err != nil {
		return nil, err
	}

	return &services.ProjectDetail{Project: project, Tasks: tasks, Comments: comments}, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateProjectRequest) (*services.ProjectDetail, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "proyecto", id)
	}

	var mainImage *uint
	if req.ImagenPrincipal.Set {
		mainImage = req.ImagenPrincipal.Value
	}
	if err := s.ensureReferences(ctx, req.Cliente, req.Categoria, mainImage); err != nil {
		return nil, err
	}
	if err := validateNonNegative("presupuesto", req.Presupuesto); err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		project.Title = strings.TrimSpace(*req.Titulo)
	}
	if req.Descripcion != nil {
		project.Description = *req.Descripcion
	}
	if req.Cliente != nil {
		project.ClientID = *req.Cliente
	}
	if req.Categoria != nil {
		project.CategoryID = *req.Categoria
	}
	if req.ImagenPrincipal.Set {
		project.MainImageID = req.ImagenPrincipal.Value
	}
	if req.FechaInicio != nil {
		project.StartDate = *req.FechaInicio
	}
	if req.FechaEntrega.Set {
		project.DueDate = req.FechaEntrega.Value
	}
	if req.Estado != nil {
		project.Status = *req.Estado
	}
	if req.Presupuesto != nil {
		project.Budget = *req.Presupuesto
	}
	if req.HorasEstimadas != nil {
		project.EstimatedHours = *req.HorasEstimadas
	}

	project.Client = nil
	project.Category = nil
	project.MainImage = nil
	if err := s.projectRepo.Update(ctx, project); err != nil {
		logger.ErrorContext(ctx, "Failed to update project", "project_id", id, "error", err)
		return nil, err
	}
	invalidateCache(ctx, s.cache, overdueCacheKey(s.today()))
	return s.GetDetail(ctx, id)
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "proyecto", id)
	}
	invalidateCache(ctx, s.cache, overdueCacheKey(s.today()))
	logger.InfoContext(ctx, "Project deleted", "project_id", id)
	return nil
}

func (s *ProjectServiceImpl) List(ctx context.Context, filter dto.ProjectFilter) ([]*models.Project, error) {
	return s.projectRepo.List(ctx, filter)
}

func (s *ProjectServiceImpl) ListTasks(ctx context.Context, id uint) ([]*models.ProjectTask, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	return s.taskRepo.List(ctx, dto.ProjectTaskFilter{ProjectID: &id})
}

func (s *ProjectServiceImpl) AddComment(ctx context.Context, id uint, req *dto.AddCommentRequest) (*models.ProjectComment, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	comment := &models.ProjectComment{
		ProjectID: id,
		Author:    req.AuthorOrAnonymous(),
		Text:      req.Texto,
		CreatedAt: s.now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to add project comment", "project_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project comment added", "project_id", id, "comment_id", comment.ID)
	publishEvent(ctx, s.publisher, ports.NewDomainEvent(ports.SubjectProjectCommentCreated, "proyectos", "comentarios", comment.ID, map[string]any{
		"proyecto": id,
		"autor":    comment.Author,
	}))
	return comment, nil
}

func (s *ProjectServiceImpl) Overdue(ctx context.Context) ([]*models.Project, error) {
	today := s.today()

	var projects []*models.Project
	err := s.cache.GetOrSet(ctx, overdueCacheKey(today), &projects, s.cacheTTL, func() (any, error) {
		return s.listOverdue(ctx, today)
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load overdue projects", "error", err)
		return nil, err
	}
	return projects, nil
}

func (s *ProjectServiceImpl) ByStatus(ctx context.Context, status string) ([]*models.Project, error) {
	filter := dto.ProjectFilter{}
	if status = strings.TrimSpace(status); status != "" {
		st := models.ProjectStatus(status)
		filter.Status = &st
	}
	return s.projectRepo.List(ctx, filter)
}

func (s *ProjectServiceImpl) SweepOverdue(ctx context.Context) (int, error) {
	today := s.today()
	projects, err := s.listOverdue(ctx, today)
	if err != nil {
		logger.ErrorContext(ctx, "Overdue sweep failed", "error", err)
		return 0, err
	}

	for _, p := range projects {
		publishEvent(ctx, s.publisher, ports.NewDomainEvent(ports.SubjectProjectsOverdue, "proyectos", "proyectos", p.ID, map[string]any{
			"fecha_entrega": p.DueDate,
			"estado":        p.Status,
		}))
	}
	invalidateCache(ctx, s.cache, overdueCacheKey(today))

	logger.InfoContext(ctx, "Overdue sweep completed", "date", today.String(), "overdue", len(projects))
	return len(projects), nil
}

func (s *ProjectServiceImpl) listOverdue(ctx context.Context, today models.Date) ([]*models.Project, error) {
	return s.projectRepo.List(ctx, dto.ProjectFilter{OpenOnly: true, DueBefore: &today})
}

func (s *ProjectServiceImpl) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.projectRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return services.NotFound("proyecto", id)
	}
	return nil
}

// ensureReferences ตรวจ FK ที่ส่งมา (nil = ไม่ตรวจ)
func (s *ProjectServiceImpl) ensureReferences(ctx context.Context, clientID, categoryID, imageID *uint) error {
	if clientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *clientID); err != nil {
			if isRecordNotFound(err) {
				return invalidPK("cliente", *clientID)
			}
			return err
		}
	}
	if categoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *categoryID); err != nil {
			if isRecordNotFound(err) {
				return invalidPK("categoria", *categoryID)
			}
			return err
		}
	}
	if imageID != nil {
		count, err := s.imageRepo.CountByIDs(ctx, []uint{*imageID})
		if err != nil {
			return err
		}
		if count == 0 {
			return invalidPK("imagen_principal", *imageID)
		}
	}
	return nil
}

// === ProjectTask ===

type ProjectTaskServiceImpl struct {
	taskRepo    repositories.ProjectTaskRepository
	projectRepo repositories.ProjectRepository
	publisher   ports.EventPublisherPort
	now         clock
}

func NewProjectTaskService(
	taskRepo repositories.ProjectTaskRepository,
	projectRepo repositories.ProjectRepository,
	publisher ports.EventPublisherPort,
) services.ProjectTaskService {
	return &ProjectTaskServiceImpl{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		publisher:   publisher,
		now:         systemClock,
	}
}

func (s *ProjectTaskServiceImpl) Create(ctx context.Context, req *dto.CreateProjectTaskRequest) (*models.ProjectTask, error) {
	if err := s.ensureProject(ctx, req.Proyecto); err != nil {
		return nil, err
	}
	if err := validateNonNegative("horas_dedicadas", req.HorasDedicadas); err != nil {
		return nil, err
	}

	task := &models.ProjectTask{
		ProjectID:   req.Proyecto,
		Title:       strings.TrimSpace(req.Titulo),
		Description: valueOr(req.Descripcion, ""),
		CreatedAt:   s.now(),
		DueDate:     req.FechaLimite.Value,
		Priority:    models.PriorityMedium,
		HoursSpent:  decimal.Zero,
	}
	if req.Completada != nil {
		task.Completed = *req.Completada
	}
	if req.Prioridad != nil {
		task.Priority = *req.Prioridad
	}
	if req.HorasDedicadas != nil {
		task.HoursSpent = *req.HorasDedicadas
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create project task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project task created", "task_id", task.ID, "project_id", task.ProjectID)
	return task, nil
}

func (s *ProjectTaskServiceImpl) GetByID(ctx context.Context, id uint) (*models.ProjectTask, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "tarea", id)
	}
	return task, nil
}

func (s *ProjectTaskServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateProjectTaskRequest) (*models.ProjectTask, error) {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Proyecto != nil && *req.Proyecto != task.ProjectID {
		if err := s.ensureProject(ctx, *req.Proyecto); err != nil {
			return nil, err
		}
		task.ProjectID = *req.Proyecto
	}
	if err := validateNonNegative("horas_dedicadas", req.HorasDedicadas); err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		task.Title = strings.TrimSpace(*req.Titulo)
	}
	if req.Descripcion != nil {
		task.Description = *req.Descripcion
	}
	if req.Completada != nil {
		task.Completed = *req.Completada
	}
	if req.FechaLimite.Set {
		task.DueDate = req.FechaLimite.Value
	}
	if req.Prioridad != nil {
		task.Priority = *req.Prioridad
	}
	if req.HorasDedicadas != nil {
		task.HoursSpent = *req.HorasDedicadas
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update project task", "task_id", id, "error", err)
		return nil, err
	}
	return task, nil
}

func (s *ProjectTaskServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "tarea", id)
	}
	logger.InfoContext(ctx, "Project task deleted", "task_id", id)
	return nil
}

func (s *ProjectTaskServiceImpl) List(ctx context.Context, filter dto.ProjectTaskFilter) ([]*models.ProjectTask, error) {
	return s.taskRepo.List(ctx, filter)
}

func (s *ProjectTaskServiceImpl) Complete(ctx context.Context, id uint) (*models.ProjectTask, error) {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return task, nil
	}

	task.Completed = true
	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to complete project task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project task completed", "task_id", id, "project_id", task.ProjectID)
	publishEvent(ctx, s.publisher, ports.NewDomainEvent(ports.SubjectProjectTaskCompleted, "proyectos", "tareas", id, map[string]any{
		"proyecto": task.ProjectID,
	}))
	return task, nil
}

func (s *ProjectTaskServiceImpl) ensureProject(ctx context.Context, id uint) error {
	exists, err := s.projectRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return invalidPK("proyecto", id)
	}
	return nil
}

// === ProjectComment ===

type ProjectCommentServiceImpl struct {
	commentRepo repositories.ProjectCommentRepository
	projectRepo repositories.ProjectRepository
	now         clock
}

func NewProjectCommentService(commentRepo repositories.ProjectCommentRepository, projectRepo repositories.ProjectRepository) services.ProjectCommentService {
	return &ProjectCommentServiceImpl{commentRepo: commentRepo, projectRepo: projectRepo, now: systemClock}
}

func (s *ProjectCommentServiceImpl) Create(ctx context.Context, req *dto.CreateProjectCommentRequest) (*models.ProjectComment, error) {
	if err := s.ensureProject(ctx, req.Proyecto); err != nil {
		return nil, err
	}

	comment := &models.ProjectComment{
		ProjectID: req.Proyecto,
		Author:    strings.TrimSpace(req.Autor),
		Text:      req.Texto,
		CreatedAt: s.now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to create project comment", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project comment created", "comment_id", comment.ID, "project_id", comment.ProjectID)
	return comment, nil
}

func (s *ProjectCommentServiceImpl) GetByID(ctx context.Context, id uint) (*models.ProjectComment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "comentario", id)
	}
	return comment, nil
}

func (s *ProjectCommentServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateProjectCommentRequest) (*models.ProjectComment, error) {
	comment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Proyecto != nil && *req.Proyecto != comment.ProjectID {
		if err := s.ensureProject(ctx, *req.Proyecto); err != nil {
			return nil, err
		}
		comment.ProjectID = *req.Proyecto
	}
	if req.Autor != nil {
		comment.Author = strings.TrimSpace(*req.Autor)
	}
	if req.Texto != nil {
		comment.Text = *req.Texto
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to update project comment", "comment_id", id, "error", err)
		return nil, err
	}
	return comment, nil
}

func (s *ProjectCommentServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "comentario", id)
	}
	logger.InfoContext(ctx, "Project comment deleted", "comment_id", id)
	return nil
}

func (s *ProjectCommentServiceImpl) List(ctx context.Context, filter dto.ProjectCommentFilter) ([]*models.ProjectComment, error) {
	return s.commentRepo.List(ctx, filter)
}

func (s *ProjectCommentServiceImpl) ensureProject(ctx context.Context, id uint) error {
	exists, err := s.projectRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return invalidPK("proyecto", id)
	}
	return nil
}
