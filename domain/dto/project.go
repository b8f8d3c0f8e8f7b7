package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"pc2-api/domain/models"
)

// === Requests: Cliente ===

type CreateClientRequest struct {
	Nombre   string  `json:"nombre" validate:"required,notblank,max=100"`
	Apellido string  `json:"apellido" validate:"required,notblank,max=100"`
	Empresa  *string `json:"empresa" validate:"omitempty,max=200"`
	Email    string  `json:"email" validate:"required,email,max=254"`
	Telefono *string `json:"telefono" validate:"omitempty,max=20"`
}

type UpdateClientRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,notblank,max=100"`
	Apellido *string `json:"apellido" validate:"omitempty,notblank,max=100"`
	Empresa  *string `json:"empresa" validate:"omitempty,max=200"`
	Email    *string `json:"email" validate:"omitempty,email,max=254"`
	Telefono *string `json:"telefono" validate:"omitempty,max=20"`
}

func (r *CreateClientRequest) ToUpdate() *UpdateClientRequest {
	return &UpdateClientRequest{
		Nombre:   &r.Nombre,
		Apellido: &r.Apellido,
		Empresa:  r.Empresa,
		Email:    &r.Email,
		Telefono: r.Telefono,
	}
}

// === Requests: Categoria ===

type CreateProjectCategoryRequest struct {
	Nombre      string  `json:"nombre" validate:"required,notblank,max=100"`
	Descripcion *string `json:"descripcion"`
}

type UpdateProjectCategoryRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,notblank,max=100"`
	Descripcion *string `json:"descripcion"`
}

func (r *CreateProjectCategoryRequest) ToUpdate() *UpdateProjectCategoryRequest {
	return &UpdateProjectCategoryRequest{Nombre: &r.Nombre, Descripcion: r.Descripcion}
}

// === Requests: Proyecto ===

type CreateProjectRequest struct {
	Titulo          string                `json:"titulo" validate:"required,notblank,max=200"`
	Descripcion     string                `json:"descripcion" validate:"required,notblank"`
	Cliente         uint                  `json:"cliente" validate:"required"`
	Categoria       uint                  `json:"categoria" validate:"required"`
	ImagenPrincipal Nullable[uint]        `json:"imagen_principal"`
	FechaInicio     *models.Date          `json:"fecha_inicio"`
	FechaEntrega    Nullable[models.Date] `json:"fecha_entrega"`
	Estado          *models.ProjectStatus `json:"estado" validate:"omitempty,oneof=pendiente en_proceso revision completado cancelado"`
	Presupuesto     *decimal.Decimal      `json:"presupuesto" validate:"required"`
	HorasEstimadas  *int                  `json:"horas_estimadas" validate:"omitempty,gte=0"`
}

type UpdateProjectRequest struct {
	Titulo          *string               `json:"titulo" validate:"omitempty,notblank,max=200"`
	Descripcion     *string               `json:"descripcion" validate:"omitempty,notblank"`
	Cliente         *uint                 `json:"cliente" validate:"omitempty,gt=0"`
	Categoria       *uint                 `json:"categoria" validate:"omitempty,gt=0"`
	ImagenPrincipal Nullable[uint]        `json:"imagen_principal"`
	FechaInicio     *models.Date          `json:"fecha_inicio"`
	FechaEntrega    Nullable[models.Date] `json:"fecha_entrega"`
	Estado          *models.ProjectStatus `json:"estado" validate:"omitempty,oneof=pendiente en_proceso revision completado cancelado"`
	Presupuesto     *decimal.Decimal      `json:"presupuesto"`
	HorasEstimadas  *int                  `json:"horas_estimadas" validate:"omitempty,gte=0"`
}

func (r *CreateProjectRequest) ToUpdate() *UpdateProjectRequest {
	return &UpdateProjectRequest{
		Titulo:          &r.Titulo,
		Descripcion:     &r.Descripcion,
		Cliente:         &r.Cliente,
		Categoria:       &r.Categoria,
		ImagenPrincipal: r.ImagenPrincipal,
		FechaInicio:     r.FechaInicio,
		FechaEntrega:    r.FechaEntrega,
		Estado:          r.Estado,
		Presupuesto:     r.Presupuesto,
		HorasEstimadas:  r.HorasEstimadas,
	}
}

// === Requests: TareaProyecto ===

type CreateProjectTaskRequest struct {
	Proyecto       uint                  `json:"proyecto" validate:"required"`
	Titulo         string                `json:"titulo" validate:"required,notblank,max=200"`
	Descripcion    *string               `json:"descripcion"`
	Completada     *bool                 `json:"completada"`
	FechaLimite    Nullable[models.Date] `json:"fecha_limite"`
	Prioridad      *models.Priority      `json:"prioridad" validate:"omitempty,gte=1,lte=4"`
	HorasDedicadas *decimal.Decimal      `json:"horas_dedicadas"`
}

type UpdateProjectTaskRequest struct {
	Proyecto       *uint                 `json:"proyecto" validate:"omitempty,gt=0"`
	Titulo         *string               `json:"titulo" validate:"omitempty,notblank,max=200"`
	Descripcion    *string               `json:"descripcion"`
	Completada     *bool                 `json:"completada"`
	FechaLimite    Nullable[models.Date] `json:"fecha_limite"`
	Prioridad      *models.Priority      `json:"prioridad" validate:"omitempty,gte=1,lte=4"`
	HorasDedicadas *decimal.Decimal      `json:"horas_dedicadas"`
}

func (r *CreateProjectTaskRequest) ToUpdate() *UpdateProjectTaskRequest {
	return &UpdateProjectTaskRequest{
		Proyecto:       &r.Proyecto,
		Titulo:         &r.Titulo,
		Descripcion:    r.Descripcion,
		Completada:     r.Completada,
		FechaLimite:    r.FechaLimite,
		Prioridad:      r.Prioridad,
		HorasDedicadas: r.HorasDedicadas,
	}
}

// === Requests: ComentarioProyecto ===

type CreateProjectCommentRequest struct {
	Proyecto uint   `json:"proyecto" validate:"required"`
	Autor    string `json:"autor" validate:"required,notblank,max=100"`
	Texto    string `json:"texto" validate:"required,notblank"`
}

type UpdateProjectCommentRequest struct {
	Proyecto *uint   `json:"proyecto" validate:"omitempty,gt=0"`
	Autor    *string `json:"autor" validate:"omitempty,notblank,max=100"`
	Texto    *string `json:"texto" validate:"omitempty,notblank"`
}

func (r *CreateProjectCommentRequest) ToUpdate() *UpdateProjectCommentRequest {
	return &UpdateProjectCommentRequest{Proyecto: &r.Proyecto, Autor: &r.Autor, Texto: &r.Texto}
}

// === Responses ===

type ClientResponse struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Empresa       string    `json:"empresa"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

type ProjectCategoryResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// ProjectSummaryResponse presupuesto เป็น string 2 ตำแหน่งเหมือน DecimalField
type ProjectSummaryResponse struct {
	ID              uint         `json:"id"`
	Titulo          string       `json:"titulo"`
	ClienteNombre   string       `json:"cliente_nombre"`
	CategoriaNombre string       `json:"categoria_nombre"`
	FechaInicio     models.Date  `json:"fecha_inicio"`
	FechaEntrega    *models.Date `json:"fecha_entrega"`
	Estado          string       `json:"estado"`
	EstadoDisplay   string       `json:"estado_display"`
	EstaRetrasado   bool         `json:"esta_retrasado"`
	Presupuesto     string       `json:"presupuesto"`
}

type ProjectDetailResponse struct {
	ID              uint                         `json:"id"`
	Titulo          string                       `json:"titulo"`
	Descripcion     string                       `json:"descripcion"`
	Cliente         *ClientResponse              `json:"cliente"`
	Categoria       *ProjectCategoryResponse     `json:"categoria"`
	ImagenPrincipal *ImageSummaryResponse        `json:"imagen_principal"`
	FechaInicio     models.Date                  `json:"fecha_inicio"`
	FechaEntrega    *models.Date                 `json:"fecha_entrega"`
	Estado          string                       `json:"estado"`
	EstadoDisplay   string                       `json:"estado_display"`
	Presupuesto     string                       `json:"presupuesto"`
	HorasEstimadas  int                          `json:"horas_estimadas"`
	EstaRetrasado   bool                         `json:"esta_retrasado"`
	Tareas          []ProjectTaskSummaryResponse `json:"tareas"`
	Comentarios     []ProjectCommentResponse     `json:"comentarios"`
}

type ProjectTaskSummaryResponse struct {
	ID               uint         `json:"id"`
	Titulo           string       `json:"titulo"`
	Completada       bool         `json:"completada"`
	FechaLimite      *models.Date `json:"fecha_limite"`
	Prioridad        int          `json:"prioridad"`
	PrioridadDisplay string       `json:"prioridad_display"`
}

type ProjectTaskResponse struct {
	ID             uint         `json:"id"`
	Proyecto       uint         `json:"proyecto"`
	Titulo         string       `json:"titulo"`
	Descripcion    string       `json:"descripcion"`
	Completada     bool         `json:"completada"`
	FechaCreacion  time.Time    `json:"fecha_creacion"`
	FechaLimite    *models.Date `json:"fecha_limite"`
	Prioridad      int          `json:"prioridad"`
	HorasDedicadas string       `json:"horas_dedicadas"`
}

type ProjectCommentResponse struct {
	ID       uint      `json:"id"`
	Proyecto uint      `json:"proyecto"`
	Autor    string    `json:"autor"`
	Texto    string    `json:"texto"`
	Fecha    time.Time `json:"fecha"`
}

// === Mappers ===

func ClientToResponse(c *models.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:            c.ID,
		Nombre:        c.FirstName,
		Apellido:      c.LastName,
		Empresa:       c.Company,
		Email:         c.Email,
		Telefono:      c.Phone,
		FechaRegistro: c.RegisteredAt,
	}
}

func ClientsToResponses(clients []*models.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = *ClientToResponse(c)
	}
	return responses
}

func ProjectCategoryToResponse(c *models.ProjectCategory) *ProjectCategoryResponse {
	if c == nil {
		return nil
	}
	return &ProjectCategoryResponse{
		ID:          c.ID,
		Nombre:      c.Name,
		Descripcion: c.Description,
	}
}

func ProjectCategoriesToResponses(categories []*models.ProjectCategory) []ProjectCategoryResponse {
	responses := make([]ProjectCategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = *ProjectCategoryToResponse(c)
	}
	return responses
}

// ProjectToSummaryResponse ต้อง preload Client และ Category
func ProjectToSummaryResponse(p *models.Project, today models.Date) *ProjectSummaryResponse {
	if p == nil {
		return nil
	}
	resp := &ProjectSummaryResponse{
		ID:            p.ID,
		Titulo:        p.Title,
		FechaInicio:   p.StartDate,
		FechaEntrega:  p.DueDate,
		Estado:        string(p.Status),
		EstadoDisplay: p.Status.Label(),
		EstaRetrasado: p.IsOverdue(today),
		Presupuesto:   p.Budget.StringFixed(2),
	}
	if p.Client != nil {
		resp.ClienteNombre = p.Client.DisplayName()
	}
	if p.Category != nil {
		resp.CategoriaNombre = p.Category.Name
	}
	return resp
}

func ProjectsToSummaryResponses(projects []*models.Project, today models.Date) []ProjectSummaryResponse {
	responses := make([]ProjectSummaryResponse, len(projects))
	for i, p := range projects {
		responses[i] = *ProjectToSummaryResponse(p, today)
	}
	return responses
}

// ProjectToDetailResponse tasks และ comments ส่งแยกเพราะ Project ไม่มี has-many relation
func ProjectToDetailResponse(
	p *models.Project,
	tasks []*models.ProjectTask,
	comments []*models.ProjectComment,
	today models.Date,
	urlFor FileURLFunc,
) *ProjectDetailResponse {
	if p == nil {
		return nil
	}
	return &ProjectDetailResponse{
		ID:              p.ID,
		Titulo:          p.Title,
		Descripcion:     p.Description,
		Cliente:         ClientToResponse(p.Client),
		Categoria:       ProjectCategoryToResponse(p.Category),
		ImagenPrincipal: ImageToSummaryResponse(p.MainImage, urlFor),
		FechaInicio:     p.StartDate,
		FechaEntrega:    p.DueDate,
		Estado:          string(p.Status),
		EstadoDisplay:   p.Status.Label(),
		Presupuesto:     p.Budget.StringFixed(2),
		HorasEstimadas:  p.EstimatedHours,
		EstaRetrasado:   p.IsOverdue(today),
		Tareas:          ProjectTasksToSummaryResponses(tasks),
		Comentarios:     ProjectCommentsToResponses(comments),
	}
}

func ProjectTaskToSummaryResponse(t *models.ProjectTask) *ProjectTaskSummaryResponse {
	if t == nil {
		return nil
	}
	return &ProjectTaskSummaryResponse{
		ID:               t.ID,
		Titulo:           t.Title,
		Completada:       t.Completed,
		FechaLimite:      t.DueDate,
		Prioridad:        int(t.Priority),
		PrioridadDisplay: t.Priority.Label(),
	}
}

func ProjectTasksToSummaryResponses(tasks []*models.ProjectTask) []ProjectTaskSummaryResponse {
	responses := make([]ProjectTaskSummaryResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = *ProjectTaskToSummaryResponse(t)
	}
	return responses
}

func ProjectTaskToResponse(t *models.ProjectTask) *ProjectTaskResponse {
	if t == nil {
		return nil
	}
	return &ProjectTaskResponse{
		ID:             t.ID,
		Proyecto:       t.ProjectID,
		Titulo:         t.Title,
		Descripcion:    t.Description,
		Completada:     t.Completed,
		FechaCreacion:  t.CreatedAt,
		FechaLimite:    t.DueDate,
		Prioridad:      int(t.Priority),
		HorasDedicadas: t.HoursSpent.StringFixed(2),
	}
}

func ProjectTasksToResponses(tasks []*models.ProjectTask) []ProjectTaskResponse {
	responses := make([]ProjectTaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = *ProjectTaskToResponse(t)
	}
	return responses
}

func ProjectCommentToResponse(c *models.ProjectComment) *ProjectCommentResponse {
	if c == nil {
		return nil
	}
	return &ProjectCommentResponse{
		ID:       c.ID,
		Proyecto: c.ProjectID,
		Autor:    c.Author,
		Texto:    c.Text,
		Fecha:    c.CreatedAt,
	}
}

func ProjectCommentsToResponses(comments []*models.ProjectComment) []ProjectCommentResponse {
	responses := make([]ProjectCommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = *ProjectCommentToResponse(c)
	}
	return responses
}
