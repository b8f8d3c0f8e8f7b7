package dto

import (
	"time"

	"pc2-api/domain/models"
)

// === Requests: Lista ===

type CreateTaskListRequest struct {
	Nombre      string  `json:"nombre" validate:"required,notblank,max=100"`
	Descripcion *string `json:"descripcion"`
}

type UpdateTaskListRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,notblank,max=100"`
	Descripcion *string `json:"descripcion"`
}

func (r *CreateTaskListRequest) ToUpdate() *UpdateTaskListRequest {
	return &UpdateTaskListRequest{Nombre: &r.Nombre, Descripcion: r.Descripcion}
}

// === Requests: Tarea ===

type CreateTaskRequest struct {
	Titulo           string                `json:"titulo" validate:"required,notblank,max=200"`
	Descripcion      *string               `json:"descripcion"`
	Lista            uint                  `json:"lista" validate:"required"`
	FechaVencimiento Nullable[models.Date] `json:"fecha_vencimiento"`
	Prioridad        *models.Priority      `json:"prioridad" validate:"omitempty,gte=1,lte=4"`
	Estado           *models.TaskStatus    `json:"estado" validate:"omitempty,oneof=pendiente en_proceso completada cancelada"`
	Completada       *bool                 `json:"completada"`
	Etiquetas        []uint                `json:"etiquetas"`
}

type UpdateTaskRequest struct {
	Titulo           *string               `json:"titulo" validate:"omitempty,notblank,max=200"`
	Descripcion      *string               `json:"descripcion"`
	Lista            *uint                 `json:"lista" validate:"omitempty,gt=0"`
	FechaVencimiento Nullable[models.Date] `json:"fecha_vencimiento"`
	Prioridad        *models.Priority      `json:"prioridad" validate:"omitempty,gte=1,lte=4"`
	Estado           *models.TaskStatus    `json:"estado" validate:"omitempty,oneof=pendiente en_proceso completada cancelada"`
	Completada       *bool                 `json:"completada"`
	Etiquetas        []uint                `json:"etiquetas"`
}

// ToUpdate ใช้กับ PUT: field บังคับถูก set เสมอ field อื่นคงค่าเดิมถ้าไม่ได้ส่งมา
func (r *CreateTaskRequest) ToUpdate() *UpdateTaskRequest {
	return &UpdateTaskRequest{
		Titulo:           &r.Titulo,
		Descripcion:      r.Descripcion,
		Lista:            &r.Lista,
		FechaVencimiento: r.FechaVencimiento,
		Prioridad:        r.Prioridad,
		Estado:           r.Estado,
		Completada:       r.Completada,
		Etiquetas:        r.Etiquetas,
	}
}

// AssignTagsRequest body ของ asignar_etiquetas
type AssignTagsRequest struct {
	EtiquetaIDs *[]uint `json:"etiqueta_ids" validate:"required"`
}

// === Requests: Etiqueta ===

type CreateTagRequest struct {
	Nombre string  `json:"nombre" validate:"required,notblank,max=50"`
	Color  *string `json:"color" validate:"omitempty,hexcolor6"`
}

type UpdateTagRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,notblank,max=50"`
	Color  *string `json:"color" validate:"omitempty,hexcolor6"`
}

func (r *CreateTagRequest) ToUpdate() *UpdateTagRequest {
	return &UpdateTagRequest{Nombre: &r.Nombre, Color: r.Color}
}

// === Responses ===

type TaskListResponse struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

type TaskListDetailResponse struct {
	TaskListResponse
	Tareas            []TaskSummaryResponse `json:"tareas"`
	TotalTareas       int                   `json:"total_tareas"`
	TareasCompletadas int                   `json:"tareas_completadas"`
}

// TaskSummaryResponse รูปแบบย่อที่ใช้ใน list
type TaskSummaryResponse struct {
	ID               uint         `json:"id"`
	Titulo           string       `json:"titulo"`
	FechaVencimiento *models.Date `json:"fecha_vencimiento"`
	Prioridad        int          `json:"prioridad"`
	PrioridadNombre  string       `json:"prioridad_nombre"`
	Estado           string       `json:"estado"`
	EstadoNombre     string       `json:"estado_nombre"`
	Completada       bool         `json:"completada"`
}

type TaskDetailResponse struct {
	ID               uint          `json:"id"`
	Titulo           string        `json:"titulo"`
	Descripcion      string        `json:"descripcion"`
	Lista            uint          `json:"lista"`
	FechaCreacion    time.Time     `json:"fecha_creacion"`
	FechaVencimiento *models.Date  `json:"fecha_vencimiento"`
	Prioridad        int           `json:"prioridad"`
	PrioridadNombre  string        `json:"prioridad_nombre"`
	Estado           string        `json:"estado"`
	EstadoNombre     string        `json:"estado_nombre"`
	Completada       bool          `json:"completada"`
	FechaCompletada  *time.Time    `json:"fecha_completada"`
	Etiquetas        []TagResponse `json:"etiquetas"`
}

type TagResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Color  string `json:"color"`
}

// === Mappers ===

func TaskListToResponse(list *models.TaskList) *TaskListResponse {
	if list == nil {
		return nil
	}
	return &TaskListResponse{
		ID:            list.ID,
		Nombre:        list.Name,
		Descripcion:   list.Description,
		FechaCreacion: list.CreatedAt,
	}
}

func TaskListsToResponses(lists []*models.TaskList) []TaskListResponse {
	responses := make([]TaskListResponse, len(lists))
	for i, list := range lists {
		responses[i] = *TaskListToResponse(list)
	}
	return responses
}

// TaskListToDetailResponse ต้อง preload Tasks มาก่อน
func TaskListToDetailResponse(list *models.TaskList) *TaskListDetailResponse {
	if list == nil {
		return nil
	}
	tasks := make([]TaskSummaryResponse, len(list.Tasks))
	completed := 0
	for i := range list.Tasks {
		tasks[i] = *TaskToSummaryResponse(&list.Tasks[i])
		if list.Tasks[i].Completed {
			completed++
		}
	}
	return &TaskListDetailResponse{
		TaskListResponse:  *TaskListToResponse(list),
		Tareas:            tasks,
		TotalTareas:       len(list.Tasks),
		TareasCompletadas: completed,
	}
}

func TaskToSummaryResponse(task *models.Task) *TaskSummaryResponse {
	if task == nil {
		return nil
	}
	return &TaskSummaryResponse{
		ID:               task.ID,
		Titulo:           task.Title,
		FechaVencimiento: task.DueDate,
		Prioridad:        int(task.Priority),
		PrioridadNombre:  task.Priority.Label(),
		Estado:           string(task.Status),
		EstadoNombre:     task.Status.Label(),
		Completada:       task.Completed,
	}
}

func TasksToSummaryResponses(tasks []*models.Task) []TaskSummaryResponse {
	responses := make([]TaskSummaryResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToSummaryResponse(task)
	}
	return responses
}

func TaskToDetailResponse(task *models.Task) *TaskDetailResponse {
	if task == nil {
		return nil
	}
	tags := make([]TagResponse, len(task.Tags))
	for i := range task.Tags {
		tags[i] = *TagToResponse(&task.Tags[i])
	}
	return &TaskDetailResponse{
		ID:               task.ID,
		Titulo:           task.Title,
		Descripcion:      task.Description,
		Lista:            task.ListID,
		FechaCreacion:    task.CreatedAt,
		FechaVencimiento: task.DueDate,
		Prioridad:        int(task.Priority),
		PrioridadNombre:  task.Priority.Label(),
		Estado:           string(task.Status),
		EstadoNombre:     task.Status.Label(),
		Completada:       task.Completed,
		FechaCompletada:  task.CompletedAt,
		Etiquetas:        tags,
	}
}

func TagToResponse(tag *models.Tag) *TagResponse {
	if tag == nil {
		return nil
	}
	return &TagResponse{
		ID:     tag.ID,
		Nombre: tag.Name,
		Color:  tag.Color,
	}
}

func TagsToResponses(tags []*models.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = *TagToResponse(tag)
	}
	return responses
}
