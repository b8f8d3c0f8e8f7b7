package handlers

import (
	"pc2-api/domain/dto"
	"pc2-api/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	// tareas
	TaskListService services.TaskListService
	TaskService     services.TaskService
	TagService      services.TagService

	// galeria
	GalleryCategoryService services.GalleryCategoryService
	PhotographerService    services.PhotographerService
	ImageService           services.ImageService
	ImageTagService        services.ImageTagService

	// multimedia
	FileTypeService     services.FileTypeService
	CollectionService   services.CollectionService
	MediaFileService    services.MediaFileService
	MediaCommentService services.MediaCommentService

	// proyectos
	ClientService          services.ClientService
	ProjectCategoryService services.ProjectCategoryService
	ProjectService         services.ProjectService
	ProjectTaskService     services.ProjectTaskService
	ProjectCommentService  services.ProjectCommentService

	FileURL      dto.FileURLFunc        // แปลง archivo/miniatura เป็น URL ผ่าน storage
	HealthChecks map[string]HealthCheck // database, redis, nats
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskListHandler *TaskListHandler
	TaskHandler     *TaskHandler
	TagHandler      *TagHandler

	GalleryCategoryHandler *GalleryCategoryHandler
	PhotographerHandler    *PhotographerHandler
	ImageHandler           *ImageHandler
	ImageTagHandler        *ImageTagHandler

	FileTypeHandler     *FileTypeHandler
	CollectionHandler   *CollectionHandler
	MediaFileHandler    *MediaFileHandler
	MediaCommentHandler *MediaCommentHandler

	ClientHandler          *ClientHandler
	ProjectCategoryHandler *ProjectCategoryHandler
	ProjectHandler         *ProjectHandler
	ProjectTaskHandler     *ProjectTaskHandler
	ProjectCommentHandler  *ProjectCommentHandler

	RootHandler *RootHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskListHandler: NewTaskListHandler(services.TaskListService),
		TaskHandler:     NewTaskHandler(services.TaskService),
		TagHandler:      NewTagHandler(services.TagService),

		GalleryCategoryHandler: NewGalleryCategoryHandler(services.GalleryCategoryService),
		PhotographerHandler:    NewPhotographerHandler(services.PhotographerService),
		ImageHandler:           NewImageHandler(services.ImageService, services.FileURL),
		ImageTagHandler:        NewImageTagHandler(services.ImageTagService),

		FileTypeHandler:     NewFileTypeHandler(services.FileTypeService),
		CollectionHandler:   NewCollectionHandler(services.CollectionService, services.FileURL),
		MediaFileHandler:    NewMediaFileHandler(services.MediaFileService, services.FileURL),
		MediaCommentHandler: NewMediaCommentHandler(services.MediaCommentService),

		ClientHandler:          NewClientHandler(services.ClientService),
		ProjectCategoryHandler: NewProjectCategoryHandler(services.ProjectCategoryService),
		ProjectHandler:         NewProjectHandler(services.ProjectService, services.FileURL),
		ProjectTaskHandler:     NewProjectTaskHandler(services.ProjectTaskService),
		ProjectCommentHandler:  NewProjectCommentHandler(services.ProjectCommentService),

		RootHandler: NewRootHandler(services.HealthChecks),
	}
}
