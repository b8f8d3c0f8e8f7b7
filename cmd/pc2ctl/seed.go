package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/interfaces/api/handlers"
	"pc2-api/pkg/di"
)

var errDatabaseNotEmpty = errors.New("database already contains data, run with --reset to replace it")

func newSeedCommand() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample data into every app",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := di.NewContainer()
			if err := container.InitOffline(); err != nil {
				return err
			}
			defer container.Cleanup()

			if reset {
				if err := resetData(container.DB); err != nil {
					return err
				}
			} else if err := ensureEmpty(container.DB); err != nil {
				return err
			}

			summary, err := seedAll(cmd.Context(), container.Services, models.Today())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"App", "Resource", "Created"}, summary.rows()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Delete existing rows before seeding")
	return cmd
}

// seededModels ลำดับลบ: ลูกก่อนพ่อ
var seededModels = []any{
	&models.TaskTag{}, &models.Task{}, &models.Tag{}, &models.TaskList{},
	&models.ImageTagLink{}, &models.ImageTag{}, &models.Image{}, &models.Photographer{}, &models.GalleryCategory{},
	&models.MediaComment{}, &models.MediaFile{}, &models.Collection{}, &models.FileType{},
	&models.ProjectComment{}, &models.ProjectTask{}, &models.Project{}, &models.ProjectCategory{}, &models.Client{},
}

func resetData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range seededModels {
			if err := session.Delete(m).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", m, err)
			}
		}
		return nil
	})
}

func ensureEmpty(db *gorm.DB) error {
	for _, m := range seededModels {
		var count int64
		if err := db.Model(m).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errDatabaseNotEmpty
		}
	}
	return nil
}

type seedCount struct {
	app      string
	resource string
	count    int
}

type seedSummary []seedCount

func (s seedSummary) rows() [][]string {
	rows := make([][]string, 0, len(s))
	for _, c := range s {
		rows = append(rows, []string{c.app, c.resource, strconv.Itoa(c.count)})
	}
	return rows
}

func (s seedSummary) count(app, resource string) int {
	for _, c := range s {
		if c.app == app && c.resource == resource {
			return c.count
		}
	}
	return 0
}

func seedAll(ctx context.Context, svc *handlers.Services, today models.Date) (seedSummary, error) {
	var summary seedSummary
	steps := []func(context.Context, *handlers.Services, models.Date) (seedSummary, error){
		seedTasks,
		seedGallery,
		seedMultimedia,
		seedProjects,
	}
	for _, step := range steps {
		counts, err := step(ctx, svc, today)
		if err != nil {
			return nil, err
		}
		summary = append(summary, counts...)
	}
	return summary, nil
}

// === tareas ===

type seedTask struct {
	titulo      string
	descripcion string
	prioridad   models.Priority
}

var seedLists = []struct {
	nombre      string
	descripcion string
	tareas      []seedTask
}{
	{"Trabajo", "Tareas relacionadas con el trabajo", []seedTask{
		{"Preparar presentación", "Presentación para reunión del equipo", 3},
		{"Enviar informe", "Informe mensual de avances", 4},
		{"Llamar cliente", "Actualización sobre el proyecto", 2},
	}},
	{"Personal", "Cosas personales por hacer", []seedTask{
		{"Comprar regalos", "Regalos para cumpleaños de Sara", 2},
		{"Renovar documentos", "Pasaporte y licencia", 3},
		{"Ejercicio semanal", "Rutina de 3 días", 1},
	}},
	{"Compras", "Lista de compras pendientes", []seedTask{
		{"Comprar alimentos", "Frutas, verduras y carne", 3},
		{"Material de oficina", "Bolígrafos, papel y carpetas", 1},
		{"Regalo aniversario", "Buscar algo especial", 4},
	}},
	{"Proyecto Alpha", "Tareas para el proyecto Alpha", []seedTask{
		{"Diseñar wireframes", "Pantallas principales de la aplicación", 3},
		{"Reunión de planificación", "Definir próximos sprints", 2},
		{"Revisar presupuesto", "Actualizar gastos y proyecciones", 4},
	}},
	{"Estudio", "Materias y cursos que estudiar", []seedTask{
		{"Estudiar Python", "Capítulos 5-8 del libro", 2},
		{"Preparar examen", "Repaso de temas principales", 4},
		{"Entregar trabajo", "Ensayo sobre IA", 3},
	}},
	{"Hogar", "Tareas de mantenimiento del hogar", []seedTask{
		{"Reparar grifo", "Fuga en el baño principal", 3},
		{"Pintar habitación", "Comprar pintura y rodillos", 1},
		{"Ordenar garaje", "Clasificar herramientas y reciclar", 2},
	}},
	{"Salud", "Citas médicas y medicamentos", []seedTask{
		{"Cita médico", "Revisión anual", 3},
		{"Comprar medicinas", "Renovar receta", 4},
		{"Plan dieta semanal", "Preparar menús saludables", 2},
	}},
	{"Viaje a Cancún", "Planificación del viaje a Cancún", []seedTask{
		{"Reservar hotel", "Buscar opciones todo incluido", 4},
		{"Comprar billetes", "Vuelos para semana de vacaciones", 4},
		{"Planificar excursiones", "Buscar las mejores opciones", 2},
	}},
	{"Desarrollo Web", "Proyecto de desarrollo web personal", []seedTask{
		{"Diseñar UI", "Pantallas principales de la aplicación", 3},
		{"Implementar backend", "API REST y base de datos", 4},
		{"Pruebas", "Testing de funcionalidades principales", 3},
	}},
	{"Reuniones", "Agenda de reuniones y eventos", []seedTask{
		{"Reunión departamento", "Sala de conferencias 3", 3},
		{"Llamada cliente", "Actualización proyecto", 3},
		{"Team building", "Actividad de equipo mensual", 1},
	}},
}

var seedTags = []struct{ nombre, color string }{
	{"urgente", "#FF0000"},
	{"importante", "#FFA500"},
	{"pendiente", "#FFFF00"},
	{"proyecto", "#008000"},
	{"cliente", "#0000FF"},
	{"personal", "#800080"},
	{"estudio", "#FF00FF"},
	{"hogar", "#A52A2A"},
	{"reunión", "#00FFFF"},
	{"viaje", "#008080"},
}

// seedStatuses กระจายสถานะแบบคงที่ ราว 50/30/15/5 ต่อ 20 งาน
var seedStatuses = []models.TaskStatus{
	models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusPending, models.TaskStatusCompleted,
	models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusPending, models.TaskStatusInProgress,
	models.TaskStatusPending, models.TaskStatusCompleted, models.TaskStatusPending, models.TaskStatusInProgress,
	models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusPending, models.TaskStatusCompleted,
	models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusPending, models.TaskStatusCancelled,
}

func seedTasks(ctx context.Context, svc *handlers.Services, today models.Date) (seedSummary, error) {
	tagIDs := make([]uint, 0, len(seedTags))
	for _, t := range seedTags {
		color := t.color
		tag, err := svc.TagService.Create(ctx, &dto.CreateTagRequest{Nombre: t.nombre, Color: &color})
		if err != nil {
			return nil, fmt.Errorf("seed tag %s: %w", t.nombre, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	total := 0
	for i, l := range seedLists {
		desc := l.descripcion
		list, err := svc.TaskListService.Create(ctx, &dto.CreateTaskListRequest{Nombre: l.nombre, Descripcion: &desc})
		if err != nil {
			return nil, fmt.Errorf("seed list %s: %w", l.nombre, err)
		}

		for j, t := range l.tareas {
			n := i*len(l.tareas) + j
			status := seedStatuses[n%len(seedStatuses)]
			completed := status == models.TaskStatusCompleted
			priority := t.prioridad
			taskDesc := t.descripcion
			due := models.Date{Time: today.AddDate(0, 0, 1+(n*7)%30)}

			// 1-3 tag วนจากรายการ tag
			tags := make([]uint, 0, 3)
			for k := 0; k <= n%3; k++ {
				tags = append(tags, tagIDs[(n+k*3)%len(tagIDs)])
			}

			_, err := svc.TaskService.Create(ctx, &dto.CreateTaskRequest{
				Titulo:           t.titulo,
				Descripcion:      &taskDesc,
				Lista:            list.ID,
				FechaVencimiento: dto.NullableOf(due),
				Prioridad:        &priority,
				Estado:           &status,
				Completada:       &completed,
				Etiquetas:        tags,
			})
			if err != nil {
				return nil, fmt.Errorf("seed task %s: %w", t.titulo, err)
			}
			total++
		}
	}

	return seedSummary{
		{"tareas", "listas", len(seedLists)},
		{"tareas", "etiquetas", len(seedTags)},
		{"tareas", "tareas", total},
	}, nil
}

// === galeria ===

func seedGallery(ctx context.Context, svc *handlers.Services, _ models.Date) (seedSummary, error) {
	categories := []struct{ nombre, descripcion string }{
		{"Naturaleza", "Fotografías de paisajes y entornos naturales"},
		{"Arquitectura", "Fotografías de edificios y espacios arquitectónicos"},
		{"Retrato", "Fotografías de personas y retratos profesionales"},
	}
	for _, c := range categories {
		desc := c.descripcion
		if _, err := svc.GalleryCategoryService.Create(ctx, &dto.CreateGalleryCategoryRequest{Nombre: c.nombre, Descripcion: &desc}); err != nil {
			return nil, fmt.Errorf("seed gallery category %s: %w", c.nombre, err)
		}
	}

	photographers := []struct{ nombre, apellido, email, biografia string }{
		{"Ana", "Martínez", "ana.martinez@ejemplo.com", "Fotógrafa especializada en paisajes naturales con más de 10 años de experiencia."},
		{"Carlos", "Rodríguez", "carlos.rodriguez@ejemplo.com", "Fotógrafo urbano apasionado por la arquitectura moderna y los espacios públicos."},
		{"Elena", "Gómez", "elena.gomez@ejemplo.com", "Especializada en retratos y fotografía de estudio."},
	}
	for _, p := range photographers {
		bio := p.biografia
		req := &dto.CreatePhotographerRequest{Nombre: p.nombre, Apellido: p.apellido, Email: p.email, Biografia: &bio}
		if _, err := svc.PhotographerService.Create(ctx, req); err != nil {
			return nil, fmt.Errorf("seed photographer %s: %w", p.email, err)
		}
	}

	tags := []string{
		"paisaje", "montaña", "cielo", "agua", "edificio",
		"moderno", "antiguo", "persona", "retrato", "arte",
		"color", "blanco y negro", "urbano", "rural", "atardecer",
	}
	for _, name := range tags {
		if _, err := svc.ImageTagService.Create(ctx, &dto.CreateImageTagRequest{Nombre: name}); err != nil {
			return nil, fmt.Errorf("seed image tag %s: %w", name, err)
		}
	}

	return seedSummary{
		{"galeria", "categorias", len(categories)},
		{"galeria", "fotografos", len(photographers)},
		{"galeria", "etiquetas", len(tags)},
	}, nil
}

// === multimedia ===

func seedMultimedia(ctx context.Context, svc *handlers.Services, _ models.Date) (seedSummary, error) {
	fileTypes := []struct{ nombre, descripcion, extensiones, icono string }{
		{"Video", "Archivos de video en diferentes formatos", "mp4,avi,mov,webm", "fa-video"},
		{"Audio", "Archivos de audio en diferentes formatos", "mp3,wav,ogg,flac", "fa-music"},
		{"Documento", "Documentos de texto y presentaciones", "pdf,doc,docx,ppt,pptx,txt", "fa-file-pdf"},
	}
	for _, ft := range fileTypes {
		desc, icon := ft.descripcion, ft.icono
		req := &dto.CreateFileTypeRequest{Nombre: ft.nombre, Descripcion: &desc, ExtensionesPermitidas: ft.extensiones, Icono: &icon}
		if _, err := svc.FileTypeService.Create(ctx, req); err != nil {
			return nil, fmt.Errorf("seed file type %s: %w", ft.nombre, err)
		}
	}

	collections := []struct {
		nombre, descripcion string
		publica             bool
	}{
		{"Proyecto Marketing Digital", "Archivos relacionados con la campaña de marketing digital Q2 2025", true},
		{"Presentaciones Corporativas", "Presentaciones para eventos y reuniones corporativas", true},
		{"Recursos de Audio", "Música y efectos de sonido para producciones audiovisuales", false},
	}
	for _, c := range collections {
		desc, public := c.descripcion, c.publica
		req := &dto.CreateCollectionRequest{Nombre: c.nombre, Descripcion: &desc, Publica: &public}
		if _, err := svc.CollectionService.Create(ctx, req); err != nil {
			return nil, fmt.Errorf("seed collection %s: %w", c.nombre, err)
		}
	}

	return seedSummary{
		{"multimedia", "tipos", len(fileTypes)},
		{"multimedia", "colecciones", len(collections)},
	}, nil
}

// === proyectos ===

func seedProjects(ctx context.Context, svc *handlers.Services, today models.Date) (seedSummary, error) {
	days := func(n int) models.Date { return models.Date{Time: today.AddDate(0, 0, n)} }
	str := func(s string) *string { return &s }

	clients := []*dto.CreateClientRequest{
		{Nombre: "María", Apellido: "López", Empresa: str("Innovatech"), Email: "maria.lopez@innovatech.com", Telefono: str("555-1234")},
		{Nombre: "Juan", Apellido: "Pérez", Empresa: str("Diseño Global"), Email: "juan.perez@disenoglobal.com", Telefono: str("555-5678")},
		{Nombre: "Laura", Apellido: "García", Email: "laura.garcia@gmail.com", Telefono: str("555-9012")},
	}
	clientIDs := make([]uint, 0, len(clients))
	for _, req := range clients {
		client, err := svc.ClientService.Create(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("seed client %s: %w", req.Email, err)
		}
		clientIDs = append(clientIDs, client.ID)
	}

	categories := []*dto.CreateProjectCategoryRequest{
		{Nombre: "Diseño Gráfico", Descripcion: str("Proyectos de diseño gráfico, identidad visual y branding")},
		{Nombre: "Desarrollo Web", Descripcion: str("Proyectos de desarrollo de sitios web y aplicaciones web")},
		{Nombre: "Marketing Digital", Descripcion: str("Proyectos de estrategias de marketing digital y social media")},
	}
	categoryIDs := make([]uint, 0, len(categories))
	for _, req := range categories {
		category, err := svc.ProjectCategoryService.Create(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("seed project category %s: %w", req.Nombre, err)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	projects := []struct {
		titulo, descripcion string
		inicio, entrega     int
		estado              models.ProjectStatus
		presupuesto         string
		horas               int
	}{
		{"Rediseño de Marca Innovatech", "Actualización completa de la identidad visual de Innovatech.", 0, 30, models.ProjectStatusInProgress, "5000.00", 80},
		{"Portal E-commerce Diseño Global", "Desarrollo de tienda online para los productos de Diseño Global.", -15, 45, models.ProjectStatusInProgress, "8500.00", 120},
		{"Campaña Redes Sociales Verano", "Planificación y ejecución de campaña de marketing en redes sociales.", -5, 15, models.ProjectStatusPending, "3500.00", 60},
	}
	projectIDs := make([]uint, 0, len(projects))
	for i, p := range projects {
		start := days(p.inicio)
		status := p.estado
		budget := decimal.RequireFromString(p.presupuesto)
		hours := p.horas
		detail, err := svc.ProjectService.Create(ctx, &dto.CreateProjectRequest{
			Titulo:         p.titulo,
			Descripcion:    p.descripcion,
			Cliente:        clientIDs[i],
			Categoria:      categoryIDs[i],
			FechaInicio:    &start,
			FechaEntrega:   dto.NullableOf(days(p.entrega)),
			Estado:         &status,
			Presupuesto:    &budget,
			HorasEstimadas: &hours,
		})
		if err != nil {
			return nil, fmt.Errorf("seed project %s: %w", p.titulo, err)
		}
		projectIDs = append(projectIDs, detail.Project.ID)
	}

	type taskSeed struct {
		proyecto    int
		titulo      string
		descripcion string
		completada  bool
		prioridad   models.Priority
		horas       string
		limite      *int
	}
	offset := func(n int) *int { return &n }
	tasks := []taskSeed{
		{0, "Investigación de competencia", "Análisis de la identidad visual de competidores directos", true, 3, "8.5", nil},
		{0, "Propuestas de logotipo", "Diseño de 3 propuestas de logotipo basadas en la investigación", false, 4, "12.0", nil},
		{0, "Manual de marca", "Creación del manual de identidad visual", false, 2, "0", offset(25)},
		{1, "Wireframes y prototipo", "Diseño de wireframes y prototipo navegable del e-commerce", true, 3, "20.0", offset(-5)},
		{1, "Desarrollo Frontend", "Implementación HTML, CSS y JavaScript del portal", false, 4, "15.0", offset(10)},
		{1, "Integración pasarela de pagos", "Configuración e integración del sistema de pagos", false, 3, "0", offset(30)},
	}
	for _, t := range tasks {
		desc := t.descripcion
		done := t.completada
		priority := t.prioridad
		hours := decimal.RequireFromString(t.horas)
		req := &dto.CreateProjectTaskRequest{
			Proyecto:       projectIDs[t.proyecto],
			Titulo:         t.titulo,
			Descripcion:    &desc,
			Completada:     &done,
			Prioridad:      &priority,
			HorasDedicadas: &hours,
		}
		if t.limite != nil {
			req.FechaLimite = dto.NullableOf(days(*t.limite))
		}
		if _, err := svc.ProjectTaskService.Create(ctx, req); err != nil {
			return nil, fmt.Errorf("seed project task %s: %w", t.titulo, err)
		}
	}

	comments := []struct {
		proyecto     int
		autor, texto string
	}{
		{0, "María (Cliente)", "Me gustaría ver más opciones utilizando tonos azules en el logotipo."},
		{0, "Carlos (Diseñador)", "De acuerdo. Prepararé 2 propuestas adicionales con variaciones en azul para la próxima reunión."},
		{1, "Juan (Cliente)", "El prototipo se ve genial. Podemos avanzar con el desarrollo."},
	}
	for _, c := range comments {
		req := &dto.CreateProjectCommentRequest{Proyecto: projectIDs[c.proyecto], Autor: c.autor, Texto: c.texto}
		if _, err := svc.ProjectCommentService.Create(ctx, req); err != nil {
			return nil, fmt.Errorf("seed project comment: %w", err)
		}
	}

	return seedSummary{
		{"proyectos", "clientes", len(clients)},
		{"proyectos", "categorias", len(categories)},
		{"proyectos", "proyectos", len(projects)},
		{"proyectos", "tareas", len(tasks)},
		{"proyectos", "comentarios", len(comments)},
	}, nil
}
