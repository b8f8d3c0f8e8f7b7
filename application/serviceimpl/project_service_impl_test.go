package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/ports"
	"pc2-api/domain/services"
	"pc2-api/infrastructure/persistence"
)

type projectFixture struct {
	clients    services.ClientService
	categories services.ProjectCategoryService
	projects   *ProjectServiceImpl
	tasks      services.ProjectTaskService
	comments   services.ProjectCommentService
	publisher  *recordingPublisher
	cache      *countingCache
	today      models.Date
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	db := newTestDB(t)
	publisher := &recordingPublisher{}
	cache := newCountingCache()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	repos := ProjectRepositories{
		Projects:   persistence.NewProjectRepository(db),
		Clients:    persistence.NewClientRepository(db),
		Categories: persistence.NewProjectCategoryRepository(db),
		Images:     persistence.NewImageRepository(db),
		Tasks:      persistence.NewProjectTaskRepository(db),
		Comments:   persistence.NewProjectCommentRepository(db),
	}
	projects := NewProjectService(repos, publisher, cache, time.Minute).(*ProjectServiceImpl)
	projects.now = fixedClock(now)

	return &projectFixture{
		clients:    NewClientService(repos.Clients, cache),
		categories: NewProjectCategoryService(repos.Categories),
		projects:   projects,
		tasks:      NewProjectTaskService(repos.Tasks, repos.Projects, publisher),
		comments:   NewProjectCommentService(repos.Comments, repos.Projects),
		publisher:  publisher,
		cache:      cache,
		today:      models.NewDate(now),
	}
}

// seed สร้างลูกค้าและหมวดหมู่หนึ่งชุด
func (f *projectFixture) seed(t *testing.T) (*models.Client, *models.ProjectCategory) {
	t.Helper()
	ctx := context.Background()
	client, err := f.clients.Create(ctx, &dto.CreateClientRequest{
		Nombre: "Lucia", Apellido: "Mora", Email: "lucia@example.com", Empresa: ptr("Estudio Mora"),
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	category, err := f.categories.Create(ctx, &dto.CreateProjectCategoryRequest{Nombre: "Branding"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	return client, category
}

func (f *projectFixture) mustProject(t *testing.T, req *dto.CreateProjectRequest) *models.Project {
	t.Helper()
	detail, err := f.projects.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return detail.Project
}

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestProjectCreateDefaults(t *testing.T) {
	f := newProjectFixture(t)
	client, category := f.seed(t)

	project := f.mustProject(t, &dto.CreateProjectRequest{
		Titulo: "Logo", Descripcion: "Nuevo logo", Cliente: client.ID, Categoria: category.ID,
		Presupuesto: ptr(decimal.RequireFromString("1500.50")),
	})

	if project.Status != models.ProjectStatusPending {
		t.Errorf("status = %q", project.Status)
	}
	if project.StartDate.String() != f.today.String() {
		t.Errorf("fecha_inicio = %s, want %s", project.StartDate, f.today)
	}
	if got := project.Budget.StringFixed(2); got != "1500.50" {
		t.Errorf("presupuesto = %s", got)
	}
	if project.Client == nil || project.Client.DisplayName() != "Lucia Mora (Estudio Mora)" {
		t.Errorf("client not preloaded: %+v", project.Client)
	}
}

func TestProjectValidation(t *testing.T) {
	f := newProjectFixture(t)
	client, category := f.seed(t)

	tests := []struct {
		name  string
		req   *dto.CreateProjectRequest
		field string
	}{
		{
			name:  "negative budget",
			req:   &dto.CreateProjectRequest{Titulo: "x", Descripcion: "d", Cliente: client.ID, Categoria: category.ID, Presupuesto: ptr(decimal.NewFromInt(-1))},
			field: "presupuesto",
		},
		{
			name:  "unknown client",
			req:   &dto.CreateProjectRequest{Titulo: "x", Descripcion: "d", Cliente: 99, Categoria: category.ID, Presupuesto: ptr(decimal.Zero)},
			field: "cliente",
		},
		{
			name:  "unknown category",
			req:   &dto.CreateProjectRequest{Titulo: "x", Descripcion: "d", Cliente: client.ID, Categoria: 99, Presupuesto: ptr(decimal.Zero)},
			field: "categoria",
		},
		{
			name: "unknown main image",
			req: &dto.CreateProjectRequest{
				Titulo: "x", Descripcion: "d", Cliente: client.ID, Categoria: category.ID,
				Presupuesto: ptr(decimal.Zero), ImagenPrincipal: dto.NullableOf(uint(3)),
			},
			field: "imagen_principal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.projects.Create(context.Background(), tt.req)
			verr, ok := services.AsValidation(err)
			if !ok || verr.Fields[tt.field] == "" {
				t.Errorf("expected %s error, got %v", tt.field, err)
			}
		})
	}
}

func TestProjectOverdue(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	client, category := f.seed(t)

	newProject := func(title, due string, status models.ProjectStatus) {
		req := &dto.CreateProjectRequest{
			Titulo: title, Descripcion: "d", Cliente: client.ID, Categoria: category.ID,
			Presupuesto: ptr(decimal.NewFromInt(100)), Estado: &status,
		}
		if due != "" {
			req.FechaEntrega = dto.NullableOf(date(t, due))
		}
		f.mustProject(t, req)
	}
	newProject("late", "2024-06-01", models.ProjectStatusInProgress)
	newProject("late review", "2024-06-14", models.ProjectStatusReview)
	newProject("due today", "2024-06-15", models.ProjectStatusPending)
	newProject("late but done", "2024-05-01", models.ProjectStatusCompleted)
	newProject("late but cancelled", "2024-05-01", models.ProjectStatusCancelled)
	newProject("no due date", "", models.ProjectStatusPending)

	overdue, err := f.projects.Overdue(ctx)
	if err != nil {
		t.Fatalf("overdue: %v", err)
	}
	titles := map[string]bool{}
	for _, p := range overdue {
		titles[p.Title] = true
		if !p.IsOverdue(f.today) {
			t.Errorf("%q listed but IsOverdue is false", p.Title)
		}
	}
	if len(overdue) != 2 || !titles["late"] || !titles["late review"] {
		t.Errorf("overdue = %v", titles)
	}
	if f.cache.loads[overdueCacheKey(f.today)] != 1 {
		t.Errorf("overdue not read through cache key %s", overdueCacheKey(f.today))
	}

	count, err := f.projects.SweepOverdue(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if count != 2 {
		t.Errorf("sweep count = %d, want 2", count)
	}
	events := 0
	for _, s := range f.publisher.subjects() {
		if s == ports.SubjectProjectsOverdue {
			events++
		}
	}
	if events != 2 {
		t.Errorf("overdue events = %d, want 2", events)
	}
}

func TestProjectByStatus(t *testing.T) {
	f := newProjectFixture(t)
	client, category := f.seed(t)
	review := models.ProjectStatusReview
	base := dto.CreateProjectRequest{Descripcion: "d", Cliente: client.ID, Categoria: category.ID, Presupuesto: ptr(decimal.Zero)}

	a := base
	a.Titulo = "A"
	f.mustProject(t, &a)
	b := base
	b.Titulo = "B"
	b.Estado = &review
	f.mustProject(t, &b)

	tests := []struct {
		status string
		want   int
	}{
		{"", 2},
		{"revision", 1},
		{"pendiente", 1},
		{"archivado", 0},
	}
	for _, tt := range tests {
		t.Run("estado="+tt.status, func(t *testing.T) {
			projects, err := f.projects.ByStatus(context.Background(), tt.status)
			if err != nil {
				t.Fatal(err)
			}
			if len(projects) != tt.want {
				t.Errorf("got %d projects, want %d", len(projects), tt.want)
			}
		})
	}
}

func TestProjectCategoryProtected(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	client, category := f.seed(t)
	project := f.mustProject(t, &dto.CreateProjectRequest{
		Titulo: "x", Descripcion: "d", Cliente: client.ID, Categoria: category.ID, Presupuesto: ptr(decimal.Zero),
	})

	err := f.categories.Delete(ctx, category.ID)
	verr, ok := services.AsValidation(err)
	if !ok || len(verr.Fields) != 0 {
		t.Fatalf("expected request-level validation error, got %v", err)
	}
	if _, err := f.categories.GetByID(ctx, category.ID); err != nil {
		t.Errorf("category deleted despite protection: %v", err)
	}

	if err := f.projects.Delete(ctx, project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if err := f.categories.Delete(ctx, category.ID); err != nil {
		t.Errorf("delete unused category: %v", err)
	}
}

func TestProjectDetailAndChildren(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	client, category := f.seed(t)
	project := f.mustProject(t, &dto.CreateProjectRequest{
		Titulo: "x", Descripcion: "d", Cliente: client.ID, Categoria: category.ID, Presupuesto: ptr(decimal.Zero),
	})

	task, err := f.tasks.Create(ctx, &dto.CreateProjectTaskRequest{Proyecto: project.ID, Titulo: "Bocetos"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Priority != models.PriorityMedium || !task.HoursSpent.IsZero() {
		t.Errorf("task defaults = %+v", task)
	}

	comment, err := f.projects.AddComment(ctx, project.ID, &dto.AddCommentRequest{Texto: "Listo"})
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if comment.Author != dto.AnonymousAuthor {
		t.Errorf("author = %q", comment.Author)
	}

	detail, err := f.projects.GetDetail(ctx, project.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.Tasks) != 1 || len(detail.Comments) != 1 {
		t.Errorf("detail tasks=%d comments=%d", len(detail.Tasks), len(detail.Comments))
	}

	for i := 0; i < 2; i++ {
		done, err := f.tasks.Complete(ctx, task.ID)
		if err != nil {
			t.Fatalf("complete #%d: %v", i+1, err)
		}
		if !done.Completed {
			t.Errorf("complete #%d did not mark task", i+1)
		}
	}
	completions := 0
	for _, s := range f.publisher.subjects() {
		if s == ports.SubjectProjectTaskCompleted {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("completion events = %d, want 1", completions)
	}

	_, err = f.tasks.Create(ctx, &dto.CreateProjectTaskRequest{
		Proyecto: project.ID, Titulo: "neg", HorasDedicadas: ptr(decimal.NewFromFloat(-0.5)),
	})
	if verr, ok := services.AsValidation(err); !ok || verr.Fields["horas_dedicadas"] == "" {
		t.Errorf("expected horas_dedicadas error, got %v", err)
	}

	if err := f.clients.Delete(ctx, client.ID); err != nil {
		t.Fatalf("delete client: %v", err)
	}
	if _, err := f.projects.GetDetail(ctx, project.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("project survived client delete: %v", err)
	}
	if _, err := f.tasks.GetByID(ctx, task.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("task survived client delete: %v", err)
	}
}
