package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/ports"
	"pc2-api/domain/services"
	"pc2-api/infrastructure/persistence"
)

type taskFixture struct {
	lists     services.TaskListService
	tasks     *TaskServiceImpl
	tags      services.TagService
	publisher *recordingPublisher
	now       time.Time
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	db := newTestDB(t)

	listRepo := persistence.NewTaskListRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	tagRepo := persistence.NewTagRepository(db)
	publisher := &recordingPublisher{}
	now := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

	tasks := NewTaskService(taskRepo, listRepo, tagRepo, publisher).(*TaskServiceImpl)
	tasks.now = fixedClock(now)

	return &taskFixture{
		lists:     NewTaskListService(listRepo, taskRepo),
		tasks:     tasks,
		tags:      NewTagService(tagRepo, taskRepo),
		publisher: publisher,
		now:       now,
	}
}

func (f *taskFixture) mustList(t *testing.T, name string) *models.TaskList {
	t.Helper()
	list, err := f.lists.Create(context.Background(), &dto.CreateTaskListRequest{Nombre: name})
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	return list
}

func (f *taskFixture) mustTag(t *testing.T, name string) *models.Tag {
	t.Helper()
	tag, err := f.tags.Create(context.Background(), &dto.CreateTagRequest{Nombre: name})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	return tag
}

func (f *taskFixture) mustTask(t *testing.T, req *dto.CreateTaskRequest) *models.Task {
	t.Helper()
	task, err := f.tasks.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestTaskCreateDefaults(t *testing.T) {
	f := newTaskFixture(t)
	list := f.mustList(t, "Casa")

	task := f.mustTask(t, &dto.CreateTaskRequest{Titulo: "Limpiar", Lista: list.ID})

	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %d, want %d", task.Priority, models.PriorityMedium)
	}
	if task.Status != models.TaskStatusPending {
		t.Errorf("status = %q, want pendiente", task.Status)
	}
	if task.Completed || task.CompletedAt != nil {
		t.Errorf("new task should not be completed: %+v", task)
	}
	if len(task.Tags) != 0 {
		t.Errorf("tags = %v, want none", task.Tags)
	}
}

func TestTaskCreateUnknownList(t *testing.T) {
	f := newTaskFixture(t)

	_, err := f.tasks.Create(context.Background(), &dto.CreateTaskRequest{Titulo: "x", Lista: 99})

	verr, ok := services.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := verr.Fields["lista"]; got != `Invalid pk "99" - object does not exist.` {
		t.Errorf("lista message = %q", got)
	}
}

func TestTaskCompletionReconciliation(t *testing.T) {
	completada := models.TaskStatusCompleted
	enProceso := models.TaskStatusInProgress

	tests := []struct {
		name          string
		estado        *models.TaskStatus
		completada    *bool
		wantStatus    models.TaskStatus
		wantCompleted bool
	}{
		{"estado completada marks completed", &completada, nil, models.TaskStatusCompleted, true},
		{"completada true sets estado", nil, ptr(true), models.TaskStatusCompleted, true},
		{"estado wins over completada", &enProceso, ptr(true), models.TaskStatusInProgress, false},
		{"neither given", nil, nil, models.TaskStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTaskFixture(t)
			list := f.mustList(t, "L")

			task := f.mustTask(t, &dto.CreateTaskRequest{
				Titulo:     "T",
				Lista:      list.ID,
				Estado:     tt.estado,
				Completada: tt.completada,
			})

			if task.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", task.Status, tt.wantStatus)
			}
			if task.Completed != tt.wantCompleted {
				t.Errorf("completed = %v, want %v", task.Completed, tt.wantCompleted)
			}
			if tt.wantCompleted != (task.CompletedAt != nil) {
				t.Errorf("completed_at = %v, want set=%v", task.CompletedAt, tt.wantCompleted)
			}
		})
	}
}

func TestTaskUpdateUncompleteResetsStatus(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()
	list := f.mustList(t, "L")
	task := f.mustTask(t, &dto.CreateTaskRequest{Titulo: "T", Lista: list.ID, Completada: ptr(true)})

	updated, err := f.tasks.Update(ctx, task.ID, &dto.UpdateTaskRequest{Completada: ptr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Completed || updated.CompletedAt != nil {
		t.Errorf("task still completed: %+v", updated)
	}
	if updated.Status != models.TaskStatusPending {
		t.Errorf("status = %q, want pendiente", updated.Status)
	}
}

func TestTaskComplete(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()
	list := f.mustList(t, "L")
	task := f.mustTask(t, &dto.CreateTaskRequest{Titulo: "T", Lista: list.ID})

	completed, err := f.tasks.Complete(ctx, task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !completed.Completed || completed.Status != models.TaskStatusCompleted {
		t.Errorf("task not completed: %+v", completed)
	}
	if completed.CompletedAt == nil || !completed.CompletedAt.Equal(f.now) {
		t.Errorf("completed_at = %v, want %v", completed.CompletedAt, f.now)
	}

	subjects := f.publisher.subjects()
	if len(subjects) != 1 || subjects[0] != ports.SubjectTaskCompleted {
		t.Errorf("events = %v", subjects)
	}

	t.Run("already completed", func(t *testing.T) {
		f.tasks.now = fixedClock(f.now.Add(time.Hour))
		defer func() { f.tasks.now = fixedClock(f.now) }()

		_, err := f.tasks.Complete(ctx, task.ID)
		verr, ok := services.AsValidation(err)
		if !ok {
			t.Fatalf("expected validation error, got %v", err)
		}
		if verr.Message != "Esta tarea ya está completada" {
			t.Errorf("message = %q", verr.Message)
		}
		if len(f.publisher.subjects()) != 1 {
			t.Errorf("second completion published an event")
		}

		current, err := f.tasks.GetByID(ctx, task.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if current.CompletedAt == nil || !current.CompletedAt.Equal(f.now) {
			t.Errorf("completed_at = %v, want unchanged %v", current.CompletedAt, f.now)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := f.tasks.Complete(ctx, 404)
		if !errors.Is(err, services.ErrNotFound) {
			t.Errorf("err = %v, want not found", err)
		}
	})
}

func TestTaskAssignTags(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()
	list := f.mustList(t, "L")
	urgente := f.mustTag(t, "urgente")
	casa := f.mustTag(t, "casa")
	task := f.mustTask(t, &dto.CreateTaskRequest{Titulo: "T", Lista: list.ID, Etiquetas: []uint{casa.ID}})

	t.Run("replaces set and ignores duplicates", func(t *testing.T) {
		got, err := f.tasks.AssignTags(ctx, task.ID, []uint{urgente.ID, urgente.ID})
		if err != nil {
			t.Fatalf("assign: %v", err)
		}
		if len(got.Tags) != 1 || got.Tags[0].ID != urgente.ID {
			t.Errorf("tags = %+v, want only urgente", got.Tags)
		}
	})

	t.Run("unknown tag leaves set unchanged", func(t *testing.T) {
		_, err := f.tasks.AssignTags(ctx, task.ID, []uint{casa.ID, 999})
		verr, ok := services.AsValidation(err)
		if !ok || verr.Message != "Alguna de las etiquetas solicitadas no existe" {
			t.Fatalf("err = %v", err)
		}

		current, _ := f.tasks.GetByID(ctx, task.ID)
		if len(current.Tags) != 1 || current.Tags[0].ID != urgente.ID {
			t.Errorf("tags changed after failed assignment: %+v", current.Tags)
		}
	})

	t.Run("empty list clears", func(t *testing.T) {
		got, err := f.tasks.AssignTags(ctx, task.ID, []uint{})
		if err != nil {
			t.Fatalf("assign: %v", err)
		}
		if len(got.Tags) != 0 {
			t.Errorf("tags = %+v, want none", got.Tags)
		}
	})
}

func TestTaskFilter(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()
	list := f.mustList(t, "L")
	tag := f.mustTag(t, "trabajo")

	may1, _ := models.ParseDate("2024-05-01")
	may20, _ := models.ParseDate("2024-05-20")

	f.mustTask(t, &dto.CreateTaskRequest{Titulo: "A", Lista: list.ID, Prioridad: ptr(models.PriorityLow), FechaVencimiento: dto.NullableOf(may1)})
	f.mustTask(t, &dto.CreateTaskRequest{Titulo: "B", Lista: list.ID, Prioridad: ptr(models.PriorityUrgent), FechaVencimiento: dto.NullableOf(may20), Etiquetas: []uint{tag.ID}})
	f.mustTask(t, &dto.CreateTaskRequest{Titulo: "C", Lista: list.ID, Prioridad: ptr(models.PriorityHigh), Completada: ptr(true)})

	from, _ := models.ParseDate("2024-05-10")

	tests := []struct {
		name   string
		filter dto.TaskFilter
		want   []string
	}{
		{"no filter uses default order", dto.TaskFilter{}, []string{"B", "C", "A"}},
		{"completed", dto.TaskFilter{Completed: ptr(true)}, []string{"C"}},
		{"not completed", dto.TaskFilter{Completed: ptr(false)}, []string{"B", "A"}},
		{"due from", dto.TaskFilter{DueDateGte: &from}, []string{"B"}},
		{"tag", dto.TaskFilter{TagID: &tag.ID}, []string{"B"}},
		{"priority", dto.TaskFilter{Priority: ptr(models.PriorityHigh)}, []string{"C"}},
		{"search", dto.TaskFilter{ListOptions: dto.ListOptions{Search: "a"}}, []string{"A"}},
		{"ordering", dto.TaskFilter{ListOptions: dto.ListOptions{Ordering: "prioridad"}}, []string{"A", "C", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := f.tasks.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			var got []string
			for _, task := range tasks {
				got = append(got, task.Title)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestTaskFilterByStatus(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()
	list := f.mustList(t, "L")

	f.mustTask(t, &dto.CreateTaskRequest{Titulo: "pendiente", Lista: list.ID})
	f.mustTask(t, &dto.CreateTaskRequest{Titulo: "en curso", Lista: list.ID, Estado: ptr(models.TaskStatusInProgress)})
	f.mustTask(t, &dto.CreateTaskRequest{Titulo: "cancelada", Lista: list.ID, Estado: ptr(models.TaskStatusCancelled)})

	tasks, err := f.tasks.List(ctx, dto.TaskFilter{Status: ptr(models.TaskStatusInProgress)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "en curso" || tasks[0].Status != models.TaskStatusInProgress {
		t.Fatalf("tasks = %+v, want only the in-progress task", tasks)
	}
}

func TestTagDeleteKeepsTasks(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()
	list := f.mustList(t, "L")
	a := f.mustTag(t, "a")
	b := f.mustTag(t, "b")
	task := f.mustTask(t, &dto.CreateTaskRequest{Titulo: "T", Lista: list.ID, Etiquetas: []uint{a.ID, b.ID}})

	if err := f.tags.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete tag: %v", err)
	}

	current, err := f.tasks.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("task removed with its tag: %v", err)
	}
	if len(current.Tags) != 1 || current.Tags[0].ID != b.ID {
		t.Errorf("tags = %+v, want only b", current.Tags)
	}
}

func TestTagNameUnique(t *testing.T) {
	f := newTaskFixture(t)
	f.mustTag(t, "casa")

	_, err := f.tags.Create(context.Background(), &dto.CreateTagRequest{Nombre: "casa"})

	verr, ok := services.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := verr.Fields["nombre"]; got != "etiqueta with this nombre already exists." {
		t.Errorf("nombre message = %q", got)
	}
}

func TestTaskListDeleteCascades(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()
	list := f.mustList(t, "L")
	task := f.mustTask(t, &dto.CreateTaskRequest{Titulo: "T", Lista: list.ID})

	if err := f.lists.Delete(ctx, list.ID); err != nil {
		t.Fatalf("delete list: %v", err)
	}
	if _, err := f.tasks.GetByID(ctx, task.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("task survived list delete: %v", err)
	}
	if _, err := f.lists.ListTasks(ctx, list.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("ListTasks on deleted list: %v", err)
	}
}
