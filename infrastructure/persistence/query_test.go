package persistence

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"gorm.io/gorm"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDatabase(DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:", LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func tagNames(tags []*models.Tag) []string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	return names
}

func TestTagSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Urgente", "urgencia_baja", "100% listo", "Casa"} {
		if err := repo.Create(ctx, &models.Tag{Name: name, Color: models.DefaultTagColor}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"100% listo", "Casa", "Urgente", "urgencia_baja"}},
		{"URG", []string{"Urgente", "urgencia_baja"}},
		{"urg baja", []string{"urgencia_baja"}},
		{"%", []string{"100% listo"}},
		{"_", []string{"urgencia_baja"}},
		{"nada", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			tags, err := repo.List(ctx, dto.ListOptions{Search: tt.search})
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if got := tagNames(tags); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskListFiltersAndOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	lists := NewTaskListRepository(db)
	tasks := NewTaskRepository(db)
	tags := NewTagRepository(db)

	list := &models.TaskList{Name: "Casa"}
	if err := lists.Create(ctx, list); err != nil {
		t.Fatalf("create list: %v", err)
	}
	tag := &models.Tag{Name: "hogar", Color: models.DefaultTagColor}
	if err := tags.Create(ctx, tag); err != nil {
		t.Fatalf("create tag: %v", err)
	}

	d1, _ := models.ParseDate("2024-06-01")
	d2, _ := models.ParseDate("2024-06-10")
	seed := []struct {
		title    string
		priority models.Priority
		due      *models.Date
		tagged   bool
	}{
		{"lavar", models.PriorityLow, &d2, true},
		{"pagar", models.PriorityUrgent, &d1, false},
		{"barrer", models.PriorityUrgent, &d2, true},
		{"leer", models.PriorityMedium, nil, false},
	}
	for _, s := range seed {
		task := &models.Task{Title: s.title, ListID: list.ID, Priority: s.priority, DueDate: s.due, Status: models.TaskStatusPending}
		var tagIDs []uint
		if s.tagged {
			tagIDs = []uint{tag.ID, tag.ID}
		}
		if err := tasks.Create(ctx, task, tagIDs); err != nil {
			t.Fatalf("create %s: %v", s.title, err)
		}
	}

	urgent := models.PriorityUrgent
	from := d2
	tests := []struct {
		name   string
		filter dto.TaskFilter
		want   []string
	}{
		{"default order", dto.TaskFilter{}, []string{"pagar", "barrer", "leer", "lavar"}},
		{"ordering asc", dto.TaskFilter{ListOptions: dto.ListOptions{Ordering: "prioridad"}}, []string{"lavar", "leer", "pagar", "barrer"}},
		{"unknown ordering falls back", dto.TaskFilter{ListOptions: dto.ListOptions{Ordering: "titulo"}}, []string{"pagar", "barrer", "leer", "lavar"}},
		{"priority", dto.TaskFilter{Priority: &urgent}, []string{"pagar", "barrer"}},
		{"due from", dto.TaskFilter{DueDateGte: &from}, []string{"barrer", "lavar"}},
		{"tag", dto.TaskFilter{TagID: &tag.ID}, []string{"barrer", "lavar"}},
		{"search", dto.TaskFilter{ListOptions: dto.ListOptions{Search: "AR"}}, []string{"pagar", "barrer", "lavar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tasks.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			titles := make([]string, len(got))
			for i, task := range got {
				titles[i] = task.Title
			}
			if !reflect.DeepEqual(titles, tt.want) {
				t.Errorf("got %v, want %v", titles, tt.want)
			}
		})
	}
}

func TestTaskDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)

	if err := repo.Delete(context.Background(), 99); !errors.Is(err, repositories.ErrRecordNotFound) {
		t.Fatalf("Delete = %v, want ErrRecordNotFound", err)
	}
	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, repositories.ErrRecordNotFound) {
		t.Fatalf("GetByID = %v, want ErrRecordNotFound", err)
	}
}

func TestReplaceTags(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	list := &models.TaskList{Name: "Trabajo"}
	if err := NewTaskListRepository(db).Create(ctx, list); err != nil {
		t.Fatalf("create list: %v", err)
	}
	tagRepo := NewTagRepository(db)
	var ids []uint
	for _, name := range []string{"a", "b", "c"} {
		tag := &models.Tag{Name: name, Color: models.DefaultTagColor}
		if err := tagRepo.Create(ctx, tag); err != nil {
			t.Fatalf("create tag: %v", err)
		}
		ids = append(ids, tag.ID)
	}

	repo := NewTaskRepository(db)
	task := &models.Task{Title: "informe", ListID: list.ID, Priority: models.PriorityMedium, Status: models.TaskStatusPending, CreatedAt: time.Now()}
	if err := repo.Create(ctx, task, ids[:2]); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if err := repo.ReplaceTags(ctx, task.ID, []uint{ids[2], ids[2]}); err != nil {
		t.Fatalf("ReplaceTags: %v", err)
	}

	var linked []uint
	db.Model(&models.TaskTag{}).Where("task_id = ?", task.ID).Pluck("tag_id", &linked)
	if !reflect.DeepEqual(linked, []uint{ids[2]}) {
		t.Errorf("linked tags = %v, want [%d]", linked, ids[2])
	}
}
