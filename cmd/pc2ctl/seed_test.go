package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"pc2-api/domain/models"
	"pc2-api/domain/ports"
	"pc2-api/infrastructure/persistence"
	"pc2-api/interfaces/api/handlers"
	"pc2-api/pkg/di"
)

func newSeedFixture(t *testing.T) (*gorm.DB, *handlers.Services) {
	t.Helper()

	db, err := persistence.NewDatabase(persistence.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: ":memory:",
		LogLevel:   "silent",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := persistence.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	svc := di.NewServices(db, ports.NoopCache{}, ports.NoopEventPublisher{}, func(p string) string { return p }, time.Minute)
	return db, svc
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func TestSeedAll(t *testing.T) {
	db, svc := newSeedFixture(t)
	today := models.NewDate(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))

	summary, err := seedAll(context.Background(), svc, today)
	if err != nil {
		t.Fatalf("seedAll: %v", err)
	}

	tests := []struct {
		app, resource string
		model         any
		want          int
	}{
		{"tareas", "listas", &models.TaskList{}, 10},
		{"tareas", "etiquetas", &models.Tag{}, 10},
		{"tareas", "tareas", &models.Task{}, 30},
		{"galeria", "categorias", &models.GalleryCategory{}, 3},
		{"galeria", "fotografos", &models.Photographer{}, 3},
		{"galeria", "etiquetas", &models.ImageTag{}, 15},
		{"multimedia", "tipos", &models.FileType{}, 3},
		{"multimedia", "colecciones", &models.Collection{}, 3},
		{"proyectos", "clientes", &models.Client{}, 3},
		{"proyectos", "categorias", &models.ProjectCategory{}, 3},
		{"proyectos", "proyectos", &models.Project{}, 3},
		{"proyectos", "tareas", &models.ProjectTask{}, 6},
		{"proyectos", "comentarios", &models.ProjectComment{}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.app+"/"+tt.resource, func(t *testing.T) {
			if got := summary.count(tt.app, tt.resource); got != tt.want {
				t.Errorf("summary = %d, want %d", got, tt.want)
			}
			if got := count(t, db, tt.model); got != int64(tt.want) {
				t.Errorf("rows = %d, want %d", got, tt.want)
			}
		})
	}

	// สถานะ completada ต้องตรงกับ flag
	var mismatched int64
	db.Model(&models.Task{}).
		Where("(status = ? AND completed = ?) OR (status <> ? AND completed = ?)",
			models.TaskStatusCompleted, false, models.TaskStatusCompleted, true).
		Count(&mismatched)
	if mismatched != 0 {
		t.Errorf("%d tasks have status and completed out of sync", mismatched)
	}

	// ทุกงานมี tag อย่างน้อย 1
	var untagged int64
	db.Model(&models.Task{}).
		Where("id NOT IN (?)", db.Model(&models.TaskTag{}).Select("task_id")).
		Count(&untagged)
	if untagged != 0 {
		t.Errorf("%d tasks without tags", untagged)
	}

	out := renderTable([]string{"App", "Resource", "Created"}, summary.rows())
	if !strings.Contains(out, "proyectos") || !strings.Contains(out, "30") {
		t.Errorf("summary table missing rows:\n%s", out)
	}
}

func TestSeedRequiresEmptyDatabase(t *testing.T) {
	db, svc := newSeedFixture(t)

	if err := ensureEmpty(db); err != nil {
		t.Fatalf("fresh database: %v", err)
	}
	if _, err := seedAll(context.Background(), svc, models.Today()); err != nil {
		t.Fatalf("seedAll: %v", err)
	}
	if err := ensureEmpty(db); !errors.Is(err, errDatabaseNotEmpty) {
		t.Fatalf("ensureEmpty = %v, want errDatabaseNotEmpty", err)
	}

	if err := resetData(db); err != nil {
		t.Fatalf("resetData: %v", err)
	}
	if err := ensureEmpty(db); err != nil {
		t.Fatalf("after reset: %v", err)
	}

	// seed ซ้ำได้หลัง reset (ชื่อ unique ไม่ชนกัน)
	if _, err := seedAll(context.Background(), svc, models.Today()); err != nil {
		t.Fatalf("seedAll after reset: %v", err)
	}
}
