package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pc2-api/domain/models"
)

func TestNullable(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		want    *string
	}{
		{"absent", `{}`, false, nil},
		{"null", `{"v":null}`, true, nil},
		{"value", `{"v":"2024-06-01"}`, true, strPtr("2024-06-01")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				V Nullable[string] `json:"v"`
			}
			if err := json.Unmarshal([]byte(tt.body), &payload); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if payload.V.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", payload.V.Set, tt.wantSet)
			}
			switch {
			case tt.want == nil && payload.V.Value != nil:
				t.Errorf("Value = %q, want nil", *payload.V.Value)
			case tt.want != nil && (payload.V.Value == nil || *payload.V.Value != *tt.want):
				t.Errorf("Value = %v, want %q", payload.V.Value, *tt.want)
			}
		})
	}

	var bad struct {
		V Nullable[int] `json:"v"`
	}
	if err := json.Unmarshal([]byte(`{"v":"x"}`), &bad); err == nil {
		t.Error("expected type error")
	}

	raw, _ := json.Marshal(NullableOf(3))
	if string(raw) != "3" {
		t.Errorf("marshal = %s", raw)
	}
}

func strPtr(s string) *string { return &s }

func TestAuthorOrAnonymous(t *testing.T) {
	tests := []struct {
		autor *string
		want  string
	}{
		{nil, AnonymousAuthor},
		{strPtr("   "), AnonymousAuthor},
		{strPtr(" Ana "), "Ana"},
	}
	for _, tt := range tests {
		req := AddCommentRequest{Autor: tt.autor, Texto: "hola"}
		if got := req.AuthorOrAnonymous(); got != tt.want {
			t.Errorf("AuthorOrAnonymous = %q, want %q", got, tt.want)
		}
	}
}

func TestListOptions(t *testing.T) {
	opts := ListOptions{Search: "casa, verde\tazul", Ordering: " -prioridad, ,fecha_creacion "}

	terms := opts.SearchTerms()
	if len(terms) != 3 || terms[0] != "casa" || terms[2] != "azul" {
		t.Errorf("SearchTerms = %q", terms)
	}
	fields := opts.OrderingFields()
	if len(fields) != 2 || fields[0] != "-prioridad" || fields[1] != "fecha_creacion" {
		t.Errorf("OrderingFields = %q", fields)
	}
}

func TestTaskListDetailCounts(t *testing.T) {
	list := &models.TaskList{
		ID:   1,
		Name: "Casa",
		Tasks: []models.Task{
			{ID: 1, Title: "a", Priority: models.PriorityHigh, Status: models.TaskStatusCompleted, Completed: true},
			{ID: 2, Title: "b", Priority: models.PriorityLow, Status: models.TaskStatusPending},
		},
	}

	resp := TaskListToDetailResponse(list)
	if resp.TotalTareas != 2 || resp.TareasCompletadas != 1 {
		t.Errorf("totals = %d/%d", resp.TareasCompletadas, resp.TotalTareas)
	}
	if resp.Tareas[0].PrioridadNombre != "Alta" || resp.Tareas[1].EstadoNombre != "Pendiente" {
		t.Errorf("labels = %+v", resp.Tareas)
	}
}

func TestTaskDetailEmptyTags(t *testing.T) {
	raw, err := json.Marshal(TaskToDetailResponse(&models.Task{ID: 1, Priority: models.PriorityMedium, Status: models.TaskStatusPending}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	if tags, ok := decoded["etiquetas"].([]any); !ok || len(tags) != 0 {
		t.Errorf("etiquetas = %v, want []", decoded["etiquetas"])
	}
	if decoded["fecha_vencimiento"] != nil {
		t.Errorf("fecha_vencimiento = %v, want null", decoded["fecha_vencimiento"])
	}
}

func TestProjectSummary(t *testing.T) {
	today, _ := models.ParseDate("2024-06-15")
	due, _ := models.ParseDate("2024-06-01")
	p := &models.Project{
		ID:       1,
		Title:    "Web",
		DueDate:  &due,
		Status:   models.ProjectStatusReview,
		Budget:   decimal.RequireFromString("1500.5"),
		Client:   &models.Client{FirstName: "Ana", LastName: "Ruiz", Company: "ACME"},
		Category: &models.ProjectCategory{Name: "Diseño"},
	}

	resp := ProjectToSummaryResponse(p, today)
	if resp.Presupuesto != "1500.50" {
		t.Errorf("presupuesto = %s", resp.Presupuesto)
	}
	if resp.ClienteNombre != "Ana Ruiz (ACME)" || resp.CategoriaNombre != "Diseño" {
		t.Errorf("names = %q %q", resp.ClienteNombre, resp.CategoriaNombre)
	}
	if !resp.EstaRetrasado || resp.EstadoDisplay != "En revisión" {
		t.Errorf("estado = %+v", resp)
	}
}

func TestMediaFileDetail(t *testing.T) {
	urlFor := func(p string) string { return "http://cdn.test/" + p }
	f := &models.MediaFile{
		ID:         1,
		Title:      "intro",
		File:       "multimedia/archivos/intro.mp4",
		UploadedAt: time.Now(),
		FileType:   &models.FileType{Name: "Video"},
		Comments: []models.MediaComment{
			{ID: 1, Text: "visible", Approved: true},
			{ID: 2, Text: "pendiente"},
		},
	}

	resp := MediaFileToDetailResponse(f, urlFor)
	if resp.ArchivoURL != "http://cdn.test/multimedia/archivos/intro.mp4" {
		t.Errorf("archivo_url = %s", resp.ArchivoURL)
	}
	if resp.Miniatura != nil || resp.MiniaturaURL != "" {
		t.Errorf("miniatura = %v %q, want empty", resp.Miniatura, resp.MiniaturaURL)
	}
	if resp.Coleccion != nil {
		t.Errorf("coleccion = %+v, want nil", resp.Coleccion)
	}
	if len(resp.Comentarios) != 1 || resp.Comentarios[0].Texto != "visible" {
		t.Errorf("comentarios = %+v", resp.Comentarios)
	}
}
