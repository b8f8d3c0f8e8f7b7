package models

import (
	"encoding/json"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-02-29", "2024-02-29", false},
		{" 2024-06-01 ", "2024-06-01", false},
		{"2023-02-29", "", true},
		{"01/06/2024", "", true},
		{"2024-06-01T10:00:00Z", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d.String() != tt.want {
				t.Errorf("got %s, want %s", d, tt.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Due  *Date `json:"due"`
		Last Date  `json:"last"`
	}
	if err := json.Unmarshal([]byte(`{"due":"2024-06-15","last":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Due == nil || payload.Due.String() != "2024-06-15" {
		t.Fatalf("due = %v", payload.Due)
	}
	if !payload.Last.IsZero() {
		t.Errorf("null should leave zero date, got %v", payload.Last)
	}

	raw, err := json.Marshal(payload.Due)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2024-06-15"` {
		t.Errorf("marshal = %s", raw)
	}

	if err := json.Unmarshal([]byte(`{"due":"15-06-2024"}`), &payload); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "2024-06-15", "2024-06-15"},
		{"bytes", []byte("2024-06-15"), "2024-06-15"},
		{"timestamp string", "2024-06-15 00:00:00+00:00", "2024-06-15"},
		{"time", time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC), "2024-06-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.in); err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("got %s, want %s", d, tt.want)
			}
		})
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestDateBefore(t *testing.T) {
	a := mustDate(t, "2024-06-14")
	b := mustDate(t, "2024-06-15")
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("Before compares calendar days")
	}

	// เวลาในวันเดียวกันไม่มีผล
	late := NewDate(time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC))
	if late.Before(b) || b.Before(late) {
		t.Error("same day must not be before")
	}
}

func TestProjectIsOverdue(t *testing.T) {
	today := mustDate(t, "2024-06-15")
	yesterday := mustDate(t, "2024-06-14")
	tomorrow := mustDate(t, "2024-06-16")

	tests := []struct {
		name   string
		due    *Date
		status ProjectStatus
		want   bool
	}{
		{"no due date", nil, ProjectStatusPending, false},
		{"past pending", &yesterday, ProjectStatusPending, true},
		{"past in progress", &yesterday, ProjectStatusInProgress, true},
		{"past review", &yesterday, ProjectStatusReview, true},
		{"past completed", &yesterday, ProjectStatusCompleted, false},
		{"past cancelled", &yesterday, ProjectStatusCancelled, false},
		{"due today", &today, ProjectStatusPending, false},
		{"future", &tomorrow, ProjectStatusInProgress, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project{DueDate: tt.due, Status: tt.status}
			if got := p.IsOverdue(today); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
			if tt.want && !tt.status.IsOpen() {
				t.Errorf("overdue project must have an open status")
			}
		})
	}
}

func TestFileTypeAllows(t *testing.T) {
	ft := FileType{AllowedExtensions: " MP4, .webm ,,mov"}

	if got := ft.Extensions(); len(got) != 3 || got[0] != "mp4" || got[1] != "webm" {
		t.Fatalf("Extensions = %v", got)
	}

	tests := []struct {
		file string
		want bool
	}{
		{"clip.mp4", true},
		{"CLIP.MP4", true},
		{"dir/clip.webm", true},
		{"clip.avi", false},
		{"noext", false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			if got := ft.Allows(FileExtension(tt.file)); got != tt.want {
				t.Errorf("Allows(%s) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	if PriorityUrgent.Label() != "Urgente" || Priority(9).IsValid() {
		t.Error("priority labels")
	}
	if TaskStatusInProgress.Label() != "En proceso" || TaskStatus("hecha").IsValid() {
		t.Error("task status labels")
	}
	if ProjectStatusReview.Label() != "En revisión" || ProjectStatus("archivado").IsValid() {
		t.Error("project status labels")
	}
}

func TestMarkCompleted(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	task := Task{Status: TaskStatusPending}
	task.MarkCompleted(now)

	if !task.Completed || task.Status != TaskStatusCompleted || task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Fatalf("task = %+v", task)
	}
}
