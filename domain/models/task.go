package models

import (
	"time"
)

// TaskStatus สถานะของ Task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pendiente"
	TaskStatusInProgress TaskStatus = "en_proceso"
	TaskStatusCompleted  TaskStatus = "completada"
	TaskStatusCancelled  TaskStatus = "cancelada"
)

var taskStatusLabels = map[TaskStatus]string{
	TaskStatusPending:    "Pendiente",
	TaskStatusInProgress: "En proceso",
	TaskStatusCompleted:  "Completada",
	TaskStatusCancelled:  "Cancelada",
}

func (s TaskStatus) IsValid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

// Label ชื่อที่แสดง (estado_nombre)
func (s TaskStatus) Label() string {
	return taskStatusLabels[s]
}

// Priority 1..4
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

var priorityLabels = map[Priority]string{
	PriorityLow:    "Baja",
	PriorityMedium: "Media",
	PriorityHigh:   "Alta",
	PriorityUrgent: "Urgente",
}

func (p Priority) IsValid() bool {
	_, ok := priorityLabels[p]
	return ok
}

// Label ชื่อที่แสดง (prioridad_nombre)
func (p Priority) Label() string {
	return priorityLabels[p]
}

const DefaultTagColor = "#1976D2"

// TaskList กลุ่มของ Task (Lista)
type TaskList struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time

	Tasks []Task `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

func (TaskList) TableName() string {
	return "task_lists"
}

// Task งานในรายการ (Tarea)
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	ListID      uint   `gorm:"not null;index"`
	CreatedAt   time.Time
	DueDate     *Date      `gorm:"index"`
	Priority    Priority   `gorm:"not null;index"`
	Status      TaskStatus `gorm:"size:20;not null;index"`
	Completed   bool       `gorm:"not null"`
	CompletedAt *time.Time

	// Relations
	List *TaskList `gorm:"foreignKey:ListID"`
	Tags []Tag     `gorm:"many2many:task_tags;constraint:OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}

// MarkCompleted set ทั้ง 3 field ให้สอดคล้องกัน
func (t *Task) MarkCompleted(now time.Time) {
	t.Completed = true
	t.Status = TaskStatusCompleted
	t.CompletedAt = &now
}

// Tag ป้ายกำกับ Task (Etiqueta)
type Tag struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:50;not null;uniqueIndex"`
	Color string `gorm:"size:7;not null"`

	Tasks []Task `gorm:"many2many:task_tags"`
}

func (Tag) TableName() string {
	return "tags"
}

// TaskTag join table ของ Task <-> Tag
type TaskTag struct {
	TaskID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey"`
}

func (TaskTag) TableName() string {
	return "task_tags"
}
