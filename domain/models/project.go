package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus สถานะโปรเจกต์
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pendiente"
	ProjectStatusInProgress ProjectStatus = "en_proceso"
	ProjectStatusReview     ProjectStatus = "revision"
	ProjectStatusCompleted  ProjectStatus = "completado"
	ProjectStatusCancelled  ProjectStatus = "cancelado"
)

var projectStatusLabels = map[ProjectStatus]string{
	ProjectStatusPending:    "Pendiente",
	ProjectStatusInProgress: "En proceso",
	ProjectStatusReview:     "En revisión",
	ProjectStatusCompleted:  "Completado",
	ProjectStatusCancelled:  "Cancelado",
}

func (s ProjectStatus) IsValid() bool {
	_, ok := projectStatusLabels[s]
	return ok
}

func (s ProjectStatus) Label() string {
	return projectStatusLabels[s]
}

// IsOpen โปรเจกต์ที่ยังไม่ปิด (ใช้กับ retrasados)
func (s ProjectStatus) IsOpen() bool {
	return s == ProjectStatusPending || s == ProjectStatusInProgress || s == ProjectStatusReview
}

// OpenProjectStatuses สถานะที่นับว่ายังเปิดอยู่
var OpenProjectStatuses = []ProjectStatus{
	ProjectStatusPending,
	ProjectStatusInProgress,
	ProjectStatusReview,
}

// Client ลูกค้า
type Client struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	Company      string `gorm:"size:200"`
	Email        string `gorm:"size:254;uniqueIndex;not null"`
	Phone        string `gorm:"size:20"`
	RegisteredAt time.Time

	Projects []Project `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (Client) TableName() string {
	return "clients"
}

// DisplayName "nombre apellido (empresa)"
func (c Client) DisplayName() string {
	name := c.FirstName + " " + c.LastName
	if c.Company != "" {
		name += " (" + c.Company + ")"
	}
	return name
}

// ProjectCategory หมวดหมู่โปรเจกต์ (ลบไม่ได้ถ้ายังมีโปรเจกต์ใช้อยู่)
type ProjectCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
}

func (ProjectCategory) TableName() string {
	return "project_categories"
}

// Project โปรเจกต์งานสร้างสรรค์
type Project struct {
	ID             uint            `gorm:"primaryKey"`
	Title          string          `gorm:"size:200;not null"`
	Description    string          `gorm:"type:text;not null"`
	ClientID       uint            `gorm:"not null;index"`
	CategoryID     uint            `gorm:"not null;index"`
	MainImageID    *uint           `gorm:"index"`
	StartDate      Date            `gorm:"not null"`
	DueDate        *Date           `gorm:"index"`
	Status         ProjectStatus   `gorm:"size:20;not null;index"`
	Budget         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	EstimatedHours int             `gorm:"not null"`

	// Relations
	Client    *Client          `gorm:"foreignKey:ClientID"`
	Category  *ProjectCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	MainImage *Image           `gorm:"foreignKey:MainImageID;constraint:OnDelete:SET NULL"`
}

func (Project) TableName() string {
	return "projects"
}

// IsOverdue มีวันส่ง, ยังไม่ปิด และเลยวันส่งแล้ว
func (p Project) IsOverdue(today Date) bool {
	if p.DueDate == nil {
		return false
	}
	if p.Status == ProjectStatusCompleted || p.Status == ProjectStatusCancelled {
		return false
	}
	return p.DueDate.Before(today)
}

// ProjectTask งานย่อยในโปรเจกต์
type ProjectTask struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Completed   bool   `gorm:"not null"`
	CreatedAt   time.Time
	DueDate     *Date
	Priority    Priority        `gorm:"not null"`
	HoursSpent  decimal.Decimal `gorm:"type:numeric(6,2);not null"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (ProjectTask) TableName() string {
	return "project_tasks"
}

// ProjectComment ความคิดเห็นในโปรเจกต์
type ProjectComment struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID uint   `gorm:"not null;index"`
	Author    string `gorm:"size:100;not null"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (ProjectComment) TableName() string {
	return "project_comments"
}
