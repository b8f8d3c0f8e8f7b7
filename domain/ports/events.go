package ports

import (
	"context"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Domain Events - แจ้งเหตุการณ์หลัง named action สำเร็จ
// ═══════════════════════════════════════════════════════════════════════════════

// Event subjects
const (
	SubjectTaskCompleted         = "pc2.tareas.task.completed"
	SubjectTaskTagsAssigned      = "pc2.tareas.task.tags_assigned"
	SubjectMediaCommentCreated   = "pc2.multimedia.comment.created"
	SubjectMediaCommentApproved  = "pc2.multimedia.comment.approved"
	SubjectProjectCommentCreated = "pc2.proyectos.comment.created"
	SubjectProjectTaskCompleted  = "pc2.proyectos.task.completed"
	SubjectProjectsOverdue       = "pc2.proyectos.project.overdue"
)

// DomainEvent - Plain struct (ไม่มี NATS dependency)
type DomainEvent struct {
	Subject    string         `json:"subject"`
	App        string         `json:"app"`      // tareas, galeria, multimedia, proyectos
	Resource   string         `json:"resource"` // tareas, comentarios, ...
	ResourceID uint           `json:"id"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewDomainEvent สร้าง event พร้อม timestamp
func NewDomainEvent(subject, app, resource string, id uint, payload map[string]any) *DomainEvent {
	return &DomainEvent{
		Subject:    subject,
		App:        app,
		Resource:   resource,
		ResourceID: id,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisherPort - Interface สำหรับส่ง domain event
// การ publish ล้มเหลวต้องไม่ทำให้ request ล้มเหลว (caller แค่ log)
type EventPublisherPort interface {
	Publish(ctx context.Context, event *DomainEvent) error
}

// NoopEventPublisher ใช้เมื่อไม่ได้ตั้งค่า NATS/websocket
type NoopEventPublisher struct{}

var _ EventPublisherPort = (*NoopEventPublisher)(nil)

func (NoopEventPublisher) Publish(ctx context.Context, event *DomainEvent) error {
	return nil
}
