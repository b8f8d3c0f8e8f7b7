package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"pc2-api/domain/ports"
	"pc2-api/pkg/logger"
)

// Publisher publishes domain events to JetStream
type Publisher struct {
	client *Client
}

var _ ports.EventPublisherPort = (*Publisher)(nil)

// NewPublisher สร้าง Publisher ใหม่
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// Publish ส่ง event ไปยัง subject ของ event เอง
func (p *Publisher) Publish(ctx context.Context, event *ports.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ack, err := p.client.js.Publish(ctx, event.Subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.DebugContext(ctx, "Domain event published",
		"subject", event.Subject,
		"id", event.ResourceID,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)
	return nil
}
