package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"

	"pc2-api/domain/ports"
	"pc2-api/pkg/logger"
)

// EventHandler callback เมื่อได้รับ event
type EventHandler func(event *ports.DomainEvent)

// Subscriber รับ domain events แบบ core NATS (ไม่ ack, ใช้ส่งต่อให้ websocket)
type Subscriber struct {
	client *Client

	mu  sync.Mutex
	sub *nats.Subscription
}

// NewSubscriber สร้าง Subscriber ใหม่
func NewSubscriber(client *Client) *Subscriber {
	return &Subscriber{client: client}
}

// Subscribe เริ่ม listen ทุก subject ของ pc2; หยุดเมื่อ ctx ถูก cancel
func (s *Subscriber) Subscribe(ctx context.Context, handler EventHandler) error {
	sub, err := s.client.conn.Subscribe(SubjectAll, func(msg *nats.Msg) {
		var event ports.DomainEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Invalid domain event payload", "subject", msg.Subject, "error", err)
			return
		}
		handler(&event)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	s.mu.Lock()
	s.sub = sub
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = s.Unsubscribe()
	}()

	logger.Info("Subscribed to domain events", "subject", SubjectAll)
	return nil
}

// Unsubscribe หยุด listen
func (s *Subscriber) Unsubscribe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub == nil {
		return nil
	}
	err := s.sub.Unsubscribe()
	s.sub = nil
	return err
}
