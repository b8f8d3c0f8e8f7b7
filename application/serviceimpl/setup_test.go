package serviceimpl

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"pc2-api/domain/ports"
	"pc2-api/infrastructure/persistence"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

// recordingPublisher เก็บ event ที่ publish ไว้ตรวจใน test
type recordingPublisher struct {
	mu     sync.Mutex
	events []*ports.DomainEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event *ports.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Subject
	}
	return out
}

// countingCache นับการโหลดต่อ key และเก็บ key ที่ถูก invalidate
type countingCache struct {
	ports.NoopCache
	loads   map[string]int
	deleted []string
}

func newCountingCache() *countingCache {
	return &countingCache{loads: make(map[string]int)}
}

func (c *countingCache) GetOrSet(ctx context.Context, key string, target any, ttl time.Duration, getter func() (any, error)) error {
	c.loads[key]++
	return c.NoopCache.GetOrSet(ctx, key, target, ttl, getter)
}

func (c *countingCache) Delete(ctx context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func fixedClock(t time.Time) clock {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T {
	return &v
}
