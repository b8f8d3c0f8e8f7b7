package ports

import (
	"context"
	"encoding/json"
	"time"
)

// CachePort cache ของ list ที่ถูกเรียกบ่อย (destacadas, destacados, retrasados)
type CachePort interface {
	// GetOrSet อ่านจาก cache ใส่ target; ถ้าไม่มีจะเรียก getter แล้ว cache ผลลัพธ์
	GetOrSet(ctx context.Context, key string, target any, ttl time.Duration, getter func() (any, error)) error

	// Delete invalidate key
	Delete(ctx context.Context, keys ...string) error
}

// NoopCache เรียก getter ทุกครั้ง (ใช้เมื่อไม่มี Redis)
type NoopCache struct{}

var _ CachePort = (*NoopCache)(nil)

func (NoopCache) GetOrSet(ctx context.Context, key string, target any, ttl time.Duration, getter func() (any, error)) error {
	result, err := getter()
	if err != nil {
		return err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func (NoopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}
