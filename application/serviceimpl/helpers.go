package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pc2-api/domain/ports"
	"pc2-api/domain/repositories"
	"pc2-api/domain/services"
	"pc2-api/pkg/logger"
	"pc2-api/pkg/utils"
)

// mapNotFound แปลง ErrRecordNotFound ของ repository เป็น services.ErrNotFound
func mapNotFound(err error, resource string, id any) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return services.NotFound(resource, id)
	}
	return err
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, repositories.ErrRecordNotFound)
}

// invalidPK error ของ foreign key ที่อ้างถึง record ที่ไม่มีอยู่
func invalidPK(field string, id uint) error {
	return services.NewFieldError(field, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
}

// duplicateValue error ของ unique field
func duplicateValue(resource, field string) error {
	return services.NewFieldError(field, fmt.Sprintf("%s with this %s already exists.", resource, field))
}

// publishEvent ส่ง event แบบ best-effort; ล้มเหลวแค่ log
func publishEvent(ctx context.Context, publisher ports.EventPublisherPort, event *ports.DomainEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish domain event", "subject", event.Subject, "error", err)
	}
}

// invalidateCache ล้ม cache แค่ log
func invalidateCache(ctx context.Context, cache ports.CachePort, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, keys...); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate cache", "keys", keys, "error", err)
	}
}

// storagePath normalize path ของไฟล์ใน storage; path ที่ไม่ปลอดภัยเป็น error ของ field นั้น
func storagePath(field, p string) (string, error) {
	cleaned, err := utils.CleanStoragePath(p)
	if err != nil {
		return "", services.NewFieldError(field, err.Error())
	}
	return cleaned, nil
}

// optionalStoragePath เหมือน storagePath แต่ค่าว่างคือไม่มีไฟล์
func optionalStoragePath(field, p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", nil
	}
	return storagePath(field, p)
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func trimmedOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return strings.TrimSpace(*s)
}

// clock ให้ test กำหนดเวลาได้
type clock func() time.Time

func systemClock() time.Time {
	return time.Now()
}
