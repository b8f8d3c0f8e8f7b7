package nats

import "time"

// Stream names
const (
	DefaultStreamName = "PC2_EVENTS"
	// SubjectAll ครอบทุก domain event (pc2.<app>.<resource>.<action>)
	SubjectAll = "pc2.>"

	streamMaxAge = 7 * 24 * time.Hour
)

// StreamStatus - สถานะ stream สำหรับ /health
type StreamStatus struct {
	Name     string `json:"name"`
	Messages uint64 `json:"messages"`
	Bytes    uint64 `json:"bytes"`
}
