package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound record ที่อ้างถึงไม่มีอยู่ (404)
var ErrNotFound = errors.New("not found")

// NotFound สร้าง error ที่ wrap ErrNotFound พร้อมบอก resource
func NotFound(resource string, id any) error {
	return fmt.Errorf("%s %v: %w", resource, id, ErrNotFound)
}

// ValidationError request ผ่าน struct validation แต่ผิด business rule (400)
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// NewValidationError error ระดับ request ไม่ผูกกับ field
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldError error ผูกกับ field เดียว
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{
		Message: "Validation failed",
		Fields:  map[string]string{field: message},
	}
}

// IsNotFound ตรวจว่า err เป็น not-found
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsValidation ดึง *ValidationError ออกจาก chain
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
