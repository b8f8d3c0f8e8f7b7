package dto

import (
	"encoding/json"
	"strings"

	"pc2-api/domain/models"
)

// FileURLFunc แปลง stored path เป็น URL ที่ client เปิดได้
type FileURLFunc func(path string) string

func resolveURL(urlFor FileURLFunc, path string) string {
	if path == "" {
		return ""
	}
	if urlFor == nil {
		return path
	}
	return urlFor(path)
}

// ListOptions search และ ordering ที่ทุก list endpoint รับ
type ListOptions struct {
	Search   string
	Ordering string
}

// SearchTerms แตกคำค้นด้วย whitespace และ comma
func (o ListOptions) SearchTerms() []string {
	return strings.FieldsFunc(o.Search, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// OrderingFields แตก ordering เป็นรายการ field (ยังไม่ validate)
func (o ListOptions) OrderingFields() []string {
	var fields []string
	for _, f := range strings.Split(o.Ordering, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// TaskFilter ใช้ทั้ง list ปกติและ /filtrar
type TaskFilter struct {
	ListOptions
	Status      *models.TaskStatus
	Priority    *models.Priority
	PriorityGte *models.Priority
	PriorityLte *models.Priority
	Completed   *bool
	DueDate     *models.Date
	DueDateGte  *models.Date
	DueDateLte  *models.Date
	ListID      *uint
	TagID       *uint
}

// ImageFilter filter ของรูปภาพ
type ImageFilter struct {
	ListOptions
	CategoryID     *uint
	PhotographerID *uint
	Featured       *bool
}

// CollectionFilter filter ของคอลเลกชัน
type CollectionFilter struct {
	ListOptions
	Public *bool
}

// MediaFileFilter filter ของไฟล์มัลติมีเดีย
type MediaFileFilter struct {
	ListOptions
	FileTypeID   *uint
	CollectionID *uint
	Featured     *bool
}

// MediaCommentFilter filter ของความคิดเห็น
type MediaCommentFilter struct {
	MediaFileID *uint
	Approved    *bool
}

// ProjectFilter filter ของโปรเจกต์
type ProjectFilter struct {
	ListOptions
	Status     *models.ProjectStatus
	DueBefore  *models.Date
	OpenOnly   bool
	ClientID   *uint
	CategoryID *uint
}

// ProjectTaskFilter filter ของงานในโปรเจกต์
type ProjectTaskFilter struct {
	ListOptions
	ProjectID *uint
}

// ProjectCommentFilter filter ของความคิดเห็นในโปรเจกต์
type ProjectCommentFilter struct {
	ListOptions
	ProjectID *uint
}

// Nullable field ที่แยก "ไม่ได้ส่งมา" ออกจาก "ส่ง null มา" (PATCH ล้างค่าได้)
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf สร้าง Nullable ที่มีค่า
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// AddCommentRequest body ของ action comentar (ใช้ทั้ง multimedia และ proyectos)
type AddCommentRequest struct {
	Autor *string `json:"autor" validate:"omitempty,max=100"`
	Texto string  `json:"texto" validate:"required,notblank"`
}

// AnonymousAuthor ผู้เขียน default เมื่อไม่ได้ส่ง autor มา
const AnonymousAuthor = "Anónimo"

// AuthorOrAnonymous คืน autor ที่ trim แล้ว หรือ "Anónimo"
func (r *AddCommentRequest) AuthorOrAnonymous() string {
	if r.Autor == nil || strings.TrimSpace(*r.Autor) == "" {
		return AnonymousAuthor
	}
	return strings.TrimSpace(*r.Autor)
}
