package models

import (
	"path"
	"strings"
	"time"
)

// AllowedMediaExtensions นามสกุลไฟล์ที่ระบบรับได้ทั้งหมด
var AllowedMediaExtensions = []string{
	"mp4", "avi", "mov", "mp3", "wav",
	"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx",
}

// FileExtension คืนนามสกุล lowercase ไม่มีจุด
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

// FileType ประเภทไฟล์ (TipoArchivo)
type FileType struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:100;not null"`
	Description       string `gorm:"type:text"`
	AllowedExtensions string `gorm:"size:200;not null"` // comma separated
	Icon              string `gorm:"size:50"`

	Files []MediaFile `gorm:"foreignKey:FileTypeID;constraint:OnDelete:CASCADE"`
}

func (FileType) TableName() string {
	return "file_types"
}

// Extensions แตก AllowedExtensions เป็น slice (trim, lowercase, ตัดจุดนำหน้า)
func (f FileType) Extensions() []string {
	var exts []string
	for _, part := range strings.Split(f.AllowedExtensions, ",") {
		ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(part), "."))
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

// Allows ตรวจว่านามสกุลอยู่ในรายการของประเภทนี้
func (f FileType) Allows(ext string) bool {
	for _, e := range f.Extensions() {
		if e == ext {
			return true
		}
	}
	return false
}

// Collection คอลเลกชันไฟล์ (Coleccion)
type Collection struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
	Public      bool      `gorm:"not null"`
	Thumbnail   string    `gorm:"size:255"`

	// computed, ไม่ใช่ column
	FileCount int64 `gorm:"->;-:migration"`
}

func (Collection) TableName() string {
	return "collections"
}

// MediaFile ไฟล์มัลติมีเดีย (ArchivoMultimedia)
type MediaFile struct {
	ID              uint      `gorm:"primaryKey"`
	Title           string    `gorm:"size:200;not null"`
	Description     string    `gorm:"type:text"`
	File            string    `gorm:"size:255;not null"`
	Thumbnail       string    `gorm:"size:255"`
	UploadedAt      time.Time `gorm:"index"`
	FileTypeID      uint      `gorm:"not null;index"`
	CollectionID    *uint     `gorm:"index"`
	SizeBytes       int64     `gorm:"not null"`
	DurationSeconds *int
	Featured        bool `gorm:"not null;index"`

	// Relations
	FileType   *FileType      `gorm:"foreignKey:FileTypeID"`
	Collection *Collection    `gorm:"foreignKey:CollectionID;constraint:OnDelete:SET NULL"`
	Comments   []MediaComment `gorm:"foreignKey:MediaFileID;constraint:OnDelete:CASCADE"`
}

func (MediaFile) TableName() string {
	return "media_files"
}

// MediaComment ความคิดเห็นบนไฟล์ (Comentario)
type MediaComment struct {
	ID          uint   `gorm:"primaryKey"`
	MediaFileID uint   `gorm:"not null;index"`
	Author      string `gorm:"size:100;not null"`
	Text        string `gorm:"type:text;not null"`
	CreatedAt   time.Time
	Approved    bool `gorm:"not null;index"`
}

func (MediaComment) TableName() string {
	return "media_comments"
}
