package models

import (
	"time"
)

// GalleryCategory หมวดหมู่รูปภาพ
type GalleryCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"size:120;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (GalleryCategory) TableName() string {
	return "gallery_categories"
}

// Photographer ช่างภาพ
type Photographer struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	Email        string `gorm:"size:254;uniqueIndex;not null"`
	Biography    string `gorm:"type:text"`
	RegisteredAt time.Time

	Images []Image `gorm:"foreignKey:PhotographerID;constraint:OnDelete:CASCADE"`
}

func (Photographer) TableName() string {
	return "photographers"
}

// FullName "nombre apellido"
func (p Photographer) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Image รูปภาพในแกลเลอรี
type Image struct {
	ID             uint      `gorm:"primaryKey"`
	Title          string    `gorm:"size:200;not null"`
	Description    string    `gorm:"type:text"`
	File           string    `gorm:"size:255;not null"`
	UploadedAt     time.Time `gorm:"index"`
	CategoryID     *uint     `gorm:"index"`
	PhotographerID uint      `gorm:"not null;index"`
	Location       string    `gorm:"size:200"`
	CapturedOn     *Date
	Featured       bool `gorm:"not null;index"`

	// Relations
	Category     *GalleryCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Photographer *Photographer    `gorm:"foreignKey:PhotographerID"`
	Tags         []ImageTag       `gorm:"many2many:image_tag_images;constraint:OnDelete:CASCADE"`
}

func (Image) TableName() string {
	return "images"
}

// ImageTag ป้ายกำกับรูปภาพ
type ImageTag struct {
	ID     uint    `gorm:"primaryKey"`
	Name   string  `gorm:"size:50;uniqueIndex;not null"`
	Images []Image `gorm:"many2many:image_tag_images"`
}

func (ImageTag) TableName() string {
	return "image_tags"
}

// ImageTagLink join table ของ ImageTag <-> Image
type ImageTagLink struct {
	ImageTagID uint `gorm:"primaryKey"`
	ImageID    uint `gorm:"primaryKey"`
}

func (ImageTagLink) TableName() string {
	return "image_tag_images"
}
