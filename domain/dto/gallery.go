package dto

import (
	"time"

	"pc2-api/domain/models"
)

// === Requests: Categoria ===

type CreateGalleryCategoryRequest struct {
	Nombre      string  `json:"nombre" validate:"required,notblank,max=100"`
	Descripcion *string `json:"descripcion"`
}

type UpdateGalleryCategoryRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,notblank,max=100"`
	Descripcion *string `json:"descripcion"`
}

func (r *CreateGalleryCategoryRequest) ToUpdate() *UpdateGalleryCategoryRequest {
	return &UpdateGalleryCategoryRequest{Nombre: &r.Nombre, Descripcion: r.Descripcion}
}

// === Requests: Fotografo ===

type CreatePhotographerRequest struct {
	Nombre    string  `json:"nombre" validate:"required,notblank,max=100"`
	Apellido  string  `json:"apellido" validate:"required,notblank,max=100"`
	Email     string  `json:"email" validate:"required,email,max=254"`
	Biografia *string `json:"biografia"`
}

type UpdatePhotographerRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,notblank,max=100"`
	Apellido  *string `json:"apellido" validate:"omitempty,notblank,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	Biografia *string `json:"biografia"`
}

func (r *CreatePhotographerRequest) ToUpdate() *UpdatePhotographerRequest {
	return &UpdatePhotographerRequest{
		Nombre:    &r.Nombre,
		Apellido:  &r.Apellido,
		Email:     &r.Email,
		Biografia: r.Biografia,
	}
}

// === Requests: Imagen ===

type CreateImageRequest struct {
	Titulo       string                `json:"titulo" validate:"required,notblank,max=200"`
	Descripcion  *string               `json:"descripcion"`
	Archivo      string                `json:"archivo" validate:"required,notblank,max=255"`
	Categoria    Nullable[uint]        `json:"categoria"`
	Fotografo    uint                  `json:"fotografo" validate:"required"`
	Ubicacion    *string               `json:"ubicacion" validate:"omitempty,max=200"`
	FechaCaptura Nullable[models.Date] `json:"fecha_captura"`
	Destacada    *bool                 `json:"destacada"`
}

type UpdateImageRequest struct {
	Titulo       *string               `json:"titulo" validate:"omitempty,notblank,max=200"`
	Descripcion  *string               `json:"descripcion"`
	Archivo      *string               `json:"archivo" validate:"omitempty,notblank,max=255"`
	Categoria    Nullable[uint]        `json:"categoria"`
	Fotografo    *uint                 `json:"fotografo" validate:"omitempty,gt=0"`
	Ubicacion    *string               `json:"ubicacion" validate:"omitempty,max=200"`
	FechaCaptura Nullable[models.Date] `json:"fecha_captura"`
	Destacada    *bool                 `json:"destacada"`
}

func (r *CreateImageRequest) ToUpdate() *UpdateImageRequest {
	return &UpdateImageRequest{
		Titulo:       &r.Titulo,
		Descripcion:  r.Descripcion,
		Archivo:      &r.Archivo,
		Categoria:    r.Categoria,
		Fotografo:    &r.Fotografo,
		Ubicacion:    r.Ubicacion,
		FechaCaptura: r.FechaCaptura,
		Destacada:    r.Destacada,
	}
}

// === Requests: Etiqueta ===

type CreateImageTagRequest struct {
	Nombre   string `json:"nombre" validate:"required,notblank,max=50"`
	Imagenes []uint `json:"imagenes"`
}

type UpdateImageTagRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,notblank,max=50"`
	Imagenes *[]uint `json:"imagenes"`
}

func (r *CreateImageTagRequest) ToUpdate() *UpdateImageTagRequest {
	images := r.Imagenes
	if images == nil {
		images = []uint{}
	}
	return &UpdateImageTagRequest{Nombre: &r.Nombre, Imagenes: &images}
}

// === Responses ===

type GalleryCategoryResponse struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Slug          string    `json:"slug"`
	Descripcion   string    `json:"descripcion"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

type PhotographerResponse struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Email         string    `json:"email"`
	Biografia     string    `json:"biografia"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// ImageSummaryResponse รูปแบบย่อของรูปภาพ (ใช้ใน list และ imagen_principal ของโปรเจกต์)
type ImageSummaryResponse struct {
	ID              uint      `json:"id"`
	Titulo          string    `json:"titulo"`
	Archivo         string    `json:"archivo"`
	ArchivoURL      string    `json:"archivo_url"`
	FechaSubida     time.Time `json:"fecha_subida"`
	FotografoNombre string    `json:"fotografo_nombre"`
	CategoriaNombre *string   `json:"categoria_nombre"`
	Destacada       bool      `json:"destacada"`
}

type ImageDetailResponse struct {
	ID           uint                     `json:"id"`
	Titulo       string                   `json:"titulo"`
	Descripcion  string                   `json:"descripcion"`
	Archivo      string                   `json:"archivo"`
	ArchivoURL   string                   `json:"archivo_url"`
	FechaSubida  time.Time                `json:"fecha_subida"`
	Categoria    *GalleryCategoryResponse `json:"categoria"`
	Fotografo    *PhotographerResponse    `json:"fotografo"`
	Ubicacion    string                   `json:"ubicacion"`
	FechaCaptura *models.Date             `json:"fecha_captura"`
	Destacada    bool                     `json:"destacada"`
	Etiquetas    []ImageTagResponse       `json:"etiquetas"`
}

type ImageTagResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Imagenes []uint `json:"imagenes"`
}

// === Mappers ===

func GalleryCategoryToResponse(category *models.GalleryCategory) *GalleryCategoryResponse {
	if category == nil {
		return nil
	}
	return &GalleryCategoryResponse{
		ID:            category.ID,
		Nombre:        category.Name,
		Slug:          category.Slug,
		Descripcion:   category.Description,
		FechaCreacion: category.CreatedAt,
	}
}

func GalleryCategoriesToResponses(categories []*models.GalleryCategory) []GalleryCategoryResponse {
	responses := make([]GalleryCategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *GalleryCategoryToResponse(category)
	}
	return responses
}

func PhotographerToResponse(p *models.Photographer) *PhotographerResponse {
	if p == nil {
		return nil
	}
	return &PhotographerResponse{
		ID:            p.ID,
		Nombre:        p.FirstName,
		Apellido:      p.LastName,
		Email:         p.Email,
		Biografia:     p.Biography,
		FechaRegistro: p.RegisteredAt,
	}
}

func PhotographersToResponses(photographers []*models.Photographer) []PhotographerResponse {
	responses := make([]PhotographerResponse, len(photographers))
	for i, p := range photographers {
		responses[i] = *PhotographerToResponse(p)
	}
	return responses
}

// ImageToSummaryResponse ต้อง preload Photographer และ Category
func ImageToSummaryResponse(image *models.Image, urlFor FileURLFunc) *ImageSummaryResponse {
	if image == nil {
		return nil
	}
	resp := &ImageSummaryResponse{
		ID:          image.ID,
		Titulo:      image.Title,
		Archivo:     image.File,
		ArchivoURL:  resolveURL(urlFor, image.File),
		FechaSubida: image.UploadedAt,
		Destacada:   image.Featured,
	}
	if image.Photographer != nil {
		resp.FotografoNombre = image.Photographer.FullName()
	}
	if image.Category != nil {
		name := image.Category.Name
		resp.CategoriaNombre = &name
	}
	return resp
}

func ImagesToSummaryResponses(images []*models.Image, urlFor FileURLFunc) []ImageSummaryResponse {
	responses := make([]ImageSummaryResponse, len(images))
	for i, image := range images {
		responses[i] = *ImageToSummaryResponse(image, urlFor)
	}
	return responses
}

func ImageToDetailResponse(image *models.Image, urlFor FileURLFunc) *ImageDetailResponse {
	if image == nil {
		return nil
	}
	tags := make([]ImageTagResponse, len(image.Tags))
	for i := range image.Tags {
		tags[i] = *ImageTagToResponse(&image.Tags[i])
	}
	return &ImageDetailResponse{
		ID:           image.ID,
		Titulo:       image.Title,
		Descripcion:  image.Description,
		Archivo:      image.File,
		ArchivoURL:   resolveURL(urlFor, image.File),
		FechaSubida:  image.UploadedAt,
		Categoria:    GalleryCategoryToResponse(image.Category),
		Fotografo:    PhotographerToResponse(image.Photographer),
		Ubicacion:    image.Location,
		FechaCaptura: image.CapturedOn,
		Destacada:    image.Featured,
		Etiquetas:    tags,
	}
}

// ImageTagToResponse imagenes มาจาก Images ที่ preload ไว้ (ไม่ preload = list ว่าง)
func ImageTagToResponse(tag *models.ImageTag) *ImageTagResponse {
	if tag == nil {
		return nil
	}
	ids := make([]uint, len(tag.Images))
	for i := range tag.Images {
		ids[i] = tag.Images[i].ID
	}
	return &ImageTagResponse{
		ID:       tag.ID,
		Nombre:   tag.Name,
		Imagenes: ids,
	}
}

func ImageTagsToResponses(tags []*models.ImageTag) []ImageTagResponse {
	responses := make([]ImageTagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = *ImageTagToResponse(tag)
	}
	return responses
}
