package dto

import (
	"time"

	"pc2-api/domain/models"
)

// === Requests: TipoArchivo ===

type CreateFileTypeRequest struct {
	Nombre                string  `json:"nombre" validate:"required,notblank,max=100"`
	Descripcion           *string `json:"descripcion"`
	ExtensionesPermitidas string  `json:"extensiones_permitidas" validate:"required,notblank,max=200"`
	Icono                 *string `json:"icono" validate:"omitempty,max=50"`
}

type UpdateFileTypeRequest struct {
	Nombre                *string `json:"nombre" validate:"omitempty,notblank,max=100"`
	Descripcion           *string `json:"descripcion"`
	ExtensionesPermitidas *string `json:"extensiones_permitidas" validate:"omitempty,notblank,max=200"`
	Icono                 *string `json:"icono" validate:"omitempty,max=50"`
}

func (r *CreateFileTypeRequest) ToUpdate() *UpdateFileTypeRequest {
	return &UpdateFileTypeRequest{
		Nombre:                &r.Nombre,
		Descripcion:           r.Descripcion,
		ExtensionesPermitidas: &r.ExtensionesPermitidas,
		Icono:                 r.Icono,
	}
}

// === Requests: Coleccion ===

type CreateCollectionRequest struct {
	Nombre      string  `json:"nombre" validate:"required,notblank,max=200"`
	Descripcion *string `json:"descripcion"`
	Publica     *bool   `json:"publica"`
	Miniatura   *string `json:"miniatura" validate:"omitempty,max=255"`
}

type UpdateCollectionRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,notblank,max=200"`
	Descripcion *string `json:"descripcion"`
	Publica     *bool   `json:"publica"`
	Miniatura   *string `json:"miniatura" validate:"omitempty,max=255"`
}

func (r *CreateCollectionRequest) ToUpdate() *UpdateCollectionRequest {
	return &UpdateCollectionRequest{
		Nombre:      &r.Nombre,
		Descripcion: r.Descripcion,
		Publica:     r.Publica,
		Miniatura:   r.Miniatura,
	}
}

// === Requests: ArchivoMultimedia ===

type CreateMediaFileRequest struct {
	Titulo           string         `json:"titulo" validate:"required,notblank,max=200"`
	Descripcion      *string        `json:"descripcion"`
	Archivo          string         `json:"archivo" validate:"required,notblank,max=255"`
	Miniatura        *string        `json:"miniatura" validate:"omitempty,max=255"`
	TipoArchivo      uint           `json:"tipo_archivo" validate:"required"`
	Coleccion        Nullable[uint] `json:"coleccion"`
	TamanoBytes      *int64         `json:"tamaño_bytes" validate:"omitempty,gte=0"`
	DuracionSegundos Nullable[int]  `json:"duracion_segundos"`
	Destacado        *bool          `json:"destacado"`
}

type UpdateMediaFileRequest struct {
	Titulo           *string        `json:"titulo" validate:"omitempty,notblank,max=200"`
	Descripcion      *string        `json:"descripcion"`
	Archivo          *string        `json:"archivo" validate:"omitempty,notblank,max=255"`
	Miniatura        *string        `json:"miniatura" validate:"omitempty,max=255"`
	TipoArchivo      *uint          `json:"tipo_archivo" validate:"omitempty,gt=0"`
	Coleccion        Nullable[uint] `json:"coleccion"`
	TamanoBytes      *int64         `json:"tamaño_bytes" validate:"omitempty,gte=0"`
	DuracionSegundos Nullable[int]  `json:"duracion_segundos"`
	Destacado        *bool          `json:"destacado"`
}

func (r *CreateMediaFileRequest) ToUpdate() *UpdateMediaFileRequest {
	return &UpdateMediaFileRequest{
		Titulo:           &r.Titulo,
		Descripcion:      r.Descripcion,
		Archivo:          &r.Archivo,
		Miniatura:        r.Miniatura,
		TipoArchivo:      &r.TipoArchivo,
		Coleccion:        r.Coleccion,
		TamanoBytes:      r.TamanoBytes,
		DuracionSegundos: r.DuracionSegundos,
		Destacado:        r.Destacado,
	}
}

// === Requests: Comentario ===

type CreateMediaCommentRequest struct {
	Archivo  uint    `json:"archivo" validate:"required"`
	Autor    *string `json:"autor" validate:"omitempty,max=100"`
	Texto    string  `json:"texto" validate:"required,notblank"`
	Aprobado *bool   `json:"aprobado"`
}

type UpdateMediaCommentRequest struct {
	Archivo  *uint   `json:"archivo" validate:"omitempty,gt=0"`
	Autor    *string `json:"autor" validate:"omitempty,max=100"`
	Texto    *string `json:"texto" validate:"omitempty,notblank"`
	Aprobado *bool   `json:"aprobado"`
}

func (r *CreateMediaCommentRequest) ToUpdate() *UpdateMediaCommentRequest {
	return &UpdateMediaCommentRequest{
		Archivo:  &r.Archivo,
		Autor:    r.Autor,
		Texto:    &r.Texto,
		Aprobado: r.Aprobado,
	}
}

// === Responses ===

type FileTypeResponse struct {
	ID                    uint   `json:"id"`
	Nombre                string `json:"nombre"`
	Descripcion           string `json:"descripcion"`
	ExtensionesPermitidas string `json:"extensiones_permitidas"`
	Icono                 string `json:"icono"`
}

type CollectionResponse struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	FechaCreacion time.Time `json:"fecha_creacion"`
	Publica       bool      `json:"publica"`
	Miniatura     *string   `json:"miniatura"`
	MiniaturaURL  string    `json:"miniatura_url"`
	NumArchivos   int64     `json:"num_archivos"`
}

// MediaFileSummaryResponse รูปแบบย่อที่ใช้ใน list, destacados และ colecciones/:id/archivos
type MediaFileSummaryResponse struct {
	ID                uint      `json:"id"`
	Titulo            string    `json:"titulo"`
	Archivo           string    `json:"archivo"`
	ArchivoURL        string    `json:"archivo_url"`
	Miniatura         *string   `json:"miniatura"`
	MiniaturaURL      string    `json:"miniatura_url"`
	FechaSubida       time.Time `json:"fecha_subida"`
	TipoArchivoNombre string    `json:"tipo_archivo_nombre"`
	ColeccionNombre   *string   `json:"coleccion_nombre"`
	Destacado         bool      `json:"destacado"`
}

type MediaFileDetailResponse struct {
	ID               uint                   `json:"id"`
	Titulo           string                 `json:"titulo"`
	Descripcion      string                 `json:"descripcion"`
	Archivo          string                 `json:"archivo"`
	ArchivoURL       string                 `json:"archivo_url"`
	Miniatura        *string                `json:"miniatura"`
	MiniaturaURL     string                 `json:"miniatura_url"`
	FechaSubida      time.Time              `json:"fecha_subida"`
	TipoArchivo      *FileTypeResponse      `json:"tipo_archivo"`
	Coleccion        *CollectionResponse    `json:"coleccion"`
	TamanoBytes      int64                  `json:"tamaño_bytes"`
	DuracionSegundos *int                   `json:"duracion_segundos"`
	Destacado        bool                   `json:"destacado"`
	Comentarios      []MediaCommentResponse `json:"comentarios"`
}

type MediaCommentResponse struct {
	ID            uint      `json:"id"`
	Archivo       uint      `json:"archivo"`
	Autor         string    `json:"autor"`
	Texto         string    `json:"texto"`
	FechaCreacion time.Time `json:"fecha_creacion"`
	Aprobado      bool      `json:"aprobado"`
}

// === Mappers ===

func optionalPath(p string) *string {
	if p == "" {
		return nil
	}
	return &p
}

func FileTypeToResponse(ft *models.FileType) *FileTypeResponse {
	if ft == nil {
		return nil
	}
	return &FileTypeResponse{
		ID:                    ft.ID,
		Nombre:                ft.Name,
		Descripcion:           ft.Description,
		ExtensionesPermitidas: ft.AllowedExtensions,
		Icono:                 ft.Icon,
	}
}

func FileTypesToResponses(types []*models.FileType) []FileTypeResponse {
	responses := make([]FileTypeResponse, len(types))
	for i, ft := range types {
		responses[i] = *FileTypeToResponse(ft)
	}
	return responses
}

// CollectionToResponse num_archivos มาจาก FileCount ที่ repository คำนวณให้
func CollectionToResponse(c *models.Collection, urlFor FileURLFunc) *CollectionResponse {
	if c == nil {
		return nil
	}
	return &CollectionResponse{
		ID:            c.ID,
		Nombre:        c.Name,
		Descripcion:   c.Description,
		FechaCreacion: c.CreatedAt,
		Publica:       c.Public,
		Miniatura:     optionalPath(c.Thumbnail),
		MiniaturaURL:  resolveURL(urlFor, c.Thumbnail),
		NumArchivos:   c.FileCount,
	}
}

func CollectionsToResponses(collections []*models.Collection, urlFor FileURLFunc) []CollectionResponse {
	responses := make([]CollectionResponse, len(collections))
	for i, c := range collections {
		responses[i] = *CollectionToResponse(c, urlFor)
	}
	return responses
}

// MediaFileToSummaryResponse ต้อง preload FileType และ Collection
func MediaFileToSummaryResponse(f *models.MediaFile, urlFor FileURLFunc) *MediaFileSummaryResponse {
	if f == nil {
		return nil
	}
	resp := &MediaFileSummaryResponse{
		ID:           f.ID,
		Titulo:       f.Title,
		Archivo:      f.File,
		ArchivoURL:   resolveURL(urlFor, f.File),
		Miniatura:    optionalPath(f.Thumbnail),
		MiniaturaURL: resolveURL(urlFor, f.Thumbnail),
		FechaSubida:  f.UploadedAt,
		Destacado:    f.Featured,
	}
	if f.FileType != nil {
		resp.TipoArchivoNombre = f.FileType.Name
	}
	if f.Collection != nil {
		name := f.Collection.Name
		resp.ColeccionNombre = &name
	}
	return resp
}

func MediaFilesToSummaryResponses(files []*models.MediaFile, urlFor FileURLFunc) []MediaFileSummaryResponse {
	responses := make([]MediaFileSummaryResponse, len(files))
	for i, f := range files {
		responses[i] = *MediaFileToSummaryResponse(f, urlFor)
	}
	return responses
}

// MediaFileToDetailResponse แสดงเฉพาะความคิดเห็นที่อนุมัติแล้ว
func MediaFileToDetailResponse(f *models.MediaFile, urlFor FileURLFunc) *MediaFileDetailResponse {
	if f == nil {
		return nil
	}
	comments := make([]MediaCommentResponse, 0, len(f.Comments))
	for i := range f.Comments {
		if f.Comments[i].Approved {
			comments = append(comments, *MediaCommentToResponse(&f.Comments[i]))
		}
	}
	return &MediaFileDetailResponse{
		ID:               f.ID,
		Titulo:           f.Title,
		Descripcion:      f.Description,
		Archivo:          f.File,
		ArchivoURL:       resolveURL(urlFor, f.File),
		Miniatura:        optionalPath(f.Thumbnail),
		MiniaturaURL:     resolveURL(urlFor, f.Thumbnail),
		FechaSubida:      f.UploadedAt,
		TipoArchivo:      FileTypeToResponse(f.FileType),
		Coleccion:        CollectionToResponse(f.Collection, urlFor),
		TamanoBytes:      f.SizeBytes,
		DuracionSegundos: f.DurationSeconds,
		Destacado:        f.Featured,
		Comentarios:      comments,
	}
}

func MediaCommentToResponse(c *models.MediaComment) *MediaCommentResponse {
	if c == nil {
		return nil
	}
	return &MediaCommentResponse{
		ID:            c.ID,
		Archivo:       c.MediaFileID,
		Autor:         c.Author,
		Texto:         c.Text,
		FechaCreacion: c.CreatedAt,
		Aprobado:      c.Approved,
	}
}

func MediaCommentsToResponses(comments []*models.MediaComment) []MediaCommentResponse {
	responses := make([]MediaCommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = *MediaCommentToResponse(c)
	}
	return responses
}
