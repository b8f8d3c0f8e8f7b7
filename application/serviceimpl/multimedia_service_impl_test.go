package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/ports"
	"pc2-api/domain/services"
	"pc2-api/infrastructure/persistence"
)

type multimediaFixture struct {
	types       services.FileTypeService
	collections services.CollectionService
	files       services.MediaFileService
	comments    services.MediaCommentService
	publisher   *recordingPublisher
}

func newMultimediaFixture(t *testing.T) *multimediaFixture {
	t.Helper()
	db := newTestDB(t)
	publisher := &recordingPublisher{}
	cache := newCountingCache()

	typeRepo := persistence.NewFileTypeRepository(db)
	collectionRepo := persistence.NewCollectionRepository(db)
	fileRepo := persistence.NewMediaFileRepository(db)
	commentRepo := persistence.NewMediaCommentRepository(db)

	return &multimediaFixture{
		types:       NewFileTypeService(typeRepo, cache),
		collections: NewCollectionService(collectionRepo, fileRepo, cache),
		files:       NewMediaFileService(fileRepo, typeRepo, collectionRepo, commentRepo, publisher, cache, time.Minute),
		comments:    NewMediaCommentService(commentRepo, fileRepo, publisher),
		publisher:   publisher,
	}
}

func (f *multimediaFixture) mustType(t *testing.T, name, extensions string) *models.FileType {
	t.Helper()
	ft, err := f.types.Create(context.Background(), &dto.CreateFileTypeRequest{Nombre: name, ExtensionesPermitidas: extensions})
	if err != nil {
		t.Fatalf("create file type: %v", err)
	}
	return ft
}

func (f *multimediaFixture) mustFile(t *testing.T, req *dto.CreateMediaFileRequest) *models.MediaFile {
	t.Helper()
	file, err := f.files.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create media file: %v", err)
	}
	return file
}

func TestMediaFileExtensionValidation(t *testing.T) {
	f := newMultimediaFixture(t)
	video := f.mustType(t, "Video", "mp4, avi,MOV,webm")

	tests := []struct {
		name       string
		archivo    string
		wantField  string
		wantPrefix string
	}{
		{name: "allowed", archivo: "clips/intro.mp4"},
		{name: "allowed uppercase", archivo: "clips/INTRO.MOV"},
		{name: "not in global list", archivo: "clips/intro.webm", wantField: "archivo"},
		{name: "no extension", archivo: "clips/intro", wantField: "archivo"},
		{name: "path traversal", archivo: "../clips/intro.mp4", wantField: "archivo"},
		{name: "absolute path", archivo: "/srv/media/intro.mp4", wantField: "archivo"},
		{
			name:       "global but not for type",
			archivo:    "docs/guion.pdf",
			wantPrefix: "El archivo no tiene una extensión permitida para este tipo. Extensiones permitidas: mp4, avi, mov, webm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.files.Create(context.Background(), &dto.CreateMediaFileRequest{
				Titulo: "x", Archivo: tt.archivo, TipoArchivo: video.ID,
			})

			if tt.wantField == "" && tt.wantPrefix == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			verr, ok := services.AsValidation(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if tt.wantField != "" && verr.Fields[tt.wantField] == "" {
				t.Errorf("missing %s error: %+v", tt.wantField, verr)
			}
			if tt.wantPrefix != "" && !strings.HasPrefix(verr.Message, tt.wantPrefix) {
				t.Errorf("message = %q", verr.Message)
			}
		})
	}
}

func TestMediaFileUnknownReferences(t *testing.T) {
	f := newMultimediaFixture(t)
	video := f.mustType(t, "Video", "mp4")

	_, err := f.files.Create(context.Background(), &dto.CreateMediaFileRequest{Titulo: "x", Archivo: "a.mp4", TipoArchivo: 77})
	if verr, ok := services.AsValidation(err); !ok || verr.Fields["tipo_archivo"] == "" {
		t.Errorf("expected tipo_archivo error, got %v", err)
	}

	_, err = f.files.Create(context.Background(), &dto.CreateMediaFileRequest{
		Titulo: "x", Archivo: "a.mp4", TipoArchivo: video.ID, Coleccion: dto.NullableOf(uint(5)),
	})
	if verr, ok := services.AsValidation(err); !ok || verr.Fields["coleccion"] == "" {
		t.Errorf("expected coleccion error, got %v", err)
	}

	_, err = f.files.Create(context.Background(), &dto.CreateMediaFileRequest{
		Titulo: "x", Archivo: "a.mp4", TipoArchivo: video.ID, DuracionSegundos: dto.NullableOf(-1),
	})
	if verr, ok := services.AsValidation(err); !ok || verr.Fields["duracion_segundos"] == "" {
		t.Errorf("expected duracion_segundos error, got %v", err)
	}
}

func TestMediaCommentFlow(t *testing.T) {
	f := newMultimediaFixture(t)
	ctx := context.Background()
	video := f.mustType(t, "Video", "mp4")
	file := f.mustFile(t, &dto.CreateMediaFileRequest{Titulo: "Intro", Archivo: "intro.mp4", TipoArchivo: video.ID})

	comment, err := f.files.AddComment(ctx, file.ID, &dto.AddCommentRequest{Texto: "Buen video", Autor: ptr("  ")})
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if comment.Author != "Anónimo" {
		t.Errorf("author = %q, want Anónimo", comment.Author)
	}
	if comment.Approved {
		t.Error("new comment should be unapproved")
	}

	detail, _ := f.files.GetByID(ctx, file.ID)
	if got := dto.MediaFileToDetailResponse(detail, nil).Comentarios; len(got) != 0 {
		t.Errorf("unapproved comment visible in detail: %+v", got)
	}

	approved, err := f.comments.Approve(ctx, comment.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !approved.Approved {
		t.Error("comment not approved")
	}

	detail, _ = f.files.GetByID(ctx, file.ID)
	if got := dto.MediaFileToDetailResponse(detail, nil).Comentarios; len(got) != 1 || got[0].ID != comment.ID {
		t.Errorf("approved comment missing from detail: %+v", got)
	}

	want := []string{ports.SubjectMediaCommentCreated, ports.SubjectMediaCommentApproved}
	got := f.publisher.subjects()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, want %v", got, want)
	}

	if _, err := f.files.AddComment(ctx, 999, &dto.AddCommentRequest{Texto: "x"}); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("comment on missing file: %v", err)
	}
}

func TestCollectionFileCountAndDelete(t *testing.T) {
	f := newMultimediaFixture(t)
	ctx := context.Background()
	video := f.mustType(t, "Video", "mp4")

	collection, err := f.collections.Create(ctx, &dto.CreateCollectionRequest{Nombre: "Demo"})
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}
	if !collection.Public {
		t.Error("collection should default to public")
	}

	for _, name := range []string{"a.mp4", "b.mp4"} {
		f.mustFile(t, &dto.CreateMediaFileRequest{
			Titulo: name, Archivo: name, TipoArchivo: video.ID, Coleccion: dto.NullableOf(collection.ID),
		})
	}

	reloaded, _ := f.collections.GetByID(ctx, collection.ID)
	if reloaded.FileCount != 2 {
		t.Errorf("file count = %d, want 2", reloaded.FileCount)
	}
	files, _ := f.collections.ListFiles(ctx, collection.ID)
	if len(files) != 2 {
		t.Errorf("ListFiles = %d files", len(files))
	}

	if err := f.collections.Delete(ctx, collection.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	remaining, _ := f.files.List(ctx, dto.MediaFileFilter{})
	if len(remaining) != 2 {
		t.Fatalf("files deleted with collection: %d left", len(remaining))
	}
	for _, file := range remaining {
		if file.CollectionID != nil {
			t.Errorf("file %d still in deleted collection", file.ID)
		}
	}
}

func TestFileTypeDeleteCascades(t *testing.T) {
	f := newMultimediaFixture(t)
	ctx := context.Background()
	video := f.mustType(t, "Video", "mp4")
	file := f.mustFile(t, &dto.CreateMediaFileRequest{Titulo: "a", Archivo: "a.mp4", TipoArchivo: video.ID})
	comment, _ := f.files.AddComment(ctx, file.ID, &dto.AddCommentRequest{Texto: "hola"})

	if err := f.types.Delete(ctx, video.ID); err != nil {
		t.Fatalf("delete type: %v", err)
	}
	if _, err := f.files.GetByID(ctx, file.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("file survived: %v", err)
	}
	if _, err := f.comments.GetByID(ctx, comment.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("comment survived: %v", err)
	}
}
