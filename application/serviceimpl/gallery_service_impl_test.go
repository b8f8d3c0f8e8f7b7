package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/services"
	"pc2-api/infrastructure/persistence"
)

type galleryFixture struct {
	categories    services.GalleryCategoryService
	photographers services.PhotographerService
	images        services.ImageService
	tags          services.ImageTagService
	cache         *countingCache
	db            *gorm.DB // สร้าง record ของ app อื่นตรงๆ
}

func newGalleryFixture(t *testing.T) *galleryFixture {
	t.Helper()
	db := newTestDB(t)
	cache := newCountingCache()

	categoryRepo := persistence.NewGalleryCategoryRepository(db)
	photographerRepo := persistence.NewPhotographerRepository(db)
	imageRepo := persistence.NewImageRepository(db)

	return &galleryFixture{
		categories:    NewGalleryCategoryService(categoryRepo, cache),
		photographers: NewPhotographerService(photographerRepo, cache),
		images:        NewImageService(imageRepo, categoryRepo, photographerRepo, cache, time.Minute),
		tags:          NewImageTagService(persistence.NewImageTagRepository(db), imageRepo),
		cache:         cache,
		db:            db,
	}
}

func (f *galleryFixture) mustPhotographer(t *testing.T, email string) *models.Photographer {
	t.Helper()
	p, err := f.photographers.Create(context.Background(), &dto.CreatePhotographerRequest{
		Nombre: "Ana", Apellido: "Ruiz", Email: email,
	})
	if err != nil {
		t.Fatalf("create photographer: %v", err)
	}
	return p
}

func (f *galleryFixture) mustImage(t *testing.T, req *dto.CreateImageRequest) *models.Image {
	t.Helper()
	img, err := f.images.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	return img
}

func TestGalleryCategorySlug(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()

	names := []string{"Paisajes de Montaña", "Paisajes de montaña", "PAISAJES DE MONTAÑA"}
	want := []string{"paisajes-de-montana", "paisajes-de-montana-2", "paisajes-de-montana-3"}

	for i, name := range names {
		category, err := f.categories.Create(ctx, &dto.CreateGalleryCategoryRequest{Nombre: name})
		if err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
		if category.Slug != want[i] {
			t.Errorf("slug(%q) = %q, want %q", name, category.Slug, want[i])
		}
	}

	found, err := f.categories.GetBySlug(ctx, "paisajes-de-montana-2")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if found.Name != names[1] {
		t.Errorf("found %q, want %q", found.Name, names[1])
	}
}

func TestGalleryCategoryDeleteKeepsImages(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()
	p := f.mustPhotographer(t, "ana@example.com")
	category, _ := f.categories.Create(ctx, &dto.CreateGalleryCategoryRequest{Nombre: "Retratos"})
	img := f.mustImage(t, &dto.CreateImageRequest{
		Titulo: "Foto", Archivo: "imagenes/foto.jpg", Fotografo: p.ID, Categoria: dto.NullableOf(category.ID),
	})

	if err := f.categories.Delete(ctx, category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	got, err := f.images.GetByID(ctx, img.ID)
	if err != nil {
		t.Fatalf("image deleted with category: %v", err)
	}
	if got.CategoryID != nil || got.Category != nil {
		t.Errorf("category not cleared: %v", got.CategoryID)
	}
}

func TestPhotographerDeleteCascades(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()
	p := f.mustPhotographer(t, "ana@example.com")
	img := f.mustImage(t, &dto.CreateImageRequest{Titulo: "Foto", Archivo: "a.jpg", Fotografo: p.ID})
	tag, err := f.tags.Create(ctx, &dto.CreateImageTagRequest{Nombre: "luz", Imagenes: []uint{img.ID}})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}

	// โปรเจกต์ที่ใช้รูปนี้เป็นรูปหลัก
	client := &models.Client{FirstName: "C", LastName: "D", Email: "c@example.com"}
	category := &models.ProjectCategory{Name: "Web"}
	f.db.Create(client)
	f.db.Create(category)
	project := &models.Project{
		Title: "P", Description: "d", ClientID: client.ID, CategoryID: category.ID,
		MainImageID: &img.ID, StartDate: models.Today(), Status: models.ProjectStatusPending,
		Budget: decimal.NewFromInt(10),
	}
	if err := f.db.Omit("Client", "Category", "MainImage").Create(project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}

	if err := f.photographers.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete photographer: %v", err)
	}

	if _, err := f.images.GetByID(ctx, img.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("image survived photographer delete: %v", err)
	}
	gotTag, err := f.tags.GetByID(ctx, tag.ID)
	if err != nil {
		t.Fatalf("tag removed: %v", err)
	}
	if len(gotTag.Images) != 0 {
		t.Errorf("tag still links images: %+v", gotTag.Images)
	}

	var reloaded models.Project
	f.db.First(&reloaded, project.ID)
	if reloaded.MainImageID != nil {
		t.Errorf("imagen_principal = %v, want null", *reloaded.MainImageID)
	}
}

func TestPhotographerEmailUnique(t *testing.T) {
	f := newGalleryFixture(t)
	f.mustPhotographer(t, "ana@example.com")

	_, err := f.photographers.Create(context.Background(), &dto.CreatePhotographerRequest{
		Nombre: "Otra", Apellido: "Ana", Email: "ANA@example.com",
	})

	verr, ok := services.AsValidation(err)
	if !ok || verr.Fields["email"] == "" {
		t.Fatalf("expected email error, got %v", err)
	}
}

func TestImageReferences(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()
	p := f.mustPhotographer(t, "ana@example.com")

	tests := []struct {
		name  string
		req   *dto.CreateImageRequest
		field string
	}{
		{"unknown photographer", &dto.CreateImageRequest{Titulo: "x", Archivo: "x.jpg", Fotografo: 42}, "fotografo"},
		{"unknown category", &dto.CreateImageRequest{Titulo: "x", Archivo: "x.jpg", Fotografo: p.ID, Categoria: dto.NullableOf(uint(7))}, "categoria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.images.Create(ctx, tt.req)
			verr, ok := services.AsValidation(err)
			if !ok || verr.Fields[tt.field] == "" {
				t.Errorf("expected %s error, got %v", tt.field, err)
			}
		})
	}
}

func TestImageFeaturedUsesCache(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()
	p := f.mustPhotographer(t, "ana@example.com")
	f.mustImage(t, &dto.CreateImageRequest{Titulo: "A", Archivo: "a.jpg", Fotografo: p.ID, Destacada: ptr(true)})
	f.mustImage(t, &dto.CreateImageRequest{Titulo: "B", Archivo: "b.jpg", Fotografo: p.ID})

	images, err := f.images.Featured(ctx)
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(images) != 1 || images[0].Title != "A" {
		t.Fatalf("featured = %+v", images)
	}
	if images[0].Photographer == nil || images[0].Photographer.FullName() != "Ana Ruiz" {
		t.Errorf("photographer not loaded through cache: %+v", images[0].Photographer)
	}
	if f.cache.loads[cacheKeyFeaturedImages] != 1 {
		t.Errorf("cache loads = %d", f.cache.loads[cacheKeyFeaturedImages])
	}

	invalidated := false
	for _, key := range f.cache.deleted {
		if key == cacheKeyFeaturedImages {
			invalidated = true
		}
	}
	if !invalidated {
		t.Error("image create did not invalidate featured cache")
	}
}

func TestImageTagImages(t *testing.T) {
	f := newGalleryFixture(t)
	ctx := context.Background()
	p := f.mustPhotographer(t, "ana@example.com")
	a := f.mustImage(t, &dto.CreateImageRequest{Titulo: "A", Archivo: "a.jpg", Fotografo: p.ID})
	b := f.mustImage(t, &dto.CreateImageRequest{Titulo: "B", Archivo: "b.jpg", Fotografo: p.ID})

	tag, err := f.tags.Create(ctx, &dto.CreateImageTagRequest{Nombre: "noche", Imagenes: []uint{b.ID, a.ID, b.ID}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ids := dto.ImageTagToResponse(tag).Imagenes; len(ids) != 2 || ids[0] != a.ID || ids[1] != b.ID {
		t.Errorf("imagenes = %v", ids)
	}

	_, err = f.tags.Update(ctx, tag.ID, &dto.UpdateImageTagRequest{Imagenes: &[]uint{a.ID, 999}})
	verr, ok := services.AsValidation(err)
	if !ok || verr.Fields["imagenes"] != `Invalid pk "999" - object does not exist.` {
		t.Fatalf("expected invalid pk, got %v", err)
	}

	updated, err := f.tags.Update(ctx, tag.ID, &dto.UpdateImageTagRequest{Nombre: ptr("nocturna")})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if updated.Name != "nocturna" || len(updated.Images) != 2 {
		t.Errorf("rename changed images: %+v", updated)
	}
}
