package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/repositories"
	"pc2-api/pkg/utils"
)

var imageOrdering = map[string]string{
	"fecha_subida": "images.uploaded_at",
	"titulo":       "images.title",
}

// === GalleryCategory ===

type GalleryCategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewGalleryCategoryRepository(db *gorm.DB) repositories.GalleryCategoryRepository {
	return &GalleryCategoryRepositoryImpl{db: db}
}

func (r *GalleryCategoryRepositoryImpl) Create(ctx context.Context, category *models.GalleryCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GalleryCategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.GalleryCategory, error) {
	var category models.GalleryCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *GalleryCategoryRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.GalleryCategory, error) {
	var category models.GalleryCategory
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *GalleryCategoryRepositoryImpl) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.GalleryCategory{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *GalleryCategoryRepositoryImpl) Update(ctx context.Context, category *models.GalleryCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *GalleryCategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Image{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.GalleryCategory{}, id)
	})
}

func (r *GalleryCategoryRepositoryImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.GalleryCategory, error) {
	var categories []*models.GalleryCategory
	q := applySearch(r.db.WithContext(ctx).Model(&models.GalleryCategory{}), opts.SearchTerms(), "gallery_categories.name")
	err := q.Order("gallery_categories.name ASC").Order("gallery_categories.id ASC").Find(&categories).Error
	return categories, err
}

// === Photographer ===

type PhotographerRepositoryImpl struct {
	db *gorm.DB
}

func NewPhotographerRepository(db *gorm.DB) repositories.PhotographerRepository {
	return &PhotographerRepositoryImpl{db: db}
}

func (r *PhotographerRepositoryImpl) Create(ctx context.Context, photographer *models.Photographer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(photographer).Error
}

func (r *PhotographerRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Photographer, error) {
	var p models.Photographer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *PhotographerRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Photographer, error) {
	var p models.Photographer
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&p).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *PhotographerRepositoryImpl) Update(ctx context.Context, photographer *models.Photographer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(photographer).Error
}

func (r *PhotographerRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		imageIDs := tx.Model(&models.Image{}).Select("id").Where("photographer_id = ?", id)
		if err := detachImages(tx, imageIDs); err != nil {
			return err
		}
		if err := tx.Where("photographer_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Photographer{}, id)
	})
}

func (r *PhotographerRepositoryImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.Photographer, error) {
	var photographers []*models.Photographer
	q := applySearch(r.db.WithContext(ctx).Model(&models.Photographer{}), opts.SearchTerms(),
		"photographers.first_name", "photographers.last_name", "photographers.email")
	err := q.Order("photographers.last_name ASC").
		Order("photographers.first_name ASC").
		Order("photographers.id ASC").
		Find(&photographers).Error
	return photographers, err
}

// === Image ===

type ImageRepositoryImpl struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) repositories.ImageRepository {
	return &ImageRepositoryImpl{db: db}
}

func (r *ImageRepositoryImpl) Create(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(image).Error
}

func (r *ImageRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	var image models.Image
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Photographer").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("image_tags.name ASC")
		}).
		Preload("Tags.Images", func(db *gorm.DB) *gorm.DB {
			return db.Select("images.id")
		}).
		Where("id = ?", id).
		First(&image).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &image, nil
}

func (r *ImageRepositoryImpl) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Image{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *ImageRepositoryImpl) Update(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(image).Error
}

func (r *ImageRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := detachImages(tx, []uint{id}); err != nil {
			return err
		}
		return deleteByID(tx, &models.Image{}, id)
	})
}

func (r *ImageRepositoryImpl) List(ctx context.Context, f dto.ImageFilter) ([]*models.Image, error) {
	q := r.db.WithContext(ctx).Model(&models.Image{}).
		Preload("Category").
		Preload("Photographer")

	if f.CategoryID != nil {
		q = q.Where("images.category_id = ?", *f.CategoryID)
	}
	if f.PhotographerID != nil {
		q = q.Where("images.photographer_id = ?", *f.PhotographerID)
	}
	if f.Featured != nil {
		q = q.Where("images.featured = ?", *f.Featured)
	}

	if terms := f.SearchTerms(); len(terms) > 0 {
		q = q.Select("images.*").
			Joins("LEFT JOIN photographers ON photographers.id = images.photographer_id").
			Joins("LEFT JOIN gallery_categories ON gallery_categories.id = images.category_id")
		q = applySearch(q, terms, "images.title", "images.description",
			"photographers.first_name", "gallery_categories.name")
	}
	q = applyOrdering(q, f.OrderingFields(), imageOrdering, "images.id", "images.uploaded_at DESC")

	var images []*models.Image
	err := q.Find(&images).Error
	return images, err
}

// detachImages ตัดความสัมพันธ์ของรูปภาพก่อนลบ: ลบ tag link และ set imagen_principal ของโปรเจกต์เป็น null
// ids เป็นได้ทั้ง []uint และ subquery
func detachImages(tx *gorm.DB, ids any) error {
	if err := tx.Where("image_id IN (?)", ids).Delete(&models.ImageTagLink{}).Error; err != nil {
		return err
	}
	return tx.Model(&models.Project{}).Where("main_image_id IN (?)", ids).Update("main_image_id", nil).Error
}

// === ImageTag ===

type ImageTagRepositoryImpl struct {
	db *gorm.DB
}

func NewImageTagRepository(db *gorm.DB) repositories.ImageTagRepository {
	return &ImageTagRepositoryImpl{db: db}
}

func (r *ImageTagRepositoryImpl) Create(ctx context.Context, tag *models.ImageTag, imageIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(tag).Error; err != nil {
			return err
		}
		return insertImageTagLinks(tx, tag.ID, imageIDs)
	})
}

func (r *ImageTagRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.ImageTag, error) {
	var tag models.ImageTag
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Select("images.id").Order("images.id ASC")
		}).
		Where("id = ?", id).
		First(&tag).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &tag, nil
}

func (r *ImageTagRepositoryImpl) GetByName(ctx context.Context, name string) (*models.ImageTag, error) {
	var tag models.ImageTag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, translateError(err)
	}
	return &tag, nil
}

func (r *ImageTagRepositoryImpl) Update(ctx context.Context, tag *models.ImageTag, imageIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(tag).Error; err != nil {
			return err
		}
		if imageIDs == nil {
			return nil
		}
		if err := tx.Where("image_tag_id = ?", tag.ID).Delete(&models.ImageTagLink{}).Error; err != nil {
			return err
		}
		return insertImageTagLinks(tx, tag.ID, imageIDs)
	})
}

func (r *ImageTagRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("image_tag_id = ?", id).Delete(&models.ImageTagLink{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.ImageTag{}, id)
	})
}

func (r *ImageTagRepositoryImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.ImageTag, error) {
	var tags []*models.ImageTag
	q := r.db.WithContext(ctx).Model(&models.ImageTag{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Select("images.id").Order("images.id ASC")
		})
	q = applySearch(q, opts.SearchTerms(), "image_tags.name")
	err := q.Order("image_tags.name ASC").Order("image_tags.id ASC").Find(&tags).Error
	return tags, err
}

func insertImageTagLinks(tx *gorm.DB, tagID uint, imageIDs []uint) error {
	imageIDs = utils.UniqueIDs(imageIDs)
	if len(imageIDs) == 0 {
		return nil
	}
	rows := make([]models.ImageTagLink, len(imageIDs))
	for i, imageID := range imageIDs {
		rows[i] = models.ImageTagLink{ImageTagID: tagID, ImageID: imageID}
	}
	return tx.Create(&rows).Error
}

// deleteByID ลบ record ตาม id; คืน ErrRecordNotFound ถ้าไม่มีแถวถูกลบ
func deleteByID(tx *gorm.DB, model any, id uint) error {
	result := tx.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrRecordNotFound
	}
	return nil
}
