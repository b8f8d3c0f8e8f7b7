package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/repositories"
)

var mediaFileOrdering = map[string]string{
	"fecha_subida":      "media_files.uploaded_at",
	"titulo":            "media_files.title",
	"tamaño_bytes":      "media_files.size_bytes",
	"duracion_segundos": "media_files.duration_seconds",
}

const collectionWithFileCount = "collections.*, " +
	"(SELECT COUNT(*) FROM media_files WHERE media_files.collection_id = collections.id) AS file_count"

// === FileType ===

type FileTypeRepositoryImpl struct {
	db *gorm.DB
}

func NewFileTypeRepository(db *gorm.DB) repositories.FileTypeRepository {
	return &FileTypeRepositoryImpl{db: db}
}

func (r *FileTypeRepositoryImpl) Create(ctx context.Context, fileType *models.FileType) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(fileType).Error
}

func (r *FileTypeRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.FileType, error) {
	var ft models.FileType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ft).Error; err != nil {
		return nil, translateError(err)
	}
	return &ft, nil
}

func (r *FileTypeRepositoryImpl) Update(ctx context.Context, fileType *models.FileType) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(fileType).Error
}

func (r *FileTypeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fileIDs := tx.Model(&models.MediaFile{}).Select("id").Where("file_type_id = ?", id)
		if err := tx.Where("media_file_id IN (?)", fileIDs).Delete(&models.MediaComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("file_type_id = ?", id).Delete(&models.MediaFile{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.FileType{}, id)
	})
}

func (r *FileTypeRepositoryImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.FileType, error) {
	var types []*models.FileType
	q := applySearch(r.db.WithContext(ctx).Model(&models.FileType{}), opts.SearchTerms(),
		"file_types.name", "file_types.allowed_extensions")
	err := q.Order("file_types.name ASC").Order("file_types.id ASC").Find(&types).Error
	return types, err
}

// === Collection ===

type CollectionRepositoryImpl struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) repositories.CollectionRepository {
	return &CollectionRepositoryImpl{db: db}
}

func (r *CollectionRepositoryImpl) Create(ctx context.Context, collection *models.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *CollectionRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Collection, error) {
	var c models.Collection
	err := r.db.WithContext(ctx).
		Model(&models.Collection{}).
		Select(collectionWithFileCount).
		Where("collections.id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *CollectionRepositoryImpl) Update(ctx context.Context, collection *models.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *CollectionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MediaFile{}).Where("collection_id = ?", id).Update("collection_id", nil).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Collection{}, id)
	})
}

func (r *CollectionRepositoryImpl) List(ctx context.Context, f dto.CollectionFilter) ([]*models.Collection, error) {
	q := r.db.WithContext(ctx).Model(&models.Collection{}).Select(collectionWithFileCount)
	if f.Public != nil {
		q = q.Where("collections.public = ?", *f.Public)
	}
	q = applySearch(q, f.SearchTerms(), "collections.name", "collections.description")

	var collections []*models.Collection
	err := q.Order("collections.created_at DESC").Order("collections.id ASC").Find(&collections).Error
	return collections, err
}

// === MediaFile ===

type MediaFileRepositoryImpl struct {
	db *gorm.DB
}

func NewMediaFileRepository(db *gorm.DB) repositories.MediaFileRepository {
	return &MediaFileRepositoryImpl{db: db}
}

func (r *MediaFileRepositoryImpl) Create(ctx context.Context, file *models.MediaFile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(file).Error
}

func (r *MediaFileRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.MediaFile, error) {
	var file models.MediaFile
	err := r.db.WithContext(ctx).
		Preload("FileType").
		Preload("Collection", func(db *gorm.DB) *gorm.DB {
			return db.Select(collectionWithFileCount)
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("media_comments.created_at DESC").Order("media_comments.id ASC")
		}).
		Where("id = ?", id).
		First(&file).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &file, nil
}

func (r *MediaFileRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MediaFile{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *MediaFileRepositoryImpl) Update(ctx context.Context, file *models.MediaFile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(file).Error
}

func (r *MediaFileRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("media_file_id = ?", id).Delete(&models.MediaComment{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.MediaFile{}, id)
	})
}

func (r *MediaFileRepositoryImpl) List(ctx context.Context, f dto.MediaFileFilter) ([]*models.MediaFile, error) {
	q := r.db.WithContext(ctx).Model(&models.MediaFile{}).
		Preload("FileType").
		Preload("Collection")

	if f.FileTypeID != nil {
		q = q.Where("media_files.file_type_id = ?", *f.FileTypeID)
	}
	if f.CollectionID != nil {
		q = q.Where("media_files.collection_id = ?", *f.CollectionID)
	}
	if f.Featured != nil {
		q = q.Where("media_files.featured = ?", *f.Featured)
	}
	q = applySearch(q, f.SearchTerms(), "media_files.title", "media_files.description")
	q = applyOrdering(q, f.OrderingFields(), mediaFileOrdering, "media_files.id", "media_files.uploaded_at DESC")

	var files []*models.MediaFile
	err := q.Find(&files).Error
	return files, err
}

// === MediaComment ===

type MediaCommentRepositoryImpl struct {
	db *gorm.DB
}

func NewMediaCommentRepository(db *gorm.DB) repositories.MediaCommentRepository {
	return &MediaCommentRepositoryImpl{db: db}
}

func (r *MediaCommentRepositoryImpl) Create(ctx context.Context, comment *models.MediaComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *MediaCommentRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.MediaComment, error) {
	var c models.MediaComment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *MediaCommentRepositoryImpl) Update(ctx context.Context, comment *models.MediaComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *MediaCommentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.MediaComment{}, id)
}

func (r *MediaCommentRepositoryImpl) List(ctx context.Context, f dto.MediaCommentFilter) ([]*models.MediaComment, error) {
	q := r.db.WithContext(ctx).Model(&models.MediaComment{})
	if f.MediaFileID != nil {
		q = q.Where("media_comments.media_file_id = ?", *f.MediaFileID)
	}
	if f.Approved != nil {
		q = q.Where("media_comments.approved = ?", *f.Approved)
	}

	var comments []*models.MediaComment
	err := q.Order("media_comments.created_at DESC").Order("media_comments.id ASC").Find(&comments).Error
	return comments, err
}
