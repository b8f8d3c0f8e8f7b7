package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/repositories"
)

var projectOrdering = map[string]string{
	"fecha_inicio":  "projects.start_date",
	"fecha_entrega": "projects.due_date",
	"presupuesto":   "projects.budget",
}

var projectTaskOrdering = map[string]string{
	"fecha_limite": "project_tasks.due_date",
	"prioridad":    "project_tasks.priority",
}

// === Client ===

type ClientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) repositories.ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(client).Error
}

func (r *ClientRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *ClientRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&c).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *ClientRepositoryImpl) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(client).Error
}

func (r *ClientRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		projectIDs := tx.Model(&models.Project{}).Select("id").Where("client_id = ?", id)
		if err := deleteProjectChildren(tx, projectIDs); err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Client{}, id)
	})
}

func (r *ClientRepositoryImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.Client, error) {
	var clients []*models.Client
	q := applySearch(r.db.WithContext(ctx).Model(&models.Client{}), opts.SearchTerms(),
		"clients.first_name", "clients.last_name", "clients.email", "clients.company")
	err := q.Order("clients.last_name ASC").
		Order("clients.first_name ASC").
		Order("clients.id ASC").
		Find(&clients).Error
	return clients, err
}

// === ProjectCategory ===

type ProjectCategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectCategoryRepository(db *gorm.DB) repositories.ProjectCategoryRepository {
	return &ProjectCategoryRepositoryImpl{db: db}
}

func (r *ProjectCategoryRepositoryImpl) Create(ctx context.Context, category *models.ProjectCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *ProjectCategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.ProjectCategory, error) {
	var c models.ProjectCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *ProjectCategoryRepositoryImpl) Update(ctx context.Context, category *models.ProjectCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *ProjectCategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.ProjectCategory{}, id)
}

func (r *ProjectCategoryRepositoryImpl) List(ctx context.Context, opts dto.ListOptions) ([]*models.ProjectCategory, error) {
	var categories []*models.ProjectCategory
	q := applySearch(r.db.WithContext(ctx).Model(&models.ProjectCategory{}), opts.SearchTerms(), "project_categories.name")
	err := q.Order("project_categories.name ASC").Order("project_categories.id ASC").Find(&categories).Error
	return categories, err
}

func (r *ProjectCategoryRepositoryImpl) CountProjects(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}

// === Project ===

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Category").
		Preload("MainImage").
		Preload("MainImage.Photographer").
		Preload("MainImage.Category").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *ProjectRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteProjectChildren(tx, []uint{id}); err != nil {
			return err
		}
		return deleteByID(tx, &models.Project{}, id)
	})
}

func (r *ProjectRepositoryImpl) List(ctx context.Context, f dto.ProjectFilter) ([]*models.Project, error) {
	q := r.db.WithContext(ctx).Model(&models.Project{}).
		Preload("Client").
		Preload("Category")

	if f.Status != nil {
		q = q.Where("projects.status = ?", *f.Status)
	}
	if f.OpenOnly {
		q = q.Where("projects.status IN ?", models.OpenProjectStatuses)
	}
	if f.DueBefore != nil {
		q = q.Where("projects.due_date IS NOT NULL AND projects.due_date < ?", *f.DueBefore)
	}
	if f.ClientID != nil {
		q = q.Where("projects.client_id = ?", *f.ClientID)
	}
	if f.CategoryID != nil {
		q = q.Where("projects.category_id = ?", *f.CategoryID)
	}

	if terms := f.SearchTerms(); len(terms) > 0 {
		q = q.Select("projects.*").
			Joins("LEFT JOIN clients ON clients.id = projects.client_id")
		q = applySearch(q, terms, "projects.title", "projects.description",
			"clients.first_name", "clients.last_name")
	}
	q = applyOrdering(q, f.OrderingFields(), projectOrdering, "projects.id", "projects.start_date DESC")

	var projects []*models.Project
	err := q.Find(&projects).Error
	return projects, err
}

// deleteProjectChildren ลบงานและความคิดเห็นของโปรเจกต์ (ids เป็น []uint หรือ subquery)
func deleteProjectChildren(tx *gorm.DB, ids any) error {
	if err := tx.Where("project_id IN (?)", ids).Delete(&models.ProjectTask{}).Error; err != nil {
		return err
	}
	return tx.Where("project_id IN (?)", ids).Delete(&models.ProjectComment{}).Error
}

// === ProjectTask ===

type ProjectTaskRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectTaskRepository(db *gorm.DB) repositories.ProjectTaskRepository {
	return &ProjectTaskRepositoryImpl{db: db}
}

func (r *ProjectTaskRepositoryImpl) Create(ctx context.Context, task *models.ProjectTask) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

func (r *ProjectTaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.ProjectTask, error) {
	var t models.ProjectTask
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

func (r *ProjectTaskRepositoryImpl) Update(ctx context.Context, task *models.ProjectTask) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

func (r *ProjectTaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.ProjectTask{}, id)
}

func (r *ProjectTaskRepositoryImpl) List(ctx context.Context, f dto.ProjectTaskFilter) ([]*models.ProjectTask, error) {
	q := r.db.WithContext(ctx).Model(&models.ProjectTask{})
	if f.ProjectID != nil {
		q = q.Where("project_tasks.project_id = ?", *f.ProjectID)
	}
	q = applySearch(q, f.SearchTerms(), "project_tasks.title", "project_tasks.description")
	q = applyOrdering(q, f.OrderingFields(), projectTaskOrdering, "project_tasks.id",
		"project_tasks.priority DESC", "project_tasks.due_date ASC")

	var tasks []*models.ProjectTask
	err := q.Find(&tasks).Error
	return tasks, err
}

// === ProjectComment ===

type ProjectCommentRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectCommentRepository(db *gorm.DB) repositories.ProjectCommentRepository {
	return &ProjectCommentRepositoryImpl{db: db}
}

func (r *ProjectCommentRepositoryImpl) Create(ctx context.Context, comment *models.ProjectComment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

func (r *ProjectCommentRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.ProjectComment, error) {
	var c models.ProjectComment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *ProjectCommentRepositoryImpl) Update(ctx context.Context, comment *models.ProjectComment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(comment).Error
}

func (r *ProjectCommentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.ProjectComment{}, id)
}

func (r *ProjectCommentRepositoryImpl) List(ctx context.Context, f dto.ProjectCommentFilter) ([]*models.ProjectComment, error) {
	q := r.db.WithContext(ctx).Model(&models.ProjectComment{})
	if f.ProjectID != nil {
		q = q.Where("project_comments.project_id = ?", *f.ProjectID)
	}
	q = applySearch(q, f.SearchTerms(), "project_comments.author", "project_comments.text")

	var comments []*models.ProjectComment
	err := q.Order("project_comments.created_at DESC").Order("project_comments.id ASC").Find(&comments).Error
	return comments, err
}
