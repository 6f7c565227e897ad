package persistence

import (
	"context"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func findOwned[T any](ctx context.Context, db *gorm.DB, ownerID, id uuid.UUID) (*T, error) {
	var out T
	if err := db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&out).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func findByProject[T any](ctx context.Context, db *gorm.DB, projectID uuid.UUID) ([]T, error) {
	var out []T
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func deleteByProject[T any](ctx context.Context, db *gorm.DB, projectID uuid.UUID) error {
	var model T
	return db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model).Error
}

// getOrCreate inserts fresh unless a row for its project exists, then
// returns the stored row
func getOrCreate[T any](ctx context.Context, db *gorm.DB, projectID uuid.UUID, fresh *T) (*T, error) {
	db = db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}},
		DoNothing: true,
	}).Create(fresh).Error; err != nil {
		return nil, err
	}
	var out T
	if err := db.Where("project_id = ?", projectID).First(&out).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

// GormProjectRepository implements project.ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByIDForOwner finds a project owned by ownerID
func (r *GormProjectRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*project.Project, error) {
	return findOwned[project.Project](ctx, r.db, ownerID, id)
}

// FindByOwner lists projects, newest first
func (r *GormProjectRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindRecentlyUpdated lists at most limit projects by descending update time
func (r *GormProjectRepository) FindRecentlyUpdated(ctx context.Context, ownerID uuid.UUID, limit int) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Save creates or updates a project
func (r *GormProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes a project row
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&project.Project{}, "id = ?", id))
}

// GormMilestoneRepository implements project.MilestoneRepository using GORM
type GormMilestoneRepository struct {
	db *gorm.DB
}

// NewGormMilestoneRepository creates a new GormMilestoneRepository
func NewGormMilestoneRepository(db *gorm.DB) *GormMilestoneRepository {
	return &GormMilestoneRepository{db: db}
}

func (r *GormMilestoneRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*project.Milestone, error) {
	return findOwned[project.Milestone](ctx, r.db, ownerID, id)
}

func (r *GormMilestoneRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.Milestone, error) {
	return findByProject[project.Milestone](ctx, r.db, projectID)
}

// FindByOwner lists every milestone of the owner's projects
func (r *GormMilestoneRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Milestone, error) {
	var milestones []project.Milestone
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *GormMilestoneRepository) Save(ctx context.Context, m *project.Milestone) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *GormMilestoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&project.Milestone{}, "id = ?", id))
}

func (r *GormMilestoneRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return deleteByProject[project.Milestone](ctx, r.db, projectID)
}

// GormFinanceRepository implements project.FinanceRepository using GORM
type GormFinanceRepository struct {
	db *gorm.DB
}

// NewGormFinanceRepository creates a new GormFinanceRepository
func NewGormFinanceRepository(db *gorm.DB) *GormFinanceRepository {
	return &GormFinanceRepository{db: db}
}

// GetOrCreate returns the project's ledger, inserting an empty one if absent
func (r *GormFinanceRepository) GetOrCreate(ctx context.Context, p *project.Project) (*project.Finance, error) {
	return getOrCreate(ctx, r.db, p.ID, project.NewFinance(p))
}

// FindByProjects lists the ledgers of the given projects
func (r *GormFinanceRepository) FindByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]project.Finance, error) {
	if len(projectIDs) == 0 {
		return []project.Finance{}, nil
	}
	var finances []project.Finance
	if err := r.db.WithContext(ctx).Where("project_id IN ?", projectIDs).Find(&finances).Error; err != nil {
		return nil, err
	}
	return finances, nil
}

func (r *GormFinanceRepository) Save(ctx context.Context, f *project.Finance) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *GormFinanceRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return deleteByProject[project.Finance](ctx, r.db, projectID)
}

// GormNoteRepository implements project.NoteRepository using GORM
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

func (r *GormNoteRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*project.Note, error) {
	return findOwned[project.Note](ctx, r.db, ownerID, id)
}

func (r *GormNoteRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.Note, error) {
	return findByProject[project.Note](ctx, r.db, projectID)
}

func (r *GormNoteRepository) Save(ctx context.Context, n *project.Note) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *GormNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&project.Note{}, "id = ?", id))
}

func (r *GormNoteRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return deleteByProject[project.Note](ctx, r.db, projectID)
}

// GormDetailsRepository implements project.DetailsRepository using GORM
type GormDetailsRepository struct {
	db *gorm.DB
}

// NewGormDetailsRepository creates a new GormDetailsRepository
func NewGormDetailsRepository(db *gorm.DB) *GormDetailsRepository {
	return &GormDetailsRepository{db: db}
}

func (r *GormDetailsRepository) GetOrCreate(ctx context.Context, p *project.Project) (*project.Details, error) {
	return getOrCreate(ctx, r.db, p.ID, project.NewDetails(p))
}

func (r *GormDetailsRepository) Save(ctx context.Context, d *project.Details) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *GormDetailsRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return deleteByProject[project.Details](ctx, r.db, projectID)
}

// GormProgressRepository implements project.ProgressRepository using GORM
type GormProgressRepository struct {
	db *gorm.DB
}

// NewGormProgressRepository creates a new GormProgressRepository
func NewGormProgressRepository(db *gorm.DB) *GormProgressRepository {
	return &GormProgressRepository{db: db}
}

func (r *GormProgressRepository) GetOrCreate(ctx context.Context, p *project.Project) (*project.Progress, error) {
	return getOrCreate(ctx, r.db, p.ID, project.NewProgress(p))
}

func (r *GormProgressRepository) Save(ctx context.Context, p *project.Progress) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormProgressRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return deleteByProject[project.Progress](ctx, r.db, projectID)
}

// GormDocumentRepository implements project.DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

func (r *GormDocumentRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*project.Document, error) {
	return findOwned[project.Document](ctx, r.db, ownerID, id)
}

func (r *GormDocumentRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.Document, error) {
	return findByProject[project.Document](ctx, r.db, projectID)
}

func (r *GormDocumentRepository) Save(ctx context.Context, d *project.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&project.Document{}, "id = ?", id))
}

func (r *GormDocumentRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return deleteByProject[project.Document](ctx, r.db, projectID)
}

// GormTechLinkRepository implements project.TechLinkRepository using GORM
type GormTechLinkRepository struct {
	db *gorm.DB
}

// NewGormTechLinkRepository creates a new GormTechLinkRepository
func NewGormTechLinkRepository(db *gorm.DB) *GormTechLinkRepository {
	return &GormTechLinkRepository{db: db}
}

func (r *GormTechLinkRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*project.TechLink, error) {
	return findOwned[project.TechLink](ctx, r.db, ownerID, id)
}

func (r *GormTechLinkRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.TechLink, error) {
	return findByProject[project.TechLink](ctx, r.db, projectID)
}

func (r *GormTechLinkRepository) Save(ctx context.Context, l *project.TechLink) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *GormTechLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&project.TechLink{}, "id = ?", id))
}

func (r *GormTechLinkRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return deleteByProject[project.TechLink](ctx, r.db, projectID)
}

var (
	_ project.ProjectRepository   = (*GormProjectRepository)(nil)
	_ project.MilestoneRepository = (*GormMilestoneRepository)(nil)
	_ project.FinanceRepository   = (*GormFinanceRepository)(nil)
	_ project.NoteRepository      = (*GormNoteRepository)(nil)
	_ project.DetailsRepository   = (*GormDetailsRepository)(nil)
	_ project.ProgressRepository  = (*GormProgressRepository)(nil)
	_ project.DocumentRepository  = (*GormDocumentRepository)(nil)
	_ project.TechLinkRepository  = (*GormTechLinkRepository)(nil)
)
