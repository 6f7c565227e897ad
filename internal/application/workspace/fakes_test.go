package workspace

import (
	"bytes"
	"context"
	"io"
	"slices"
	"sync"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// memTable is an in-memory table of one record type. Rows are stored by
// value; listings are newest first by insertion.
type memTable[T any] struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]T
	order   []uuid.UUID
	id      func(*T) uuid.UUID
	owner   func(*T) uuid.UUID
	project func(*T) uuid.UUID
}

func newMemTable[T any](id, owner, proj func(*T) uuid.UUID) *memTable[T] {
	return &memTable[T]{rows: make(map[uuid.UUID]T), id: id, owner: owner, project: proj}
}

func (t *memTable[T]) find(ownerID, id uuid.UUID) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok || t.owner(&row) != ownerID {
		return nil, shared.ErrNotFound
	}
	return &row, nil
}

func (t *memTable[T]) where(keep func(*T) bool) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, 0)
	for i := len(t.order) - 1; i >= 0; i-- {
		row, ok := t.rows[t.order[i]]
		if ok && keep(&row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *memTable[T]) byProject(projectID uuid.UUID) []T {
	return t.where(func(row *T) bool { return t.project(row) == projectID })
}

func (t *memTable[T]) save(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(row)
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = *row
	return nil
}

func (t *memTable[T]) delete(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return shared.ErrNotFound
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(x uuid.UUID) bool { return x == id })
	return nil
}

func (t *memTable[T]) deleteByProject(projectID uuid.UUID) error {
	for _, row := range t.byProject(projectID) {
		if err := t.delete(t.id(&row)); err != nil {
			return err
		}
	}
	return nil
}

func (t *memTable[T]) getOrCreate(p *project.Project, create func(*project.Project) *T) (*T, error) {
	if rows := t.byProject(p.ID); len(rows) > 0 {
		return &rows[0], nil
	}
	row := create(p)
	if err := t.save(row); err != nil {
		return nil, err
	}
	return row, nil
}

func (t *memTable[T]) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

type memProjects struct{ t *memTable[project.Project] }

func (r memProjects) FindByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (*project.Project, error) {
	return r.t.find(ownerID, id)
}
func (r memProjects) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	return r.t.where(func(p *project.Project) bool { return p.OwnerID == ownerID }), nil
}
func (r memProjects) FindRecentlyUpdated(ctx context.Context, ownerID uuid.UUID, limit int) ([]project.Project, error) {
	all, _ := r.FindByOwner(ctx, ownerID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
func (r memProjects) Save(_ context.Context, p *project.Project) error { return r.t.save(p) }
func (r memProjects) Delete(_ context.Context, id uuid.UUID) error     { return r.t.delete(id) }

type memMilestones struct{ t *memTable[project.Milestone] }

func (r memMilestones) FindByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (*project.Milestone, error) {
	return r.t.find(ownerID, id)
}
func (r memMilestones) FindByProject(_ context.Context, projectID uuid.UUID) ([]project.Milestone, error) {
	return r.t.byProject(projectID), nil
}
func (r memMilestones) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]project.Milestone, error) {
	return r.t.where(func(m *project.Milestone) bool { return m.OwnerID == ownerID }), nil
}
func (r memMilestones) Save(_ context.Context, m *project.Milestone) error { return r.t.save(m) }
func (r memMilestones) Delete(_ context.Context, id uuid.UUID) error       { return r.t.delete(id) }
func (r memMilestones) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	return r.t.deleteByProject(projectID)
}

type memFinances struct{ t *memTable[project.Finance] }

func (r memFinances) GetOrCreate(_ context.Context, p *project.Project) (*project.Finance, error) {
	return r.t.getOrCreate(p, project.NewFinance)
}
func (r memFinances) FindByProjects(_ context.Context, ids []uuid.UUID) ([]project.Finance, error) {
	return r.t.where(func(f *project.Finance) bool { return slices.Contains(ids, f.ProjectID) }), nil
}
func (r memFinances) Save(_ context.Context, f *project.Finance) error { return r.t.save(f) }
func (r memFinances) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	return r.t.deleteByProject(projectID)
}

type memNotes struct{ t *memTable[project.Note] }

func (r memNotes) FindByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (*project.Note, error) {
	return r.t.find(ownerID, id)
}
func (r memNotes) FindByProject(_ context.Context, projectID uuid.UUID) ([]project.Note, error) {
	return r.t.byProject(projectID), nil
}
func (r memNotes) Save(_ context.Context, n *project.Note) error { return r.t.save(n) }
func (r memNotes) Delete(_ context.Context, id uuid.UUID) error  { return r.t.delete(id) }
func (r memNotes) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	return r.t.deleteByProject(projectID)
}

type memDetails struct{ t *memTable[project.Details] }

func (r memDetails) GetOrCreate(_ context.Context, p *project.Project) (*project.Details, error) {
	return r.t.getOrCreate(p, project.NewDetails)
}
func (r memDetails) Save(_ context.Context, d *project.Details) error { return r.t.save(d) }
func (r memDetails) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	return r.t.deleteByProject(projectID)
}

type memProgress struct{ t *memTable[project.Progress] }

func (r memProgress) GetOrCreate(_ context.Context, p *project.Project) (*project.Progress, error) {
	return r.t.getOrCreate(p, project.NewProgress)
}
func (r memProgress) Save(_ context.Context, p *project.Progress) error { return r.t.save(p) }
func (r memProgress) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	return r.t.deleteByProject(projectID)
}

type memDocuments struct{ t *memTable[project.Document] }

func (r memDocuments) FindByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (*project.Document, error) {
	return r.t.find(ownerID, id)
}
func (r memDocuments) FindByProject(_ context.Context, projectID uuid.UUID) ([]project.Document, error) {
	return r.t.byProject(projectID), nil
}
func (r memDocuments) Save(_ context.Context, d *project.Document) error { return r.t.save(d) }
func (r memDocuments) Delete(_ context.Context, id uuid.UUID) error      { return r.t.delete(id) }
func (r memDocuments) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	return r.t.deleteByProject(projectID)
}

type memTechLinks struct{ t *memTable[project.TechLink] }

func (r memTechLinks) FindByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (*project.TechLink, error) {
	return r.t.find(ownerID, id)
}
func (r memTechLinks) FindByProject(_ context.Context, projectID uuid.UUID) ([]project.TechLink, error) {
	return r.t.byProject(projectID), nil
}
func (r memTechLinks) Save(_ context.Context, l *project.TechLink) error { return r.t.save(l) }
func (r memTechLinks) Delete(_ context.Context, id uuid.UUID) error      { return r.t.delete(id) }
func (r memTechLinks) DeleteByProject(_ context.Context, projectID uuid.UUID) error {
	return r.t.deleteByProject(projectID)
}

type memWorkspace struct {
	projects   *memTable[project.Project]
	milestones *memTable[project.Milestone]
	finances   *memTable[project.Finance]
	notes      *memTable[project.Note]
	details    *memTable[project.Details]
	progress   *memTable[project.Progress]
	documents  *memTable[project.Document]
	techLinks  *memTable[project.TechLink]
}

func newMemWorkspace() (*memWorkspace, Repositories) {
	w := &memWorkspace{
		projects: newMemTable(
			func(p *project.Project) uuid.UUID { return p.ID },
			func(p *project.Project) uuid.UUID { return p.OwnerID },
			func(p *project.Project) uuid.UUID { return p.ID },
		),
		milestones: newMemTable(
			func(m *project.Milestone) uuid.UUID { return m.ID },
			func(m *project.Milestone) uuid.UUID { return m.OwnerID },
			func(m *project.Milestone) uuid.UUID { return m.ProjectID },
		),
		finances: newMemTable(
			func(f *project.Finance) uuid.UUID { return f.ID },
			func(f *project.Finance) uuid.UUID { return f.OwnerID },
			func(f *project.Finance) uuid.UUID { return f.ProjectID },
		),
		notes: newMemTable(
			func(n *project.Note) uuid.UUID { return n.ID },
			func(n *project.Note) uuid.UUID { return n.OwnerID },
			func(n *project.Note) uuid.UUID { return n.ProjectID },
		),
		details: newMemTable(
			func(d *project.Details) uuid.UUID { return d.ID },
			func(d *project.Details) uuid.UUID { return d.OwnerID },
			func(d *project.Details) uuid.UUID { return d.ProjectID },
		),
		progress: newMemTable(
			func(p *project.Progress) uuid.UUID { return p.ID },
			func(p *project.Progress) uuid.UUID { return p.OwnerID },
			func(p *project.Progress) uuid.UUID { return p.ProjectID },
		),
		documents: newMemTable(
			func(d *project.Document) uuid.UUID { return d.ID },
			func(d *project.Document) uuid.UUID { return d.OwnerID },
			func(d *project.Document) uuid.UUID { return d.ProjectID },
		),
		techLinks: newMemTable(
			func(l *project.TechLink) uuid.UUID { return l.ID },
			func(l *project.TechLink) uuid.UUID { return l.OwnerID },
			func(l *project.TechLink) uuid.UUID { return l.ProjectID },
		),
	}
	return w, Repositories{
		Projects:   memProjects{w.projects},
		Milestones: memMilestones{w.milestones},
		Finances:   memFinances{w.finances},
		Notes:      memNotes{w.notes},
		Details:    memDetails{w.details},
		Progress:   memProgress{w.progress},
		Documents:  memDocuments{w.documents},
		TechLinks:  memTechLinks{w.techLinks},
	}
}

// memObjectStorage keeps blobs in a map
type memObjectStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemObjectStorage() *memObjectStorage {
	return &memObjectStorage{blobs: make(map[string][]byte)}
}

func (m *memObjectStorage) PutObject(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	return nil
}

func (m *memObjectStorage) GetObject(_ context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memObjectStorage) DeleteObject(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}
