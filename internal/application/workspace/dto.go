package workspace

import (
	"time"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Projects

// CreateProjectRequest is the body of POST /projects
type CreateProjectRequest struct {
	Title       string           `json:"title" binding:"required,max=200"`
	Description string           `json:"description"`
	ClientName  string           `json:"clientName" binding:"required,max=200"`
	Status      string           `json:"status" binding:"omitempty,oneof=active on-hold completed"`
	Budget      *decimal.Decimal `json:"budget"`
	Deadline    *time.Time       `json:"deadline"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	NetProfit   *decimal.Decimal `json:"netProfit"`
	Tags        []string         `json:"tags"`
}

// UpdateProjectRequest is the body of PUT /projects/:id
type UpdateProjectRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=200"`
	Description *string          `json:"description"`
	ClientName  *string          `json:"clientName" binding:"omitempty,max=200"`
	Status      *string          `json:"status" binding:"omitempty,oneof=active on-hold completed"`
	Budget      *decimal.Decimal `json:"budget"`
	Deadline    *time.Time       `json:"deadline"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	NetProfit   *decimal.Decimal `json:"netProfit"`
	Tags        *[]string        `json:"tags"`
	NotesCount  *int             `json:"notesCount" binding:"omitempty,min=0"`
}

func (r UpdateProjectRequest) toDomain() project.ProjectUpdate {
	u := project.ProjectUpdate{
		Title:       r.Title,
		Description: r.Description,
		ClientName:  r.ClientName,
		Budget:      r.Budget,
		Deadline:    r.Deadline,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		NetProfit:   r.NetProfit,
		Tags:        r.Tags,
		NotesCount:  r.NotesCount,
	}
	if r.Status != nil {
		s := project.Status(*r.Status)
		u.Status = &s
	}
	return u
}

// ProjectResponse is the API view of a project
type ProjectResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ClientName  string           `json:"clientName"`
	Status      project.Status   `json:"status"`
	Budget      *decimal.Decimal `json:"budget"`
	Deadline    *time.Time       `json:"deadline"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	NetProfit   decimal.Decimal  `json:"netProfit"`
	Tags        []string         `json:"tags"`
	NotesCount  int              `json:"notesCount"`
	CreatedBy   uuid.UUID        `json:"createdBy"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func toProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ClientName:  p.ClientName,
		Status:      p.Status,
		Budget:      p.Budget,
		Deadline:    p.Deadline,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		NetProfit:   p.NetProfit,
		Tags:        nonNil(p.Tags),
		NotesCount:  p.NotesCount,
		CreatedBy:   p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Milestones

// CreateMilestoneRequest is the body of POST /projects/:id/milestones
type CreateMilestoneRequest struct {
	Title     string                  `json:"title" binding:"required,max=200"`
	StartDate *time.Time              `json:"startDate"`
	DueDate   *time.Time              `json:"dueDate"`
	Status    string                  `json:"status" binding:"omitempty,oneof=not_started in_progress completed"`
	Checklist []project.ChecklistItem `json:"checklist"`
	Notes     string                  `json:"notes"`
}

// UpdateMilestoneRequest is the body of PUT /milestones/:id. IsCompleted is
// accepted from older clients and mapped onto status.
type UpdateMilestoneRequest struct {
	Title          *string                  `json:"title" binding:"omitempty,max=200"`
	Status         *string                  `json:"status" binding:"omitempty,oneof=not_started in_progress completed"`
	IsCompleted    *bool                    `json:"isCompleted"`
	StartDate      *time.Time               `json:"startDate"`
	ClearStartDate bool                     `json:"clearStartDate"`
	DueDate        *time.Time               `json:"dueDate"`
	ClearDueDate   bool                     `json:"clearDueDate"`
	Checklist      *[]project.ChecklistItem `json:"checklist"`
	Notes          *string                  `json:"notes"`
}

func (r UpdateMilestoneRequest) toDomain() project.MilestoneUpdate {
	u := project.MilestoneUpdate{
		Title:          r.Title,
		IsCompleted:    r.IsCompleted,
		StartDate:      r.StartDate,
		ClearStartDate: r.ClearStartDate,
		DueDate:        r.DueDate,
		ClearDueDate:   r.ClearDueDate,
		Checklist:      r.Checklist,
		Notes:          r.Notes,
	}
	if r.Status != nil {
		s := project.MilestoneStatus(*r.Status)
		u.Status = &s
	}
	return u
}

// MilestoneResponse is the API view of a milestone
type MilestoneResponse struct {
	ID          uuid.UUID               `json:"id"`
	ProjectID   uuid.UUID               `json:"projectId"`
	Title       string                  `json:"title"`
	Status      project.MilestoneStatus `json:"status"`
	IsCompleted bool                    `json:"isCompleted"`
	CompletedAt *time.Time              `json:"completedAt"`
	StartDate   *time.Time              `json:"startDate"`
	DueDate     *time.Time              `json:"dueDate"`
	Checklist   []project.ChecklistItem `json:"checklist"`
	Notes       string                  `json:"notes"`
	CreatedBy   uuid.UUID               `json:"createdBy"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func toMilestoneResponse(m *project.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Status:      m.Status,
		IsCompleted: m.IsCompleted(),
		CompletedAt: m.CompletedAt,
		StartDate:   m.StartDate,
		DueDate:     m.DueDate,
		Checklist:   nonNil(m.Checklist),
		Notes:       m.Notes,
		CreatedBy:   m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Finance

// UpdateFinanceRequest is the body of PUT /projects/:id/finance
type UpdateFinanceRequest struct {
	TotalBudget      *decimal.Decimal       `json:"totalBudget"`
	PaymentsReceived *[]project.LedgerEntry `json:"paymentsReceived"`
	Expenses         *[]project.LedgerEntry `json:"expenses"`
}

// LedgerEntryRequest is the body of the payment and expense append endpoints
type LedgerEntryRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        *time.Time      `json:"date"`
	Description string          `json:"description"`
}

func (r LedgerEntryRequest) toDomain() project.LedgerEntry {
	e := project.LedgerEntry{Amount: r.Amount, Description: r.Description}
	if r.Date != nil {
		e.Date = *r.Date
	}
	return e
}

// FinanceResponse is the API view of a project ledger with its totals
type FinanceResponse struct {
	ID               uuid.UUID             `json:"id"`
	ProjectID        uuid.UUID             `json:"projectId"`
	TotalBudget      decimal.Decimal       `json:"totalBudget"`
	PaymentsReceived []project.LedgerEntry `json:"paymentsReceived"`
	Expenses         []project.LedgerEntry `json:"expenses"`
	TotalReceived    decimal.Decimal       `json:"totalReceived"`
	TotalExpenses    decimal.Decimal       `json:"totalExpenses"`
	Balance          decimal.Decimal       `json:"balance"`
	RemainingBudget  decimal.Decimal       `json:"remainingBudget"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

func toFinanceResponse(f *project.Finance) FinanceResponse {
	return FinanceResponse{
		ID:               f.ID,
		ProjectID:        f.ProjectID,
		TotalBudget:      f.TotalBudget,
		PaymentsReceived: nonNil(f.PaymentsReceived),
		Expenses:         nonNil(f.Expenses),
		TotalReceived:    f.TotalReceived(),
		TotalExpenses:    f.TotalExpenses(),
		Balance:          f.Balance(),
		RemainingBudget:  f.RemainingBudget(),
		UpdatedAt:        f.UpdatedAt,
	}
}

// Notes

// NoteRequest is the body of note create and update
type NoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// NoteResponse is the API view of a note
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	Content   string    `json:"content"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toNoteResponse(n *project.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		ProjectID: n.ProjectID,
		Content:   n.Content,
		CreatedBy: n.OwnerID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// Details

// UpdateDetailsRequest is the body of PUT /projects/:id/details
type UpdateDetailsRequest struct {
	Requirements *string                  `json:"requirements"`
	Scope        *string                  `json:"scope"`
	Deliverables *[]project.ChecklistItem `json:"deliverables"`
	ClientInfo   *project.ClientInfo      `json:"clientInfo"`
}

// DetailsResponse is the API view of project details
type DetailsResponse struct {
	ID           uuid.UUID               `json:"id"`
	ProjectID    uuid.UUID               `json:"projectId"`
	Requirements string                  `json:"requirements"`
	Scope        string                  `json:"scope"`
	Deliverables []project.ChecklistItem `json:"deliverables"`
	ClientInfo   project.ClientInfo      `json:"clientInfo"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

func toDetailsResponse(d *project.Details) DetailsResponse {
	info := d.ClientInfo
	info.CommunicationLog = nonNil(info.CommunicationLog)
	return DetailsResponse{
		ID:           d.ID,
		ProjectID:    d.ProjectID,
		Requirements: d.Requirements,
		Scope:        d.Scope,
		Deliverables: nonNil(d.Deliverables),
		ClientInfo:   info,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Progress

// UpdateProgressRequest is the body of PUT /projects/:id/progress
type UpdateProgressRequest struct {
	OverallProgress *int                     `json:"overallProgress" binding:"omitempty,min=0,max=100"`
	Milestones      *[]project.ProgressStep  `json:"milestones"`
	History         *[]project.ProgressEntry `json:"history"`
}

// ProgressResponse is the API view of a progress record
type ProgressResponse struct {
	ID              uuid.UUID               `json:"id"`
	ProjectID       uuid.UUID               `json:"projectId"`
	OverallProgress int                     `json:"overallProgress"`
	Milestones      []project.ProgressStep  `json:"milestones"`
	History         []project.ProgressEntry `json:"history"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func toProgressResponse(p *project.Progress) ProgressResponse {
	return ProgressResponse{
		ID:              p.ID,
		ProjectID:       p.ProjectID,
		OverallProgress: p.OverallProgress,
		Milestones:      nonNil(p.Milestones),
		History:         nonNil(p.History),
		UpdatedAt:       p.UpdatedAt,
	}
}

// Documents

// DocumentResponse is the API view of document metadata
type DocumentResponse struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"projectId"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileType     string    `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	UploadedBy   uuid.UUID `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

func toDocumentResponse(d *project.Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		ProjectID:    d.ProjectID,
		FileName:     d.FileName,
		OriginalName: d.OriginalName,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		UploadedBy:   d.OwnerID,
		UploadedAt:   d.CreatedAt,
	}
}

// Tech links

// CreateTechLinkRequest is the body of POST /projects/:id/tech-links
type CreateTechLinkRequest struct {
	Platform    string `json:"platform" binding:"required,max=100"`
	URL         string `json:"url" binding:"required,url"`
	Description string `json:"description"`
}

// UpdateTechLinkRequest is the body of PUT /tech-links/:id
type UpdateTechLinkRequest struct {
	Platform    *string `json:"platform" binding:"omitempty,max=100"`
	URL         *string `json:"url" binding:"omitempty,url"`
	Description *string `json:"description"`
}

// TechLinkResponse is the API view of a tech link
type TechLinkResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"projectId"`
	Platform    string    `json:"platform"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTechLinkResponse(l *project.TechLink) TechLinkResponse {
	return TechLinkResponse{
		ID:          l.ID,
		ProjectID:   l.ProjectID,
		Platform:    l.Platform,
		URL:         l.URL,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}
	return out
}
