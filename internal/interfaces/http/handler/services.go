package handler

import (
	"context"

	dashboardapp "github.com/freelancehub/backend/internal/application/dashboard"
	kanbanapp "github.com/freelancehub/backend/internal/application/kanban"
	profileapp "github.com/freelancehub/backend/internal/application/profile"
	workspaceapp "github.com/freelancehub/backend/internal/application/workspace"
	"github.com/freelancehub/backend/internal/domain/profile"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// KanbanService is the board API consumed by KanbanHandler
type KanbanService interface {
	ListBoards(ctx context.Context, ownerID uuid.UUID) ([]kanbanapp.BoardResponse, error)
	GetBoard(ctx context.Context, ownerID, boardID uuid.UUID) (*kanbanapp.BoardDetailResponse, error)
	CreateBoard(ctx context.Context, ownerID uuid.UUID, req kanbanapp.CreateBoardRequest) (*kanbanapp.BoardDetailResponse, error)
	UpdateBoard(ctx context.Context, ownerID, boardID uuid.UUID, req kanbanapp.UpdateBoardRequest) (*kanbanapp.BoardResponse, error)
	ArchiveBoard(ctx context.Context, ownerID, boardID uuid.UUID) error

	CreateColumn(ctx context.Context, ownerID uuid.UUID, req kanbanapp.CreateColumnRequest) (*kanbanapp.ColumnResponse, error)
	UpdateColumn(ctx context.Context, ownerID, columnID uuid.UUID, req kanbanapp.UpdateColumnRequest) (*kanbanapp.ColumnResponse, error)
	DeleteColumn(ctx context.Context, ownerID, columnID uuid.UUID, moveToColumnID *uuid.UUID) error
	ReorderColumns(ctx context.Context, ownerID uuid.UUID, req kanbanapp.ReorderColumnsRequest) ([]kanbanapp.ColumnResponse, error)

	CreateCard(ctx context.Context, ownerID uuid.UUID, req kanbanapp.CreateCardRequest) (*kanbanapp.CardResponse, error)
	GetCard(ctx context.Context, ownerID, cardID uuid.UUID) (*kanbanapp.CardResponse, error)
	UpdateCard(ctx context.Context, ownerID, cardID uuid.UUID, req kanbanapp.UpdateCardRequest) (*kanbanapp.CardResponse, error)
	AddComment(ctx context.Context, ownerID, cardID uuid.UUID, req kanbanapp.AddCommentRequest) (*kanbanapp.CardResponse, error)
	DeleteCard(ctx context.Context, ownerID, cardID uuid.UUID) error
	MoveCard(ctx context.Context, ownerID, cardID uuid.UUID, req kanbanapp.MoveCardRequest) (*kanbanapp.CardResponse, error)
	ReorderCard(ctx context.Context, ownerID, cardID uuid.UUID, req kanbanapp.ReorderCardRequest) (*kanbanapp.CardResponse, error)
	SearchCards(ctx context.Context, ownerID, boardID uuid.UUID, query string) ([]kanbanapp.CardResponse, error)
	FilterCards(ctx context.Context, ownerID uuid.UUID, req kanbanapp.FilterCardsRequest) ([]kanbanapp.CardResponse, error)
}

// BoardSubscriber attaches an upgraded websocket to a board's change feed
type BoardSubscriber interface {
	Subscribe(conn *websocket.Conn, ownerID, boardID uuid.UUID)
}

// WorkspaceService is the project workspace API consumed by ProjectHandler
type WorkspaceService interface {
	ListProjects(ctx context.Context, ownerID uuid.UUID) ([]workspaceapp.ProjectResponse, error)
	GetProject(ctx context.Context, ownerID, projectID uuid.UUID) (*workspaceapp.ProjectResponse, error)
	CreateProject(ctx context.Context, ownerID uuid.UUID, req workspaceapp.CreateProjectRequest) (*workspaceapp.ProjectResponse, error)
	UpdateProject(ctx context.Context, ownerID, projectID uuid.UUID, req workspaceapp.UpdateProjectRequest) (*workspaceapp.ProjectResponse, error)
	DeleteProject(ctx context.Context, ownerID, projectID uuid.UUID) error

	ListMilestones(ctx context.Context, ownerID, projectID uuid.UUID) ([]workspaceapp.MilestoneResponse, error)
	CreateMilestone(ctx context.Context, ownerID, projectID uuid.UUID, req workspaceapp.CreateMilestoneRequest) (*workspaceapp.MilestoneResponse, error)
	UpdateMilestone(ctx context.Context, ownerID, milestoneID uuid.UUID, req workspaceapp.UpdateMilestoneRequest) (*workspaceapp.MilestoneResponse, error)
	DeleteMilestone(ctx context.Context, ownerID, milestoneID uuid.UUID) error

	GetFinance(ctx context.Context, ownerID, projectID uuid.UUID) (*workspaceapp.FinanceResponse, error)
	UpdateFinance(ctx context.Context, ownerID, projectID uuid.UUID, req workspaceapp.UpdateFinanceRequest) (*workspaceapp.FinanceResponse, error)
	AddPayment(ctx context.Context, ownerID, projectID uuid.UUID, req workspaceapp.LedgerEntryRequest) (*workspaceapp.FinanceResponse, error)
	AddExpense(ctx context.Context, ownerID, projectID uuid.UUID, req workspaceapp.LedgerEntryRequest) (*workspaceapp.FinanceResponse, error)

	ListNotes(ctx context.Context, ownerID, projectID uuid.UUID) ([]workspaceapp.NoteResponse, error)
	CreateNote(ctx context.Context, ownerID, projectID uuid.UUID, req workspaceapp.NoteRequest) (*workspaceapp.NoteResponse, error)
	UpdateNote(ctx context.Context, ownerID, noteID uuid.UUID, req workspaceapp.NoteRequest) (*workspaceapp.NoteResponse, error)
	DeleteNote(ctx context.Context, ownerID, noteID uuid.UUID) error

	GetDetails(ctx context.Context, ownerID, projectID uuid.UUID) (*workspaceapp.DetailsResponse, error)
	UpdateDetails(ctx context.Context, ownerID, projectID uuid.UUID, req workspaceapp.UpdateDetailsRequest) (*workspaceapp.DetailsResponse, error)
	GetProgress(ctx context.Context, ownerID, projectID uuid.UUID) (*workspaceapp.ProgressResponse, error)
	UpdateProgress(ctx context.Context, ownerID, projectID uuid.UUID, req workspaceapp.UpdateProgressRequest) (*workspaceapp.ProgressResponse, error)

	ListDocuments(ctx context.Context, ownerID, projectID uuid.UUID) ([]workspaceapp.DocumentResponse, error)
	UploadDocument(ctx context.Context, ownerID, projectID uuid.UUID, in workspaceapp.UploadInput) (*workspaceapp.DocumentResponse, error)
	OpenDocument(ctx context.Context, ownerID, documentID uuid.UUID) (*workspaceapp.Download, error)
	DeleteDocument(ctx context.Context, ownerID, documentID uuid.UUID) error

	ListTechLinks(ctx context.Context, ownerID, projectID uuid.UUID) ([]workspaceapp.TechLinkResponse, error)
	CreateTechLink(ctx context.Context, ownerID, projectID uuid.UUID, req workspaceapp.CreateTechLinkRequest) (*workspaceapp.TechLinkResponse, error)
	UpdateTechLink(ctx context.Context, ownerID, linkID uuid.UUID, req workspaceapp.UpdateTechLinkRequest) (*workspaceapp.TechLinkResponse, error)
	DeleteTechLink(ctx context.Context, ownerID, linkID uuid.UUID) error
}

// DashboardService computes the dashboard aggregates
type DashboardService interface {
	Stats(ctx context.Context, userID uuid.UUID) (*dashboardapp.StatsResponse, error)
	TaskStats(ctx context.Context, userID uuid.UUID) (*dashboardapp.TaskStatsResponse, error)
}

// ProfileService is the profile API consumed by ProfileHandler
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*profileapp.ProfileResponse, error)
	UpdateProfile(ctx context.Context, actorID, userID uuid.UUID, req profileapp.UpdateProfileRequest) (*profileapp.ProfileResponse, error)
	AddExperience(ctx context.Context, actorID, userID uuid.UUID, req profileapp.ExperienceRequest) (*profileapp.ProfileResponse, error)
	UpdateExperience(ctx context.Context, actorID, userID, expID uuid.UUID, req profileapp.ExperienceRequest) (*profileapp.ProfileResponse, error)
	DeleteExperience(ctx context.Context, actorID, userID, expID uuid.UUID) (*profileapp.ProfileResponse, error)
	AddEducation(ctx context.Context, actorID, userID uuid.UUID, req profileapp.EducationRequest) (*profileapp.ProfileResponse, error)
	UpdateEducation(ctx context.Context, actorID, userID, eduID uuid.UUID, req profileapp.EducationRequest) (*profileapp.ProfileResponse, error)
	DeleteEducation(ctx context.Context, actorID, userID, eduID uuid.UUID) (*profileapp.ProfileResponse, error)
	SkillsChart(ctx context.Context, userID uuid.UUID) ([]profile.SkillPoint, error)
	Activity(ctx context.Context, userID uuid.UUID) ([]profile.Activity, error)
	Earnings(ctx context.Context, userID uuid.UUID) (profile.EarningsChart, error)
}

var (
	_ KanbanService    = (*kanbanapp.Service)(nil)
	_ WorkspaceService = (*workspaceapp.Service)(nil)
	_ DashboardService = (*dashboardapp.Service)(nil)
	_ ProfileService   = (*profileapp.Service)(nil)
)
