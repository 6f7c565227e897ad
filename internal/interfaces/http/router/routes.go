package router

import (
	"github.com/freelancehub/backend/internal/interfaces/http/handler"
)

// Handlers bundles the API handlers mounted by APIGroups
type Handlers struct {
	Kanban    *handler.KanbanHandler
	Project   *handler.ProjectHandler
	Dashboard *handler.DashboardHandler
	Profile   *handler.ProfileHandler
	System    *handler.SystemHandler
}

// APIGroups builds the route groups served under /api/v1
func APIGroups(h Handlers) []*DomainGroup {
	var groups []*DomainGroup

	if h.System != nil {
		groups = append(groups, NewDomainGroup("system", "").GET("/health", h.System.Health))
	}

	if k := h.Kanban; k != nil {
		kanban := NewDomainGroup("kanban", "/kanban")
		kanban.Group("boards", "/boards").
			GET("", k.ListBoards).
			POST("", k.CreateBoard).
			GET("/:id", k.GetBoard).
			PUT("/:id", k.UpdateBoard).
			DELETE("/:id", k.ArchiveBoard).
			GET("/:id/stream", k.StreamBoard)
		kanban.Group("columns", "/columns").
			POST("", k.CreateColumn).
			PUT("/reorder", k.ReorderColumns).
			PUT("/:id", k.UpdateColumn).
			DELETE("/:id", k.DeleteColumn)
		kanban.Group("cards", "/cards").
			POST("", k.CreateCard).
			GET("/search", k.SearchCards).
			POST("/filter", k.FilterCards).
			GET("/:id", k.GetCard).
			PUT("/:id", k.UpdateCard).
			DELETE("/:id", k.DeleteCard).
			PUT("/:id/move", k.MoveCard).
			PUT("/:id/reorder", k.ReorderCard).
			POST("/:id/comments", k.AddComment)
		groups = append(groups, kanban)
	}

	if p := h.Project; p != nil {
		projects := NewDomainGroup("projects", "/projects").
			GET("", p.ListProjects).
			POST("", p.CreateProject).
			GET("/:id", p.GetProject).
			PUT("/:id", p.UpdateProject).
			DELETE("/:id", p.DeleteProject).
			GET("/:id/milestones", p.ListMilestones).
			POST("/:id/milestones", p.CreateMilestone).
			GET("/:id/finance", p.GetFinance).
			PUT("/:id/finance", p.UpdateFinance).
			POST("/:id/finance/payments", p.AddPayment).
			POST("/:id/finance/expenses", p.AddExpense).
			GET("/:id/notes", p.ListNotes).
			POST("/:id/notes", p.CreateNote).
			GET("/:id/details", p.GetDetails).
			PUT("/:id/details", p.UpdateDetails).
			GET("/:id/progress", p.GetProgress).
			PUT("/:id/progress", p.UpdateProgress).
			GET("/:id/documents", p.ListDocuments).
			POST("/:id/documents", p.UploadDocument).
			GET("/:id/tech-links", p.ListTechLinks).
			POST("/:id/tech-links", p.CreateTechLink)

		groups = append(groups,
			projects,
			NewDomainGroup("milestones", "/milestones").
				PUT("/:id", p.UpdateMilestone).
				DELETE("/:id", p.DeleteMilestone),
			NewDomainGroup("notes", "/notes").
				PUT("/:id", p.UpdateNote).
				DELETE("/:id", p.DeleteNote),
			NewDomainGroup("documents", "/documents").
				GET("/:id/download", p.DownloadDocument).
				DELETE("/:id", p.DeleteDocument),
			NewDomainGroup("tech-links", "/tech-links").
				PUT("/:id", p.UpdateTechLink).
				DELETE("/:id", p.DeleteTechLink),
		)
	}

	if d := h.Dashboard; d != nil {
		groups = append(groups, NewDomainGroup("dashboard", "/dashboard").
			GET("/stats", d.Stats).
			GET("/task-stats", d.TaskStats))
	}

	if pr := h.Profile; pr != nil {
		groups = append(groups, NewDomainGroup("profile", "/profile").
			GET("/:id", pr.GetProfile).
			PUT("/:id", pr.UpdateProfile).
			POST("/:id/experience", pr.AddExperience).
			PUT("/:id/experience/:expId", pr.UpdateExperience).
			DELETE("/:id/experience/:expId", pr.DeleteExperience).
			POST("/:id/education", pr.AddEducation).
			PUT("/:id/education/:eduId", pr.UpdateEducation).
			DELETE("/:id/education/:eduId", pr.DeleteEducation).
			GET("/:id/stats/skills", pr.SkillsChart).
			GET("/:id/stats/activity", pr.Activity).
			GET("/:id/stats/earnings", pr.Earnings))
	}

	return groups
}
