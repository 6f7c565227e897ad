package dashboard

import (
	"time"

	"github.com/freelancehub/backend/internal/domain/dashboard"
	"github.com/freelancehub/backend/internal/domain/kanban"
	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatsResponse is the body of GET /dashboard/stats
type StatsResponse struct {
	TotalProjects          int                       `json:"totalProjects"`
	ActiveProjects         int                       `json:"activeProjects"`
	TotalClients           int                       `json:"totalClients"`
	CompletionRate         int                       `json:"completionRate"`
	TotalRevenue           decimal.Decimal           `json:"totalRevenue"`
	TotalCost              decimal.Decimal           `json:"totalCost"`
	NetProfit              decimal.Decimal           `json:"netProfit"`
	ProjectStatusBreakdown dashboard.StatusBreakdown `json:"projectStatusBreakdown"`
	UpcomingMilestones     []UpcomingMilestoneDTO    `json:"upcomingMilestones"`
	OverdueTasks           int                       `json:"overdueTasks"`
	OverdueMilestones      int                       `json:"overdueMilestones"`
	TopClients             []ClientCountDTO          `json:"topClients"`
	MonthlyRevenue         []MonthRevenueDTO         `json:"monthlyRevenue"`
}

// UpcomingMilestoneDTO is one entry of upcomingMilestones
type UpcomingMilestoneDTO struct {
	ID            uuid.UUID               `json:"id"`
	Title         string                  `json:"title"`
	ProjectName   string                  `json:"projectName"`
	DueDate       time.Time               `json:"dueDate"`
	DaysRemaining int                     `json:"daysRemaining"`
	Status        project.MilestoneStatus `json:"status"`
}

// ClientCountDTO is one entry of topClients
type ClientCountDTO struct {
	Name         string `json:"name"`
	ProjectCount int    `json:"projectCount"`
}

// MonthRevenueDTO is one bucket of monthlyRevenue
type MonthRevenueDTO struct {
	Month   string          `json:"month"`
	Year    int             `json:"year"`
	Revenue decimal.Decimal `json:"revenue"`
}

func toStatsResponse(s dashboard.Stats) *StatsResponse {
	resp := &StatsResponse{
		TotalProjects:          s.TotalProjects,
		ActiveProjects:         s.ActiveProjects,
		TotalClients:           s.TotalClients,
		CompletionRate:         s.CompletionRate,
		TotalRevenue:           s.TotalRevenue,
		TotalCost:              s.TotalCost,
		NetProfit:              s.NetProfit,
		ProjectStatusBreakdown: s.ProjectStatusBreakdown,
		UpcomingMilestones:     make([]UpcomingMilestoneDTO, 0, len(s.UpcomingMilestones)),
		OverdueTasks:           s.OverdueMilestones,
		OverdueMilestones:      s.OverdueMilestones,
		TopClients:             make([]ClientCountDTO, 0, len(s.TopClients)),
		MonthlyRevenue:         make([]MonthRevenueDTO, 0, len(s.MonthlyRevenue)),
	}
	for _, m := range s.UpcomingMilestones {
		resp.UpcomingMilestones = append(resp.UpcomingMilestones, UpcomingMilestoneDTO(m))
	}
	for _, c := range s.TopClients {
		resp.TopClients = append(resp.TopClients, ClientCountDTO(c))
	}
	for _, m := range s.MonthlyRevenue {
		resp.MonthlyRevenue = append(resp.MonthlyRevenue, MonthRevenueDTO{Month: m.Month, Year: m.Year, Revenue: m.Revenue})
	}
	return resp
}

// TaskStatsResponse is the body of GET /dashboard/task-stats
type TaskStatsResponse struct {
	TotalTasks        int            `json:"totalTasks"`
	CompletedTasks    int            `json:"completedTasks"`
	InProgressTasks   int            `json:"inProgressTasks"`
	HighPriorityTasks int            `json:"highPriorityTasks"`
	TasksByStatus     map[string]int `json:"tasksByStatus"`
	UpcomingDeadlines []DeadlineDTO  `json:"upcomingDeadlines"`
	OverdueTasks      int            `json:"overdueTasks"`
	CompletionRate    float64        `json:"completionRate"`
	Tasks             []TaskDTO      `json:"tasks"`
}

// DeadlineDTO is one entry of upcomingDeadlines
type DeadlineDTO struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	DueDate       time.Time       `json:"dueDate"`
	DaysRemaining int             `json:"daysRemaining"`
	Priority      kanban.Priority `json:"priority"`
	ColumnTitle   string          `json:"columnTitle"`
	Status        string          `json:"status"`
}

// TaskDTO is a card as listed on the dashboard
type TaskDTO struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	ColumnTitle string          `json:"columnTitle"`
	Priority    kanban.Priority `json:"priority"`
	DueDate     *time.Time      `json:"dueDate"`
	Tags        []string        `json:"tags"`
	Assignee    *uuid.UUID      `json:"assignee"`
	CreatedBy   uuid.UUID       `json:"createdBy"`
	BoardID     uuid.UUID       `json:"boardId"`
	ColumnID    uuid.UUID       `json:"columnId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toTaskStatsResponse(s dashboard.TaskStats) *TaskStatsResponse {
	resp := &TaskStatsResponse{
		TotalTasks:        s.TotalTasks,
		CompletedTasks:    s.CompletedTasks,
		InProgressTasks:   s.InProgressTasks,
		HighPriorityTasks: s.HighPriorityTasks,
		TasksByStatus:     s.TasksByStatus,
		UpcomingDeadlines: make([]DeadlineDTO, 0, len(s.UpcomingDeadlines)),
		OverdueTasks:      s.OverdueTasks,
		CompletionRate:    s.CompletionRate,
		Tasks:             make([]TaskDTO, 0, len(s.Tasks)),
	}
	if resp.TasksByStatus == nil {
		resp.TasksByStatus = map[string]int{}
	}
	for _, d := range s.UpcomingDeadlines {
		resp.UpcomingDeadlines = append(resp.UpcomingDeadlines, DeadlineDTO(d))
	}
	for _, t := range s.Tasks {
		c := t.Card
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}
		resp.Tasks = append(resp.Tasks, TaskDTO{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Status:      t.Status,
			ColumnTitle: t.ColumnTitle,
			Priority:    c.Priority,
			DueDate:     c.DueDate,
			Tags:        tags,
			Assignee:    c.Assignee,
			CreatedBy:   c.OwnerID,
			BoardID:     c.BoardID,
			ColumnID:    c.ColumnID,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}
	return resp
}
