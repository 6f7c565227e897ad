package dashboard

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	upcomingMilestoneLimit = 5
	topClientLimit         = 3
	revenueMonths          = 6

	// UnknownProjectName labels milestones whose project cannot be resolved
	UnknownProjectName = "Unknown Project"
)

// StatusBreakdown counts projects per normalized status. Statuses that do
// not map to a known bucket are counted as Unknown rather than hidden.
type StatusBreakdown struct {
	NotStarted int `json:"not_started"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	OnHold     int `json:"on_hold"`
	Unknown    int `json:"unknown"`
}

// UpcomingMilestone is a pending milestone due today or later
type UpcomingMilestone struct {
	ID            uuid.UUID
	Title         string
	ProjectName   string
	DueDate       time.Time
	DaysRemaining int
	Status        project.MilestoneStatus
}

// ClientCount is a client with its number of projects
type ClientCount struct {
	Name         string
	ProjectCount int
}

// MonthRevenue is the sum of payments received in one calendar month
type MonthRevenue struct {
	Month   string
	Year    int
	Revenue decimal.Decimal

	month time.Month
}

// Stats is the project dashboard snapshot
type Stats struct {
	TotalProjects          int
	ActiveProjects         int
	TotalClients           int
	CompletionRate         int
	TotalRevenue           decimal.Decimal
	TotalCost              decimal.Decimal
	NetProfit              decimal.Decimal
	ProjectStatusBreakdown StatusBreakdown
	UpcomingMilestones     []UpcomingMilestone
	OverdueMilestones      int
	TopClients             []ClientCount
	MonthlyRevenue         []MonthRevenue
}

// ComputeStats builds the dashboard snapshot. projectTitles resolves the
// project name of each milestone; today is truncated to midnight.
func ComputeStats(
	projects []project.Project,
	milestones []project.Milestone,
	projectTitles map[uuid.UUID]string,
	finances []project.Finance,
	today time.Time,
) Stats {
	today = shared.StartOfDay(today)

	s := Stats{
		TotalProjects:      len(projects),
		TotalRevenue:       decimal.Zero,
		TotalCost:          decimal.Zero,
		UpcomingMilestones: make([]UpcomingMilestone, 0),
		TopClients:         make([]ClientCount, 0),
	}

	clients := make(map[string]struct{})
	completed := 0
	for i := range projects {
		p := &projects[i]
		switch p.Status {
		case project.StatusActive, "in_progress":
			s.ActiveProjects++
		case project.StatusCompleted:
			completed++
		}
		if p.ClientName != "" {
			clients[p.ClientName] = struct{}{}
		}
		s.ProjectStatusBreakdown.add(string(p.Status))
	}
	s.TotalClients = len(clients)
	s.CompletionRate = CompletionRate(completed, len(projects))

	for i := range finances {
		s.TotalRevenue = s.TotalRevenue.Add(finances[i].TotalReceived())
		s.TotalCost = s.TotalCost.Add(finances[i].TotalExpenses())
	}
	s.NetProfit = s.TotalRevenue.Sub(s.TotalCost)

	s.UpcomingMilestones, s.OverdueMilestones = milestoneDeadlines(milestones, projectTitles, today)
	s.TopClients = TopClients(projects, topClientLimit)
	s.MonthlyRevenue = MonthlyRevenue(finances, today)
	return s
}

// CompletionRate is round(completed/total*100), or 0 without projects
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// DaysRemaining is ceil((due - today) / 24h)
func DaysRemaining(due, today time.Time) int {
	return int(math.Ceil(due.Sub(today).Hours() / 24))
}

func (b *StatusBreakdown) add(status string) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "in_progress", "in-progress":
		b.InProgress++
	case "completed":
		b.Completed++
	case "on-hold", "on_hold":
		b.OnHold++
	case "not_started", "not-started":
		b.NotStarted++
	default:
		b.Unknown++
	}
}

func milestoneDeadlines(milestones []project.Milestone, titles map[uuid.UUID]string, today time.Time) ([]UpcomingMilestone, int) {
	upcoming := make([]UpcomingMilestone, 0)
	overdue := 0

	for i := range milestones {
		m := &milestones[i]
		if m.IsCompleted() || m.DueDate == nil {
			continue
		}
		if m.DueDate.Before(today) {
			overdue++
			continue
		}
		name, ok := titles[m.ProjectID]
		if !ok || name == "" {
			name = UnknownProjectName
		}
		upcoming = append(upcoming, UpcomingMilestone{
			ID:            m.ID,
			Title:         m.Title,
			ProjectName:   name,
			DueDate:       *m.DueDate,
			DaysRemaining: DaysRemaining(*m.DueDate, today),
			Status:        m.Status,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	if len(upcoming) > upcomingMilestoneLimit {
		upcoming = upcoming[:upcomingMilestoneLimit]
	}
	return upcoming, overdue
}

// TopClients returns up to limit clients by project count, descending.
// Ties keep the order in which clients were first seen.
func TopClients(projects []project.Project, limit int) []ClientCount {
	counts := make([]ClientCount, 0)
	index := make(map[string]int)
	for i := range projects {
		name := projects[i].ClientName
		if name == "" {
			continue
		}
		if at, ok := index[name]; ok {
			counts[at].ProjectCount++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, ClientCount{Name: name, ProjectCount: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].ProjectCount > counts[j].ProjectCount
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// MonthlyRevenue buckets payments into the month of today and the five
// months before it, oldest first
func MonthlyRevenue(finances []project.Finance, today time.Time) []MonthRevenue {
	buckets := make([]MonthRevenue, revenueMonths)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	for i := range buckets {
		m := first.AddDate(0, i-(revenueMonths-1), 0)
		buckets[i] = MonthRevenue{
			Month:   m.Format("Jan"),
			Year:    m.Year(),
			Revenue: decimal.Zero,
		}
		buckets[i].month = m.Month()
	}

	for i := range finances {
		for _, p := range finances[i].PaymentsReceived {
			if p.Amount.IsZero() || p.Date.IsZero() {
				continue
			}
			d := p.Date.In(today.Location())
			for b := range buckets {
				if buckets[b].Year == d.Year() && buckets[b].month == d.Month() {
					buckets[b].Revenue = buckets[b].Revenue.Add(p.Amount)
					break
				}
			}
		}
	}
	return buckets
}
