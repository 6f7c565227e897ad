package profile

import (
	"sort"
	"time"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SkillPoint is one bar of the skills chart
type SkillPoint struct {
	Label string `json:"label"`
	Value int    `json:"val"`
}

var levelValues = map[string]int{
	LevelBeginner:     25,
	LevelIntermediate: 50,
	LevelAdvanced:     75,
	LevelExpert:       100,
}

// SkillsChart maps each skill level to a percentage; unknown levels are 50
func SkillsChart(skills []Skill) []SkillPoint {
	out := make([]SkillPoint, 0, len(skills))
	for _, s := range skills {
		v, ok := levelValues[s.Level]
		if !ok {
			v = 50
		}
		out = append(out, SkillPoint{Label: s.Name, Value: v})
	}
	return out
}

// Activity is one line of the activity feed
type Activity struct {
	ID     uuid.UUID `json:"id"`
	Action string    `json:"action"`
	Target string    `json:"target"`
	Time   string    `json:"time"`
	Icon   string    `json:"icon"`
	Color  string    `json:"color"`
}

// ActivityFeed describes the given projects, most recently updated first
func ActivityFeed(projects []project.Project, limit int) []Activity {
	sorted := append([]project.Project(nil), projects...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]Activity, 0, len(sorted))
	for _, p := range sorted {
		a := Activity{
			ID:     p.ID,
			Action: "Updated project",
			Target: p.Title,
			Time:   p.UpdatedAt.Format(time.DateOnly),
			Icon:   "fa-edit",
			Color:  "blue",
		}
		if p.Status == project.StatusCompleted {
			a.Action = "Completed project"
			a.Icon = "fa-check-circle"
			a.Color = "green"
		}
		out = append(out, a)
	}
	return out
}

// EarningsChart is a label/value series
type EarningsChart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// Earnings sums the net profit of completed projects per calendar month of
// their end date (update time when unset), in chronological order
func Earnings(projects []project.Project) EarningsChart {
	type bucket struct {
		at    time.Time
		total decimal.Decimal
	}
	buckets := make(map[time.Time]*bucket)
	for i := range projects {
		p := &projects[i]
		if p.Status != project.StatusCompleted {
			continue
		}
		when := p.UpdatedAt
		if p.EndDate != nil {
			when = *p.EndDate
		}
		key := time.Date(when.Year(), when.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{at: key, total: decimal.Zero}
			buckets[key] = b
		}
		b.total = b.total.Add(p.NetProfit)
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].at.Before(ordered[j].at) })

	chart := EarningsChart{Labels: make([]string, 0, len(ordered)), Data: make([]float64, 0, len(ordered))}
	for _, b := range ordered {
		chart.Labels = append(chart.Labels, b.at.Format("Jan 2006"))
		chart.Data = append(chart.Data, b.total.InexactFloat64())
	}
	return chart
}
