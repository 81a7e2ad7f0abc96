// Package stats computes the read-side aggregates for the reporting screens.
// Everything here is a pure function over a project snapshot and an injected
// "now"; nothing is stored.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/radcabna/cosplanner/internal/domain/project"
)

// monthWindow is the trailing number of calendar months shown on the chart.
const monthWindow = 6

// CategoryTotal is one slice of the spending-by-category chart.
type CategoryTotal struct {
	Category project.Category `json:"category"`
	Label    string           `json:"label"`
	Amount   float64          `json:"amount"`
}

// MonthTotal is one bar of the monthly spending chart.
type MonthTotal struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Report bundles everything the statistics screen shows.
type Report struct {
	TotalSpent     float64         `json:"total_spent"`
	TotalBudget    float64         `json:"total_budget"`
	ProjectCount   int             `json:"project_count"`
	Categories     []CategoryTotal `json:"categories"`
	Monthly        []MonthTotal    `json:"monthly"`
	PeakMonth      MonthTotal      `json:"peak_month"`
	AverageMonthly float64         `json:"average_monthly"`
	BudgetChange   string          `json:"budget_change"`
}

// Compute builds the full report from a project snapshot.
func Compute(projects []project.Project, now time.Time) Report {
	monthly := MonthlyTotals(projects, now)
	report := Report{
		ProjectCount:   len(projects),
		Categories:     CategoryTotals(projects),
		Monthly:        monthly,
		PeakMonth:      PeakMonth(monthly),
		AverageMonthly: AverageMonthly(monthly),
		BudgetChange:   BudgetChangeText(projects, now),
	}
	for i := range projects {
		report.TotalSpent += projects[i].TotalSpent()
		report.TotalBudget += projects[i].TotalBudget()
	}
	return report
}

// CategoryTotals sums expenses per named category. "Other" is excluded from
// the chart legend, though its spend still counts toward totals.
func CategoryTotals(projects []project.Project) []CategoryTotal {
	var fabric, wigs, design float64
	for _, p := range projects {
		for _, e := range p.Expenses {
			switch e.Category {
			case project.CategoryFabricOutfit:
				fabric += e.Amount
			case project.CategoryWigHair:
				wigs += e.Amount
			case project.CategoryDesignPaint:
				design += e.Amount
			}
		}
	}

	return []CategoryTotal{
		{Category: project.CategoryFabricOutfit, Label: "Fabric", Amount: fabric},
		{Category: project.CategoryWigHair, Label: "Wigs", Amount: wigs},
		{Category: project.CategoryDesignPaint, Label: "Design", Amount: design},
	}
}

// MonthlyTotals sums expense amounts per calendar month over the trailing
// six-month window anchored at now, oldest first. Months without expenses are
// zero-filled; expenses outside the window are ignored.
func MonthlyTotals(projects []project.Project, now time.Time) []MonthTotal {
	anchor := monthStart(now)

	keys := make([]int, 0, monthWindow)
	totals := make(map[int]*MonthTotal, monthWindow)
	for i := monthWindow - 1; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0)
		key := monthKey(month)
		keys = append(keys, key)
		totals[key] = &MonthTotal{Label: strings.ToUpper(month.Format("Jan"))}
	}

	for _, p := range projects {
		for _, e := range p.Expenses {
			if entry, ok := totals[monthKey(e.Date)]; ok {
				entry.Amount += e.Amount
			}
		}
	}

	out := make([]MonthTotal, 0, monthWindow)
	for _, key := range keys {
		out = append(out, *totals[key])
	}
	return out
}

// PeakMonth returns the month with the highest total; ties go to the earliest
// month in the window.
func PeakMonth(monthly []MonthTotal) MonthTotal {
	var peak MonthTotal
	for _, m := range monthly {
		if m.Amount > peak.Amount || peak.Label == "" {
			peak = m
		}
	}
	return peak
}

// AverageMonthly is the arithmetic mean over the whole window, including the
// zero-filled months.
func AverageMonthly(monthly []MonthTotal) float64 {
	if len(monthly) == 0 {
		return 0
	}
	var total float64
	for _, m := range monthly {
		total += m.Amount
	}
	return total / float64(len(monthly))
}

// BudgetChangeText compares the budgets of projects whose event falls in the
// current calendar month against the previous one, as a signed percentage.
func BudgetChangeText(projects []project.Project, now time.Time) string {
	current := budgetForMonth(projects, now)
	previous := budgetForMonth(projects, monthStart(now).AddDate(0, -1, 0))

	if previous == 0 {
		if current > 0 {
			return "+100% vs last month"
		}
		return "No change"
	}

	change := (current - previous) / previous * 100
	return fmt.Sprintf("%+.0f%% vs last month", change)
}

func budgetForMonth(projects []project.Project, month time.Time) float64 {
	key := monthKey(month)
	var total float64
	for i := range projects {
		if monthKey(projects[i].EventDate) == key {
			total += projects[i].TotalBudget()
		}
	}
	return total
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func monthKey(t time.Time) int {
	return t.Year()*100 + int(t.Month())
}
