package project

import (
	"strconv"
	"strings"
	"time"
)

// Status describes where a project sits in its build lifecycle.
// Transitions are derived from task completion, not set freely; see DeriveStatus.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Category classifies an expense for the reporting screens.
type Category string

const (
	CategoryFabricOutfit Category = "Fabric & Outfit"
	CategoryWigHair      Category = "Wig & Hair"
	CategoryDesignPaint  Category = "Design & Paint"
	CategoryOther        Category = "Other"
)

// Categories lists every expense category.
var Categories = []Category{CategoryFabricOutfit, CategoryWigHair, CategoryDesignPaint, CategoryOther}

// Expense is a purchase logged against a project. Date is when the expense
// was recorded, not the project's event date; monthly statistics group by it.
type Expense struct {
	ID       string    `json:"id"`
	Store    string    `json:"store"`
	Item     string    `json:"item"`
	Amount   float64   `json:"amount"`
	Category Category  `json:"category"`
	Date     time.Time `json:"date"`
}

// ChecklistTask is a single to-do item on a project's checklist.
type ChecklistTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Project is a costume build tied to an event date and a budget.
// It exclusively owns its expense and task lists.
type Project struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Source    string          `json:"source"`
	EventName string          `json:"event_name"`
	Budget    string          `json:"budget"`
	EventDate time.Time       `json:"event_date"`
	Image     []byte          `json:"image,omitempty"`
	Status    Status          `json:"status"`
	Expenses  []Expense       `json:"expenses"`
	Tasks     []ChecklistTask `json:"tasks"`
}

// TotalBudget parses the budget text, or 0 when it isn't a number.
func (p *Project) TotalBudget() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Budget), 64)
	if err != nil {
		return 0
	}
	return v
}

// TotalSpent sums the amounts of all logged expenses.
func (p *Project) TotalSpent() float64 {
	var total float64
	for _, e := range p.Expenses {
		total += e.Amount
	}
	return total
}

// RemainingBudget is the parsed budget minus total spend. May go negative.
func (p *Project) RemainingBudget() float64 {
	return p.TotalBudget() - p.TotalSpent()
}

// CompletedTasks counts checklist tasks marked done.
func (p *Project) CompletedTasks() int {
	count := 0
	for _, t := range p.Tasks {
		if t.Completed {
			count++
		}
	}
	return count
}

// CompletionPercent is the share of completed tasks, 0 for an empty checklist.
func (p *Project) CompletionPercent() float64 {
	if len(p.Tasks) == 0 {
		return 0
	}
	return float64(p.CompletedTasks()) / float64(len(p.Tasks)) * 100
}

// DaysUntilEvent is the count of whole days from now to the event date,
// truncated toward zero. Negative once the event has passed.
func (p *Project) DaysUntilEvent(now time.Time) int {
	return int(p.EventDate.Sub(now).Hours() / 24)
}

// DaysLeft is DaysUntilEvent clamped at zero for display.
func (p *Project) DaysLeft(now time.Time) int {
	d := p.DaysUntilEvent(now)
	if d < 0 {
		return 0
	}
	return d
}

// Clone returns a deep copy so callers can't mutate store-owned slices.
func (p Project) Clone() Project {
	out := p
	if p.Image != nil {
		out.Image = append([]byte(nil), p.Image...)
	}
	if p.Expenses != nil {
		out.Expenses = append([]Expense(nil), p.Expenses...)
	}
	if p.Tasks != nil {
		out.Tasks = append([]ChecklistTask(nil), p.Tasks...)
	}
	return out
}

// ValidCategory reports whether raw names a known expense category.
func ValidCategory(raw string) bool {
	for _, c := range Categories {
		if Category(raw) == c {
			return true
		}
	}
	return false
}
