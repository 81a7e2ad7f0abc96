package mcp

import (
	"time"

	"github.com/radcabna/cosplanner/internal/domain/notification"
	"github.com/radcabna/cosplanner/internal/domain/project"
	"github.com/radcabna/cosplanner/internal/domain/stats"
)

// Dates cross the tool boundary as strings; eventDateLayout is the canonical
// form, RFC 3339 is accepted on input.
const eventDateLayout = "2006-01-02"

// CreateProjectParams defines inputs for create_project.
type CreateProjectParams struct {
	Name      string `json:"name"`
	Source    string `json:"source,omitempty"`
	EventName string `json:"event_name"`
	Budget    string `json:"budget,omitempty"`
	EventDate string `json:"event_date"`
	Image     []byte `json:"image,omitempty"`
}

// ListProjectsParams defines inputs for list_projects.
type ListProjectsParams struct {
	Status string `json:"status,omitempty"`
}

// GetProjectParams defines inputs for get_project.
type GetProjectParams struct {
	ID string `json:"id"`
}

// UpdateProjectParams defines inputs for update_project. Nil fields are left
// unchanged; the project is replaced wholesale through the store.
type UpdateProjectParams struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	Source    *string `json:"source,omitempty"`
	EventName *string `json:"event_name,omitempty"`
	Budget    *string `json:"budget,omitempty"`
	EventDate *string `json:"event_date,omitempty"`
	Image     []byte  `json:"image,omitempty"`
}

// DeleteProjectParams defines inputs for delete_project.
type DeleteProjectParams struct {
	ID string `json:"id"`
}

// ListArchiveParams defines inputs for list_archive.
type ListArchiveParams struct{}

// AddExpenseParams defines inputs for add_expense.
type AddExpenseParams struct {
	ProjectID string  `json:"project_id"`
	Store     string  `json:"store,omitempty"`
	Item      string  `json:"item"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Date      string  `json:"date,omitempty"`
}

// RemoveExpenseParams defines inputs for remove_expense.
type RemoveExpenseParams struct {
	ProjectID string `json:"project_id"`
	ExpenseID string `json:"expense_id"`
}

// AddTaskParams defines inputs for add_task.
type AddTaskParams struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
}

// SetTaskDoneParams defines inputs for set_task_done.
type SetTaskDoneParams struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
	Done      bool   `json:"done"`
}

// RemoveTaskParams defines inputs for remove_task.
type RemoveTaskParams struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
}

// ListNotificationsParams defines inputs for list_notifications.
type ListNotificationsParams struct{}

// DeleteNotificationParams defines inputs for delete_notification.
type DeleteNotificationParams struct {
	ID string `json:"id"`
}

// MarkNotificationReadParams defines inputs for mark_notification_read.
type MarkNotificationReadParams struct {
	ID string `json:"id"`
}

// GetStatisticsParams defines inputs for get_statistics.
type GetStatisticsParams struct{}

// ExpenseResponse is the wire form of an expense.
type ExpenseResponse struct {
	ID       string  `json:"id"`
	Store    string  `json:"store,omitempty"`
	Item     string  `json:"item"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// TaskResponse is the wire form of a checklist task.
type TaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ProjectResponse is the wire form of a project, derived fields included.
type ProjectResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Source            string            `json:"source,omitempty"`
	EventName         string            `json:"event_name"`
	Budget            string            `json:"budget,omitempty"`
	EventDate         string            `json:"event_date"`
	Status            string            `json:"status"`
	HasImage          bool              `json:"has_image"`
	TotalBudget       float64           `json:"total_budget"`
	TotalSpent        float64           `json:"total_spent"`
	RemainingBudget   float64           `json:"remaining_budget"`
	TaskCount         int               `json:"task_count"`
	CompletedTasks    int               `json:"completed_tasks"`
	CompletionPercent float64           `json:"completion_percent"`
	DaysLeft          int               `json:"days_left"`
	Expenses          []ExpenseResponse `json:"expenses"`
	Tasks             []TaskResponse    `json:"tasks"`
}

// ProjectListResponse wraps a project listing.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// NotificationResponse is the wire form of a materialized notification.
type NotificationResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	EventName   string `json:"event_name"`
	DaysLeft    int    `json:"days_left"`
	Date        string `json:"date"`
	Read        bool   `json:"read"`
	Message     string `json:"message"`
}

// NotificationListResponse wraps a notification listing.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// EmptyResponse is returned by tools with no payload.
type EmptyResponse struct{}

// StatisticsResponse is the wire form of the statistics report.
type StatisticsResponse struct {
	TotalSpent     float64               `json:"total_spent"`
	TotalBudget    float64               `json:"total_budget"`
	ProjectCount   int                   `json:"project_count"`
	Categories     []stats.CategoryTotal `json:"categories"`
	Monthly        []stats.MonthTotal    `json:"monthly"`
	PeakMonth      stats.MonthTotal      `json:"peak_month"`
	AverageMonthly float64               `json:"average_monthly"`
	BudgetChange   string                `json:"budget_change"`
}

func toProjectResponse(p project.Project, now time.Time) ProjectResponse {
	expenses := make([]ExpenseResponse, 0, len(p.Expenses))
	for _, e := range p.Expenses {
		expenses = append(expenses, ExpenseResponse{
			ID:       e.ID,
			Store:    e.Store,
			Item:     e.Item,
			Amount:   e.Amount,
			Category: string(e.Category),
			Date:     e.Date.Format(time.RFC3339),
		})
	}
	tasks := make([]TaskResponse, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, TaskResponse{ID: t.ID, Title: t.Title, Completed: t.Completed})
	}

	return ProjectResponse{
		ID:                p.ID,
		Name:              p.Name,
		Source:            p.Source,
		EventName:         p.EventName,
		Budget:            p.Budget,
		EventDate:         p.EventDate.Format(eventDateLayout),
		Status:            string(p.Status),
		HasImage:          len(p.Image) > 0,
		TotalBudget:       p.TotalBudget(),
		TotalSpent:        p.TotalSpent(),
		RemainingBudget:   p.RemainingBudget(),
		TaskCount:         len(p.Tasks),
		CompletedTasks:    p.CompletedTasks(),
		CompletionPercent: p.CompletionPercent(),
		DaysLeft:          p.DaysLeft(now),
		Expenses:          expenses,
		Tasks:             tasks,
	}
}

func toNotificationResponse(n notification.AppNotification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		ProjectID:   n.ProjectID,
		ProjectName: n.ProjectName,
		EventName:   n.EventName,
		DaysLeft:    n.DaysLeft,
		Date:        n.Date.Format(time.RFC3339),
		Read:        n.Read,
		Message:     n.Message(),
	}
}
