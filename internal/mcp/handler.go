package mcp

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/radcabna/cosplanner/internal/clock"
	"github.com/radcabna/cosplanner/internal/domain/notification"
	"github.com/radcabna/cosplanner/internal/domain/project"
	"github.com/radcabna/cosplanner/internal/domain/stats"
)

// Handler adapts tool calls onto the model layer. It performs the
// required-field and numeric validation the input forms own; the store itself
// validates nothing.
type Handler struct {
	projects      *project.Store
	notifications *notification.Scheduler
	clock         clock.Clock
	newID         func() string
}

// NewHandler creates a tool handler over the planner services.
func NewHandler(projects *project.Store, notifications *notification.Scheduler, clk clock.Clock) *Handler {
	return &Handler{
		projects:      projects,
		notifications: notifications,
		clock:         clk,
		newID:         uuid.NewString,
	}
}

func (h *Handler) createProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	if in.Name == "" {
		return nil, ProjectResponse{}, invalidInput("name is required")
	}
	if in.EventName == "" {
		return nil, ProjectResponse{}, invalidInput("event_name is required")
	}
	eventDate, err := parseDate(in.EventDate)
	if err != nil {
		return nil, ProjectResponse{}, invalidInput("event_date: %v", err)
	}
	if err := validateBudget(in.Budget); err != nil {
		return nil, ProjectResponse{}, err
	}

	p := h.projects.Add(ctx, project.Project{
		Name:      in.Name,
		Source:    in.Source,
		EventName: in.EventName,
		Budget:    in.Budget,
		EventDate: eventDate,
		Image:     in.Image,
		Status:    project.StatusPlanning,
	})
	return nil, toProjectResponse(p, h.clock.Now()), nil
}

func (h *Handler) listProjects(_ context.Context, _ *sdkmcp.CallToolRequest, in ListProjectsParams) (*sdkmcp.CallToolResult, ProjectListResponse, error) {
	if in.Status != "" {
		switch project.Status(in.Status) {
		case project.StatusPlanning, project.StatusActive, project.StatusCompleted:
		default:
			return nil, ProjectListResponse{}, invalidInput("unknown status %q", in.Status)
		}
	}

	now := h.clock.Now()
	out := ProjectListResponse{Projects: []ProjectResponse{}}
	for _, p := range h.projects.Active() {
		if in.Status != "" && p.Status != project.Status(in.Status) {
			continue
		}
		out.Projects = append(out.Projects, toProjectResponse(p, now))
	}
	return nil, out, nil
}

func (h *Handler) getProject(_ context.Context, _ *sdkmcp.CallToolRequest, in GetProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	p, ok := h.projects.Get(in.ID)
	if !ok {
		return nil, ProjectResponse{}, mapError(project.ErrProjectNotFound)
	}
	return nil, toProjectResponse(p, h.clock.Now()), nil
}

func (h *Handler) updateProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	p, ok := h.projects.Get(in.ID)
	if !ok {
		return nil, ProjectResponse{}, mapError(project.ErrProjectNotFound)
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Source != nil {
		p.Source = *in.Source
	}
	if in.EventName != nil {
		p.EventName = *in.EventName
	}
	if in.Budget != nil {
		if err := validateBudget(*in.Budget); err != nil {
			return nil, ProjectResponse{}, err
		}
		p.Budget = *in.Budget
	}
	if in.EventDate != nil {
		eventDate, err := parseDate(*in.EventDate)
		if err != nil {
			return nil, ProjectResponse{}, invalidInput("event_date: %v", err)
		}
		p.EventDate = eventDate
	}
	if in.Image != nil {
		p.Image = in.Image
	}

	h.projects.Update(ctx, p)
	return nil, toProjectResponse(p, h.clock.Now()), nil
}

func (h *Handler) deleteProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteProjectParams) (*sdkmcp.CallToolResult, EmptyResponse, error) {
	p, ok := h.projects.Get(in.ID)
	if !ok {
		return nil, EmptyResponse{}, mapError(project.ErrProjectNotFound)
	}
	h.projects.Delete(ctx, p)
	return nil, EmptyResponse{}, nil
}

func (h *Handler) listArchive(_ context.Context, _ *sdkmcp.CallToolRequest, _ ListArchiveParams) (*sdkmcp.CallToolResult, ProjectListResponse, error) {
	now := h.clock.Now()
	out := ProjectListResponse{Projects: []ProjectResponse{}}
	for _, p := range h.projects.Archived() {
		out.Projects = append(out.Projects, toProjectResponse(p, now))
	}
	return nil, out, nil
}

func (h *Handler) addExpense(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddExpenseParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	if in.Item == "" {
		return nil, ProjectResponse{}, invalidInput("item is required")
	}
	if in.Amount < 0 {
		return nil, ProjectResponse{}, invalidInput("amount must not be negative")
	}
	if !project.ValidCategory(in.Category) {
		return nil, ProjectResponse{}, invalidInput("unknown category %q", in.Category)
	}

	date := h.clock.Now()
	if in.Date != "" {
		parsed, err := parseDate(in.Date)
		if err != nil {
			return nil, ProjectResponse{}, invalidInput("date: %v", err)
		}
		date = parsed
	}

	p, ok := h.projects.Get(in.ProjectID)
	if !ok {
		return nil, ProjectResponse{}, mapError(project.ErrProjectNotFound)
	}

	p.Expenses = append(p.Expenses, project.Expense{
		ID:       h.newID(),
		Store:    in.Store,
		Item:     in.Item,
		Amount:   in.Amount,
		Category: project.Category(in.Category),
		Date:     date,
	})
	h.projects.Update(ctx, p)
	return nil, toProjectResponse(p, h.clock.Now()), nil
}

func (h *Handler) removeExpense(ctx context.Context, _ *sdkmcp.CallToolRequest, in RemoveExpenseParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	p, ok := h.projects.Get(in.ProjectID)
	if !ok {
		return nil, ProjectResponse{}, mapError(project.ErrProjectNotFound)
	}

	kept := p.Expenses[:0]
	for _, e := range p.Expenses {
		if e.ID != in.ExpenseID {
			kept = append(kept, e)
		}
	}
	p.Expenses = kept

	h.projects.Update(ctx, p)
	return nil, toProjectResponse(p, h.clock.Now()), nil
}

func (h *Handler) addTask(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddTaskParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	if in.Title == "" {
		return nil, ProjectResponse{}, invalidInput("title is required")
	}

	p, ok := h.projects.Get(in.ProjectID)
	if !ok {
		return nil, ProjectResponse{}, mapError(project.ErrProjectNotFound)
	}

	p.Tasks = append(p.Tasks, project.ChecklistTask{ID: h.newID(), Title: in.Title})
	return h.finishTaskEdit(ctx, p)
}

func (h *Handler) setTaskDone(ctx context.Context, _ *sdkmcp.CallToolRequest, in SetTaskDoneParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	p, ok := h.projects.Get(in.ProjectID)
	if !ok {
		return nil, ProjectResponse{}, mapError(project.ErrProjectNotFound)
	}

	for i := range p.Tasks {
		if p.Tasks[i].ID == in.TaskID {
			p.Tasks[i].Completed = in.Done
		}
	}
	return h.finishTaskEdit(ctx, p)
}

func (h *Handler) removeTask(ctx context.Context, _ *sdkmcp.CallToolRequest, in RemoveTaskParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	p, ok := h.projects.Get(in.ProjectID)
	if !ok {
		return nil, ProjectResponse{}, mapError(project.ErrProjectNotFound)
	}

	kept := p.Tasks[:0]
	for _, t := range p.Tasks {
		if t.ID != in.TaskID {
			kept = append(kept, t)
		}
	}
	p.Tasks = kept
	return h.finishTaskEdit(ctx, p)
}

// finishTaskEdit is the end of a task-editing context: status is recomputed
// from the checklist and the project replaced through the store.
func (h *Handler) finishTaskEdit(ctx context.Context, p project.Project) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	p.Status = project.DeriveStatus(p.Status, p.Tasks)
	h.projects.Update(ctx, p)
	return nil, toProjectResponse(p, h.clock.Now()), nil
}

func (h *Handler) listNotifications(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListNotificationsParams) (*sdkmcp.CallToolResult, NotificationListResponse, error) {
	// Entering the notifications screen runs the catch-up scan first.
	h.notifications.CheckDue(ctx, h.projects.Active())

	out := NotificationListResponse{Notifications: []NotificationResponse{}}
	for _, n := range h.notifications.List() {
		out.Notifications = append(out.Notifications, toNotificationResponse(n))
	}
	return nil, out, nil
}

func (h *Handler) deleteNotification(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteNotificationParams) (*sdkmcp.CallToolResult, EmptyResponse, error) {
	h.notifications.Delete(ctx, in.ID)
	return nil, EmptyResponse{}, nil
}

func (h *Handler) markNotificationRead(ctx context.Context, _ *sdkmcp.CallToolRequest, in MarkNotificationReadParams) (*sdkmcp.CallToolResult, EmptyResponse, error) {
	h.notifications.MarkRead(ctx, in.ID)
	return nil, EmptyResponse{}, nil
}

func (h *Handler) getStatistics(_ context.Context, _ *sdkmcp.CallToolRequest, _ GetStatisticsParams) (*sdkmcp.CallToolResult, StatisticsResponse, error) {
	// The archive is retained for historical statistics, so both collections
	// feed the report.
	snapshot := append(h.projects.Active(), h.projects.Archived()...)
	report := stats.Compute(snapshot, h.clock.Now())

	return nil, StatisticsResponse{
		TotalSpent:     report.TotalSpent,
		TotalBudget:    report.TotalBudget,
		ProjectCount:   report.ProjectCount,
		Categories:     report.Categories,
		Monthly:        report.Monthly,
		PeakMonth:      report.PeakMonth,
		AverageMonthly: report.AverageMonthly,
		BudgetChange:   report.BudgetChange,
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(eventDateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func validateBudget(raw string) error {
	if raw == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
		return invalidInput("budget %q is not a number", raw)
	}
	return nil
}
