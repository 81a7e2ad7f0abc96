package mcp

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/radcabna/cosplanner/internal/clock"
	"github.com/radcabna/cosplanner/internal/domain/notification"
	"github.com/radcabna/cosplanner/internal/domain/project"
	"github.com/radcabna/cosplanner/internal/repository/mocks"
)

var handlerNow = time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

// newTestHandler wires a real store and scheduler over mock persistence so
// tool calls exercise the full model layer.
func newTestHandler(t *testing.T) (*Handler, *mocks.Registrar) {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)
	clk := clock.Fixed(handlerNow)

	saved := &mocks.ProjectCollection{}
	archived := &mocks.ProjectCollection{}
	notifCol := &mocks.NotificationCollection{}
	saved.On("Load", mock.Anything).Return([]project.Project(nil), nil)
	saved.On("Save", mock.Anything, mock.Anything).Return(nil)
	archived.On("Load", mock.Anything).Return([]project.Project(nil), nil)
	archived.On("Save", mock.Anything, mock.Anything).Return(nil)
	notifCol.On("Load", mock.Anything).Return([]notification.AppNotification(nil), nil)
	notifCol.On("Save", mock.Anything, mock.Anything).Return(nil)

	registrar := &mocks.Registrar{}
	registrar.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	registrar.On("Cancel", mock.Anything).Return()

	scheduler := notification.NewScheduler(ctx, notifCol, registrar, clk, logger)
	store := project.NewStore(ctx, saved, archived, scheduler, logger)

	return NewHandler(store, scheduler, clk), registrar
}

func mustCreate(t *testing.T, h *Handler, params CreateProjectParams) ProjectResponse {
	t.Helper()
	_, resp, err := h.createProject(context.Background(), nil, params)
	require.NoError(t, err)
	return resp
}

func TestHandler_CreateProject(t *testing.T) {
	h, _ := newTestHandler(t)

	resp := mustCreate(t, h, CreateProjectParams{
		Name:      "Jinx",
		Source:    "Arcane",
		EventName: "WinterCon",
		Budget:    "350",
		EventDate: "2026-07-11",
	})

	require.NotEmpty(t, resp.ID)
	require.Equal(t, string(project.StatusPlanning), resp.Status)
	require.Equal(t, 350.0, resp.TotalBudget)
	require.Equal(t, 10, resp.DaysLeft)
}

func TestHandler_CreateProjectValidation(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	_, _, err := h.createProject(ctx, nil, CreateProjectParams{EventName: "X", EventDate: "2026-07-11"})
	require.ErrorContains(t, err, "name is required")

	_, _, err = h.createProject(ctx, nil, CreateProjectParams{Name: "X", EventName: "Y", EventDate: "not a date"})
	require.ErrorContains(t, err, "event_date")

	// Malformed budget is rejected at the form boundary, not the store.
	_, _, err = h.createProject(ctx, nil, CreateProjectParams{Name: "X", EventName: "Y", EventDate: "2026-07-11", Budget: "lots"})
	require.ErrorContains(t, err, "not a number")
}

func TestHandler_UpdateProjectMovesEventDate(t *testing.T) {
	h, registrar := newTestHandler(t)
	ctx := context.Background()

	created := mustCreate(t, h, CreateProjectParams{Name: "Jinx", EventName: "WinterCon", EventDate: "2026-07-11"})

	newDate := "2026-08-01"
	_, resp, err := h.updateProject(ctx, nil, UpdateProjectParams{ID: created.ID, EventDate: &newDate})
	require.NoError(t, err)
	require.Equal(t, "2026-08-01", resp.EventDate)

	// The update path cancels all milestone keys, then schedules anew.
	registrar.AssertCalled(t, "Cancel", []string{
		created.ID + "-7", created.ID + "-3", created.ID + "-1", created.ID + "-0",
	})
}

func TestHandler_UpdateMissingProject(t *testing.T) {
	h, _ := newTestHandler(t)
	name := "ghost"
	_, _, err := h.updateProject(context.Background(), nil, UpdateProjectParams{ID: "nope", Name: &name})
	require.ErrorContains(t, err, "not_found")
}

func TestHandler_DeleteProjectArchives(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	created := mustCreate(t, h, CreateProjectParams{Name: "Jinx", EventName: "WinterCon", EventDate: "2026-07-11"})

	_, _, err := h.deleteProject(ctx, nil, DeleteProjectParams{ID: created.ID})
	require.NoError(t, err)

	_, active, err := h.listProjects(ctx, nil, ListProjectsParams{})
	require.NoError(t, err)
	require.Empty(t, active.Projects)

	_, archive, err := h.listArchive(ctx, nil, ListArchiveParams{})
	require.NoError(t, err)
	require.Len(t, archive.Projects, 1)
	require.Equal(t, created.ID, archive.Projects[0].ID)
}

func TestHandler_AddExpenseValidation(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()
	created := mustCreate(t, h, CreateProjectParams{Name: "Jinx", EventName: "WinterCon", EventDate: "2026-07-11"})

	_, _, err := h.addExpense(ctx, nil, AddExpenseParams{ProjectID: created.ID, Item: "Dye", Amount: -5, Category: "Other"})
	require.ErrorContains(t, err, "negative")

	_, _, err = h.addExpense(ctx, nil, AddExpenseParams{ProjectID: created.ID, Item: "Dye", Amount: 5, Category: "Snacks"})
	require.ErrorContains(t, err, "unknown category")
}

func TestHandler_ExpenseFlow(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()
	created := mustCreate(t, h, CreateProjectParams{Name: "Jinx", EventName: "WinterCon", Budget: "100", EventDate: "2026-07-11"})

	_, resp, err := h.addExpense(ctx, nil, AddExpenseParams{
		ProjectID: created.ID, Store: "Fabric World", Item: "Blue dye",
		Amount: 30, Category: "Design & Paint",
	})
	require.NoError(t, err)
	require.Equal(t, 30.0, resp.TotalSpent)
	require.Equal(t, 70.0, resp.RemainingBudget)
	require.Len(t, resp.Expenses, 1)

	_, resp, err = h.removeExpense(ctx, nil, RemoveExpenseParams{ProjectID: created.ID, ExpenseID: resp.Expenses[0].ID})
	require.NoError(t, err)
	require.Empty(t, resp.Expenses)
	require.Equal(t, 100.0, resp.RemainingBudget)
}

func TestHandler_TaskFlowDerivesStatus(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()
	created := mustCreate(t, h, CreateProjectParams{Name: "Jinx", EventName: "WinterCon", EventDate: "2026-07-11"})

	_, resp, err := h.addTask(ctx, nil, AddTaskParams{ProjectID: created.ID, Title: "Style wig"})
	require.NoError(t, err)
	_, resp, err = h.addTask(ctx, nil, AddTaskParams{ProjectID: created.ID, Title: "Sew jacket"})
	require.NoError(t, err)
	require.Equal(t, string(project.StatusPlanning), resp.Status)

	first, second := resp.Tasks[0].ID, resp.Tasks[1].ID

	_, resp, err = h.setTaskDone(ctx, nil, SetTaskDoneParams{ProjectID: created.ID, TaskID: first, Done: true})
	require.NoError(t, err)
	require.Equal(t, string(project.StatusActive), resp.Status)
	require.Equal(t, 50.0, resp.CompletionPercent)

	_, resp, err = h.setTaskDone(ctx, nil, SetTaskDoneParams{ProjectID: created.ID, TaskID: second, Done: true})
	require.NoError(t, err)
	require.Equal(t, string(project.StatusCompleted), resp.Status)
	require.Equal(t, 100.0, resp.CompletionPercent)

	_, resp, err = h.setTaskDone(ctx, nil, SetTaskDoneParams{ProjectID: created.ID, TaskID: first, Done: false})
	require.NoError(t, err)
	require.Equal(t, string(project.StatusActive), resp.Status)
}

func TestHandler_ListProjectsStatusFilter(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	mustCreate(t, h, CreateProjectParams{Name: "One", EventName: "A", EventDate: "2026-07-11"})
	done := mustCreate(t, h, CreateProjectParams{Name: "Two", EventName: "B", EventDate: "2026-07-11"})
	_, resp, err := h.addTask(ctx, nil, AddTaskParams{ProjectID: done.ID, Title: "only task"})
	require.NoError(t, err)
	_, _, err = h.setTaskDone(ctx, nil, SetTaskDoneParams{ProjectID: done.ID, TaskID: resp.Tasks[0].ID, Done: true})
	require.NoError(t, err)

	_, completed, err := h.listProjects(ctx, nil, ListProjectsParams{Status: "completed"})
	require.NoError(t, err)
	require.Len(t, completed.Projects, 1)
	require.Equal(t, "Two", completed.Projects[0].Name)

	_, _, err = h.listProjects(ctx, nil, ListProjectsParams{Status: "paused"})
	require.ErrorContains(t, err, "unknown status")
}

func TestHandler_NotificationsCatchUpOnList(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	// Exactly three whole days out lands on a milestone day.
	mustCreate(t, h, CreateProjectParams{Name: "Jinx", EventName: "WinterCon", EventDate: "2026-07-04"})

	_, resp, err := h.listNotifications(ctx, nil, ListNotificationsParams{})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	require.Equal(t, 3, resp.Notifications[0].DaysLeft)
	require.Contains(t, resp.Notifications[0].Message, "WinterCon")

	// Mark read, then delete.
	id := resp.Notifications[0].ID
	_, _, err = h.markNotificationRead(ctx, nil, MarkNotificationReadParams{ID: id})
	require.NoError(t, err)
	_, resp, err = h.listNotifications(ctx, nil, ListNotificationsParams{})
	require.NoError(t, err)
	require.True(t, resp.Notifications[0].Read)

	_, _, err = h.deleteNotification(ctx, nil, DeleteNotificationParams{ID: id})
	require.NoError(t, err)
}

func TestHandler_StatisticsIncludeArchive(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	kept := mustCreate(t, h, CreateProjectParams{Name: "Kept", EventName: "A", Budget: "200", EventDate: "2026-07-20"})
	_, _, err := h.addExpense(ctx, nil, AddExpenseParams{ProjectID: kept.ID, Item: "Dye", Amount: 100, Category: "Fabric & Outfit"})
	require.NoError(t, err)

	gone := mustCreate(t, h, CreateProjectParams{Name: "Gone", EventName: "B", Budget: "50", EventDate: "2026-07-25"})
	_, _, err = h.addExpense(ctx, nil, AddExpenseParams{ProjectID: gone.ID, Item: "Wig", Amount: 50, Category: "Wig & Hair"})
	require.NoError(t, err)
	_, _, err = h.deleteProject(ctx, nil, DeleteProjectParams{ID: gone.ID})
	require.NoError(t, err)

	_, resp, err := h.getStatistics(ctx, nil, GetStatisticsParams{})
	require.NoError(t, err)
	require.Equal(t, 2, resp.ProjectCount)
	require.Equal(t, 150.0, resp.TotalSpent)
	require.Equal(t, 250.0, resp.TotalBudget)
	require.Equal(t, 100.0, resp.Categories[0].Amount)
	require.Equal(t, 50.0, resp.Categories[1].Amount)
	require.Equal(t, 150.0/6, resp.AverageMonthly)
	require.Equal(t, "+100% vs last month", resp.BudgetChange)
}
