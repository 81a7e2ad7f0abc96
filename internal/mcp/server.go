package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/radcabna/cosplanner/internal/clock"
	"github.com/radcabna/cosplanner/internal/domain/notification"
	"github.com/radcabna/cosplanner/internal/domain/project"
)

const serverInstructions = `Cosplanner tracks cosplay builds: each project ties a costume to an event
date and a budget. Log expenses against categories, keep a task checklist
(status derives from completion), and read notifications and spending
statistics. Use list_projects to orient, get_statistics for reporting.`

// Config contains server configuration.
type Config struct {
	Projects      *project.Store
	Notifications *notification.Scheduler
	Clock         clock.Clock
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "cosplanner",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, NewHandler(cfg.Projects, cfg.Notifications, cfg.Clock))

	return server
}

func registerTools(server *sdkmcp.Server, h *Handler) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a cosplay project tied to an event date and budget; it starts in planning",
	}, h.createProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List active projects, optionally filtered by status (planning, active, completed)",
	}, h.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get one project with its expenses, checklist, and derived budget fields",
	}, h.getProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Update project fields; reminders are rescheduled if the event date moves",
	}, h.updateProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project; it moves to the archive and pending reminders are cancelled",
	}, h.deleteProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_archive",
		Description: "List archived (deleted) projects, most recently deleted first",
	}, h.listArchive)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_expense",
		Description: "Log an expense against a project (categories: Fabric & Outfit, Wig & Hair, Design & Paint, Other)",
	}, h.addExpense)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_expense",
		Description: "Remove a logged expense from a project",
	}, h.removeExpense)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_task",
		Description: "Add a checklist task to a project",
	}, h.addTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_task_done",
		Description: "Check or uncheck a checklist task; project status is recomputed",
	}, h.setTaskDone)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_task",
		Description: "Remove a checklist task; project status is recomputed",
	}, h.removeTask)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_notifications",
		Description: "List reminder notifications, newest first; runs the due-reminder catch-up scan first",
	}, h.listNotifications)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_notification",
		Description: "Delete one notification from the list (future reminders are unaffected)",
	}, h.deleteNotification)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "mark_notification_read",
		Description: "Mark a notification as read",
	}, h.markNotificationRead)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_statistics",
		Description: "Spending statistics: category totals, trailing six-month totals, peak and average month, budget change vs last month",
	}, h.getStatistics)
}
