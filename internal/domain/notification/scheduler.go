package notification

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/radcabna/cosplanner/internal/clock"
	"github.com/radcabna/cosplanner/internal/domain/project"
)

// Milestones are the day-offsets before an event at which reminders fire.
var Milestones = []int{7, 3, 1, 0}

// dedupKey enforces at most one materialized notification per project per
// milestone.
type dedupKey struct {
	projectID string
	daysLeft  int
}

// Scheduler translates a project's event date into reminder instants and owns
// the materialized notification list, most recent first.
type Scheduler struct {
	mu   sync.Mutex
	list []AppNotification
	seen map[dedupKey]struct{}

	col       Collection
	registrar Registrar
	clock     clock.Clock
	logger    *slog.Logger
	newID     func() string
}

// NewScheduler creates a scheduler and loads the persisted notification list.
// A load failure degrades to an empty list.
func NewScheduler(ctx context.Context, col Collection, registrar Registrar, clk clock.Clock, logger *slog.Logger) *Scheduler {
	s := &Scheduler{
		seen:      make(map[dedupKey]struct{}),
		col:       col,
		registrar: registrar,
		clock:     clk,
		logger:    logger,
		newID:     uuid.NewString,
	}

	list, err := col.Load(ctx)
	if err != nil {
		logger.Warn("loading notifications, starting empty", "error", err)
		list = nil
	}
	s.list = list
	for _, n := range list {
		s.seen[dedupKey{n.ProjectID, n.DaysLeft}] = struct{}{}
	}

	return s
}

// SetIDGenerator overrides the notification id generator (tests pin identities).
func (s *Scheduler) SetIDGenerator(gen func() string) {
	s.newID = gen
}

// Schedule registers reminders for every milestone still ahead of the event.
// A milestone whose instant is already today or past materializes immediately;
// a future instant goes to the deferred delivery facility. Registration
// failures are logged and discarded.
func (s *Scheduler) Schedule(ctx context.Context, p project.Project) {
	now := s.clock.Now()
	daysLeft := p.DaysUntilEvent(now)
	if daysLeft < 0 {
		return
	}

	for _, milestone := range Milestones {
		if daysLeft < milestone {
			continue
		}

		notifyAt := p.EventDate.AddDate(0, 0, -milestone)
		if notifyAt.After(now) {
			n := s.build(p, milestone)
			if err := s.registrar.Register(ReminderID(p.ID, milestone), notifyAt, n); err != nil {
				s.logger.Warn("registering reminder", "project_id", p.ID, "milestone", milestone, "error", err)
			}
			continue
		}

		s.Materialize(ctx, p, milestone)
	}
}

// Cancel removes all pending deferred reminders for the project. Materialized
// notifications are untouched.
func (s *Scheduler) Cancel(_ context.Context, projectID string) {
	ids := make([]string, 0, len(Milestones))
	for _, milestone := range Milestones {
		ids = append(ids, ReminderID(projectID, milestone))
	}
	s.registrar.Cancel(ids...)
}

// Materialize records a due reminder as a visible notification at the front of
// the list. Idempotent per (project, daysLeft) pair.
func (s *Scheduler) Materialize(ctx context.Context, p project.Project, daysLeft int) {
	s.insert(ctx, s.build(p, daysLeft))
}

// Deliver accepts a reminder fired by the deferred delivery facility.
func (s *Scheduler) Deliver(n AppNotification) {
	n.ID = s.newID()
	n.Date = s.clock.Now()
	s.insert(context.Background(), n)
}

// CheckDue is the catch-up scan run on entering the notifications screen: any
// active project sitting exactly on a milestone day gets a notification,
// subject to the usual dedup.
func (s *Scheduler) CheckDue(ctx context.Context, projects []project.Project) {
	now := s.clock.Now()
	for _, p := range projects {
		daysLeft := p.DaysUntilEvent(now)
		if daysLeft == 7 || daysLeft == 3 || daysLeft == 1 || daysLeft == 0 {
			if daysLeft < 0 {
				daysLeft = 0
			}
			s.Materialize(ctx, p, daysLeft)
		}
	}
}

// List returns a copy of the notification list, most recent first.
func (s *Scheduler) List() []AppNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]AppNotification(nil), s.list...)
}

// Delete removes a single materialized notification. Future scheduling is
// unaffected, and the (project, daysLeft) pair becomes eligible again.
func (s *Scheduler) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.list[:0]
	for _, n := range s.list {
		if n.ID == id {
			delete(s.seen, dedupKey{n.ProjectID, n.DaysLeft})
			continue
		}
		kept = append(kept, n)
	}
	s.list = kept
	s.persist(ctx)
}

// MarkRead flags a notification as read. A miss is a silent no-op.
func (s *Scheduler) MarkRead(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		if s.list[i].ID == id {
			s.list[i].Read = true
			s.persist(ctx)
			return
		}
	}
}

func (s *Scheduler) build(p project.Project, daysLeft int) AppNotification {
	return AppNotification{
		ID:          s.newID(),
		ProjectID:   p.ID,
		ProjectName: p.Name,
		EventName:   p.EventName,
		DaysLeft:    daysLeft,
		Date:        s.clock.Now(),
	}
}

func (s *Scheduler) insert(ctx context.Context, n AppNotification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dedupKey{n.ProjectID, n.DaysLeft}
	if _, exists := s.seen[key]; exists {
		return
	}
	s.seen[key] = struct{}{}
	s.list = append([]AppNotification{n}, s.list...)
	s.persist(ctx)
}

// persist writes through to storage; callers hold the lock. Failures are
// logged and swallowed.
func (s *Scheduler) persist(ctx context.Context) {
	if err := s.col.Save(ctx, s.list); err != nil {
		s.logger.Warn("saving notifications", "error", err)
	}
}
