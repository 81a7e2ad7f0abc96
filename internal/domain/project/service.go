package project

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Store is the in-memory authoritative collection of projects. Every mutation
// writes the whole affected collection back through the persistence gateway;
// write failures are logged and swallowed, never surfaced to the caller.
type Store struct {
	mu      sync.Mutex
	active  []Project
	archive []Project

	saved     Collection
	archived  Collection
	scheduler Scheduler
	logger    *slog.Logger
	newID     func() string
}

// NewStore creates a store and loads both collections. Load failures degrade
// to empty collections.
func NewStore(ctx context.Context, saved, archived Collection, scheduler Scheduler, logger *slog.Logger) *Store {
	s := &Store{
		saved:     saved,
		archived:  archived,
		scheduler: scheduler,
		logger:    logger,
		newID:     uuid.NewString,
	}

	var err error
	if s.active, err = saved.Load(ctx); err != nil {
		s.logger.Warn("loading projects, starting empty", "error", err)
		s.active = nil
	}
	if s.archive, err = archived.Load(ctx); err != nil {
		s.logger.Warn("loading archived projects, starting empty", "error", err)
		s.archive = nil
	}

	return s
}

// SetIDGenerator overrides the project id generator (tests pin identities).
func (s *Store) SetIDGenerator(gen func() string) {
	s.newID = gen
}

// Add appends a project to the active collection, persists it, and schedules
// reminders. An empty id is assigned; a new project always starts in planning.
func (s *Store) Add(ctx context.Context, p Project) Project {
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.Status == "" {
		p.Status = StatusPlanning
	}

	s.mu.Lock()
	s.active = append(s.active, p.Clone())
	s.persistActive(ctx)
	s.mu.Unlock()

	s.scheduler.Schedule(ctx, p)
	return p
}

// Update replaces the active entry matching p.ID, persists, and reschedules
// reminders. A miss is a silent no-op.
func (s *Store) Update(ctx context.Context, p Project) {
	s.mu.Lock()
	idx := -1
	for i := range s.active {
		if s.active[i].ID == p.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.active[idx] = p.Clone()
	s.persistActive(ctx)
	s.mu.Unlock()

	// The event date may have moved: cancel, then schedule from scratch.
	s.scheduler.Cancel(ctx, p.ID)
	s.scheduler.Schedule(ctx, p)
}

// Delete removes the project from the active collection and inserts it at the
// front of the archive. Pending reminders are cancelled; already-materialized
// notifications are left alone.
func (s *Store) Delete(ctx context.Context, p Project) {
	s.mu.Lock()
	kept := s.active[:0]
	for _, existing := range s.active {
		if existing.ID != p.ID {
			kept = append(kept, existing)
		}
	}
	s.active = kept

	s.archive = append([]Project{p.Clone()}, s.archive...)

	s.persistActive(ctx)
	s.persistArchive(ctx)
	s.mu.Unlock()

	s.scheduler.Cancel(ctx, p.ID)
}

// Get returns a copy of the active project with the given id.
func (s *Store) Get(id string) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.active {
		if s.active[i].ID == id {
			return s.active[i].Clone(), true
		}
	}
	return Project{}, false
}

// Active returns a copy of the active collection in insertion order.
func (s *Store) Active() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.active)
}

// Archived returns a copy of the archive, most recently deleted first.
func (s *Store) Archived() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.archive)
}

func (s *Store) persistActive(ctx context.Context) {
	if err := s.saved.Save(ctx, s.active); err != nil {
		s.logger.Warn("saving projects", "error", err)
	}
}

func (s *Store) persistArchive(ctx context.Context) {
	if err := s.archived.Save(ctx, s.archive); err != nil {
		s.logger.Warn("saving archived projects", "error", err)
	}
}

func cloneAll(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i := range projects {
		out[i] = projects[i].Clone()
	}
	return out
}
