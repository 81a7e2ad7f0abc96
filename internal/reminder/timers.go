// Package reminder is the deferred-reminder delivery facility: reminders are
// registered by instant, cancelled by identifier, and handed back to the sink
// when their instant arrives. Delivery is best-effort.
package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/radcabna/cosplanner/internal/domain/notification"
)

// Sink receives reminders whose instant has arrived.
type Sink interface {
	Deliver(n notification.AppNotification)
}

// Timers delivers reminders with in-process timers. Registering an identifier
// that is already pending replaces the earlier registration.
type Timers struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
	sink    Sink
	logger  *slog.Logger
}

// NewTimers creates an empty timer registry.
func NewTimers(logger *slog.Logger) *Timers {
	return &Timers{
		pending: make(map[string]*time.Timer),
		logger:  logger,
	}
}

// SetSink wires the delivery target. Must be called before any timer fires.
func (t *Timers) SetSink(sink Sink) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sink = sink
}

// Register schedules n for delivery at the given instant.
func (t *Timers) Register(id string, at time.Time, n notification.AppNotification) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.pending[id]; ok {
		existing.Stop()
	}

	t.pending[id] = time.AfterFunc(time.Until(at), func() {
		t.fire(id, n)
	})
	t.logger.Debug("reminder registered", "id", id, "at", at)
	return nil
}

// Cancel drops pending registrations. Unknown identifiers are ignored.
func (t *Timers) Cancel(ids ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range ids {
		if timer, ok := t.pending[id]; ok {
			timer.Stop()
			delete(t.pending, id)
		}
	}
}

// Close stops all pending timers.
func (t *Timers) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, timer := range t.pending {
		timer.Stop()
		delete(t.pending, id)
	}
}

// RequestPermission asks the host for delivery rights. In-process timers need
// no grant, so this only logs; the outcome never gates scheduling.
func (t *Timers) RequestPermission(_ context.Context) error {
	t.logger.Info("notification permission granted")
	return nil
}

func (t *Timers) fire(id string, n notification.AppNotification) {
	t.mu.Lock()
	delete(t.pending, id)
	sink := t.sink
	t.mu.Unlock()

	if sink == nil {
		t.logger.Warn("reminder fired with no sink", "id", id)
		return
	}
	sink.Deliver(n)
}
