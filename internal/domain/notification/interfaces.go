package notification

import (
	"context"
	"time"
)

// Collection persists the ordered notification list as one blob.
type Collection interface {
	Load(ctx context.Context) ([]AppNotification, error)
	Save(ctx context.Context, notifications []AppNotification) error
}

// Registrar is the deferred-reminder delivery facility. Registration is
// best-effort: no confirmation, no retry. Registering an id that is already
// pending replaces it.
type Registrar interface {
	Register(id string, at time.Time, n AppNotification) error
	Cancel(ids ...string)
}
