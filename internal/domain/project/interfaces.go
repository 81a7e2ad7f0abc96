package project

import "context"

// Collection persists an ordered list of projects as one blob.
type Collection interface {
	Load(ctx context.Context) ([]Project, error)
	Save(ctx context.Context, projects []Project) error
}

// Scheduler receives reminder side effects when the active collection changes.
type Scheduler interface {
	Schedule(ctx context.Context, p Project)
	Cancel(ctx context.Context, projectID string)
}
