package repository

import "context"

// Storage keys for the three persisted collections.
const (
	KeySavedProjects      = "savedProjects"
	KeyArchivedProjects   = "archivedProjects"
	KeySavedNotifications = "savedNotifications"
)

// KV is the local key-value storage the collection gateways write through.
type KV interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores the blob under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}
