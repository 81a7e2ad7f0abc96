// Package mocks provides hand-written testify mocks for the persistence and
// scheduling seams.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/radcabna/cosplanner/internal/domain/notification"
	"github.com/radcabna/cosplanner/internal/domain/project"
)

// KV is a mock for repository.KV.
type KV struct {
	mock.Mock
}

func (m *KV) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *KV) Put(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// ProjectCollection is a mock for project.Collection.
type ProjectCollection struct {
	mock.Mock
}

func (m *ProjectCollection) Load(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectCollection) Save(ctx context.Context, projects []project.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

// NotificationCollection is a mock for notification.Collection.
type NotificationCollection struct {
	mock.Mock
}

func (m *NotificationCollection) Load(ctx context.Context) ([]notification.AppNotification, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]notification.AppNotification); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationCollection) Save(ctx context.Context, notifications []notification.AppNotification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

// Scheduler is a mock for project.Scheduler.
type Scheduler struct {
	mock.Mock
}

func (m *Scheduler) Schedule(ctx context.Context, p project.Project) {
	m.Called(ctx, p)
}

func (m *Scheduler) Cancel(ctx context.Context, projectID string) {
	m.Called(ctx, projectID)
}

// Registrar is a mock for notification.Registrar.
type Registrar struct {
	mock.Mock
}

func (m *Registrar) Register(id string, at time.Time, n notification.AppNotification) error {
	args := m.Called(id, at, n)
	return args.Error(0)
}

func (m *Registrar) Cancel(ids ...string) {
	m.Called(ids)
}
