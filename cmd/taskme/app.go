package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AFTLlimited25/Task-AI/pkg/auth"
	"github.com/AFTLlimited25/Task-AI/pkg/config"
	"github.com/AFTLlimited25/Task-AI/pkg/gateway"
	"github.com/AFTLlimited25/Task-AI/pkg/model"
	"github.com/AFTLlimited25/Task-AI/pkg/seed"
	"github.com/AFTLlimited25/Task-AI/pkg/store"
)

// App is the composition root: it owns the state store and hands update
// requests into it, invoking the gateways out-of-band to persist changes.
// Views only ever see snapshots.
type App struct {
	store   *store.Store
	tasks   *gateway.Tasks
	auth    *gateway.Auth
	session *auth.Session
	log     *logrus.Logger
}

func newApp() *App {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config: %v", err)
	}

	session, err := auth.Load()
	if err != nil {
		log.WithError(err).Warn("could not load cached session, continuing signed out")
	}

	client := gateway.NewClient(cfg.BackendURL, session.Client(context.Background()), log)
	return &App{
		store:   store.New(),
		tasks:   gateway.NewTasks(client),
		auth:    gateway.NewAuth(client),
		session: session,
		log:     log,
	}
}

// bootstrap populates the store. Signed out, the demo seed stands in for the
// ingestion pipeline; signed in, profile and tasks come from the backend,
// falling back to the seed when the backend is unreachable.
func (a *App) bootstrap(ctx context.Context) {
	if a.session == nil {
		seed.Demo(time.Now()).Apply(a.store)
		return
	}

	user, err := a.auth.Profile(ctx, a.session.UserID)
	if err != nil {
		a.log.WithError(err).Warn("profile fetch failed, seeding demo data")
		seed.Demo(time.Now()).Apply(a.store)
		return
	}
	a.store.Apply(store.SetUser{User: user})
	a.store.Apply(store.SetGmailConnected{Connected: user.IsConnected.Gmail})
	a.store.Apply(store.SetCalendarConnected{Connected: user.IsConnected.Calendar})

	tasks, err := a.tasks.List(ctx)
	if err != nil {
		a.log.WithError(err).Warn("task list fetch failed")
		return
	}
	for _, t := range tasks {
		a.store.Apply(store.AddTask{Task: t})
	}
}

func (a *App) notify(typ model.NotificationType, message, relatedTaskID string) {
	a.store.Apply(store.AddNotification{Notification: model.Notification{
		ID:            uuid.New().String(),
		Type:          typ,
		Message:       message,
		Timestamp:     time.Now(),
		IsRead:        false,
		RelatedTaskID: relatedTaskID,
	}})
}

// pushUpdate persists a task patch out-of-band. A failure never rolls the
// store back; it only lands in the gateway's error slot and the log.
func (a *App) pushUpdate(ctx context.Context, id string, patch model.TaskPatch) {
	if a.session == nil {
		return
	}
	if _, err := a.tasks.Update(ctx, id, patch); err != nil {
		a.log.WithError(err).WithField("task_id", id).Warn("failed to persist task update")
	}
}

func (a *App) pushCreate(ctx context.Context, task model.Task) {
	if a.session == nil {
		return
	}
	if _, err := a.tasks.Create(ctx, task); err != nil {
		a.log.WithError(err).WithField("task_id", task.ID).Warn("failed to persist new task")
	}
}

func (a *App) pushDelete(ctx context.Context, id string) {
	if a.session == nil {
		return
	}
	if err := a.tasks.Delete(ctx, id); err != nil {
		a.log.WithError(err).WithField("task_id", id).Warn("failed to persist task deletion")
	}
}

// pushConnections mirrors the connection flags into the backend profile row.
func (a *App) pushConnections(ctx context.Context) {
	if a.session == nil {
		return
	}
	snap := a.store.Snapshot()
	if snap.User == nil {
		return
	}
	connected := snap.User.IsConnected
	if _, err := a.auth.UpdateProfile(ctx, snap.User.ID, model.ProfilePatch{IsConnected: &connected}); err != nil {
		a.log.WithError(err).Warn("failed to persist connection flags")
	}
}
