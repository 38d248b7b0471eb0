// Package store holds the authoritative in-memory state for the current
// session. Views read immutable snapshots and emit update requests; a pure
// reducer turns the previous snapshot plus one request into the next one.
package store

import (
	"sync"
	"time"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
)

// Snapshot is a point-in-time copy of the full application state. It is
// replaced wholesale on every transition and must be treated as read-only.
type Snapshot struct {
	GmailConnected    bool
	CalendarConnected bool
	User              *model.User
	Tasks             []model.Task
	Notifications     []model.Notification
}

// Task returns the task with the given id, or nil.
func (s Snapshot) Task(id string) *model.Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// Store owns the canonical session state. It is the single ownership root:
// callers get snapshots out and hand update requests in, nothing else.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	now  func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock lets tests pin the timestamp used for UpdatedAt refreshes.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Snapshot returns a copy of the current state safe for concurrent readers.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySnapshot(s.snap)
}

// Apply runs one update through the reducer and installs the result. Updates
// are total: they never fail, a missing target id is a silent no-op.
func (s *Store) Apply(u Update) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = reduce(s.snap, u, s.now())
}

func copySnapshot(snap Snapshot) Snapshot {
	out := snap
	if snap.User != nil {
		u := *snap.User
		out.User = &u
	}
	out.Tasks = append([]model.Task(nil), snap.Tasks...)
	out.Notifications = append([]model.Notification(nil), snap.Notifications...)
	return out
}

// reduce is the pure transition function. It never mutates the previous
// snapshot: task and notification lists are rebuilt whenever they change.
func reduce(snap Snapshot, u Update, now time.Time) Snapshot {
	switch u := u.(type) {
	case SetUser:
		snap.User = u.User

	case SetGmailConnected:
		snap.GmailConnected = u.Connected
		if snap.User != nil {
			user := *snap.User
			user.IsConnected.Gmail = u.Connected
			snap.User = &user
		}

	case SetCalendarConnected:
		snap.CalendarConnected = u.Connected
		if snap.User != nil {
			user := *snap.User
			user.IsConnected.Calendar = u.Connected
			snap.User = &user
		}

	case AddTask:
		tasks := make([]model.Task, 0, len(snap.Tasks)+1)
		tasks = append(tasks, snap.Tasks...)
		snap.Tasks = append(tasks, u.Task)

	case UpdateTask:
		tasks := make([]model.Task, len(snap.Tasks))
		for i, task := range snap.Tasks {
			if task.ID == u.ID {
				task = u.Patch.Apply(task)
				task.UpdatedAt = now
			}
			tasks[i] = task
		}
		snap.Tasks = tasks

	case DeleteTask:
		tasks := make([]model.Task, 0, len(snap.Tasks))
		for _, task := range snap.Tasks {
			if task.ID != u.ID {
				tasks = append(tasks, task)
			}
		}
		snap.Tasks = tasks

	case AddNotification:
		notifications := make([]model.Notification, 0, len(snap.Notifications)+1)
		notifications = append(notifications, u.Notification)
		snap.Notifications = append(notifications, snap.Notifications...)

	case MarkNotificationRead:
		notifications := make([]model.Notification, len(snap.Notifications))
		for i, n := range snap.Notifications {
			if n.ID == u.ID {
				n.IsRead = true
			}
			notifications[i] = n
		}
		snap.Notifications = notifications

	case ClearNotifications:
		snap.Notifications = nil
	}
	return snap
}
