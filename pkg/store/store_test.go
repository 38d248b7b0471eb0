package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
)

func newTask(id, title string) model.Task {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return model.Task{
		ID:        id,
		Title:     title,
		Type:      model.TypeReminder,
		Status:    model.StatusPending,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestAddTaskAppendsWithoutDedup(t *testing.T) {
	s := New()

	s.Apply(AddTask{Task: newTask("1", "first")})
	s.Apply(AddTask{Task: newTask("2", "second")})
	s.Apply(AddTask{Task: newTask("1", "duplicate id")})

	snap := s.Snapshot()
	require.Len(t, snap.Tasks, 3)
	assert.Equal(t, "first", snap.Tasks[0].Title)
	assert.Equal(t, "duplicate id", snap.Tasks[2].Title)
}

func TestUpdateTaskMergesPartialFields(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(func() time.Time { return now })

	task := newTask("1", "original title")
	task.Description = "original description"
	s.Apply(AddTask{Task: task})

	status := model.StatusInProgress
	s.Apply(UpdateTask{ID: "1", Patch: model.TaskPatch{Status: &status}})

	snap := s.Snapshot()
	got := snap.Task("1")
	require.NotNil(t, got)
	assert.Equal(t, model.StatusInProgress, got.Status)
	assert.Equal(t, "original title", got.Title)
	assert.Equal(t, "original description", got.Description)
	assert.Equal(t, now, got.UpdatedAt)
}

func TestUpdateTaskRefreshesUpdatedAt(t *testing.T) {
	clock := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(func() time.Time { return clock })

	s.Apply(AddTask{Task: newTask("1", "task")})
	before := s.Snapshot().Task("1").UpdatedAt

	clock = clock.Add(time.Hour)
	title := "renamed"
	s.Apply(UpdateTask{ID: "1", Patch: model.TaskPatch{Title: &title}})

	after := s.Snapshot().Task("1").UpdatedAt
	assert.True(t, !after.Before(before), "UpdatedAt must not move backwards")
	assert.Equal(t, clock, after)
}

func TestUpdateMissingTaskIsNoOp(t *testing.T) {
	s := New()
	s.Apply(AddTask{Task: newTask("1", "only task")})

	title := "should not land anywhere"
	s.Apply(UpdateTask{ID: "missing", Patch: model.TaskPatch{Title: &title}})

	snap := s.Snapshot()
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, "only task", snap.Tasks[0].Title)
}

func TestDeleteMissingTaskLeavesListUnchanged(t *testing.T) {
	s := New()
	s.Apply(AddTask{Task: newTask("1", "first")})
	s.Apply(AddTask{Task: newTask("2", "second")})

	before := s.Snapshot()
	s.Apply(DeleteTask{ID: "missing"})
	after := s.Snapshot()

	require.Len(t, after.Tasks, 2)
	assert.Equal(t, before.Tasks, after.Tasks)
}

func TestDeleteTaskRemovesAllMatches(t *testing.T) {
	s := New()
	s.Apply(AddTask{Task: newTask("1", "first")})
	s.Apply(AddTask{Task: newTask("1", "same id again")})
	s.Apply(AddTask{Task: newTask("2", "second")})

	s.Apply(DeleteTask{ID: "1"})

	snap := s.Snapshot()
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, "2", snap.Tasks[0].ID)
}

func TestAddNotificationPrepends(t *testing.T) {
	s := New()
	s.Apply(AddNotification{Notification: model.Notification{ID: "n1", Message: "older"}})
	s.Apply(AddNotification{Notification: model.Notification{ID: "n2", Message: "newer"}})

	snap := s.Snapshot()
	require.Len(t, snap.Notifications, 2)
	assert.Equal(t, "n2", snap.Notifications[0].ID)
	assert.Equal(t, "n1", snap.Notifications[1].ID)
}

func TestMarkNotificationReadIsIdempotent(t *testing.T) {
	s := New()
	s.Apply(AddNotification{Notification: model.Notification{ID: "n1"}})
	s.Apply(AddNotification{Notification: model.Notification{ID: "n2"}})

	s.Apply(MarkNotificationRead{ID: "n1"})
	once := s.Snapshot()
	s.Apply(MarkNotificationRead{ID: "n1"})
	twice := s.Snapshot()

	assert.Equal(t, once.Notifications, twice.Notifications)
	assert.True(t, twice.Notifications[1].IsRead)
	assert.False(t, twice.Notifications[0].IsRead)
}

func TestMarkMissingNotificationIsNoOp(t *testing.T) {
	s := New()
	s.Apply(AddNotification{Notification: model.Notification{ID: "n1"}})

	s.Apply(MarkNotificationRead{ID: "missing"})

	snap := s.Snapshot()
	require.Len(t, snap.Notifications, 1)
	assert.False(t, snap.Notifications[0].IsRead)
}

func TestClearNotifications(t *testing.T) {
	s := New()
	s.Apply(AddNotification{Notification: model.Notification{ID: "n1"}})
	s.Apply(AddNotification{Notification: model.Notification{ID: "n2"}})

	s.Apply(ClearNotifications{})

	assert.Empty(t, s.Snapshot().Notifications)
}

func TestConnectionFlagsMirrorIntoUser(t *testing.T) {
	s := New()
	s.Apply(SetUser{User: &model.User{ID: "1", Name: "Jane Smith"}})

	s.Apply(SetGmailConnected{Connected: true})
	snap := s.Snapshot()
	assert.True(t, snap.GmailConnected)
	require.NotNil(t, snap.User)
	assert.True(t, snap.User.IsConnected.Gmail)
	assert.False(t, snap.User.IsConnected.Calendar)

	s.Apply(SetCalendarConnected{Connected: true})
	snap = s.Snapshot()
	assert.True(t, snap.CalendarConnected)
	assert.True(t, snap.User.IsConnected.Calendar)
}

func TestConnectionFlagsWithoutUser(t *testing.T) {
	s := New()
	s.Apply(SetGmailConnected{Connected: true})

	snap := s.Snapshot()
	assert.True(t, snap.GmailConnected)
	assert.Nil(t, snap.User)
}

func TestSnapshotIsIsolatedFromLaterUpdates(t *testing.T) {
	s := New()
	s.Apply(AddTask{Task: newTask("1", "first")})

	before := s.Snapshot()
	status := model.StatusCancelled
	s.Apply(UpdateTask{ID: "1", Patch: model.TaskPatch{Status: &status}})
	s.Apply(AddTask{Task: newTask("2", "second")})

	require.Len(t, before.Tasks, 1)
	assert.Equal(t, model.StatusPending, before.Tasks[0].Status)
}
