package store

import "github.com/AFTLlimited25/Task-AI/pkg/model"

// Update is a tagged request against the store. The set of implementations
// below is closed; every one of them is total and absence of a target record
// is a silent no-op.
type Update interface {
	isUpdate()
}

// SetUser replaces the current user wholesale. A nil user signs out.
type SetUser struct {
	User *model.User
}

// SetGmailConnected flips the gmail connection flag. If a user is present the
// flag is mirrored into the user's connection record.
type SetGmailConnected struct {
	Connected bool
}

// SetCalendarConnected flips the calendar connection flag, mirroring it into
// the user's connection record when a user is present.
type SetCalendarConnected struct {
	Connected bool
}

// AddTask appends a task to the end of the task list. Ids are not deduplicated.
type AddTask struct {
	Task model.Task
}

// UpdateTask merges the supplied fields into the task with the given id and
// refreshes its UpdatedAt timestamp.
type UpdateTask struct {
	ID    string
	Patch model.TaskPatch
}

// DeleteTask removes every task with the given id.
type DeleteTask struct {
	ID string
}

// AddNotification prepends a notification, keeping the list most-recent-first.
type AddNotification struct {
	Notification model.Notification
}

// MarkNotificationRead flips IsRead on the matching notification.
type MarkNotificationRead struct {
	ID string
}

// ClearNotifications empties the notification list.
type ClearNotifications struct{}

func (SetUser) isUpdate()              {}
func (SetGmailConnected) isUpdate()    {}
func (SetCalendarConnected) isUpdate() {}
func (AddTask) isUpdate()              {}
func (UpdateTask) isUpdate()           {}
func (DeleteTask) isUpdate()           {}
func (AddNotification) isUpdate()      {}
func (MarkNotificationRead) isUpdate() {}
func (ClearNotifications) isUpdate()   {}
