package model

import "time"

// TaskPatch is a partial task update. Nil fields are left untouched; the
// JSON form is the wire shape the backend accepts on PATCH.
type TaskPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Type        *TaskType     `json:"type,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	Actions     []TaskAction  `json:"actions,omitempty"`
}

// Apply merges the supplied fields into a copy of the task. Timestamps are
// the caller's business: the merge itself does not touch UpdatedAt.
func (p TaskPatch) Apply(task Task) Task {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Type != nil {
		task.Type = *p.Type
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.DueDate != nil {
		due := *p.DueDate
		task.DueDate = &due
	}
	if p.CompletedAt != nil {
		completed := *p.CompletedAt
		task.CompletedAt = &completed
	}
	if p.Actions != nil {
		task.Actions = p.Actions
	}
	return task
}

// ProfilePatch is a partial user update, keyed by id at the call site.
type ProfilePatch struct {
	Name        *string      `json:"name,omitempty"`
	Avatar      *string      `json:"avatar,omitempty"`
	IsConnected *Connections `json:"is_connected,omitempty"`
}

// Apply merges the supplied fields into a copy of the user.
func (p ProfilePatch) Apply(user User) User {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Avatar != nil {
		user.Avatar = *p.Avatar
	}
	if p.IsConnected != nil {
		user.IsConnected = *p.IsConnected
	}
	return user
}
