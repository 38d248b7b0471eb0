package model

import "time"

// TaskType classifies where a task came from / what kind of life-admin work it is.
type TaskType string

const (
	TypeEmailFollowup TaskType = "email_followup"
	TypeAppointment   TaskType = "appointment"
	TypeSubscription  TaskType = "subscription"
	TypeRefund        TaskType = "refund"
	TypeReminder      TaskType = "reminder"
	TypeOther         TaskType = "other"
)

// TaskTypes lists every known task type, in display order.
var TaskTypes = []TaskType{
	TypeEmailFollowup,
	TypeAppointment,
	TypeSubscription,
	TypeRefund,
	TypeReminder,
	TypeOther,
}

// TaskStatus is a plain label. Any status may follow any other; there is no
// enforced transition graph.
type TaskStatus string

const (
	StatusPending         TaskStatus = "pending"
	StatusInProgress      TaskStatus = "in_progress"
	StatusWaitingResponse TaskStatus = "waiting_response"
	StatusCompleted       TaskStatus = "completed"
	StatusCancelled       TaskStatus = "cancelled"
)

// TaskStatuses lists every known task status.
var TaskStatuses = []TaskStatus{
	StatusPending,
	StatusInProgress,
	StatusWaitingResponse,
	StatusCompleted,
	StatusCancelled,
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type ActionStatus string

const (
	ActionPending   ActionStatus = "pending"
	ActionCompleted ActionStatus = "completed"
	ActionFailed    ActionStatus = "failed"
)

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

// Connections records which external accounts have been linked.
type Connections struct {
	Gmail    bool `json:"gmail"`
	Calendar bool `json:"calendar"`
}

type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Avatar      string      `json:"avatar,omitempty"`
	IsConnected Connections `json:"is_connected"`
}

type Task struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Type          TaskType       `json:"type"`
	Status        TaskStatus     `json:"status"`
	Priority      TaskPriority   `json:"priority,omitempty"`
	DueDate       *time.Time     `json:"due_date,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	RelatedEmails []RelatedEmail `json:"related_emails,omitempty"`
	RelatedEvents []RelatedEvent `json:"related_events,omitempty"`
	Actions       []TaskAction   `json:"actions"`
}

// Action returns the action with the given id, or nil.
func (t *Task) Action(id string) *TaskAction {
	for i := range t.Actions {
		if t.Actions[i].ID == id {
			return &t.Actions[i]
		}
	}
	return nil
}

// PendingActions returns the actions that have not completed yet.
func (t *Task) PendingActions() []TaskAction {
	var out []TaskAction
	for _, a := range t.Actions {
		if a.Status != ActionCompleted {
			out = append(out, a)
		}
	}
	return out
}

// CompletedActions returns the actions that have completed.
func (t *Task) CompletedActions() []TaskAction {
	var out []TaskAction
	for _, a := range t.Actions {
		if a.Status == ActionCompleted {
			out = append(out, a)
		}
	}
	return out
}

// RelatedEmail is a read-only denormalized reference attached at task creation.
type RelatedEmail struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Sender     string    `json:"sender"`
	ReceivedAt time.Time `json:"received_at"`
	Snippet    string    `json:"snippet"`
	IsRead     bool      `json:"is_read"`
}

// RelatedEvent is a read-only denormalized reference attached at task creation.
type RelatedEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Location  string    `json:"location,omitempty"`
	Attendees []string  `json:"attendees,omitempty"`
}

type Notification struct {
	ID            string           `json:"id"`
	Type          NotificationType `json:"type"`
	Message       string           `json:"message"`
	Timestamp     time.Time        `json:"timestamp"`
	IsRead        bool             `json:"is_read"`
	RelatedTaskID string           `json:"related_task_id,omitempty"`
}
