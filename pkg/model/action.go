package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type ActionType string

const (
	ActionSendEmail     ActionType = "send_email"
	ActionScheduleEvent ActionType = "schedule_event"
	ActionMakeCall      ActionType = "make_call"
	ActionCheckStatus   ActionType = "check_status"
	ActionCustom        ActionType = "custom"
)

// ActionDetails is the payload of a TaskAction. The concrete shape is keyed
// by the action's type, so each variant carries its own explicit field set
// instead of an open-ended map.
type ActionDetails interface {
	isActionDetails()
}

type SendEmailDetails struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

type ScheduleEventDetails struct {
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Location string    `json:"location,omitempty"`
}

type MakeCallDetails struct {
	PhoneNumber string `json:"phone_number"`
	Notes       string `json:"notes,omitempty"`
}

type CheckStatusDetails struct {
	CheckType string `json:"check_type"`
}

// CustomDetails covers actions the fixed variants cannot express.
type CustomDetails struct {
	Kind   string            `json:"kind"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (SendEmailDetails) isActionDetails()     {}
func (ScheduleEventDetails) isActionDetails() {}
func (MakeCallDetails) isActionDetails()      {}
func (CheckStatusDetails) isActionDetails()   {}
func (CustomDetails) isActionDetails()        {}

// TaskAction is a discrete executable step attached to a task. Actions are
// mutated in place by id when executed; they are never created independently
// of their task.
type TaskAction struct {
	ID           string        `json:"id"`
	TaskID       string        `json:"task_id"`
	Type         ActionType    `json:"type"`
	Status       ActionStatus  `json:"status"`
	ScheduledFor *time.Time    `json:"scheduled_for,omitempty"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
	Details      ActionDetails `json:"details,omitempty"`
}

// taskAction mirrors TaskAction with the details left raw, so the wire form
// stays a plain JSON object and decoding can pick the variant from Type.
type taskAction struct {
	ID           string          `json:"id"`
	TaskID       string          `json:"task_id"`
	Type         ActionType      `json:"type"`
	Status       ActionStatus    `json:"status"`
	ScheduledFor *time.Time      `json:"scheduled_for,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	Details      json.RawMessage `json:"details,omitempty"`
}

func (a TaskAction) MarshalJSON() ([]byte, error) {
	raw := taskAction{
		ID:           a.ID,
		TaskID:       a.TaskID,
		Type:         a.Type,
		Status:       a.Status,
		ScheduledFor: a.ScheduledFor,
		CompletedAt:  a.CompletedAt,
	}
	if a.Details != nil {
		b, err := json.Marshal(a.Details)
		if err != nil {
			return nil, err
		}
		raw.Details = b
	}
	return json.Marshal(raw)
}

func (a *TaskAction) UnmarshalJSON(b []byte) error {
	var raw taskAction
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	details, err := decodeDetails(raw.Type, raw.Details)
	if err != nil {
		return err
	}
	*a = TaskAction{
		ID:           raw.ID,
		TaskID:       raw.TaskID,
		Type:         raw.Type,
		Status:       raw.Status,
		ScheduledFor: raw.ScheduledFor,
		CompletedAt:  raw.CompletedAt,
		Details:      details,
	}
	return nil
}

func decodeDetails(t ActionType, raw json.RawMessage) (ActionDetails, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch t {
	case ActionSendEmail:
		var d SendEmailDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode send_email details: %w", err)
		}
		return d, nil
	case ActionScheduleEvent:
		var d ScheduleEventDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode schedule_event details: %w", err)
		}
		return d, nil
	case ActionMakeCall:
		var d MakeCallDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode make_call details: %w", err)
		}
		return d, nil
	case ActionCheckStatus:
		var d CheckStatusDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode check_status details: %w", err)
		}
		return d, nil
	case ActionCustom:
		var d CustomDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode custom details: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", t)
	}
}
