// Package view contains the derived-view logic: pure functions over a state
// snapshot, recomputed on every render. Inputs are small so nothing is cached.
package view

import (
	"strconv"
	"strings"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
	"github.com/AFTLlimited25/Task-AI/pkg/store"
)

// FilterAll matches every task regardless of type.
const FilterAll model.TaskType = "all"

func isPending(t model.Task) bool {
	return t.Status != model.StatusCompleted && t.Status != model.StatusCancelled
}

// PendingCount counts tasks that are neither completed nor cancelled.
func PendingCount(tasks []model.Task) int {
	count := 0
	for _, t := range tasks {
		if isPending(t) {
			count++
		}
	}
	return count
}

// PendingCountByType partitions the pending count by task type.
func PendingCountByType(tasks []model.Task) map[model.TaskType]int {
	counts := make(map[model.TaskType]int)
	for _, t := range tasks {
		if isPending(t) {
			counts[t.Type]++
		}
	}
	return counts
}

// FilterByType returns the tasks matching the selected type. FilterAll passes
// everything through.
func FilterByType(tasks []model.Task, filter model.TaskType) []model.Task {
	if filter == FilterAll {
		return tasks
	}
	var out []model.Task
	for _, t := range tasks {
		if t.Type == filter {
			out = append(out, t)
		}
	}
	return out
}

// UnreadCount counts notifications that have not been read yet.
func UnreadCount(notifications []model.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// BadgeLabel renders the unread badge, capped at "9+". Empty when there is
// nothing unread.
func BadgeLabel(unread int) string {
	switch {
	case unread <= 0:
		return ""
	case unread > 9:
		return "9+"
	default:
		return strconv.Itoa(unread)
	}
}

// Label converts a snake_case enum value into a human-readable label:
// "email_followup" becomes "Email Followup".
func Label(value string) string {
	words := strings.Split(value, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ConnectPromptVisible reports whether the connect-accounts prompt should
// show. It disappears only once both accounts are linked.
func ConnectPromptVisible(snap store.Snapshot) bool {
	return !snap.GmailConnected || !snap.CalendarConnected
}
