package view

import (
	"fmt"
	"io"
	"time"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
	"github.com/AFTLlimited25/Task-AI/pkg/store"
)

func statusIcon(status model.TaskStatus) string {
	switch status {
	case model.StatusCompleted:
		return "✓"
	case model.StatusInProgress:
		return "→"
	case model.StatusWaitingResponse:
		return "…"
	case model.StatusCancelled:
		return "✗"
	default:
		return "○"
	}
}

func connectionLabel(name string, connected bool) string {
	if connected {
		return name + " Connected"
	}
	return "Connect " + name
}

// RenderHeader prints the header line: app name, connection status, unread
// badge and the signed-in user.
func RenderHeader(w io.Writer, snap store.Snapshot) {
	badge := ""
	if label := BadgeLabel(UnreadCount(snap.Notifications)); label != "" {
		badge = fmt.Sprintf(" (%s)", label)
	}

	user := "Sign In"
	if snap.User != nil {
		user = snap.User.Name
	}

	fmt.Fprintf(w, "TaskMe AI | %s | %s | 🔔%s | %s\n",
		connectionLabel("Gmail", snap.GmailConnected),
		connectionLabel("Calendar", snap.CalendarConnected),
		badge,
		user,
	)
}

// RenderConnectPrompt prints the connect-accounts prompt when at least one
// account is still unlinked.
func RenderConnectPrompt(w io.Writer, snap store.Snapshot) {
	if !ConnectPromptVisible(snap) {
		return
	}
	fmt.Fprintln(w, "Connect your accounts to get started")
	fmt.Fprintln(w, "TaskMe AI needs access to your email and calendar to help manage your life admin tasks.")
	if !snap.GmailConnected {
		fmt.Fprintln(w, "  • Connect Gmail      — for email tasks and follow-ups (taskme connect gmail)")
	}
	if !snap.CalendarConnected {
		fmt.Fprintln(w, "  • Connect Calendar   — for appointments and scheduling (taskme connect calendar)")
	}
	fmt.Fprintln(w)
}

// RenderDashboard prints the main panel: pending summary, per-type counts and
// the task grid for the selected filter.
func RenderDashboard(w io.Writer, snap store.Snapshot, filter model.TaskType) {
	RenderConnectPrompt(w, snap)

	fmt.Fprintf(w, "Dashboard\nYou have %d pending tasks to handle\n\n", PendingCount(snap.Tasks))

	counts := PendingCountByType(snap.Tasks)
	fmt.Fprintf(w, "All Tasks %d", PendingCount(snap.Tasks))
	for _, typ := range model.TaskTypes {
		if n, ok := counts[typ]; ok {
			fmt.Fprintf(w, " | %s %d", Label(string(typ)), n)
		}
	}
	fmt.Fprint(w, "\n\n")

	tasks := FilterByType(snap.Tasks, filter)
	if len(tasks) == 0 {
		if filter == FilterAll {
			fmt.Fprintln(w, "No tasks found. You don't have any tasks yet.")
		} else {
			fmt.Fprintf(w, "No tasks found. You don't have any %s tasks.\n", Label(string(filter)))
		}
		return
	}
	for _, t := range tasks {
		RenderTaskCard(w, t)
	}
}

// RenderTaskCard prints the one-card summary of a task.
func RenderTaskCard(w io.Writer, t model.Task) {
	fmt.Fprintf(w, "%s [%s] %s\n", statusIcon(t.Status), t.ID, t.Title)
	fmt.Fprintf(w, "   %s · %s", Label(string(t.Type)), Label(string(t.Status)))
	if t.Priority != "" {
		fmt.Fprintf(w, " · %s Priority", Label(string(t.Priority)))
	}
	if t.DueDate != nil {
		fmt.Fprintf(w, " · Due %s", t.DueDate.Format("Jan 2, 2006"))
	}
	fmt.Fprintln(w)
}

// RenderTaskDetail prints the full detail panel for one task: metadata,
// description, related emails and events, pending and completed actions.
func RenderTaskDetail(w io.Writer, t model.Task, now time.Time) {
	fmt.Fprintf(w, "%s\n", t.Title)
	fmt.Fprintf(w, "Status: %s", Label(string(t.Status)))
	if t.Priority != "" {
		fmt.Fprintf(w, " | %s Priority", Label(string(t.Priority)))
	}
	if t.DueDate != nil {
		fmt.Fprintf(w, " | Due: %s", t.DueDate.Format("Jan 2, 2006 3:04 PM"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\nDescription\n%s\n", t.Description)

	if len(t.RelatedEmails) > 0 {
		fmt.Fprintln(w, "\nRelated Emails")
		for _, e := range t.RelatedEmails {
			fmt.Fprintf(w, "  %s — %s (%s)\n", e.Subject, e.Sender, timeAgo(e.ReceivedAt, now))
			fmt.Fprintf(w, "    %s...\n", e.Snippet)
		}
	}

	if len(t.RelatedEvents) > 0 {
		fmt.Fprintln(w, "\nRelated Events")
		for _, e := range t.RelatedEvents {
			fmt.Fprintf(w, "  %s — %s", e.Title, e.StartTime.Format("Jan 2, 2006 3:04 PM"))
			if e.Location != "" {
				fmt.Fprintf(w, " @ %s", e.Location)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, "\nPending Actions")
	pending := t.PendingActions()
	if len(pending) == 0 {
		fmt.Fprintln(w, "  No pending actions")
	}
	for _, a := range pending {
		when := "Ready to execute"
		if a.ScheduledFor != nil {
			when = "Scheduled for: " + a.ScheduledFor.Format("Jan 2, 2006 3:04 PM")
		}
		fmt.Fprintf(w, "  [%s] %s — %s\n", a.ID, Label(string(a.Type)), when)
	}

	if completed := t.CompletedActions(); len(completed) > 0 {
		fmt.Fprintln(w, "\nCompleted Actions")
		for _, a := range completed {
			line := fmt.Sprintf("  [%s] %s", a.ID, Label(string(a.Type)))
			if a.CompletedAt != nil {
				line += " — Completed on: " + a.CompletedAt.Format("Jan 2, 2006 3:04 PM")
			}
			fmt.Fprintln(w, line)
		}
	}
}

// RenderNotifications prints the notification panel, most recent first.
func RenderNotifications(w io.Writer, notifications []model.Notification, now time.Time) {
	if len(notifications) == 0 {
		fmt.Fprintln(w, "You have no notifications")
		return
	}
	for _, n := range notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(w, "%s [%s] %-7s %s (%s)\n", marker, n.ID, n.Type, n.Message, timeAgo(n.Timestamp, now))
	}
}

func timeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
