package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
	"github.com/AFTLlimited25/Task-AI/pkg/seed"
	"github.com/AFTLlimited25/Task-AI/pkg/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	seed.Demo(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)).Apply(st)
	return st
}

func TestRenderHeaderSignedOut(t *testing.T) {
	var b strings.Builder
	RenderHeader(&b, store.New().Snapshot())

	line := b.String()
	assert.Contains(t, line, "TaskMe AI")
	assert.Contains(t, line, "Connect Gmail")
	assert.Contains(t, line, "Connect Calendar")
	assert.Contains(t, line, "Sign In")
}

func TestRenderHeaderWithUserAndBadge(t *testing.T) {
	st := seededStore(t)
	st.Apply(store.SetGmailConnected{Connected: true})

	var b strings.Builder
	RenderHeader(&b, st.Snapshot())

	line := b.String()
	assert.Contains(t, line, "Gmail Connected")
	assert.Contains(t, line, "Connect Calendar")
	assert.Contains(t, line, "Jane Smith")
	assert.Contains(t, line, "(2)", "seed carries two unread notifications")
}

func TestRenderHeaderCapsBadge(t *testing.T) {
	st := store.New()
	for i := 0; i < 12; i++ {
		st.Apply(store.AddNotification{Notification: model.Notification{ID: string(rune('a' + i))}})
	}

	var b strings.Builder
	RenderHeader(&b, st.Snapshot())
	assert.Contains(t, b.String(), "(9+)")
}

func TestRenderDashboardSummaryAndCounts(t *testing.T) {
	var b strings.Builder
	RenderDashboard(&b, seededStore(t).Snapshot(), FilterAll)

	out := b.String()
	assert.Contains(t, out, "You have 5 pending tasks to handle")
	assert.Contains(t, out, "All Tasks 5")
	assert.Contains(t, out, "Connect your accounts to get started")
	assert.Contains(t, out, "Netflix")
}

func TestRenderDashboardFiltered(t *testing.T) {
	var b strings.Builder
	RenderDashboard(&b, seededStore(t).Snapshot(), model.TypeRefund)

	out := b.String()
	assert.Contains(t, out, "Refund")
	assert.NotContains(t, out, "Netflix")
}

func TestRenderDashboardEmptyFilter(t *testing.T) {
	st := store.New()
	st.Apply(store.SetGmailConnected{Connected: true})
	st.Apply(store.SetCalendarConnected{Connected: true})

	var b strings.Builder
	RenderDashboard(&b, st.Snapshot(), model.TypeRefund)

	out := b.String()
	assert.NotContains(t, out, "Connect your accounts")
	assert.Contains(t, out, "You don't have any Refund tasks.")
}

func TestRenderNotifications(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	notifications := []model.Notification{
		{ID: "n1", Type: model.NotifySuccess, Message: "Connected to Gmail", Timestamp: now.Add(-30 * time.Minute), IsRead: false},
		{ID: "n2", Type: model.NotifyInfo, Message: "Welcome", Timestamp: now.Add(-3 * 24 * time.Hour), IsRead: true},
	}

	var b strings.Builder
	RenderNotifications(&b, notifications, now)

	out := b.String()
	assert.Contains(t, out, "* [n1]")
	assert.Contains(t, out, "30m ago")
	assert.Contains(t, out, "  [n2]")
	assert.Contains(t, out, "3d ago")
}

func TestRenderNotificationsEmpty(t *testing.T) {
	var b strings.Builder
	RenderNotifications(&b, nil, time.Now())
	assert.Equal(t, "You have no notifications\n", b.String())
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", timeAgo(now.Add(-20*time.Second), now))
	assert.Equal(t, "5m ago", timeAgo(now.Add(-5*time.Minute), now))
	assert.Equal(t, "2h ago", timeAgo(now.Add(-2*time.Hour), now))
	assert.Equal(t, "10d ago", timeAgo(now.Add(-10*24*time.Hour), now))
}
