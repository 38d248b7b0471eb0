package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
	"github.com/AFTLlimited25/Task-AI/pkg/store"
)

func TestDemoShape(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	data := Demo(now)

	assert.Equal(t, "Jane Smith", data.User.Name)
	assert.False(t, data.User.IsConnected.Gmail)
	assert.False(t, data.User.IsConnected.Calendar)

	require.Len(t, data.Tasks, 6)
	require.Len(t, data.Notifications, 3)

	byStatus := map[model.TaskStatus]int{}
	for _, task := range data.Tasks {
		byStatus[task.Status]++
	}
	assert.Equal(t, 3, byStatus[model.StatusPending])
	assert.Equal(t, 1, byStatus[model.StatusInProgress])
	assert.Equal(t, 1, byStatus[model.StatusWaitingResponse])
	assert.Equal(t, 1, byStatus[model.StatusCompleted])
}

func TestDemoActionsBelongToTheirTasks(t *testing.T) {
	data := Demo(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	for _, task := range data.Tasks {
		for _, action := range task.Actions {
			assert.Equal(t, task.ID, action.TaskID)
			assert.NotNil(t, action.Details, "every seeded action carries typed details")
		}
	}
}

func TestApplyPopulatesStore(t *testing.T) {
	st := store.New()
	data := Demo(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	data.Apply(st)

	snap := st.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, data.User.ID, snap.User.ID)
	assert.Len(t, snap.Tasks, 6)
	assert.Len(t, snap.Notifications, 3)
	assert.False(t, snap.GmailConnected)
	assert.False(t, snap.CalendarConnected)
}
