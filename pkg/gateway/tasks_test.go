package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestTasksCreateRoundTrip(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method

		var task model.Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&task))
		task.ID = "server-assigned"

		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(task))
	}))
	defer srv.Close()

	g := NewTasks(NewClient(srv.URL, srv.Client(), testLogger()))

	created, err := g.Create(context.Background(), model.Task{Title: "pay the dentist"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/rest/tasks", gotPath)
	assert.Equal(t, "server-assigned", created.ID)
	assert.Equal(t, "pay the dentist", created.Title)
	assert.False(t, g.Loading())
	assert.Empty(t, g.Err())
}

func TestTasksUpdateSendsPatchBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/tasks/42", r.URL.Path)

		var patch map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, "completed", patch["status"])
		assert.NotContains(t, patch, "title")

		require.NoError(t, json.NewEncoder(w).Encode(model.Task{ID: "42", Status: model.StatusCompleted}))
	}))
	defer srv.Close()

	g := NewTasks(NewClient(srv.URL, srv.Client(), testLogger()))

	status := model.StatusCompleted
	updated, err := g.Update(context.Background(), "42", model.TaskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)
}

func TestTasksErrorSlotCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "task not found"})
	}))
	defer srv.Close()

	g := NewTasks(NewClient(srv.URL, srv.Client(), testLogger()))

	_, err := g.Update(context.Background(), "missing", model.TaskPatch{})
	require.Error(t, err)
	assert.Equal(t, "task not found", err.Error())
	assert.Equal(t, "task not found", g.Err())
	assert.False(t, g.Loading(), "loading must clear on failure")
}

func TestTasksErrorSlotClearsOnNextCall(t *testing.T) {
	fail := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "backend exploded"})
			return
		}
		_ = json.NewEncoder(w).Encode([]model.Task{})
	}))
	defer srv.Close()

	g := NewTasks(NewClient(srv.URL, srv.Client(), testLogger()))

	_, err := g.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, "backend exploded", g.Err())

	fail = false
	_, err = g.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, g.Err())
}

func TestTasksDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/rest/tasks/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	g := NewTasks(NewClient(srv.URL, srv.Client(), testLogger()))
	require.NoError(t, g.Delete(context.Background(), "42"))
	assert.Empty(t, g.Err())
}

func TestTasksListPreservesServerOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Task{{ID: "newest"}, {ID: "older"}, {ID: "oldest"}})
	}))
	defer srv.Close()

	g := NewTasks(NewClient(srv.URL, srv.Client(), testLogger()))

	tasks, err := g.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "newest", tasks[0].ID)
	assert.Equal(t, "oldest", tasks[2].ID)
}

func TestNonJSONErrorFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "plain text panic", http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewTasks(NewClient(srv.URL, srv.Client(), testLogger()))

	_, err := g.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
