package gateway

import (
	"context"
	"net/http"
	"sync"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
)

// Tasks is the task-resource gateway. Every operation is an independent
// round trip: no batching, no retry, no idempotency key. Two in-flight
// updates to the same id race and the last response wins.
type Tasks struct {
	c *Client

	mu      sync.Mutex
	loading bool
	lastErr string
}

func NewTasks(c *Client) *Tasks {
	return &Tasks{c: c}
}

// Loading reports whether a call is currently in flight.
func (g *Tasks) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// Err returns the error slot: the message of the last failed call, cleared
// whenever a new call starts.
func (g *Tasks) Err() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}

func (g *Tasks) begin() {
	g.mu.Lock()
	g.loading = true
	g.lastErr = ""
	g.mu.Unlock()
}

// finish always releases the loading flag, success or failure.
func (g *Tasks) finish(err error) {
	g.mu.Lock()
	if err != nil {
		g.lastErr = err.Error()
	}
	g.loading = false
	g.mu.Unlock()
}

func (g *Tasks) Create(ctx context.Context, task model.Task) (model.Task, error) {
	g.begin()
	var created model.Task
	err := g.c.do(ctx, http.MethodPost, "/rest/tasks", task, &created)
	g.finish(err)
	if err != nil {
		return model.Task{}, err
	}
	return created, nil
}

func (g *Tasks) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	g.begin()
	var updated model.Task
	err := g.c.do(ctx, http.MethodPatch, "/rest/tasks/"+id, patch, &updated)
	g.finish(err)
	if err != nil {
		return model.Task{}, err
	}
	return updated, nil
}

func (g *Tasks) Delete(ctx context.Context, id string) error {
	g.begin()
	err := g.c.do(ctx, http.MethodDelete, "/rest/tasks/"+id, nil, nil)
	g.finish(err)
	return err
}

// List fetches all tasks ordered by creation time, most recent first.
func (g *Tasks) List(ctx context.Context) ([]model.Task, error) {
	g.begin()
	var tasks []model.Task
	err := g.c.do(ctx, http.MethodGet, "/rest/tasks", nil, &tasks)
	g.finish(err)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
