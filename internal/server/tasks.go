package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
)

func (s *Server) createTaskAction(c *gin.Context) {
	const op = "server.createTaskAction"
	log := s.log.WithField("operation", op)

	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request structure"})
		return
	}
	if task.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}

	now := time.Now().UTC()
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now
	if task.Status == "" {
		task.Status = model.StatusPending
	}
	for i := range task.Actions {
		if task.Actions[i].ID == "" {
			task.Actions[i].ID = uuid.New().String()
		}
		task.Actions[i].TaskID = task.ID
		if task.Actions[i].Status == "" {
			task.Actions[i].Status = model.ActionPending
		}
	}

	if err := s.st.InsertTask(task); err != nil {
		log.WithError(err).Error("failed to insert task")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	log.WithField("task_id", task.ID).Info("task created")
	c.JSON(http.StatusCreated, task)
}

func (s *Server) listTasksAction(c *gin.Context) {
	const op = "server.listTasksAction"

	tasks, err := s.st.ListTasks()
	if err != nil {
		s.log.WithField("operation", op).WithError(err).Error("failed to list tasks")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) updateTaskAction(c *gin.Context) {
	const op = "server.updateTaskAction"
	log := s.log.WithField("operation", op)

	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request structure"})
		return
	}

	task, err := s.st.TaskByID(c.Param("taskID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
			return
		}
		log.WithError(err).Error("failed to load task")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	task = patch.Apply(task)
	task.UpdatedAt = time.Now().UTC()
	if err := s.st.UpdateTask(task); err != nil {
		log.WithError(err).Error("failed to update task")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	log.WithField("task_id", task.ID).Info("task updated")
	c.JSON(http.StatusOK, task)
}

// deleteTaskAction is idempotent: deleting an id that does not exist still
// returns 204.
func (s *Server) deleteTaskAction(c *gin.Context) {
	const op = "server.deleteTaskAction"

	if err := s.st.DeleteTask(c.Param("taskID")); err != nil {
		s.log.WithField("operation", op).WithError(err).Error("failed to delete task")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
