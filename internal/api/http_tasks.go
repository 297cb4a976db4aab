package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetAllTasks returns every task as a JSON array.
func (h *HTTPHandler) GetAllTasks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.taskService.GetAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list tasks")
		c.String(serviceErrorStatus(err), "Error fetching tasks: %v", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// AddTask creates a task from form fields and returns it as JSON.
func (h *HTTPHandler) AddTask(c *gin.Context) {
	var req entity.TaskRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Error creating task: invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	task, err := h.taskService.Create(ctx, req.NameTask, req.StatusTask)
	if err != nil {
		c.String(serviceErrorStatus(err), "Error creating task: %v", err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask overwrites a task's name and status and returns it as JSON.
func (h *HTTPHandler) UpdateTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req entity.TaskRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Error updating task: invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	task, err := h.taskService.Update(ctx, id, req.NameTask, req.StatusTask)
	if err != nil {
		c.String(serviceErrorStatus(err), "Error updating task: %v", err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task by id.
func (h *HTTPHandler) DeleteTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.taskService.Delete(ctx, id); err != nil {
		c.String(serviceErrorStatus(err), "Error deleting task: %v", err)
		return
	}
	c.String(http.StatusOK, "Task deleted successfully")
}

// FilterTasks returns the tasks whose status matches the query exactly.
func (h *HTTPHandler) FilterTasks(c *gin.Context) {
	status := c.Query("status")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.taskService.GetByStatus(ctx, status)
	if err != nil {
		c.String(serviceErrorStatus(err), "Error filtering tasks: %v", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func parseTaskID(c *gin.Context) (uint, bool) {
	idValue := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(idValue, 10, 64)
	if err != nil || id == 0 {
		c.String(http.StatusBadRequest, "Error parsing task id: invalid id")
		return 0, false
	}
	return uint(id), true
}
