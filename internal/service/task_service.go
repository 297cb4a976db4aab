package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"taskboard/internal/entity"
	"taskboard/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TaskService enforces the task lifecycle rules and delegates persistence to
// the task store.
type TaskService struct {
	repo model.Repository
}

// NewTaskService creates a task service instance.
func NewTaskService(repo model.Repository) *TaskService {
	return &TaskService{repo: repo}
}

// Create validates the fields and persists a new task.
func (s *TaskService) Create(ctx context.Context, name, status string) (*entity.DbTask, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("task store: %w", ErrUnavailable)
	}
	if err := validateTaskFields(name, status); err != nil {
		return nil, err
	}

	logrus.WithField("name", name).Info("creating task")

	task := &entity.DbTask{
		NameTask:   name,
		StatusTask: status,
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update overwrites name and status of an existing task.
func (s *TaskService) Update(ctx context.Context, id uint, name, status string) (*entity.DbTask, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("task store: %w", ErrUnavailable)
	}
	if err := validateTaskFields(name, status); err != nil {
		return nil, err
	}

	logrus.WithField("task_id", id).Info("updating task")

	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task with id %d", ErrNotFound, id)
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"name_task":   name,
		"status_task": status,
	}
	if err := s.repo.UpdateTask(ctx, id, updates); err != nil {
		return nil, err
	}

	task.NameTask = name
	task.StatusTask = status
	return task, nil
}

// Delete removes a task by id.
func (s *TaskService) Delete(ctx context.Context, id uint) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("task store: %w", ErrUnavailable)
	}

	logrus.WithField("task_id", id).Info("deleting task")

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: task with id %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// GetAll returns all tasks in store order.
func (s *TaskService) GetAll(ctx context.Context) ([]entity.DbTask, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("task store: %w", ErrUnavailable)
	}
	return s.repo.ListTasks(ctx)
}

// GetByID returns a single task by id.
func (s *TaskService) GetByID(ctx context.Context, id uint) (*entity.DbTask, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("task store: %w", ErrUnavailable)
	}
	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task with id %d", ErrNotFound, id)
		}
		return nil, err
	}
	return task, nil
}

// GetByStatus returns the tasks matching status exactly.
func (s *TaskService) GetByStatus(ctx context.Context, status string) ([]entity.DbTask, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("task store: %w", ErrUnavailable)
	}
	if !entity.IsValidTaskStatus(status) {
		return nil, fmt.Errorf("%w: invalid task status %q", ErrValidation, status)
	}
	return s.repo.ListTasksByStatus(ctx, status)
}

func validateTaskFields(name, status string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: task name must not be blank", ErrValidation)
	}
	// Bounds are in characters, not bytes; names arrive in any script.
	if utf8.RuneCountInString(name) > entity.TaskNameMaxLen {
		return fmt.Errorf("%w: task name exceeds %d characters", ErrValidation, entity.TaskNameMaxLen)
	}
	if !entity.IsValidTaskStatus(status) {
		return fmt.Errorf("%w: invalid task status %q", ErrValidation, status)
	}
	return nil
}
