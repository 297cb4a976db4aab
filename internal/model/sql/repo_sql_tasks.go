package sql

import (
	"context"
	"fmt"

	"taskboard/internal/entity"

	"gorm.io/gorm"
)

// CreateTask persists a new task row and fills in the assigned id.
func (r *GormRepository) CreateTask(ctx context.Context, task *entity.DbTask) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if task == nil {
		return fmt.Errorf("task is nil")
	}
	return r.db.WithContext(ctx).Create(task).Error
}

// UpdateTask applies column updates to an existing task.
func (r *GormRepository) UpdateTask(ctx context.Context, id uint, updates map[string]interface{}) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid task id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbTask{}).Where("id = ?", id).Updates(updates).Error
}

// GetTaskByID loads a task by ID.
func (r *GormRepository) GetTaskByID(ctx context.Context, id uint) (*entity.DbTask, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid task id")
	}
	var task entity.DbTask
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks returns all tasks in store order.
func (r *GormRepository) ListTasks(ctx context.Context) ([]entity.DbTask, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var tasks []entity.DbTask
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListTasksByStatus returns the tasks whose status matches exactly.
func (r *GormRepository) ListTasksByStatus(ctx context.Context, status string) ([]entity.DbTask, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var tasks []entity.DbTask
	if err := r.db.WithContext(ctx).Where("status_task = ?", status).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeleteTask removes a task by ID.
func (r *GormRepository) DeleteTask(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid task id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbTask{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
