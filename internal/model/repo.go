package model

import (
	"context"

	"taskboard/internal/entity"
)

// Repository defines the persistence operations backing the services.
type Repository interface {
	// Credential store
	CreateUser(ctx context.Context, user *entity.DbUser) error
	GetUserByUsername(ctx context.Context, username string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	ListUsers(ctx context.Context) ([]entity.DbUser, error)
	DeleteUser(ctx context.Context, id uint) error
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Task store
	CreateTask(ctx context.Context, task *entity.DbTask) error
	UpdateTask(ctx context.Context, id uint, updates map[string]interface{}) error
	GetTaskByID(ctx context.Context, id uint) (*entity.DbTask, error)
	ListTasks(ctx context.Context) ([]entity.DbTask, error)
	ListTasksByStatus(ctx context.Context, status string) ([]entity.DbTask, error)
	DeleteTask(ctx context.Context, id uint) error
}
