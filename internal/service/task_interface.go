package service

import (
	"context"

	"taskBoard/internal/models/task"

	"github.com/google/uuid"
)

type TaskRepository interface {
	HealthCheck(context.Context) error
	Create(context.Context, *task.Task) error
	Update(context.Context, *task.Task) error
	GetByID(context.Context, uuid.UUID) (*task.Task, error)
	GetAll(context.Context) ([]*task.Task, error)
	Delete(context.Context, uuid.UUID) error
}
