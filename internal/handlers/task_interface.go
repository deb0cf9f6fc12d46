package handlers

import (
	"context"

	"taskBoard/internal/models/task"
	"taskBoard/internal/query"
	"taskBoard/internal/service"

	"github.com/google/uuid"
)

type TaskService interface {
	HealthCheck(context.Context) error
	CreateTask(context.Context, string, service.CreateProps) (*task.Task, error)
	ListTasks(context.Context, query.Params) ([]*task.Task, error)
	GetTaskByID(context.Context, uuid.UUID) (*task.Task, error)
	UpdateTask(context.Context, uuid.UUID, ...task.TaskOption) (*task.Task, error)
	UpdateTitle(context.Context, uuid.UUID, string) (*task.Task, error)
	SetCompletion(context.Context, uuid.UUID, bool) (*task.Task, error)
	SetTimedDuration(context.Context, uuid.UUID, int, int) (*task.Task, error)
	AddChecklistItem(context.Context, uuid.UUID, string) (*task.Task, error)
	UpdateChecklistItem(context.Context, uuid.UUID, uuid.UUID, string) (*task.Task, error)
	ToggleChecklistItem(context.Context, uuid.UUID, uuid.UUID) (*task.Task, error)
	RemoveChecklistItem(context.Context, uuid.UUID, uuid.UUID) (*task.Task, error)
	DeleteTask(context.Context, uuid.UUID) error
}
