package dto

import (
	"time"

	"taskBoard/internal/models/task"
	"taskBoard/internal/service"

	"github.com/google/uuid"
)

// CreateTaskRequest повторяет форму {type, props} исходного API:
// вид задачи плюс набор свойств, смысл которых зависит от вида
type CreateTaskRequest struct {
	Type  string          `json:"type"`
	Props CreateTaskProps `json:"props"`
}

type CreateTaskProps struct {
	Title   string       `json:"title"`
	Hours   int          `json:"hours"`
	Minutes int          `json:"minutes"`
	DueDate *time.Time   `json:"due_date,omitempty"`
	Items   []CreateItem `json:"items,omitempty"`
}

type CreateItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (r *CreateTaskRequest) ToProps() service.CreateProps {
	items := make([]service.ItemProps, 0, len(r.Props.Items))
	for _, item := range r.Props.Items {
		items = append(items, service.ItemProps{
			Text:      item.Text,
			Completed: item.Completed,
		})
	}
	return service.CreateProps{
		Title:   r.Props.Title,
		Hours:   r.Props.Hours,
		Minutes: r.Props.Minutes,
		DueDate: r.Props.DueDate,
		Items:   items,
	}
}

// UpdateTaskRequest - частичное обновление, применяются только переданные поля
type UpdateTaskRequest struct {
	Title     *string              `json:"title,omitempty"`
	Completed *bool                `json:"completed,omitempty"`
	Hours     *int                 `json:"hours,omitempty"`
	Minutes   *int                 `json:"minutes,omitempty"`
	Items     []task.ChecklistItem `json:"items,omitempty"`
}

func (r *UpdateTaskRequest) ToOptions() []task.TaskOption {
	return []task.TaskOption{
		task.WithTitle(r.Title),
		task.WithCompleted(r.Completed),
		task.WithDuration(r.Hours, r.Minutes),
		task.WithItems(r.Items),
	}
}

type UpdateTitleRequest struct {
	Title string `json:"title"`
}

type SetCompletionRequest struct {
	Completed bool `json:"completed"`
}

type SetDurationRequest struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type ItemTextRequest struct {
	Text string `json:"text"`
}

type TaskResponse struct {
	ID        uuid.UUID            `json:"id"`
	Type      string               `json:"type"`
	Title     string               `json:"title"`
	Completed bool                 `json:"completed"`
	DueDate   *time.Time           `json:"due_date,omitempty"`
	Items     []task.ChecklistItem `json:"items,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	IsOverdue bool                 `json:"is_overdue"`
}

func FromTask(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Type:      string(t.Type),
		Title:     t.Title,
		Completed: t.Completed,
		DueDate:   t.DueDate,
		Items:     t.Items,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		IsOverdue: !t.Completed && t.DueDate != nil && t.DueDate.Before(time.Now()),
	}
}

func FromTaskList(tasks []*task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
