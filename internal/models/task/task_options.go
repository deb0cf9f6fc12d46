package task

import (
	"time"
)

// TaskOption - функция частичного обновления задачи.
// Используется общим PUT-обновлением: применяем только переданные поля.
type TaskOption func(*Task)

func WithTitle(title *string) TaskOption {
	if title == nil || *title == "" {
		return nil
	}
	return func(task *Task) {
		task.Title = *title
	}
}

func WithCompleted(completed *bool) TaskOption {
	if completed == nil {
		return nil
	}
	return func(task *Task) {
		task.Completed = *completed
	}
}

// WithDuration пересчитывает дедлайн timed-задачи от текущего момента
func WithDuration(hours, minutes *int) TaskOption {
	if hours == nil && minutes == nil {
		return nil
	}
	var h, m int
	if hours != nil {
		h = *hours
	}
	if minutes != nil {
		m = *minutes
	}
	return func(task *Task) {
		if task.Type != TypeTimed {
			return
		}
		due := time.Now().Add(Duration(h, m))
		task.DueDate = &due
	}
}

// WithItems заменяет список пунктов checklist-задачи целиком.
// Завершённость родителя выводится заново из нового списка.
func WithItems(items []ChecklistItem) TaskOption {
	if items == nil {
		return nil
	}
	return func(task *Task) {
		if task.Type != TypeChecklist {
			return
		}
		task.Items = items
		task.RecomputeCompleted()
	}
}
