// Package query реализует конвейер выборки задач:
// поиск по подстроке -> фильтр по завершённости -> устойчивая сортировка.
// Чистые функции, входной срез не изменяется. Один и тот же конвейер
// используется сервисом при выдаче списка и клиентским кэшем локально.
package query

import (
	"sort"
	"strings"

	"taskBoard/internal/models/task"
)

type Filter string

const FilterAll Filter = "all"
const FilterActive Filter = "active"
const FilterCompleted Filter = "completed"

type Sort string

const SortByName Sort = "name"
const SortByDate Sort = "date"
const SortByCompletion Sort = "completion"
const SortByType Sort = "type"
const SortByID Sort = "id"

type Params struct {
	Search string
	Filter Filter
	Sort   Sort
}

// Apply прогоняет задачи через конвейер и возвращает новый срез.
// Порядок стадий фиксированный: поиск, фильтр, сортировка.
func Apply(tasks []*task.Task, params Params) []*task.Task {
	res := applySearch(tasks, params.Search)
	res = applyFilter(res, params.Filter)
	applySort(res, params.Sort)
	return res
}

// Matches проверяет задачу на совпадение с поисковой строкой.
// Регистр не учитывается. Задача подходит, если подстрока входит
// в заголовок, а для checklist-задач - ещё и в текст любого пункта.
func Matches(t *task.Task, search string) bool {
	if search == "" {
		return true
	}
	lower := strings.ToLower(search)

	if strings.Contains(strings.ToLower(t.Title), lower) {
		return true
	}

	if t.Type == task.TypeChecklist {
		for _, item := range t.Items {
			if strings.Contains(strings.ToLower(item.Text), lower) {
				return true
			}
		}
	}

	return false
}

func applySearch(tasks []*task.Task, search string) []*task.Task {
	res := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, search) {
			res = append(res, t)
		}
	}
	return res
}

func applyFilter(tasks []*task.Task, filter Filter) []*task.Task {
	if filter != FilterActive && filter != FilterCompleted {
		return tasks
	}

	wantCompleted := filter == FilterCompleted
	res := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == wantCompleted {
			res = append(res, t)
		}
	}
	return res
}

// applySort сортирует на месте. Сортировка устойчивая: при равенстве
// ключей сохраняется порядок предыдущей стадии.
func applySort(tasks []*task.Task, sortKey Sort) {
	switch sortKey {
	case SortByName:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Title < tasks[j].Title
		})
	case SortByDate:
		// задачи без дедлайна уходят в конец
		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].DueDate == nil {
				return false
			}
			if tasks[j].DueDate == nil {
				return true
			}
			return tasks[i].DueDate.Before(*tasks[j].DueDate)
		})
	case SortByCompletion:
		// незавершённые раньше завершённых
		sort.SliceStable(tasks, func(i, j int) bool {
			return !tasks[i].Completed && tasks[j].Completed
		})
	case SortByType:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Type.SortRank() < tasks[j].Type.SortRank()
		})
	case SortByID:
		fallthrough
	default:
		// канонический порядок по умолчанию - по времени создания
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	}
}
