package query_test

import (
	"testing"
	"time"

	"taskBoard/internal/models/task"
	"taskBoard/internal/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTask(title string, taskType task.Type, completed bool, createdAt time.Time) *task.Task {
	return &task.Task{
		ID:        uuid.New(),
		Type:      taskType,
		Title:     title,
		Completed: completed,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func titles(tasks []*task.Task) []string {
	res := make([]string, len(tasks))
	for i, t := range tasks {
		res[i] = t.Title
	}
	return res
}

// TestApply_Search тестирует поиск по подстроке без учёта регистра
func TestApply_Search(t *testing.T) {
	now := time.Now()
	shopping := makeTask("Shopping list", task.TypeChecklist, false, now)
	shopping.Items = []task.ChecklistItem{
		{ID: uuid.New(), Text: "cheese", Completed: false},
		{ID: uuid.New(), Text: "bread", Completed: false},
	}

	tasks := []*task.Task{
		makeTask("Buy milk", task.TypeBasic, false, now),
		makeTask("Call mom", task.TypeBasic, false, now),
		shopping,
	}

	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{
			name:     "match in title",
			search:   "milk",
			expected: []string{"Buy milk"},
		},
		{
			name:     "case insensitive",
			search:   "BUY",
			expected: []string{"Buy milk"},
		},
		// задача находится по тексту пункта, хотя заголовок не совпадает
		{
			name:     "match in checklist item text",
			search:   "cheese",
			expected: []string{"Shopping list"},
		},
		{
			name:     "no match",
			search:   "garage",
			expected: []string{},
		},
		{
			name:     "empty search keeps everything",
			search:   "",
			expected: []string{"Buy milk", "Call mom", "Shopping list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := query.Apply(tasks, query.Params{Search: tt.search})
			assert.Equal(t, tt.expected, titles(res))
		})
	}
}

// TestApply_Filter тестирует фильтр по завершённости
func TestApply_Filter(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		makeTask("A", task.TypeBasic, false, now),
		makeTask("B", task.TypeBasic, true, now.Add(time.Second)),
		makeTask("C", task.TypeBasic, false, now.Add(2*time.Second)),
	}

	assert.Equal(t, []string{"A", "C"}, titles(query.Apply(tasks, query.Params{Filter: query.FilterActive})))
	assert.Equal(t, []string{"B"}, titles(query.Apply(tasks, query.Params{Filter: query.FilterCompleted})))
	assert.Equal(t, []string{"A", "B", "C"}, titles(query.Apply(tasks, query.Params{Filter: query.FilterAll})))
	assert.Equal(t, []string{"A", "B", "C"}, titles(query.Apply(tasks, query.Params{})))
}

// TestApply_SortByName тестирует сортировку по заголовку и её идемпотентность
func TestApply_SortByName(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		makeTask("banana", task.TypeBasic, false, now),
		makeTask("apple", task.TypeBasic, false, now),
		makeTask("cherry", task.TypeBasic, false, now),
	}

	sorted := query.Apply(tasks, query.Params{Sort: query.SortByName})
	assert.Equal(t, []string{"apple", "banana", "cherry"}, titles(sorted))

	// повторная сортировка уже отсортированного ничего не меняет
	again := query.Apply(sorted, query.Params{Sort: query.SortByName})
	assert.Equal(t, titles(sorted), titles(again))
}

// TestApply_SortByDate тестирует сортировку по дедлайну
func TestApply_SortByDate(t *testing.T) {
	now := time.Now()

	later := now.Add(2 * time.Hour)
	sooner := now.Add(30 * time.Minute)

	noDue := makeTask("no due", task.TypeBasic, false, now)
	dueLater := makeTask("due later", task.TypeBasic, false, now.Add(time.Second))
	dueLater.DueDate = &later
	dueSooner := makeTask("due sooner", task.TypeBasic, false, now.Add(2*time.Second))
	dueSooner.DueDate = &sooner
	noDue2 := makeTask("no due 2", task.TypeBasic, false, now.Add(3*time.Second))

	res := query.Apply([]*task.Task{noDue, dueLater, dueSooner, noDue2}, query.Params{Sort: query.SortByDate})

	// задачи без дедлайна в конце, их взаимный порядок сохранён
	assert.Equal(t, []string{"due sooner", "due later", "no due", "no due 2"}, titles(res))
}

// TestApply_SortByCompletion тестирует порядок: незавершённые раньше
func TestApply_SortByCompletion(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		makeTask("done A", task.TypeBasic, true, now),
		makeTask("open B", task.TypeBasic, false, now.Add(time.Second)),
		makeTask("done C", task.TypeBasic, true, now.Add(2*time.Second)),
		makeTask("open D", task.TypeBasic, false, now.Add(3*time.Second)),
	}

	res := query.Apply(tasks, query.Params{Sort: query.SortByCompletion})
	assert.Equal(t, []string{"open B", "open D", "done A", "done C"}, titles(res))
}

// TestApply_SortByType тестирует порядок видов basic < timed < checklist
func TestApply_SortByType(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		makeTask("checklist", task.TypeChecklist, false, now),
		makeTask("timed", task.TypeTimed, false, now.Add(time.Second)),
		makeTask("basic", task.TypeBasic, false, now.Add(2*time.Second)),
	}

	res := query.Apply(tasks, query.Params{Sort: query.SortByType})
	assert.Equal(t, []string{"basic", "timed", "checklist"}, titles(res))
}

// TestApply_DefaultSort тестирует канонический порядок по времени создания
func TestApply_DefaultSort(t *testing.T) {
	now := time.Now()
	second := makeTask("second", task.TypeBasic, false, now.Add(time.Minute))
	first := makeTask("first", task.TypeBasic, false, now)
	third := makeTask("third", task.TypeBasic, false, now.Add(2*time.Minute))

	res := query.Apply([]*task.Task{second, first, third}, query.Params{Sort: query.SortByID})
	assert.Equal(t, []string{"first", "second", "third"}, titles(res))

	res = query.Apply([]*task.Task{second, first, third}, query.Params{Sort: ""})
	assert.Equal(t, []string{"first", "second", "third"}, titles(res))
}

// TestApply_PipelineOrder тестирует связку: поиск -> фильтр -> сортировка
func TestApply_PipelineOrder(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		makeTask("task banana", task.TypeBasic, true, now),
		makeTask("task apple", task.TypeBasic, false, now.Add(time.Second)),
		makeTask("other", task.TypeBasic, false, now.Add(2*time.Second)),
		makeTask("task cherry", task.TypeBasic, false, now.Add(3*time.Second)),
	}

	res := query.Apply(tasks, query.Params{
		Search: "task",
		Filter: query.FilterActive,
		Sort:   query.SortByName,
	})

	assert.Equal(t, []string{"task apple", "task cherry"}, titles(res))
}

// TestApply_DoesNotMutateInput проверяет, что входной срез не меняется
func TestApply_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		makeTask("b", task.TypeBasic, false, now),
		makeTask("a", task.TypeBasic, false, now.Add(time.Second)),
	}

	res := query.Apply(tasks, query.Params{Sort: query.SortByName})
	require.Equal(t, []string{"a", "b"}, titles(res))

	// исходный порядок на месте
	assert.Equal(t, []string{"b", "a"}, titles(tasks))
}
