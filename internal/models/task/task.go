package task

import (
	"time"

	"github.com/google/uuid"
)

// Task - размеченное объединение трёх видов задач.
// Вид определяется полем Type, общая часть у всех одна.
type Task struct {
	ID        uuid.UUID       `json:"id"`
	Type      Type            `json:"type"`
	Title     string          `json:"title"`
	Completed bool            `json:"completed"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
	Items     []ChecklistItem `json:"items,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ChecklistItem struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
}

type Type string

const TypeBasic Type = "basic"
const TypeTimed Type = "timed"
const TypeChecklist Type = "checklist"

const DefaultBasicTitle = "New Task"
const DefaultTimedTitle = "New Timed Task"
const DefaultChecklistTitle = "New Checklist"

func (t Type) Valid() bool {
	return t == TypeBasic || t == TypeTimed || t == TypeChecklist
}

// SortRank задаёт порядок видов при сортировке по типу: basic < timed < checklist
func (t Type) SortRank() int {
	switch t {
	case TypeBasic:
		return 0
	case TypeTimed:
		return 1
	case TypeChecklist:
		return 2
	default:
		return 3
	}
}

// Duration переводит часы и минуты в длительность до дедлайна
func Duration(hours, minutes int) time.Duration {
	return time.Duration(hours*60+minutes) * time.Minute
}

// RecomputeCompleted пересчитывает завершённость checklist-задачи
// как AND по всем пунктам. Пустой список считается завершённым.
// Для остальных видов ничего не делает - их Completed хранится напрямую.
func (t *Task) RecomputeCompleted() {
	if t.Type != TypeChecklist {
		return
	}
	t.Completed = AllItemsCompleted(t.Items)
}

func AllItemsCompleted(items []ChecklistItem) bool {
	for _, item := range items {
		if !item.Completed {
			return false
		}
	}
	return true
}

// FindItem возвращает индекс пункта или -1
func (t *Task) FindItem(itemID uuid.UUID) int {
	for ind, item := range t.Items {
		if item.ID == itemID {
			return ind
		}
	}
	return -1
}
