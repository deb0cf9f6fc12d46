package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	"taskBoard/internal/query"
	rep "taskBoard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// здесь проверки бизнес-логики: вид задачи, производная завершённость,
// пересчёт дедлайна. Хранилище отдаёт и принимает уже готовые задачи.

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) TaskService {
	return TaskService{
		repo: repo,
	}
}

// CreateProps - входные параметры создания, смысл зависит от вида задачи
type CreateProps struct {
	Title   string
	Hours   int
	Minutes int
	DueDate *time.Time
	Items   []ItemProps
}

type ItemProps struct {
	Text      string
	Completed bool
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

// CreateTask собирает задачу нужного вида и кладёт её в хранилище.
// Неизвестный вид - ошибка INVALID_TYPE, задача не создаётся.
func (s *TaskService) CreateTask(ctx context.Context, taskType string, props CreateProps) (*task.Task, error) {
	newTask := &task.Task{
		ID:   uuid.New(),
		Type: task.Type(taskType),
	}

	switch task.Type(taskType) {
	case task.TypeBasic:
		newTask.Title = props.Title
		if newTask.Title == "" {
			newTask.Title = task.DefaultBasicTitle
		}
		newTask.DueDate = props.DueDate

	case task.TypeTimed:
		newTask.Title = props.Title
		if newTask.Title == "" {
			newTask.Title = task.DefaultTimedTitle
		}
		// дедлайн всегда вычисляется от текущего момента,
		// напрямую абсолютной датой не задаётся
		due := time.Now().Add(task.Duration(props.Hours, props.Minutes))
		newTask.DueDate = &due

	case task.TypeChecklist:
		newTask.Title = props.Title
		if newTask.Title == "" {
			newTask.Title = task.DefaultChecklistTitle
		}
		newTask.DueDate = props.DueDate
		newTask.Items = make([]task.ChecklistItem, 0, len(props.Items))
		for _, item := range props.Items {
			newTask.Items = append(newTask.Items, task.ChecklistItem{
				ID:        uuid.New(),
				Text:      item.Text,
				Completed: item.Completed,
			})
		}
		// завершённость родителя не берём из входа - только из пунктов.
		// Новая задача с пустым списком остаётся незавершённой,
		// вакуумное правило включается после первой мутации списка
		if len(newTask.Items) > 0 {
			newTask.RecomputeCompleted()
		}

	default:
		logger.Warn("Service: Неизвестный тип задачи", zap.String("type", taskType))
		return nil, NewInvalidType(taskType)
	}

	if err := s.repo.Create(ctx, newTask); err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	logger.Info("Service: Задача создана",
		zap.String("task_id", newTask.ID.String()),
		zap.String("type", taskType))
	return newTask, nil
}

// ListTasks отдаёт задачи через конвейер поиск -> фильтр -> сортировка
func (s *TaskService) ListTasks(ctx context.Context, params query.Params) ([]*task.Task, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}

	return query.Apply(tasks, params), nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	return s.getTask(ctx, id)
}

// UpdateTask - общее частичное обновление через опции.
// После применения опций завершённость checklist-задачи пересчитывается,
// чтобы производный инвариант не нарушался ни одним путём обновления.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, options ...task.TaskOption) (*task.Task, error) {
	taskToUpdate, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, opt := range options {
		if opt != nil {
			opt(taskToUpdate)
		}
	}
	taskToUpdate.RecomputeCompleted()

	if err := s.repo.Update(ctx, taskToUpdate); err != nil {
		return nil, fmt.Errorf("обновление задачи: %w", err)
	}
	return taskToUpdate, nil
}

func (s *TaskService) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*task.Task, error) {
	taskToUpdate, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	taskToUpdate.Title = title

	if err := s.repo.Update(ctx, taskToUpdate); err != nil {
		return nil, fmt.Errorf("обновление заголовка: %w", err)
	}
	return taskToUpdate, nil
}

// SetCompletion выставляет завершённость basic- и timed-задач напрямую.
// Для checklist-задач переданное значение игнорируется: завершённость
// тут же пересчитывается из пунктов, снаружи расхождение не наблюдаемо.
func (s *TaskService) SetCompletion(ctx context.Context, id uuid.UUID, completed bool) (*task.Task, error) {
	taskToUpdate, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	taskToUpdate.Completed = completed
	taskToUpdate.RecomputeCompleted()

	if err := s.repo.Update(ctx, taskToUpdate); err != nil {
		return nil, fmt.Errorf("смена завершённости: %w", err)
	}
	return taskToUpdate, nil
}

func (s *TaskService) SetTimedDuration(ctx context.Context, id uuid.UUID, hours, minutes int) (*task.Task, error) {
	taskToUpdate, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if taskToUpdate.Type != task.TypeTimed {
		logger.Warn("Service: Операция не для этого вида задачи",
			zap.String("task_id", id.String()),
			zap.String("actual_type", string(taskToUpdate.Type)))
		return nil, NewWrongType(id.String(), string(task.TypeTimed), string(taskToUpdate.Type))
	}

	due := time.Now().Add(task.Duration(hours, minutes))
	taskToUpdate.DueDate = &due

	if err := s.repo.Update(ctx, taskToUpdate); err != nil {
		return nil, fmt.Errorf("пересчёт дедлайна: %w", err)
	}
	return taskToUpdate, nil
}

// AddChecklistItem добавляет незавершённый пункт со свежим id.
// Полностью завершённый список после добавления всегда станет незавершённым.
func (s *TaskService) AddChecklistItem(ctx context.Context, id uuid.UUID, text string) (*task.Task, error) {
	taskToUpdate, err := s.getChecklist(ctx, id)
	if err != nil {
		return nil, err
	}

	taskToUpdate.Items = append(taskToUpdate.Items, task.ChecklistItem{
		ID:        uuid.New(),
		Text:      text,
		Completed: false,
	})
	taskToUpdate.RecomputeCompleted()

	if err := s.repo.Update(ctx, taskToUpdate); err != nil {
		return nil, fmt.Errorf("добавление пункта: %w", err)
	}
	return taskToUpdate, nil
}

// UpdateChecklistItem меняет только текст пункта, завершённость не трогает
func (s *TaskService) UpdateChecklistItem(ctx context.Context, taskID, itemID uuid.UUID, text string) (*task.Task, error) {
	taskToUpdate, err := s.getChecklist(ctx, taskID)
	if err != nil {
		return nil, err
	}

	ind := taskToUpdate.FindItem(itemID)
	if ind == -1 {
		logger.Info("Service: Пункт не найден", zap.String("item_id", itemID.String()))
		return nil, NewNotFound("пункт", itemID.String())
	}

	taskToUpdate.Items[ind].Text = text

	if err := s.repo.Update(ctx, taskToUpdate); err != nil {
		return nil, fmt.Errorf("обновление пункта: %w", err)
	}
	return taskToUpdate, nil
}

func (s *TaskService) ToggleChecklistItem(ctx context.Context, taskID, itemID uuid.UUID) (*task.Task, error) {
	taskToUpdate, err := s.getChecklist(ctx, taskID)
	if err != nil {
		return nil, err
	}

	ind := taskToUpdate.FindItem(itemID)
	if ind == -1 {
		logger.Info("Service: Пункт не найден", zap.String("item_id", itemID.String()))
		return nil, NewNotFound("пункт", itemID.String())
	}

	taskToUpdate.Items[ind].Completed = !taskToUpdate.Items[ind].Completed
	taskToUpdate.RecomputeCompleted()

	if err := s.repo.Update(ctx, taskToUpdate); err != nil {
		return nil, fmt.Errorf("переключение пункта: %w", err)
	}
	return taskToUpdate, nil
}

// RemoveChecklistItem удаляет пункт и пересчитывает завершённость
// по оставшимся. Пустой список означает завершённую задачу.
func (s *TaskService) RemoveChecklistItem(ctx context.Context, taskID, itemID uuid.UUID) (*task.Task, error) {
	taskToUpdate, err := s.getChecklist(ctx, taskID)
	if err != nil {
		return nil, err
	}

	ind := taskToUpdate.FindItem(itemID)
	if ind == -1 {
		logger.Info("Service: Пункт не найден", zap.String("item_id", itemID.String()))
		return nil, NewNotFound("пункт", itemID.String())
	}

	taskToUpdate.Items = append(taskToUpdate.Items[:ind], taskToUpdate.Items[ind+1:]...)
	taskToUpdate.RecomputeCompleted()

	if err := s.repo.Update(ctx, taskToUpdate); err != nil {
		return nil, fmt.Errorf("удаление пункта: %w", err)
	}
	return taskToUpdate, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
			return NewNotFound("задача", id.String())
		}
		return fmt.Errorf("удаление задачи: %w", err)
	}

	logger.Info("Service: Задача удалена", zap.String("task_id", id.String()))
	return nil
}

func (s *TaskService) getTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	taskToGet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
			return nil, NewNotFound("задача", id.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return taskToGet, nil
}

// getChecklist дополнительно проверяет вид задачи
func (s *TaskService) getChecklist(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	taskToGet, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if taskToGet.Type != task.TypeChecklist {
		logger.Warn("Service: Операция не для этого вида задачи",
			zap.String("task_id", id.String()),
			zap.String("actual_type", string(taskToGet.Type)))
		return nil, NewWrongType(id.String(), string(task.TypeChecklist), string(taskToGet.Type))
	}
	return taskToGet, nil
}
