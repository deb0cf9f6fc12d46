package worker

import (
	"context"
	"time"

	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	"taskBoard/internal/query"

	"go.uber.org/zap"
)

// OverdueWorker - уведомления о просроченных задачах.
// Ядро о нём не знает: воркер только читает результаты выборки
// и сравнивает дедлайн с текущим временем.

type TaskLister interface {
	ListTasks(ctx context.Context, params query.Params) ([]*task.Task, error)
}

type OverdueWorker struct {
	service  TaskLister
	interval time.Duration
	notify   func(t *task.Task)
}

func NewOverdueWorker(service TaskLister, interval time.Duration, notify func(t *task.Task)) *OverdueWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if notify == nil {
		notify = func(t *task.Task) {
			logger.Warn("Worker: Задача просрочена",
				zap.String("task_id", t.ID.String()),
				zap.String("title", t.Title),
				zap.Timep("due_date", t.DueDate))
		}
	}
	return &OverdueWorker{
		service:  service,
		interval: interval,
		notify:   notify,
	}
}

func (w *OverdueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logger.Info("Worker: Фоновая проверка задач на просроченность", zap.Time("started_at", time.Now()))
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновая проверка останавливается")
			return
		}
	}
}

// Check один раз прогоняет выборку незавершённых задач
// и уведомляет о тех, чей дедлайн уже прошёл
func (w *OverdueWorker) Check(ctx context.Context) {
	start := time.Now()

	tasks, err := w.service.ListTasks(ctx, query.Params{Filter: query.FilterActive})
	if err != nil {
		logger.Warn("Worker: ошибка получения задач", zap.Error(err))
		return
	}

	overdueCount := 0
	now := time.Now()

	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		if t.DueDate.Before(now) {
			w.notify(t)
			overdueCount++
		}
	}

	logger.Info(
		"Worker: Завершение проверки задач",
		zap.Duration("ms", time.Since(start)),
		zap.Int("checked", len(tasks)),
		zap.Int("overdue", overdueCount),
	)
}
