package worker_test

import (
	"context"
	"testing"
	"time"

	"taskBoard/internal/models/task"
	"taskBoard/internal/repository/task/inmemory"
	"taskBoard/internal/service"
	"taskBoard/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOverdueWorker_Check тестирует разовую проверку просроченности
func TestOverdueWorker_Check(t *testing.T) {
	ctx := context.Background()
	repo := inmemory.NewTaskStorage()
	svc := service.NewTaskService(repo)

	past := time.Now().Add(-1 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	overdueTask, err := svc.CreateTask(ctx, "basic", service.CreateProps{Title: "overdue", DueDate: &past})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, "basic", service.CreateProps{Title: "future", DueDate: &future})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, "basic", service.CreateProps{Title: "no due"})
	require.NoError(t, err)

	// завершённая просроченная не считается
	doneTask, err := svc.CreateTask(ctx, "basic", service.CreateProps{Title: "done", DueDate: &past})
	require.NoError(t, err)
	_, err = svc.SetCompletion(ctx, doneTask.ID, true)
	require.NoError(t, err)

	var notified []uuid.UUID
	w := worker.NewOverdueWorker(&svc, time.Minute, func(t *task.Task) {
		notified = append(notified, t.ID)
	})

	w.Check(ctx)

	require.Len(t, notified, 1)
	assert.Equal(t, overdueTask.ID, notified[0])
}

// TestOverdueWorker_Start проверяет остановку по контексту
func TestOverdueWorker_Start(t *testing.T) {
	repo := inmemory.NewTaskStorage()
	svc := service.NewTaskService(repo)

	w := worker.NewOverdueWorker(&svc, 10*time.Millisecond, func(t *task.Task) {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("воркер не остановился по отмене контекста")
	}
}
