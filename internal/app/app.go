package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"taskBoard/internal/config"
	"taskBoard/internal/handlers"
	"taskBoard/internal/logger"
	"taskBoard/internal/repository/task/inmemory"
	"taskBoard/internal/service"
	"taskBoard/internal/worker"
)

// App - явная точка сборки: конфиг -> логгер -> хранилище -> сервис ->
// воркер -> роутер -> http-сервер. Никаких скрытых синглтонов,
// хранилище создаётся один раз здесь и передаётся дальше.
type App struct {
	config    *config.Config
	server    *http.Server
	worker    *worker.OverdueWorker
	cancel    context.CancelFunc
	shutdowns []func()
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {

	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	taskRepo := inmemory.NewTaskStorage()
	taskService := service.NewTaskService(taskRepo)
	taskHandler := handlers.NewTaskHandler(&taskService)

	a.worker = worker.NewOverdueWorker(&taskService, a.config.WorkerInterval(), nil)

	router := handlers.NewRouter(taskHandler)
	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: router,
	}

	return nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)

	go a.worker.Start(ctx)

	logger.Info("Сервер запущен: " + a.server.Addr)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("запуск сервера: %w", err)
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if a.server != nil {
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Ошибка остановки сервера", err)
		}
	}

	// в обратном порядке, как defer
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
