package client

import (
	"context"
	"sync"
	"time"

	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	"taskBoard/internal/query"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cache - читающая копия коллекции на стороне клиента.
// Обновляется после каждой мутации и по таймеру опроса;
// до следующего обновления данные могут быть устаревшими.
type Cache struct {
	client *Client

	mtx      sync.RWMutex
	snapshot []*task.Task
	syncedAt time.Time
}

func NewCache(client *Client) *Cache {
	return &Cache{
		client: client,
	}
}

// Refresh забирает полную коллекцию с сервера
func (c *Cache) Refresh(ctx context.Context) error {
	tasks, err := c.client.List(ctx, query.Params{})
	if err != nil {
		return err
	}

	c.mtx.Lock()
	c.snapshot = tasks
	c.syncedAt = time.Now()
	c.mtx.Unlock()
	return nil
}

// Start опрашивает сервер с заданным интервалом до отмены контекста
func (c *Cache) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				logger.Warn("Client: ошибка обновления кэша", zap.Error(err))
			}
		case <-ctx.Done():
			logger.Info("Client: опрос сервера останавливается")
			return
		}
	}
}

// View - локальная выборка через тот же конвейер, что и на сервере
func (c *Cache) View(params query.Params) []*task.Task {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return query.Apply(c.snapshot, params)
}

func (c *Cache) SyncedAt() time.Time {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.syncedAt
}

// мутации проксируются на сервер, после чего кэш перечитывается целиком

func (c *Cache) Create(ctx context.Context, req CreateRequest) (*task.Task, error) {
	created, err := c.client.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return created, c.Refresh(ctx)
}

func (c *Cache) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*task.Task, error) {
	updated, err := c.client.UpdateTitle(ctx, id, title)
	if err != nil {
		return nil, err
	}
	return updated, c.Refresh(ctx)
}

func (c *Cache) SetCompletion(ctx context.Context, id uuid.UUID, completed bool) (*task.Task, error) {
	updated, err := c.client.SetCompletion(ctx, id, completed)
	if err != nil {
		return nil, err
	}
	return updated, c.Refresh(ctx)
}

func (c *Cache) SetDuration(ctx context.Context, id uuid.UUID, hours, minutes int) (*task.Task, error) {
	updated, err := c.client.SetDuration(ctx, id, hours, minutes)
	if err != nil {
		return nil, err
	}
	return updated, c.Refresh(ctx)
}

func (c *Cache) AddItem(ctx context.Context, id uuid.UUID, text string) (*task.Task, error) {
	updated, err := c.client.AddItem(ctx, id, text)
	if err != nil {
		return nil, err
	}
	return updated, c.Refresh(ctx)
}

func (c *Cache) UpdateItem(ctx context.Context, taskID, itemID uuid.UUID, text string) (*task.Task, error) {
	updated, err := c.client.UpdateItem(ctx, taskID, itemID, text)
	if err != nil {
		return nil, err
	}
	return updated, c.Refresh(ctx)
}

func (c *Cache) ToggleItem(ctx context.Context, taskID, itemID uuid.UUID) (*task.Task, error) {
	updated, err := c.client.ToggleItem(ctx, taskID, itemID)
	if err != nil {
		return nil, err
	}
	return updated, c.Refresh(ctx)
}

func (c *Cache) RemoveItem(ctx context.Context, taskID, itemID uuid.UUID) (*task.Task, error) {
	updated, err := c.client.RemoveItem(ctx, taskID, itemID)
	if err != nil {
		return nil, err
	}
	return updated, c.Refresh(ctx)
}

func (c *Cache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Delete(ctx, id); err != nil {
		return err
	}
	return c.Refresh(ctx)
}
