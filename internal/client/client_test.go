package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"taskBoard/internal/client"
	"taskBoard/internal/handlers"
	"taskBoard/internal/query"
	"taskBoard/internal/repository/task/inmemory"
	"taskBoard/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// тесты клиента гоняются против настоящего стека:
// роутер -> хендлеры -> сервис -> хранилище в памяти

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := inmemory.NewTaskStorage()
	svc := service.NewTaskService(repo)
	router := handlers.NewRouter(handlers.NewTaskHandler(&svc))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// TestClient_BasicTaskLifecycle проходит жизненный цикл basic-задачи:
// создание -> завершение -> удаление
func TestClient_BasicTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	api := client.New(server.URL)

	created, err := api.Create(ctx, client.CreateRequest{
		Type:  "basic",
		Props: client.CreateProps{Title: "Buy milk"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)
	assert.Nil(t, created.DueDate)

	completed, err := api.SetCompletion(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	assert.True(t, completed.UpdatedAt.After(completed.CreatedAt))

	require.NoError(t, api.Delete(ctx, created.ID))

	_, err = api.Get(ctx, created.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, service.CodeNotFound, apiErr.Code)
}

// TestClient_TimedTask проверяет вычисляемый дедлайн
func TestClient_TimedTask(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	api := client.New(server.URL)

	before := time.Now()
	created, err := api.Create(ctx, client.CreateRequest{
		Type:  "timed",
		Props: client.CreateProps{Title: "Prepare presentation", Hours: 1, Minutes: 30},
	})
	after := time.Now()
	require.NoError(t, err)

	require.NotNil(t, created.DueDate)
	assert.WithinRange(t, *created.DueDate, before.Add(90*time.Minute), after.Add(90*time.Minute))

	// пересчёт длительности сдвигает дедлайн от текущего момента
	updated, err := api.SetDuration(ctx, created.ID, 0, 5)
	require.NoError(t, err)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Before(*created.DueDate))

	// для basic-задачи та же операция - ошибка
	basic, err := api.Create(ctx, client.CreateRequest{Type: "basic"})
	require.NoError(t, err)

	_, err = api.SetDuration(ctx, basic.ID, 1, 0)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, service.CodeWrongType, apiErr.Code)
}

// TestClient_ChecklistDerivedCompletion проходит сценарий производной
// завершённости: два пункта -> оба завершены -> добавлен третий
func TestClient_ChecklistDerivedCompletion(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	api := client.New(server.URL)

	created, err := api.Create(ctx, client.CreateRequest{
		Type: "checklist",
		Props: client.CreateProps{
			Title: "Website Redesign",
			Items: []client.CreateItemReq{
				{Text: "A"},
				{Text: "B"},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Items, 2)
	assert.False(t, created.Completed)

	// завершаем оба пункта - родитель становится завершённым
	_, err = api.ToggleItem(ctx, created.ID, created.Items[0].ID)
	require.NoError(t, err)
	toggled, err := api.ToggleItem(ctx, created.ID, created.Items[1].ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	// новый пункт всегда незавершённый - родитель снова незавершён
	withNew, err := api.AddItem(ctx, created.ID, "C")
	require.NoError(t, err)
	require.Len(t, withNew.Items, 3)
	assert.False(t, withNew.Completed)

	// удаление всех пунктов оставляет пусто-завершённую задачу
	for _, item := range withNew.Items {
		_, err = api.RemoveItem(ctx, created.ID, item.ID)
		require.NoError(t, err)
	}
	emptied, err := api.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, emptied.Items)
	assert.True(t, emptied.Completed)
}

// TestClient_SearchByItemText проверяет поиск по тексту пункта
func TestClient_SearchByItemText(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	api := client.New(server.URL)

	_, err := api.Create(ctx, client.CreateRequest{
		Type:  "basic",
		Props: client.CreateProps{Title: "Call mom"},
	})
	require.NoError(t, err)

	shopping, err := api.Create(ctx, client.CreateRequest{
		Type: "checklist",
		Props: client.CreateProps{
			Title: "Shopping list",
			Items: []client.CreateItemReq{{Text: "cheese"}},
		},
	})
	require.NoError(t, err)

	// заголовок не содержит подстроку, но пункт содержит
	found, err := api.List(ctx, query.Params{Search: "cheese"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, shopping.ID, found[0].ID)
}

// TestClient_UpdateItemText проверяет смену текста пункта
func TestClient_UpdateItemText(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	api := client.New(server.URL)

	created, err := api.Create(ctx, client.CreateRequest{
		Type: "checklist",
		Props: client.CreateProps{
			Items: []client.CreateItemReq{{Text: "old", Completed: true}},
		},
	})
	require.NoError(t, err)

	updated, err := api.UpdateItem(ctx, created.ID, created.Items[0].ID, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Items[0].Text)
	// завершённость пункта не тронута
	assert.True(t, updated.Items[0].Completed)

	_, err = api.UpdateItem(ctx, created.ID, uuid.New(), "ghost")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

// TestCache_ViewAndRefresh тестирует локальную копию коллекции
func TestCache_ViewAndRefresh(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	api := client.New(server.URL)
	cache := client.NewCache(api)

	// мутации через кэш сами перечитывают коллекцию
	_, err := cache.Create(ctx, client.CreateRequest{
		Type:  "basic",
		Props: client.CreateProps{Title: "banana"},
	})
	require.NoError(t, err)
	_, err = cache.Create(ctx, client.CreateRequest{
		Type:  "basic",
		Props: client.CreateProps{Title: "apple"},
	})
	require.NoError(t, err)

	assert.False(t, cache.SyncedAt().IsZero())

	// локальная выборка через тот же конвейер, что и на сервере
	view := cache.View(query.Params{Sort: query.SortByName})
	require.Len(t, view, 2)
	assert.Equal(t, "apple", view[0].Title)
	assert.Equal(t, "banana", view[1].Title)

	created, err := cache.Create(ctx, client.CreateRequest{
		Type:  "basic",
		Props: client.CreateProps{Title: "cherry"},
	})
	require.NoError(t, err)

	_, err = cache.SetCompletion(ctx, created.ID, true)
	require.NoError(t, err)

	active := cache.View(query.Params{Filter: query.FilterActive})
	require.Len(t, active, 2)
	for _, got := range active {
		assert.False(t, got.Completed)
	}

	require.NoError(t, cache.Delete(ctx, created.ID))
	assert.Len(t, cache.View(query.Params{}), 2)
}

// TestCache_DefaultOrderIsCreation проверяет канонический порядок по умолчанию
func TestCache_DefaultOrderIsCreation(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	api := client.New(server.URL)
	cache := client.NewCache(api)

	titlesInOrder := []string{"third", "first", "second"}
	for _, title := range titlesInOrder {
		_, err := cache.Create(ctx, client.CreateRequest{
			Type:  "basic",
			Props: client.CreateProps{Title: title},
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	view := cache.View(query.Params{Sort: query.SortByID})
	require.Len(t, view, 3)
	for i, got := range view {
		assert.Equal(t, titlesInOrder[i], got.Title)
	}
}
