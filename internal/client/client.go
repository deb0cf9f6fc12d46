// Package client - программный клиент REST API задач.
// Client - типизированные обёртки над эндпоинтами, Cache - локальная
// копия коллекции с опросом по таймеру. Источник истины всегда сервер.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"taskBoard/internal/models/task"
	"taskBoard/internal/query"

	"github.com/google/uuid"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError - ошибка, которую вернул сервер
type APIError struct {
	Status  int
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d [%s] %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %d [%s]", e.Status, e.Code)
}

type CreateRequest struct {
	Type  string      `json:"type"`
	Props CreateProps `json:"props"`
}

type CreateProps struct {
	Title   string          `json:"title,omitempty"`
	Hours   int             `json:"hours,omitempty"`
	Minutes int             `json:"minutes,omitempty"`
	DueDate *time.Time      `json:"due_date,omitempty"`
	Items   []CreateItemReq `json:"items,omitempty"`
}

type CreateItemReq struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed,omitempty"`
}

func (c *Client) List(ctx context.Context, params query.Params) ([]*task.Task, error) {
	values := url.Values{}
	if params.Search != "" {
		values.Set("query", params.Search)
	}
	if params.Filter != "" {
		values.Set("filter", string(params.Filter))
	}
	if params.Sort != "" {
		values.Set("sort", string(params.Sort))
	}

	endpoint := c.baseURL + "/api/tasks"
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var tasks []*task.Task
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Get(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	return c.taskRequest(ctx, http.MethodGet, "/api/tasks/"+id.String(), nil)
}

func (c *Client) Create(ctx context.Context, req CreateRequest) (*task.Task, error) {
	return c.taskRequest(ctx, http.MethodPost, "/api/tasks", req)
}

func (c *Client) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*task.Task, error) {
	body := map[string]string{"title": title}
	return c.taskRequest(ctx, http.MethodPatch, "/api/tasks/"+id.String()+"/title", body)
}

func (c *Client) SetCompletion(ctx context.Context, id uuid.UUID, completed bool) (*task.Task, error) {
	body := map[string]bool{"completed": completed}
	return c.taskRequest(ctx, http.MethodPatch, "/api/tasks/"+id.String()+"/completion", body)
}

func (c *Client) SetDuration(ctx context.Context, id uuid.UUID, hours, minutes int) (*task.Task, error) {
	body := map[string]int{"hours": hours, "minutes": minutes}
	return c.taskRequest(ctx, http.MethodPatch, "/api/tasks/"+id.String()+"/duration", body)
}

func (c *Client) AddItem(ctx context.Context, id uuid.UUID, text string) (*task.Task, error) {
	body := map[string]string{"text": text}
	return c.taskRequest(ctx, http.MethodPost, "/api/tasks/"+id.String()+"/items", body)
}

func (c *Client) UpdateItem(ctx context.Context, taskID, itemID uuid.UUID, text string) (*task.Task, error) {
	body := map[string]string{"text": text}
	return c.taskRequest(ctx, http.MethodPut, "/api/tasks/"+taskID.String()+"/items/"+itemID.String(), body)
}

func (c *Client) ToggleItem(ctx context.Context, taskID, itemID uuid.UUID) (*task.Task, error) {
	return c.taskRequest(ctx, http.MethodPatch, "/api/tasks/"+taskID.String()+"/items/"+itemID.String()+"/completion", nil)
}

func (c *Client) RemoveItem(ctx context.Context, taskID, itemID uuid.UUID) (*task.Task, error) {
	return c.taskRequest(ctx, http.MethodDelete, "/api/tasks/"+taskID.String()+"/items/"+itemID.String(), nil)
}

func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/api/tasks/"+id.String(), nil, nil)
}

func (c *Client) taskRequest(ctx context.Context, method, path string, body any) (*task.Task, error) {
	var res task.Task
	if err := c.do(ctx, method, c.baseURL+path, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("кодирование тела запроса: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("запрос %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("декодирование ответа: %w", err)
		}
	}
	return nil
}
