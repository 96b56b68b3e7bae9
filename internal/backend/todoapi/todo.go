package todoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"

	"geotask/internal/service"
)

// todosResponse is the wire shape of GET /todos.
type todosResponse struct {
	Success bool           `json:"success"`
	Data    []service.Task `json:"data"`
	Count   int            `json:"count"`
}

// completedPatch is the partial PATCH payload; only the mutated field is sent.
type completedPatch struct {
	Completed bool `json:"completed"`
}

// uploadResponse is the wire shape of POST /images.
type uploadResponse struct {
	Data struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"data"`
}

// ListTasks returns all tasks in server order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	resp, err := c.do(ctx, http.MethodGet, "/todos", nil, "")
	if err != nil {
		return nil, &service.RequestError{Op: "list todos", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, &service.RequestError{Op: "list todos", Err: err}
	}

	var decoded todosResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &service.DecodeError{Resource: "todos", Err: err}
	}
	if !decoded.Success {
		return nil, nil
	}
	return decoded.Data, nil
}

// CreateTask creates a task. No payload comes back; success is confirmation.
func (c *Client) CreateTask(ctx context.Context, task service.NewTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return &service.RequestError{Op: "create todo", Err: err}
	}

	resp, err := c.do(ctx, http.MethodPost, "/todos", bytes.NewReader(body), "application/json")
	if err != nil {
		return &service.RequestError{Op: "create todo", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return &service.RequestError{Op: "create todo", Err: err}
	}
	return nil
}

// SetCompleted updates a task's completion flag via a partial PATCH.
func (c *Client) SetCompleted(ctx context.Context, id string, completed bool) error {
	body, err := json.Marshal(completedPatch{Completed: completed})
	if err != nil {
		return &service.RequestError{Op: "update todo", Err: err}
	}

	resp, err := c.do(ctx, http.MethodPatch, "/todos/"+url.PathEscape(id), bytes.NewReader(body), "application/json")
	if err != nil {
		return &service.RequestError{Op: "update todo", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return &service.RequestError{Op: "update todo", Err: err}
	}
	return nil
}

// DeleteTask deletes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/todos/"+url.PathEscape(id), nil, "")
	if err != nil {
		return &service.RequestError{Op: "delete todo", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return &service.RequestError{Op: "delete todo", Err: err}
	}
	return nil
}

// UploadImage posts the file at path as multipart field "image" and returns
// the remote URL the server stored it under.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &service.RequestError{Op: "upload image", Err: err}
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "photo.jpg")
	if err != nil {
		return "", &service.RequestError{Op: "upload image", Err: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", &service.RequestError{Op: "upload image", Err: err}
	}
	if err := mw.Close(); err != nil {
		return "", &service.RequestError{Op: "upload image", Err: err}
	}

	resp, err := c.do(ctx, http.MethodPost, "/images", &buf, mw.FormDataContentType())
	if err != nil {
		return "", &service.RequestError{Op: "upload image", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", &service.RequestError{Op: "upload image", Err: err}
	}

	var decoded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", &service.DecodeError{Resource: "images", Err: err}
	}
	if decoded.Data.Data.URL == "" {
		return "", &service.DecodeError{Resource: "images", Err: errors.New("missing url")}
	}
	return decoded.Data.Data.URL, nil
}

// do issues a single request. No retries and no deadline beyond the caller's
// context; every failure is a single attempt surfaced synchronously.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.httpClient.Do(req)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	return fmt.Errorf("unexpected status %s", resp.Status)
}
