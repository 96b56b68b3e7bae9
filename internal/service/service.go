// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for authenticated task backend operations.
// All task API calls go through this interface; commands never import the
// HTTP backend directly. Implementations are bound to a bearer token at
// construction time and perform no I/O until a method is called.
type Service interface {
	// ListTasks returns all tasks in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task. The server assigns the ID; no payload is
	// returned (fire-and-confirm).
	CreateTask(ctx context.Context, task NewTask) error

	// SetCompleted updates a task's completion flag. The request carries
	// only the mutated field.
	SetCompleted(ctx context.Context, id string, completed bool) error

	// DeleteTask deletes a task by ID.
	DeleteTask(ctx context.Context, id string) error

	// UploadImage uploads the image at the given local path and returns
	// its remote URL.
	UploadImage(ctx context.Context, path string) (string, error)
}
