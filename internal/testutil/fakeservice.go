// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"geotask/internal/service"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int

	// Created records every payload passed to CreateTask.
	Created []service.NewTask

	// UploadURL is returned by UploadImage.
	UploadURL string

	// Uploaded records every path passed to UploadImage.
	Uploaded []string

	// Error injection for testing
	ListTasksErr    error
	CreateTaskErr   error
	SetCompletedErr error
	DeleteTaskErr   error
	UploadImageErr  error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1, UploadURL: "https://api.example.com/images/1.jpg"}
}

// AddTask seeds a task and returns its ID.
func (f *FakeService) AddTask(title string, completed bool, loc *service.Location) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("task-%d", f.nextID)
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:        id,
		Title:     title,
		Completed: completed,
		Location:  loc,
	})
	return id
}

// Tasks returns a copy of the current task list.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Tasks(), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, task service.NewTask) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, task)
	id := fmt.Sprintf("task-%d", f.nextID)
	f.nextID++
	loc := task.Location
	f.tasks = append(f.tasks, service.Task{
		ID:        id,
		Title:     task.Title,
		Completed: task.Completed,
		Location:  &loc,
		PhotoURI:  task.PhotoURI,
	})
	return nil
}

// SetCompleted implements service.Service.
func (f *FakeService) SetCompleted(ctx context.Context, id string, completed bool) error {
	if f.SetCompletedErr != nil {
		return f.SetCompletedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Completed = completed
			return nil
		}
	}
	return ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// UploadImage implements service.Service.
func (f *FakeService) UploadImage(ctx context.Context, path string) (string, error) {
	if f.UploadImageErr != nil {
		return "", f.UploadImageErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Uploaded = append(f.Uploaded, path)
	return f.UploadURL, nil
}
