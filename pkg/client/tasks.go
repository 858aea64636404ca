package client

import (
	"context"
	"net/http"
	"strings"

	"task-tracker.com/task-tracker/pkg/constants"
	"task-tracker.com/task-tracker/pkg/exceptions"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskDraft struct {
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Status      constants.TaskStatus `json:"status,omitempty"`
}

// TaskPatch carries the mutable task fields; nil means "leave as is".
type TaskPatch struct {
	Title       *string               `json:"title,omitempty"`
	Description *string               `json:"description,omitempty"`
	Status      *constants.TaskStatus `json:"status,omitempty"`
}

// TaskState holds the caller's tasks in creation order, synchronized to the
// server on every mutating call. It is not safe for concurrent use; the UI
// drives it from a single goroutine.
type TaskState struct {
	client *Client
	tasks  []model.Task
}

func NewTaskState(client *Client) *TaskState {
	return &TaskState{client: client}
}

// Tasks returns a copy of the current in-memory list.
func (s *TaskState) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Load fetches the caller's tasks. On failure the prior list is left
// unchanged.
func (s *TaskState) Load(ctx context.Context, token string) ([]model.Task, error) {
	var tasks []model.Task
	if err := s.client.do(ctx, http.MethodGet, "/api/tasks", token, nil, &tasks); err != nil {
		return nil, err
	}

	s.tasks = tasks
	return s.Tasks(), nil
}

// Create validates the draft locally, then posts it and appends the returned
// record. An empty or whitespace-only title is rejected before any network
// call.
func (s *TaskState) Create(ctx context.Context, draft TaskDraft, token string) (*model.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, exceptions.ErrTitleRequired
	}

	var task model.Task
	if err := s.client.do(ctx, http.MethodPost, "/api/tasks", token, draft, &task); err != nil {
		return nil, err
	}

	s.tasks = append(s.tasks, task)
	return &task, nil
}

// Update sends the patch and replaces the matching local record with the
// server's updated copy.
func (s *TaskState) Update(ctx context.Context, id string, patch TaskPatch, token string) (*model.Task, error) {
	var task model.Task
	if err := s.client.do(ctx, http.MethodPut, "/api/tasks/"+id, token, patch, &task); err != nil {
		return nil, err
	}

	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			break
		}
	}
	return &task, nil
}

// Delete removes the task on the server, then drops it from the local list.
func (s *TaskState) Delete(ctx context.Context, id, token string) error {
	var confirmed struct {
		ID string `json:"id"`
	}
	if err := s.client.do(ctx, http.MethodDelete, "/api/tasks/"+id, token, nil, &confirmed); err != nil {
		return err
	}

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return nil
}
