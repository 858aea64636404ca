package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/pkg/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context, owner string) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *TaskService) Create(ctx context.Context, owner string, req *dto.CreateTaskRequest) (*model.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	status := req.Status
	if status == "" {
		status = constants.StatusPending
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	return s.repo.Create(ctx, owner, title, req.Description, status)
}

func (s *TaskService) Update(ctx context.Context, owner, id string, patch *dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.findOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, apperrors.ErrTitleRequired
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		task.Status = *patch.Status
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, owner, id string) error {
	if _, err := s.findOwned(ctx, owner, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// findOwned loads a task and enforces the ownership gate: the record's owner
// must equal the caller's id exactly, there is no shared ownership model.
func (s *TaskService) findOwned(ctx context.Context, owner, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if task.Owner != owner {
		return nil, apperrors.ErrNotTaskOwner
	}

	return task, nil
}
