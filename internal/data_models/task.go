package dto

import "task-tracker.com/task-tracker/pkg/constants"

type CreateTaskRequest struct {
	Title       string               `json:"title" validate:"notblank"`
	Description string               `json:"description"`
	Status      constants.TaskStatus `json:"status" validate:"omitempty,taskstatus"`
}

// UpdateTaskRequest carries the mutable task fields; nil means "leave as is".
type UpdateTaskRequest struct {
	Title       *string               `json:"title" validate:"omitempty,notblank"`
	Description *string               `json:"description"`
	Status      *constants.TaskStatus `json:"status" validate:"omitempty,taskstatus"`
}

type DeleteTaskResponse struct {
	ID string `json:"id"`
}
