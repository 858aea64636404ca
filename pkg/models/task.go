package model

import (
	"time"

	"task-tracker.com/task-tracker/pkg/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Owner       string               `gorm:"index;size:36;not null" json:"owner"`
	Title       string               `gorm:"not null" json:"title"`
	Description string               `json:"description,omitempty"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
