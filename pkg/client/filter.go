package client

import (
	"strings"

	"task-tracker.com/task-tracker/pkg/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

// Filter returns the tasks whose title or description contains searchTerm
// (case-insensitive) and whose status matches statusFilter ("all" matches
// every status). Relative order is preserved. Pure function.
func Filter(tasks []model.Task, searchTerm, statusFilter string) []model.Task {
	term := strings.ToLower(searchTerm)

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		matchesSearch := strings.Contains(strings.ToLower(t.Title), term) ||
			(t.Description != "" && strings.Contains(strings.ToLower(t.Description), term))
		matchesStatus := statusFilter == constants.StatusFilterAll || string(t.Status) == statusFilter

		if matchesSearch && matchesStatus {
			out = append(out, t)
		}
	}
	return out
}

type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
}

// ComputeStats counts tasks per status. Total always equals the sum of the
// three buckets.
func ComputeStats(tasks []model.Task) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case constants.StatusCompleted:
			stats.Completed++
		case constants.StatusInProgress:
			stats.InProgress++
		default:
			stats.Pending++
		}
	}
	return stats
}
