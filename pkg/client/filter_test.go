package client

import (
	"reflect"
	"testing"

	"task-tracker.com/task-tracker/pkg/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Buy milk", Status: constants.StatusPending},
		{ID: "2", Title: "Call Bob", Description: "re: milk", Status: constants.StatusPending},
		{ID: "3", Title: "Write report", Description: "quarterly numbers", Status: constants.StatusInProgress},
		{ID: "4", Title: "Ship release", Status: constants.StatusCompleted},
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFilter_Identity(t *testing.T) {
	tasks := sampleTasks()

	got := Filter(tasks, "", constants.StatusFilterAll)
	if !reflect.DeepEqual(got, tasks) {
		t.Errorf("empty filters must return the input unchanged, got %v", ids(got))
	}
}

func TestFilter_CaseInsensitiveOnTitleAndDescription(t *testing.T) {
	tasks := sampleTasks()

	got := Filter(tasks, "MILK", constants.StatusFilterAll)
	if want := []string{"1", "2"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}

	got = Filter(tasks, "QuArTeRlY", constants.StatusFilterAll)
	if want := []string{"3"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestFilter_StatusPredicate(t *testing.T) {
	tasks := sampleTasks()

	got := Filter(tasks, "", "completed")
	if want := []string{"4"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}

	// Both milk tasks default to pending, so a completed filter drops both.
	got = Filter(tasks, "milk", "completed")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", ids(got))
	}
}

func TestFilter_PreservesOrderAndIsIdempotent(t *testing.T) {
	tasks := sampleTasks()

	once := Filter(tasks, "i", constants.StatusFilterAll)
	twice := Filter(once, "i", constants.StatusFilterAll)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter must be idempotent: %v vs %v", ids(once), ids(twice))
	}

	for i := 1; i < len(once); i++ {
		if once[i-1].ID >= once[i].ID {
			t.Errorf("relative order not preserved: %v", ids(once))
		}
	}
}

func TestComputeStats_TotalIsSumOfBuckets(t *testing.T) {
	cases := [][]model.Task{
		nil,
		sampleTasks(),
		Filter(sampleTasks(), "milk", constants.StatusFilterAll),
		Filter(sampleTasks(), "", "in-progress"),
	}

	for _, tasks := range cases {
		stats := ComputeStats(tasks)
		if stats.Total != len(tasks) {
			t.Errorf("expected total %d, got %d", len(tasks), stats.Total)
		}
		if stats.Total != stats.Completed+stats.InProgress+stats.Pending {
			t.Errorf("total must equal sum of buckets: %+v", stats)
		}
	}
}
