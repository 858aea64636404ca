// Package validators contains request validation for the HTTP layer, built on
// go-playground/validator with custom checks for blank fields and the task
// status enum.
package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"task-tracker.com/task-tracker/pkg/constants"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("taskstatus", taskStatus)
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func taskStatus(fl validator.FieldLevel) bool {
	return constants.TaskStatus(fl.Field().String()).Valid()
}
