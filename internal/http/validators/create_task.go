package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if err := validate.Struct(r); err != nil {
		return taskFieldError(err)
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if err := validate.Struct(r); err != nil {
		return taskFieldError(err)
	}
	return nil
}

func taskFieldError(err error) error {
	if fields, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fields {
			switch fe.Field() {
			case "Title":
				return echo.NewHTTPError(http.StatusBadRequest, "title is required")
			case "Status":
				return echo.NewHTTPError(http.StatusBadRequest, "status must be one of pending, in-progress, completed")
			}
		}
	}
	return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
}
