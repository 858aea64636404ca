package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	caller := middleware.CallerFrom(c)

	tasks, err := h.taskService.List(c.Request().Context(), caller.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	caller := middleware.CallerFrom(c)

	task, err := h.taskService.Create(c.Request().Context(), caller.ID, &req)
	if err != nil {
		return httpError(err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired, "")
	}

	var patch dto.UpdateTaskRequest
	if err := c.Bind(&patch); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if err := validators.ValidateUpdateTaskRequest(&patch); err != nil {
		return err
	}

	caller := middleware.CallerFrom(c)

	task, err := h.taskService.Update(c.Request().Context(), caller.ID, id, &patch)
	if err != nil {
		return httpError(err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired, "")
	}

	caller := middleware.CallerFrom(c)

	if err := h.taskService.Delete(c.Request().Context(), caller.ID, id); err != nil {
		return httpError(err, "failed to delete task")
	}

	return c.JSON(http.StatusOK, dto.DeleteTaskResponse{ID: id})
}

// httpError maps taxonomy errors to their fixed status and message; anything
// outside the taxonomy becomes a 500 with the fallback message.
func httpError(err error, fallback string) *echo.HTTPError {
	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		return echo.NewHTTPError(code, fallback)
	}
	return echo.NewHTTPError(code, err.Error())
}
