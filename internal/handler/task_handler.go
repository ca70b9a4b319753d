package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/service"
)

// TaskHandler handles the JSON task endpoints. All routes require a session.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Description string `json:"description" example:"buy milk"`
}

// UpdateTaskRequest represents a task update request.
type UpdateTaskRequest struct {
	Completed *bool `json:"completed" example:"true"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          uint   `json:"id" example:"1"`
	Description string `json:"description" example:"buy milk"`
	Completed   bool   `json:"completed" example:"false"`
}

// ListTasks godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Security SessionCookie
// @Success 200 {array} TaskResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context, userID uint) error {
	tasks, err := h.taskService.List(c.Request().Context(), userID)
	if err != nil {
		return apiError(c, err)
	}
	resp := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, toTaskResponse(&tasks[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CreateTaskRequest true "Task description"
// @Success 201 {object} TaskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context, userID uint) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, errors.ErrInvalidBody)
	}

	task, err := h.taskService.Create(c.Request().Context(), userID, req.Description)
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// UpdateTask godoc
// @Summary Mark a task complete or incomplete
// @Tags tasks
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Task ID"
// @Param request body UpdateTaskRequest true "Completed flag"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context, userID uint) error {
	taskID, ok := parseTaskID(c)
	if !ok {
		return apiError(c, errors.ErrTaskNotFound)
	}

	// A body that does not decode counts as a missing flag; ownership is
	// still checked first.
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		req.Completed = nil
	}

	task, err := h.taskService.SetCompleted(c.Request().Context(), userID, taskID, req.Completed)
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Security SessionCookie
// @Param id path int true "Task ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context, userID uint) error {
	taskID, ok := parseTaskID(c)
	if !ok {
		return apiError(c, errors.ErrTaskNotFound)
	}

	if err := h.taskService.Delete(c.Request().Context(), userID, taskID); err != nil {
		return apiError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Completed:   task.Completed,
	}
}

func parseTaskID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
