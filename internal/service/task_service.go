package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// TaskService handles task operations. Every operation is scoped to the
// acting user; other users' tasks behave as if they did not exist.
type TaskService interface {
	List(ctx context.Context, userID uint) ([]model.Task, error)
	Create(ctx context.Context, userID uint, description string) (*model.Task, error)
	SetCompleted(ctx context.Context, userID, taskID uint, completed *bool) (*model.Task, error)
	Delete(ctx context.Context, userID, taskID uint) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// List returns the user's tasks in insertion order.
func (s *taskService) List(ctx context.Context, userID uint) ([]model.Task, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create stores a new incomplete task owned by userID.
func (s *taskService) Create(ctx context.Context, userID uint, description string) (*model.Task, error) {
	if description == "" {
		return nil, apperrors.ErrDescriptionRequired
	}
	if utf8.RuneCountInString(description) > model.MaxDescriptionLength {
		return nil, apperrors.ErrDescriptionTooLong
	}

	task := &model.Task{
		Description: description,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// SetCompleted updates the completed flag. Ownership is checked before the
// value, so a foreign task id is reported as not found even with a bad body.
func (s *taskService) SetCompleted(ctx context.Context, userID, taskID uint, completed *bool) (*model.Task, error) {
	task, err := s.repo.FindOwned(ctx, taskID, userID)
	if err != nil {
		return nil, mapTaskErr(err)
	}
	if completed == nil {
		return nil, apperrors.ErrCompletedRequired
	}

	if err := s.repo.UpdateCompleted(ctx, task, *completed); err != nil {
		return nil, mapTaskErr(err)
	}
	return task, nil
}

// Delete removes an owned task.
func (s *taskService) Delete(ctx context.Context, userID, taskID uint) error {
	if err := s.repo.DeleteOwned(ctx, taskID, userID); err != nil {
		return mapTaskErr(err)
	}
	return nil
}

func mapTaskErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	return fmt.Errorf("task store: %w", err)
}
