package repository

import (
	"context"

	"gorm.io/gorm"

	"tasktracker/internal/model"
)

// TaskRepository defines task persistence operations. Every lookup that
// targets a single task is scoped to its owner; a task owned by someone
// else is reported as gorm.ErrRecordNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	ListByUser(ctx context.Context, userID uint) ([]model.Task, error)
	FindOwned(ctx context.Context, id, userID uint) (*model.Task, error)
	UpdateCompleted(ctx context.Context, task *model.Task, completed bool) error
	DeleteOwned(ctx context.Context, id, userID uint) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a new task.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// ListByUser returns the user's tasks in insertion order.
func (r *taskRepository) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	tasks := []model.Task{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindOwned finds a task by ID that belongs to userID.
func (r *taskRepository) FindOwned(ctx context.Context, id, userID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateCompleted sets the completed flag only; description and owner are immutable.
func (r *taskRepository) UpdateCompleted(ctx context.Context, task *model.Task, completed bool) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Update("completed", completed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows when the value is unchanged.
		if _, err := r.FindOwned(ctx, task.ID, task.UserID); err != nil {
			return err
		}
	}
	task.Completed = completed
	return nil
}

// DeleteOwned removes a task by ID if it belongs to userID.
func (r *taskRepository) DeleteOwned(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
