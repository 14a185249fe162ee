package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskphoto.com/taskphoto/internal/constants"
	apperrors "taskphoto.com/taskphoto/internal/errors"
	model "taskphoto.com/taskphoto/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts task with status new. The id comes from the table's AUTOINCREMENT sequence.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	task.Status = constants.StatusNew
	task.Version = 1
	return r.db.WithContext(ctx).Create(task).Error
}

// Insert stores task as given, keeping its id and status. Used for fixtures.
func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) error {
	if task.Version == 0 {
		task.Version = 1
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns tasks newest-created first. A nil status returns every task.
func (r *TaskRepository) List(ctx context.Context, status *constants.TaskStatus) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Order("id desc")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var tasks []model.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, assignee string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("assignee = ?", assignee).
		Order("id desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&n).Error
	return n, err
}

// Update writes the mutable fields of task if its version still matches the stored row.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"status":       task.Status,
			"photo_url":    task.PhotoURL,
			"submitted_at": task.SubmittedAt,
			"version":      gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	task.Version++
	return nil
}
