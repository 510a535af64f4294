package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"diary/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns tasks with incomplete ones first, then by deadline ascending
// with undated tasks last.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Order("done ASC").
		Order("due IS NULL").
		Order("due ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListDueBetween returns unfinished tasks whose deadline falls in [from, to]
// inclusive.
func (r *TaskRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("due IS NOT NULL AND due >= ? AND due <= ? AND done = ?", from, to, false).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountDoneDueOn counts completed tasks with a deadline on the given day.
func (r *TaskRepository) CountDoneDueOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("done = ? AND due = ?", true, day).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListDueOn returns tasks with a deadline on the given day.
func (r *TaskRepository) ListDueOn(ctx context.Context, day time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("due = ?", day).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// SearchTitle returns tasks whose title contains q, case-sensitively.
func (r *TaskRepository) SearchTitle(ctx context.Context, q string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("instr(title, ?) > 0", q).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
