package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"diary/internal/model"
	"diary/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string     `json:"title"`
	Priority    string     `json:"priority"`
	Due         *time.Time `json:"due"`
	Description string     `json:"description"`
}

// TaskUpdate carries optional field changes; nil pointers mean "leave as is".
type TaskUpdate struct {
	Title       *string    `json:"title"`
	Priority    *string    `json:"priority"`
	Due         *time.Time `json:"due"`
	Description *string    `json:"description"`
	Done        *bool      `json:"done"`
}

// TaskService wraps task-related business logic.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationErr("title", "must not be empty")
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return nil, validationErr("priority", "must be Low, Medium or High")
	}

	task := model.Task{
		Title:       title,
		Priority:    priority,
		Due:         model.DayPtr(input.Due),
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields. A missing id is a silent no-op.
func (s *TaskService) Update(ctx context.Context, id uint, update TaskUpdate) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, validationErr("title", "must not be empty")
		}
		task.Title = title
	}
	if update.Priority != nil {
		if !model.ValidPriority(*update.Priority) {
			return nil, validationErr("priority", "must be Low, Medium or High")
		}
		task.Priority = *update.Priority
	}
	if update.Due != nil {
		task.Due = model.DayPtr(update.Due)
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Done != nil {
		task.Done = *update.Done
	}

	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ToggleDone flips the done flag and touches nothing else. A missing id is a
// silent no-op.
func (s *TaskService) ToggleDone(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	task.Done = !task.Done
	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
