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

// LearningInput represents data required to log a study session. A nil
// LogDate defaults to the caller-supplied current day.
type LearningInput struct {
	Topic   string     `json:"topic"`
	Minutes int        `json:"minutes"`
	Notes   string     `json:"notes"`
	LogDate *time.Time `json:"log_date"`
}

// LearningUpdate carries optional field changes; nil pointers mean "leave as is".
type LearningUpdate struct {
	Topic   *string    `json:"topic"`
	Minutes *int       `json:"minutes"`
	Notes   *string    `json:"notes"`
	LogDate *time.Time `json:"log_date"`
}

// LearningService wraps study-log business logic.
type LearningService struct {
	repo *repository.LearningRepository
}

func NewLearningService(repo *repository.LearningRepository) *LearningService {
	return &LearningService{repo: repo}
}

func (s *LearningService) Create(ctx context.Context, input LearningInput, today time.Time) (*model.LearningLog, error) {
	topic := strings.TrimSpace(input.Topic)
	if topic == "" {
		return nil, validationErr("topic", "must not be empty")
	}
	if input.Minutes < 0 {
		return nil, validationErr("minutes", "must not be negative")
	}

	logDate := model.Day(today)
	if input.LogDate != nil {
		logDate = model.Day(*input.LogDate)
	}

	entry := model.LearningLog{
		Topic:   topic,
		Minutes: input.Minutes,
		Notes:   input.Notes,
		LogDate: logDate,
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *LearningService) Get(ctx context.Context, id uint) (*model.LearningLog, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LearningService) List(ctx context.Context) ([]model.LearningLog, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields. A missing id is a silent no-op.
func (s *LearningService) Update(ctx context.Context, id uint, update LearningUpdate) (*model.LearningLog, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if update.Topic != nil {
		topic := strings.TrimSpace(*update.Topic)
		if topic == "" {
			return nil, validationErr("topic", "must not be empty")
		}
		entry.Topic = topic
	}
	if update.Minutes != nil {
		if *update.Minutes < 0 {
			return nil, validationErr("minutes", "must not be negative")
		}
		entry.Minutes = *update.Minutes
	}
	if update.Notes != nil {
		entry.Notes = *update.Notes
	}
	if update.LogDate != nil {
		entry.LogDate = model.Day(*update.LogDate)
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LearningService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
