package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"diary/internal/model"
)

// LearningRepository handles CRUD for study-time logs.
type LearningRepository struct {
	db *gorm.DB
}

func NewLearningRepository(db *gorm.DB) *LearningRepository {
	return &LearningRepository{db: db}
}

func (r *LearningRepository) Create(ctx context.Context, entry *model.LearningLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create learning log: %w", err)
	}
	return nil
}

func (r *LearningRepository) FindByID(ctx context.Context, id uint) (*model.LearningLog, error) {
	var entry model.LearningLog
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns study logs, most recent day first.
func (r *LearningRepository) List(ctx context.Context) ([]model.LearningLog, error) {
	var entries []model.LearningLog
	if err := r.db.WithContext(ctx).Order("log_date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListOn returns study logs for the given day.
func (r *LearningRepository) ListOn(ctx context.Context, day time.Time) ([]model.LearningLog, error) {
	var entries []model.LearningLog
	if err := r.db.WithContext(ctx).Where("log_date = ?", day).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// SumMinutesOn totals study minutes logged on the given day.
func (r *LearningRepository) SumMinutesOn(ctx context.Context, day time.Time) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.LearningLog{}).
		Where("log_date = ?", day).
		Select("COALESCE(SUM(minutes), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// Search returns study logs whose topic or notes contain q, case-sensitively.
func (r *LearningRepository) Search(ctx context.Context, q string) ([]model.LearningLog, error) {
	var entries []model.LearningLog
	if err := r.db.WithContext(ctx).
		Where("instr(topic, ?) > 0 OR instr(notes, ?) > 0", q, q).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *LearningRepository) Save(ctx context.Context, entry *model.LearningLog) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("save learning log: %w", err)
	}
	return nil
}

func (r *LearningRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.LearningLog{}, id).Error; err != nil {
		return fmt.Errorf("delete learning log: %w", err)
	}
	return nil
}
