package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"diary/internal/model"
)

// ShowRepository handles CRUD for tracked TV shows.
type ShowRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) Create(ctx context.Context, show *model.Show) error {
	if err := r.db.WithContext(ctx).Create(show).Error; err != nil {
		return fmt.Errorf("create show: %w", err)
	}
	return nil
}

func (r *ShowRepository) FindByID(ctx context.Context, id uint) (*model.Show, error) {
	var show model.Show
	if err := r.db.WithContext(ctx).First(&show, id).Error; err != nil {
		return nil, err
	}
	return &show, nil
}

// List returns shows ordered by title ascending (byte-wise collation).
func (r *ShowRepository) List(ctx context.Context) ([]model.Show, error) {
	var shows []model.Show
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

// AdvanceEpisode bumps episode and the lifetime watched counter in a single
// UPDATE so the two never drift apart.
func (r *ShowRepository) AdvanceEpisode(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Model(&model.Show{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"episode":                gorm.Expr("episode + 1"),
			"total_watched_episodes": gorm.Expr("total_watched_episodes + 1"),
		}).Error; err != nil {
		return fmt.Errorf("advance episode: %w", err)
	}
	return nil
}

// StartNewSeason resets episode to zero and bumps the season. The lifetime
// watched counter is left untouched.
func (r *ShowRepository) StartNewSeason(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Model(&model.Show{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"season":  gorm.Expr("season + 1"),
			"episode": 0,
		}).Error; err != nil {
		return fmt.Errorf("start new season: %w", err)
	}
	return nil
}

// SearchTitle returns shows whose title contains q, case-sensitively.
func (r *ShowRepository) SearchTitle(ctx context.Context, q string) ([]model.Show, error) {
	var shows []model.Show
	if err := r.db.WithContext(ctx).Where("instr(title, ?) > 0", q).Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *ShowRepository) Save(ctx context.Context, show *model.Show) error {
	if err := r.db.WithContext(ctx).Save(show).Error; err != nil {
		return fmt.Errorf("save show: %w", err)
	}
	return nil
}

func (r *ShowRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Show{}, id).Error; err != nil {
		return fmt.Errorf("delete show: %w", err)
	}
	return nil
}
