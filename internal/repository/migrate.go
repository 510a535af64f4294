package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"diary/internal/model"
)

// schemaVersionShowTotals marks the backfill that seeded
// total_watched_episodes after the field was added to Show.
const schemaVersionShowTotals = 2

// BackfillShowTotals sets total_watched_episodes to the current episode for
// shows that predate the field. Guarded by an explicit schema version so rows
// that legitimately hold 0 are never re-touched on later runs.
func BackfillShowTotals(ctx context.Context, db *gorm.DB) error {
	var applied model.SchemaVersion
	err := db.WithContext(ctx).Where("version = ?", schemaVersionShowTotals).First(&applied).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to the backfill
	default:
		return fmt.Errorf("check schema version: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Show{}).
			Where("total_watched_episodes = 0 AND episode > 0").
			Update("total_watched_episodes", gorm.Expr("episode")).Error; err != nil {
			return fmt.Errorf("backfill show totals: %w", err)
		}
		record := model.SchemaVersion{Version: schemaVersionShowTotals, AppliedAt: time.Now()}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	})
}
