package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"diary/internal/model"
)

// NotificationFilter narrows ListAll. Zero values mean "no filter".
type NotificationFilter struct {
	Type   string
	IsRead *bool
}

// NotificationRepository handles CRUD and dedup lookups for notifications.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint) (*model.Notification, error) {
	var n model.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ListUnread returns unread notifications, newest day first.
func (r *NotificationRepository) ListUnread(ctx context.Context) ([]model.Notification, error) {
	var ns []model.Notification
	if err := r.db.WithContext(ctx).
		Where("is_read = ?", false).
		Order("created_date DESC").
		Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

// ListAll returns notifications matching the filter, newest day first.
func (r *NotificationRepository) ListAll(ctx context.Context, filter NotificationFilter) ([]model.Notification, error) {
	q := r.db.WithContext(ctx).Order("created_date DESC")
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.IsRead != nil {
		q = q.Where("is_read = ?", *filter.IsRead)
	}
	var ns []model.Notification
	if err := q.Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

// ExistsForRelatedOn reports whether a notification with the given type and
// related id was already created on the given day. Dedup key for deadline
// reminders.
func (r *NotificationRepository) ExistsForRelatedOn(ctx context.Context, typ string, relatedID uint, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("type = ? AND related_id = ? AND created_date = ?", typ, relatedID, day).
		Count(&count).Error
	return count > 0, err
}

// ExistsForTitleOn reports whether a notification with the given type and
// fixed title was already created on the given day. Dedup key for the
// multi-task and learning-intensity rules.
func (r *NotificationRepository) ExistsForTitleOn(ctx context.Context, typ, title string, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("type = ? AND title = ? AND created_date = ?", typ, title, day).
		Count(&count).Error
	return count > 0, err
}

// ExistsForRelated reports whether a notification with the given type and
// related id exists at all, regardless of day. Dedup key for book-completed
// achievements, which fire at most once per book ever.
func (r *NotificationRepository) ExistsForRelated(ctx context.Context, typ string, relatedID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("type = ? AND related_id = ?", typ, relatedID).
		Count(&count).Error
	return count > 0, err
}

// SetRead updates the read flag. Writing the current value is a no-op.
func (r *NotificationRepository) SetRead(ctx context.Context, id uint, read bool) error {
	if err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", read).Error; err != nil {
		return fmt.Errorf("set notification read: %w", err)
	}
	return nil
}

// MarkAllRead flips every unread notification to read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Notification{}, id).Error; err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// DeleteRead removes every notification already marked read.
func (r *NotificationRepository) DeleteRead(ctx context.Context) error {
	if err := r.db.WithContext(ctx).
		Where("is_read = ?", true).
		Delete(&model.Notification{}).Error; err != nil {
		return fmt.Errorf("delete read notifications: %w", err)
	}
	return nil
}
