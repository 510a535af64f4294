package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"diary/internal/model"
	"diary/internal/repository"
)

// Fixed titles used as dedup keys by the achievement and motivation rules.
const (
	TitleDeadlineReminder = "Deadline reminder"
	TitleMultipleTasks    = "Multiple tasks completed"
	TitleBookCompleted    = "Book completed"
	TitleIntensiveStudy   = "Intensive learning"
)

// multiTaskThreshold is the number of tasks finished on their due day that
// earns an achievement; intensiveMinutes is the daily study total that earns
// a motivation nudge.
const (
	multiTaskThreshold = 3
	intensiveMinutes   = 60
)

// NotificationService derives notifications from current journal state and
// manages their read/unread lifecycle.
type NotificationService struct {
	notifications *repository.NotificationRepository
	tasks         *repository.TaskRepository
	books         *repository.BookRepository
	learning      *repository.LearningRepository
}

func NewNotificationService(
	notifications *repository.NotificationRepository,
	tasks *repository.TaskRepository,
	books *repository.BookRepository,
	learning *repository.LearningRepository,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		tasks:         tasks,
		books:         books,
		learning:      learning,
	}
}

// RunPass evaluates all derivation rules against the store for the given day.
// The current day is always caller-supplied, never computed here.
//
// Each produced notification is persisted immediately and its dedup key is
// re-checked right before insert, so running the pass twice on the same day
// creates nothing new, and two overlapping passes cannot double-insert past
// the second existence check. A storage error aborts the remaining rules;
// partial application across rules is acceptable.
func (s *NotificationService) RunPass(ctx context.Context, today time.Time) error {
	day := model.Day(today)

	if err := s.deadlineReminders(ctx, day); err != nil {
		return fmt.Errorf("deadline reminders: %w", err)
	}
	if err := s.multiTaskAchievement(ctx, day); err != nil {
		return fmt.Errorf("multi-task achievement: %w", err)
	}
	if err := s.bookAchievements(ctx, day); err != nil {
		return fmt.Errorf("book achievements: %w", err)
	}
	if err := s.learningMotivation(ctx, day); err != nil {
		return fmt.Errorf("learning motivation: %w", err)
	}
	return nil
}

// deadlineReminders alerts on unfinished tasks due within the next three
// days. One notification per task per day.
func (s *NotificationService) deadlineReminders(ctx context.Context, day time.Time) error {
	upcoming, err := s.tasks.ListDueBetween(ctx, day, day.AddDate(0, 0, 3))
	if err != nil {
		return err
	}

	for _, task := range upcoming {
		daysLeft := int(task.Due.Sub(day).Hours() / 24)

		var message string
		switch daysLeft {
		case 0:
			message = fmt.Sprintf("Task %q is due today", task.Title)
		case 1:
			message = fmt.Sprintf("Task %q is due tomorrow", task.Title)
		default:
			message = fmt.Sprintf("Task %q is due in %d days", task.Title, daysLeft)
		}

		exists, err := s.notifications.ExistsForRelatedOn(ctx, model.NotificationDeadline, task.ID, day)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		taskID := task.ID
		n := model.Notification{
			Type:        model.NotificationDeadline,
			Title:       TitleDeadlineReminder,
			Message:     message,
			CreatedDate: day,
			RelatedID:   &taskID,
		}
		if err := s.notifications.Create(ctx, &n); err != nil {
			return err
		}
		log.Printf("[info] deadline reminder created task=%d daysLeft=%d", task.ID, daysLeft)
	}
	return nil
}

// multiTaskAchievement fires once per day when at least three tasks due today
// are already done, no matter how much the count grows afterwards.
func (s *NotificationService) multiTaskAchievement(ctx context.Context, day time.Time) error {
	count, err := s.tasks.CountDoneDueOn(ctx, day)
	if err != nil {
		return err
	}
	if count < multiTaskThreshold {
		return nil
	}

	exists, err := s.notifications.ExistsForTitleOn(ctx, model.NotificationAchievement, TitleMultipleTasks, day)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	n := model.Notification{
		Type:        model.NotificationAchievement,
		Title:       TitleMultipleTasks,
		Message:     fmt.Sprintf("Great work! You completed %d tasks today", count),
		CreatedDate: day,
	}
	if err := s.notifications.Create(ctx, &n); err != nil {
		return err
	}
	log.Printf("[info] multi-task achievement created count=%d", count)
	return nil
}

// bookAchievements fires once per book ever: the dedup key carries no date
// bound, unlike the per-day rules.
func (s *NotificationService) bookAchievements(ctx context.Context, day time.Time) error {
	completed, err := s.books.ListCompleted(ctx)
	if err != nil {
		return err
	}

	for _, book := range completed {
		exists, err := s.notifications.ExistsForRelated(ctx, model.NotificationAchievement, book.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		bookID := book.ID
		n := model.Notification{
			Type:        model.NotificationAchievement,
			Title:       TitleBookCompleted,
			Message:     fmt.Sprintf("Congratulations! You finished %q", book.Title),
			CreatedDate: day,
			RelatedID:   &bookID,
		}
		if err := s.notifications.Create(ctx, &n); err != nil {
			return err
		}
		log.Printf("[info] book achievement created book=%d", book.ID)
	}
	return nil
}

// learningMotivation fires once per day when today's study minutes reach the
// intensive threshold.
func (s *NotificationService) learningMotivation(ctx context.Context, day time.Time) error {
	total, err := s.learning.SumMinutesOn(ctx, day)
	if err != nil {
		return err
	}
	if total < intensiveMinutes {
		return nil
	}

	exists, err := s.notifications.ExistsForTitleOn(ctx, model.NotificationMotivation, TitleIntensiveStudy, day)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	n := model.Notification{
		Type:        model.NotificationMotivation,
		Title:       TitleIntensiveStudy,
		Message:     fmt.Sprintf("Impressive! You studied %d minutes today", total),
		CreatedDate: day,
	}
	if err := s.notifications.Create(ctx, &n); err != nil {
		return err
	}
	log.Printf("[info] learning motivation created minutes=%d", total)
	return nil
}

// ListUnread returns unread notifications, newest day first.
func (s *NotificationService) ListUnread(ctx context.Context) ([]model.Notification, error) {
	return s.notifications.ListUnread(ctx)
}

// ListAll returns notifications matching the filter, newest day first.
func (s *NotificationService) ListAll(ctx context.Context, filter repository.NotificationFilter) ([]model.Notification, error) {
	return s.notifications.ListAll(ctx, filter)
}

func (s *NotificationService) Get(ctx context.Context, id uint) (*model.Notification, error) {
	return s.notifications.FindByID(ctx, id)
}

// MarkRead flags a notification as read. Idempotent; a missing id is a
// silent no-op.
func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	return s.notifications.SetRead(ctx, id, true)
}

// MarkUnread flags a notification back to unread. Idempotent; a missing id is
// a silent no-op.
func (s *NotificationService) MarkUnread(ctx context.Context, id uint) error {
	return s.notifications.SetRead(ctx, id, false)
}

// MarkAllRead flags every unread notification as read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.notifications.MarkAllRead(ctx)
}

func (s *NotificationService) Delete(ctx context.Context, id uint) error {
	return s.notifications.Delete(ctx, id)
}

// DeleteRead clears notifications already marked read.
func (s *NotificationService) DeleteRead(ctx context.Context) error {
	return s.notifications.DeleteRead(ctx)
}
