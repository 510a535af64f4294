package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"diary/internal/model"
	"diary/internal/repository"
	"diary/internal/testutil"
)

type fixture struct {
	db            *gorm.DB
	tasks         *TaskService
	books         *BookService
	learning      *LearningService
	notifications *NotificationService
	repo          *repository.NotificationRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	taskRepo := repository.NewTaskRepository(db)
	bookRepo := repository.NewBookRepository(db)
	learningRepo := repository.NewLearningRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	return &fixture{
		db:            db,
		tasks:         NewTaskService(taskRepo),
		books:         NewBookService(bookRepo),
		learning:      NewLearningService(learningRepo),
		notifications: NewNotificationService(notificationRepo, taskRepo, bookRepo, learningRepo),
		repo:          notificationRepo,
	}
}

func (f *fixture) all(t *testing.T, filter repository.NotificationFilter) []model.Notification {
	t.Helper()
	ns, err := f.repo.ListAll(context.Background(), filter)
	require.NoError(t, err)
	return ns
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeadlineReminders_OnePerTaskPerDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(2024, 3, 10)

	for i := 0; i <= 4; i++ {
		due := today.AddDate(0, 0, i)
		_, err := f.tasks.Create(ctx, TaskInput{Title: fmt.Sprintf("task %d", i), Due: &due})
		require.NoError(t, err)
	}

	require.NoError(t, f.notifications.RunPass(ctx, today))
	require.NoError(t, f.notifications.RunPass(ctx, today))

	reminders := f.all(t, repository.NotificationFilter{Type: model.NotificationDeadline})
	// Due dates 4 days out are beyond the reminder window.
	assert.Len(t, reminders, 4)

	messages := make(map[uint]string)
	for _, n := range reminders {
		require.NotNil(t, n.RelatedID)
		messages[*n.RelatedID] = n.Message
		assert.Equal(t, TitleDeadlineReminder, n.Title)
		assert.True(t, n.CreatedDate.Equal(today))
	}
	assert.Contains(t, messages[1], "due today")
	assert.Contains(t, messages[2], "due tomorrow")
	assert.Contains(t, messages[3], "due in 2 days")
	assert.Contains(t, messages[4], "due in 3 days")
}

func TestDeadlineReminders_SkipDoneTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(2024, 3, 10)

	due := today
	task, err := f.tasks.Create(ctx, TaskInput{Title: "already finished", Due: &due})
	require.NoError(t, err)
	_, err = f.tasks.ToggleDone(ctx, task.ID)
	require.NoError(t, err)

	require.NoError(t, f.notifications.RunPass(ctx, today))
	assert.Empty(t, f.all(t, repository.NotificationFilter{Type: model.NotificationDeadline}))
}

func TestDeadlineReminders_NewReminderNextDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(2024, 3, 10)

	due := today.AddDate(0, 0, 2)
	_, err := f.tasks.Create(ctx, TaskInput{Title: "deploy", Due: &due})
	require.NoError(t, err)

	require.NoError(t, f.notifications.RunPass(ctx, today))
	require.NoError(t, f.notifications.RunPass(ctx, today.AddDate(0, 0, 1)))

	reminders := f.all(t, repository.NotificationFilter{Type: model.NotificationDeadline})
	require.Len(t, reminders, 2)
	// Reminder dedup is per day, so the next day gets a fresh one.
	assert.NotEqual(t, reminders[0].CreatedDate, reminders[1].CreatedDate)
}

func TestMultiTaskAchievement_Threshold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(2024, 3, 10)

	addDone := func(title string) {
		due := today
		task, err := f.tasks.Create(ctx, TaskInput{Title: title, Due: &due})
		require.NoError(t, err)
		_, err = f.tasks.ToggleDone(ctx, task.ID)
		require.NoError(t, err)
	}

	addDone("one")
	addDone("two")
	require.NoError(t, f.notifications.RunPass(ctx, today))
	assert.Empty(t, f.all(t, repository.NotificationFilter{Type: model.NotificationAchievement}))

	addDone("three")
	require.NoError(t, f.notifications.RunPass(ctx, today))
	achievements := f.all(t, repository.NotificationFilter{Type: model.NotificationAchievement})
	require.Len(t, achievements, 1)
	assert.Equal(t, TitleMultipleTasks, achievements[0].Title)
	assert.Contains(t, achievements[0].Message, "3 tasks")

	addDone("four")
	require.NoError(t, f.notifications.RunPass(ctx, today))
	assert.Len(t, f.all(t, repository.NotificationFilter{Type: model.NotificationAchievement}), 1)
}

func TestBookAchievement_OncePerBookEver(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	book, err := f.books.Create(ctx, BookInput{Title: "The Go Programming Language", PagesTotal: 380, PagesRead: 380})
	require.NoError(t, err)

	today := day(2024, 3, 10)
	for i := 0; i < 100; i++ {
		// Spread runs across days: the book dedup key has no date bound.
		require.NoError(t, f.notifications.RunPass(ctx, today.AddDate(0, 0, i/10)))
	}

	achievements := f.all(t, repository.NotificationFilter{Type: model.NotificationAchievement})
	require.Len(t, achievements, 1)
	assert.Equal(t, TitleBookCompleted, achievements[0].Title)
	require.NotNil(t, achievements[0].RelatedID)
	assert.Equal(t, book.ID, *achievements[0].RelatedID)
}

func TestBookAchievement_OvershootStillCompletes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	book, err := f.books.Create(ctx, BookInput{Title: "Overshot", PagesTotal: 100, PagesRead: 90})
	require.NoError(t, err)
	_, err = f.books.AddPages(ctx, book.ID, 25)
	require.NoError(t, err)

	require.NoError(t, f.notifications.RunPass(ctx, day(2024, 3, 10)))
	assert.Len(t, f.all(t, repository.NotificationFilter{Type: model.NotificationAchievement}), 1)
}

func TestBookAchievement_UnknownPageCountIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.books.Create(ctx, BookInput{Title: "No page count", PagesTotal: 0, PagesRead: 50})
	require.NoError(t, err)

	require.NoError(t, f.notifications.RunPass(ctx, day(2024, 3, 10)))
	assert.Empty(t, f.all(t, repository.NotificationFilter{Type: model.NotificationAchievement}))
}

func TestLearningMotivation_Threshold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(2024, 3, 10)

	_, err := f.learning.Create(ctx, LearningInput{Topic: "goroutines", Minutes: 30}, today)
	require.NoError(t, err)
	_, err = f.learning.Create(ctx, LearningInput{Topic: "channels", Minutes: 29}, today)
	require.NoError(t, err)

	require.NoError(t, f.notifications.RunPass(ctx, today))
	assert.Empty(t, f.all(t, repository.NotificationFilter{Type: model.NotificationMotivation}))

	_, err = f.learning.Create(ctx, LearningInput{Topic: "select", Minutes: 1}, today)
	require.NoError(t, err)

	require.NoError(t, f.notifications.RunPass(ctx, today))
	motivations := f.all(t, repository.NotificationFilter{Type: model.NotificationMotivation})
	require.Len(t, motivations, 1)
	assert.Equal(t, TitleIntensiveStudy, motivations[0].Title)
	assert.Contains(t, motivations[0].Message, "60 minutes")

	require.NoError(t, f.notifications.RunPass(ctx, today))
	assert.Len(t, f.all(t, repository.NotificationFilter{Type: model.NotificationMotivation}), 1)
}

func TestLearningMotivation_YesterdayDoesNotCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(2024, 3, 10)

	yesterday := today.AddDate(0, 0, -1)
	_, err := f.learning.Create(ctx, LearningInput{Topic: "testing", Minutes: 120, LogDate: &yesterday}, today)
	require.NoError(t, err)

	require.NoError(t, f.notifications.RunPass(ctx, today))
	assert.Empty(t, f.all(t, repository.NotificationFilter{Type: model.NotificationMotivation}))
}

func TestDanglingRelatedIDTolerated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	book, err := f.books.Create(ctx, BookInput{Title: "Deleted later", PagesTotal: 10, PagesRead: 10})
	require.NoError(t, err)
	require.NoError(t, f.notifications.RunPass(ctx, day(2024, 3, 10)))

	require.NoError(t, f.books.Delete(ctx, book.ID))

	// The achievement still reads back fine with its now-dangling reference.
	ns, err := f.notifications.ListUnread(ctx)
	require.NoError(t, err)
	require.Len(t, ns, 1)
	require.NotNil(t, ns[0].RelatedID)
	assert.Equal(t, book.ID, *ns[0].RelatedID)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.books.Create(ctx, BookInput{Title: "Read me", PagesTotal: 1, PagesRead: 1})
	require.NoError(t, err)
	require.NoError(t, f.notifications.RunPass(ctx, day(2024, 3, 10)))

	ns, err := f.notifications.ListUnread(ctx)
	require.NoError(t, err)
	require.Len(t, ns, 1)

	require.NoError(t, f.notifications.MarkRead(ctx, ns[0].ID))
	require.NoError(t, f.notifications.MarkRead(ctx, ns[0].ID))

	unread, err := f.notifications.ListUnread(ctx)
	require.NoError(t, err)
	assert.Empty(t, unread)

	require.NoError(t, f.notifications.MarkUnread(ctx, ns[0].ID))
	unread, err = f.notifications.ListUnread(ctx)
	require.NoError(t, err)
	assert.Len(t, unread, 1)

	// Missing ids are silent no-ops.
	require.NoError(t, f.notifications.MarkRead(ctx, 9999))
}

func TestMarkAllReadAndClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(2024, 3, 10)

	for i := 0; i < 3; i++ {
		_, err := f.books.Create(ctx, BookInput{Title: fmt.Sprintf("book %d", i), PagesTotal: 1, PagesRead: 1})
		require.NoError(t, err)
	}
	require.NoError(t, f.notifications.RunPass(ctx, today))
	require.Len(t, f.all(t, repository.NotificationFilter{}), 3)

	require.NoError(t, f.notifications.MarkAllRead(ctx))
	unread, err := f.notifications.ListUnread(ctx)
	require.NoError(t, err)
	assert.Empty(t, unread)

	require.NoError(t, f.notifications.DeleteRead(ctx))
	assert.Empty(t, f.all(t, repository.NotificationFilter{}))
}

func TestListAllFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := day(2024, 3, 10)

	due := today
	for i := 0; i < 3; i++ {
		task, err := f.tasks.Create(ctx, TaskInput{Title: fmt.Sprintf("task %d", i), Due: &due})
		require.NoError(t, err)
		_, err = f.tasks.ToggleDone(ctx, task.ID)
		require.NoError(t, err)
	}
	_, err := f.learning.Create(ctx, LearningInput{Topic: "filters", Minutes: 90}, today)
	require.NoError(t, err)

	require.NoError(t, f.notifications.RunPass(ctx, today))

	assert.Len(t, f.all(t, repository.NotificationFilter{Type: model.NotificationAchievement}), 1)
	assert.Len(t, f.all(t, repository.NotificationFilter{Type: model.NotificationMotivation}), 1)

	read := false
	assert.Len(t, f.all(t, repository.NotificationFilter{IsRead: &read}), 2)
}
