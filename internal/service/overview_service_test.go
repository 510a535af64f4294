package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diary/internal/repository"
	"diary/internal/testutil"
)

type overviewFixture struct {
	tasks    *TaskService
	shows    *ShowService
	books    *BookService
	learning *LearningService
	overview *OverviewService
}

func newOverviewFixture(t *testing.T) *overviewFixture {
	t.Helper()
	db := testutil.NewDB(t)
	taskRepo := repository.NewTaskRepository(db)
	showRepo := repository.NewShowRepository(db)
	bookRepo := repository.NewBookRepository(db)
	learningRepo := repository.NewLearningRepository(db)
	return &overviewFixture{
		tasks:    NewTaskService(taskRepo),
		shows:    NewShowService(showRepo),
		books:    NewBookService(bookRepo),
		learning: NewLearningService(learningRepo),
		overview: NewOverviewService(taskRepo, showRepo, bookRepo, learningRepo),
	}
}

func TestSearch_AcrossSections(t *testing.T) {
	f := newOverviewFixture(t)
	ctx := context.Background()
	today := day(2024, 3, 10)

	_, err := f.tasks.Create(ctx, TaskInput{Title: "Learn Go generics"})
	require.NoError(t, err)
	_, err = f.shows.Create(ctx, ShowInput{Title: "Go behind the scenes"})
	require.NoError(t, err)
	_, err = f.books.Create(ctx, BookInput{Title: "Compilers", Author: "Go Nakamura"})
	require.NoError(t, err)
	_, err = f.learning.Create(ctx, LearningInput{Topic: "algorithms", Notes: "Go slices deep dive"}, today)
	require.NoError(t, err)

	results, err := f.overview.Search(ctx, "Go")
	require.NoError(t, err)
	assert.Len(t, results.Tasks, 1)
	assert.Len(t, results.Shows, 1)
	assert.Len(t, results.Books, 1)
	assert.Len(t, results.LearningLogs, 1)
}

func TestSearch_IsCaseSensitive(t *testing.T) {
	f := newOverviewFixture(t)
	ctx := context.Background()

	_, err := f.tasks.Create(ctx, TaskInput{Title: "Learn Go generics"})
	require.NoError(t, err)

	results, err := f.overview.Search(ctx, "go")
	require.NoError(t, err)
	assert.Empty(t, results.Tasks)

	results, err = f.overview.Search(ctx, "Go")
	require.NoError(t, err)
	assert.Len(t, results.Tasks, 1)
}

func TestCalendarDay_Bucketing(t *testing.T) {
	f := newOverviewFixture(t)
	ctx := context.Background()
	target := day(2024, 3, 15)

	due := target
	_, err := f.tasks.Create(ctx, TaskInput{Title: "on the day", Due: &due})
	require.NoError(t, err)
	other := target.AddDate(0, 0, 1)
	_, err = f.tasks.Create(ctx, TaskInput{Title: "day after", Due: &other})
	require.NoError(t, err)
	_, err = f.tasks.Create(ctx, TaskInput{Title: "undated"})
	require.NoError(t, err)

	_, err = f.learning.Create(ctx, LearningInput{Topic: "morning session", Minutes: 40, LogDate: &target}, target)
	require.NoError(t, err)
	_, err = f.learning.Create(ctx, LearningInput{Topic: "evening session", Minutes: 20, LogDate: &target}, target)
	require.NoError(t, err)
	_, err = f.learning.Create(ctx, LearningInput{Topic: "elsewhere", Minutes: 99, LogDate: &other}, target)
	require.NoError(t, err)

	bucket, err := f.overview.Day(ctx, target)
	require.NoError(t, err)
	require.Len(t, bucket.Tasks, 1)
	assert.Equal(t, "on the day", bucket.Tasks[0].Title)
	assert.Len(t, bucket.LearningLogs, 2)
	assert.Equal(t, 60, bucket.TotalMinutes)
}

func TestCalendarDay_TimeOfDayIgnored(t *testing.T) {
	f := newOverviewFixture(t)
	ctx := context.Background()

	noon := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	_, err := f.tasks.Create(ctx, TaskInput{Title: "noon deadline", Due: &noon})
	require.NoError(t, err)

	bucket, err := f.overview.Day(ctx, day(2024, 3, 15))
	require.NoError(t, err)
	assert.Len(t, bucket.Tasks, 1)
}
