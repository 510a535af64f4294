package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diary/internal/model"
	"diary/internal/repository"
	"diary/internal/testutil"
)

func TestStatsSummary(t *testing.T) {
	db := testutil.NewDB(t)
	taskRepo := repository.NewTaskRepository(db)
	showRepo := repository.NewShowRepository(db)
	bookRepo := repository.NewBookRepository(db)
	learningRepo := repository.NewLearningRepository(db)

	tasks := NewTaskService(taskRepo)
	shows := NewShowService(showRepo)
	books := NewBookService(bookRepo)
	learning := NewLearningService(learningRepo)
	stats := NewStatsService(taskRepo, showRepo, bookRepo, learningRepo)

	ctx := context.Background()
	today := day(2024, 3, 10)

	done, err := tasks.Create(ctx, TaskInput{Title: "done", Priority: model.PriorityHigh})
	require.NoError(t, err)
	_, err = tasks.ToggleDone(ctx, done.ID)
	require.NoError(t, err)
	_, err = tasks.Create(ctx, TaskInput{Title: "open"})
	require.NoError(t, err)

	show, err := shows.Create(ctx, ShowInput{Title: "Show"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = shows.AdvanceEpisode(ctx, show.ID)
		require.NoError(t, err)
	}

	// Overshot book: stored ratio would be 150%, display must cap at 100.
	_, err = books.Create(ctx, BookInput{Title: "Overshot", PagesTotal: 100, PagesRead: 150})
	require.NoError(t, err)
	_, err = books.Create(ctx, BookInput{Title: "Halfway", PagesTotal: 200, PagesRead: 100})
	require.NoError(t, err)

	_, err = learning.Create(ctx, LearningInput{Topic: "one", Minutes: 30}, today)
	require.NoError(t, err)
	_, err = learning.Create(ctx, LearningInput{Topic: "two", Minutes: 20}, today)
	require.NoError(t, err)
	yesterday := today.AddDate(0, 0, -1)
	_, err = learning.Create(ctx, LearningInput{Topic: "three", Minutes: 10, LogDate: &yesterday}, today)
	require.NoError(t, err)

	summary, err := stats.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalTasks)
	assert.Equal(t, 1, summary.CompletedTasks)
	assert.InDelta(t, 50.0, summary.CompletionRate, 0.01)
	assert.Equal(t, PriorityStats{Total: 1, Completed: 1}, summary.ByPriority[model.PriorityHigh])
	assert.Equal(t, PriorityStats{Total: 1, Completed: 0}, summary.ByPriority[model.PriorityMedium])

	assert.Equal(t, 1, summary.TotalShows)
	assert.Equal(t, 3, summary.WatchedEpisodes)

	assert.Equal(t, 2, summary.TotalBooks)
	assert.Equal(t, 250, summary.PagesRead)
	assert.Equal(t, 1, summary.CompletedBooks)
	require.Len(t, summary.ReadingList, 2)
	for _, progress := range summary.ReadingList {
		assert.LessOrEqual(t, progress.Percent, 100.0)
	}

	assert.Equal(t, 60, summary.LearningMinutes)
	assert.Equal(t, 2, summary.LearningDays)
}
