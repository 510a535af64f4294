package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diary/internal/model"
	"diary/internal/repository"
	"diary/internal/testutil"
)

func newTaskService(t *testing.T) *TaskService {
	t.Helper()
	return NewTaskService(repository.NewTaskRepository(testutil.NewDB(t)))
}

func TestTaskCreate_Validation(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   TaskInput
		wantErr bool
	}{
		{"empty title", TaskInput{Title: ""}, true},
		{"whitespace title", TaskInput{Title: "   "}, true},
		{"unknown priority", TaskInput{Title: "x", Priority: "Urgent"}, true},
		{"valid", TaskInput{Title: "write report", Priority: model.PriorityHigh}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			if tt.wantErr {
				var validation *ValidationError
				require.ErrorAs(t, err, &validation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTaskCreate_TrimsTitleAndDefaultsPriority(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(context.Background(), TaskInput{Title: "  buy groceries  "})
	require.NoError(t, err)
	assert.Equal(t, "buy groceries", task.Title)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.False(t, task.Done)
}

func TestTaskToggleDone(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskInput{Title: "flip me"})
	require.NoError(t, err)

	toggled, err := svc.ToggleDone(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)
	assert.Equal(t, task.Title, toggled.Title)

	toggled, err = svc.ToggleDone(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Done)

	// Missing id is a silent no-op.
	missing, err := svc.ToggleDone(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTaskList_Ordering(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	d := func(day int) *time.Time {
		date := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
		return &date
	}

	done, err := svc.Create(ctx, TaskInput{Title: "done early", Due: d(1)})
	require.NoError(t, err)
	_, err = svc.ToggleDone(ctx, done.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, TaskInput{Title: "undated"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, TaskInput{Title: "later", Due: d(5)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, TaskInput{Title: "sooner", Due: d(2)})
	require.NoError(t, err)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	// Incomplete first ordered by deadline, undated after, completed last.
	assert.Equal(t, "sooner", tasks[0].Title)
	assert.Equal(t, "later", tasks[1].Title)
	assert.Equal(t, "undated", tasks[2].Title)
	assert.Equal(t, "done early", tasks[3].Title)
}

func TestTaskUpdate_PartialFields(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskInput{Title: "original", Description: "keep me"})
	require.NoError(t, err)

	newTitle := "renamed"
	updated, err := svc.Update(ctx, task.ID, TaskUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "keep me", updated.Description)

	// Missing id is a silent no-op.
	missing, err := svc.Update(ctx, 9999, TaskUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTaskDelete_MissingIDIsNoop(t *testing.T) {
	svc := newTaskService(t)
	require.NoError(t, svc.Delete(context.Background(), 12345))
}
