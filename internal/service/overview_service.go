package service

import (
	"context"
	"time"

	"diary/internal/model"
	"diary/internal/repository"
)

// SearchResults groups substring matches across all journal sections.
type SearchResults struct {
	Tasks        []model.Task        `json:"tasks"`
	Shows        []model.Show        `json:"shows"`
	Books        []model.Book        `json:"books"`
	LearningLogs []model.LearningLog `json:"learning_logs"`
}

// DayBucket holds everything scheduled or logged on a single calendar day.
type DayBucket struct {
	Date         time.Time           `json:"date"`
	Tasks        []model.Task        `json:"tasks"`
	LearningLogs []model.LearningLog `json:"learning_logs"`
	TotalMinutes int                 `json:"total_minutes"`
}

// OverviewService provides the read-only projections the interface consumes:
// cross-section search and calendar day buckets.
type OverviewService struct {
	tasks    *repository.TaskRepository
	shows    *repository.ShowRepository
	books    *repository.BookRepository
	learning *repository.LearningRepository
}

func NewOverviewService(
	tasks *repository.TaskRepository,
	shows *repository.ShowRepository,
	books *repository.BookRepository,
	learning *repository.LearningRepository,
) *OverviewService {
	return &OverviewService{tasks: tasks, shows: shows, books: books, learning: learning}
}

// Search runs a case-sensitive substring search over task titles, show
// titles, book titles and authors, and study topics and notes.
func (s *OverviewService) Search(ctx context.Context, query string) (*SearchResults, error) {
	results := &SearchResults{}
	var err error

	if results.Tasks, err = s.tasks.SearchTitle(ctx, query); err != nil {
		return nil, err
	}
	if results.Shows, err = s.shows.SearchTitle(ctx, query); err != nil {
		return nil, err
	}
	if results.Books, err = s.books.Search(ctx, query); err != nil {
		return nil, err
	}
	if results.LearningLogs, err = s.learning.Search(ctx, query); err != nil {
		return nil, err
	}
	return results, nil
}

// Day returns the tasks due and study sessions logged on the given date.
func (s *OverviewService) Day(ctx context.Context, date time.Time) (*DayBucket, error) {
	day := model.Day(date)

	tasks, err := s.tasks.ListDueOn(ctx, day)
	if err != nil {
		return nil, err
	}
	logs, err := s.learning.ListOn(ctx, day)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, entry := range logs {
		total += entry.Minutes
	}

	return &DayBucket{Date: day, Tasks: tasks, LearningLogs: logs, TotalMinutes: total}, nil
}
