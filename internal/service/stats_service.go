package service

import (
	"context"

	"diary/internal/repository"
)

// PriorityStats breaks task completion down for one priority level.
type PriorityStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// BookProgress is a display-ready reading ratio, capped at 100%.
type BookProgress struct {
	Title   string  `json:"title"`
	Percent float64 `json:"percent"`
}

// Summary aggregates the numbers the dashboard shows.
type Summary struct {
	TotalTasks     int                      `json:"total_tasks"`
	CompletedTasks int                      `json:"completed_tasks"`
	CompletionRate float64                  `json:"completion_rate"`
	ByPriority     map[string]PriorityStats `json:"by_priority"`

	TotalShows      int `json:"total_shows"`
	WatchedEpisodes int `json:"watched_episodes"`

	TotalBooks     int            `json:"total_books"`
	PagesRead      int            `json:"pages_read"`
	CompletedBooks int            `json:"completed_books"`
	ReadingList    []BookProgress `json:"reading_list"`

	LearningMinutes int `json:"learning_minutes"`
	LearningDays    int `json:"learning_days"`
}

// StatsService computes the analytics aggregates consumed by the dashboard.
type StatsService struct {
	tasks    *repository.TaskRepository
	shows    *repository.ShowRepository
	books    *repository.BookRepository
	learning *repository.LearningRepository
}

func NewStatsService(
	tasks *repository.TaskRepository,
	shows *repository.ShowRepository,
	books *repository.BookRepository,
	learning *repository.LearningRepository,
) *StatsService {
	return &StatsService{tasks: tasks, shows: shows, books: books, learning: learning}
}

func (s *StatsService) Summary(ctx context.Context) (*Summary, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	shows, err := s.shows.List(ctx)
	if err != nil {
		return nil, err
	}
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.learning.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalTasks: len(tasks),
		ByPriority: make(map[string]PriorityStats),
		TotalShows: len(shows),
		TotalBooks: len(books),
	}

	for _, task := range tasks {
		stats := summary.ByPriority[task.Priority]
		stats.Total++
		if task.Done {
			stats.Completed++
			summary.CompletedTasks++
		}
		summary.ByPriority[task.Priority] = stats
	}
	if summary.TotalTasks > 0 {
		summary.CompletionRate = float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100
	}

	for _, show := range shows {
		summary.WatchedEpisodes += show.TotalWatchedEpisodes
	}

	for _, book := range books {
		summary.PagesRead += book.PagesRead
		if book.PagesTotal > 0 {
			if book.PagesRead >= book.PagesTotal {
				summary.CompletedBooks++
			}
			summary.ReadingList = append(summary.ReadingList, BookProgress{
				Title:   book.Title,
				Percent: displayRatio(book.PagesRead, book.PagesTotal),
			})
		}
	}

	days := make(map[string]struct{})
	for _, entry := range logs {
		summary.LearningMinutes += entry.Minutes
		days[entry.LogDate.Format("2006-01-02")] = struct{}{}
	}
	summary.LearningDays = len(days)

	return summary, nil
}

// displayRatio caps the percentage at 100 even when pages_read overshoots
// pages_total, which storage allows.
func displayRatio(read, total int) float64 {
	ratio := float64(read) / float64(total) * 100
	if ratio > 100 {
		return 100
	}
	return ratio
}
