package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"diary/internal/model"
	"diary/internal/repository"
)

// BookInput represents data required to start tracking a book.
type BookInput struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	PagesTotal int    `json:"pages_total"`
	PagesRead  int    `json:"pages_read"`
}

// BookUpdate carries optional field changes; nil pointers mean "leave as is".
type BookUpdate struct {
	Title      *string `json:"title"`
	Author     *string `json:"author"`
	PagesTotal *int    `json:"pages_total"`
}

// BookService wraps reading-progress business logic.
type BookService struct {
	repo *repository.BookRepository
}

func NewBookService(repo *repository.BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) Create(ctx context.Context, input BookInput) (*model.Book, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationErr("title", "must not be empty")
	}
	if input.PagesTotal < 0 || input.PagesRead < 0 {
		return nil, validationErr("pages", "must not be negative")
	}

	book := model.Book{
		Title:      title,
		Author:     strings.TrimSpace(input.Author),
		PagesTotal: input.PagesTotal,
		PagesRead:  input.PagesRead,
	}
	if err := s.repo.Create(ctx, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BookService) Get(ctx context.Context, id uint) (*model.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookService) List(ctx context.Context) ([]model.Book, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields. A missing id is a silent no-op.
func (s *BookService) Update(ctx context.Context, id uint, update BookUpdate) (*model.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, validationErr("title", "must not be empty")
		}
		book.Title = title
	}
	if update.Author != nil {
		book.Author = strings.TrimSpace(*update.Author)
	}
	if update.PagesTotal != nil {
		if *update.PagesTotal < 0 {
			return nil, validationErr("pages_total", "must not be negative")
		}
		book.PagesTotal = *update.PagesTotal
	}

	if err := s.repo.Save(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// AddPages advances reading progress by delta pages. Overshooting pages_total
// is allowed; completion detection uses >= so overshoot still counts.
func (s *BookService) AddPages(ctx context.Context, id uint, delta int) (*model.Book, error) {
	if delta < 0 {
		return nil, validationErr("pages", "delta must not be negative")
	}
	if err := s.repo.AddPages(ctx, id, delta); err != nil {
		return nil, err
	}
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
