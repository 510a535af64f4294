package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"diary/internal/model"
)

// BookRepository handles CRUD for books.
type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns books ordered by title ascending (byte-wise collation).
func (r *BookRepository) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// ListCompleted returns books with a known page count that are read through.
func (r *BookRepository) ListCompleted(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Where("pages_total > 0 AND pages_read >= pages_total").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// AddPages increments the read counter by delta in a single UPDATE. No upper
// clamp against pages_total.
func (r *BookRepository) AddPages(ctx context.Context, id uint, delta int) error {
	if err := r.db.WithContext(ctx).Model(&model.Book{}).Where("id = ?", id).
		Update("pages_read", gorm.Expr("pages_read + ?", delta)).Error; err != nil {
		return fmt.Errorf("add pages: %w", err)
	}
	return nil
}

// Search returns books whose title or author contains q, case-sensitively.
func (r *BookRepository) Search(ctx context.Context, q string) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Where("instr(title, ?) > 0 OR instr(author, ?) > 0", q, q).
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepository) Save(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return fmt.Errorf("save book: %w", err)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Book{}, id).Error; err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
