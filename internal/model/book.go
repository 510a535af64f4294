package model

import "time"

// Book tracks reading progress. PagesRead is not clamped to PagesTotal;
// presentation code caps the displayed ratio instead.
type Book struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"index" json:"title"`
	Author     string    `json:"author"`
	PagesTotal int       `gorm:"default:0" json:"pages_total"`
	PagesRead  int       `gorm:"default:0" json:"pages_read"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
