package model

import "time"

// LearningLog records one study session. Multiple records may share a date.
type LearningLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Topic     string    `gorm:"index" json:"topic"`
	Minutes   int       `gorm:"default:0" json:"minutes"`
	Notes     string    `json:"notes"`
	LogDate   time.Time `json:"log_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
