package model

import "time"

// Priority levels a task can carry.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task represents a single to-do item with an optional deadline.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"index" json:"title"`
	Priority    string     `gorm:"default:Medium" json:"priority"`
	Due         *time.Time `json:"due,omitempty"`
	Description string     `json:"description"`
	Done        bool       `gorm:"default:false" json:"done"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
