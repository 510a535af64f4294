package model

import "time"

// Notification types produced by the notification engine.
const (
	NotificationDeadline    = "deadline"
	NotificationAchievement = "achievement"
	NotificationMotivation  = "motivation"
)

// Notification is an alert derived from current journal state.
//
// RelatedID is a non-owning back-reference to the task or book that triggered
// the notification. The referenced record may be deleted later; readers must
// tolerate a dangling id.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"index" json:"type"`
	Title       string    `gorm:"index" json:"title"`
	Message     string    `json:"message"`
	IsRead      bool      `gorm:"default:false" json:"is_read"`
	CreatedDate time.Time `json:"created_date"`
	RelatedID   *uint     `json:"related_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
