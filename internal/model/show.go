package model

import "time"

// Show tracks viewing progress for a TV series: the season currently being
// watched, the episode within it, and a lifetime watched-episode counter that
// survives season resets.
type Show struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Title                string    `gorm:"index" json:"title"`
	Season               int       `gorm:"default:1" json:"season"`
	Episode              int       `gorm:"default:0" json:"episode"`
	EpisodesPerSeason    int       `gorm:"default:0" json:"episodes_per_season"`
	TotalWatchedEpisodes int       `gorm:"default:0" json:"total_watched_episodes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
