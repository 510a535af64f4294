package model

import "time"

// SchemaVersion marks a one-time data backfill as applied, so corrective
// passes do not rely on zero-value heuristics alone.
type SchemaVersion struct {
	ID        uint      `gorm:"primaryKey"`
	Version   int       `gorm:"uniqueIndex"`
	AppliedAt time.Time
}
