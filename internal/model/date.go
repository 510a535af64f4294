package model

import "time"

// Day truncates t to midnight UTC. All date-valued fields (task deadlines,
// learning log dates, notification creation dates) are stored in this form so
// day-granular equality comparisons work in SQL.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayPtr is Day for optional dates.
func DayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	day := Day(*t)
	return &day
}
