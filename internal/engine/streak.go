package engine

import (
	"time"

	"petrack/internal/history"
)

// Streak counts consecutive calendar days with at least one completed task,
// walking backward one day at a time from today and stopping at the first
// day with a zero or absent count.
func Streak(hist map[string]int, today time.Time) int {
	streak := 0
	day := today.UTC()
	for {
		key := history.Day(day)
		if hist[key] <= 0 {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}
