package aggregate

import (
	"sort"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"
)

// maxStreakGap is the largest gap in days between two workout dates that
// keeps a streak alive, i.e. one rest day.
const maxStreakGap = 2

// Streak counts the days of the current streak ending today. The streak is
// broken unless the latest workout was today or yesterday.
func Streak(history []workouts.Workout, today workouts.Date, loc *time.Location) int {
	dates := distinctDates(history, loc)
	if len(dates) == 0 {
		return 0
	}

	if latest := today.DaysSince(dates[0]); latest != 0 && latest != 1 {
		return 0
	}

	streak := today.DaysSince(dates[0]) + 1
	anchor := dates[0]
	for _, d := range dates[1:] {
		gap := anchor.DaysSince(d)
		if gap > maxStreakGap {
			break
		}
		streak += gap
		anchor = d
	}
	return streak
}

// distinctDates returns the calendar days that have at least one workout,
// most recent first. Workouts without a start time are skipped.
func distinctDates(history []workouts.Workout, loc *time.Location) []workouts.Date {
	seen := map[workouts.Date]bool{}
	var dates []workouts.Date
	for _, w := range history {
		d, ok := w.Date(loc)
		if !ok || seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[j].Before(dates[i])
	})
	return dates
}
