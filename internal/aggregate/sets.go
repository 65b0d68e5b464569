package aggregate

import (
	"fmt"
	"strconv"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/units"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"
)

const (
	bestSetNoSets = "No sets"
	bestSetNoData = "No data"
)

// BestSet describes the best set of an exercise. Timed exercises (first set
// has a duration) report the longest duration. Otherwise the heaviest set
// wins, with reps as tie-breaker and the earliest set winning full ties.
func BestSet(sets []workouts.Set, converter *units.Converter) string {
	if len(sets) == 0 {
		return bestSetNoSets
	}

	if sets[0].DurationSeconds != nil {
		longest := 0
		for _, s := range sets {
			if d := intOrZero(s.DurationSeconds); d > longest {
				longest = d
			}
		}
		return FormatDuration(longest)
	}

	best := sets[0]
	for _, s := range sets[1:] {
		if betterSet(s, best) {
			best = s
		}
	}

	weight := converter.Convert(best.WeightKg)
	reps := intOrZero(best.Reps)
	unit := converter.UnitLabel()

	switch {
	case weight != nil && reps > 0:
		return fmt.Sprintf("%s %s × %d", FormatWeight(*weight), unit, reps)
	case weight != nil:
		return fmt.Sprintf("%s %s", FormatWeight(*weight), unit)
	case reps > 0:
		return fmt.Sprintf("%d reps", reps)
	default:
		return bestSetNoData
	}
}

// betterSet compares (weight, reps) lexicographically, missing values as 0.
func betterSet(s, than workouts.Set) bool {
	sw, tw := floatOrZero(s.WeightKg), floatOrZero(than.WeightKg)
	if sw != tw {
		return sw > tw
	}
	return intOrZero(s.Reps) > intOrZero(than.Reps)
}

// FormatDuration renders seconds as "1m 05s", or "45s" under a minute.
func FormatDuration(seconds int) string {
	minutes := seconds / 60
	if minutes > 0 {
		return fmt.Sprintf("%dm %02ds", minutes, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

// FormatWeight always keeps one decimal: "100.0", "132.5".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', 1, 64)
}

// TotalVolume sums converted weight × reps over every set that has both.
func TotalVolume(w workouts.Workout, converter *units.Converter) float64 {
	total := 0.0
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.WeightKg == nil || s.Reps == nil {
				continue
			}
			total += converter.ConvertValue(*s.WeightKg) * float64(*s.Reps)
		}
	}
	return units.Round1(total)
}

func SetViews(sets []workouts.Set, converter *units.Converter) []SetView {
	views := make([]SetView, 0, len(sets))
	unit := converter.UnitLabel()
	for _, s := range sets {
		views = append(views, SetView{
			Type:            s.Type,
			Weight:          converter.Convert(s.WeightKg),
			WeightUnit:      unit,
			Reps:            s.Reps,
			DurationSeconds: s.DurationSeconds,
		})
	}
	return views
}

// SummarizeExercise converts the sets of ex and totals reps and durations.
// Zero totals are reported as nil.
func SummarizeExercise(ex workouts.Exercise, converter *units.Converter) ExerciseSummary {
	totalReps, totalDuration := 0, 0
	for _, s := range ex.Sets {
		totalReps += intOrZero(s.Reps)
		totalDuration += intOrZero(s.DurationSeconds)
	}
	return ExerciseSummary{
		Name:                 exerciseName(ex),
		Sets:                 SetViews(ex.Sets, converter),
		BestSet:              BestSet(ex.Sets, converter),
		TotalReps:            positiveOrNil(totalReps),
		TotalDurationSeconds: positiveOrNil(totalDuration),
	}
}

func exerciseName(ex workouts.Exercise) string {
	if ex.Title == "" {
		return "Unknown"
	}
	return ex.Title
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func positiveOrNil(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}
