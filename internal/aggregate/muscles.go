package aggregate

import (
	"sort"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/catalog"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/units"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"
)

const (
	DefaultStalenessThresholdDays = 5
	weekWindow                    = 7 * 24 * time.Hour
)

// AggregateMuscleGroups tracks when each muscle group was last trained and
// which groups are due (not trained for at least thresholdDays).
func AggregateMuscleGroups(
	history []workouts.Workout,
	cat catalog.Catalog,
	today workouts.Date,
	loc *time.Location,
	thresholdDays int,
) MuscleGroups {
	result := MuscleGroups{
		LastWorkoutPrimary:   []string{},
		LastWorkoutSecondary: []string{},
		LastTrained:          map[string]workouts.Date{},
		DaysSinceLast:        map[string]int{},
		MusclesDue:           []string{},
	}

	seen := func(group string, d workouts.Date) {
		if group == "" {
			return
		}
		if last, ok := result.LastTrained[group]; !ok || last.Before(d) {
			result.LastTrained[group] = d
		}
	}

	for _, w := range history {
		d, ok := w.Date(loc)
		if !ok {
			continue
		}
		for _, ex := range w.Exercises {
			tmpl, ok := cat.Template(ex.TemplateID)
			if !ok {
				continue
			}
			seen(tmpl.PrimaryMuscleGroup, d)
			for _, g := range tmpl.SecondaryMuscleGroups {
				seen(g, d)
			}
		}
	}

	for group, last := range result.LastTrained {
		days := today.DaysSince(last)
		result.DaysSinceLast[group] = days
		if days >= thresholdDays {
			result.MusclesDue = append(result.MusclesDue, group)
		}
	}
	sort.Strings(result.MusclesDue)

	if len(history) > 0 {
		result.LastWorkoutPrimary, result.LastWorkoutSecondary = workoutMuscleGroups(history[0], cat)
	}

	return result
}

// workoutMuscleGroups lists the distinct primary and secondary groups trained
// in w, in the order they first appear.
func workoutMuscleGroups(w workouts.Workout, cat catalog.Catalog) (primary, secondary []string) {
	primary, secondary = []string{}, []string{}
	seenPrimary, seenSecondary := map[string]bool{}, map[string]bool{}
	for _, ex := range w.Exercises {
		tmpl, ok := cat.Template(ex.TemplateID)
		if !ok {
			continue
		}
		if g := tmpl.PrimaryMuscleGroup; g != "" && !seenPrimary[g] {
			seenPrimary[g] = true
			primary = append(primary, g)
		}
		for _, g := range tmpl.SecondaryMuscleGroups {
			if g != "" && !seenSecondary[g] {
				seenSecondary[g] = true
				secondary = append(secondary, g)
			}
		}
	}
	return primary, secondary
}

// InWeek reports whether w started within the 7 days before now.
func InWeek(w workouts.Workout, now time.Time) bool {
	return w.HasStartTime() && !w.StartTime.Before(now.Add(-weekWindow))
}

// AggregateWeeklyVolume sums working-set volume per primary muscle group over
// the trailing 7 days. Warmups, unknown set types and sets without both
// weight and reps are left out.
func AggregateWeeklyVolume(
	history []workouts.Workout,
	cat catalog.Catalog,
	now time.Time,
	converter *units.Converter,
) WeeklyVolume {
	result := WeeklyVolume{
		PerGroupVolume:    map[string]float64{},
		PerGroupExercises: map[string]map[string]ExerciseVolume{},
	}

	for _, w := range history {
		if !InWeek(w, now) {
			continue
		}
		result.TotalWorkouts++

		for _, ex := range w.Exercises {
			tmpl, ok := cat.Template(ex.TemplateID)
			if !ok || tmpl.PrimaryMuscleGroup == "" {
				continue
			}
			group := tmpl.PrimaryMuscleGroup

			for _, s := range ex.Sets {
				if !s.Type.CountsTowardsVolume() || s.WeightKg == nil || s.Reps == nil {
					continue
				}
				volume := converter.ConvertValue(*s.WeightKg) * float64(*s.Reps)

				result.TotalVolume += volume
				result.TotalSets++
				result.PerGroupVolume[group] += volume

				exercises, ok := result.PerGroupExercises[group]
				if !ok {
					exercises = map[string]ExerciseVolume{}
					result.PerGroupExercises[group] = exercises
				}
				ev := exercises[ex.Title]
				ev.Volume += volume
				ev.Sets++
				exercises[ex.Title] = ev
			}
		}
	}

	result.TotalVolume = units.Round1(result.TotalVolume)
	for group, v := range result.PerGroupVolume {
		result.PerGroupVolume[group] = units.Round1(v)
	}
	for _, exercises := range result.PerGroupExercises {
		for title, ev := range exercises {
			ev.Volume = units.Round1(ev.Volume)
			exercises[title] = ev
		}
	}

	return result
}
