package aggregate_test

import (
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"
)

func kg(v float64) *float64 { return &v }
func n(v int) *int          { return &v }

func set(weightKg float64, reps int) workouts.Set {
	return workouts.Set{Type: workouts.SetTypeNormal, WeightKg: kg(weightKg), Reps: n(reps)}
}

func typedSet(t workouts.SetType, weightKg float64, reps int) workouts.Set {
	return workouts.Set{Type: t, WeightKg: kg(weightKg), Reps: n(reps)}
}

func timed(seconds int) workouts.Set {
	return workouts.Set{Type: workouts.SetTypeNormal, DurationSeconds: n(seconds)}
}

func at(date string, hour int) time.Time {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

func workoutOn(id, date string, exercises ...workouts.Exercise) workouts.Workout {
	start := at(date, 8)
	return workouts.Workout{
		ID:        id,
		Title:     "Workout " + id,
		StartTime: start,
		EndTime:   start.Add(62 * time.Minute),
		Exercises: exercises,
	}
}

func exercise(title, templateID string, sets ...workouts.Set) workouts.Exercise {
	return workouts.Exercise{Title: title, TemplateID: templateID, Sets: sets}
}
