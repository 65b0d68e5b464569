package hevy

import (
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"
)

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r workoutResponse) toWorkout() workouts.Workout {
	w := workouts.Workout{
		ID:        str(r.ID),
		Title:     str(r.Title),
		RoutineID: str(r.RoutineID),
		Exercises: make([]workouts.Exercise, 0, len(r.Exercises)),
	}
	// malformed timestamps are left zero, the workout itself is kept
	if t, ok := workouts.ParseTimestamp(str(r.StartTime)); ok {
		w.StartTime = t
	}
	if t, ok := workouts.ParseTimestamp(str(r.EndTime)); ok {
		w.EndTime = t
	}
	for _, ex := range r.Exercises {
		w.Exercises = append(w.Exercises, ex.toExercise())
	}
	return w
}

func (r exerciseResponse) toExercise() workouts.Exercise {
	ex := workouts.Exercise{
		Title:      str(r.Title),
		TemplateID: str(r.ExerciseTemplateID),
		Notes:      str(r.Notes),
		Sets:       make([]workouts.Set, 0, len(r.Sets)),
	}
	for _, s := range r.Sets {
		setType := workouts.SetTypeNormal
		if s.Type != nil && *s.Type != "" {
			setType = workouts.SetType(*s.Type)
		}
		ex.Sets = append(ex.Sets, workouts.Set{
			Type:            setType,
			WeightKg:        s.WeightKg,
			Reps:            s.Reps,
			DurationSeconds: s.DurationSeconds,
		})
	}
	return ex
}

func (r templateResponse) toTemplate() workouts.ExerciseTemplate {
	secondary := make([]string, 0, len(r.SecondaryMuscleGroups))
	for _, g := range r.SecondaryMuscleGroups {
		if g != "" {
			secondary = append(secondary, g)
		}
	}
	return workouts.ExerciseTemplate{
		ID:                    str(r.ID),
		Title:                 str(r.Title),
		PrimaryMuscleGroup:    str(r.PrimaryMuscleGroup),
		SecondaryMuscleGroups: secondary,
		Equipment:             str(r.Equipment),
		Type:                  str(r.Type),
	}
}

func (r routineResponse) toRoutine() workouts.Routine {
	exercises := make([]string, 0, len(r.Exercises))
	for _, ex := range r.Exercises {
		if title := str(ex.Title); title != "" {
			exercises = append(exercises, title)
		}
	}
	return workouts.Routine{
		ID:        str(r.ID),
		Title:     str(r.Title),
		Exercises: exercises,
	}
}
