package aggregate

import (
	"slices"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"
)

// PredictNextWorkout finds the routine of the latest workout in the saved
// routine list and proposes the one after it, wrapping around.
func PredictNextWorkout(history []workouts.Workout, routines []workouts.Routine) NextWorkout {
	if len(routines) == 0 {
		return NextWorkout{
			NextRoutine:      NoRoutinesConfigured,
			ExercisesPreview: []string{},
		}
	}

	total := len(routines)
	if len(history) == 0 {
		return proposeRoutine(routines, 0)
	}

	last := history[0]
	idx := slices.IndexFunc(routines, func(r workouts.Routine) bool {
		return last.RoutineID != "" && r.ID == last.RoutineID
	})
	if idx < 0 {
		return NextWorkout{
			NextRoutine:          NoRoutineDetected,
			RotationTotal:        total,
			ExercisesPreview:     []string{},
			LastWorkoutTitle:     last.Title,
			LastWorkoutRoutineID: last.RoutineID,
		}
	}

	next := proposeRoutine(routines, (idx+1)%total)
	next.LastWorkoutTitle = last.Title
	next.LastWorkoutRoutineID = last.RoutineID
	return next
}

func proposeRoutine(routines []workouts.Routine, idx int) NextWorkout {
	r := routines[idx]
	position := idx + 1
	preview := slices.Clone(r.Exercises)
	if preview == nil {
		preview = []string{}
	}
	return NextWorkout{
		NextRoutine:      r.Title,
		RoutineID:        r.ID,
		RotationPosition: &position,
		RotationTotal:    len(routines),
		ExercisesPreview: preview,
	}
}
