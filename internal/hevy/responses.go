package hevy

import "github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"

// Raw API payloads. Every optional field is a pointer so that a missing
// value can be told apart from a zero one; defaults are applied when
// converting into the workouts package types.

type setResponse struct {
	Index           *int     `json:"index"`
	Type            *string  `json:"type"`
	WeightKg        *float64 `json:"weight_kg"`
	Reps            *int     `json:"reps"`
	DistanceMeters  *float64 `json:"distance_meters"`
	DurationSeconds *int     `json:"duration_seconds"`
	Rpe             *float64 `json:"rpe"`
}

type exerciseResponse struct {
	Index              *int          `json:"index"`
	Title              *string       `json:"title"`
	Notes              *string       `json:"notes"`
	ExerciseTemplateID *string       `json:"exercise_template_id"`
	SupersetID         *int          `json:"superset_id"`
	Sets               []setResponse `json:"sets"`
}

type workoutResponse struct {
	ID          *string            `json:"id"`
	Title       *string            `json:"title"`
	RoutineID   *string            `json:"routine_id"`
	Description *string            `json:"description"`
	StartTime   *string            `json:"start_time"`
	EndTime     *string            `json:"end_time"`
	UpdatedAt   *string            `json:"updated_at"`
	CreatedAt   *string            `json:"created_at"`
	Exercises   []exerciseResponse `json:"exercises"`
}

type workoutsPageResponse struct {
	Page      int               `json:"page"`
	PageCount int               `json:"page_count"`
	Workouts  []workoutResponse `json:"workouts"`
}

type workoutCountResponse struct {
	WorkoutCount int `json:"workout_count"`
}

type templateResponse struct {
	ID                    *string  `json:"id"`
	Title                 *string  `json:"title"`
	Type                  *string  `json:"type"`
	PrimaryMuscleGroup    *string  `json:"primary_muscle_group"`
	SecondaryMuscleGroups []string `json:"secondary_muscle_groups"`
	Equipment             *string  `json:"equipment"`
	IsCustom              *bool    `json:"is_custom"`
}

type templatesPageResponse struct {
	Page              int                `json:"page"`
	PageCount         int                `json:"page_count"`
	ExerciseTemplates []templateResponse `json:"exercise_templates"`
}

type routineExerciseResponse struct {
	Title              *string `json:"title"`
	ExerciseTemplateID *string `json:"exercise_template_id"`
}

type routineResponse struct {
	ID        *string                   `json:"id"`
	Title     *string                   `json:"title"`
	FolderID  *int                      `json:"folder_id"`
	Exercises []routineExerciseResponse `json:"exercises"`
}

type routinesPageResponse struct {
	Page      int               `json:"page"`
	PageCount int               `json:"page_count"`
	Routines  []routineResponse `json:"routines"`
}

// WorkoutsPage is one page of the workout list, most recent first.
type WorkoutsPage struct {
	Page      int
	PageCount int
	Workouts  []workouts.Workout
}

type TemplatesPage struct {
	Page      int
	PageCount int
	Templates []workouts.ExerciseTemplate
}

type RoutinesPage struct {
	Page      int
	PageCount int
	Routines  []workouts.Routine
}
