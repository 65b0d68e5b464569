package aggregate

import (
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"
)

// Snapshot is everything derived from one refresh cycle. It is rebuilt from
// scratch every time and never updated in place.
type Snapshot struct {
	GeneratedAt  time.Time `json:"generated_at"`
	WorkoutCount int       `json:"workout_count"`
	WeightUnit   string    `json:"weight_unit"`

	LastWorkout        *LastWorkout `json:"last_workout"`
	WeeklyWorkoutCount int          `json:"weekly_workout_count"`
	WorkedOutToday     bool         `json:"worked_out_today"`
	WorkedOutThisWeek  bool         `json:"worked_out_this_week"`
	CurrentStreak      int          `json:"current_streak"`

	ExerciseData    map[string]ExerciseData   `json:"exercise_data"`
	PersonalRecords map[string]PersonalRecord `json:"personal_records"`
	MuscleGroups    MuscleGroups              `json:"muscle_groups"`
	WeeklyVolume    WeeklyVolume              `json:"weekly_volume"`
	NextWorkout     NextWorkout               `json:"next_workout"`
	Days            []DaySummary              `json:"days"`
}

// SetView is a set with its weight in the display unit.
type SetView struct {
	Type            workouts.SetType `json:"type"`
	Weight          *float64         `json:"weight"`
	WeightUnit      string           `json:"weight_unit"`
	Reps            *int             `json:"reps"`
	DurationSeconds *int             `json:"duration_seconds"`
}

type ExerciseSummary struct {
	Name                 string    `json:"name"`
	Sets                 []SetView `json:"sets"`
	BestSet              string    `json:"best_set"`
	TotalReps            *int      `json:"total_reps"`
	TotalDurationSeconds *int      `json:"total_duration_seconds"`
}

type LastWorkout struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	RoutineID       string            `json:"routine_id,omitempty"`
	StartTime       *time.Time        `json:"start_time"`
	DurationMinutes *float64          `json:"duration_minutes"`
	TotalVolume     float64           `json:"total_volume"`
	Exercises       []ExerciseSummary `json:"exercises"`
}

// ExerciseData is the most recent occurrence of an exercise in the window,
// enriched with its template and current personal record.
type ExerciseData struct {
	DisplayName          string     `json:"display_name"`
	LastWorkoutDate      *time.Time `json:"last_workout_date"`
	LastWorkoutSets      []SetView  `json:"last_workout_sets"`
	Weight               *float64   `json:"weight"`
	WeightUnit           string     `json:"weight_unit"`
	TotalReps            *int       `json:"total_reps"`
	TotalSets            int        `json:"total_sets"`
	TotalDurationSeconds *int       `json:"total_duration_seconds"`
	BestSet              string     `json:"best_set"`

	TemplateID            string   `json:"exercise_template_id,omitempty"`
	PrimaryMuscleGroup    string   `json:"primary_muscle_group,omitempty"`
	SecondaryMuscleGroups []string `json:"secondary_muscle_groups,omitempty"`
	Equipment             string   `json:"equipment,omitempty"`
	ExerciseType          string   `json:"exercise_type,omitempty"`

	PersonalRecordWeight *float64 `json:"personal_record_weight"`
	PersonalRecordReps   *int     `json:"personal_record_reps"`
}

type PersonalRecord struct {
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
	Reps       int     `json:"reps"`
	TemplateID string  `json:"template_id,omitempty"`
}

type MuscleGroups struct {
	LastWorkoutPrimary   []string                 `json:"last_workout_primary"`
	LastWorkoutSecondary []string                 `json:"last_workout_secondary"`
	LastTrained          map[string]workouts.Date `json:"last_trained"`
	DaysSinceLast        map[string]int           `json:"days_since_last"`
	MusclesDue           []string                 `json:"muscles_due"`
}

type ExerciseVolume struct {
	Volume float64 `json:"volume"`
	Sets   int     `json:"sets"`
}

type WeeklyVolume struct {
	TotalVolume       float64                              `json:"total_volume"`
	TotalSets         int                                  `json:"total_sets"`
	TotalWorkouts     int                                  `json:"total_workouts"`
	PerGroupVolume    map[string]float64                   `json:"per_group_volume"`
	PerGroupExercises map[string]map[string]ExerciseVolume `json:"per_group_exercises"`
}

const (
	NoRoutinesConfigured = "No routines configured"
	NoRoutineDetected    = "No routine detected"
)

type NextWorkout struct {
	NextRoutine          string   `json:"next_routine"`
	RoutineID            string   `json:"routine_id,omitempty"`
	RotationPosition     *int     `json:"rotation_position"`
	RotationTotal        int      `json:"rotation_total"`
	ExercisesPreview     []string `json:"exercises_preview"`
	LastWorkoutTitle     string   `json:"last_workout_title,omitempty"`
	LastWorkoutRoutineID string   `json:"last_workout_routine_id,omitempty"`
}

type DayExercise struct {
	Name      string `json:"name"`
	BestSet   string `json:"best_set"`
	TotalReps *int   `json:"total_reps"`
}

type DaySummary struct {
	Date            workouts.Date `json:"date"`
	WorkoutID       string        `json:"workout_id"`
	Title           string        `json:"title"`
	DurationMinutes *float64      `json:"duration_minutes"`
	TotalVolume     float64       `json:"total_volume"`
	Exercises       []DayExercise `json:"exercises"`
}
