package workouts

import (
	"strings"
	"time"
)

type SetType string

const (
	SetTypeNormal  SetType = "normal"
	SetTypeWarmup  SetType = "warmup"
	SetTypeDropset SetType = "dropset"
	SetTypeFailure SetType = "failure"
)

// CountsTowardsVolume reports whether sets of this type are working sets.
// Warmups and types the API may add later are left out.
func (t SetType) CountsTowardsVolume() bool {
	switch t {
	case SetTypeNormal, SetTypeDropset, SetTypeFailure:
		return true
	default:
		return false
	}
}

type Set struct {
	Type            SetType  `json:"type"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	DurationSeconds *int     `json:"duration_seconds,omitempty"`
}

type Exercise struct {
	Title      string `json:"title"`
	TemplateID string `json:"exercise_template_id"`
	Notes      string `json:"notes,omitempty"`
	Sets       []Set  `json:"sets"`
}

// Key is the case-insensitive identity of an exercise across workouts.
func (e Exercise) Key() string {
	return strings.ToLower(e.Title)
}

// Workout is a single logged session, as received from the API.
// A zero StartTime or EndTime means the value was missing or malformed.
type Workout struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	RoutineID string     `json:"routine_id,omitempty"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Exercises []Exercise `json:"exercises"`
}

func (w Workout) HasStartTime() bool {
	return !w.StartTime.IsZero()
}

// Date returns the calendar day the workout started on, in loc.
func (w Workout) Date(loc *time.Location) (Date, bool) {
	if !w.HasStartTime() {
		return Date{}, false
	}
	return DateOf(w.StartTime, loc), true
}

// DurationMinutes returns the session length rounded to one decimal,
// or false if either timestamp is missing.
func (w Workout) DurationMinutes() (float64, bool) {
	if w.StartTime.IsZero() || w.EndTime.IsZero() {
		return 0, false
	}
	minutes := w.EndTime.Sub(w.StartTime).Minutes()
	return roundTenths(minutes), true
}

type ExerciseTemplate struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	PrimaryMuscleGroup    string   `json:"primary_muscle_group,omitempty"`
	SecondaryMuscleGroups []string `json:"secondary_muscle_groups,omitempty"`
	Equipment             string   `json:"equipment,omitempty"`
	Type                  string   `json:"type,omitempty"`
}

// Routine is a saved plan; the order of routines as returned by the API
// defines the rotation sequence.
type Routine struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Exercises []string `json:"exercises"`
}
