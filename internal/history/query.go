package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/aggregate"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/catalog"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/tracing"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/units"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	MinDays     = 1
	MaxDays     = 90
	DefaultDays = 30

	// rendered responses go stale quickly since the cutoff moves with time
	responseCacheExpireSeconds = 60
	defaultCacheSize           = 8 * 1024 * 1024
)

var ErrInvalidDays = fmt.Errorf("days must be between %d and %d", MinDays, MaxDays)

// Source is the cached state a query runs against. Generation changes every
// time the tracker swaps in a new history; UnitSystem is the one that
// history's snapshot was built with.
type Source struct {
	Generation uint64
	History    []workouts.Workout
	Catalog    catalog.Catalog
	UnitSystem units.System
	Now        time.Time
	Location   *time.Location
}

type Summary struct {
	TotalWorkouts       int      `json:"total_workouts"`
	TotalVolume         float64  `json:"total_volume"`
	WorkoutDays         []string `json:"workout_days"`
	AvgDurationMinutes  float64  `json:"avg_duration_minutes"`
	AvgVolumePerWorkout float64  `json:"avg_volume_per_workout"`
}

type ExerciseEntry struct {
	Name        string              `json:"name"`
	MuscleGroup *string             `json:"muscle_group"`
	Sets        []aggregate.SetView `json:"sets"`
	BestSet     string              `json:"best_set"`
	TotalReps   *int                `json:"total_reps"`
	Notes       *string             `json:"notes"`
}

type WorkoutEntry struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Date            *time.Time      `json:"date"`
	StartTime       *time.Time      `json:"start_time"`
	EndTime         *time.Time      `json:"end_time"`
	DurationMinutes *float64        `json:"duration_minutes"`
	TotalVolume     float64         `json:"total_volume"`
	RoutineID       *string         `json:"routine_id"`
	MuscleGroups    []string        `json:"muscle_groups"`
	Exercises       []ExerciseEntry `json:"exercises"`
}

type Response struct {
	Days       int            `json:"days"`
	WeightUnit string         `json:"weight_unit"`
	Summary    Summary        `json:"summary"`
	Workouts   []WorkoutEntry `json:"workouts"`
}

// Query answers "workouts of the last N days" from the tracker's cached
// history, re-deriving the same per-workout fields as the snapshot.
type Query struct {
	cache *freecache.Cache
}

func NewQuery(cacheSizeBytes int) *Query {
	if cacheSizeBytes <= 0 {
		cacheSizeBytes = defaultCacheSize
	}
	return &Query{
		cache: freecache.NewCache(cacheSizeBytes),
	}
}

func ValidateDays(days int) error {
	if days < MinDays || days > MaxDays {
		return ErrInvalidDays
	}
	return nil
}

// WorkoutHistoryJSON renders the response for days, serving repeated queries
// against the same history generation from cache.
func (q *Query) WorkoutHistoryJSON(ctx context.Context, src Source, days int) (_ []byte, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "history.query.workoutHistoryJSON")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateDays(days); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("history::%d::%d::%s", src.Generation, days, src.UnitSystem)
	if cached, err := q.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("workout history for %d days found in cache", days)
		return cached, nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Errorf("get workout history from cache [%s]: %s", cacheKey, err)
	}

	resp, err := q.WorkoutHistory(src, days)
	if err != nil {
		return nil, err
	}

	respBytes, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("marshal workout history: %w", err)
	}

	if err := q.cache.Set([]byte(cacheKey), respBytes, responseCacheExpireSeconds); err != nil {
		log.Errorf("failed to cache workout history [%s]: %s", cacheKey, err)
	}

	return respBytes, nil
}

func (q *Query) WorkoutHistory(src Source, days int) (*Response, error) {
	if err := ValidateDays(days); err != nil {
		return nil, err
	}

	loc := src.Location
	if loc == nil {
		loc = time.UTC
	}
	cutoff := src.Now.Add(-time.Duration(days) * 24 * time.Hour)
	converter := units.StaticConverter(src.UnitSystem)

	resp := &Response{
		Days:       days,
		WeightUnit: converter.UnitLabel(),
		Summary:    Summary{WorkoutDays: []string{}},
		Workouts:   []WorkoutEntry{},
	}

	var totalVolume, totalDuration float64
	seenDays := map[string]bool{}

	for _, w := range src.History {
		// undated workouts cannot be placed in the window
		if !w.HasStartTime() || w.StartTime.Before(cutoff) {
			continue
		}

		entry := workoutEntry(w, src.Catalog, converter)
		totalVolume += entry.TotalVolume
		if entry.DurationMinutes != nil {
			totalDuration += *entry.DurationMinutes
		}

		day := workouts.DateOf(w.StartTime, loc).String()
		if !seenDays[day] {
			seenDays[day] = true
			resp.Summary.WorkoutDays = append(resp.Summary.WorkoutDays, day)
		}

		resp.Workouts = append(resp.Workouts, entry)
	}

	count := len(resp.Workouts)
	resp.Summary.TotalWorkouts = count
	resp.Summary.TotalVolume = units.Round1(totalVolume)
	if count > 0 {
		resp.Summary.AvgDurationMinutes = units.Round1(totalDuration / float64(count))
		resp.Summary.AvgVolumePerWorkout = units.Round1(totalVolume / float64(count))
	}

	return resp, nil
}

func workoutEntry(w workouts.Workout, cat catalog.Catalog, converter *units.Converter) WorkoutEntry {
	entry := WorkoutEntry{
		ID:           w.ID,
		Title:        w.Title,
		Date:         timeOrNil(w.StartTime),
		StartTime:    timeOrNil(w.StartTime),
		EndTime:      timeOrNil(w.EndTime),
		TotalVolume:  aggregate.TotalVolume(w, converter),
		MuscleGroups: []string{},
		Exercises:    make([]ExerciseEntry, 0, len(w.Exercises)),
	}
	if minutes, ok := w.DurationMinutes(); ok {
		entry.DurationMinutes = &minutes
	}
	if w.RoutineID != "" {
		routineID := w.RoutineID
		entry.RoutineID = &routineID
	}

	seenGroups := map[string]bool{}
	for _, ex := range w.Exercises {
		summary := aggregate.SummarizeExercise(ex, converter)
		exEntry := ExerciseEntry{
			Name:      summary.Name,
			Sets:      summary.Sets,
			BestSet:   summary.BestSet,
			TotalReps: summary.TotalReps,
		}
		if ex.Notes != "" {
			notes := ex.Notes
			exEntry.Notes = &notes
		}

		if tmpl, ok := cat.Template(ex.TemplateID); ok && tmpl.PrimaryMuscleGroup != "" {
			group := tmpl.PrimaryMuscleGroup
			exEntry.MuscleGroup = &group
			if !seenGroups[group] {
				seenGroups[group] = true
				entry.MuscleGroups = append(entry.MuscleGroups, group)
			}
		}

		entry.Exercises = append(entry.Exercises, exEntry)
	}

	return entry
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
