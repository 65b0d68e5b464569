package aggregate

import (
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/catalog"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/records"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/units"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"
)

// Input is the state a single aggregation run works on. History must be
// ordered most recent first, as returned by the API.
type Input struct {
	History      []workouts.Workout
	WorkoutCount int
	Catalog      catalog.Catalog
	// Records is the table from the previous cycle; it is never modified.
	Records records.Table
	Now     time.Time
	// Location decides calendar days; nil means UTC.
	Location               *time.Location
	StalenessThresholdDays int
}

type Engine struct {
	converter *units.Converter
}

func NewEngine(converter *units.Converter) *Engine {
	return &Engine{
		converter: converter,
	}
}

// Build derives a snapshot from in and returns it together with the
// recomputed personal record table. The caller swaps the table in only when
// the whole refresh succeeded.
func (e *Engine) Build(in Input) (*Snapshot, records.Table) {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	threshold := in.StalenessThresholdDays
	if threshold <= 0 {
		threshold = DefaultStalenessThresholdDays
	}
	today := workouts.DateOf(in.Now, loc)

	prs := in.Records.Replay(in.History)

	weeklyCount := 0
	for _, w := range in.History {
		if InWeek(w, in.Now) {
			weeklyCount++
		}
	}

	snapshot := &Snapshot{
		GeneratedAt:        in.Now,
		WorkoutCount:       in.WorkoutCount,
		WeightUnit:         e.converter.UnitLabel(),
		WeeklyWorkoutCount: weeklyCount,
		WorkedOutThisWeek:  weeklyCount > 0,
		CurrentStreak:      Streak(in.History, today, loc),
		ExerciseData:       e.exerciseData(in.History, in.Catalog, prs),
		PersonalRecords:    e.personalRecords(prs),
		MuscleGroups:       AggregateMuscleGroups(in.History, in.Catalog, today, loc, threshold),
		WeeklyVolume:       AggregateWeeklyVolume(in.History, in.Catalog, in.Now, e.converter),
		NextWorkout:        PredictNextWorkout(in.History, in.Catalog.Routines),
		Days:               e.daySummaries(in.History, loc),
	}

	if len(in.History) > 0 {
		last := in.History[0]
		snapshot.LastWorkout = e.lastWorkout(last)
		if d, ok := last.Date(loc); ok {
			snapshot.WorkedOutToday = d == today
		}
	}

	return snapshot, prs
}

func (e *Engine) lastWorkout(w workouts.Workout) *LastWorkout {
	lw := &LastWorkout{
		ID:          w.ID,
		Title:       w.Title,
		RoutineID:   w.RoutineID,
		StartTime:   timeOrNil(w.StartTime),
		TotalVolume: TotalVolume(w, e.converter),
		Exercises:   make([]ExerciseSummary, 0, len(w.Exercises)),
	}
	if minutes, ok := w.DurationMinutes(); ok {
		lw.DurationMinutes = &minutes
	}
	for _, ex := range w.Exercises {
		lw.Exercises = append(lw.Exercises, SummarizeExercise(ex, e.converter))
	}
	return lw
}

// exerciseData keeps the first (most recent) occurrence of every exercise.
func (e *Engine) exerciseData(history []workouts.Workout, cat catalog.Catalog, prs records.Table) map[string]ExerciseData {
	unit := e.converter.UnitLabel()
	data := map[string]ExerciseData{}

	for _, w := range history {
		for _, ex := range w.Exercises {
			key := ex.Key()
			if key == "" {
				continue
			}
			if _, ok := data[key]; ok {
				continue
			}

			summary := SummarizeExercise(ex, e.converter)
			entry := ExerciseData{
				DisplayName:          summary.Name,
				LastWorkoutDate:      timeOrNil(w.StartTime),
				LastWorkoutSets:      summary.Sets,
				WeightUnit:           unit,
				TotalReps:            summary.TotalReps,
				TotalSets:            len(ex.Sets),
				TotalDurationSeconds: summary.TotalDurationSeconds,
				BestSet:              summary.BestSet,
				TemplateID:           ex.TemplateID,
			}

			// weight of the last set that had a non-zero one
			for _, s := range summary.Sets {
				if s.Weight != nil && *s.Weight != 0 {
					entry.Weight = s.Weight
				}
			}

			if tmpl, ok := cat.Template(ex.TemplateID); ok {
				entry.PrimaryMuscleGroup = tmpl.PrimaryMuscleGroup
				entry.SecondaryMuscleGroups = tmpl.SecondaryMuscleGroups
				entry.Equipment = tmpl.Equipment
				entry.ExerciseType = tmpl.Type
			}

			if pr, ok := prs.Get(key); ok {
				if pr.WeightKg != 0 {
					entry.PersonalRecordWeight = e.converter.Convert(&pr.WeightKg)
				}
				reps := pr.Reps
				entry.PersonalRecordReps = &reps
			}

			data[key] = entry
		}
	}

	return data
}

func (e *Engine) personalRecords(prs records.Table) map[string]PersonalRecord {
	unit := e.converter.UnitLabel()
	out := make(map[string]PersonalRecord, len(prs))
	for key, pr := range prs {
		out[key] = PersonalRecord{
			Weight:     e.converter.ConvertValue(pr.WeightKg),
			WeightUnit: unit,
			Reps:       pr.Reps,
			TemplateID: pr.TemplateID,
		}
	}
	return out
}

// daySummaries yields one entry per calendar day, the first (most recent)
// workout of the day winning. Undated workouts are skipped.
func (e *Engine) daySummaries(history []workouts.Workout, loc *time.Location) []DaySummary {
	days := []DaySummary{}
	seen := map[workouts.Date]bool{}

	for _, w := range history {
		d, ok := w.Date(loc)
		if !ok || seen[d] {
			continue
		}
		seen[d] = true

		day := DaySummary{
			Date:        d,
			WorkoutID:   w.ID,
			Title:       w.Title,
			TotalVolume: TotalVolume(w, e.converter),
			Exercises:   make([]DayExercise, 0, len(w.Exercises)),
		}
		if minutes, ok := w.DurationMinutes(); ok {
			day.DurationMinutes = &minutes
		}
		for _, ex := range w.Exercises {
			totalReps := 0
			for _, s := range ex.Sets {
				totalReps += intOrZero(s.Reps)
			}
			day.Exercises = append(day.Exercises, DayExercise{
				Name:      exerciseName(ex),
				BestSet:   BestSet(ex.Sets, e.converter),
				TotalReps: positiveOrNil(totalReps),
			})
		}
		days = append(days, day)
	}

	return days
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
