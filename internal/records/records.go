package records

import (
	"maps"
	"strings"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"
)

// Record is the best weight/reps pair seen for an exercise. WeightKg is always
// kilograms so that switching the display unit never changes a comparison.
type Record struct {
	WeightKg   float64 `json:"weight_kg"`
	Reps       int     `json:"reps"`
	TemplateID string  `json:"template_id,omitempty"`
}

// Beats reports whether r should replace current: strictly heavier, or the
// same weight for strictly more reps.
func (r Record) Beats(current Record) bool {
	return r.WeightKg > current.WeightKg ||
		(r.WeightKg == current.WeightKg && r.Reps > current.Reps)
}

// Table maps lower-cased exercise titles to their personal record.
type Table map[string]Record

func Key(title string) string {
	return strings.ToLower(title)
}

func (t Table) Get(title string) (Record, bool) {
	r, ok := t[Key(title)]
	return r, ok
}

func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}
	return maps.Clone(t)
}

// Observe offers a single set to the table and reports whether it became the
// new record. Only sets with a weight take part.
func (t Table) Observe(title, templateID string, set workouts.Set) bool {
	key := Key(title)
	if key == "" || set.WeightKg == nil {
		return false
	}

	candidate := Record{WeightKg: *set.WeightKg, TemplateID: templateID}
	if set.Reps != nil {
		candidate.Reps = *set.Reps
	}

	current, ok := t[key]
	if ok && !candidate.Beats(current) {
		return false
	}
	t[key] = candidate
	return true
}

// Replay starts from a copy of t and offers every set of every workout, in
// order. The receiver is left untouched, so a cancelled refresh can simply
// drop the result.
func (t Table) Replay(history []workouts.Workout) Table {
	next := t.Clone()
	for _, w := range history {
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				next.Observe(ex.Title, ex.TemplateID, set)
			}
		}
	}
	return next
}

// Merge returns a copy of t with every entry of other that beats (or is
// missing from) t. Keys of other are normalised first.
func (t Table) Merge(other Table) Table {
	merged := t.Clone()
	for title, r := range other {
		key := Key(title)
		if current, ok := merged[key]; !ok || r.Beats(current) {
			merged[key] = r
		}
	}
	return merged
}
